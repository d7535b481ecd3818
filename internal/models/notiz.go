package models

import "time"

type Notiz struct {
	ID        int64     `json:"id"`
	AnlageID  int64     `json:"anlage_id"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}
