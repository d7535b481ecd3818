package models

import "time"

// Anlage is one registered solar installation joined with the contact data
// of its Betreiber (left join, so every kontakt_* field may be absent).
type Anlage struct {
	ID                int64     `json:"id"`
	MastrNummer       string    `json:"mastr_nummer"`
	Name              *string   `json:"name"`
	BetreiberName     *string   `json:"betreiber_name"`
	BetreiberMastr    *string   `json:"betreiber_mastr"`
	Strasse           *string   `json:"strasse"`
	Plz               *string   `json:"plz"`
	Ort               *string   `json:"ort"`
	Bundesland        *string   `json:"bundesland"`
	Nettonennleistung *float64  `json:"nettonennleistung"`
	Bruttoleistung    *float64  `json:"bruttoleistung"`
	Inbetriebnahme    *string   `json:"inbetriebnahme"`
	Energietraeger    *string   `json:"energietraeger"`
	Status            *string   `json:"status"`
	Notizen           *string   `json:"notizen"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`

	KontaktEmail   *string `json:"kontakt_email"`
	KontaktTelefon *string `json:"kontakt_telefon"`
	KontaktWebsite *string `json:"kontakt_website"`
	KontaktStrasse *string `json:"kontakt_strasse"`
	KontaktPlz     *string `json:"kontakt_plz"`
	KontaktOrt     *string `json:"kontakt_ort"`
}

// AnlageDetail is the single-record view with its Notizen, newest first.
type AnlageDetail struct {
	Anlage
	NotizenListe []Notiz `json:"notizen_liste"`
}

type StatusCount struct {
	Status *string `json:"status"`
	Count  int64   `json:"count"`
}

type Stats struct {
	Total          int64         `json:"total"`
	Gesamtleistung float64       `json:"gesamtleistung"`
	ByStatus       []StatusCount `json:"byStatus"`
}
