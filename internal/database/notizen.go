package database

import (
	"context"

	"anlagen-register/internal/models"
)

// ListNotizen returns the notes of one Anlage, newest first.
func (q *Queries) ListNotizen(ctx context.Context, anlageID int64) ([]models.Notiz, error) {
	query := `
		SELECT id, anlage_id, text, created_at
		FROM notizen
		WHERE anlage_id = $1
		ORDER BY created_at DESC
	`
	rows, err := q.db.Query(ctx, query, anlageID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var notizen []models.Notiz
	for rows.Next() {
		var n models.Notiz
		if err := rows.Scan(&n.ID, &n.AnlageID, &n.Text, &n.CreatedAt); err != nil {
			return nil, err
		}
		notizen = append(notizen, n)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	if notizen == nil {
		return []models.Notiz{}, nil
	}

	return notizen, nil
}

func (q *Queries) CreateNotiz(ctx context.Context, anlageID int64, text string) (*models.Notiz, error) {
	query := `
		INSERT INTO notizen (anlage_id, text)
		VALUES ($1, $2)
		RETURNING id, anlage_id, text, created_at
	`
	var n models.Notiz
	err := q.db.QueryRow(ctx, query, anlageID, text).Scan(
		&n.ID, &n.AnlageID, &n.Text, &n.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &n, nil
}

func (q *Queries) DeleteNotiz(ctx context.Context, id int64) (bool, error) {
	res, err := q.db.Exec(ctx, `DELETE FROM notizen WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return res.RowsAffected() > 0, nil
}
