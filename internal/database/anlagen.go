package database

import (
	"context"
	"errors"
	"fmt"

	"anlagen-register/internal/models"

	"github.com/jackc/pgx/v5"
)

const anlagenJoin = `
	FROM anlagen a
	LEFT JOIN betreiber b ON a.betreiber_mastr = b.mastr_nummer
`

const anlagenColumns = `
	a.id, a.mastr_nummer, a.name, a.betreiber_name, a.betreiber_mastr,
	a.strasse, a.plz, a.ort, a.bundesland,
	a.nettonennleistung, a.bruttoleistung, a.inbetriebnahme,
	a.energietraeger, a.status, a.notizen, a.created_at, a.updated_at,
	b.email, b.telefon, b.website, b.strasse, b.plz, b.ort
`

func scanAnlage(row pgx.Row, a *models.Anlage) error {
	return row.Scan(
		&a.ID, &a.MastrNummer, &a.Name, &a.BetreiberName, &a.BetreiberMastr,
		&a.Strasse, &a.Plz, &a.Ort, &a.Bundesland,
		&a.Nettonennleistung, &a.Bruttoleistung, &a.Inbetriebnahme,
		&a.Energietraeger, &a.Status, &a.Notizen, &a.CreatedAt, &a.UpdatedAt,
		&a.KontaktEmail, &a.KontaktTelefon, &a.KontaktWebsite,
		&a.KontaktStrasse, &a.KontaktPlz, &a.KontaktOrt,
	)
}

// CountAnlagen returns the total number of rows matching the filter,
// ignoring pagination.
func (q *Queries) CountAnlagen(ctx context.Context, f AnlagenFilter) (int64, error) {
	where, args := f.whereClause()
	query := `SELECT COUNT(*)` + anlagenJoin + where

	var total int64
	if err := q.db.QueryRow(ctx, query, args...).Scan(&total); err != nil {
		return 0, err
	}
	return total, nil
}

// ListAnlagen returns the filtered, sorted page of joined records.
func (q *Queries) ListAnlagen(ctx context.Context, p ListParams) ([]models.Anlage, error) {
	where, args := p.Filter.whereClause()

	// p.SortBy and p.SortDir come from the parser's allow-list, never from
	// raw input.
	query := fmt.Sprintf(
		`SELECT %s %s %s ORDER BY a.%s %s LIMIT $%d OFFSET $%d`,
		anlagenColumns, anlagenJoin, where,
		p.SortBy, p.SortDir,
		len(args)+1, len(args)+2,
	)
	args = append(args, p.Limit, p.Offset())

	rows, err := q.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var anlagen []models.Anlage
	for rows.Next() {
		var a models.Anlage
		if err := scanAnlage(rows, &a); err != nil {
			return nil, err
		}
		anlagen = append(anlagen, a)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	if anlagen == nil {
		return []models.Anlage{}, nil
	}

	return anlagen, nil
}

// GetAnlage loads a single joined record with its Notizen, newest first.
// Returns (nil, nil) when the id is unknown.
func (q *Queries) GetAnlage(ctx context.Context, id int64) (*models.AnlageDetail, error) {
	query := `SELECT ` + anlagenColumns + anlagenJoin + ` WHERE a.id = $1`

	var detail models.AnlageDetail
	err := scanAnlage(q.db.QueryRow(ctx, query, id), &detail.Anlage)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	notizen, err := q.ListNotizen(ctx, id)
	if err != nil {
		return nil, err
	}
	if notizen == nil {
		notizen = []models.Notiz{}
	}
	detail.NotizenListe = notizen

	return &detail, nil
}

// ExportAnlagen returns every joined record, unfiltered, ordered by net
// capacity descending. Feeds the CSV export.
func (q *Queries) ExportAnlagen(ctx context.Context) ([]models.Anlage, error) {
	query := `SELECT ` + anlagenColumns + anlagenJoin + ` ORDER BY a.nettonennleistung DESC`

	rows, err := q.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var anlagen []models.Anlage
	for rows.Next() {
		var a models.Anlage
		if err := scanAnlage(rows, &a); err != nil {
			return nil, err
		}
		anlagen = append(anlagen, a)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	if anlagen == nil {
		return []models.Anlage{}, nil
	}

	return anlagen, nil
}

// GetStats aggregates the registry totals and the status distribution.
func (q *Queries) GetStats(ctx context.Context) (*models.Stats, error) {
	var stats models.Stats

	query := `SELECT COUNT(*), COALESCE(SUM(nettonennleistung), 0) FROM anlagen`
	if err := q.db.QueryRow(ctx, query).Scan(&stats.Total, &stats.Gesamtleistung); err != nil {
		return nil, err
	}

	rows, err := q.db.Query(ctx, `SELECT status, COUNT(*) FROM anlagen GROUP BY status`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var sc models.StatusCount
		if err := rows.Scan(&sc.Status, &sc.Count); err != nil {
			return nil, err
		}
		stats.ByStatus = append(stats.ByStatus, sc)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	if stats.ByStatus == nil {
		stats.ByStatus = []models.StatusCount{}
	}

	return &stats, nil
}

type UpdateAnlageParams struct {
	Status  *string
	Notizen *string
}

// UpdateAnlage writes either or both free-form fields and touches
// updated_at. Returns false when the id is unknown.
func (q *Queries) UpdateAnlage(ctx context.Context, id int64, arg UpdateAnlageParams) (bool, error) {
	var updated bool

	if arg.Status != nil {
		query := `UPDATE anlagen SET status = $1, updated_at = now() WHERE id = $2`
		res, err := q.db.Exec(ctx, query, *arg.Status, id)
		if err != nil {
			return false, err
		}
		updated = updated || res.RowsAffected() > 0
	}

	if arg.Notizen != nil {
		query := `UPDATE anlagen SET notizen = $1, updated_at = now() WHERE id = $2`
		res, err := q.db.Exec(ctx, query, *arg.Notizen, id)
		if err != nil {
			return false, err
		}
		updated = updated || res.RowsAffected() > 0
	}

	return updated, nil
}
