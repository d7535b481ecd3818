package database

import (
	"fmt"
	"math"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// AnlagenFilter is the set of optional predicates over the anlagen/betreiber
// join. Every active dimension contributes a parameterized condition; user
// input is never written into query text.
type AnlagenFilter struct {
	Search      string
	Bundesland  string
	Status      string
	MitKontakt  string // "ja", "nein" or unset
	LeistungMin *float64
	LeistungMax *float64
	DatumVon    string
	DatumBis    string
}

// ListParams is a filter plus sort and pagination directives. SortBy only
// ever holds a value from sortColumns, so it is safe to splice into ORDER BY.
type ListParams struct {
	Filter  AnlagenFilter
	SortBy  string
	SortDir string
	Page    int
	Limit   int
}

const (
	defaultSortColumn = "nettonennleistung"
	defaultLimit      = 50
)

// sortColumns is the allow-list of sortable columns. Any sortBy value not in
// this map falls back to the default instead of reaching the query text.
var sortColumns = map[string]bool{
	"name":              true,
	"betreiber_name":    true,
	"mastr_nummer":      true,
	"ort":               true,
	"plz":               true,
	"bundesland":        true,
	"nettonennleistung": true,
	"bruttoleistung":    true,
	"inbetriebnahme":    true,
	"energietraeger":    true,
	"status":            true,
}

// ParseListParams builds ListParams from request query parameters. It cannot
// fail: malformed numbers, dates, sort columns and page values are dropped in
// favor of the defaults rather than rejected.
func ParseListParams(q url.Values) ListParams {
	p := ListParams{
		Filter: AnlagenFilter{
			Search:      strings.TrimSpace(q.Get("search")),
			Bundesland:  q.Get("bundesland"),
			Status:      q.Get("status"),
			MitKontakt:  q.Get("mit_kontakt"),
			LeistungMin: parseLeistung(q.Get("leistung_min")),
			LeistungMax: parseLeistung(q.Get("leistung_max")),
			DatumVon:    parseDatum(q.Get("datum_von")),
			DatumBis:    parseDatum(q.Get("datum_bis")),
		},
		SortBy:  defaultSortColumn,
		SortDir: "DESC",
		Page:    1,
		Limit:   defaultLimit,
	}

	if sortColumns[q.Get("sortBy")] {
		p.SortBy = q.Get("sortBy")
	}
	if strings.EqualFold(q.Get("sortDir"), "asc") {
		p.SortDir = "ASC"
	}
	if page, err := strconv.Atoi(q.Get("page")); err == nil && page >= 1 {
		p.Page = page
	}
	if limit, err := strconv.Atoi(q.Get("limit")); err == nil && limit > 0 {
		p.Limit = limit
	}

	return p
}

// parseLeistung validates a capacity bound. Unparseable values, NaN and ±Inf
// are dropped so they can never end up in a comparison.
func parseLeistung(s string) *float64 {
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}

// parseDatum validates an ISO date bound; anything else is dropped.
func parseDatum(s string) string {
	if _, err := time.Parse("2006-01-02", s); err != nil {
		return ""
	}
	return s
}

func (p ListParams) Offset() int {
	return (p.Page - 1) * p.Limit
}

// Pages computes the page count for a total row count.
func (p ListParams) Pages(total int64) int {
	return int((total + int64(p.Limit) - 1) / int64(p.Limit))
}

// conditions assembles the WHERE fragments with $N placeholders numbered from
// 1, paired with their bound arguments in order.
func (f AnlagenFilter) conditions() ([]string, []interface{}) {
	var conds []string
	var args []interface{}

	if f.Search != "" {
		args = append(args, "%"+f.Search+"%")
		p := fmt.Sprintf("$%d", len(args))
		conds = append(conds, fmt.Sprintf(
			"(a.name ILIKE %[1]s OR a.betreiber_name ILIKE %[1]s OR a.ort ILIKE %[1]s OR a.plz ILIKE %[1]s OR b.email ILIKE %[1]s OR b.telefon ILIKE %[1]s)", p))
	}

	if f.Bundesland != "" {
		args = append(args, f.Bundesland)
		conds = append(conds, fmt.Sprintf("a.bundesland = $%d", len(args)))
	}

	if f.Status != "" {
		args = append(args, f.Status)
		conds = append(conds, fmt.Sprintf("a.status = $%d", len(args)))
	}

	switch f.MitKontakt {
	case "ja":
		conds = append(conds, "(COALESCE(b.email, '') <> '' OR COALESCE(b.telefon, '') <> '')")
	case "nein":
		conds = append(conds, "(COALESCE(b.email, '') = '' AND COALESCE(b.telefon, '') = '')")
	}

	if f.LeistungMin != nil {
		args = append(args, *f.LeistungMin)
		conds = append(conds, fmt.Sprintf("a.nettonennleistung >= $%d", len(args)))
	}

	if f.LeistungMax != nil {
		args = append(args, *f.LeistungMax)
		conds = append(conds, fmt.Sprintf("a.nettonennleistung <= $%d", len(args)))
	}

	if f.DatumVon != "" {
		args = append(args, f.DatumVon)
		conds = append(conds, fmt.Sprintf("a.inbetriebnahme >= $%d", len(args)))
	}

	if f.DatumBis != "" {
		args = append(args, f.DatumBis)
		conds = append(conds, fmt.Sprintf("a.inbetriebnahme <= $%d", len(args)))
	}

	return conds, args
}

// whereClause renders the conditions into a WHERE clause, or an empty string
// when no dimension is set (match all rows).
func (f AnlagenFilter) whereClause() (string, []interface{}) {
	conds, args := f.conditions()
	if len(conds) == 0 {
		return "", nil
	}
	return "WHERE " + strings.Join(conds, " AND "), args
}
