package database

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseListParams_Defaults(t *testing.T) {
	p := ParseListParams(url.Values{})

	require.Equal(t, "nettonennleistung", p.SortBy)
	require.Equal(t, "DESC", p.SortDir)
	require.Equal(t, 1, p.Page)
	require.Equal(t, 50, p.Limit)
	require.Equal(t, 0, p.Offset())

	where, args := p.Filter.whereClause()
	require.Empty(t, where, "no parameters must match all rows")
	require.Empty(t, args)
}

func TestParseListParams_CapacityBounds(t *testing.T) {
	q := url.Values{}
	q.Set("leistung_min", "10")
	q.Set("leistung_max", "10")
	p := ParseListParams(q)

	require.NotNil(t, p.Filter.LeistungMin)
	require.NotNil(t, p.Filter.LeistungMax)
	require.Equal(t, 10.0, *p.Filter.LeistungMin)
	require.Equal(t, 10.0, *p.Filter.LeistungMax)

	where, args := p.Filter.whereClause()
	require.Equal(t, "WHERE a.nettonennleistung >= $1 AND a.nettonennleistung <= $2", where)
	require.Equal(t, []interface{}{10.0, 10.0}, args)
}

func TestParseListParams_MalformedNumbersDropped(t *testing.T) {
	for _, bad := range []string{"abc", "NaN", "nan", "Inf", "-Inf", "1,5e"} {
		q := url.Values{}
		q.Set("leistung_min", bad)
		p := ParseListParams(q)
		require.Nilf(t, p.Filter.LeistungMin, "value %q must be dropped", bad)
	}
}

func TestParseListParams_MalformedDatesDropped(t *testing.T) {
	q := url.Values{}
	q.Set("datum_von", "2023-01-01")
	q.Set("datum_bis", "gestern")
	p := ParseListParams(q)

	require.Equal(t, "2023-01-01", p.Filter.DatumVon)
	require.Empty(t, p.Filter.DatumBis)
}

func TestParseListParams_SortAllowList(t *testing.T) {
	q := url.Values{}
	q.Set("sortBy", "ort")
	q.Set("sortDir", "asc")
	p := ParseListParams(q)
	require.Equal(t, "ort", p.SortBy)
	require.Equal(t, "ASC", p.SortDir)

	q.Set("sortBy", "id; DROP TABLE anlagen; --")
	q.Set("sortDir", "sideways")
	p = ParseListParams(q)
	require.Equal(t, "nettonennleistung", p.SortBy, "unknown sort column must fall back to the default")
	require.Equal(t, "DESC", p.SortDir)
}

func TestParseListParams_Pagination(t *testing.T) {
	q := url.Values{}
	q.Set("page", "2")
	q.Set("limit", "10")
	p := ParseListParams(q)

	require.Equal(t, 2, p.Page)
	require.Equal(t, 10, p.Limit)
	require.Equal(t, 10, p.Offset())
	require.Equal(t, 3, p.Pages(25))
	require.Equal(t, 0, p.Pages(0))

	q.Set("page", "0")
	q.Set("limit", "-5")
	p = ParseListParams(q)
	require.Equal(t, 1, p.Page)
	require.Equal(t, 50, p.Limit)
}

func TestWhereClause_PlaceholderNumbering(t *testing.T) {
	min := 5.0
	f := AnlagenFilter{
		Search:      "solar",
		Bundesland:  "Bayern",
		Status:      "neu",
		MitKontakt:  "ja",
		LeistungMin: &min,
		DatumVon:    "2020-06-01",
	}

	where, args := f.whereClause()
	require.Equal(t, []interface{}{"%solar%", "Bayern", "neu", 5.0, "2020-06-01"}, args)
	require.Contains(t, where, "a.bundesland = $2")
	require.Contains(t, where, "a.status = $3")
	require.Contains(t, where, "a.nettonennleistung >= $4")
	require.Contains(t, where, "a.inbetriebnahme >= $5")
	require.NotContains(t, where, "solar", "input must never reach the query text")
}

func TestWhereClause_MitKontakt(t *testing.T) {
	where, args := AnlagenFilter{MitKontakt: "ja"}.whereClause()
	require.Equal(t, "WHERE (COALESCE(b.email, '') <> '' OR COALESCE(b.telefon, '') <> '')", where)
	require.Empty(t, args)

	where, _ = AnlagenFilter{MitKontakt: "nein"}.whereClause()
	require.Equal(t, "WHERE (COALESCE(b.email, '') = '' AND COALESCE(b.telefon, '') = '')", where)

	where, _ = AnlagenFilter{MitKontakt: "vielleicht"}.whereClause()
	require.Empty(t, where, "unrecognized value adds no constraint")
}
