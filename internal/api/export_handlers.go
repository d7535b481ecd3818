package api

import (
	"encoding/csv"
	"log"
	"net/http"
	"strconv"

	"anlagen-register/internal/models"
)

// csvHeader is fixed and byte-identical on every export.
var csvHeader = []string{
	"Name", "Betreiber", "Betreiber ABR", "MaStR-Nr",
	"Straße", "PLZ", "Ort", "Bundesland",
	"Leistung (kW)", "Bruttoleistung (kWp)",
	"Inbetriebnahme", "Energieträger", "Status",
	"Email", "Telefon", "Website",
}

// @Summary      CSV export
// @Description  Exports every Anlage with operator contact data, semicolon-delimited, sorted by net capacity descending.
// @Tags         export
// @Produce      text/csv
// @Success      200  {string}  string
// @Failure      401  {object}  ErrorResponse
// @Router       /export/csv [get]
func (s *Server) ExportCSVHandler(w http.ResponseWriter, r *http.Request) {
	anlagen, err := s.store.ExportAnlagen(r.Context())
	if err != nil {
		log.Printf("ERROR: export query failed: %v", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", "attachment; filename=mastr-solar-anlagen.csv")

	cw := csv.NewWriter(w)
	cw.Comma = ';'

	if err := cw.Write(csvHeader); err != nil {
		log.Printf("ERROR: writing CSV header: %v", err)
		return
	}
	for _, a := range anlagen {
		if err := cw.Write(csvRecord(a)); err != nil {
			log.Printf("ERROR: writing CSV record %d: %v", a.ID, err)
			return
		}
	}
	cw.Flush()
}

func csvRecord(a models.Anlage) []string {
	// Missing values render as empty strings; an empty status renders as
	// "neu", matching the registry's default.
	status := strOrEmpty(a.Status)
	if status == "" {
		status = "neu"
	}
	return []string{
		strOrEmpty(a.Name),
		strOrEmpty(a.BetreiberName),
		strOrEmpty(a.BetreiberMastr),
		a.MastrNummer,
		strOrEmpty(a.Strasse),
		strOrEmpty(a.Plz),
		strOrEmpty(a.Ort),
		strOrEmpty(a.Bundesland),
		floatOrEmpty(a.Nettonennleistung),
		floatOrEmpty(a.Bruttoleistung),
		strOrEmpty(a.Inbetriebnahme),
		strOrEmpty(a.Energietraeger),
		status,
		strOrEmpty(a.KontaktEmail),
		strOrEmpty(a.KontaktTelefon),
		strOrEmpty(a.KontaktWebsite),
	}
}

func strOrEmpty(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func floatOrEmpty(p *float64) string {
	if p == nil {
		return ""
	}
	return strconv.FormatFloat(*p, 'f', -1, 64)
}
