package api

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"anlagen-register/internal/database"
	"anlagen-register/internal/models"

	"github.com/go-chi/chi/v5"
)

type PaginatedAnlagen struct {
	Data       []models.Anlage `json:"data"`
	Pagination Pagination      `json:"pagination"`
}

type Pagination struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
	Pages int   `json:"pages"`
}

// @Summary      Registry statistics
// @Tags         anlagen
// @Produce      json
// @Success      200  {object}  models.Stats
// @Failure      401  {object}  ErrorResponse
// @Router       /stats [get]
func (s *Server) StatsHandler(w http.ResponseWriter, r *http.Request) {
	stats, err := s.store.GetStats(r.Context())
	if err != nil {
		log.Printf("ERROR: stats query failed: %v", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeJSON(w, http.StatusOK, stats)
}

// @Summary      List Anlagen
// @Description  Filtered, sorted, paginated list of installations joined with operator contact data.
// @Tags         anlagen
// @Produce      json
// @Param        search        query  string  false  "Free-text search"
// @Param        bundesland    query  string  false  "Exact region match"
// @Param        status        query  string  false  "Exact status match"
// @Param        mit_kontakt   query  string  false  "ja or nein"
// @Param        leistung_min  query  number  false  "Minimum net capacity (kW)"
// @Param        leistung_max  query  number  false  "Maximum net capacity (kW)"
// @Param        datum_von     query  string  false  "Commissioning date from (YYYY-MM-DD)"
// @Param        datum_bis     query  string  false  "Commissioning date to (YYYY-MM-DD)"
// @Param        sortBy        query  string  false  "Sort column (allow-listed)"
// @Param        sortDir       query  string  false  "asc or desc"
// @Param        page          query  int     false  "Page, default 1"
// @Param        limit         query  int     false  "Page size, default 50"
// @Success      200  {object}  PaginatedAnlagen
// @Failure      401  {object}  ErrorResponse
// @Router       /anlagen [get]
func (s *Server) ListAnlagenHandler(w http.ResponseWriter, r *http.Request) {
	params := database.ParseListParams(r.URL.Query())

	total, err := s.store.CountAnlagen(r.Context(), params.Filter)
	if err != nil {
		log.Printf("ERROR: count query failed: %v", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	anlagen, err := s.store.ListAnlagen(r.Context(), params)
	if err != nil {
		log.Printf("ERROR: list query failed: %v", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeJSON(w, http.StatusOK, PaginatedAnlagen{
		Data: anlagen,
		Pagination: Pagination{
			Page:  params.Page,
			Limit: params.Limit,
			Total: total,
			Pages: params.Pages(total),
		},
	})
}

// @Summary      Single Anlage
// @Tags         anlagen
// @Produce      json
// @Param        anlageId  path      int  true  "Anlage id"
// @Success      200       {object}  models.AnlageDetail
// @Failure      401       {object}  ErrorResponse
// @Failure      404       {object}  ErrorResponse "Not found"
// @Router       /anlagen/{anlageId} [get]
func (s *Server) GetAnlageHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "anlageId"), 10, 64)
	if err != nil {
		writeError(w, http.StatusNotFound, "Not found")
		return
	}

	detail, err := s.store.GetAnlage(r.Context(), id)
	if err != nil {
		log.Printf("ERROR: get anlage %d failed: %v", id, err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if detail == nil {
		writeError(w, http.StatusNotFound, "Not found")
		return
	}

	writeJSON(w, http.StatusOK, detail)
}

type UpdateAnlageRequest struct {
	Status  *string `json:"status"`
	Notizen *string `json:"notizen"`
}

// @Summary      Update an Anlage
// @Description  Updates status and/or the free-form notes field and touches updated_at.
// @Tags         anlagen
// @Accept       json
// @Produce      json
// @Param        anlageId  path      int                  true  "Anlage id"
// @Param        body      body      UpdateAnlageRequest  true  "Fields to update"
// @Success      200       {object}  SuccessResponse
// @Failure      400       {object}  ErrorResponse
// @Failure      401       {object}  ErrorResponse
// @Router       /anlagen/{anlageId} [put]
func (s *Server) UpdateAnlageHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "anlageId"), 10, 64)
	if err != nil {
		writeError(w, http.StatusNotFound, "Not found")
		return
	}

	var req UpdateAnlageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	_, err = s.store.UpdateAnlageTx(r.Context(), id, database.UpdateAnlageParams{
		Status:  req.Status,
		Notizen: req.Notizen,
	})
	if err != nil {
		log.Printf("ERROR: update anlage %d failed: %v", id, err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	s.publishEvent("anlage_updated", id)
	writeJSON(w, http.StatusOK, SuccessResponse{Success: true})
}
