package api

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
)

type CreateNotizRequest struct {
	Text string `json:"text"`
}

// @Summary      Add a Notiz to an Anlage
// @Tags         notizen
// @Accept       json
// @Produce      json
// @Param        anlageId  path      int                 true  "Anlage id"
// @Param        body      body      CreateNotizRequest  true  "Note text"
// @Success      200       {object}  SuccessResponse
// @Failure      400       {object}  ErrorResponse
// @Failure      401       {object}  ErrorResponse
// @Failure      404       {object}  ErrorResponse
// @Router       /anlagen/{anlageId}/notizen [post]
func (s *Server) CreateNotizHandler(w http.ResponseWriter, r *http.Request) {
	anlageID, err := strconv.ParseInt(chi.URLParam(r, "anlageId"), 10, 64)
	if err != nil {
		writeError(w, http.StatusNotFound, "Not found")
		return
	}

	var req CreateNotizRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if strings.TrimSpace(req.Text) == "" {
		writeError(w, http.StatusBadRequest, "Text cannot be empty")
		return
	}

	if _, err := s.store.CreateNotiz(r.Context(), anlageID, req.Text); err != nil {
		log.Printf("ERROR: create notiz for anlage %d failed: %v", anlageID, err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	s.publishEvent("notiz_created", anlageID)
	writeJSON(w, http.StatusOK, SuccessResponse{Success: true})
}

// @Summary      Delete a Notiz
// @Tags         notizen
// @Produce      json
// @Param        notizId  path      int  true  "Notiz id"
// @Success      200      {object}  SuccessResponse
// @Failure      401      {object}  ErrorResponse
// @Router       /notizen/{notizId} [delete]
func (s *Server) DeleteNotizHandler(w http.ResponseWriter, r *http.Request) {
	notizID, err := strconv.ParseInt(chi.URLParam(r, "notizId"), 10, 64)
	if err != nil {
		writeError(w, http.StatusNotFound, "Not found")
		return
	}

	if _, err := s.store.DeleteNotiz(r.Context(), notizID); err != nil {
		log.Printf("ERROR: delete notiz %d failed: %v", notizID, err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	s.publishEvent("notiz_deleted", notizID)
	writeJSON(w, http.StatusOK, SuccessResponse{Success: true})
}
