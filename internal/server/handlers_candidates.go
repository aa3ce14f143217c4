package server

import (
	"net/http"
	"strconv"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/talentflow/talentflow/internal/logger"
	"github.com/talentflow/talentflow/internal/services"
)

// ListCandidatesHandler returns the caller's jobs and the merged candidate
// set from both ingestion sources in one payload; the dashboard and the
// kanban board are rendered from this single fetch.
func (a *API) ListCandidatesHandler(w http.ResponseWriter, r *http.Request) {

	data, err := a.candidates.FetchUserData(r.Context(), sessionUser(r).ID)
	if err != nil {
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeBaserow).
			Errorf("failed to fetch candidates: %v", err)
		writeError(w, http.StatusInternalServerError, "Erro ao buscar candidatos.")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success":    true,
		"jobs":       data.Jobs,
		"candidates": data.Candidates,
	})
}

func (a *API) UpdateCandidateStatusHandler(w http.ResponseWriter, r *http.Request) {

	candidateID, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "ID de candidato inválido.")
		return
	}

	var request struct {
		Status string `json:"status"`
	}
	if err := decodeJSON(r, &request); err != nil || request.Status == "" {
		writeError(w, http.StatusBadRequest, "Status é obrigatório.")
		return
	}

	status, err := a.candidates.UpdateStatus(r.Context(), candidateID, request.Status)
	if err != nil {
		if errors.Is(err, services.ErrUnknownStatus) {
			writeError(w, http.StatusBadRequest, "Status inválido.")
			return
		}
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeBaserow).
			Errorf("failed to update status of candidate %v: %v", candidateID, err)
		writeError(w, http.StatusInternalServerError, "Erro ao atualizar status.")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"success": true, "status": status})
}
