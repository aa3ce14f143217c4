package server

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	log "github.com/sirupsen/logrus"
	"github.com/talentflow/talentflow/internal/logger"
	"github.com/talentflow/talentflow/internal/services"
)

func (a *API) ListSchedulesHandler(w http.ResponseWriter, r *http.Request) {

	schedules, err := a.schedules.List(r.Context())
	if err != nil {
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeBaserow).
			Errorf("failed to list schedules: %v", err)
		writeError(w, http.StatusInternalServerError, "Erro ao buscar agendamentos.")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"success": true, "schedules": schedules})
}

type createScheduleRequest struct {
	Title       string `json:"title" validate:"required"`
	Start       string `json:"start" validate:"required"`
	End         string `json:"end" validate:"required"`
	Details     string `json:"details"`
	CandidateID int    `json:"candidateId" validate:"required"`
	JobID       int    `json:"jobId" validate:"required"`
}

func (a *API) CreateScheduleHandler(w http.ResponseWriter, r *http.Request) {

	var request createScheduleRequest
	if err := decodeJSON(r, &request); err != nil {
		writeError(w, http.StatusBadRequest, "Dados inválidos.")
		return
	}

	if err := validator.New().Struct(request); err != nil {
		writeError(w, http.StatusBadRequest, "Dados insuficientes.")
		return
	}

	schedule, err := a.schedules.CreateSchedule(r.Context(), services.EventData{
		Title:   request.Title,
		Start:   request.Start,
		End:     request.End,
		Details: request.Details,
	}, request.CandidateID, request.JobID)
	if err != nil {
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeBaserow).
			Errorf("failed to create schedule: %v", err)
		writeError(w, http.StatusInternalServerError, "Erro ao criar agendamento.")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{"success": true, "schedule": schedule})
}
