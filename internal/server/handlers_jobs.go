package server

import (
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	log "github.com/sirupsen/logrus"
	"github.com/talentflow/talentflow/internal/logger"
	"github.com/talentflow/talentflow/internal/services"
)

func (a *API) ListJobsHandler(w http.ResponseWriter, r *http.Request) {

	jobs, err := a.jobs.ListForUser(r.Context(), sessionUser(r).ID)
	if err != nil {
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeBaserow).
			Errorf("failed to list jobs: %v", err)
		writeError(w, http.StatusInternalServerError, "Erro ao buscar vagas.")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"success": true, "jobs": jobs})
}

type createJobRequest struct {
	JobTitle       string `json:"jobTitle" validate:"required"`
	JobDescription string `json:"jobDescription" validate:"required"`
	RequiredSkills string `json:"requiredSkills"`
	DesiredSkills  string `json:"desiredSkills"`
}

func (a *API) CreateJobHandler(w http.ResponseWriter, r *http.Request) {

	var request createJobRequest
	if err := decodeJSON(r, &request); err != nil {
		writeError(w, http.StatusBadRequest, "Dados inválidos.")
		return
	}

	if err := validator.New().Struct(request); err != nil {
		writeError(w, http.StatusBadRequest, "Título e descrição são obrigatórios.")
		return
	}

	job, err := a.jobs.Create(r.Context(), sessionUser(r).ID, services.JobInput{
		Title:          request.JobTitle,
		Description:    request.JobDescription,
		RequiredSkills: request.RequiredSkills,
		DesiredSkills:  request.DesiredSkills,
	})
	if err != nil {
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeBaserow).
			Errorf("failed to create job: %v", err)
		writeError(w, http.StatusInternalServerError, "Erro ao criar vaga.")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{"success": true, "job": job})
}

func (a *API) DeleteJobHandler(w http.ResponseWriter, r *http.Request) {

	jobID, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "ID de vaga inválido.")
		return
	}

	if err := a.jobs.Delete(r.Context(), jobID); err != nil {
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeBaserow).
			Errorf("failed to delete job %v: %v", jobID, err)
		writeError(w, http.StatusInternalServerError, "Erro ao excluir vaga.")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}
