package server

import (
	"net/http"
	"strconv"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/talentflow/talentflow/internal/clients/webhook"
	"github.com/talentflow/talentflow/internal/logger"
	"github.com/talentflow/talentflow/internal/services"
)

const maxUploadMemory = 32 << 20 // 32 MB

// UploadResumesHandler accepts a multipart résumé batch and relays it to
// the scoring collaborator. Files stream through unparsed; the response
// only confirms the hand-off, scored rows land in storage asynchronously.
func (a *API) UploadResumesHandler(w http.ResponseWriter, r *http.Request) {

	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		writeError(w, http.StatusBadRequest, "Envio inválido.")
		return
	}

	jobID, err := strconv.Atoi(r.FormValue("jobId"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "jobId é obrigatório.")
		return
	}

	headers := r.MultipartForm.File["files"]
	if len(headers) == 0 {
		writeError(w, http.StatusBadRequest, "Nenhum arquivo enviado.")
		return
	}

	var files []webhook.ResumeFile
	for _, header := range headers {
		file, err := header.Open()
		if err != nil {
			writeError(w, http.StatusBadRequest, "Envio inválido.")
			return
		}
		defer file.Close()
		files = append(files, webhook.ResumeFile{Name: header.Filename, Content: file})
	}

	err = a.screening.ForwardBatch(r.Context(), jobID, sessionUser(r).ID, files)
	if err != nil {
		if errors.Is(err, services.ErrNotConfigured) {
			writeError(w, http.StatusServiceUnavailable, "Serviço de triagem não configurado.")
			return
		}
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeWebhook).
			Errorf("failed to forward resume batch: %v", err)
		writeError(w, http.StatusBadGateway, "Falha ao enviar currículos para triagem.")
		return
	}

	log.Infof("forwarded %v resumes for job %v", len(files), jobID)
	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Currículos enviados para triagem.",
	})
}
