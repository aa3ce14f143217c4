package server

import (
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/talentflow/talentflow/internal/entities"
	"github.com/talentflow/talentflow/internal/logger"
	"github.com/talentflow/talentflow/internal/services"
)

// closePopupHTML is sent on every callback outcome: the OAuth popup must
// close whatever happened server-side.
const closePopupHTML = `<script>window.close();</script>`

func (a *API) GoogleConnectHandler(w http.ResponseWriter, r *http.Request) {

	userID := r.URL.Query().Get("userId")
	if userID == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "userId é obrigatório"})
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"url": a.googleAuth.ConnectURL(userID)})
}

func (a *API) GoogleCallbackHandler(w http.ResponseWriter, r *http.Request) {

	code := r.URL.Query().Get("code")
	state := r.URL.Query().Get("state")

	a.googleAuth.HandleCallback(r.Context(), code, state)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(closePopupHTML))
}

func (a *API) GoogleDisconnectHandler(w http.ResponseWriter, r *http.Request) {

	var request struct {
		UserID int `json:"userId"`
	}
	if err := decodeJSON(r, &request); err != nil || request.UserID == 0 {
		writeError(w, http.StatusBadRequest, "userId é obrigatório")
		return
	}

	if err := a.googleAuth.Disconnect(r.Context(), request.UserID); err != nil {
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeBaserow).
			Errorf("failed to disconnect google account for user %v: %v", request.UserID, err)
		writeError(w, http.StatusInternalServerError, "Não foi possível desconectar a conta Google.")
		return
	}

	log.Infof("google calendar disconnected for user %v", request.UserID)
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "message": "Conta Google desconectada."})
}

type createEventRequest struct {
	UserID    string `json:"userId" validate:"required"`
	EventData struct {
		Title   string `json:"title" validate:"required"`
		Start   string `json:"start" validate:"required"`
		End     string `json:"end" validate:"required"`
		Details string `json:"details"`
	} `json:"eventData" validate:"required"`
	Candidate *entities.Candidate  `json:"candidate" validate:"required"`
	Job       *entities.JobPosting `json:"job" validate:"required"`
}

func (a *API) CreateCalendarEventHandler(w http.ResponseWriter, r *http.Request) {

	var request createEventRequest
	if err := decodeJSON(r, &request); err != nil {
		writeError(w, http.StatusBadRequest, "Dados insuficientes.")
		return
	}

	if err := validator.New().Struct(request); err != nil {
		writeError(w, http.StatusBadRequest, "Dados insuficientes.")
		return
	}

	userID, err := strconv.Atoi(request.UserID)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Dados insuficientes.")
		return
	}

	data := services.EventData{
		Title:   request.EventData.Title,
		Start:   request.EventData.Start,
		End:     request.EventData.End,
		Details: request.EventData.Details,
	}

	event, err := a.schedules.CreateCalendarEvent(r.Context(), userID, data, *request.Candidate, *request.Job)
	if err != nil {
		if errors.Is(err, services.ErrNotConnected) {
			writeError(w, http.StatusUnauthorized, "Usuário não conectado ao Google Calendar.")
			return
		}
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeGoogleAPI).
			Errorf("failed to create calendar event for user %v: %v", userID, err)
		writeError(w, http.StatusInternalServerError, "Falha ao criar evento.")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Evento criado com sucesso!",
		"data":    event,
	})
}
