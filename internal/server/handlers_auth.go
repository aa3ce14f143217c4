package server

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/talentflow/talentflow/internal/logger"
	"github.com/talentflow/talentflow/internal/services"
)

type signUpRequest struct {
	Name     string `json:"nome" validate:"required"`
	Company  string `json:"empresa"`
	Phone    string `json:"telefone"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

func (a *API) SignUpHandler(w http.ResponseWriter, r *http.Request) {

	var request signUpRequest
	if err := decodeJSON(r, &request); err != nil {
		writeError(w, http.StatusBadRequest, "Dados inválidos.")
		return
	}

	if err := validator.New().Struct(request); err != nil {
		writeError(w, http.StatusBadRequest, "Dados inválidos.")
		return
	}

	user, err := a.auth.SignUp(r.Context(), services.SignUpInput{
		Name:     request.Name,
		Company:  request.Company,
		Phone:    request.Phone,
		Email:    request.Email,
		Password: request.Password,
	})
	if err != nil {
		if errors.Is(err, services.ErrEmailTaken) {
			writeError(w, http.StatusConflict, "Este e-mail já está cadastrado.")
			return
		}
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeBaserow).
			Errorf("failed to sign up user: %v", err)
		writeError(w, http.StatusInternalServerError, "Erro ao criar conta.")
		return
	}

	log.Infof("new account created: %v", user.Email)
	writeJSON(w, http.StatusCreated, map[string]any{"success": true, "user": user})
}

func (a *API) SignInHandler(w http.ResponseWriter, r *http.Request) {

	var request struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := decodeJSON(r, &request); err != nil || request.Email == "" || request.Password == "" {
		writeError(w, http.StatusBadRequest, "E-mail e senha são obrigatórios.")
		return
	}

	user, token, err := a.auth.SignIn(r.Context(), request.Email, request.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			writeError(w, http.StatusUnauthorized, "E-mail ou senha incorretos.")
			return
		}
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeBaserow).
			Errorf("failed to sign in user: %v", err)
		writeError(w, http.StatusInternalServerError, "Erro ao fazer login.")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"success": true, "user": user, "token": token})
}

func (a *API) SignOutHandler(w http.ResponseWriter, r *http.Request) {
	a.auth.SignOut(bearerToken(r))
	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}

// ProfileHandler returns the session snapshot; ?refresh=true re-reads the
// user row first so a freshly connected calendar shows up without re-login.
func (a *API) ProfileHandler(w http.ResponseWriter, r *http.Request) {

	if r.URL.Query().Get("refresh") == "true" {
		user, err := a.auth.RefreshProfile(r.Context(), bearerToken(r))
		if err != nil {
			log.WithField(logger.ErrorTypeField, logger.ErrorTypeBaserow).
				Errorf("failed to refresh profile: %v", err)
			writeError(w, http.StatusInternalServerError, "Erro ao atualizar perfil.")
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"success": true, "user": user})
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"success": true, "user": sessionUser(r).Public()})
}

func (a *API) UpdateProfileHandler(w http.ResponseWriter, r *http.Request) {

	var fields map[string]string
	if err := decodeJSON(r, &fields); err != nil {
		writeError(w, http.StatusBadRequest, "Dados inválidos.")
		return
	}

	user, err := a.auth.UpdateProfile(r.Context(), bearerToken(r), fields)
	if err != nil {
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeBaserow).
			Errorf("failed to update profile: %v", err)
		writeError(w, http.StatusInternalServerError, "Erro ao atualizar perfil.")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"success": true, "user": user})
}
