package services

import (
	"context"
	"strconv"

	log "github.com/sirupsen/logrus"
	"github.com/talentflow/talentflow/internal/logger"
	"golang.org/x/oauth2"
)

type oauthClient interface {
	AuthCodeURL(state string) string
	Exchange(ctx context.Context, code string) (*oauth2.Token, error)
}

type refreshTokenStore interface {
	SetGoogleRefreshToken(ctx context.Context, id int, token *string) error
}

// GoogleAuthService implements the connect/callback/disconnect flow. The
// callback never propagates failure: the browser popup must close whatever
// happens, so everything here degrades to logging.
type GoogleAuthService struct {
	google oauthClient
	users  refreshTokenStore
}

func NewGoogleAuthService(google oauthClient, users refreshTokenStore) *GoogleAuthService {
	return &GoogleAuthService{google: google, users: users}
}

// ConnectURL is pure URL construction; the user id travels as the opaque
// state parameter.
func (s *GoogleAuthService) ConnectURL(userID string) string {
	return s.google.AuthCodeURL(userID)
}

// HandleCallback exchanges the one-time code and persists the refresh token
// when the provider reissued one. A missing refresh token leaves prior
// state untouched.
func (s *GoogleAuthService) HandleCallback(ctx context.Context, code string, state string) {

	if code == "" {
		log.Error("google callback received without an authorization code")
		return
	}

	userID, err := strconv.Atoi(state)
	if err != nil {
		log.Errorf("google callback received with invalid state %q: %v", state, err)
		return
	}

	token, err := s.google.Exchange(ctx, code)
	if err != nil {
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeGoogleAPI).
			Errorf("google token exchange failed for user %v: %v", userID, err)
		return
	}

	if token.RefreshToken == "" {
		log.Warnf("no refresh token received for user %v, keeping previous state", userID)
		return
	}

	if err := s.users.SetGoogleRefreshToken(ctx, userID, &token.RefreshToken); err != nil {
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeBaserow).
			Errorf("failed to persist refresh token for user %v: %v", userID, err)
		return
	}

	log.Infof("refresh token stored for user %v", userID)
}

// Disconnect clears the stored refresh token unconditionally; repeating the
// call is a no-op.
func (s *GoogleAuthService) Disconnect(ctx context.Context, userID int) error {
	return s.users.SetGoogleRefreshToken(ctx, userID, nil)
}
