package services

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	gocache "github.com/patrickmn/go-cache"
	"github.com/pkg/errors"
	"github.com/talentflow/talentflow/internal/entities"
	"golang.org/x/crypto/bcrypt"
)

const bcryptCost = 10

type userRepository interface {
	GetByEmail(ctx context.Context, email string) (*entities.UserProfile, error)
	GetByID(ctx context.Context, id int) (*entities.UserProfile, error)
	Create(ctx context.Context, fields map[string]any) (*entities.UserProfile, error)
	Update(ctx context.Context, id int, fields map[string]any) (*entities.UserProfile, error)
}

// AuthService owns credentials and the session lifecycle. A session is an
// opaque token mapped to a cached profile snapshot; the snapshot is
// refreshed on demand by re-reading the user row.
type AuthService struct {
	users    userRepository
	sessions *gocache.Cache
}

func NewAuthService(users userRepository, sessionTTL time.Duration) *AuthService {
	return &AuthService{
		users:    users,
		sessions: gocache.New(sessionTTL, 2*sessionTTL),
	}
}

type SignUpInput struct {
	Name     string
	Email    string
	Company  string
	Phone    string
	Password string
}

func (s *AuthService) SignUp(ctx context.Context, input SignUpInput) (entities.UserProfile, error) {

	email := strings.ToLower(input.Email)

	existing, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return entities.UserProfile{}, err
	}
	if existing != nil {
		return entities.UserProfile{}, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcryptCost)
	if err != nil {
		return entities.UserProfile{}, errors.Wrap(err, "failed to hash password")
	}

	user, err := s.users.Create(ctx, map[string]any{
		"nome":       input.Name,
		"empresa":    input.Company,
		"telefone":   input.Phone,
		"Email":      email,
		"senha_hash": string(hash),
	})
	if err != nil {
		return entities.UserProfile{}, err
	}

	return user.Public(), nil
}

// SignIn verifies credentials and opens a session; the returned token is
// the caller's bearer credential for authenticated routes.
func (s *AuthService) SignIn(ctx context.Context, email string, password string) (entities.UserProfile, string, error) {

	user, err := s.users.GetByEmail(ctx, strings.ToLower(email))
	if err != nil {
		return entities.UserProfile{}, "", err
	}
	if user == nil || user.PasswordHash == "" {
		return entities.UserProfile{}, "", ErrInvalidCredentials
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return entities.UserProfile{}, "", ErrInvalidCredentials
	}

	token := uuid.NewString()
	s.sessions.Set(token, *user, gocache.DefaultExpiration)

	return user.Public(), token, nil
}

func (s *AuthService) SignOut(token string) {
	s.sessions.Delete(token)
}

// SessionUser resolves the cached profile snapshot for a session token.
func (s *AuthService) SessionUser(token string) (entities.UserProfile, error) {

	cached, found := s.sessions.Get(token)
	if !found {
		return entities.UserProfile{}, ErrSessionNotFound
	}
	return cached.(entities.UserProfile), nil
}

// RefreshProfile re-reads the user row and replaces the session snapshot,
// picking up out-of-band changes such as a new refresh token.
func (s *AuthService) RefreshProfile(ctx context.Context, token string) (entities.UserProfile, error) {

	cached, err := s.SessionUser(token)
	if err != nil {
		return entities.UserProfile{}, err
	}

	user, err := s.users.GetByID(ctx, cached.ID)
	if err != nil {
		return entities.UserProfile{}, err
	}

	s.sessions.Set(token, *user, gocache.DefaultExpiration)
	return user.Public(), nil
}

var allowedProfileFields = map[string]string{
	"name":      "nome",
	"company":   "empresa",
	"phone":     "telefone",
	"avatarUrl": "avatar_url",
}

// UpdateProfile patches the allowed profile fields and refreshes the
// session snapshot. Writes are blind overwrites, last write wins.
func (s *AuthService) UpdateProfile(ctx context.Context, token string, fields map[string]string) (entities.UserProfile, error) {

	cached, err := s.SessionUser(token)
	if err != nil {
		return entities.UserProfile{}, err
	}

	patch := map[string]any{}
	for key, value := range fields {
		if column, ok := allowedProfileFields[key]; ok {
			patch[column] = value
		}
	}

	if len(patch) == 0 {
		return cached.Public(), nil
	}

	user, err := s.users.Update(ctx, cached.ID, patch)
	if err != nil {
		return entities.UserProfile{}, err
	}

	s.sessions.Set(token, *user, gocache.DefaultExpiration)
	return user.Public(), nil
}
