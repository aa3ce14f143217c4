package services

import "github.com/pkg/errors"

// Sentinel errors that handlers map onto the 4xx surface. Upstream provider
// failures are wrapped and surface as generic 5xx messages instead.
var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailTaken         = errors.New("email is already registered")
	ErrNotConnected       = errors.New("user is not connected to Google Calendar")
	ErrUnknownStatus      = errors.New("unknown candidate status")
	ErrSessionNotFound    = errors.New("session not found or expired")
	ErrNotConfigured      = errors.New("screening webhook is not configured")
)
