// Package server exposes the HTTP surface: the Google OAuth relay endpoints
// consumed by the browser popup flow and the application API backing the
// dashboard, kanban and agenda views.
package server

import (
	"context"

	"github.com/talentflow/talentflow/internal/clients/webhook"
	"github.com/talentflow/talentflow/internal/entities"
	"github.com/talentflow/talentflow/internal/services"
	calendar "google.golang.org/api/calendar/v3"
)

type authService interface {
	SignUp(ctx context.Context, input services.SignUpInput) (entities.UserProfile, error)
	SignIn(ctx context.Context, email string, password string) (entities.UserProfile, string, error)
	SignOut(token string)
	SessionUser(token string) (entities.UserProfile, error)
	RefreshProfile(ctx context.Context, token string) (entities.UserProfile, error)
	UpdateProfile(ctx context.Context, token string, fields map[string]string) (entities.UserProfile, error)
}

type googleAuthService interface {
	ConnectURL(userID string) string
	HandleCallback(ctx context.Context, code string, state string)
	Disconnect(ctx context.Context, userID int) error
}

type scheduleService interface {
	List(ctx context.Context) ([]entities.ScheduleEvent, error)
	CreateSchedule(ctx context.Context, data services.EventData, candidateID int, jobID int) (*entities.ScheduleEvent, error)
	CreateCalendarEvent(ctx context.Context, userID int, data services.EventData,
		candidate entities.Candidate, job entities.JobPosting) (*calendar.Event, error)
}

type candidateService interface {
	FetchUserData(ctx context.Context, userID int) (services.UserData, error)
	UpdateStatus(ctx context.Context, candidateID int, value string) (entities.CandidateStatus, error)
}

type jobService interface {
	ListForUser(ctx context.Context, userID int) ([]entities.JobPosting, error)
	Create(ctx context.Context, userID int, input services.JobInput) (*entities.JobPosting, error)
	Delete(ctx context.Context, jobID int) error
}

type screeningService interface {
	ForwardBatch(ctx context.Context, jobID int, userID int, files []webhook.ResumeFile) error
}

type API struct {
	auth       authService
	googleAuth googleAuthService
	schedules  scheduleService
	candidates candidateService
	jobs       jobService
	screening  screeningService
}

func NewAPI(auth authService, googleAuth googleAuthService, schedules scheduleService,
	candidates candidateService, jobs jobService, screening screeningService) *API {

	return &API{
		auth:       auth,
		googleAuth: googleAuth,
		schedules:  schedules,
		candidates: candidates,
		jobs:       jobs,
		screening:  screening,
	}
}
