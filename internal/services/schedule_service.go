package services

import (
	"context"
	"fmt"

	"github.com/asaskevich/EventBus"
	"github.com/pkg/errors"
	"github.com/talentflow/talentflow/internal/clients/google"
	"github.com/talentflow/talentflow/internal/entities"
	"github.com/talentflow/talentflow/internal/events"
	"github.com/talentflow/talentflow/internal/metrics"
	calendar "google.golang.org/api/calendar/v3"
)

type calendarClient interface {
	CreateEvent(ctx context.Context, refreshToken string, input google.EventInput) (*calendar.Event, error)
}

type scheduleUserRepository interface {
	GetByID(ctx context.Context, id int) (*entities.UserProfile, error)
}

type scheduleRepository interface {
	List(ctx context.Context) ([]entities.ScheduleEvent, error)
	Create(ctx context.Context, fields map[string]any) (*entities.ScheduleEvent, error)
}

type EventData struct {
	Title   string
	Start   string
	End     string
	Details string
}

// ScheduleService creates interview rows and mirrors them into Google
// Calendar. The calendar event is the transactional unit of success; the
// automation notification rides the bus and never affects the result.
type ScheduleService struct {
	bus       EventBus.Bus
	users     scheduleUserRepository
	schedules scheduleRepository
	calendar  calendarClient
}

func NewScheduleService(bus EventBus.Bus, users scheduleUserRepository,
	schedules scheduleRepository, calendar calendarClient) *ScheduleService {

	return &ScheduleService{bus: bus, users: users, schedules: schedules, calendar: calendar}
}

func (s *ScheduleService) List(ctx context.Context) ([]entities.ScheduleEvent, error) {
	return s.schedules.List(ctx)
}

// CreateSchedule stores the interview row in the schedules table.
func (s *ScheduleService) CreateSchedule(ctx context.Context, data EventData,
	candidateID int, jobID int) (*entities.ScheduleEvent, error) {

	return s.schedules.Create(ctx, map[string]any{
		"Título":    data.Title,
		"Início":    data.Start,
		"Fim":       data.End,
		"Detalhes":  data.Details,
		"Candidato": []int{candidateID},
		"Vaga":      []int{jobID},
	})
}

// CreateCalendarEvent mirrors an interview into the user's primary
// calendar. A user without a stored refresh token gets ErrNotConnected
// before any provider call is attempted.
func (s *ScheduleService) CreateCalendarEvent(ctx context.Context, userID int, data EventData,
	candidate entities.Candidate, job entities.JobPosting) (*calendar.Event, error) {

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if !user.GoogleConnected() {
		return nil, ErrNotConnected
	}

	input := google.EventInput{
		Title:       data.Title,
		Description: eventDescription(candidate, data.Details),
		Start:       data.Start,
		End:         data.End,
	}

	event, err := s.calendar.CreateEvent(ctx, user.GoogleRefreshToken, input)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create calendar event")
	}

	metrics.CalendarEventsCounter.Inc()

	s.bus.Publish(events.InterviewScheduledTopic, events.InterviewScheduled{
		Recruiter:       user.Public(),
		Candidate:       candidate,
		Job:             job,
		Title:           data.Title,
		Start:           data.Start,
		End:             data.End,
		Details:         data.Details,
		GoogleEventLink: event.HtmlLink,
	})

	return event, nil
}

func eventDescription(candidate entities.Candidate, details string) string {

	phone := candidate.Phone
	if phone == "" {
		phone = "Não informado"
	}
	if details == "" {
		details = "Nenhum detalhe adicional."
	}

	return fmt.Sprintf("Entrevista com o candidato: %s.\nTelefone: %s\n\n--- Detalhes adicionais ---\n%s",
		candidate.Name, phone, details)
}
