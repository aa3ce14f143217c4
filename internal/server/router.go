package server

import (
	"net/http"

	"github.com/talentflow/talentflow/internal/metrics"
)

func NewRouter(a *API, frontendOrigin string) http.Handler {
	mux := http.NewServeMux()

	// Health check (for container orchestrators and uptime probes)
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"healthy"}`))
	})

	mux.Handle("GET /metrics", metrics.Handler())

	// Google OAuth relay; consumed by the browser popup, no session required
	mux.HandleFunc("GET /api/google/auth/connect", a.GoogleConnectHandler)
	mux.HandleFunc("GET /api/google/auth/callback", a.GoogleCallbackHandler)
	mux.HandleFunc("POST /api/google/auth/disconnect", a.GoogleDisconnectHandler)
	mux.HandleFunc("POST /api/google/calendar/create-event", a.CreateCalendarEventHandler)

	// Authentication
	mux.HandleFunc("POST /api/auth/signup", a.SignUpHandler)
	mux.HandleFunc("POST /api/auth/signin", a.SignInHandler)
	mux.HandleFunc("POST /api/auth/signout", a.requireSession(a.SignOutHandler))
	mux.HandleFunc("GET /api/auth/profile", a.requireSession(a.ProfileHandler))
	mux.HandleFunc("PATCH /api/auth/profile", a.requireSession(a.UpdateProfileHandler))

	// Job postings
	mux.HandleFunc("GET /api/jobs", a.requireSession(a.ListJobsHandler))
	mux.HandleFunc("POST /api/jobs", a.requireSession(a.CreateJobHandler))
	mux.HandleFunc("DELETE /api/jobs/{id}", a.requireSession(a.DeleteJobHandler))

	// Candidates (merged sources, kanban transitions)
	mux.HandleFunc("GET /api/candidates", a.requireSession(a.ListCandidatesHandler))
	mux.HandleFunc("PATCH /api/candidates/{id}/status", a.requireSession(a.UpdateCandidateStatusHandler))

	// Interview agenda
	mux.HandleFunc("GET /api/schedules", a.requireSession(a.ListSchedulesHandler))
	mux.HandleFunc("POST /api/schedules", a.requireSession(a.CreateScheduleHandler))

	// Résumé batch upload, forwarded to the scoring collaborator
	mux.HandleFunc("POST /api/screenings/upload", a.requireSession(a.UploadResumesHandler))

	return corsMiddleware(frontendOrigin, metricsMiddleware(mux))
}
