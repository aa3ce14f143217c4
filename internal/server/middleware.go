package server

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/talentflow/talentflow/internal/entities"
	"github.com/talentflow/talentflow/internal/metrics"
)

type contextKey string

const sessionUserKey contextKey = "sessionUser"

// corsMiddleware allows the configured frontend origin only; the API key
// model gives every browser session the same storage credentials, so the
// origin check is the sole cross-site boundary.
func corsMiddleware(origin string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if origin != "" {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PATCH, DELETE, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Authorization, Content-Type")
		}
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func metricsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		metrics.RequestDuration.WithLabelValues(r.URL.Path).Observe(time.Since(start).Seconds())
	})
}

// requireSession resolves the bearer token into the cached profile snapshot
// and injects it into the request context.
func (a *API) requireSession(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		token := bearerToken(r)
		if token == "" {
			writeError(w, http.StatusUnauthorized, "Sessão não encontrada.")
			return
		}

		user, err := a.auth.SessionUser(token)
		if err != nil {
			writeError(w, http.StatusUnauthorized, "Sessão expirada. Faça login novamente.")
			return
		}

		ctx := context.WithValue(r.Context(), sessionUserKey, user)
		next(w, r.WithContext(ctx))
	}
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	return ""
}

func sessionUser(r *http.Request) entities.UserProfile {
	user, _ := r.Context().Value(sessionUserKey).(entities.UserProfile)
	return user
}
