package server

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/dhanamorganics/storefront/internal/common"
	"github.com/dhanamorganics/storefront/internal/logging"
	"github.com/dhanamorganics/storefront/internal/models"
)

type ctxKey string

const userKey ctxKey = "user"

// profileFromContext returns the authenticated profile placed by requireAuth.
func profileFromContext(ctx context.Context) (models.UserProfile, bool) {
	p, ok := ctx.Value(userKey).(models.UserProfile)
	return p, ok
}

// requireAuth validates the bearer token and loads the session profile into
// the request context.
func (s *Server) requireAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		token, found := strings.CutPrefix(header, "Bearer ")
		if !found || token == "" {
			respondError(w, common.ErrUnauthorized)
			return
		}

		profile, err := s.auth.CurrentUser(r.Context(), token)
		if err != nil {
			respondError(w, err)
			return
		}

		ctx := context.WithValue(r.Context(), userKey, profile)
		next(w, r.WithContext(ctx))
	}
}

func loggingMiddleware(logger logging.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &responseRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		logger.Info(r.Context(), "request completed",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration_ms", time.Since(start).Milliseconds(),
		)
	})
}

type responseRecorder struct {
	http.ResponseWriter
	status int
}

func (r *responseRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}
