package middleware

import (
	"log/slog"
	"net/http"
	"time"

	chimw "github.com/go-chi/chi/v5/middleware"
)

// RequestLogger logs every request with method, path, status, duration and the
// acting user (empty before identity resolution).
func RequestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		userID := ""
		if identity, ok := GetIdentity(r.Context()); ok {
			userID = identity.UserID
		}

		duration := time.Since(start).Milliseconds()
		if ww.Status() >= 500 {
			slog.Error("request failed",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"user_id", userID,
				"duration_ms", duration,
			)
		} else {
			slog.Info("request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"user_id", userID,
				"duration_ms", duration,
			)
		}
	})
}
