package server

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"imgupload-go/internal/context"
	"imgupload-go/internal/session"
	"imgupload-go/internal/uploader"
)

// SessionMiddleware attaches the session's upload component to the request
// context. Only IDs the store issued are adopted; anything else starts a new
// session with a freshly mounted component. The cookie is refreshed on every
// request so it lives as long as the session does.
func (s *Server) SessionMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var (
			id        string
			component *uploader.Component
		)

		if cookie, err := r.Cookie(session.CookieName); err == nil && session.ValidID(cookie.Value) {
			if c, ok := s.sessions.Lookup(cookie.Value); ok {
				id, component = cookie.Value, c
			}
		}
		if component == nil {
			id, component = s.sessions.Mount()
		}

		http.SetCookie(w, &http.Cookie{
			Name:     session.CookieName,
			Value:    id,
			Path:     "/",
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
			MaxAge:   int(s.sessions.TTL().Seconds()),
		})

		next.ServeHTTP(w, r.WithContext(context.WithComponent(r.Context(), id, component)))
	})
}

// requestLogger logs every request through zerolog
func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		log.Debug().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Msg("Request started")

		defer func() {
			log.Info().
				Str("request_id", middleware.GetReqID(r.Context())).
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Int("status", ww.Status()).
				Int("bytes", ww.BytesWritten()).
				Dur("duration", time.Since(start)).
				Msg("Request completed")
		}()

		next.ServeHTTP(ww, r)
	})
}
