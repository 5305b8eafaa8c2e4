package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	_ "github.com/joho/godotenv/autoload"
	"github.com/rs/zerolog/log"

	"imgupload-go/internal/config"
	"imgupload-go/internal/session"
	"imgupload-go/internal/uploader"
)

// Server represents the HTTP server and its dependencies
type Server struct {
	config   *config.Config
	client   *uploader.Client
	sessions *session.Store
}

// NewServer creates a new server instance. Every session mounts its own
// component posting through client.
func NewServer(config *config.Config, client *uploader.Client) (*Server, error) {
	if config == nil {
		return nil, fmt.Errorf("config is required")
	}
	if client == nil {
		return nil, fmt.Errorf("upload client is required")
	}

	sessions := session.NewStore(config.SessionTTL, func() *uploader.Component {
		return uploader.NewComponent(client)
	})

	return &Server{
		config:   config,
		client:   client,
		sessions: sessions,
	}, nil
}

// Start builds the HTTP server. The write timeout is left unset since an
// upload click waits for the backend without a deadline.
func (s *Server) Start() (*http.Server, error) {
	srv := &http.Server{
		Addr:        fmt.Sprintf(":%d", s.config.Port),
		Handler:     s.RegisterRoutes(),
		IdleTimeout: time.Minute,
		ReadTimeout: 30 * time.Second,
	}

	log.Info().
		Int("port", s.config.Port).
		Str("env", s.config.Env).
		Str("upload_endpoint", s.client.Endpoint()).
		Msg("starting server")

	return srv, nil
}

// sendJSON sends a JSON response with consistent formatting
func (s *Server) sendJSON(w http.ResponseWriter, status int, success bool, message string, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	response := APIResponse{
		Success: success,
		Message: message,
		Data:    data,
	}

	if err := json.NewEncoder(w).Encode(response); err != nil {
		log.Error().Err(err).Msg("error encoding JSON response")
	}
}
