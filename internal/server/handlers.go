package server

import (
	"net/http"

	"github.com/a-h/templ"
	"github.com/rs/zerolog/log"

	"imgupload-go/cmd/web/pages"
	"imgupload-go/internal/context"
	"imgupload-go/internal/uploader"
)

// Page Handlers
func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	component := context.GetComponentFromContext(r.Context())
	if component == nil {
		http.Error(w, "No session", http.StatusInternalServerError)
		return
	}

	templ.Handler(pages.HomePage(viewOf(component))).ServeHTTP(w, r)
}

// Component Handlers

// handleFileChange binds the file input. An empty selection keeps the
// current file.
func (s *Server) handleFileChange(w http.ResponseWriter, r *http.Request) {
	component := context.GetComponentFromContext(r.Context())
	if component == nil {
		http.Error(w, "No session", http.StatusInternalServerError)
		return
	}

	if err := r.ParseMultipartForm(s.config.FormMemory); err != nil {
		log.Warn().Err(err).Msg("could not parse file selection, keeping current file")
		s.renderComponent(w, r, component)
		return
	}
	defer func() {
		if err := r.MultipartForm.RemoveAll(); err != nil {
			log.Error().Err(err).Msg("error removing temporary form files")
		}
	}()

	files, err := uploader.FilesFromForm(r.MultipartForm, "file")
	if err != nil {
		log.Error().Err(err).Msg("error reading selected file")
		s.renderComponent(w, r, component)
		return
	}

	log.Debug().
		Str("session", context.GetSessionIDFromContext(r.Context())).
		Int("files", len(files)).
		Msg("file input changed")

	component.OnFileChange(files)
	s.renderComponent(w, r, component)
}

// handleUploadClick waits for the upload to finish before rendering. Upload
// failures are only logged, the response always shows the current state.
func (s *Server) handleUploadClick(w http.ResponseWriter, r *http.Request) {
	component := context.GetComponentFromContext(r.Context())
	if component == nil {
		http.Error(w, "No session", http.StatusInternalServerError)
		return
	}

	log.Debug().
		Str("session", context.GetSessionIDFromContext(r.Context())).
		Msg("upload clicked")

	component.OnUploadClick(r.Context())
	s.renderComponent(w, r, component)
}

// renderComponent answers htmx requests with the component fragment and
// plain form posts with a redirect to the page.
func (s *Server) renderComponent(w http.ResponseWriter, r *http.Request, component *uploader.Component) {
	if r.Header.Get("HX-Request") != "true" {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	if err := pages.ImageUpload(viewOf(component)).Render(r.Context(), w); err != nil {
		log.Error().Err(err).Msg("error rendering upload component")
		http.Error(w, "Error rendering component", http.StatusInternalServerError)
	}
}

func viewOf(component *uploader.Component) pages.UploadView {
	return pages.UploadView{
		File:   component.SelectedFile(),
		Result: component.Result(),
	}
}

// API Handlers
func (s *Server) healthHandler(w http.ResponseWriter, r *http.Request) {
	s.sendJSON(w, http.StatusOK, true, "Health check successful", HealthData{
		Status:         "up",
		Sessions:       s.sessions.Count(),
		UploadEndpoint: s.client.Endpoint(),
	})
}

// Error Handlers
func (s *Server) handleError404(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusNotFound)
	if err := pages.Error404().Render(r.Context(), w); err != nil {
		log.Error().Err(err).Msg("error rendering 404 page")
	}
}
