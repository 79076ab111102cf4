package httpadapter

import (
	"embed"
	"encoding/json"
	"errors"
	"html/template"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"finprobe/internal/domain"
	"finprobe/internal/services/results"
)

//go:embed templates/*.html
var templates embed.FS

func parsePages() *template.Template {
	return template.Must(template.ParseFS(templates, "templates/*.html"))
}

type uploadData struct {
	Page    string
	Success string
	Error   string
}

type resultsData struct {
	Page         string
	View         results.View
	InsightsHTML template.HTML
	FigureJSON   template.JS
}

func (s *Server) uploadPage(w http.ResponseWriter, r *http.Request) {
	s.render(w, http.StatusOK, "upload", uploadData{Page: "upload"})
}

// upload accepts a multipart form with a single JSON file in "file" and makes
// it the current analysis of the browser session.
func (s *Server) upload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.opts.MaxUploadBytes)
	file, header, err := r.FormFile("file")
	if err != nil {
		var tooLarge *http.MaxBytesError
		msg := "Choose a JSON file to upload."
		status := http.StatusBadRequest
		if errors.As(err, &tooLarge) {
			msg, status = "The file is larger than the allowed upload size.", http.StatusRequestEntityTooLarge
		}
		s.render(w, status, "upload", uploadData{Page: "upload", Error: msg})
		return
	}
	defer file.Close()
	if !strings.EqualFold(filepath.Ext(header.Filename), ".json") {
		s.render(w, http.StatusBadRequest, "upload", uploadData{Page: "upload", Error: "Only .json files are accepted."})
		return
	}

	sessionID := s.ensureSession(w, r)
	a, err := s.analyses.Submit(r.Context(), sessionID, file)
	if err != nil {
		status, body := s.classify(r, err)
		s.render(w, status, "upload", uploadData{Page: "upload", Error: body.Message})
		return
	}
	s.log.Info("analysis stored", "session", sessionID, "company", a.Company, "file", header.Filename)
	s.render(w, http.StatusOK, "upload", uploadData{Page: "upload", Success: "Data processed successfully!"})
}

func (s *Server) resultsPage(w http.ResponseWriter, r *http.Request) {
	data := resultsData{Page: "results"}
	c, err := r.Cookie(SessionCookie)
	if err != nil {
		s.render(w, http.StatusOK, "results", data)
		return
	}
	a, err := s.analyses.Current(r.Context(), c.Value)
	if errors.Is(err, domain.ErrNotFound) {
		s.render(w, http.StatusOK, "results", data)
		return
	}
	if err != nil {
		s.renderError(w, r, err)
		return
	}
	view, err := s.results.Build(a)
	if err != nil {
		s.renderError(w, r, err)
		return
	}
	fig, err := json.Marshal(view.Chart.Figure())
	if err != nil {
		s.renderError(w, r, err)
		return
	}
	data.View = view
	data.InsightsHTML = template.HTML(view.InsightsHTML)
	data.FigureJSON = template.JS(fig)
	s.render(w, http.StatusOK, "results", data)
}

// ensureSession returns the session id from the cookie, issuing a new one if
// the browser has none.
func (s *Server) ensureSession(w http.ResponseWriter, r *http.Request) string {
	if c, err := r.Cookie(SessionCookie); err == nil && validSession(c.Value) {
		return c.Value
	}
	id := uuid.NewString()
	cookie := &http.Cookie{
		Name:     SessionCookie,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		Secure:   s.opts.SecureCookies,
		SameSite: http.SameSiteLaxMode,
	}
	if s.opts.SessionTTL > 0 {
		cookie.MaxAge = int(s.opts.SessionTTL.Seconds())
	}
	http.SetCookie(w, cookie)
	return id
}

func (s *Server) renderError(w http.ResponseWriter, r *http.Request, err error) {
	status, body := s.classify(r, err)
	http.Error(w, body.Message, status)
}

func (s *Server) render(w http.ResponseWriter, status int, name string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := s.pages.ExecuteTemplate(w, name, data); err != nil {
		s.log.Error("render page", "page", name, "error", err)
	}
}
