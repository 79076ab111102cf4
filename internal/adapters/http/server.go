package httpadapter

import (
	"encoding/json"
	"errors"
	"html/template"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/hashicorp/go-hclog"

	api "finprobe/internal/api"
	"finprobe/internal/domain"
	"finprobe/internal/ports"
	"finprobe/internal/services/results"
)

// SessionCookie carries the browser's session id.
const SessionCookie = "finprobe_session"

type Options struct {
	MaxUploadBytes int64
	SessionTTL     time.Duration
	UploadRate     float64
	UploadBurst    int
	SecureCookies  bool
}

// Server implements the generated ServerInterface and serves the HTML pages.
type Server struct {
	analyses ports.Analyses
	results  ports.Results
	log      hclog.Logger
	opts     Options
	pages    *template.Template
}

var _ api.ServerInterface = (*Server)(nil)

func New(analyses ports.Analyses, res ports.Results, log hclog.Logger, opts Options) *Server {
	if opts.MaxUploadBytes <= 0 {
		opts.MaxUploadBytes = 10 << 20
	}
	return &Server{analyses: analyses, results: res, log: log, opts: opts, pages: parsePages()}
}

// Routes returns a chi.Router with the generated API handlers and the pages.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(s.log.Named("http")))
	r.Use(middleware.Recoverer)
	r.Use(uploadLimiter(s.opts.UploadRate, s.opts.UploadBurst))

	r.Get("/", s.uploadPage)
	r.Post("/upload", s.upload)
	r.Get("/results", s.resultsPage)

	api.HandlerWithOptions(s, api.ChiServerOptions{
		BaseRouter:       r,
		ErrorHandlerFunc: s.paramError,
	})
	return r
}

func (s *Server) GetHealthz(w http.ResponseWriter, r *http.Request) {
	ok := "ok"
	writeJSON(w, http.StatusOK, api.Health{Status: &ok})
}

func (s *Server) EvaluateDocument(w http.ResponseWriter, r *http.Request) {
	body := http.MaxBytesReader(w, r.Body, s.opts.MaxUploadBytes)
	a, err := s.analyses.Evaluate(r.Context(), body)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeAnalysis(w, r, a)
}

func (s *Server) PutSessionAnalysis(w http.ResponseWriter, r *http.Request, sessionId api.SessionId) {
	if !validSession(sessionId) {
		s.writeError(w, r, &domain.MalformedInputError{Field: "sessionId", Reason: "must be a UUID"})
		return
	}
	body := http.MaxBytesReader(w, r.Body, s.opts.MaxUploadBytes)
	a, err := s.analyses.Submit(r.Context(), sessionId, body)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.log.Info("analysis stored", "session", sessionId, "company", a.Company)
	s.writeAnalysis(w, r, a)
}

func (s *Server) GetSessionAnalysis(w http.ResponseWriter, r *http.Request, sessionId api.SessionId) {
	a, err := s.analyses.Current(r.Context(), sessionId)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeAnalysis(w, r, a)
}

func (s *Server) GetSessionChart(w http.ResponseWriter, r *http.Request, sessionId api.SessionId, params api.GetSessionChartParams) {
	a, err := s.analyses.Current(r.Context(), sessionId)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	view, err := s.results.Build(a)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	format := api.Points
	if params.Format != nil {
		format = *params.Format
	}
	switch format {
	case api.Points:
		writeJSON(w, http.StatusOK, toAPIChart(view))
	case api.Plotly:
		writeJSON(w, http.StatusOK, api.PlotlyFigure(view.Chart.Figure()))
	default:
		s.writeError(w, r, &domain.MalformedInputError{Field: "format", Reason: "must be points or plotly"})
	}
}

func (s *Server) writeAnalysis(w http.ResponseWriter, r *http.Request, a domain.Analysis) {
	view, err := s.results.Build(a)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toAPIAnalysis(view))
}

func (s *Server) paramError(w http.ResponseWriter, r *http.Request, err error) {
	writeJSON(w, http.StatusBadRequest, api.Error{Message: err.Error()})
}

// writeError maps domain errors to status codes. Input problems are reported
// to the caller verbatim; anything else is logged and hidden.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status, body := s.classify(r, err)
	writeJSON(w, status, body)
}

func (s *Server) classify(r *http.Request, err error) (int, api.Error) {
	var tooLarge *http.MaxBytesError
	var malformed *domain.MalformedInputError
	switch {
	case errors.As(err, &tooLarge):
		return http.StatusRequestEntityTooLarge, api.Error{Message: "upload is larger than the allowed size"}
	case errors.As(err, &malformed):
		e := api.Error{Message: malformed.Error()}
		if malformed.Field != "" {
			f := malformed.Field
			e.Field = &f
		}
		return http.StatusBadRequest, e
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, api.Error{Message: "no analysis for this session; upload data first"}
	}
	s.log.Error("request failed", "path", r.URL.Path, "request_id", middleware.GetReqID(r.Context()), "error", err)
	return http.StatusInternalServerError, api.Error{Message: "internal error"}
}

func toAPIAnalysis(v results.View) api.Analysis {
	a := v.Analysis
	out := api.Analysis{
		Id:        a.ID,
		Company:   v.Company,
		Flags:     api.Flags{},
		Insights:  v.Insights,
		Chart:     toAPIChart(v),
		CreatedAt: a.CreatedAt,
	}
	for name, val := range a.Flags {
		out.Flags[string(name)] = val
	}
	for _, c := range v.Cards {
		out.Cards = append(out.Cards, api.Card{Flag: string(c.Flag), Label: c.Label, Value: c.Value, Color: c.Color})
	}
	if a.SessionID != "" {
		sid := a.SessionID
		out.SessionId = &sid
	}
	if !a.ExpiresAt.IsZero() {
		exp := a.ExpiresAt
		out.ExpiresAt = &exp
	}
	return out
}

func toAPIChart(v results.View) api.Chart {
	c := v.Chart
	out := api.Chart{
		Title:      c.Title,
		XLabel:     c.XLabel,
		YLabel:     c.YLabel,
		Markers:    c.Markers,
		ShowLegend: c.ShowLegend,
		Points:     make([]api.ChartPoint, 0, len(c.Points)),
	}
	for _, p := range c.Points {
		out.Points = append(out.Points, api.ChartPoint{Year: p.Year, Value: p.Value.InexactFloat64()})
	}
	return out
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func validSession(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}
