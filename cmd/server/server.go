package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/rs/cors"

	"github.com/cours-de-latin/conjugatio"
	"github.com/cours-de-latin/conjugatio/internal/config"
	"github.com/cours-de-latin/conjugatio/internal/ctxlog"
	"github.com/cours-de-latin/conjugatio/page"
	"github.com/cours-de-latin/conjugatio/pref"
	"github.com/cours-de-latin/conjugatio/render"
)

const (
	maxPageBytes = 8 << 20
	toggleURL    = "/api/preference/toggle"
)

// ---- JSON response types ------------------------------------------------

type parseResponse struct {
	Table       *conjugatio.ConjugationTable `json:"table"`
	Diagnostics []conjugatio.Diagnostic      `json:"diagnostics"`
}

type analyzeFormResponse struct {
	Form     string                `json:"form"`
	Analyses []conjugatio.Analysis `json:"analyses"`
}

type analyzeTextResponse struct {
	Results []conjugatio.TokenResult `json:"results"`
}

type preferenceResponse struct {
	IsNewViewVisible bool   `json:"isNewViewVisible"`
	Label            string `json:"label"`
	Button           string `json:"button"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// ---- server -------------------------------------------------------------

type server struct {
	logger         *slog.Logger
	renderer       *render.HTML
	store          pref.Store
	toggle         *pref.Toggle
	defaultNewView bool
}

func newServer(cfg config.Config, logger *slog.Logger) (*server, error) {
	store, err := pref.Open(cfg.Preferences.Path)
	if err != nil {
		return nil, err
	}
	opts := []render.Option{render.WithTemplatesDir(cfg.Render.Templates)}
	if !cfg.Render.Sanitize {
		opts = append(opts, render.WithoutSanitizer())
	}
	renderer, err := render.New(opts...)
	if err != nil {
		return nil, err
	}
	return &server{
		logger:         logger,
		renderer:       renderer,
		store:          store,
		toggle:         pref.NewToggleDefault(store, cfg.Preferences.DefaultNewView),
		defaultNewView: cfg.Preferences.DefaultNewView,
	}, nil
}

func (s *server) routes(allowedOrigins []string) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/parse", s.handleParse)
	mux.HandleFunc("/api/render", s.handleRender)
	mux.HandleFunc("/api/analyze", s.handleAnalyze)
	mux.HandleFunc("/api/preference/toggle", s.handleToggle)
	mux.HandleFunc("/api/preference", s.handlePreference)

	c := cors.New(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
		AllowedHeaders: []string{"Content-Type"},
	})
	return s.logRequests(c.Handler(mux))
}

// ---- helpers ------------------------------------------------------------

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		ctxlog.FromContext(r.Context()).Error("Encode error.", "error", err)
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	writeJSON(w, r, status, errorResponse{Error: msg})
}

// writeLocateError maps a page error to its status.
func writeLocateError(w http.ResponseWriter, r *http.Request, err error) {
	var locErr *conjugatio.LocateError
	switch {
	case errors.As(err, &locErr):
		writeError(w, r, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, page.ErrAlreadyReformatted):
		writeError(w, r, http.StatusConflict, err.Error())
	default:
		writeError(w, r, http.StatusBadRequest, err.Error())
	}
}

func readPage(w http.ResponseWriter, r *http.Request) ([]byte, bool) {
	if r.Method != http.MethodPost {
		writeError(w, r, http.StatusMethodNotAllowed, "POST required")
		return nil, false
	}
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxPageBytes))
	if err != nil {
		writeError(w, r, http.StatusRequestEntityTooLarge, fmt.Sprintf("read body: %v", err))
		return nil, false
	}
	if len(bytes.TrimSpace(body)) == 0 {
		writeError(w, r, http.StatusBadRequest, "body must be an HTML page")
		return nil, false
	}
	return body, true
}

func (s *server) preference(st pref.State) preferenceResponse {
	return preferenceResponse{
		IsNewViewVisible: st.NewViewVisible,
		Label:            st.Label(),
		Button:           st.ButtonLabel(),
	}
}

// ---- handlers -----------------------------------------------------------

func (s *server) handleParse(w http.ResponseWriter, r *http.Request) {
	body, ok := readPage(w, r)
	if !ok {
		return
	}
	table, diags, err := conjugatio.Parse(bytes.NewReader(body))
	if err != nil {
		writeLocateError(w, r, err)
		return
	}
	if diags == nil {
		diags = []conjugatio.Diagnostic{}
	}
	writeJSON(w, r, http.StatusOK, parseResponse{Table: table, Diagnostics: diags})
}

func (s *server) handleRender(w http.ResponseWriter, r *http.Request) {
	body, ok := readPage(w, r)
	if !ok {
		return
	}
	ctx := r.Context()

	var out []byte
	if r.URL.Query().Get("view") == "only" {
		table, _, err := conjugatio.Parse(bytes.NewReader(body))
		if err != nil {
			writeLocateError(w, r, err)
			return
		}
		out, err = s.renderer.Render(ctx, render.BuildView(table))
		if err != nil {
			writeError(w, r, http.StatusInternalServerError, err.Error())
			return
		}
	} else {
		res, err := page.New(page.Bytes(body), s.renderer, s.store,
			page.WithToggleURL(toggleURL),
			page.WithDefaultView(s.defaultNewView),
		).Run(ctx)
		if err != nil {
			writeLocateError(w, r, err)
			return
		}
		out = res.HTML
	}

	w.Header().Set("Content-Type", s.renderer.ContentType())
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(out); err != nil {
		ctxlog.FromContext(ctx).Error("Write error.", "error", err)
	}
}

func (s *server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, r, http.StatusMethodNotAllowed, "POST required")
		return
	}
	var body struct {
		HTML string `json:"html"`
		Text string `json:"text"`
		Form string `json:"form"`
	}
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxPageBytes))
	if err := dec.Decode(&body); err != nil || body.HTML == "" || (body.Text == "" && body.Form == "") {
		writeError(w, r, http.StatusBadRequest, "body must be JSON with 'html' and a non-empty 'text' or 'form' field")
		return
	}
	table, _, err := conjugatio.Parse(bytes.NewReader([]byte(body.HTML)))
	if err != nil {
		writeLocateError(w, r, err)
		return
	}

	if body.Form != "" {
		analyses := table.Analyze(body.Form)
		status := http.StatusOK
		if len(analyses) == 0 {
			status = http.StatusNotFound
			analyses = []conjugatio.Analysis{}
		}
		writeJSON(w, r, status, analyzeFormResponse{Form: body.Form, Analyses: analyses})
		return
	}

	results := table.AnalyzeText(body.Text)
	if results == nil {
		results = []conjugatio.TokenResult{}
	}
	for i := range results {
		if results[i].Analyses == nil {
			results[i].Analyses = []conjugatio.Analysis{}
		}
	}
	writeJSON(w, r, http.StatusOK, analyzeTextResponse{Results: results})
}

func (s *server) handlePreference(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, r, http.StatusMethodNotAllowed, "GET required")
		return
	}
	writeJSON(w, r, http.StatusOK, s.preference(s.toggle.State()))
}

func (s *server) handleToggle(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, r, http.StatusMethodNotAllowed, "POST required")
		return
	}
	st, err := s.toggle.Flip()
	if err != nil {
		writeError(w, r, http.StatusInternalServerError, err.Error())
		return
	}
	ctxlog.FromContext(r.Context()).Info("View toggled.", "visible", st.Label())
	writeJSON(w, r, http.StatusOK, s.preference(st))
}

// ---- middleware ---------------------------------------------------------

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (rec *statusRecorder) WriteHeader(status int) {
	rec.status = status
	rec.ResponseWriter.WriteHeader(status)
}

// logRequests attaches the logger to each request context and logs the
// outcome of every request.
func (s *server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		logger := s.logger.With("method", r.Method, "path", r.URL.Path)
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r.WithContext(ctxlog.WithLogger(r.Context(), logger)))
		logger.Debug("Request served.", "status", rec.status, "duration", time.Since(start))
	})
}
