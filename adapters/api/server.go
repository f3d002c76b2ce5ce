// Package api exposes decomposition runs over HTTP.
package api

import (
	"context"
	"encoding/json"
	"net/http"

	"roikit/app"
	"roikit/domain/core"
	"roikit/domain/inequality"
	"roikit/domain/sample"
	"roikit/internal"
	"roikit/internal/report"
	"roikit/ports"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Server routes decomposition requests to the application service. An
// optional wage model supplies default Mincer coefficients to premium
// requests that carry none.
type Server struct {
	logger    *internal.Logger
	wageModel ports.WageModel
}

func NewServer(logger *internal.Logger, wageModel ports.WageModel) *Server {
	if logger == nil {
		logger = internal.DefaultLogger
	}
	return &Server{logger: logger, wageModel: wageModel}
}

// Router builds the HTTP routing tree.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)
	r.Route("/v1", func(r chi.Router) {
		r.Post("/decompose", s.handleDecompose)
		r.Post("/premium", s.handlePremium)
	})
	return r
}

// decomposeRequest carries an inline microdata table plus run options.
type decomposeRequest struct {
	Title        string              `json:"title"`
	Columns      []string            `json:"columns"`
	Rows         []map[string]string `json:"rows"`
	GroupColumns []string            `json:"group_columns"`
	ValueColumn  string              `json:"value_column"`
	SampleSize   int                 `json:"sample_size"`
	Seed         int64               `json:"seed"`
}

type decomposeResponse struct {
	RunID          string                      `json:"run_id"`
	Decompositions []inequality.Decomposition  `json:"decompositions"`
	Failures       map[inequality.Index]string `json:"failures,omitempty"`
	Summaries      []report.GroupSummary       `json:"summaries"`
	Diagnostics    []string                    `json:"diagnostics,omitempty"`
}

// inlineSource adapts a request body to ports.MicrodataSource.
type inlineSource struct {
	table sample.Table
}

func (s inlineSource) LoadTable(context.Context) (sample.Table, error) {
	return s.table, nil
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleDecompose(w http.ResponseWriter, r *http.Request) {
	var req decomposeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body: "+err.Error())
		return
	}
	if len(req.Rows) == 0 {
		writeError(w, http.StatusBadRequest, "rows must not be empty")
		return
	}

	table := sample.Table{Columns: req.Columns, Rows: make([]sample.Row, 0, len(req.Rows))}
	for _, row := range req.Rows {
		table.Rows = append(table.Rows, sample.Row(row))
	}

	svc := app.NewEquityService(inlineSource{table: table}, nil)
	result, err := svc.Run(r.Context(), app.RunRequest{
		Title:        req.Title,
		GroupColumns: req.GroupColumns,
		ValueColumn:  req.ValueColumn,
		SampleSize:   req.SampleSize,
		Seed:         req.Seed,
	})
	if err != nil {
		s.logger.Warn("decompose run failed: %v", err)
		writeError(w, statusForError(err), err.Error())
		return
	}

	writeJSON(w, http.StatusOK, decomposeResponse{
		RunID:          result.ID.String(),
		Decompositions: result.Decompositions,
		Failures:       result.Failures,
		Summaries:      result.Summaries,
		Diagnostics:    result.Sample.Diagnostics(),
	})
}

// statusForError maps domain error classes onto HTTP statuses.
func statusForError(err error) int {
	switch {
	case core.IsConfigurationError(err), core.IsConstructionError(err), core.IsDomainError(err):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
