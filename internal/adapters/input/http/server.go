package http

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/santhosh-tekuri/jsonschema/v5"
	"myq-smarthome-adapter/internal/domain/model"
	"myq-smarthome-adapter/internal/ports"
)

const maxDirectiveBytes = 64 << 10

// directiveSchema only checks the envelope shape. Namespace and name values
// are left to the router so unknown ones get protocol error directives.
const directiveSchema = `{
	"type": "object",
	"required": ["header"],
	"properties": {
		"header": {
			"type": "object",
			"required": ["namespace", "name"],
			"properties": {
				"namespace": {"type": "string"},
				"name": {"type": "string"},
				"messageId": {"type": "string"},
				"payloadVersion": {"type": "string"}
			}
		},
		"payload": {"type": ["object", "null"]}
	}
}`

type Server struct {
	entry   ports.DirectivePort
	metrics http.Handler
	schema  *jsonschema.Schema
	logger  *slog.Logger
}

func NewServer(entry ports.DirectivePort, metrics http.Handler, logger *slog.Logger) *Server {
	return &Server{
		entry:   entry,
		metrics: metrics,
		schema:  jsonschema.MustCompileString("directive.json", directiveSchema),
		logger:  logger,
	}
}

func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	if s.metrics != nil {
		r.Method(http.MethodGet, "/metrics", s.metrics)
	}
	r.Post("/directive", s.handleDirective)
	return r
}

func (s *Server) ListenAndServe(addr string) error {
	return http.ListenAndServe(addr, s.Routes())
}

func (s *Server) handleDirective(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxDirectiveBytes))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "failed to read body"})
		return
	}

	var doc interface{}
	if err := json.Unmarshal(body, &doc); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "body is not valid JSON"})
		return
	}
	if err := s.schema.Validate(doc); err != nil {
		s.logger.Warn("rejected malformed directive", "error", err)
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": strings.TrimSpace(err.Error())})
		return
	}

	var directive model.Directive
	if err := json.Unmarshal(body, &directive); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	resp, _ := s.entry.Handle(r.Context(), directive)
	writeJSON(w, http.StatusOK, resp)
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}
