package parameters

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/socialpost/socialpost/listener/middleware"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

// Redacted replaces secret values in handler output.
const Redacted = "[REDACTED]"

type handlerOptions struct {
	redact    func(name string) bool
	timeout   time.Duration
	rateLimit int
	window    time.Duration
}

// HandlerOption configures the inspection handler.
type HandlerOption func(*handlerOptions)

// WithRedaction masks every value whose dotted name satisfies redact.
// Nested mapping keys are checked as "<parameter>.<key>".
func WithRedaction(redact func(name string) bool) HandlerOption {
	return func(opts *handlerOptions) {
		opts.redact = redact
	}
}

// WithTimeout bounds each request. Non-positive values fall back to middleware.DefaultTimeout.
func WithTimeout(timeout time.Duration) HandlerOption {
	return func(opts *handlerOptions) {
		opts.timeout = timeout
	}
}

// WithRateLimit allows at most requests per window for each client IP.
// Rate limiting is off unless requests is positive.
func WithRateLimit(requests int, window time.Duration) HandlerOption {
	return func(opts *handlerOptions) {
		opts.rateLimit = requests
		opts.window = window
	}
}

type handler struct {
	store  *Store
	logger *slog.Logger
	redact func(name string) bool
}

type errorResponse struct {
	Error string `json:"error"`
}

type parameterResponse struct {
	Name  string `json:"name"`
	Value any    `json:"value"`
}

// NewHandler returns a read-only HTTP handler over store:
//
//	GET /parameters         every parameter as a JSON object
//	GET /parameters/{name}  a single parameter
func NewHandler(store *Store, logger *slog.Logger, opts ...HandlerOption) (http.Handler, error) {
	options := handlerOptions{
		redact:  func(string) bool { return false },
		timeout: middleware.DefaultTimeout,
	}

	for _, apply := range opts {
		apply(&options)
	}

	h := &handler{store: store, logger: logger, redact: options.redact}

	compress, err := middleware.Compress()
	if err != nil {
		return nil, fmt.Errorf("building parameters handler: %w", err)
	}

	router := chi.NewRouter()
	router.Use(chimiddleware.RequestID)
	router.Use(middleware.Logging(logger))
	router.Use(middleware.Recovery(logger))
	router.Use(middleware.Timeout(logger, options.timeout))

	if options.rateLimit > 0 {
		router.Use(middleware.RateLimit(options.rateLimit, options.window))
	}

	router.Use(compress)

	router.Get("/parameters", h.list)
	router.Get("/parameters/{name}", h.get)

	return router, nil
}

func (h *handler) list(w http.ResponseWriter, _ *http.Request) {
	all := h.store.All()

	out := make(map[string]any, len(all))
	for name, value := range all {
		out[name] = Mask(name, value, h.redact)
	}

	h.respond(w, http.StatusOK, out)
}

func (h *handler) get(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	value, err := h.store.Get(name)
	if errors.Is(err, ErrNotFound) {
		h.respond(w, http.StatusNotFound, errorResponse{Error: err.Error()})

		return
	}

	h.respond(w, http.StatusOK, parameterResponse{Name: name, Value: Mask(name, value, h.redact)})
}

func (h *handler) respond(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	err := json.NewEncoder(w).Encode(body)
	if err != nil {
		h.logger.Error("failed to encode response", slog.Any("error", err))
	}
}
