package fiscalapi

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/fiscalkit/pkg/bankregistry"
	"github.com/dmitrymomot/fiscalkit/pkg/httpserver"
	"github.com/dmitrymomot/fiscalkit/pkg/logger"
)

// Option configures the router.
type Option func(*handlers)

// WithLogger sets the logger for access logs and handler errors.
func WithLogger(l *slog.Logger) Option {
	return func(h *handlers) {
		if l != nil {
			h.log = l
		}
	}
}

// Router builds the HTTP API. enricher resolves banks for /v1/iban.
//
// Example:
//
//	r := chi.NewRouter()
//	r.Mount("/fiscal", fiscalapi.Router(enricher))
func Router(enricher *bankregistry.Enricher, opts ...Option) chi.Router {
	h := &handlers{enricher: enricher, log: logger.Discard()}
	for _, opt := range opts {
		opt(h)
	}

	r := chi.NewRouter()
	r.Use(RequestID)
	r.Use(middleware.Recoverer)
	r.Use(accessLog(h.log))

	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		writeError(w, req, h.log, http.StatusNotFound, "not_found", ErrUnknownRoute)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, req *http.Request) {
		writeError(w, req, h.log, http.StatusMethodNotAllowed, "method_not_allowed", ErrMethodBlocked)
	})

	r.Get("/healthz", httpserver.HealthCheckHandler(h.log))
	r.Route("/v1", func(v1 chi.Router) {
		v1.Post("/validate/{kind}", h.validate)
		v1.Post("/derive", h.derive)
		v1.Get("/iban/{iban}", h.iban)
	})

	return r
}
