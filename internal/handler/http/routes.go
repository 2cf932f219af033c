package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// scimMethods are the HTTP methods the SCIM endpoint accepts; each maps to
// one operation of the fixed enumeration in models.
var scimMethods = []string{
	http.MethodPost,
	http.MethodGet,
	http.MethodPut,
	http.MethodPatch,
	http.MethodDelete,
}

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)

	router.Method(http.MethodGet, "/metrics", h.metrics.Handler())

	router.Group(func(r chi.Router) {
		r.Use(h.withTraceID)
		r.Use(h.withLogging)
		r.Use(h.withMetrics)

		r.Route("/realms/{realm}/scim/v2", func(r chi.Router) {
			// gate first: a disabled realm is 404 even for anonymous callers
			r.Use(h.availability)
			r.Use(h.auth)

			for _, method := range scimMethods {
				r.MethodFunc(method, "/*", h.handleScimRequest)
			}
		})
	})

	return router
}
