package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// compressionLevel is the gzip level used for compressible responses.
const compressionLevel = 5

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID, h.withLogging, middleware.Recoverer, h.metrics.InstrumentHandler)
	router.Use(middleware.Compress(compressionLevel))

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/", h.info)
		r.Get("/health", h.health)
		if h.metrics != nil {
			r.Handle("/metrics", h.metrics.Handler())
		}

		r.Post("/auth/register", h.register)
		r.With(h.limiter.Limit).Post("/auth/login", h.login)
	})

	// routes with authorization
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/auth/me", h.me)

		r.Route("/wellness", func(r chi.Router) {
			r.Post("/checkins", h.createCheckIn)
			r.Get("/checkins", h.listCheckIns)
			r.Get("/checkins/{id}", h.getCheckIn)
			r.Delete("/checkins/{id}", h.deleteCheckIn)
			r.Get("/stats", h.stats)
		})

		r.Route("/chat", func(r chi.Router) {
			r.With(h.limiter.Limit).Post("/message", h.sendChatMessage)
			r.Get("/context", h.chatContext)
			r.Delete("/context", h.clearChatContext)
			r.Post("/suggested-questions", h.suggestedQuestions)
		})
	})

	router.NotFound(notFound)
	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
