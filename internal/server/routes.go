package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/peekknuf/modelfit/internal/handler"
	"github.com/peekknuf/modelfit/internal/heuristics"
	"github.com/peekknuf/modelfit/internal/middleware"
)

func (s *Server) routes(engine *heuristics.Engine) http.Handler {
	qualityH := handler.NewQualityHandler(engine, s.cfg.MaxUploadBytes)

	r := chi.NewRouter()
	r.Use(middleware.Recovery)
	r.Use(middleware.RequestID)
	r.Use(middleware.Logging)
	r.Use(chiMiddleware.RealIP)

	r.Get("/health", handler.Health)
	r.Get("/", handler.Health)

	r.Route(s.cfg.APIPrefix, func(r chi.Router) {
		r.Route("/quality", func(r chi.Router) {
			r.Post("/flags", qualityH.Flags)
			r.Post("/check", qualityH.Check)
		})
	})

	return r
}
