package httpx

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"bpsgateway/internal/domain"
)

type RouterConfig struct {
	MaxCompoundIterations uint
	Policy                domain.InterestPolicy
}

func NewRouter(cfg RouterConfig, log zerolog.Logger) http.Handler {
	r := chi.NewRouter()

	// middleware (keep it sane)
	r.Use(RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(RequestLogger(log))

	// health
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/v1", func(r chi.Router) {
		h := &PercentageHandler{MaxIterations: cfg.MaxCompoundIterations}
		r.Get("/percentage", h.Of)
		r.Get("/percentage/steps", h.Steps)
		r.Get("/percentage/precision", h.Precision)
		r.Get("/what-percentage", h.WhatPercentage)
		r.Get("/compound", h.Compound)
		r.Get("/diff", h.Diff)

		ih := &InterestHandler{Policy: cfg.Policy}
		r.Get("/interest", ih.Due)
	})
	return r
}
