package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"currencyservice/internal/api"
	"currencyservice/internal/api/middleware"
	"currencyservice/internal/service"
)

func (app *App) initHTTP(currencyService service.CurrencyServiceInterface) {
	r := chi.NewRouter()
	r.Use(middleware.RequestIDMiddleware)
	r.Use(middleware.RequestLoggingMiddleware(app.logger))
	r.Use(middleware.MetricsMiddleware(app.metrics))
	r.Use(middleware.RecoverMiddleware(app.logger))

	r.Get("/get_currency", api.HandleGetCurrency(currencyService))
	r.Get("/pairs", api.HandleListPairs(currencyService))
	r.Get("/healthz", api.HandleHealthz())
	r.Get("/readyz", api.HandleReadyz(app.registry.Started, app.rdbCache))

	if app.cfg.Server.ServeMetrics {
		r.Handle("/metrics", promhttp.HandlerFor(app.promReg, promhttp.HandlerOpts{Registry: app.promReg}))
	}

	if app.cfg.Server.ServeSwagger {
		r.Get("/swagger/*", api.SwaggerUIHandler())
		r.Get("/openapi.json", api.OpenAPISpecHandler())
	}

	app.httpServer = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Server.Port),
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
}
