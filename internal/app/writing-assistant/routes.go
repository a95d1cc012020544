// Package writingassistant предоставляет маршруты для основного приложения.
package writingassistant

import (
	"log/slog"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/magabrotheeeer/writing-assistant/internal/http/handlers/license/activate"
	"github.com/magabrotheeeer/writing-assistant/internal/http/handlers/license/ordercreate"
	"github.com/magabrotheeeer/writing-assistant/internal/http/handlers/license/status"
	"github.com/magabrotheeeer/writing-assistant/internal/http/handlers/text/health"
	"github.com/magabrotheeeer/writing-assistant/internal/http/handlers/text/improve"
	"github.com/magabrotheeeer/writing-assistant/internal/http/middlewarectx"
	"github.com/magabrotheeeer/writing-assistant/internal/paymentprovider"
	improverservice "github.com/magabrotheeeer/writing-assistant/internal/services/improver"
	licenseservice "github.com/magabrotheeeer/writing-assistant/internal/services/license"
)

// RegisterRoutes регистрирует все маршруты приложения. providerClient
// может быть nil — тогда платёжные обработчики отвечают ошибкой
// конфигурации.
func RegisterRoutes(r chi.Router, logger *slog.Logger, improverService *improverservice.Service, licenseService *licenseservice.Service, providerClient *paymentprovider.Client) {
	// Глобальные middleware
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
		middleware.URLFormat,
	)

	// Нетипизированный nil вместо nil-указателя в значении интерфейса.
	var orderProvider ordercreate.ProviderClient
	var activateProvider activate.ProviderClient
	if providerClient != nil {
		orderProvider = providerClient
		activateProvider = providerClient
	}

	r.Get("/health", health.New(logger).ServeHTTP)

	r.Route("/api", func(r chi.Router) {
		r.Use(middlewarectx.RateLimitMiddleware(logger))
		r.Post("/improve_text", improve.New(logger, improverService).ServeHTTP)
		r.Get("/license_status", status.New(logger, licenseService).ServeHTTP)
		r.Post("/create_order", ordercreate.New(logger, orderProvider, licenseService).ServeHTTP)
		r.Post("/activate_license", activate.New(logger, activateProvider, licenseService).ServeHTTP)
	})

	r.Handle("/metrics", promhttp.Handler())
	// Swagger docs endpoint
	r.Get("/docs/*", httpSwagger.WrapHandler)
}
