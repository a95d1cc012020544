package writingassistant

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"

	"github.com/magabrotheeeer/writing-assistant/internal/config"
	"github.com/magabrotheeeer/writing-assistant/internal/llm"
	"github.com/magabrotheeeer/writing-assistant/internal/paymentprovider"
	improverservice "github.com/magabrotheeeer/writing-assistant/internal/services/improver"
	licenseservice "github.com/magabrotheeeer/writing-assistant/internal/services/license"
	"github.com/magabrotheeeer/writing-assistant/internal/storage/licensefile"
)

type App struct {
	server *http.Server
	logger *slog.Logger
}

func New(cfg *config.Config, logger *slog.Logger) (*App, error) {
	store := licensefile.New(cfg.LicenseFilePath)

	llmClient := llm.NewClient(cfg.OpenRouterAPIKey)
	improverService := improverservice.New(llmClient, cfg.Models(), logger)
	licenseService := licenseservice.New(store, cfg.FreeEmails(), logger)

	var providerClient *paymentprovider.Client
	if cfg.PaymentConfigured() {
		providerClient = paymentprovider.NewClient(cfg.RazorpayKeyID, cfg.RazorpayKeySecret)
	} else {
		logger.Warn("razorpay keys are not set, payment endpoints are disabled")
	}

	router := chi.NewRouter()
	RegisterRoutes(router, logger, improverService, licenseService, providerClient)

	srv := &http.Server{
		Addr:         cfg.AddressHTTP,
		Handler:      router,
		ReadTimeout:  cfg.TimeoutHTTP,
		WriteTimeout: cfg.TimeoutHTTP,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return &App{
		server: srv,
		logger: logger,
	}, nil
}

func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("HTTP server starting on", slog.String("address", a.server.Addr))
		err := a.server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			errCh <- nil
		} else {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		timeoutCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		a.logger.Info("shutting down HTTP server gracefully")
		return a.server.Shutdown(timeoutCtx)
	}
}
