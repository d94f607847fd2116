package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/ecpw/site"
	"github.com/ecpw/site/handlers"
	"github.com/ecpw/site/middlewares"
	"github.com/ecpw/site/pkg/config"
	"github.com/ecpw/site/pkg/contact"
	"github.com/ecpw/site/pkg/logger"
	"github.com/ecpw/site/pkg/mailer/resend"
)

// AppConfig is the complete process configuration, read from the
// environment (and .env when present).
type AppConfig struct {
	Log     logger.Config
	Contact contact.Config
	Resend  resend.Config

	HTTPAddr        string        `env:"HTTP_ADDR" envDefault:":8080"`
	RequestTimeout  time.Duration `env:"REQUEST_TIMEOUT" envDefault:"30s"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"30s"`
	CORSOrigins     string        `env:"CORS_ALLOWED_ORIGINS"`
	SiteDir         string        `env:"SITE_DIR"`
}

func main() {
	var cfg AppConfig
	if err := config.Load(&cfg); err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		os.Exit(1)
	}

	log := logger.FromConfig(cfg.Log, middlewares.RequestIDExtractor())

	if err := cfg.Contact.Validate(); err != nil {
		// The server still starts; readiness reports the problem.
		log.Warn("contact delivery is not configured",
			slog.Any("error", err),
			slog.Bool("sandbox_sender", cfg.Contact.IsSandboxSender()),
		)
	}

	sender, err := resend.New(cfg.Resend, resend.WithLogger(log.With("component", "resend")))
	if err != nil {
		log.Error("failed to create resend sender", slog.Any("error", err))
		os.Exit(1)
	}

	relay := contact.NewRelay(cfg.Contact, sender,
		contact.WithLogger(log.With("component", "contact")),
		contact.WithTimeoutLabel(cfg.Resend.Timeout.String()),
	)

	opts := []site.Option{
		site.WithCustomLogger(log),
		site.WithMiddleware(
			middlewares.RequestID(),
			middlewares.RequestLogger(),
			middlewares.Recover(),
			middlewares.CORS(middlewares.WithAllowOrigins(middlewares.ParseOrigins(cfg.CORSOrigins)...)),
			middlewares.Timeout(cfg.RequestTimeout),
		),
		site.WithErrorHandler(handlers.ErrorHandler),
		site.WithMethodNotAllowedHandler(handlers.MethodNotAllowed),
		site.WithNotFoundHandler(handlers.NotFound),
		site.WithHealthChecks(
			site.WithReadinessCheck("contact_delivery", func(context.Context) error {
				return relay.Config().Validate()
			}),
		),
		site.WithHandlers(handlers.NewContact(relay)),
	}
	if cfg.SiteDir != "" {
		opts = append(opts, site.WithStaticFiles(os.DirFS(cfg.SiteDir), "."))
	}

	app := site.New(opts...)

	if err := app.Run(cfg.HTTPAddr,
		site.Logger(log),
		site.ShutdownTimeout(cfg.ShutdownTimeout),
		site.ShutdownHook(logger.FlushSentry(2*time.Second)),
	); err != nil {
		log.Error("server stopped", slog.Any("error", err))
		os.Exit(1)
	}
}
