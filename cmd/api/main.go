package main

import (
	"context"
	"database/sql"
	"log"

	"github.com/gofiber/adaptor/v2"
	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"caseapi/internal/audit"
	"caseapi/internal/clock"
	"caseapi/internal/config"
	"caseapi/internal/database"
	"caseapi/internal/database/migration"
	"caseapi/internal/fonts"
	handlers "caseapi/internal/http/handler"
	"caseapi/internal/http/middleware"
	"caseapi/internal/mailer"
	"caseapi/internal/otel"
	"caseapi/internal/render"
	"caseapi/internal/service"
	"caseapi/internal/storage"
)

func main() {
	// Load configuration from environment variables (.env auto-loaded if present)
	cfg := config.Load()
	ctx := context.Background()

	shutdownTracing, err := otel.Init(ctx)
	if err != nil {
		log.Fatalf("failed to initialize tracing: %v", err)
	}
	defer shutdownTracing(ctx)

	// Audit database is optional; without DB_HOST outcomes are not recorded.
	var recorder audit.Recorder = audit.Noop{}
	var db *sql.DB
	if cfg.Database.Host != "" {
		db, err = database.NewPostgres(cfg.Database)
		if err != nil {
			log.Fatalf("failed to connect to database: %v", err)
		}
		defer db.Close()
		if err := migration.EnsureMigrated(ctx, db, cfg.Database.Host); err != nil {
			log.Fatalf("failed to migrate database: %v", err)
		}
		recorder = audit.NewPostgres(db)
	}

	// Font source: prefer the shared object-store bucket, fall back to a
	// local directory. Either way font absence only downgrades the typeface.
	var fontSrc fonts.Source = fonts.Dir{Path: cfg.FontDir}
	if cfg.MinIO.Endpoint != "" {
		store, err := storage.NewMinIO(cfg.MinIO)
		if err != nil {
			log.Fatalf("failed to initialize object storage: %v", err)
		}
		fontSrc = fonts.ObjectSource{Store: store, Prefix: "fonts/"}
	}

	mail, err := mailer.NewSMTP(cfg.SMTP)
	if err != nil {
		log.Fatalf("failed to initialize mailer: %v", err)
	}
	if cfg.Mail.Recipient == "" {
		log.Fatal("MAIL_RECIPIENT is required")
	}

	clk := clock.System{}
	pdf := render.NewPDF(fontSrc, clk)

	reg := prometheus.NewRegistry()
	svc, err := service.NewSubmissionService(cfg.Mail, mail, pdf, recorder, clk, reg)
	if err != nil {
		log.Fatalf("failed to initialize submission service: %v", err)
	}

	promMw, err := middleware.NewPrometheusMiddleware(reg)
	if err != nil {
		log.Fatalf("failed to initialize metrics: %v", err)
	}

	app := fiber.New(fiber.Config{
		ErrorHandler: handlers.ErrorHandler(),
		BodyLimit:    cfg.Upload.BodyLimit,
	})

	// Register global middleware
	app.Use(middleware.RequestID())
	app.Use(middleware.Logger())
	app.Use(otelfiber.Middleware())
	app.Use(promMw.Handler())

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))

	// Register HTTP routes with injected service
	handlers.RegisterRoutes(app, db, svc, cfg.Upload)

	addr := ":" + cfg.Port

	if err := app.Listen(addr); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
