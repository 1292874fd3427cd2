// @title Wedding RSVP API
// @version 1.0
// @description Guest-facing RSVP endpoint gated by the event key.
// @BasePath /
package main

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"weddingrsvp/config"
	_ "weddingrsvp/docs"
	"weddingrsvp/internal/adapters/auth"
	"weddingrsvp/internal/adapters/email"
	httpdelivery "weddingrsvp/internal/delivery/http"
	"weddingrsvp/internal/delivery/http/controllers"
	"weddingrsvp/internal/delivery/http/middleware"
	"weddingrsvp/internal/domain"
	"weddingrsvp/internal/repository/sqlstore"
	"weddingrsvp/internal/services"
)

func main() {
	seedPath := flag.String("seed", "", "JSON file of guests to insert on startup (sqlite only)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}
	logger := config.NewLogger(cfg.Environment)
	logger = slog.New(middleware.NewRequestIDHandler(logger.Handler()))

	if err := run(cfg, logger, *seedPath); err != nil {
		logger.Error("server stopped", "err", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger *slog.Logger, seedPath string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, queries, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	if seedPath != "" {
		if cfg.DBDriver != "sqlite" {
			return fmt.Errorf("-seed is only supported with DATABASE_DRIVER=sqlite")
		}
		if err := seedFromFile(ctx, db, seedPath); err != nil {
			return err
		}
		logger.Info("seeded guests", "file", seedPath)
	}

	masker, err := auth.NewBlake2bMasker(cfg.MaskSalt)
	if err != nil {
		return fmt.Errorf("build masker: %w", err)
	}
	gate := services.NewSessionGate(services.SessionGateConfig{
		EventKey:           cfg.EventKey,
		SessionCookieName:  cfg.SessionCookieName,
		SessionCookieValue: cfg.SessionCookieValue,
		RsvpCookieName:     cfg.RsvpCookieName,
		CookiePath:         cfg.CookiePath,
		Expires:            cfg.EventDate,
	})

	mailer, err := email.NewMailer(email.MailerConfig{
		Provider:    cfg.Email.Provider,
		FromAddress: cfg.Email.FromAddress,
		FromName:    cfg.Email.FromName,
		SES: email.SESConfig{
			Region:             cfg.Email.Region,
			AccessKeyID:        cfg.Email.AccessKeyID,
			SecretAccessKey:    cfg.Email.SecretAccessKey,
			InsecureSkipVerify: cfg.Email.InsecureSkipVerify,
		},
	}, logger)
	if err != nil {
		return fmt.Errorf("build mailer: %w", err)
	}
	notifier := services.NewEmailNotifier(mailer, email.NewTemplateRenderer(), cfg.ContactEmail, cfg.EventName, logger)

	event := domain.EventDetails{
		Name:         cfg.EventName,
		Date:         cfg.EventDate,
		Location:     cfg.EventLocation,
		ContactEmail: cfg.ContactEmail,
	}
	rsvpService := services.NewRsvpService(sqlstore.NewGuestRepository(db, queries), masker, notifier, event, logger)

	mux := httpdelivery.NewRouter(
		controllers.NewGuestController(logger, rsvpService, gate),
		controllers.NewHealthController(logger, db),
		gate,
		logger,
	)
	handler := middleware.LoggingMiddleware(logger, middleware.CORS(cfg.AllowedOrigins, mux))

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening", "addr", srv.Addr, "env", cfg.Environment, "driver", cfg.DBDriver)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func openStore(ctx context.Context, cfg *config.Config) (*sql.DB, sqlstore.Queries, error) {
	override := sqlstore.Queries{
		FindByNameAndAddress: cfg.Queries.FindByNameAndAddress,
		FindByID:             cfg.Queries.FindByID,
		UpdateAttendance:     cfg.Queries.UpdateAttendance,
	}
	switch cfg.DBDriver {
	case "sqlite":
		db, err := sqlstore.OpenSQLite(ctx, cfg.DBUrl)
		if err != nil {
			return nil, sqlstore.Queries{}, err
		}
		return db, sqlstore.SQLiteQueries.Override(override), nil
	default:
		db, err := sqlstore.OpenPostgres(ctx, cfg.DBUrl)
		if err != nil {
			return nil, sqlstore.Queries{}, err
		}
		return db, sqlstore.PostgresQueries.Override(override), nil
	}
}

func seedFromFile(ctx context.Context, db *sql.DB, path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read seed file: %w", err)
	}
	var guests []domain.Guest
	if err := json.Unmarshal(raw, &guests); err != nil {
		return fmt.Errorf("decode seed file: %w", err)
	}
	return sqlstore.Seed(ctx, db, guests)
}
