package app

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"officeit/internal/config"
	"officeit/internal/database"
	"officeit/internal/jobs"
	"officeit/internal/repositories"
	"officeit/pkg/mailer"
	"officeit/pkg/rabbitmq"
)

// Run serves the API until ctx is cancelled or the listener fails.
func Run(ctx context.Context, cfg *config.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	if cfg.UsesDefaultSecret() {
		zap.S().Warn("JWT_SECRET is not set, tokens are signed with the default key")
	}

	db, err := database.Open(cfg.DatabaseDriver, cfg.DatabaseDSN, cfg.LogMode != "production")
	if err != nil {
		return err
	}
	if err := database.Migrate(db); err != nil {
		return err
	}
	zap.S().Infof("Database connection successful, type: %s", cfg.DatabaseDriver)

	deps := Dependencies{DB: db}

	if cfg.EventsEnabled() {
		client, err := rabbitmq.NewClient(rabbitmq.Config{URL: cfg.RabbitMQURL})
		if err != nil {
			zap.S().Warnf("catalog events disabled: %v", err)
		} else {
			defer client.Close()
			deps.Events = client
			if err := client.Consume(jobs.AuditQueue, "#", jobs.LogEvent); err != nil {
				zap.S().Warnf("event audit log disabled: %v", err)
			}
		}
	}

	if cfg.MailEnabled() {
		deps.Mail = mailer.New(mailer.Config{
			Host:     cfg.SMTPHost,
			Port:     cfg.SMTPPort,
			Username: cfg.SMTPUsername,
			Password: cfg.SMTPPassword,
			From:     cfg.MailFrom,
		})
	}

	audit := jobs.NewFeaturedAudit(repositories.NewGORMProductRepository(db), deps.Events)
	sched, err := jobs.Schedule(cfg.FeaturedAuditSchedule, audit)
	if err != nil {
		return err
	}
	defer func() { <-sched.Stop().Done() }()

	server := NewServer(cfg, deps)

	errCh := make(chan error, 1)
	go func() {
		zap.S().Infof("Starting server on %s", cfg.AppPort)
		errCh <- server.Listen(cfg.AppPort)
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	zap.S().Info("Shutting down server...")
	if err := server.Shutdown(); err != nil {
		return fmt.Errorf("error during shutdown: %w", err)
	}
	zap.S().Info("Server gracefully stopped")
	return nil
}
