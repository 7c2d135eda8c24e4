package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go-legal-cms/internal/audit"
	"go-legal-cms/internal/config"
	"go-legal-cms/internal/jobs"
	"go-legal-cms/internal/model"
	"go-legal-cms/internal/repository"
	"go-legal-cms/internal/server"
	"go-legal-cms/pkg/database"
	"go-legal-cms/pkg/logger"
)

func main() {
	// 1. Load configuration (reads .env when present)
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.NewLogger(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	// 2. Setup database
	db := database.ConnectDB()
	// Auto migrate (use a dedicated migration tool in production)
	if err := db.AutoMigrate(
		&model.User{}, &model.Profile{}, &model.UserRole{},
		&model.LitigationCase{}, &model.AdvisoryRequest{},
		&model.LegalDocument{}, &model.AuditLog{},
	); err != nil {
		log.Fatal("Failed to run migrations", "error", err)
	}

	// 3. Start the audit recorder
	recorder := audit.NewRecorder(repository.NewAuditRepo(db), log, cfg.AuditQueueSize)
	go recorder.Run()

	// 4. Wire the HTTP server
	app := server.New(cfg, db, recorder, log)

	// 5. Advisory escalation job
	escalation, err := jobs.StartEscalationJob(cfg, repository.NewAdvisoryRepo(db), recorder, log)
	if err != nil {
		log.Fatal("Failed to start escalation job", "error", err)
	}

	// 6. Listen and wait for shutdown signal
	go func() {
		addr := cfg.Host + ":" + cfg.Port
		log.Info("Starting LASU Legal CMS", "addr", addr)
		if err := app.Listen(addr); err != nil {
			log.Fatal("Server failed to start", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Error("Server forced to shutdown", "error", err)
	}
	if escalation != nil {
		<-escalation.Stop().Done()
	}
	recorder.Stop() // drain queued audit entries

	log.Info("Server exited")
}
