package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/hairizuanbinnoorazman/testtrack/cmd/backend/handlers"
	"github.com/hairizuanbinnoorazman/testtrack/database"
	"github.com/hairizuanbinnoorazman/testtrack/historylog"
	"github.com/hairizuanbinnoorazman/testtrack/importer"
	"github.com/hairizuanbinnoorazman/testtrack/logger"
	"github.com/hairizuanbinnoorazman/testtrack/project"
	"github.com/hairizuanbinnoorazman/testtrack/section"
	"github.com/hairizuanbinnoorazman/testtrack/session"
	"github.com/hairizuanbinnoorazman/testtrack/storage"
	"github.com/hairizuanbinnoorazman/testtrack/testcase"
	"github.com/hairizuanbinnoorazman/testtrack/testresult"
	"github.com/hairizuanbinnoorazman/testtrack/testrun"
	"github.com/hairizuanbinnoorazman/testtrack/user"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

var configFile string

// openDatabase connects using the loaded configuration and returns the
// gorm handle plus the underlying sql.DB for closing.
func openDatabase(cfg *Config) (*gorm.DB, *sql.DB, error) {
	db, err := database.Connect(database.Config{
		Host:         cfg.Database.Host,
		Port:         cfg.Database.Port,
		User:         cfg.Database.User,
		Password:     cfg.Database.Password,
		Database:     cfg.Database.Database,
		MaxOpenConns: cfg.Database.MaxOpenConns,
		MaxIdleConns: cfg.Database.MaxIdleConns,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get database instance: %w", err)
	}
	return db, sqlDB, nil
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	RunE:  runServer,
}

func init() {
	serveCmd.Flags().StringVarP(&configFile, "config", "c", "", "config file path")
	rootCmd.AddCommand(serveCmd)
}

func runServer(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	// Load configuration
	cfg, err := LoadConfig(configFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Initialize logger
	log := logger.NewLogrusLogger(cfg.Log.Level)
	log.Info(ctx, "starting server", map[string]interface{}{
		"version": Version,
		"commit":  Commit,
		"date":    BuildDate,
	})

	// Connect to database
	db, sqlDB, err := openDatabase(cfg)
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	log.Info(ctx, "database connected", map[string]interface{}{
		"host":     cfg.Database.Host,
		"port":     cfg.Database.Port,
		"database": cfg.Database.Database,
	})

	// Initialize stores
	userStore := user.NewMySQLStore(db, log)
	projectStore := project.NewMySQLStore(db, log)
	sectionStore := section.NewMySQLStore(db, log)
	caseStore := testcase.NewMySQLStore(db, log)
	runStore := testrun.NewMySQLStore(db, log)
	resultStore := testresult.NewMySQLStore(db, log)
	historyStore := historylog.NewMySQLStore(db, log)

	// Initialize blob storage for import archival
	blobStorage, err := storage.NewBlobStorage(storage.Config{
		Type:          cfg.Storage.Type,
		BaseDir:       cfg.Storage.BaseDir,
		S3Bucket:      cfg.Storage.S3Bucket,
		S3Region:      cfg.Storage.S3Region,
		PresignExpiry: cfg.Storage.S3PresignExpiry,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize storage: %w", err)
	}

	imp := importer.New(sectionStore, caseStore, historyStore, blobStorage, log)

	// Initialize session manager
	sessionManager := session.NewManager(cfg.Session.Duration, log)
	sessionManager.StartCleanup(5 * time.Minute)
	defer sessionManager.StopCleanup()

	log.Info(ctx, "session manager initialized", map[string]interface{}{
		"duration": cfg.Session.Duration.String(),
	})

	// Setup router
	router := mux.NewRouter()

	// Health check endpoint (public)
	router.HandleFunc("/health", handlers.HealthHandler).Methods("GET")

	// Auth handlers (public)
	authHandler := handlers.NewAuthHandler(
		userStore,
		sessionManager,
		cfg.Session.CookieSecret,
		cfg.Session.CookieName,
		cfg.Session.Secure,
		log,
	)

	router.HandleFunc("/api/v1/auth/register", authHandler.Register).Methods("POST")
	router.HandleFunc("/api/v1/auth/login", authHandler.Login).Methods("POST")
	router.HandleFunc("/api/v1/auth/logout", authHandler.Logout).Methods("POST")

	// Protected routes
	userHandler := handlers.NewUserHandler(userStore, log)
	projectHandler := handlers.NewProjectHandler(projectStore, log)
	sectionHandler := handlers.NewSectionHandler(sectionStore, log)
	caseHandler := handlers.NewTestCaseHandler(caseStore, historyStore, log)
	runHandler := handlers.NewTestRunHandler(runStore, resultStore, log)
	resultHandler := handlers.NewTestResultHandler(resultStore, runStore, historyStore, log)
	historyHandler := handlers.NewHistoryHandler(historyStore, log)
	importHandler := handlers.NewImportHandler(imp, log)
	exportHandler := handlers.NewExportHandler(caseStore, sectionStore, log)

	authMiddleware := handlers.NewAuthMiddleware(sessionManager, cfg.Session.CookieSecret, cfg.Session.CookieName, log)

	apiRouter := router.PathPrefix("/api/v1").Subrouter()
	apiRouter.Use(authMiddleware.Handler)

	apiRouter.HandleFunc("/users", userHandler.List).Methods("GET")
	apiRouter.HandleFunc("/users/{id}", userHandler.GetByID).Methods("GET")
	apiRouter.HandleFunc("/users/{id}", handlers.RequireAdmin(userHandler.Update)).Methods("PUT")
	apiRouter.HandleFunc("/users/{id}", handlers.RequireAdmin(userHandler.Delete)).Methods("DELETE")

	apiRouter.HandleFunc("/projects", handlers.RequireEditor(projectHandler.Create)).Methods("POST")
	apiRouter.HandleFunc("/projects", projectHandler.List).Methods("GET")
	apiRouter.HandleFunc("/projects/{id}", projectHandler.GetByID).Methods("GET")
	apiRouter.HandleFunc("/projects/{id}", handlers.RequireEditor(projectHandler.Update)).Methods("PUT")
	apiRouter.HandleFunc("/projects/{id}", handlers.RequireAdmin(projectHandler.Delete)).Methods("DELETE")

	apiRouter.HandleFunc("/projects/{projectID}/sections", handlers.RequireEditor(sectionHandler.Create)).Methods("POST")
	apiRouter.HandleFunc("/projects/{projectID}/sections", sectionHandler.List).Methods("GET")
	apiRouter.HandleFunc("/sections/{id}", handlers.RequireEditor(sectionHandler.Rename)).Methods("PUT")
	apiRouter.HandleFunc("/sections/{id}", handlers.RequireEditor(sectionHandler.Delete)).Methods("DELETE")

	apiRouter.HandleFunc("/projects/{projectID}/cases", handlers.RequireEditor(caseHandler.Create)).Methods("POST")
	apiRouter.HandleFunc("/projects/{projectID}/cases", caseHandler.List).Methods("GET")
	apiRouter.HandleFunc("/cases/{id}", caseHandler.GetByID).Methods("GET")
	apiRouter.HandleFunc("/cases/{id}", handlers.RequireEditor(caseHandler.Update)).Methods("PUT")
	apiRouter.HandleFunc("/cases/{id}", handlers.RequireEditor(caseHandler.Delete)).Methods("DELETE")
	apiRouter.HandleFunc("/cases/{id}/history", historyHandler.ListByEntity).Methods("GET")

	apiRouter.HandleFunc("/projects/{projectID}/runs", handlers.RequireEditor(runHandler.Create)).Methods("POST")
	apiRouter.HandleFunc("/projects/{projectID}/runs", runHandler.List).Methods("GET")
	apiRouter.HandleFunc("/runs/{id}", runHandler.GetByID).Methods("GET")
	apiRouter.HandleFunc("/runs/{id}/complete", handlers.RequireEditor(runHandler.Complete)).Methods("POST")
	apiRouter.HandleFunc("/runs/{id}", handlers.RequireEditor(runHandler.Delete)).Methods("DELETE")

	apiRouter.HandleFunc("/runs/{runID}/results", handlers.RequireEditor(resultHandler.Record)).Methods("POST")
	apiRouter.HandleFunc("/runs/{runID}/results", resultHandler.ListByRun).Methods("GET")
	apiRouter.HandleFunc("/runs/{runID}/cases/{caseID}/results", resultHandler.ListByCase).Methods("GET")

	apiRouter.HandleFunc("/projects/{projectID}/history", historyHandler.ListByProject).Methods("GET")

	apiRouter.HandleFunc("/projects/{projectID}/import/preview", handlers.RequireEditor(importHandler.Preview)).Methods("POST")
	apiRouter.HandleFunc("/projects/{projectID}/import", handlers.RequireEditor(importHandler.Commit)).Methods("POST")
	apiRouter.HandleFunc("/projects/{projectID}/export", exportHandler.Export).Methods("GET")

	// Create HTTP server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	server := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// Start server in a goroutine
	go func() {
		log.Info(ctx, "server listening", map[string]interface{}{
			"address": addr,
		})
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error(ctx, "server error", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info(ctx, "shutting down server", nil)

	// Graceful shutdown with timeout
	shutdownCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	log.Info(ctx, "server stopped", nil)
	return nil
}
