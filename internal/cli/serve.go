package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	"voice-notes/internal/config"
	"voice-notes/internal/infra/handlers"
	"voice-notes/internal/infra/logger"
	"voice-notes/internal/infra/messages"
	"voice-notes/internal/infra/provider"
	"voice-notes/internal/infra/repository"
	"voice-notes/internal/infra/routes"
	"voice-notes/internal/infra/services"
	"voice-notes/internal/infra/skill"
	"voice-notes/internal/middleware"

	"github.com/gorilla/mux"
	"github.com/spf13/cobra"
)

func init() {
	RootCmd.AddCommand(&cobra.Command{
		Use:   "serve",
		Short: "Run the skill HTTP endpoint",
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(cmd.Context(), cfg)
		},
	})
}

// NewRouter wires every component of the skill behind a gorilla/mux router.
func NewRouter(ctx context.Context, cfg *config.Config, log *logger.Logger) (*mux.Router, error) {
	catalog, err := messages.Load(cfg.StringsFile)
	if err != nil {
		return nil, err
	}

	noteRepo := repository.NewSQLiteNoteRepository(cfg.DBPath)
	if err := noteRepo.Init(ctx); err != nil {
		return nil, err
	}

	httpClient := &http.Client{Timeout: cfg.ProfileTimeout}
	profileProvider := provider.NewProfileProvider(log, httpClient)
	mailProvider := provider.NewSMTPMailProvider(log, cfg.Mail)

	dictationSvc := services.NewDictationService(noteRepo, log)
	notificationSvc := services.NewNotificationService(log, noteRepo, profileProvider, mailProvider, services.TranscriptSettingsFromConfig(cfg))
	dispatcher := skill.NewDispatcher(log, dictationSvc, notificationSvc, catalog)

	router := mux.NewRouter()
	router.Use(middleware.LoggingMiddleware(log))

	routes.NewRoutes(router, handlers.NewSkillHandlers(log, dispatcher)).Init()
	return router, nil
}

func serve(ctx context.Context, cfg *config.Config) error {
	if ctx == nil {
		ctx = context.Background()
	}

	log, err := logger.NewLogger(ctx, cfg.Log)
	if err != nil {
		return err
	}
	defer log.Close()

	router, err := NewRouter(ctx, cfg, log)
	if err != nil {
		return err
	}

	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Port),
		Handler: router,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	serverErr := make(chan error, 1)
	go func() {
		log.Info(fmt.Sprintf("Server is running on port %s", cfg.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	select {
	case err := <-serverErr:
		log.Error(fmt.Sprintf("Error running HTTP server: %s", err))
		return err
	case <-stop:
	}
	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error(fmt.Sprintf("Server forced to shutdown: %v", err))
		return err
	}
	log.Info("Server stopped gracefully.")
	return nil
}
