package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/spf13/cobra"

	"sales-assistant/internal/domain/analysis"
	"sales-assistant/internal/infra/handlers"
	"sales-assistant/internal/infra/logger"
	"sales-assistant/internal/infra/routes"
	"sales-assistant/internal/infra/services"
	"sales-assistant/internal/middleware"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		if port, _ := cmd.Flags().GetString("port"); port != "" {
			cfg.Port = port
		}

		ctx := context.Background()
		log := logger.NewLogger(ctx, cfg.LogLevel, cfg.LogJSON)

		editStore, closeStore, err := openEditStore(ctx, cfg, log)
		if err != nil {
			return fmt.Errorf("opening edit store: %w", err)
		}
		defer closeStore()

		router := mux.NewRouter()
		router.Use(middleware.RecoveryMiddleware(log))
		router.Use(middleware.LoggingMiddleware(log))

		httpClient := &http.Client{}

		learningSvc := services.NewEmailLearningService(editStore, analysis.NewAnalyzer(analysisOptions(cfg)), log)
		llmProvider := newLLMProvider(cfg, log, httpClient)
		generationSvc := services.NewGenerationService(log, llmProvider, learningSvc, cfg.SignerName)

		generationHandlers := handlers.NewGenerationHandlers(log, generationSvc)
		emailEditHandlers := handlers.NewEmailEditHandlers(log, learningSvc)

		routes.NewRoutes(router, generationHandlers, emailEditHandlers).Init()

		server := &http.Server{
			Addr:    fmt.Sprintf(":%s", cfg.Port),
			Handler: router,
		}

		stop := make(chan os.Signal, 1)
		signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

		serverErr := make(chan error, 1)
		go func() {
			log.Info(fmt.Sprintf("Server is running on port %s", cfg.Port), map[string]interface{}{
				"llm_provider": cfg.LLMProvider,
				"edit_store":   cfg.EditStore,
			})
			if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				serverErr <- err
			}
		}()

		select {
		case <-stop:
		case err := <-serverErr:
			log.Error(fmt.Sprintf("Error running HTTP server: %s", err))
			return err
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
	},
}

func init() {
	serveCmd.Flags().String("port", "", "listen port (overrides PORT)")
	rootCmd.AddCommand(serveCmd)
}
