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

	"madad-backend/routes"
	"madad-backend/services"
	"madad-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const shutdownTimeout = 5 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the catalog API",
	RunE: func(cmd *cobra.Command, _ []string) error {
		a, err := bootstrap()
		if err != nil {
			return err
		}
		defer func() { _ = a.logger.Sync() }()

		if a.cfg.IsProduction() {
			gin.SetMode(gin.ReleaseMode)
		}

		r := routes.SetupRouter(routes.Deps{
			Catalog:     services.NewCatalog(a.connector, a.logger),
			Logger:      a.logger,
			RateLimiter: utils.NewRateLimiter(a.cfg.RateLimitPerMin),
		})
		printRoutes(cmd, r)

		srv := &http.Server{
			Addr:    ":" + a.cfg.Port,
			Handler: r,
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		errCh := make(chan error, 1)
		go func() {
			a.logger.Info("Starting server", zap.String("addr", srv.Addr))
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

		a.logger.Info("Server is shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server forced to shutdown: %w", err)
		}
		a.logger.Info("Server stopped gracefully")
		return nil
	},
}

func printRoutes(cmd *cobra.Command, r *gin.Engine) {
	for _, route := range r.Routes() {
		cmd.Printf("%-6s %s\n", route.Method, route.Path)
	}
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
