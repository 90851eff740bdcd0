package cmd

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/Rorical/TextValidator/internal/mockservice"
)

var serveMockCmd = &cobra.Command{
	Use:   "serve-mock",
	Short: "Run a local stand-in for the validation service",
	Long: `Run a small HTTP server that implements POST /validate and GET /health
with a heuristic normalizer, for trying the form without the real service.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		addr, _ := cmd.Flags().GetString("addr")
		limit, _ := cmd.Flags().GetInt("daily-limit")

		logger := slog.New(slog.NewJSONHandler(os.Stderr, nil))
		srv := &http.Server{
			Addr:              addr,
			Handler:           mockservice.New(mockservice.WithLogger(logger), mockservice.WithDailyLimit(limit)),
			ReadHeaderTimeout: 10 * time.Second,
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		errCh := make(chan error, 1)
		go func() {
			logger.Info("mock service listening", "addr", addr, "daily_limit", limit)
			errCh <- srv.ListenAndServe()
		}()

		select {
		case err := <-errCh:
			if errors.Is(err, http.ErrServerClosed) {
				return nil
			}
			return err
		case <-ctx.Done():
		}

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		logger.Info("mock service shutting down")
		return srv.Shutdown(shutdownCtx)
	},
}

func init() {
	serveMockCmd.Flags().String("addr", "127.0.0.1:8000", "listen address")
	serveMockCmd.Flags().Int("daily-limit", 0, "requests allowed per day, 0 for unlimited")
}
