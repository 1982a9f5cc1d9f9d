package cli

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/droxer/TaskMind/internal/genai"
	"github.com/droxer/TaskMind/internal/server"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			logger := newLogger()

			s, closeStore, err := openStore(cfg, logger)
			if err != nil {
				return err
			}
			defer closeStore()

			handler, err := server.NewHandler(server.Options{
				Store:  s,
				GenAI:  genai.NewClient(cfg.GenAI.Endpoint, time.Duration(cfg.GenAI.TimeoutSeconds)*time.Second, logger),
				Logger: logger,
			})
			if err != nil {
				return err
			}

			srv := &http.Server{
				Addr:              cfg.Server.Addr,
				Handler:           handler,
				ReadHeaderTimeout: 5 * time.Second,
			}

			errCh := make(chan error, 1)
			go func() {
				logger.Printf("[serve] listening on %s (driver=%s sync=%v)", cfg.Server.Addr, cfg.Storage.Driver, cfg.Sync.Enabled)
				errCh <- srv.ListenAndServe()
			}()

			stop := make(chan os.Signal, 1)
			signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

			select {
			case err := <-errCh:
				if errors.Is(err, http.ErrServerClosed) {
					return nil
				}
				return err
			case sig := <-stop:
				logger.Printf("[serve] received %s, shutting down", sig)
			}

			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if err := srv.Shutdown(ctx); err != nil {
				return err
			}
			// Drain the queued snapshot before the store closes.
			s.Flush()
			return nil
		},
	}
}
