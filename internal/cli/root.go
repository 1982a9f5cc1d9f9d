// Package cli wires the taskmind commands: the HTTP server plus the
// data-directory chores (reset, backup, restore) and a one-shot goal
// breakdown for scripting.
package cli

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/droxer/TaskMind/internal/cloud"
	"github.com/droxer/TaskMind/internal/config"
	"github.com/droxer/TaskMind/internal/storage"
	"github.com/droxer/TaskMind/internal/store"
)

var configPath string

func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "taskmind",
		Short:         "Local-first goal and task tracker",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Optional; TASKMIND_* variables set here override the file.
			_ = godotenv.Load()
		},
	}
	root.PersistentFlags().StringVar(&configPath, "config", "taskmind.yml", "path to the config file")

	root.AddCommand(
		newServeCmd(),
		newResetCmd(),
		newBackupCmd(),
		newRestoreCmd(),
		newBreakdownCmd(),
		newVersionCmd(),
	)
	return root
}

func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func loadConfig() (*config.Config, error) {
	return config.Load(configPath)
}

func newLogger() *log.Logger {
	return log.New(os.Stdout, "", 0)
}

// openStorage builds the snapshot gateway the config asks for. The
// caller owns the returned closer (a no-op for the file driver).
func openStorage(cfg *config.Config, logger *log.Logger) (storage.Gateway, func(), error) {
	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		return nil, nil, fmt.Errorf("create data dir: %w", err)
	}

	switch cfg.Storage.Driver {
	case config.DriverSQLite:
		gw, err := storage.NewSQLiteGateway(filepath.Join(cfg.DataDir, "taskmind.db"), logger)
		if err != nil {
			return nil, nil, err
		}
		return gw, func() { _ = gw.Close() }, nil
	default:
		gw, err := storage.NewFileGateway(cfg.DataDir, logger)
		if err != nil {
			return nil, nil, err
		}
		return gw, func() {}, nil
	}
}

func openStore(cfg *config.Config, logger *log.Logger) (*store.Store, func(), error) {
	gw, closeGW, err := openStorage(cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	s, err := store.New(store.Options{
		Storage:     gw,
		Cloud:       cloud.NewPlaceholderGateway(cfg.Sync.Enabled, logger),
		Logger:      logger,
		PushTimeout: time.Duration(cfg.Sync.PushTimeoutSeconds) * time.Second,
	})
	if err != nil {
		closeGW()
		return nil, nil, err
	}
	s.Hydrate()

	return s, func() {
		s.Close()
		closeGW()
	}, nil
}
