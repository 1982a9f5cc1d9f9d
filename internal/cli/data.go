package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/droxer/TaskMind/internal/ops"
)

func newResetCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Clear all goals and tasks (preferences survive)",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if !yes && !confirm(fmt.Sprintf("clear all data in %s?", cfg.DataDir)) {
				fmt.Println("aborted")
				return nil
			}

			logger := newLogger()
			s, closeStore, err := openStore(cfg, logger)
			if err != nil {
				return err
			}
			defer closeStore()

			s.Reset()
			fmt.Println("data cleared")
			return nil
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip the confirmation prompt")
	return cmd
}

func newBackupCmd() *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "backup",
		Short: "Archive the data directory to a tar.gz file",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if out == "" {
				out = fmt.Sprintf("taskmind-backup-%s.tar.gz", time.Now().UTC().Format("20060102-150405"))
			}
			if err := ops.BackupDataDir(cfg.DataDir, out); err != nil {
				return err
			}
			fmt.Println("backup written to", out)
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "archive path (default taskmind-backup-<ts>.tar.gz)")
	return cmd
}

func newRestoreCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "restore <archive>",
		Short: "Restore the data directory from a backup archive",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if err := ops.RestoreDataDir(args[0], cfg.DataDir); err != nil {
				return err
			}
			fmt.Println("restored into", cfg.DataDir)
			return nil
		},
	}
}

func confirm(prompt string) bool {
	fmt.Printf("%s [y/N]: ", prompt)
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	default:
		return false
	}
}
