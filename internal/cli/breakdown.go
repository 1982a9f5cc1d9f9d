package cli

import (
	"encoding/json"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/droxer/TaskMind/internal/genai"
	"github.com/droxer/TaskMind/internal/store"
)

// breakdown creates a goal from the command line the same way the HTTP
// endpoint does: ask the generative service for suggested tasks (or its
// fallback) and store the seeded goal.
func newBreakdownCmd() *cobra.Command {
	var targetDate, extra string

	cmd := &cobra.Command{
		Use:   "breakdown <goal>",
		Short: "Create a goal with generated task suggestions",
		Args:  cobra.ExactArgs(1),
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

			client := genai.NewClient(cfg.GenAI.Endpoint, time.Duration(cfg.GenAI.TimeoutSeconds)*time.Second, logger)

			req := genai.BreakdownRequest{Goal: args[0]}
			if targetDate != "" {
				req.TargetDate = &targetDate
			}
			if extra != "" {
				req.Context = &extra
			}
			resp := client.RequestBreakdown(cmd.Context(), req)

			in := store.CreateGoalInput{
				Title:     args[0],
				AISummary: &resp.Summary,
				AIPrompt:  &args[0],
			}
			if targetDate != "" {
				in.TargetDate = &targetDate
			}
			now := time.Now()
			for _, sg := range resp.Tasks {
				seed := store.TaskSeed{
					Title:       sg.Title,
					Notes:       sg.Description,
					Priority:    sg.Priority,
					AISuggested: true,
				}
				if sg.DueInDays != nil && *sg.DueInDays >= 0 {
					due := now.AddDate(0, 0, *sg.DueInDays).Format("2006-01-02")
					seed.DueDate = &due
				}
				in.Tasks = append(in.Tasks, seed)
			}

			goal := s.CreateGoal(in)
			s.Flush()

			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(goal)
		},
	}
	cmd.Flags().StringVar(&targetDate, "target-date", "", "goal target date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&extra, "context", "", "extra context passed to the service")
	return cmd
}
