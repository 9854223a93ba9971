package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/flashdeck/internal/report"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print study statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, cfg, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		repo := st.Sessions()
		sessions, err := repo.ReadAll(context.Background())
		if err != nil {
			return fmt.Errorf("read sessions: %w", err)
		}
		if len(sessions) == 0 {
			fmt.Println("No study sessions recorded yet.")
			return nil
		}

		sum := report.Summarize(sessions)
		fmt.Printf("Sessions:         %d\n", sum.Sessions)
		fmt.Printf("Total study time: %s\n", report.FormatDuration(sum.TotalTimeMs))
		fmt.Printf("Correct answers:  %d\n", sum.TotalCorrect)
		fmt.Printf("Overall accuracy: %d%%\n", sum.AccuracyPct)
		fmt.Println()

		report.SortSessions(sessions)
		limit := cfg.HistoryLimit
		if limit <= 0 || limit > len(sessions) {
			limit = len(sessions)
		}
		for _, s := range sessions[:limit] {
			m := report.SessionMetrics(&s)
			fmt.Printf("%s  %-30s  %s  %d/%d answered  %d%% accuracy\n",
				s.StartTime.Format("2006-01-02 15:04"),
				s.SourceName,
				m.Duration,
				m.Answered, m.Total,
				m.AccuracyPct,
			)
		}
		return nil
	},
}
