package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var testsCmd = &cobra.Command{
	Use:   "tests",
	Short: "List the mock tests in the catalog",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := setup(cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		out := cmd.OutOrStdout()
		tests := e.catalog.Tests()

		fmt.Fprintf(out, "%-20s  %-32s  %-12s  %-6s  %9s  %4s  %8s  %4s\n",
			"ID", "Name", "Subject", "Level", "Questions", "Min", "Attempts", "Best")
		fmt.Fprintln(out, strings.Repeat("─", 110))

		for _, t := range tests {
			fmt.Fprintf(out, "%-20s  %-32s  %-12s  %-6s  %9d  %4d  %8d  %3d%%\n",
				t.ID, truncate(t.Name, 32), truncate(t.Subject, 12), t.Difficulty.DisplayName(),
				t.Len(), int(t.TimeLimit.Minutes()), t.Attempts, t.BestScore)
		}

		fmt.Fprintf(out, "\n%d tests\n", len(tests))
		return nil
	},
}

var decksCmd = &cobra.Command{
	Use:   "decks",
	Short: "List the flashcard decks in the catalog",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := setup(cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		out := cmd.OutOrStdout()
		decks := e.catalog.Decks()

		fmt.Fprintf(out, "%-20s  %-32s  %-12s  %5s  %8s  %6s  %6s\n",
			"ID", "Name", "Subject", "Cards", "Mastered", "Review", "Loaded")
		fmt.Fprintln(out, strings.Repeat("─", 102))

		for _, d := range decks {
			fmt.Fprintf(out, "%-20s  %-32s  %-12s  %5d  %7d%%  %6d  %6d\n",
				d.ID, truncate(d.Name, 32), truncate(d.Subject, 12),
				d.CardCount, d.MasteredPercent(), d.ToReview(), d.Len())
		}

		fmt.Fprintf(out, "\n%d decks\n", len(decks))
		return nil
	},
}

func truncate(s string, n int) string {
	if len([]rune(s)) <= n {
		return s
	}
	return string([]rune(s)[:n-3]) + "..."
}
