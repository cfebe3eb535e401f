package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/studyhub/internal/catalog"
	"github.com/abhisek/studyhub/internal/logging"
	"github.com/abhisek/studyhub/internal/session"
	"github.com/abhisek/studyhub/internal/ui/components"
)

// clock is replaced in tests.
var clock = time.Now

var takeCmd = &cobra.Command{
	Use:   "take <test-id>",
	Short: "Take a mock test on the command line",
	Long: `Take a mock test without the TUI. Answer with a letter (A-F) or number (1-6);
the next question follows automatically. Commands: n next, p previous,
s submit, q quit. End of input submits the test.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := setup(cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		set, err := e.catalog.SetOfKind(args[0], catalog.KindTest)
		if err != nil {
			return err
		}

		timed := e.cfg.TimerEnabled
		if noTimer, _ := cmd.Flags().GetBool("no-timer"); noTimer {
			timed = false
		}

		q, err := session.StartQuiz(set)
		if err != nil {
			return err
		}
		log := e.logger.With(logging.KeyAttempt, q.ID(), logging.KeySet, set.ID)
		log.Info("quiz started", "timed", timed)

		var deadline time.Time
		if timed && set.TimeLimit > 0 {
			deadline = clock().Add(set.TimeLimit)
		}

		out := cmd.OutOrStdout()
		q, done, err := runQuiz(q, bufio.NewScanner(cmd.InOrStdin()), out, deadline)
		if err != nil {
			return err
		}
		if !done {
			log.Info("quiz abandoned", "answered", q.AnsweredCount())
			fmt.Fprintln(out, "Test abandoned. Your answers were discarded.")
			return nil
		}

		sum := q.Summary(e.cfg.Bands)
		log.Info("quiz submitted",
			logging.KeyScore, sum.Percentage,
			logging.KeyBand, sum.Band.String(),
			"correct", sum.Correct,
			"total", sum.Total,
		)
		printSummary(out, set.Name, sum)
		return nil
	},
}

func init() {
	takeCmd.Flags().Bool("no-timer", false, "Ignore the test's time limit")
}

// runQuiz drives q from input lines until it is submitted or the user quits.
// done is false when the attempt was abandoned.
func runQuiz(q session.QuizState, in *bufio.Scanner, out io.Writer, deadline time.Time) (session.QuizState, bool, error) {
	for q.Phase() == session.PhaseInProgress {
		printQuestion(out, q, deadline)

		if !in.Scan() {
			if err := in.Err(); err != nil {
				return q, false, err
			}
			fmt.Fprintln(out)
			submitted, err := q.Submit()
			return submitted, err == nil, err
		}

		if !deadline.IsZero() && !clock().Before(deadline) {
			fmt.Fprintln(out, "Time expired.")
			submitted, err := q.Submit()
			return submitted, err == nil, err
		}

		line := strings.ToLower(strings.TrimSpace(in.Text()))
		var err error
		switch line {
		case "q", "quit":
			return q, false, nil
		case "s", "submit":
			q, err = q.Submit()
		case "p", "prev":
			q, err = q.Advance(-1)
		case "", "n", "next":
			q, err = q.Advance(1)
		default:
			choice, ok := parseChoice(line)
			if !ok {
				fmt.Fprintf(out, "Unknown input %q\n", line)
				continue
			}
			next, serr := q.Select(choice)
			if serr != nil {
				fmt.Fprintln(out, "That choice is not available for this question.")
				continue
			}
			q, err = next.Advance(1)
		}
		if err != nil {
			return q, false, err
		}
	}
	return q, true, nil
}

func printQuestion(w io.Writer, q session.QuizState, deadline time.Time) {
	item, ok := q.Current()
	if !ok {
		return
	}

	status := fmt.Sprintf("Q %d/%d  answered %d", q.Cursor()+1, q.Len(), q.AnsweredCount())
	if !deadline.IsZero() {
		left := max(deadline.Sub(clock()), 0)
		status += fmt.Sprintf("  time left %s", left.Truncate(time.Second))
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, status)
	fmt.Fprintln(w, item.Prompt)

	chosen, answered := q.Answer(q.Cursor())
	for i, c := range item.Choices {
		mark := " "
		if answered && i == chosen {
			mark = "*"
		}
		fmt.Fprintf(w, " %s %s) %s\n", mark, components.ChoiceLabel(i), c)
	}
	if q.IsLast() {
		fmt.Fprint(w, "answer, p, s to submit, q > ")
	} else {
		fmt.Fprint(w, "answer, n, p, s, q > ")
	}
}

// parseChoice maps "a".."f" and "1".."6" to a zero-based choice index.
func parseChoice(s string) (int, bool) {
	if len(s) == 1 && s[0] >= 'a' && s[0] <= 'f' {
		return int(s[0] - 'a'), true
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 || n > len(components.ChoiceLabels) {
		return 0, false
	}
	return n - 1, true
}
