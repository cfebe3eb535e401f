package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/studyhub/internal/catalog"
	"github.com/abhisek/studyhub/internal/logging"
	"github.com/abhisek/studyhub/internal/session"
)

var drillCmd = &cobra.Command{
	Use:   "drill <deck-id>",
	Short: "Study a flashcard deck on the command line",
	Long: `Study a flashcard deck without the TUI. Press Enter to reveal the back of
a card, then k if you knew it or r if it needs review. s starts the deck
over from the first card. q stops early and prints the tally so far.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := setup(cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		set, err := e.catalog.SetOfKind(args[0], catalog.KindDeck)
		if err != nil {
			return err
		}

		d, err := session.StartDeck(set)
		if err != nil {
			return err
		}
		log := e.logger.With(logging.KeySet, set.ID)
		log.Info("deck started", logging.KeyAttempt, d.ID())

		out := cmd.OutOrStdout()
		d, err = runDeck(d, bufio.NewScanner(cmd.InOrStdin()), out, log)
		if err != nil {
			return err
		}

		sum := d.Summary(e.cfg.Bands)
		if sum.Final {
			log.Info("deck complete", logging.KeyAttempt, d.ID(), logging.KeyScore, sum.Percentage, logging.KeyBand, sum.Band.String())
		} else {
			log.Info("deck stopped", logging.KeyAttempt, d.ID(), "reached", sum.Total)
			fmt.Fprintf(out, "\nStopped after %d of %d cards.\n", sum.Total, d.Len())
		}
		printSummary(out, set.Name, sum)
		return nil
	},
}

// runDeck drives d from input lines until the pass completes, input ends,
// or the user quits.
func runDeck(d session.DeckState, in *bufio.Scanner, out io.Writer, log *slog.Logger) (session.DeckState, error) {
	for d.Phase() == session.PhaseInProgress {
		item, _ := d.Current()
		if d.Revealed() {
			fmt.Fprintf(out, "  %s\n", item.Back)
			fmt.Fprint(out, "k knew it, r review, s start over, q > ")
		} else {
			fmt.Fprintf(out, "\nCard %d/%d\n%s\n", d.Cursor()+1, d.Len(), item.Prompt)
			fmt.Fprint(out, "Enter to reveal, s start over, q > ")
		}

		if !in.Scan() {
			fmt.Fprintln(out)
			return d, in.Err()
		}

		var err error
		switch strings.ToLower(strings.TrimSpace(in.Text())) {
		case "q", "quit":
			return d, nil
		case "k", "y", "known":
			d, err = d.Classify(session.OutcomeKnown)
		case "r", "n", "review":
			d, err = d.Classify(session.OutcomeNeedsReview)
		case "s", "restart":
			var next session.DeckState
			next, err = d.Reset()
			if err == nil {
				log.Info("deck reset", logging.KeyAttempt, next.ID(), "previous", d.ID(), "reached", d.Cursor())
				fmt.Fprintln(out, "Starting over.")
				d = next
			}
		default:
			if d.Revealed() {
				fmt.Fprintln(out, "Answer k or r.")
				continue
			}
			d, err = d.Reveal()
		}
		if errors.Is(err, session.ErrNotRevealed) {
			fmt.Fprintln(out, "Reveal the answer first (Enter).")
			continue
		}
		if err != nil {
			return d, err
		}
	}
	return d, nil
}
