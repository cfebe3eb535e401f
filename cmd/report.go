package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/abhisek/studyhub/internal/catalog"
	"github.com/abhisek/studyhub/internal/session"
	"github.com/abhisek/studyhub/internal/ui/components"
)

// printSummary writes the plain-text result of an attempt.
func printSummary(w io.Writer, name string, sum session.Summary) {
	fmt.Fprintln(w)
	fmt.Fprintf(w, "%s - %s Summary\n", name, sum.Kind.DisplayName())
	fmt.Fprintln(w, strings.Repeat("─", 48))
	fmt.Fprintf(w, "Score: %d/%d (%d%%)  band: %s\n", sum.Correct, sum.Total, sum.Percentage, sum.Band)
	fmt.Fprintln(w, sum.Band.Message())

	switch sum.Kind {
	case catalog.KindTest:
		fmt.Fprintf(w, "Correct: %d  Incorrect: %d  Unanswered: %d\n",
			sum.Correct, sum.Incorrect()-sum.Unanswered(), sum.Unanswered())
		fmt.Fprintln(w)
		for _, it := range sum.Items {
			printQuestionResult(w, it)
		}
	case catalog.KindDeck:
		fmt.Fprintf(w, "Known: %d  Needs review: %d\n", sum.Correct, sum.Incorrect())
		var review []session.ItemResult
		for _, it := range sum.Items {
			if !it.Correct {
				review = append(review, it)
			}
		}
		if len(review) > 0 {
			fmt.Fprintln(w)
			fmt.Fprintln(w, "Needs review:")
			for _, it := range review {
				fmt.Fprintf(w, "  - %s\n      %s\n", it.Item.Prompt, it.Item.Back)
			}
		}
	}
}

func printQuestionResult(w io.Writer, it session.ItemResult) {
	mark := "✗"
	if it.Correct {
		mark = "✓"
	}
	fmt.Fprintf(w, "%s Q%d. %s\n", mark, it.Index+1, it.Item.Prompt)

	correct := choiceText(it.Item, it.Item.CorrectIndex)
	switch {
	case !it.Answered:
		fmt.Fprintf(w, "     not answered, correct: %s\n", correct)
	case !it.Correct:
		fmt.Fprintf(w, "     your answer: %s, correct: %s\n", choiceText(it.Item, it.Choice), correct)
	}
	if !it.Correct && it.Item.Explanation != "" {
		fmt.Fprintf(w, "     %s\n", it.Item.Explanation)
	}
}

func choiceText(it catalog.Item, i int) string {
	if i < 0 || i >= len(it.Choices) {
		return "-"
	}
	return components.ChoiceLabel(i) + ". " + it.Choices[i]
}
