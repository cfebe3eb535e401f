package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/studyhub/internal/catalog"
	"github.com/abhisek/studyhub/internal/config"
)

const smallCatalog = `{
  "version": "v1.0.0",
  "tests": [
    {
      "id": "t1", "name": "Test One", "subject": "Math", "difficulty": "easy", "time_minutes": 5,
      "questions": [
        {"id": "q1", "question": "1+1?", "options": ["1", "2", "3"], "correct": 1},
        {"id": "q2", "question": "2+2?", "options": ["4", "5"], "correct": 0, "explanation": "Two pairs."},
        {"id": "q3", "question": "3+3?", "options": ["5", "6"], "correct": 1}
      ]
    }
  ],
  "decks": [
    {
      "id": "d1", "name": "Deck One", "subject": "Math", "card_count": 2, "mastered": 1,
      "cards": [
        {"id": "c1", "front": "Front one", "back": "Back one"},
        {"id": "c2", "front": "Front two", "back": "Back two"}
      ]
    }
  ]
}`

// execute runs the root command in an empty directory with a clean
// environment and returns everything it printed.
func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	t.Chdir(t.TempDir())
	for _, k := range []string{config.EnvCatalog, config.EnvLog, config.EnvTimer, config.EnvBandHigh, config.EnvBandMid} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
	t.Cleanup(func() {
		_ = rootCmd.PersistentFlags().Set("catalog", "")
		_ = rootCmd.PersistentFlags().Set("env-file", "")
		_ = takeCmd.Flags().Set("no-timer", "false")
	})

	var out bytes.Buffer
	rootCmd.SetArgs(args)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)

	err := rootCmd.Execute()
	return out.String(), err
}

func writeCatalog(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "catalog.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestTestsCommand_ListsBuiltin(t *testing.T) {
	out, err := execute(t, "", "tests")
	require.NoError(t, err)

	assert.Contains(t, out, "math-full-mock")
	assert.Contains(t, out, "bio-quick")
	assert.Contains(t, out, "4 tests")
}

func TestDecksCommand_ListsBuiltin(t *testing.T) {
	out, err := execute(t, "", "decks")
	require.NoError(t, err)

	assert.Contains(t, out, "calculus")
	assert.Contains(t, out, "75%")
	assert.Contains(t, out, "3 decks")
}

func TestCatalogFlag_OverridesBuiltin(t *testing.T) {
	path := writeCatalog(t, smallCatalog)

	out, err := execute(t, "", "tests", "--catalog", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Test One")
	assert.Contains(t, out, "1 tests")
	assert.NotContains(t, out, "math-full-mock")
}

func TestTake_ScoresAnswers(t *testing.T) {
	path := writeCatalog(t, smallCatalog)

	// q1 right, q2 wrong, q3 right; end of input submits.
	out, err := execute(t, "b\nb\n2\n", "take", "t1", "--catalog", path)
	require.NoError(t, err)

	assert.Contains(t, out, "Score: 2/3 (67%)  band: mid")
	assert.Contains(t, out, "Good effort, keep practicing!")
	assert.Contains(t, out, "your answer: B. 5, correct: A. 4")
	assert.Contains(t, out, "Two pairs.")
}

func TestTake_UnansweredCountAsIncorrect(t *testing.T) {
	path := writeCatalog(t, smallCatalog)

	out, err := execute(t, "b\ns\n", "take", "t1", "--catalog", path)
	require.NoError(t, err)

	assert.Contains(t, out, "Score: 1/3 (33%)  band: low")
	assert.Contains(t, out, "Unanswered: 2")
	assert.Contains(t, out, "not answered, correct: B. 6")
}

func TestTake_ChangeAnswerBeforeSubmit(t *testing.T) {
	path := writeCatalog(t, smallCatalog)

	// Answer q1 wrong, go back, fix it, then submit.
	out, err := execute(t, "a\np\nb\ns\n", "take", "t1", "--catalog", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Score: 1/3 (33%)")
}

func TestTake_RejectsUnavailableChoice(t *testing.T) {
	path := writeCatalog(t, smallCatalog)

	out, err := execute(t, "f\ns\n", "take", "t1", "--catalog", path)
	require.NoError(t, err)
	assert.Contains(t, out, "That choice is not available")
	assert.Contains(t, out, "Score: 0/3 (0%)")
}

func TestTake_Quit(t *testing.T) {
	path := writeCatalog(t, smallCatalog)

	out, err := execute(t, "b\nq\n", "take", "t1", "--catalog", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Test abandoned")
	assert.NotContains(t, out, "Score:")
}

func TestTake_TimeExpiry(t *testing.T) {
	path := writeCatalog(t, smallCatalog)

	t0 := time.Date(2026, 1, 1, 9, 0, 0, 0, time.UTC)
	calls := 0
	clock = func() time.Time {
		calls++
		if calls <= 2 {
			return t0
		}
		return t0.Add(10 * time.Minute)
	}
	t.Cleanup(func() { clock = time.Now })

	out, err := execute(t, "b\nb\n", "take", "t1", "--catalog", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Time expired.")
	assert.Contains(t, out, "Score: 0/3 (0%)", "the late answer is not recorded")
}

func TestTake_NoTimerIgnoresDeadline(t *testing.T) {
	path := writeCatalog(t, smallCatalog)

	t0 := time.Date(2026, 1, 1, 9, 0, 0, 0, time.UTC)
	clock = func() time.Time { t0 = t0.Add(time.Hour); return t0 }
	t.Cleanup(func() { clock = time.Now })

	out, err := execute(t, "b\na\nb\n", "take", "t1", "--catalog", path, "--no-timer")
	require.NoError(t, err)
	assert.NotContains(t, out, "Time expired.")
	assert.Contains(t, out, "Score: 3/3 (100%)  band: high")
}

func TestTake_UnknownOrWrongKind(t *testing.T) {
	_, err := execute(t, "", "take", "nope")
	assert.ErrorIs(t, err, catalog.ErrSetNotFound)

	_, err = execute(t, "", "take", "calculus")
	assert.ErrorIs(t, err, catalog.ErrSetNotFound)
}

func TestDrill_CompletePass(t *testing.T) {
	path := writeCatalog(t, smallCatalog)

	out, err := execute(t, "\nk\n\nr\n", "drill", "d1", "--catalog", path)
	require.NoError(t, err)

	assert.Contains(t, out, "Back one")
	assert.Contains(t, out, "Score: 1/2 (50%)  band: mid")
	assert.Contains(t, out, "Known: 1  Needs review: 1")
	assert.Contains(t, out, "Front two")
}

func TestDrill_ClassifyBeforeReveal(t *testing.T) {
	path := writeCatalog(t, smallCatalog)

	out, err := execute(t, "k\n\nk\n\nk\n", "drill", "d1", "--catalog", path)
	require.NoError(t, err)

	assert.Contains(t, out, "Reveal the answer first")
	assert.Contains(t, out, "Score: 2/2 (100%)  band: high")
}

func TestDrill_StopEarlyUsesReachedCards(t *testing.T) {
	out, err := execute(t, "\nk\nq\n", "drill", "calculus")
	require.NoError(t, err)

	assert.Contains(t, out, "Stopped after 1 of 4 cards.")
	assert.Contains(t, out, "Score: 1/1 (100%)")
}

func TestDrill_RestartMidPass(t *testing.T) {
	path := writeCatalog(t, smallCatalog)

	// Mark the first card known, start over, then review both cards.
	out, err := execute(t, "\nk\ns\n\nr\n\nr\n", "drill", "d1", "--catalog", path)
	require.NoError(t, err)

	assert.Contains(t, out, "Starting over.")
	assert.Equal(t, 2, strings.Count(out, "Card 1/2"))
	assert.Contains(t, out, "Score: 0/2 (0%)  band: low")
	assert.Contains(t, out, "Known: 0  Needs review: 2")
}

func TestEnvFile_SetsBands(t *testing.T) {
	path := writeCatalog(t, smallCatalog)
	envFile := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(envFile, []byte("STUDYHUB_BAND_HIGH=90\nSTUDYHUB_BAND_MID=70\n"), 0o644))

	out, err := execute(t, "b\nb\n2\n", "take", "t1", "--catalog", path, "--env-file", envFile)
	require.NoError(t, err)
	assert.Contains(t, out, "Score: 2/3 (67%)  band: low")
}

func TestEnvFile_MissingExplicitFile(t *testing.T) {
	_, err := execute(t, "", "tests", "--env-file", filepath.Join(t.TempDir(), "missing.env"))
	assert.Error(t, err)
}

func TestCatalogValidate(t *testing.T) {
	out, err := execute(t, "", "catalog", "validate")
	require.NoError(t, err)
	assert.Contains(t, out, "builtin: ok")

	good := writeCatalog(t, smallCatalog)
	out, err = execute(t, "", "catalog", "validate", good)
	require.NoError(t, err)
	assert.Contains(t, out, "1 tests, 1 decks")

	bad := writeCatalog(t, strings.Replace(smallCatalog, `"id": "q2"`, `"id": "q1"`, 1))
	out, err = execute(t, "", "catalog", "validate", bad)
	var verr *catalog.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, out, `duplicate item ID "q1"`)
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "", "version")
	require.NoError(t, err)
	assert.Contains(t, out, "studyhub")
}
