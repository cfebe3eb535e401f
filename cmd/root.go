package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/abhisek/studyhub/internal/catalog"
	"github.com/abhisek/studyhub/internal/config"
	"github.com/abhisek/studyhub/internal/logging"
)

var rootCmd = &cobra.Command{
	Use:   "studyhub",
	Short: "Mock tests and flashcards in the terminal",
	Long:  "StudyHub runs timed mock tests and flashcard decks from a JSON catalog, scoring each attempt as you go.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("catalog", "", "Path to a catalog JSON file (overrides STUDYHUB_CATALOG)")
	rootCmd.PersistentFlags().String("env-file", "", "Path to a .env file (default .env if present)")

	rootCmd.AddCommand(testsCmd)
	rootCmd.AddCommand(decksCmd)
	rootCmd.AddCommand(takeCmd)
	rootCmd.AddCommand(drillCmd)
	rootCmd.AddCommand(catalogCmd)
	rootCmd.AddCommand(versionCmd)
}

// env is what every command needs once flags and environment are resolved.
type env struct {
	cfg      config.Config
	catalog  *catalog.Catalog
	logger   *slog.Logger
	closeLog func() error
}

func (e *env) Close() error {
	if e.closeLog == nil {
		return nil
	}
	return e.closeLog()
}

// loadConfig reads the env file named by --env-file and the environment.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	envFile, _ := cmd.Flags().GetString("env-file")
	cfg, err := config.Load(envFile)
	if err != nil {
		return config.Config{}, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

// resolveCatalogPath returns the catalog path using --catalog flag (highest
// priority), then STUDYHUB_CATALOG. Empty means the built-in catalog.
func resolveCatalogPath(cmd *cobra.Command, cfg config.Config) string {
	if p, _ := cmd.Flags().GetString("catalog"); p != "" {
		return p
	}
	return cfg.CatalogPath
}

// setup resolves config, opens the log and loads the catalog.
func setup(cmd *cobra.Command) (*env, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}

	logger, closeLog, err := logging.New(cfg.LogPath, slog.LevelInfo)
	if err != nil {
		return nil, err
	}

	path := resolveCatalogPath(cmd, cfg)
	cat, err := catalog.Load(path)
	if err != nil {
		_ = closeLog()
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	logger.Info("catalog loaded",
		"source", cat.Source(),
		"version", cat.Version(),
		"tests", len(cat.Tests()),
		"decks", len(cat.Decks()),
	)

	return &env{cfg: cfg, catalog: cat, logger: logger, closeLog: closeLog}, nil
}
