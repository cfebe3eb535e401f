package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/studyhub/internal/app"
)

// runApp resolves configuration, loads the catalog, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	e, err := setup(cmd)
	if err != nil {
		return err
	}
	defer e.Close()

	e.logger.Info("tui started")
	defer e.logger.Info("tui stopped")

	return app.Run(app.Options{
		Catalog: e.catalog,
		Bands:   e.cfg.Bands,
		Timer:   e.cfg.TimerEnabled,
		Logger:  e.logger,
	})
}
