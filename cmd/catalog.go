package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/studyhub/internal/catalog"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Inspect and validate catalogs",
}

var catalogValidateCmd = &cobra.Command{
	Use:   "validate [file]",
	Short: "Validate a catalog file against the schema and content rules",
	Long: `Validate a catalog file. Without an argument the --catalog flag or
STUDYHUB_CATALOG is checked, falling back to the built-in catalog.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var path string
		if len(args) == 1 {
			path = args[0]
		} else {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			path = resolveCatalogPath(cmd, cfg)
		}

		out := cmd.OutOrStdout()
		cat, err := catalog.Load(path)
		if err != nil {
			var verr *catalog.ValidationError
			if errors.As(err, &verr) {
				fmt.Fprintf(out, "%d problem(s):\n", len(verr.Problems))
				for _, p := range verr.Problems {
					fmt.Fprintf(out, "  - %s\n", p)
				}
			}
			return err
		}

		fmt.Fprintf(out, "%s: ok (version %s, %d tests, %d decks)\n",
			cat.Source(), cat.Version(), len(cat.Tests()), len(cat.Decks()))
		return nil
	},
}

func init() {
	catalogCmd.AddCommand(catalogValidateCmd)
}
