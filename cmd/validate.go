package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arcanaland/deckhand/internal/validator"
)

// newValidateCmd represents the validate command
func newValidateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "validate [path]",
		Short: "Validate a saved deck file",
		Long: `Validate checks that a saved deck decodes, that every card is a known
"<Rank> of <Suit>" and that no card appears twice. Missing cards and
unshuffled decks are reported as warnings.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var flagPath string
			if len(args) == 1 {
				flagPath = args[0]
			}
			deckPath, err := a.deckPath(flagPath)
			if err != nil {
				return err
			}

			v := validator.NewValidator(deckPath)
			results, err := v.Validate()
			if err != nil {
				return fmt.Errorf("validation error: %w", err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "Validation Results:")
			fmt.Fprintln(out, "-------------------")

			if results.Valid() {
				fmt.Fprintf(out, "✅ Deck '%s' is valid.\n", deckPath)
			} else {
				fmt.Fprintf(out, "❌ Deck '%s' has %d validation errors:\n", deckPath, len(results.Errors))
				for i, err := range results.Errors {
					fmt.Fprintf(out, "%d. %s\n", i+1, err)
				}
				return fmt.Errorf("validation failed")
			}

			if len(results.Warnings) > 0 {
				fmt.Fprintln(out, "\nWarnings:")
				for i, warn := range results.Warnings {
					fmt.Fprintf(out, "%d. %s\n", i+1, warn)
				}
			}

			return nil
		},
	}
}
