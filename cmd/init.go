package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/arcanaland/deckhand/internal/config"
	"github.com/arcanaland/deckhand/internal/deck"
)

// newInitCmd represents the init command
func newInitCmd(a *app) *cobra.Command {
	var force bool

	c := &cobra.Command{
		Use:   "init",
		Short: "Initialize the config file and default deck",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			cfg, err := a.config()
			if err != nil {
				return fmt.Errorf("error initializing config: %w", err)
			}
			fmt.Fprintln(out, "Config file initialized at:", config.GetConfigFilePath())

			deckPath := cfg.DeckPath()
			if err := os.MkdirAll(filepath.Dir(deckPath), 0755); err != nil {
				return fmt.Errorf("error creating deck directory: %w", err)
			}

			if _, err := os.Stat(deckPath); err == nil && !force {
				fmt.Fprintln(out, "Deck already exists at:", deckPath)
				return nil
			}

			if err := deck.Save(deck.New(), deckPath); err != nil {
				return err
			}
			fmt.Fprintln(out, "Deck initialized at:", deckPath)
			return nil
		},
	}

	c.Flags().BoolVarP(&force, "force", "f", false, "Replace an existing deck with a fresh one")
	return c
}
