package cmd

import (
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/arcanaland/deckhand/internal/card"
	"github.com/arcanaland/deckhand/internal/deck"
)

func newShowCmd(a *app) *cobra.Command {
	var deckFile string

	c := &cobra.Command{
		Use:   "show [card]",
		Short: "Display a saved deck or a single card in it",
		Long: `Show lists the cards of a saved deck in columns fitted to the terminal.
Given a card, it shows where that card sits in the deck instead.

Examples:
  deckhand show
  deckhand show --deck ./table.cbor
  deckhand show Prince of Hearts`,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := a.deckPath(deckFile)
			if err != nil {
				return err
			}

			d, err := deck.Load(path)
			if err != nil {
				return fmt.Errorf("error loading deck: %w", err)
			}

			r, err := a.renderer(cmd)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(args) == 0 {
				fmt.Fprintf(out, "%s (%d cards)\n", path, len(d))
				r.Columns(d)
				return nil
			}

			target := card.Card(strings.Join(args, " "))
			pos := slices.Index(d, target)
			if pos < 0 {
				return fmt.Errorf("%s is not in %s", target, path)
			}

			fmt.Fprintln(out, r.Label("Card:     ")+r.Card(target))
			fmt.Fprintln(out, r.Label("Rank:     ")+string(target.Rank()))
			fmt.Fprintln(out, r.Label("Suit:     ")+string(target.Suit()))
			fmt.Fprintln(out, r.Label("Position: ")+fmt.Sprintf("%d of %d", pos+1, len(d)))
			return nil
		},
	}

	c.Flags().StringVarP(&deckFile, "deck", "d", "", "Deck file to show (default: configured deck file)")
	return c
}
