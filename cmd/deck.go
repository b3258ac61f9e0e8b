package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/arcanaland/deckhand/internal/card"
	"github.com/arcanaland/deckhand/internal/deck"
)

// newDeckCmd represents the deck command group
func newDeckCmd(a *app) *cobra.Command {
	deckCmd := &cobra.Command{
		Use:   "deck",
		Short: "Create, shuffle and search saved decks",
		Long:  `Commands for working with a deck saved to disk.`,
	}

	deckCmd.AddCommand(newDeckNewCmd(a))
	deckCmd.AddCommand(newDeckShuffleCmd(a))
	deckCmd.AddCommand(newDeckContainsCmd(a))

	return deckCmd
}

// newDeckNewCmd represents the deck new command
func newDeckNewCmd(a *app) *cobra.Command {
	var output string

	c := &cobra.Command{
		Use:   "new",
		Short: "Write a fresh, ordered 48-card deck",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := a.deckPath(output)
			if err != nil {
				return err
			}

			d := deck.New()
			if err := deck.Save(d, path); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d cards to %s\n", len(d), path)
			return nil
		},
	}

	c.Flags().StringVarP(&output, "output", "o", "", "File to write (default: configured deck file)")
	return c
}

// newDeckShuffleCmd represents the deck shuffle command
func newDeckShuffleCmd(a *app) *cobra.Command {
	var (
		deckFile string
		output   string
		seed     uint64
	)

	c := &cobra.Command{
		Use:   "shuffle",
		Short: "Shuffle a saved deck",
		Long: `Shuffle loads a saved deck, shuffles it and saves the result.
The deck is shuffled in place unless --output names another file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := a.deckPath(deckFile)
			if err != nil {
				return err
			}
			dest := output
			if dest == "" {
				dest = path
			}

			d, err := deck.Load(path)
			if err != nil {
				return err
			}

			r, err := rng(cmd, seed)
			if err != nil {
				return err
			}

			if err := deck.Save(deck.Shuffle(d, r), dest); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Shuffled %d cards into %s\n", len(d), dest)
			return nil
		},
	}

	c.Flags().StringVarP(&deckFile, "deck", "d", "", "Deck file to read (default: configured deck file)")
	c.Flags().StringVarP(&output, "output", "o", "", "File to write (default: the deck file)")
	addSeedFlag(c, &seed)
	return c
}

// newDeckContainsCmd represents the deck contains command
func newDeckContainsCmd(a *app) *cobra.Command {
	var deckFile string

	c := &cobra.Command{
		Use:   "contains [card]",
		Short: "Check whether a card is in a saved deck",
		Long: `Contains reports whether the deck holds the named card and exits
with an error when it does not. Words are joined, so quoting is optional:

  deckhand deck contains Queen of Spades`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := a.deckPath(deckFile)
			if err != nil {
				return err
			}

			d, err := deck.Load(path)
			if err != nil {
				return err
			}

			target := card.Card(strings.Join(args, " "))
			if !d.Contains(target) {
				return fmt.Errorf("%s is not in %s", target, path)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s is in %s\n", target, path)
			return nil
		},
	}

	c.Flags().StringVarP(&deckFile, "deck", "d", "", "Deck file to read (default: configured deck file)")
	return c
}
