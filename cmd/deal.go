package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/arcanaland/deckhand/internal/deck"
)

// newDealCmd represents the deal command
func newDealCmd(a *app) *cobra.Command {
	var (
		deckFile string
		output   string
		handFile string
	)

	c := &cobra.Command{
		Use:   "deal [count]",
		Short: "Deal cards from the top of a saved deck",
		Long: `Deal takes the first count cards of a saved deck, prints them and
saves the remaining cards back to the deck file (or --output).
A count larger than the deck deals every card; zero or less deals none.

Examples:
  deckhand deal 5
  deckhand deal 7 --deck ./table.cbor --hand ./alice.cbor`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid card count %q: %w", args[0], err)
			}

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

			r, err := a.renderer(cmd)
			if err != nil {
				return err
			}

			hand, rest := deck.Deal(d, n)
			if handFile != "" {
				if err := deck.Save(hand, handFile); err != nil {
					return err
				}
			}
			if err := deck.Save(rest, dest); err != nil {
				return err
			}

			r.List(hand)
			fmt.Fprintf(cmd.OutOrStdout(), "Dealt %d cards, %d remain in %s\n", len(hand), len(rest), dest)
			return nil
		},
	}

	c.Flags().StringVarP(&deckFile, "deck", "d", "", "Deck file to deal from (default: configured deck file)")
	c.Flags().StringVarP(&output, "output", "o", "", "File for the remaining cards (default: the deck file)")
	c.Flags().StringVar(&handFile, "hand", "", "Also save the dealt hand to this file")
	return c
}

// newHandCmd represents the hand command
func newHandCmd(a *app) *cobra.Command {
	var (
		output string
		seed   uint64
	)

	c := &cobra.Command{
		Use:   "hand [count]",
		Short: "Deal a hand from a freshly shuffled deck",
		Long: `Hand shuffles a new 48-card deck and deals count cards from it.
The count defaults to hand_size from the config file. With --output the
remaining cards are saved so play can continue with 'deckhand deal'.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.config()
			if err != nil {
				return err
			}

			n := cfg.HandSize
			if len(args) == 1 {
				n, err = strconv.Atoi(args[0])
				if err != nil {
					return fmt.Errorf("invalid card count %q: %w", args[0], err)
				}
			}

			rnd, err := rng(cmd, seed)
			if err != nil {
				return err
			}
			r, err := a.renderer(cmd)
			if err != nil {
				return err
			}

			hand, rest := deck.CreateHand(n, rnd)
			if output != "" {
				if err := deck.Save(rest, output); err != nil {
					return err
				}
			}

			r.List(hand)
			fmt.Fprintf(cmd.OutOrStdout(), "%d cards remain\n", len(rest))
			return nil
		},
	}

	c.Flags().StringVarP(&output, "output", "o", "", "Save the remaining cards to this file")
	addSeedFlag(c, &seed)
	return c
}
