package cmd

import (
	"fmt"
	"math/rand/v2"
	"os"

	"github.com/spf13/cobra"

	"github.com/arcanaland/deckhand/internal/config"
	"github.com/arcanaland/deckhand/internal/random"
	"github.com/arcanaland/deckhand/internal/render"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = NewRootCmd()

// NewRootCmd builds the full command tree. Each call returns fresh flag state.
func NewRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "deckhand",
		Short: "Tool for creating, shuffling and dealing a deck of cards",
		Long: `Deckhand is a command-line tool for working with a 48-card deck:
four suits (Spades, Clubs, Hearts, Diamonds) of twelve ranks (Ace to Nine,
Prince, Queen, King). Decks are saved to a compact binary file that can be
shuffled, searched and dealt from.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&a.color, "color", "", "Colour output: auto, always or never (default from config)")

	root.AddCommand(newInitCmd(a))
	root.AddCommand(newDeckCmd(a))
	root.AddCommand(newDealCmd(a))
	root.AddCommand(newHandCmd(a))
	root.AddCommand(newShowCmd(a))
	root.AddCommand(newValidateCmd(a))

	return root
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return RootCmd.Execute()
}

// app holds state shared by the commands of one tree
type app struct {
	color string
	cfg   *config.Config
}

// config loads the config file once and applies flag overrides
func (a *app) config() (*config.Config, error) {
	if a.cfg != nil {
		return a.cfg, nil
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}
	if a.color != "" {
		cfg.Color = a.color
		if err := cfg.Validate(); err != nil {
			return nil, fmt.Errorf("--color: %w", err)
		}
	}

	a.cfg = cfg
	return cfg, nil
}

// deckPath returns flagValue, or the configured deck file when it is empty
func (a *app) deckPath(flagValue string) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}
	cfg, err := a.config()
	if err != nil {
		return "", err
	}
	return cfg.DeckPath(), nil
}

// renderer writes to the command's output, sized to the terminal when it is one
func (a *app) renderer(cmd *cobra.Command) (*render.Renderer, error) {
	cfg, err := a.config()
	if err != nil {
		return nil, err
	}

	out := cmd.OutOrStdout()
	width := render.DefaultWidth
	if f, ok := out.(*os.File); ok {
		width = render.TerminalWidth(f)
	}
	return render.New(out, cfg, width), nil
}

// addSeedFlag registers --seed on cmd
func addSeedFlag(cmd *cobra.Command, seed *uint64) {
	cmd.Flags().Uint64Var(seed, "seed", 0, "Seed for the shuffle; a random seed is used and printed when omitted")
}

// rng returns a generator for --seed, or an entropy-seeded one when the flag
// is unset. The seed is printed so the shuffle can be replayed.
func rng(cmd *cobra.Command, seed uint64) (*rand.Rand, error) {
	if cmd.Flags().Changed("seed") {
		return random.New(seed), nil
	}

	r, seed, err := random.NewFromEntropy()
	if err != nil {
		return nil, err
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "seed: %d\n", seed)
	return r, nil
}
