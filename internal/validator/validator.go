package validator

import (
	"fmt"
	"slices"

	"github.com/arcanaland/deckhand/internal/card"
	"github.com/arcanaland/deckhand/internal/deck"
)

type ValidationResults struct {
	Errors   []string
	Warnings []string
}

// Valid reports whether no errors were found
func (r ValidationResults) Valid() bool {
	return len(r.Errors) == 0
}

type Validator struct {
	DeckPath string
	Results  ValidationResults
}

func NewValidator(deckPath string) *Validator {
	return &Validator{
		DeckPath: deckPath,
		Results:  ValidationResults{},
	}
}

// Validate loads the deck file and checks it against the full deck. A deck
// that cannot be loaded is returned as an error rather than a result.
func (v *Validator) Validate() (ValidationResults, error) {
	d, err := deck.Load(v.DeckPath)
	if err != nil {
		return v.Results, err
	}

	v.ValidateDeck(d)
	return v.Results, nil
}

// ValidateDeck runs every check against an already loaded deck
func (v *Validator) ValidateDeck(d deck.Deck) {
	v.validateCards(d)
	v.validateDuplicates(d)
	v.validateMissing(d)
	v.validateOrder(d)
}

// validateCards checks that every card names a known rank and suit
func (v *Validator) validateCards(d deck.Deck) {
	for i, c := range d {
		rank, suit, ok := card.Parse(string(c))
		if ok {
			continue
		}
		switch {
		case rank == "" && suit == "":
			v.Results.Errors = append(v.Results.Errors,
				fmt.Sprintf("card %d: %q is not of the form \"<Rank> of <Suit>\"", i+1, c))
		case !rank.Valid():
			v.Results.Errors = append(v.Results.Errors,
				fmt.Sprintf("card %d: unknown rank %q", i+1, rank))
		default:
			v.Results.Errors = append(v.Results.Errors,
				fmt.Sprintf("card %d: unknown suit %q", i+1, suit))
		}
	}
}

// validateDuplicates reports each card that appears more than once
func (v *Validator) validateDuplicates(d deck.Deck) {
	counts := make(map[card.Card]int)
	var order []card.Card
	for _, c := range d {
		if counts[c] == 0 {
			order = append(order, c)
		}
		counts[c]++
	}

	for _, c := range order {
		if counts[c] > 1 {
			v.Results.Errors = append(v.Results.Errors,
				fmt.Sprintf("duplicate card: %s appears %d times", c, counts[c]))
		}
	}
}

// validateMissing warns about canonical cards not in the deck
func (v *Validator) validateMissing(d deck.Deck) {
	var missing int
	for _, c := range deck.New() {
		if !d.Contains(c) {
			missing++
		}
	}
	if missing > 0 {
		v.Results.Warnings = append(v.Results.Warnings,
			fmt.Sprintf("%d of %d cards are missing (dealt or removed)", missing, deck.Size))
	}
}

// validateOrder warns when a full deck has never been shuffled
func (v *Validator) validateOrder(d deck.Deck) {
	if slices.Equal(d, deck.New()) {
		v.Results.Warnings = append(v.Results.Warnings, "deck is in fresh order and has not been shuffled")
	}
}
