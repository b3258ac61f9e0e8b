package deck

import (
	"math/rand/v2"
	"slices"

	"github.com/arcanaland/deckhand/internal/card"
)

// Size is the number of cards in a fresh deck
const Size = 48

// Deck is an ordered sequence of cards. Operations never modify their input;
// each returns a new Deck.
type Deck []card.Card

// New returns the 48 cards in fixed order: suits Spades, Clubs, Hearts,
// Diamonds, each running Ace through King.
func New() Deck {
	d := make(Deck, 0, Size)
	for _, suit := range card.Suits() {
		for _, rank := range card.Ranks() {
			d = append(d, card.New(rank, suit))
		}
	}
	return d
}

// Shuffle returns a uniformly random permutation of d. A nil rng uses the
// process-wide generator, which is seeded from entropy at startup.
func Shuffle(d Deck, rng *rand.Rand) Deck {
	out := clone(d)
	swap := func(i, j int) { out[i], out[j] = out[j], out[i] }
	if rng == nil {
		rand.Shuffle(len(out), swap)
	} else {
		rng.Shuffle(len(out), swap)
	}
	return out
}

// Contains reports whether c appears in d
func Contains(d Deck, c card.Card) bool {
	return slices.Contains(d, c)
}

// Contains reports whether c appears in the deck
func (d Deck) Contains(c card.Card) bool {
	return Contains(d, c)
}

// Deal splits d into its first n cards and the rest. n is clamped to
// [0, len(d)].
func Deal(d Deck, n int) (hand, rest Deck) {
	n = max(0, min(n, len(d)))
	return clone(d[:n]), clone(d[n:])
}

// CreateHand deals n cards from a freshly shuffled deck
func CreateHand(n int, rng *rand.Rand) (hand, rest Deck) {
	return Deal(Shuffle(New(), rng), n)
}

// Strings returns the cards as plain strings
func (d Deck) Strings() []string {
	out := make([]string, len(d))
	for i, c := range d {
		out[i] = string(c)
	}
	return out
}

// clone copies d into a new non-nil slice
func clone(d Deck) Deck {
	out := make(Deck, len(d))
	copy(out, d)
	return out
}
