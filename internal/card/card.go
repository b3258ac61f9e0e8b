package card

import "strings"

// Card represents a playing card as "<Rank> of <Suit>" (e.g. "Ace of Spades")
type Card string

// Suit is one of the four suits
type Suit string

// Rank is one of the twelve ranks
type Rank string

const (
	Spades   Suit = "Spades"
	Clubs    Suit = "Clubs"
	Hearts   Suit = "Hearts"
	Diamonds Suit = "Diamonds"
)

const (
	Ace    Rank = "Ace"
	Two    Rank = "Two"
	Three  Rank = "Three"
	Four   Rank = "Four"
	Five   Rank = "Five"
	Six    Rank = "Six"
	Seven  Rank = "Seven"
	Eight  Rank = "Eight"
	Nine   Rank = "Nine"
	Prince Rank = "Prince"
	Queen  Rank = "Queen"
	King   Rank = "King"
)

const separator = " of "

// Suits returns the suits in deck order
func Suits() []Suit {
	return []Suit{Spades, Clubs, Hearts, Diamonds}
}

// Ranks returns the ranks in deck order
func Ranks() []Rank {
	return []Rank{
		Ace, Two, Three, Four, Five, Six, Seven, Eight, Nine,
		Prince, Queen, King,
	}
}

// New formats a card from its rank and suit
func New(rank Rank, suit Suit) Card {
	return Card(string(rank) + separator + string(suit))
}

// Parse splits a card into its rank and suit. ok is false unless both parts
// are known values.
func Parse(s string) (rank Rank, suit Suit, ok bool) {
	r, st, found := strings.Cut(s, separator)
	if !found {
		return "", "", false
	}
	rank, suit = Rank(r), Suit(st)
	return rank, suit, rank.Valid() && suit.Valid()
}

// Rank returns the rank part of the card, or "" if the card is malformed
func (c Card) Rank() Rank {
	r, _, _ := Parse(string(c))
	return r
}

// Suit returns the suit part of the card, or "" if the card is malformed
func (c Card) Suit() Suit {
	_, s, _ := Parse(string(c))
	return s
}

// Valid reports whether the card names a known rank and suit
func (c Card) Valid() bool {
	_, _, ok := Parse(string(c))
	return ok
}

func (c Card) String() string {
	return string(c)
}

// Valid reports whether s is one of the four suits
func (s Suit) Valid() bool {
	for _, v := range Suits() {
		if v == s {
			return true
		}
	}
	return false
}

// Valid reports whether r is one of the twelve ranks
func (r Rank) Valid() bool {
	for _, v := range Ranks() {
		if v == r {
			return true
		}
	}
	return false
}
