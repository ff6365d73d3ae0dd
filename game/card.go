package game

import (
	"fmt"
	"strconv"
	"strings"
)

type Suit int

const (
	Hearts   Suit = iota // 0
	Diamonds             // 1
	Spades               // 2
	Clubs                // 3
)

var suitNames = [...]string{"hearts", "diamonds", "spades", "clubs"}

func (s Suit) String() string {
	if s < Hearts || s > Clubs {
		return fmt.Sprintf("Suit(%d)", int(s))
	}
	return suitNames[s]
}

// Rank is the card's face value: Ace=1 up to King=13.
type Rank int

const (
	Ace   Rank = 1
	Jack  Rank = 11
	Queen Rank = 12
	King  Rank = 13
)

// Ranks in the order the deck is built.
var Ranks = []Rank{2, 3, 4, 5, 6, 7, 8, 9, 10, Jack, Queen, King, Ace}

var Suits = []Suit{Hearts, Diamonds, Spades, Clubs}

func (r Rank) Valid() bool {
	return r >= Ace && r <= King
}

// Label returns the rank as it appears in card image names.
func (r Rank) Label() string {
	switch r {
	case Ace:
		return "ace"
	case Jack:
		return "jack"
	case Queen:
		return "queen"
	case King:
		return "king"
	default:
		return strconv.Itoa(int(r))
	}
}

func (r Rank) String() string {
	return r.Label()
}

// ParseRank maps a rank label ("2".."10", "jack", "queen", "king", "ace") to its rank.
func ParseRank(label string) (Rank, error) {
	switch strings.ToLower(label) {
	case "ace":
		return Ace, nil
	case "jack":
		return Jack, nil
	case "queen":
		return Queen, nil
	case "king":
		return King, nil
	}
	n, err := strconv.Atoi(label)
	if err != nil || n < 2 || n > 10 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidRank, label)
	}
	return Rank(n), nil
}

type Card struct {
	Rank Rank
	Suit Suit
}

// Value is the number the card contributes to an expression. Suit is irrelevant.
func (c Card) Value() int {
	return int(c.Rank)
}

// ImageName returns the face image asset for the card, e.g. "queen_of_spades.png".
func (c Card) ImageName() string {
	return c.Rank.Label() + imageSeparator + c.Suit.String() + imageExtension
}

func (c Card) String() string {
	return c.Rank.Label() + imageSeparator + c.Suit.String()
}

// ParseCard is the inverse of ImageName. The ".png" extension is optional.
func ParseCard(name string) (Card, error) {
	name = strings.TrimSuffix(name, imageExtension)
	rankLabel, suitLabel, found := strings.Cut(name, imageSeparator)
	if !found {
		return Card{}, fmt.Errorf("%w: %q", ErrInvalidCard, name)
	}
	rank, err := ParseRank(rankLabel)
	if err != nil {
		return Card{}, err
	}
	for _, suit := range Suits {
		if suit.String() == suitLabel {
			return Card{Rank: rank, Suit: suit}, nil
		}
	}
	return Card{}, fmt.Errorf("%w: unknown suit %q", ErrInvalidCard, suitLabel)
}
