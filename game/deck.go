package game

import (
	"fmt"

	"golang.org/x/exp/rand"
)

// Deck is a standard 52-card deck. Drawing takes cards from the top.
type Deck struct {
	cards []Card
}

// NewDeck builds the deck rank by rank, each rank in all four suits.
func NewDeck() *Deck {
	cards := make([]Card, 0, DeckSize)
	for _, rank := range Ranks {
		for _, suit := range Suits {
			cards = append(cards, Card{Rank: rank, Suit: suit})
		}
	}
	return &Deck{cards: cards}
}

func (d *Deck) Len() int {
	return len(d.cards)
}

// Cards returns a copy of the remaining cards, top first.
func (d *Deck) Cards() []Card {
	cards := make([]Card, len(d.cards))
	copy(cards, d.cards)
	return cards
}

func (d *Deck) Shuffle(rng *rand.Rand) {
	rng.Shuffle(len(d.cards), func(i, j int) {
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	})
}

// Draw removes n cards from the top of the deck.
func (d *Deck) Draw(n int) ([]Card, error) {
	if n < 0 || n > len(d.cards) {
		return nil, fmt.Errorf("%w: cannot draw %d from %d", ErrEmptyDeck, n, len(d.cards))
	}
	drawn := make([]Card, n)
	copy(drawn, d.cards[:n])
	d.cards = d.cards[n:]
	return drawn, nil
}
