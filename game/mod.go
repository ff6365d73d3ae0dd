package game

import "errors"

const (
	HandSize = 4
	DeckSize = 52

	imageSeparator = "_of_"
	imageExtension = ".png"
)

var (
	ErrInvalidRank = errors.New("invalid rank")
	ErrInvalidCard = errors.New("invalid card")
	ErrInvalidHand = errors.New("invalid hand")
	ErrEmptyDeck   = errors.New("not enough cards in deck")
)
