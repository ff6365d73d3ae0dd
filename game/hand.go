package game

import (
	"fmt"
	"strconv"
	"strings"
)

// Hand is the ordered values of the four cards on the table. It is a value
// type: a new round replaces the whole hand.
type Hand [HandSize]int

// NewHand validates the values and returns them as a hand.
func NewHand(values ...int) (Hand, error) {
	var h Hand
	if len(values) != HandSize {
		return h, fmt.Errorf("%w: need %d values, got %d", ErrInvalidHand, HandSize, len(values))
	}
	for i, v := range values {
		if !Rank(v).Valid() {
			return Hand{}, fmt.Errorf("%w: value %d out of range [%d,%d]", ErrInvalidHand, v, Ace, King)
		}
		h[i] = v
	}
	return h, nil
}

// HandOf returns the values of the given cards in order.
func HandOf(cards []Card) (Hand, error) {
	values := make([]int, len(cards))
	for i, c := range cards {
		values[i] = c.Value()
	}
	return NewHand(values...)
}

// ParseHand accepts values separated by commas and/or whitespace, e.g. "1,2,3,4".
// Rank labels such as "queen" are accepted too.
func ParseHand(s string) (Hand, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
	values := make([]int, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			rank, rankErr := ParseRank(f)
			if rankErr != nil {
				return Hand{}, fmt.Errorf("%w: %q is not a card value", ErrInvalidHand, f)
			}
			v = int(rank)
		}
		values = append(values, v)
	}
	return NewHand(values...)
}

// Digits returns each value as decimal text, in hand order.
func (h Hand) Digits() []string {
	digits := make([]string, HandSize)
	for i, v := range h {
		digits[i] = strconv.Itoa(v)
	}
	return digits
}

func (h Hand) String() string {
	return "[" + strings.Join(h.Digits(), " ") + "]"
}
