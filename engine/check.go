package engine

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"strings"

	"cardgame24/expr"
	"cardgame24/game"
)

var ErrMissingCards = errors.New("expression must use all four cards")

// Verdict is the outcome of checking an expression against a hand.
type Verdict struct {
	Valid    bool    // The expression used the cards and evaluated
	Equals24 bool    // The value is within tolerance of the target
	Value    float64 // Meaningful only when Valid
}

// Check verifies that text uses the hand's cards, then evaluates it. A value
// that misses the target, including ±Inf and NaN, is a valid but incorrect
// verdict; malformed expressions and missing cards are errors.
func (e *Engine) Check(hand game.Hand, text string) (Verdict, error) {
	usesCards := UsesAllCards
	if e.strict {
		if _, err := expr.Tokenize(text); err != nil {
			return Verdict{}, fmt.Errorf("failed to evaluate %q: %w", text, err)
		}
		usesCards = UsesExactCards
	}
	if !usesCards(hand, text) {
		return Verdict{}, fmt.Errorf("%w %v", ErrMissingCards, hand)
	}

	value, err := expr.Evaluate(text)
	if err != nil {
		return Verdict{}, fmt.Errorf("failed to evaluate %q: %w", text, err)
	}

	return Verdict{
		Valid:    true,
		Equals24: !math.IsNaN(value) && e.solver.Matches(value),
		Value:    value,
	}, nil
}

// UsesAllCards reports whether each hand value's digits appear somewhere in
// text. It is a substring test: "11" also satisfies a 1, and "12" satisfies a
// 1 and a 2.
func UsesAllCards(hand game.Hand, text string) bool {
	for _, digits := range hand.Digits() {
		if !strings.Contains(text, digits) {
			return false
		}
	}
	return true
}

// UsesExactCards reports whether the numbers in text are exactly the hand's
// values, each used once.
func UsesExactCards(hand game.Hand, text string) bool {
	tokens, err := expr.Tokenize(text)
	if err != nil {
		return false
	}
	numbers := expr.Numbers(tokens)
	want := hand.Digits()
	if len(numbers) != len(want) {
		return false
	}
	slices.Sort(numbers)
	slices.Sort(want)
	return slices.Equal(numbers, want)
}

// Message turns a Check result into the text shown to the player.
func (e *Engine) Message(verdict Verdict, err error) string {
	switch {
	case errors.Is(err, ErrMissingCards):
		return "Invalid Input, expression must use all four cards"
	case err != nil:
		return "Invalid arithmetic expression"
	case verdict.Equals24:
		return fmt.Sprintf("Correct! Your expression evaluates to %g", e.solver.Target())
	default:
		return fmt.Sprintf("Incorrect! Your expression does not evaluate to %g", e.solver.Target())
	}
}
