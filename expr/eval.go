package expr

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"cardgame24/utils"
)

var (
	ErrInvalidCharacter      = errors.New("invalid character in expression")
	ErrMismatchedParentheses = errors.New("mismatched parentheses")
	ErrInvalidExpression     = errors.New("invalid expression")
)

// Evaluate strips whitespace from text, tokenizes it and evaluates the tokens.
func Evaluate(text string) (float64, error) {
	text = strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, text)

	tokens, err := Tokenize(text)
	if err != nil {
		return 0, err
	}
	return EvaluateTokens(tokens)
}

// EvaluateTokens reduces tokens to a single value. Parenthesised groups are
// resolved first, innermost-rightmost first, then * and / left to right, then
// + and - left to right. Division by zero yields ±Inf or NaN rather than an
// error. The caller's slice is not modified.
func EvaluateTokens(tokens []Token) (float64, error) {
	work := make([]Token, len(tokens))
	copy(work, tokens)
	return evaluate(work)
}

func evaluate(tokens []Token) (float64, error) {
	for {
		kinds := kindsOf(tokens)
		open := utils.FindLastIndex(kinds, LParen)
		if open < 0 {
			break
		}
		closing := utils.FindIndexFrom(kinds, RParen, open+1)
		if closing < 0 {
			return 0, fmt.Errorf("%w: no ')' for '(' at token %d", ErrMismatchedParentheses, open)
		}
		if closing == open+1 {
			return 0, fmt.Errorf("%w: empty group at token %d", ErrMismatchedParentheses, open)
		}

		inner := make([]Token, closing-open-1)
		copy(inner, tokens[open+1:closing])
		value, err := evaluate(inner)
		if err != nil {
			return 0, err
		}

		tokens[open] = valueToken(value)
		tokens = append(tokens[:open+1], tokens[closing+1:]...)
	}

	var err error
	if tokens, err = collapse(tokens, Times, Divide); err != nil {
		return 0, err
	}
	if tokens, err = collapse(tokens, Plus, Minus); err != nil {
		return 0, err
	}

	if len(tokens) != 1 {
		return 0, fmt.Errorf("%w: %d tokens left after reduction", ErrInvalidExpression, len(tokens))
	}
	return operand(tokens[0])
}

// collapse folds every a OP b triple whose operator is one of ops into a
// single number, scanning left to right.
func collapse(tokens []Token, ops ...Kind) ([]Token, error) {
	for i := 0; i < len(tokens); i++ {
		kind := tokens[i].Kind
		if utils.FindIndex(ops, kind) < 0 {
			continue
		}
		if i == 0 || i+1 >= len(tokens) {
			return nil, fmt.Errorf("%w: operator %s is missing an operand", ErrInvalidExpression, kind)
		}
		left, err := operand(tokens[i-1])
		if err != nil {
			return nil, err
		}
		right, err := operand(tokens[i+1])
		if err != nil {
			return nil, err
		}

		tokens[i-1] = valueToken(apply(kind, left, right))
		tokens = append(tokens[:i], tokens[i+2:]...)
		i--
	}
	return tokens, nil
}

func apply(op Kind, left, right float64) float64 {
	switch op {
	case Plus:
		return left + right
	case Minus:
		return left - right
	case Times:
		return left * right
	case Divide:
		return left / right
	default:
		panic(fmt.Sprintf("unexpected operator %s", op))
	}
}

func operand(t Token) (float64, error) {
	if t.Kind.IsOperator() {
		return 0, fmt.Errorf("%w: operator %s where a number was expected", ErrInvalidExpression, t.Kind)
	}
	if t.Kind != Number {
		return 0, fmt.Errorf("%w: expected a number, got %q", ErrInvalidExpression, t.Text)
	}
	if !t.valid {
		return 0, fmt.Errorf("%w: malformed number %q", ErrInvalidExpression, t.Text)
	}
	return t.Value, nil
}

func kindsOf(tokens []Token) []Kind {
	kinds := make([]Kind, len(tokens))
	for i, t := range tokens {
		kinds[i] = t.Kind
	}
	return kinds
}
