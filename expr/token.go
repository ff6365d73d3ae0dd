package expr

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

type Kind int

const (
	Number Kind = iota
	Plus
	Minus
	Times
	Divide
	LParen
	RParen
)

var symbols = map[rune]Kind{
	'+': Plus,
	'-': Minus,
	'*': Times,
	'/': Divide,
	'(': LParen,
	')': RParen,
}

var kindNames = [...]string{"number", "+", "-", "*", "/", "(", ")"}

func (k Kind) String() string {
	if k < Number || k > RParen {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// IsOperator reports whether k is one of the four binary operators.
func (k Kind) IsOperator() bool {
	return k >= Plus && k <= Divide
}

// Token is a numeric literal or a single operator/grouping symbol.
type Token struct {
	Kind  Kind
	Text  string
	Value float64 // numbers only
	valid bool    // Text parsed as a float
}

func numberToken(text string) Token {
	v, err := strconv.ParseFloat(text, 64)
	return Token{Kind: Number, Text: text, Value: v, valid: err == nil}
}

func valueToken(v float64) Token {
	return Token{Kind: Number, Text: strconv.FormatFloat(v, 'g', -1, 64), Value: v, valid: true}
}

func (t Token) String() string {
	return t.Text
}

// Tokenize splits an expression into numbers and the symbols + - * / ( ).
// Digits and '.' accumulate into a number; whitespace is skipped; anything
// else fails with ErrInvalidCharacter. Malformed numbers such as "1.2.3" are
// returned as tokens and rejected at evaluation.
func Tokenize(text string) ([]Token, error) {
	tokens := []Token{}
	var number strings.Builder

	flush := func() {
		if number.Len() > 0 {
			tokens = append(tokens, numberToken(number.String()))
			number.Reset()
		}
	}

	for i, ch := range text {
		if (ch >= '0' && ch <= '9') || ch == '.' {
			number.WriteRune(ch)
			continue
		}
		if kind, ok := symbols[ch]; ok {
			flush()
			tokens = append(tokens, Token{Kind: kind, Text: string(ch)})
			continue
		}
		if unicode.IsSpace(ch) {
			continue
		}
		return nil, fmt.Errorf("%w %q at offset %d", ErrInvalidCharacter, ch, i)
	}
	flush()

	return tokens, nil
}

// Texts returns the source text of each token.
func Texts(tokens []Token) []string {
	texts := make([]string, len(tokens))
	for i, t := range tokens {
		texts[i] = t.Text
	}
	return texts
}

// Numbers returns the numeric literals in order of appearance.
func Numbers(tokens []Token) []string {
	numbers := []string{}
	for _, t := range tokens {
		if t.Kind == Number {
			numbers = append(numbers, t.Text)
		}
	}
	return numbers
}
