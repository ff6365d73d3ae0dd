package searcher

import (
	"fmt"

	"cardgame24/expr"
	"cardgame24/game"
)

// template renders the four hand values, in display order, with three operators.
type template func(a, b, c, d int, op1, op2, op3 string) string

var templates = []template{
	// a op1 b op2 c op3 d
	func(a, b, c, d int, op1, op2, op3 string) string {
		return fmt.Sprintf("%d%s%d%s%d%s%d", a, op1, b, op2, c, op3, d)
	},
	// (a op1 b) op2 c op3 d
	func(a, b, c, d int, op1, op2, op3 string) string {
		return fmt.Sprintf("(%d%s%d)%s%d%s%d", a, op1, b, op2, c, op3, d)
	},
	// (a op1 b op2 c) op3 d
	func(a, b, c, d int, op1, op2, op3 string) string {
		return fmt.Sprintf("(%d%s%d%s%d)%s%d", a, op1, b, op2, c, op3, d)
	},
	// (a op1 (b op2 c)) op3 d
	func(a, b, c, d int, op1, op2, op3 string) string {
		return fmt.Sprintf("(%d%s(%d%s%d))%s%d", a, op1, b, op2, c, op3, d)
	},
	// ((a op1 b) op2 c) op3 d
	func(a, b, c, d int, op1, op2, op3 string) string {
		return fmt.Sprintf("((%d%s%d)%s%d)%s%d", a, op1, b, op2, c, op3, d)
	},
}

// NumCandidates is the size of the search space for one hand.
var NumCandidates = len(Operators) * len(Operators) * len(Operators) * len(templates)

// Candidates lists every expression the solver tries for hand, in search
// order: first operator, second operator, third operator, then template.
func Candidates(hand game.Hand) []string {
	a, b, c, d := hand[0], hand[1], hand[2], hand[3]
	candidates := make([]string, 0, NumCandidates)
	for _, op1 := range Operators {
		for _, op2 := range Operators {
			for _, op3 := range Operators {
				for _, render := range templates {
					candidates = append(candidates, render(a, b, c, d, symbol(op1), symbol(op2), symbol(op3)))
				}
			}
		}
	}
	return candidates
}

func symbol(op expr.Kind) string {
	return op.String()
}
