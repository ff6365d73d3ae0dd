package searcher

import (
	"cardgame24/expr"
	"cardgame24/meta"
)

const (
	Target    = meta.TARGET
	Tolerance = meta.TOLERANCE

	// NoSolution is returned by FindSolution when no template matches.
	NoSolution = "No solution found."
)

// Operators tried for each of the three slots, in search order.
var Operators = []expr.Kind{expr.Plus, expr.Minus, expr.Times, expr.Divide}
