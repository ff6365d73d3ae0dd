package searcher

import (
	"math"

	"cardgame24/experiments/metrics"
	"cardgame24/expr"
	"cardgame24/game"
)

type Option func(s *Solver)

// Solver searches a fixed set of operator and parenthesis templates over a
// hand's values for an expression that evaluates to the target.
type Solver struct {
	target    float64
	tolerance float64
	metrics   metrics.Collector
}

func WithTarget(target float64) Option {
	return func(s *Solver) {
		if !math.IsNaN(target) && !math.IsInf(target, 0) {
			s.target = target
		}
	}
}

func WithTolerance(tolerance float64) Option {
	return func(s *Solver) {
		if tolerance > 0 && !math.IsInf(tolerance, 0) {
			s.tolerance = tolerance
		}
	}
}

func WithMetrics() Option {
	return func(s *Solver) {
		s.metrics = metrics.NewCollector()
	}
}

func NewSolver(options ...Option) *Solver {
	s := &Solver{ // Default values
		target:    Target,
		tolerance: Tolerance,
		metrics:   metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(s)
	}
	return s
}

func (s *Solver) Target() float64 {
	return s.target
}

func (s *Solver) Tolerance() float64 {
	return s.tolerance
}

// Matches reports whether value is within the tolerance of the target.
func (s *Solver) Matches(value float64) bool {
	return math.Abs(value-s.target) < s.tolerance
}

// Solve returns the first candidate, in search order, that evaluates to the target.
func (s *Solver) Solve(hand game.Hand) (string, bool) {
	found, _ := s.Search(hand, false)
	if len(found) == 0 {
		return "", false
	}
	return found[0], true
}

// FindSolution is Solve with the NoSolution sentinel in place of a miss.
func (s *Solver) FindSolution(hand game.Hand) string {
	if solution, ok := s.Solve(hand); ok {
		return solution
	}
	return NoSolution
}

// All returns every matching candidate in search order.
func (s *Solver) All(hand game.Hand) []string {
	found, _ := s.Search(hand, true)
	return found
}

// Search evaluates candidates in order and collects the matches, stopping at
// the first one unless all is set. Candidates that fail to evaluate or give
// a non-finite value are skipped.
func (s *Solver) Search(hand game.Hand, all bool) ([]string, metrics.SearchMetric) {
	s.metrics.Start(s.target, s.tolerance)
	found := []string{}

	for _, candidate := range Candidates(hand) {
		s.metrics.AddCandidate()

		value, err := expr.Evaluate(candidate)
		if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
			s.metrics.AddFailure()
			continue
		}
		if !s.Matches(value) {
			continue
		}

		s.metrics.AddMatch()
		found = append(found, candidate)
		if !all {
			break
		}
	}

	return found, s.metrics.Complete()
}
