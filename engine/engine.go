package engine

import (
	"time"

	"cardgame24/game"
	"cardgame24/searcher"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

type Option func(e *Engine)

// Engine deals rounds and judges expressions. It keeps no hand of its own:
// every operation takes the hand it applies to.
type Engine struct {
	seed   uint64
	rng    *rand.Rand
	solver *searcher.Solver
	strict bool
}

// Round is one deal: the four cards on the table and their values.
type Round struct {
	Cards []game.Card
	Hand  game.Hand
}

// WithSeed fixes the shuffle sequence. A zero seed is ignored.
func WithSeed(seed uint64) Option {
	return func(e *Engine) {
		if seed != 0 {
			e.seed = seed
		}
	}
}

// WithStrictCards requires every card value to be used exactly once as a
// number in the expression, instead of only appearing somewhere in its text.
func WithStrictCards(strict bool) Option {
	return func(e *Engine) {
		e.strict = strict
	}
}

func WithSolver(solver *searcher.Solver) Option {
	return func(e *Engine) {
		if solver != nil {
			e.solver = solver
		}
	}
}

func NewEngine(options ...Option) *Engine {
	e := &Engine{ // Default values
		seed:   uint64(time.Now().UnixNano()),
		solver: searcher.NewSolver(),
	}
	for _, option := range options {
		option(e)
	}
	e.rng = rand.New(rand.NewSource(e.seed))
	log.Debug().Msgf("engine seeded with %d, strict cards: %t", e.seed, e.strict)
	return e
}

func (e *Engine) Seed() uint64 {
	return e.seed
}

func (e *Engine) Solver() *searcher.Solver {
	return e.solver
}

// Deal shuffles a full deck and takes the top four cards.
func (e *Engine) Deal() Round {
	deck := game.NewDeck()
	deck.Shuffle(e.rng)

	cards, err := deck.Draw(game.HandSize)
	if err != nil {
		panic(err) // a full deck always has a hand's worth of cards
	}
	hand, err := game.HandOf(cards)
	if err != nil {
		panic(err)
	}

	log.Debug().Msgf("dealt %v", hand)
	return Round{Cards: cards, Hand: hand}
}

// FindSolution returns a solving expression for hand, or searcher.NoSolution.
func (e *Engine) FindSolution(hand game.Hand) string {
	solution := e.solver.FindSolution(hand)
	log.Debug().Msgf("solution for %v: %s", hand, solution)
	return solution
}
