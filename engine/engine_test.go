package engine

import (
	"math"
	"testing"

	"cardgame24/expr"
	"cardgame24/game"
	"cardgame24/searcher"

	"github.com/stretchr/testify/require"
)

func TestDeal(t *testing.T) {
	t.Run("deals four distinct cards", func(t *testing.T) {
		e := NewEngine(WithSeed(1))
		for i := 0; i < 50; i++ {
			round := e.Deal()
			require.Len(t, round.Cards, game.HandSize)

			seen := map[game.Card]bool{}
			for j, card := range round.Cards {
				require.False(t, seen[card], "card %v dealt twice", card)
				seen[card] = true
				require.Equal(t, card.Value(), round.Hand[j])
				require.True(t, card.Rank.Valid())
			}
		}
	})

	t.Run("same seed deals the same rounds", func(t *testing.T) {
		e1 := NewEngine(WithSeed(99))
		e2 := NewEngine(WithSeed(99))
		for i := 0; i < 5; i++ {
			require.Equal(t, e1.Deal(), e2.Deal())
		}
		require.Equal(t, uint64(99), e1.Seed())
	})

	t.Run("zero seed falls back to the clock", func(t *testing.T) {
		require.NotZero(t, NewEngine(WithSeed(0)).Seed())
	})
}

func TestCheck(t *testing.T) {
	e := NewEngine(WithSeed(1))

	t.Run("correct expression", func(t *testing.T) {
		verdict, err := e.Check(game.Hand{1, 2, 3, 4}, "(1+2+3)*4")
		require.NoError(t, err)
		require.Equal(t, Verdict{Valid: true, Equals24: true, Value: 24}, verdict)
		require.Equal(t, "Correct! Your expression evaluates to 24", e.Message(verdict, err))
	})

	t.Run("incorrect expression", func(t *testing.T) {
		verdict, err := e.Check(game.Hand{1, 2, 3, 4}, "1+2+3+4")
		require.NoError(t, err)
		require.True(t, verdict.Valid)
		require.False(t, verdict.Equals24)
		require.Equal(t, 10.0, verdict.Value)
		require.Equal(t, "Incorrect! Your expression does not evaluate to 24", e.Message(verdict, err))
	})

	t.Run("missing cards", func(t *testing.T) {
		verdict, err := e.Check(game.Hand{2, 3, 4, 5}, "2+3*4")
		require.ErrorIs(t, err, ErrMissingCards)
		require.False(t, verdict.Valid)
		require.Equal(t, "Invalid Input, expression must use all four cards", e.Message(verdict, err))
	})

	t.Run("missing cards is checked before evaluation", func(t *testing.T) {
		_, err := e.Check(game.Hand{2, 3, 4, 5}, "2#3")
		require.ErrorIs(t, err, ErrMissingCards)
	})

	t.Run("evaluation errors", func(t *testing.T) {
		hand := game.Hand{2, 3, 4, 5}
		for text, want := range map[string]error{
			"2#3+4+5":   expr.ErrInvalidCharacter,
			"(2+3*4+5":  expr.ErrMismatchedParentheses,
			"2+3*4+5+":  expr.ErrInvalidExpression,
			"2 3 4 5 +": expr.ErrInvalidExpression,
		} {
			verdict, err := e.Check(hand, text)
			require.ErrorIs(t, err, want, "expression %q", text)
			require.False(t, verdict.Valid)
			require.Equal(t, "Invalid arithmetic expression", e.Message(verdict, err))
		}
	})

	t.Run("non-finite values are incorrect, not errors", func(t *testing.T) {
		verdict, err := e.Check(game.Hand{1, 1, 2, 2}, "1/(1-1)+2*2")
		require.NoError(t, err)
		require.True(t, verdict.Valid)
		require.False(t, verdict.Equals24)
		require.True(t, math.IsInf(verdict.Value, 1))
	})

	t.Run("checking is idempotent", func(t *testing.T) {
		hand := game.Hand{4, 4, 4, 4}
		v1, err1 := e.Check(hand, "4+4+4*4")
		v2, err2 := e.Check(hand, "4+4+4*4")
		require.Equal(t, v1, v2)
		require.Equal(t, err1, err2)
		require.Equal(t, game.Hand{4, 4, 4, 4}, hand)
	})

	t.Run("custom target changes the messages", func(t *testing.T) {
		e := NewEngine(WithSeed(1), WithSolver(searcher.NewSolver(searcher.WithTarget(10))))
		verdict, err := e.Check(game.Hand{1, 2, 3, 4}, "1+2+3+4")
		require.NoError(t, err)
		require.True(t, verdict.Equals24)
		require.Equal(t, "Correct! Your expression evaluates to 10", e.Message(verdict, err))
	})
}

func TestCardChecks(t *testing.T) {
	t.Run("substring check is fooled by shared digits", func(t *testing.T) {
		require.True(t, UsesAllCards(game.Hand{1, 11, 2, 3}, "11*2+3"))
		require.False(t, UsesAllCards(game.Hand{11, 1, 2, 3}, "1+1+2+3"))
		require.True(t, UsesAllCards(game.Hand{1, 2, 3, 4}, "12*3-4"))
		require.False(t, UsesAllCards(game.Hand{1, 2, 3, 4}, "1+2+3"))
	})

	t.Run("strict check counts each card once", func(t *testing.T) {
		require.False(t, UsesExactCards(game.Hand{11, 1, 2, 3}, "1+1+2+3"))
		require.False(t, UsesExactCards(game.Hand{1, 11, 2, 3}, "11*2+3"))
		require.True(t, UsesExactCards(game.Hand{11, 1, 2, 3}, "11*2+3-1"))
		require.False(t, UsesExactCards(game.Hand{1, 2, 3, 4}, "12*3-4"))
		require.True(t, UsesExactCards(game.Hand{4, 1, 3, 2}, "(1+2+3)*4"))
		require.False(t, UsesExactCards(game.Hand{4, 4, 4, 4}, "4*4+4+4+4"))
		require.False(t, UsesExactCards(game.Hand{1, 2, 3, 4}, "1+2#3+4"))
	})

	t.Run("strict engine rejects a card hidden in another number", func(t *testing.T) {
		hand := game.Hand{1, 11, 2, 3}

		verdict, err := NewEngine(WithSeed(1)).Check(hand, "11*2+3")
		require.NoError(t, err)
		require.True(t, verdict.Valid)
		require.False(t, verdict.Equals24)
		require.Equal(t, 25.0, verdict.Value)

		e := NewEngine(WithSeed(1), WithStrictCards(true))
		_, err = e.Check(hand, "11*2+3")
		require.ErrorIs(t, err, ErrMissingCards)

		verdict, err = e.Check(hand, "11*2+3-1")
		require.NoError(t, err)
		require.True(t, verdict.Equals24)

		_, err = e.Check(game.Hand{1, 2, 3, 4}, "1+2#3+4")
		require.ErrorIs(t, err, expr.ErrInvalidCharacter)
	})
}

func TestFindSolution(t *testing.T) {
	e := NewEngine(WithSeed(1))
	require.Equal(t, "(1+2+3)*4", e.FindSolution(game.Hand{1, 2, 3, 4}))
	require.Equal(t, searcher.NoSolution, e.FindSolution(game.Hand{1, 1, 1, 1}))
	require.Equal(t, "No solution found.", e.FindSolution(game.Hand{4, 6, 8, 2}))
}
