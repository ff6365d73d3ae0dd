package experiments

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"cardgame24/game"
	"cardgame24/searcher"

	"github.com/stretchr/testify/require"
)

func TestSurvey(t *testing.T) {
	t.Run("every ordered hand is recorded", func(t *testing.T) {
		records, summary := Survey(createSolver(), []int{1, 2, 3, 4})
		require.Len(t, records, 256)
		require.Equal(t, 256, summary.Hands)
		require.Zero(t, summary.Violations)
		require.Positive(t, summary.Solvable)

		require.Equal(t, "[1 1 1 1]", records[0].Hand)
		require.False(t, records[0].Solvable)
		require.Equal(t, searcher.NumCandidates, records[0].Candidates)

		solvable := 0
		for _, r := range records {
			if r.Solvable {
				solvable++
				require.NotEmpty(t, r.Solution)
				require.Positive(t, r.Matches)
			}
		}
		require.Equal(t, summary.Solvable, solvable)
	})

	t.Run("first solution matches the solver", func(t *testing.T) {
		records, _ := Survey(createSolver(), []int{1, 2, 3, 4})
		solver := searcher.NewSolver()
		for _, r := range records {
			hand, err := game.ParseHand(r.Hand[1 : len(r.Hand)-1])
			require.NoError(t, err)
			require.Equal(t, solver.FindSolution(hand) != searcher.NoSolution, r.Solvable, "hand %v", hand)
			if r.Solvable {
				require.Equal(t, solver.FindSolution(hand), r.Solution)
			}
		}
	})

	t.Run("full survey", func(t *testing.T) {
		if testing.Short() {
			t.Skip("full survey skipped in short mode")
		}
		_, summary := Survey(createSolver(), Values)
		require.Equal(t, 28561, summary.Hands)
		require.Equal(t, 10625, summary.Solvable)
		require.Zero(t, summary.Violations)
	})
}

func TestVerify(t *testing.T) {
	solver := searcher.NewSolver()
	hand := game.Hand{1, 2, 3, 4}

	require.NoError(t, verify(solver, hand, "(1+2+3)*4"))
	require.Error(t, verify(solver, hand, "1+2+3+4"))
	require.Error(t, verify(solver, hand, "(1+2+3)*"))
	require.Error(t, verify(solver, game.Hand{1, 2, 3, 5}, "(1+2+3)*4"))
}

func TestRunSurvey(t *testing.T) {
	if testing.Short() {
		t.Skip("full survey skipped in short mode")
	}
	dir := t.TempDir()

	summary, err := RunSurvey(dir)
	require.NoError(t, err)
	require.Equal(t, 10625, summary.Solvable)

	runs, err := os.ReadDir(filepath.Join(dir, "survey"))
	require.NoError(t, err)
	require.Len(t, runs, 1)
	runDir := filepath.Join(dir, "survey", runs[0].Name())

	hands := readCSV(t, filepath.Join(runDir, "hand_records.csv"))
	require.Len(t, hands, 28561+1)
	require.Equal(t, []string{"hand", "solvable", "solution", "matches", "candidates", "failures", "duration"}, hands[0])

	summaryRows := readCSV(t, filepath.Join(runDir, "survey_summary.csv"))
	require.Len(t, summaryRows, 2)
	require.Equal(t, []string{"28561", "10625", "0"}, summaryRows[1][:3])
}

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}
