package experiments

import (
	"fmt"
	"strings"
	"time"

	"cardgame24/experiments/metrics"
	"cardgame24/expr"
	"cardgame24/game"
	"cardgame24/searcher"

	"github.com/rs/zerolog/log"
)

const progressInterval = 5000 // Hands between progress logs

// Values are the card values a survey draws from.
var Values = []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13}

// RunSurvey searches every ordered hand over Values and stores the records
// and a summary under dir.
func RunSurvey(dir string, options ...searcher.Option) (metrics.SurveyMetric, error) {
	writer, err := metrics.NewWriter(dir)
	if err != nil {
		return metrics.SurveyMetric{}, fmt.Errorf("failed to create survey writer: %w", err)
	}

	log.Info().Msgf("starting survey, writing to %s...", writer.Dir())

	records, summary := Survey(createSolver(options...), Values)

	log.Info().Msgf("completed survey: %d of %d hands solvable, %d violations in %s",
		summary.Solvable, summary.Hands, summary.Violations, summary.Duration)

	// Store survey results
	err = writer.WriteHandRecords(records)
	if err != nil {
		return summary, fmt.Errorf("failed to write hand records: %w", err)
	}
	log.Info().Msg("stored hand records")

	err = writer.WriteSummary(summary)
	if err != nil {
		return summary, fmt.Errorf("failed to write survey summary: %w", err)
	}
	log.Info().Msg("stored survey summary")

	return summary, nil
}

// Survey runs the solver on every ordered hand of four values drawn from
// values and checks each reported solution independently.
func Survey(solver *searcher.Solver, values []int) ([]metrics.HandMetric, metrics.SurveyMetric) {
	summary := metrics.SurveyMetric{StartTime: time.Now()}
	records := []metrics.HandMetric{}

	for _, a := range values {
		for _, b := range values {
			for _, c := range values {
				for _, d := range values {
					hand := game.Hand{a, b, c, d}
					record := surveyHand(solver, hand)
					records = append(records, record)

					summary.Hands++
					if record.Solvable {
						summary.Solvable++
						if err := verify(solver, hand, record.Solution); err != nil {
							log.Warn().Err(err).Msgf("hand %v", hand)
							summary.Violations++
						}
					}
					if summary.Hands%progressInterval == 0 {
						log.Info().Msgf("surveyed %d hands...", summary.Hands)
					}
				}
			}
		}
	}

	summary.EndTime = time.Now()
	summary.Duration = summary.EndTime.Sub(summary.StartTime)
	return records, summary
}

func surveyHand(solver *searcher.Solver, hand game.Hand) metrics.HandMetric {
	found, metric := solver.Search(hand, true)
	record := metrics.HandMetric{
		Hand:         hand.String(),
		Solvable:     len(found) > 0,
		SearchMetric: metric,
	}
	if record.Solvable {
		record.Solution = found[0]
	}
	return record
}

// verify re-evaluates a solution and checks that it reaches the target and
// mentions every card value.
func verify(solver *searcher.Solver, hand game.Hand, solution string) error {
	value, err := expr.Evaluate(solution)
	if err != nil {
		return fmt.Errorf("solution %s does not evaluate: %w", solution, err)
	}
	if !solver.Matches(value) {
		return fmt.Errorf("solution %s evaluates to %v", solution, value)
	}
	for _, digits := range hand.Digits() {
		if !strings.Contains(solution, digits) {
			return fmt.Errorf("solution %s does not use %s", solution, digits)
		}
	}
	return nil
}

func createSolver(options ...searcher.Option) *searcher.Solver {
	options = append(options, searcher.WithMetrics())
	return searcher.NewSolver(options...)
}
