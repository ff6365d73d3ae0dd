package metrics

import (
	"sync/atomic"
	"time"
)

type SearchMetric struct {
	Target     float64
	Tolerance  float64
	Duration   time.Duration
	Candidates int // Expressions evaluated
	Failures   int // Expressions that failed to evaluate or were not finite
	Matches    int
}

type HandMetric struct {
	Hand     string
	Solvable bool
	Solution string
	SearchMetric
}

type SurveyMetric struct {
	StartTime  time.Time
	EndTime    time.Time
	Duration   time.Duration
	Hands      int
	Solvable   int
	Violations int // Reported solutions that did not verify
}

type Collector interface {
	Start(target, tolerance float64)
	AddCandidate()
	AddFailure()
	AddMatch()
	Complete() SearchMetric
}

type collector struct {
	target     float64
	tolerance  float64
	startTime  time.Time
	candidates atomic.Int32
	failures   atomic.Int32
	matches    atomic.Int32
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(target, tolerance float64) {
	m.startTime = time.Now()
	m.target = target
	m.tolerance = tolerance
	m.candidates.Store(0)
	m.failures.Store(0)
	m.matches.Store(0)
}

func (m *collector) AddCandidate() {
	m.candidates.Add(1)
}

func (m *collector) AddFailure() {
	m.failures.Add(1)
}

func (m *collector) AddMatch() {
	m.matches.Add(1)
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		Target:     m.target,
		Tolerance:  m.tolerance,
		Duration:   time.Since(m.startTime),
		Candidates: int(m.candidates.Load()),
		Failures:   int(m.failures.Load()),
		Matches:    int(m.matches.Load()),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(target, tolerance float64) {}
func (m *dummyCollector) AddCandidate()                   {}
func (m *dummyCollector) AddFailure()                     {}
func (m *dummyCollector) AddMatch()                       {}
func (m *dummyCollector) Complete() SearchMetric          { return SearchMetric{} }
