package main

import (
	"fmt"
	"io"
	"text/template"
	"time"

	"github.com/kamstrup/intmap"

	"github.com/plus3/blockfall/core"
)

// Report accumulates results across all simulated games. Event and kind
// distributions are kept in int-keyed maps indexed by the enum values.
type Report struct {
	// Configuration
	Games int
	Seed  uint64

	// Results
	TotalTransitions int64
	TotalTime        time.Duration
	Transition       Stats

	TotalRows  int
	MaxScore   int
	MaxLevel   int
	ScoreTotal int64

	eventCounts *intmap.Map[int64, int64]
	kindCounts  *intmap.Map[int64, int64]
}

type Stats struct {
	Min     time.Duration
	Max     time.Duration
	Avg     time.Duration
	Samples []time.Duration
}

func (s *Stats) Finalize() {
	if len(s.Samples) == 0 {
		return
	}

	var total time.Duration
	s.Min = s.Samples[0]
	s.Max = s.Samples[0]

	for _, sample := range s.Samples {
		if sample < s.Min {
			s.Min = sample
		}
		if sample > s.Max {
			s.Max = sample
		}
		total += sample
	}
	s.Avg = total / time.Duration(len(s.Samples))
}

func NewReport(games int, seed uint64) *Report {
	return &Report{
		Games:       games,
		Seed:        seed,
		eventCounts: intmap.New[int64, int64](16),
		kindCounts:  intmap.New[int64, int64](core.NumKinds),
	}
}

// CountEvents tallies every emitted event tag.
func (r *Report) CountEvents(events []core.Event) {
	for _, ev := range events {
		v, _ := r.eventCounts.Get(int64(ev.Kind))
		r.eventCounts.Put(int64(ev.Kind), v+1)
	}
}

// CountKind tallies one drawn piece kind.
func (r *Report) CountKind(k core.Kind) {
	v, _ := r.kindCounts.Get(int64(k))
	r.kindCounts.Put(int64(k), v+1)
}

// FinishGame folds one completed game into the totals.
func (r *Report) FinishGame(sess core.Session, transitions int) {
	r.TotalTransitions += int64(transitions)
	r.TotalRows += sess.Rows
	r.ScoreTotal += int64(sess.Score)
	if sess.Score > r.MaxScore {
		r.MaxScore = sess.Score
	}
	if sess.Level > r.MaxLevel {
		r.MaxLevel = sess.Level
	}
}

// Distribution is one row of an enum tally for the report template.
type Distribution struct {
	Name  string
	Count int64
}

func (r *Report) EventDistribution() []Distribution {
	out := make([]Distribution, 0, 10)
	for k := core.EventStarted; k <= core.EventRejected; k++ {
		if v, ok := r.eventCounts.Get(int64(k)); ok {
			out = append(out, Distribution{Name: k.String(), Count: v})
		}
	}
	return out
}

func (r *Report) KindDistribution() []Distribution {
	out := make([]Distribution, 0, core.NumKinds)
	for k := core.Kind(0); k < core.NumKinds; k++ {
		v, _ := r.kindCounts.Get(int64(k))
		out = append(out, Distribution{Name: k.String(), Count: v})
	}
	return out
}

func (r *Report) AvgScore() int64 {
	if r.Games == 0 {
		return 0
	}
	return r.ScoreTotal / int64(r.Games)
}

func (r *Report) Generate(w io.Writer) error {
	const reportTemplate = `
# Game Core Stress Report

## Test Configuration
- **Games Played:** {{.Games}}
- **Seed:** {{.Seed}}

## Performance Results
- **Total Transitions:** {{.TotalTransitions}}
- **Total Test Time:** {{.TotalTime}}
- **Transition Time:**
  - **Avg:** {{.Transition.Avg}}
  - **Min:** {{.Transition.Min}}
  - **Max:** {{.Transition.Max}}

## Game Results
- **Total Rows Cleared:** {{.TotalRows}}
- **Average Score:** {{.AvgScore}}
- **Max Score:** {{.MaxScore}}
- **Max Level:** {{.MaxLevel}}

## Piece Distribution
{{range .KindDistribution}}- {{.Name}}: {{.Count}}
{{end}}
## Event Distribution
{{range .EventDistribution}}- {{.Name}}: {{.Count}}
{{end}}`

	tmpl, err := template.New("report").Parse(reportTemplate)
	if err != nil {
		return err
	}
	if err := tmpl.Execute(w, r); err != nil {
		return fmt.Errorf("render report: %w", err)
	}
	return nil
}
