// Package sweep advances many independent scenarios concurrently and reports
// how their populations evolve. Each scenario owns its grid.
package sweep

import (
	"context"
	"fmt"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"lifeplane/internal/core"
	"lifeplane/internal/life"
	"lifeplane/internal/pattern"
	"lifeplane/internal/stats"
)

// historySize bounds the longest period the sweep can recognise.
const historySize = 64

// Scenario describes one starting configuration.
type Scenario struct {
	Name        string
	Rule        core.Rule
	Cells       []core.Coord
	Generations int
}

// Result summarises one finished scenario.
type Result struct {
	Scenario       string
	Initial        int
	Final          int
	Peak           int
	Generations    int
	SettledAt      int // generation at which a repeat was first seen, 0 if never
	Period         int
	Elapsed        time.Duration
	GenerationsSec float64
}

func (r Result) String() string {
	settled := "active"
	if r.Period > 0 {
		settled = fmt.Sprintf("settled@%d period=%d", r.SettledAt, r.Period)
	}
	return fmt.Sprintf("%-12s init=%-5d final=%-5d peak=%-5d gens=%-5d %s (%.0f gen/s)",
		r.Scenario, r.Initial, r.Final, r.Peak, r.Generations, settled, r.GenerationsSec)
}

// SoupScenarios builds n random soups of side*side cells seeded from seed..seed+n-1.
func SoupScenarios(n int, side int64, density float64, seed int64, rule core.Rule, generations int) []Scenario {
	out := make([]Scenario, 0, n)
	area := core.Rect{MinX: -side / 2, MinY: -side / 2, MaxX: side - side/2, MaxY: side - side/2}
	for i := 0; i < n; i++ {
		s := seed + int64(i)
		out = append(out, Scenario{
			Name:        fmt.Sprintf("soup-%d", s),
			Rule:        rule,
			Cells:       core.NewRNG(s).Soup(area, density),
			Generations: generations,
		})
	}
	return out
}

// GunScenario returns the glider gun stamped at the origin.
func GunScenario(rule core.Rule, generations int) Scenario {
	return Scenario{Name: "gosper-gun", Rule: rule, Cells: pattern.GosperGun, Generations: generations}
}

// Run advances every scenario with at most workers goroutines. Results are in
// scenario order. Cancelling ctx stops the sweep and returns ctx's error.
func Run(ctx context.Context, scenarios []Scenario, workers int) ([]Result, error) {
	results := make([]Result, len(scenarios))
	eg, ctx := errgroup.WithContext(ctx)
	if workers > 0 {
		eg.SetLimit(workers)
	}
	for i, sc := range scenarios {
		eg.Go(func() error {
			res, err := runOne(ctx, sc)
			if err != nil {
				return errors.Wrapf(err, "scenario %s", sc.Name)
			}
			results[i] = res
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func runOne(ctx context.Context, sc Scenario) (Result, error) {
	g := life.NewWithRule(sc.Rule)
	g.Seed(core.Coord{}, sc.Cells)
	hist := stats.NewHistory(historySize)
	hist.Push(g.Hash())
	st := stats.New()

	res := Result{Scenario: sc.Name, Initial: g.Population(), Peak: g.Population()}
	start := time.Now()
	for gen := 1; gen <= sc.Generations; gen++ {
		if gen%64 == 0 {
			if err := ctx.Err(); err != nil {
				return res, err
			}
		}
		stepStart := time.Now()
		g.Advance()
		st.Update(gen, g.Population(), time.Since(stepStart))
		if p := hist.Push(g.Hash()); p > 0 && res.Period == 0 {
			res.Period = p
			res.SettledAt = gen
		}
	}
	res.Elapsed = time.Since(start)
	res.Final = g.Population()
	res.Peak = max(res.Peak, st.PeakPopulation)
	res.Generations = g.Generation()
	if secs := res.Elapsed.Seconds(); secs > 0 {
		res.GenerationsSec = float64(res.Generations) / secs
	}
	return res, nil
}
