package stats

import (
	"math"
	"testing"
	"time"

	"lifeplane/internal/core"
	"lifeplane/internal/life"
)

func TestHistoryDetectsPeriods(t *testing.T) {
	cases := []struct {
		name   string
		cells  []core.Coord
		period int
	}{
		{"block", []core.Coord{core.C(0, 0), core.C(1, 0), core.C(0, 1), core.C(1, 1)}, 1},
		{"blinker", []core.Coord{core.C(0, 0), core.C(1, 0), core.C(2, 0)}, 2},
		{"empty", nil, 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g := life.New()
			g.Seed(core.C(0, 0), tc.cells)
			h := NewHistory(5)
			h.Push(g.Hash())
			got := 0
			for i := 0; i < 4 && got == 0; i++ {
				g.Advance()
				got = h.Push(g.Hash())
			}
			if got != tc.period {
				t.Fatalf("period = %d, want %d", got, tc.period)
			}
		})
	}
}

func TestHistoryForgetsOldHashes(t *testing.T) {
	h := NewHistory(2)
	h.Push(1)
	h.Push(2)
	h.Push(3)
	if p := h.Push(1); p != 0 {
		t.Fatalf("hash outside window reported period %d", p)
	}
	if p := h.Push(3); p != 2 {
		t.Fatalf("period = %d, want 2", p)
	}
	h.Reset()
	if p := h.Push(3); p != 0 {
		t.Fatalf("period after reset = %d, want 0", p)
	}
}

func TestStatsUpdate(t *testing.T) {
	s := New()
	s.Update(1, 100, 10*time.Millisecond)
	s.Update(2, 200, 0)
	if s.PeakPopulation != 200 || s.Population != 200 || s.Generation != 2 {
		t.Fatalf("unexpected stats %+v", s)
	}
	if math.Abs(s.AveragePopulation-110) > 1e-9 {
		t.Fatalf("average = %v, want 110", s.AveragePopulation)
	}
	if s.GenerationsPerSecond < 99 || s.GenerationsPerSecond > 101 {
		t.Fatalf("gen/sec = %v, want ~100", s.GenerationsPerSecond)
	}
}
