// Package stats tracks population statistics and detects when a pattern has
// settled into a still life or a short oscillation.
package stats

import "time"

// Stats for performance monitoring
type Stats struct {
	GenerationsPerSecond float64
	AveragePopulation    float64
	PeakPopulation       int
	Generation           int
	Population           int
	StartTime            time.Time
}

func New() *Stats {
	return &Stats{StartTime: time.Now()}
}

// Update records one generation that took duration to compute.
func (s *Stats) Update(generation int, population int, duration time.Duration) {
	s.Generation = generation
	s.Population = population
	s.PeakPopulation = max(s.PeakPopulation, population)
	if duration > 0 {
		s.GenerationsPerSecond = 1.0 / duration.Seconds()
	}

	// Simple moving average for population
	if s.AveragePopulation == 0 {
		s.AveragePopulation = float64(population)
	} else {
		s.AveragePopulation = (s.AveragePopulation * 0.9) + (float64(population) * 0.1)
	}
}

// History keeps the hashes of the most recent generations.
type History struct {
	size   int
	hashes []uint64
}

// NewHistory returns a History remembering up to size generations.
func NewHistory(size int) *History {
	if size < 1 {
		size = 1
	}
	return &History{size: size}
}

// Push records hash and returns the period of the cycle it closes, or 0 when
// the hash was not seen within the remembered window. A still life reports 1.
func (h *History) Push(hash uint64) int {
	period := 0
	for i := len(h.hashes) - 1; i >= 0; i-- {
		if h.hashes[i] == hash {
			period = len(h.hashes) - i
			break
		}
	}
	h.hashes = append(h.hashes, hash)
	if len(h.hashes) > h.size {
		h.hashes = h.hashes[1:]
	}
	return period
}

// Reset forgets every recorded hash.
func (h *History) Reset() { h.hashes = h.hashes[:0] }
