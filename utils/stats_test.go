package utils

import (
	"testing"
	"time"
)

func TestStatsUpdate(t *testing.T) {
	s := NewStats()
	s.Update(1, 100, 10*time.Millisecond)
	if s.AveragePopulation != 100 || s.PeakPopulation != 100 {
		t.Fatalf("first update: avg %.1f peak %d", s.AveragePopulation, s.PeakPopulation)
	}
	if s.GenerationsPerSecond < 99 || s.GenerationsPerSecond > 101 {
		t.Fatalf("gens/sec %.2f, want 100", s.GenerationsPerSecond)
	}

	s.Update(2, 200, 0)
	if s.AveragePopulation < 109.999 || s.AveragePopulation > 110.001 {
		t.Fatalf("moving average %.1f, want 110", s.AveragePopulation)
	}
	if s.PeakPopulation != 200 || s.TotalGenerations != 2 {
		t.Fatalf("peak %d generations %d", s.PeakPopulation, s.TotalGenerations)
	}

	s.Update(3, 50, time.Millisecond)
	if s.PeakPopulation != 200 {
		t.Fatalf("peak dropped to %d", s.PeakPopulation)
	}
}
