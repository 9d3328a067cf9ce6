package rules

import "testing"

func TestApplyConwayRules(t *testing.T) {
	for neighbors := 0; neighbors <= 8; neighbors++ {
		survives := neighbors == 2 || neighbors == 3
		if got := ApplyConwayRules(neighbors, true); got != survives {
			t.Errorf("alive with %d neighbors: got %v, want %v", neighbors, got, survives)
		}

		born := neighbors == 3
		if got := ApplyConwayRules(neighbors, false); got != born {
			t.Errorf("dead with %d neighbors: got %v, want %v", neighbors, got, born)
		}
	}
}
