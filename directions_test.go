package wordsearch

import (
	"testing"
)

func labels(dirs []Direction) map[string]bool {
	m := make(map[string]bool, len(dirs))
	for _, d := range dirs {
		m[d.Label] = true
	}
	return m
}

func TestAllowedDirections(t *testing.T) {
	tests := []struct {
		name       string
		diagonals  bool
		backwards  bool
		wantLabels []string
	}{
		{"everything allowed", true, true, []string{"E", "S", "SE", "SW", "W", "N", "NW", "NE"}},
		{"no diagonals", false, true, []string{"E", "S", "W", "N"}},
		{"no backwards", true, false, []string{"E", "S", "SE", "SW"}},
		{"straight forward only", false, false, []string{"E", "S"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AllowedDirections(tt.diagonals, tt.backwards)
			if len(got) == 0 {
				t.Fatal("allowed set is empty")
			}
			if len(got) != len(tt.wantLabels) {
				t.Fatalf("got %d directions %v, want %d", len(got), got, len(tt.wantLabels))
			}
			gotLabels := labels(got)
			for _, l := range tt.wantLabels {
				if !gotLabels[l] {
					t.Errorf("direction %s missing from %v", l, got)
				}
			}
		})
	}
}

func TestDirectionClassification(t *testing.T) {
	forward := map[string]bool{"E": true, "S": true, "SE": true, "SW": true}
	diagonal := map[string]bool{"SE": true, "SW": true, "NW": true, "NE": true}

	for _, d := range Directions {
		if d.DX == 0 && d.DY == 0 {
			t.Errorf("direction %s has a zero offset", d)
		}
		if got := d.Forward(); got != forward[d.Label] {
			t.Errorf("%s.Forward() = %v, want %v", d, got, forward[d.Label])
		}
		if got := d.Diagonal(); got != diagonal[d.Label] {
			t.Errorf("%s.Diagonal() = %v, want %v", d, got, diagonal[d.Label])
		}
	}
}
