package topology

import (
	"errors"
	"testing"
)

func TestHemisphereCounts(t *testing.T) {
	tests := []struct {
		nTheta, mPhi         int
		points, cells, token int
	}{
		{1, 4, 5, 4, 16},
		{3, 4, 13, 12, 56},
		{5, 8, 41, 40, 192},
	}

	for _, tt := range tests {
		if got := HemispherePointCount(tt.nTheta, tt.mPhi); got != tt.points {
			t.Errorf("HemispherePointCount(%d, %d) = %d, want %d", tt.nTheta, tt.mPhi, got, tt.points)
		}
		if got := HemisphereCellCount(tt.nTheta, tt.mPhi); got != tt.cells {
			t.Errorf("HemisphereCellCount(%d, %d) = %d, want %d", tt.nTheta, tt.mPhi, got, tt.cells)
		}
		if got := HemisphereTokenCount(tt.nTheta, tt.mPhi); got != tt.token {
			t.Errorf("HemisphereTokenCount(%d, %d) = %d, want %d", tt.nTheta, tt.mPhi, got, tt.token)
		}
	}
}

func TestHemisphere(t *testing.T) {
	cells, err := Hemisphere(3, 4)
	if err != nil {
		t.Fatalf("Hemisphere failed: %v", err)
	}
	if len(cells) != 12 {
		t.Fatalf("len(cells) = %d, want 12", len(cells))
	}

	// Token count equals the sum of per-cell vertex counts plus markers.
	tokens := 0
	for _, c := range cells {
		tokens += len(c) + 1
	}
	if tokens != HemisphereTokenCount(3, 4) {
		t.Errorf("tokens = %d, want %d", tokens, HemisphereTokenCount(3, 4))
	}

	// First mPhi cells are the apex triangles; the last one wraps.
	first := cells[0]
	if len(first) != 3 || first[0] != 0 || first[1] != 1 || first[2] != 2 {
		t.Errorf("cells[0] = %v, want [0 1 2]", first)
	}
	wrap := cells[3]
	if wrap[0] != 0 || wrap[1] != 4 || wrap[2] != 1 {
		t.Errorf("cells[3] = %v, want [0 4 1]", wrap)
	}

	// Last quad of ring 2 wraps back to the ring start.
	q := cells[7]
	want := Cell{4, 8, 5, 1}
	for i := range want {
		if q[i] != want[i] {
			t.Errorf("cells[7] = %v, want %v", q, want)
			break
		}
	}
}

func TestHemisphere_EveryIndexInRange(t *testing.T) {
	const nTheta, mPhi = 6, 9
	cells, err := Hemisphere(nTheta, mPhi)
	if err != nil {
		t.Fatal(err)
	}

	max := HemispherePointCount(nTheta, mPhi)
	seen := make([]bool, max)
	for _, c := range cells {
		for _, idx := range c {
			if idx < 0 || idx >= max {
				t.Fatalf("index %d out of range [0, %d)", idx, max)
			}
			seen[idx] = true
		}
	}
	// A watertight mesh references every point at least once.
	for i, ok := range seen {
		if !ok {
			t.Errorf("point %d never referenced", i)
		}
	}
}

func TestHemisphere_InvalidShape(t *testing.T) {
	for _, tt := range [][2]int{{0, 4}, {3, 0}, {-1, -1}} {
		if _, err := Hemisphere(tt[0], tt[1]); !errors.Is(err, ErrInvalidShape) {
			t.Errorf("Hemisphere(%d, %d) = %v, want ErrInvalidShape", tt[0], tt[1], err)
		}
	}
}
