package scenery

import (
	"reflect"
	"testing"

	"github.com/golangdaddy/truckin/pkg/random"
)

func TestPlanIsReproducible(t *testing.T) {
	a := Plan(800, 150, random.New(7))
	b := Plan(800, 150, random.New(7))
	if len(a) == 0 {
		t.Fatal("expected plants")
	}
	if !reflect.DeepEqual(a, b) {
		t.Fatal("expected the same seed to give the same verge")
	}
}

func TestPlanStaysInsideStrip(t *testing.T) {
	const width, height = 800, 150
	for seed := int64(1); seed <= 20; seed++ {
		for _, p := range Plan(width, height, random.New(seed)) {
			if p.X < 0 || p.X >= width {
				t.Fatalf("seed %d: x %d outside [0, %d)", seed, p.X, width)
			}
			if p.Base < 0 || p.Base >= height {
				t.Fatalf("seed %d: base %d outside [0, %d)", seed, p.Base, height)
			}
			if p.Height <= 0 || p.Height > MaxHeight(height) {
				t.Fatalf("seed %d: %s height %d out of range", seed, p.Kind, p.Height)
			}
		}
	}
}

func TestPlanPaintsFarRowsFirst(t *testing.T) {
	plants := Plan(800, 150, random.New(3))
	seen := map[int]bool{}
	tallest := map[int]int{}
	for i, p := range plants {
		if i > 0 && p.Row < plants[i-1].Row {
			t.Fatalf("plant %d in row %d follows row %d", i, p.Row, plants[i-1].Row)
		}
		seen[p.Row] = true
		if p.Height > tallest[p.Row] {
			tallest[p.Row] = p.Height
		}
	}
	if len(seen) != Rows {
		t.Fatalf("expected %d rows, got %d", Rows, len(seen))
	}
	if limit := MaxHeight(150) / 2; tallest[0] > limit {
		t.Fatalf("expected far plants no taller than %d, got %d", limit, tallest[0])
	}
}

func TestPlanEmptyStrip(t *testing.T) {
	if got := Plan(0, 150, random.New(1)); got != nil {
		t.Fatalf("expected no plants, got %d", len(got))
	}
}
