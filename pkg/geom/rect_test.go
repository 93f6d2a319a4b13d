package geom

import "testing"

func TestOverlaps(t *testing.T) {
	truck := Rect{X: 400, Y: 300, Width: 80, Height: 60}

	tests := []struct {
		name string
		o    Rect
		want bool
	}{
		{"same box", truck, true},
		{"inside", Rect{X: 400, Y: 300, Width: 10, Height: 10}, true},
		{"overlap right", Rect{X: 460, Y: 300, Width: 60, Height: 50}, true},
		{"touching right edge", Rect{X: 470, Y: 300, Width: 60, Height: 50}, false},
		{"clear above", Rect{X: 400, Y: 200, Width: 60, Height: 50}, false},
		{"service lane vs top lane", Rect{X: 400, Y: 120, Width: 80, Height: 60}, false},
		{"clear left", Rect{X: 300, Y: 300, Width: 60, Height: 50}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := truck.Overlaps(tt.o); got != tt.want {
				t.Fatalf("expected %v, got %v", tt.want, got)
			}
			if got := tt.o.Overlaps(truck); got != tt.want {
				t.Fatalf("overlap not symmetric: expected %v, got %v", tt.want, got)
			}
		})
	}
}
