// Package scenery lays out the roadside verge seen from the side: rows of
// plants standing on ground lines, far rows higher up and smaller.
package scenery

import "github.com/golangdaddy/truckin/pkg/random"

// Kind is a plant shape.
type Kind int

const (
	Bush Kind = iota
	Pine
	Oak
)

func (k Kind) String() string {
	switch k {
	case Pine:
		return "pine"
	case Oak:
		return "oak"
	default:
		return "bush"
	}
}

// Rows is the number of depth rows in a verge.
const Rows = 3

// Plant is one plant standing on the ground line Base, centred on X.
type Plant struct {
	Kind   Kind
	Row    int // 0 is the farthest
	X      int
	Base   int
	Width  int
	Height int
	Shade  uint8 // green channel
}

// Top is the highest row the plant covers.
func (p Plant) Top() int {
	return p.Base - p.Height
}

// MaxHeight is the tallest plant a strip of the given height can hold.
func MaxHeight(stripHeight int) int {
	return stripHeight * 2 / 3
}

// Plan lays out the plants of a width x height strip, far rows first so
// painting in order lets nearer plants cover farther ones. X stays in
// [0, width); the painter wraps wide plants around the edge.
func Plan(width, height int, src random.Source) []Plant {
	if width <= 0 || height <= 0 {
		return nil
	}
	maxH := MaxHeight(height)
	var plants []Plant

	for row := 0; row < Rows; row++ {
		scale := 0.5 + 0.25*float64(row)
		base := height/4 + row*(height/2)/(Rows-1)
		gap := int(30*scale) + 1

		for x := src.Intn(gap); x < width; x += gap + src.Intn(gap) {
			p := Plant{Row: row, X: x, Base: base + src.Intn(5)}
			if p.Base >= height {
				p.Base = height - 1
			}
			// Distant rows are hazier.
			p.Shade = uint8(150 - 25*row + src.Intn(30))

			switch f := src.Float64(); {
			case f < 0.25:
				p.Kind = Pine
				p.Height = int(float64(maxH) * scale * (0.6 + 0.4*src.Float64()))
				p.Width = p.Height / 2
			case f < 0.45:
				p.Kind = Oak
				p.Height = int(float64(maxH) * scale * (0.5 + 0.4*src.Float64()))
				p.Width = p.Height * 2 / 3
			default:
				p.Kind = Bush
				p.Height = int(20*scale) + src.Intn(8)
				p.Width = p.Height * 2
			}
			if p.Height < 2 {
				p.Height = 2
			}
			if p.Width < 2 {
				p.Width = 2
			}
			plants = append(plants, p)
		}
	}
	return plants
}
