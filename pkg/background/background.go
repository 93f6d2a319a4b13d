package background

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/golangdaddy/truckin/pkg/random"
	"github.com/golangdaddy/truckin/pkg/scenery"
)

// Generator paints the roadside scenery
type Generator struct {
	Width  int
	Height int
}

// NewGenerator creates a new background generator
func NewGenerator(width, height int) *Generator {
	return &Generator{
		Width:  width,
		Height: height,
	}
}

// GenerateVerge creates a tileable strip of grass and plants seen from the
// side. The strip repeats horizontally so it can scroll with the road.
func (g *Generator) GenerateVerge(seed int64) *ebiten.Image {
	img := ebiten.NewImage(g.Width, g.Height)
	rng := random.New(seed)

	// Grass darkens towards the road
	for y := 0; y < g.Height; y++ {
		shade := uint8(130 - 50*y/g.Height)
		for x := 0; x < g.Width; x++ {
			img.Set(x, y, color.RGBA{35, shade, 35, 255})
		}
	}
	for i := 0; i < g.Width*g.Height/12; i++ {
		x := rng.Intn(g.Width)
		y := rng.Intn(g.Height)
		img.Set(x, y, color.RGBA{30, uint8(70 + rng.Intn(60)), 30, 255})
	}

	for _, p := range scenery.Plan(g.Width, g.Height, rng) {
		switch p.Kind {
		case scenery.Pine:
			g.drawPine(img, p)
		case scenery.Oak:
			g.drawOak(img, p)
		default:
			g.drawBush(img, p)
		}
	}
	return img
}

// set plots a pixel, wrapping x so the strip tiles
func (g *Generator) set(img *ebiten.Image, x, y int, c color.Color) {
	if y < 0 || y >= g.Height {
		return
	}
	x = ((x % g.Width) + g.Width) % g.Width
	img.Set(x, y, c)
}

func (g *Generator) trunk(img *ebiten.Image, p scenery.Plant, height int) {
	c := color.RGBA{70, 45, 25, 255}
	w := max(p.Width/8, 1)
	for ty := 0; ty < height; ty++ {
		for tx := -w; tx <= w; tx++ {
			g.set(img, p.X+tx, p.Base-ty, c)
		}
	}
}

// drawPine stacks three narrowing triangles on a short trunk
func (g *Generator) drawPine(img *ebiten.Image, p scenery.Plant) {
	trunkH := p.Height / 5
	g.trunk(img, p, trunkH)

	leaves := color.RGBA{20, p.Shade - 30, 40, 255}
	tier := (p.Height - trunkH) / 3
	for l := 0; l < 3; l++ {
		bottom := p.Base - trunkH - l*tier*3/4
		half := p.Width / 2 * (3 - l) / 3
		for ly := 0; ly <= tier; ly++ {
			row := half * (tier - ly) / max(tier, 1)
			for lx := -row; lx <= row; lx++ {
				g.set(img, p.X+lx, bottom-ly, leaves)
			}
		}
	}
}

// drawOak puts a round crown on a tall trunk
func (g *Generator) drawOak(img *ebiten.Image, p scenery.Plant) {
	r := p.Width / 2
	trunkH := p.Height - r
	g.trunk(img, p, trunkH)

	crown := color.RGBA{45, p.Shade, 35, 255}
	cy := p.Base - trunkH
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			if dx*dx+dy*dy <= r*r {
				g.set(img, p.X+dx, cy+dy, crown)
			}
		}
	}
}

// drawBush draws a mound sitting on the ground line
func (g *Generator) drawBush(img *ebiten.Image, p scenery.Plant) {
	c := color.RGBA{50, p.Shade, 45, 255}
	a, b := p.Width/2, p.Height
	for dy := 0; dy <= b; dy++ {
		for dx := -a; dx <= a; dx++ {
			if dx*dx*b*b+dy*dy*a*a <= a*a*b*b {
				g.set(img, p.X+dx, p.Base-dy, c)
			}
		}
	}
}
