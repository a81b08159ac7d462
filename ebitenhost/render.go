package ebitenhost

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/phanxgames/ember"
)

// BlendMode selects how a Renderer composites particles onto its target.
type BlendMode uint8

const (
	// BlendNormal draws particles over the target using their alpha.
	BlendNormal BlendMode = iota
	// BlendAdd sums particle colour into the target, so overlaps glow.
	BlendAdd
)

// EbitenBlend returns the ebiten blend used for m. Unknown modes draw as
// BlendNormal.
func (m BlendMode) EbitenBlend() ebiten.Blend {
	if m == BlendAdd {
		return ebiten.BlendLighter
	}
	return ebiten.BlendSourceOver
}

// whitePixel is the 1x1 source image scaled and tinted for every quad.
// Renderers run on the game goroutine, so it needs no locking.
var whitePixel *ebiten.Image

// quadImage returns whitePixel, creating it on first draw.
func quadImage() *ebiten.Image {
	if whitePixel == nil {
		whitePixel = ebiten.NewImage(1, 1)
		whitePixel.Fill(color.White)
	}
	return whitePixel
}

// Renderer is an ember.RenderModule that draws each particle as a square
// centred on its position.
type Renderer struct {
	// Position is a two-component binding holding x and y in pixels.
	Position ember.Binding
	// Size is an optional one-component binding with the side length.
	// When its Size is zero, DefaultSize is used.
	Size ember.Binding
	// Color is an optional four-component binding with r, g, b, a in
	// [0, 1]. When its Size is zero, Tint is used.
	Color ember.Binding

	DefaultSize float64
	Tint        color.RGBA
	BlendMode   BlendMode

	target *ebiten.Image
	drawn  int
}

// NewRenderer creates a renderer drawing white 4px squares at position.
func NewRenderer(position ember.Binding) *Renderer {
	return &Renderer{
		Position:    position,
		DefaultSize: 4,
		Tint:        color.RGBA{R: 255, G: 255, B: 255, A: 255},
	}
}

// SetTarget sets the image drawn onto by the next Render. Game sets the
// screen before each frame and clears it afterwards.
func (r *Renderer) SetTarget(img *ebiten.Image) {
	r.target = img
}

// Drawn returns how many particles the last Render drew.
func (r *Renderer) Drawn() int {
	return r.drawn
}

// Render draws every particle onto the target, running prep modules on
// each one first. Without a target nothing is drawn.
func (r *Renderer) Render(particles []ember.Particle, prep []ember.RenderPrepModule) {
	r.drawn = 0
	if r.target == nil {
		return
	}
	blend := r.BlendMode.EbitenBlend()
	src := quadImage()
	for _, p := range particles {
		ember.RunPrep(prep, p)

		size := r.DefaultSize
		if r.Size.Size > 0 {
			size = r.Size.Get(p, 0)
		}
		if size <= 0 {
			continue
		}

		var op ebiten.DrawImageOptions
		op.Blend = blend
		op.GeoM.Scale(size, size)
		op.GeoM.Translate(r.Position.Get(p, 0)-size/2, r.Position.Get(p, 1)-size/2)
		if r.Color.Size >= 4 {
			// ColorScale is premultiplied.
			a := float32(r.Color.Get(p, 3))
			op.ColorScale.Scale(
				float32(r.Color.Get(p, 0))*a,
				float32(r.Color.Get(p, 1))*a,
				float32(r.Color.Get(p, 2))*a,
				a,
			)
		} else {
			op.ColorScale.ScaleWithColor(r.Tint)
		}
		r.target.DrawImage(src, &op)
		r.drawn++
	}
}
