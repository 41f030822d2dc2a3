package dash

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/vovakirdan/northern-dash/internal/core"
)

// fadeSteps is the number of distinct brightness levels a fading color maps to.
const fadeSteps = 8

// cubeLevels are the channel intensities of the xterm 6x6x6 color cube.
var cubeLevels = [6]uint8{0, 95, 135, 175, 215, 255}

type paletteKey struct {
	hex  string
	step int
}

// Palette maps hex colors onto the xterm-256 indices the screen buffer
// stores. Only the cube and grayscale ramp (16-255) are used because the
// first sixteen entries depend on the terminal theme.
type Palette struct {
	xterm      [240]colorful.Color
	background colorful.Color
	cache      map[paletteKey]core.Color
}

// NewPalette builds the lookup table.
func NewPalette() *Palette {
	p := &Palette{
		background: colorful.Color{R: 0, G: 0, B: 0},
		cache:      make(map[paletteKey]core.Color),
	}
	i := 0
	for r := range 6 {
		for g := range 6 {
			for b := range 6 {
				p.xterm[i] = rgb8(cubeLevels[r], cubeLevels[g], cubeLevels[b])
				i++
			}
		}
	}
	for gray := range 24 {
		v := uint8(8 + gray*10)
		p.xterm[i] = rgb8(v, v, v)
		i++
	}
	return p
}

func rgb8(r, g, b uint8) colorful.Color {
	return colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
}

// Nearest returns the xterm index perceptually closest to c.
func (p *Palette) Nearest(c colorful.Color) core.Color {
	best := 0
	bestDist := math.MaxFloat64
	for i, candidate := range p.xterm {
		if d := c.DistanceLab(candidate); d < bestDist {
			best, bestDist = i, d
		}
	}
	return core.Color(16 + best)
}

// Color maps a hex string such as "#fbbf24". Malformed input yields white.
func (p *Palette) Color(hex string) core.Color {
	return p.Faded(hex, 1)
}

// Faded maps a hex color blended toward the background by the remaining
// life in [0, 1].
func (p *Palette) Faded(hex string, life float64) core.Color {
	step := int(math.Round(core.ClampF(life, 0, 1) * fadeSteps))
	key := paletteKey{hex: hex, step: step}
	if c, ok := p.cache[key]; ok {
		return c
	}

	base, err := colorful.Hex(hex)
	if err != nil {
		return core.ColorWhite
	}
	t := float64(step) / fadeSteps
	c := p.Nearest(p.background.BlendLab(base, t).Clamped())
	p.cache[key] = c
	return c
}
