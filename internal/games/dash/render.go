package dash

import (
	"fmt"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/dustin/go-humanize"

	"github.com/vovakirdan/northern-dash/internal/core"
	"github.com/vovakirdan/northern-dash/internal/games/dash/sim"
)

// Visual characters for rendering
const (
	PlatformChar = '▀'
	AuroraChar   = '~'
	BarFull      = '█'
	BarEmpty     = '░'
)

// Sleigh sprite, top row first. Rows are padded to the player's cell width.
var sleighRows = [2]string{" ▄█▶", "╚══╝"}

// auroraColors cycle across the sky bands.
var auroraColors = [...]core.Color{core.ColorBrightGreen, core.ColorCyan, core.ColorPurple, core.ColorGreen}

// Glyph returns the display character for a collectible.
func Glyph(c sim.Collectible) rune {
	switch c.Kind {
	case sim.KindPresent:
		return '■'
	case sim.KindCoal:
		return '●'
	case sim.KindCocoa:
		return 'u'
	case sim.KindPowerUp:
		switch c.PowerUp {
		case sim.PowerUpMagnet:
			return 'U'
		case sim.PowerUpSpeed:
			return '»'
		case sim.PowerUpFloat:
			return '≈'
		case sim.PowerUpScoreMult:
			return '×'
		}
	}
	return '?'
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.engine == nil {
		return
	}

	g.drawAurora(dst)
	g.drawParticles(dst)
	g.drawPlatforms(dst)
	g.drawCollectibles(dst)
	g.drawPlayer(dst)
	g.drawHUD(dst)

	if g.paused {
		drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}

	if g.engine.Over() {
		res := g.engine.Result()
		drawCenteredMessage(dst, "GAME OVER",
			fmt.Sprintf("Score: %s  Presents: %d  |  Press R to restart",
				humanize.Comma(int64(res.FinalScore)), res.PresentsCollected))
	}
}

// toCell projects a world position onto the screen grid.
func (g *Game) toCell(x, y float64) (int, int) {
	return int(math.Floor(x / g.cfg.World.CellWidth)), int(math.Floor(y / g.cfg.World.CellHeight))
}

// cells converts a world length to a cell count of at least one.
func cells(length, cellSize float64) int {
	return max(int(math.Round(length/cellSize)), 1)
}

// drawAurora paints sparse drifting bands across the top of the sky.
func (g *Game) drawAurora(dst *core.Screen) {
	frame := int(g.engine.Frame())
	bands := min(3, dst.Height()/4)
	for y := 1; y <= bands; y++ {
		for x := range dst.Width() {
			if (x+y*3+frame/8)%5 != 0 {
				continue
			}
			c := auroraColors[(x/6+y+frame/30)%len(auroraColors)]
			dst.SetColor(x, y, AuroraChar, c)
		}
	}
}

func (g *Game) drawParticles(dst *core.Screen) {
	for _, p := range g.engine.Particles() {
		x, y := g.toCell(p.X, p.Y)
		glyph := '·'
		if p.Size >= 4 {
			glyph = '*'
		}
		dst.SetColor(x, y, glyph, g.palette.Faded(p.Color, p.Life))
	}
}

func (g *Game) drawPlatforms(dst *core.Screen) {
	for _, p := range g.engine.Platforms() {
		x, y := g.toCell(p.X, p.Y)
		dst.DrawHLine(x, y, cells(p.Width, g.cfg.World.CellWidth), PlatformChar, core.ColorIce)
	}
}

func (g *Game) drawCollectibles(dst *core.Screen) {
	for _, c := range g.engine.Collectibles() {
		if c.Collected {
			continue
		}
		x, y := g.toCell(c.X, c.Y)
		dst.SetColor(x, y, Glyph(c), g.palette.Color(c.Color))
	}
}

func (g *Game) drawPlayer(dst *core.Screen) {
	p := g.engine.Player()
	x, y := g.toCell(p.X, p.Y)
	w := cells(p.Width, g.cfg.World.CellWidth)

	colors := [2]core.Color{core.ColorBrightRed, core.ColorYellow}
	for row, text := range sleighRows {
		line := []rune(text)
		for dx := range w {
			r := ' '
			if dx < len(line) {
				r = line[dx]
			}
			if r != ' ' {
				dst.SetColor(x+dx, y+row, r, colors[row])
			}
		}
	}
}

// drawHUD writes score, stamina, power-ups and speed on the top row.
func (g *Game) drawHUD(dst *core.Screen) {
	dst.DrawHLine(0, 0, dst.Width(), ' ', core.ColorDefault)

	left := fmt.Sprintf(" Score %s  ■ %d  Dust ", humanize.Comma(int64(g.engine.Score())), g.engine.Presents())
	dst.DrawTextColor(0, 0, left, core.ColorBrightWhite)
	x := utf8.RuneCountInString(left)

	p := g.engine.Player()
	ratio := p.Stamina / g.cfg.Player.StaminaMax
	x = drawBar(dst, x, 0, 10, ratio)

	for _, pu := range g.hud {
		text := fmt.Sprintf("  %s %.1fs", pu.Type, pu.Remaining.Seconds())
		dst.DrawTextColor(x, 0, text, g.palette.Color(g.powerUpColor(pu.Type)))
		x += utf8.RuneCountInString(text)
	}

	speed := fmt.Sprintf("Speed %3.0f%% ", g.engine.Level()*100)
	dst.DrawTextColor(dst.Width()-utf8.RuneCountInString(speed), 0, speed, core.ColorGray)
}

// drawBar draws a bracketed meter and returns the x after it.
func drawBar(dst *core.Screen, x, y, width int, ratio float64) int {
	filled := int(math.Round(core.ClampF(ratio, 0, 1) * float64(width)))
	color := core.ColorCyan
	if ratio < 0.25 {
		color = core.ColorRed
	}

	dst.SetColor(x, y, '[', core.ColorGray)
	dst.DrawTextColor(x+1, y, strings.Repeat(string(BarFull), filled), color)
	dst.DrawTextColor(x+1+filled, y, strings.Repeat(string(BarEmpty), width-filled), core.ColorDarkGray)
	dst.SetColor(x+1+width, y, ']', core.ColorGray)
	return x + width + 2
}

func (g *Game) powerUpColor(t sim.PowerUpType) string {
	pu := g.cfg.PowerUps
	switch t {
	case sim.PowerUpMagnet:
		return pu.MagnetColor
	case sim.PowerUpSpeed:
		return pu.SpeedColor
	case sim.PowerUpFloat:
		return pu.FloatColor
	default:
		return pu.ScoreColor
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	titleLen := utf8.RuneCountInString(title)
	subtitleLen := utf8.RuneCountInString(subtitle)

	boxW := max(titleLen, subtitleLen) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2
	box := core.NewRect(boxX, boxY, boxW, boxH)

	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorBrightWhite)

	dst.DrawTextColor(boxX+(boxW-titleLen)/2, boxY+1, title, core.ColorBrightYellow)
	dst.DrawTextColor(boxX+(boxW-subtitleLen)/2, boxY+3, subtitle, core.ColorWhite)
}
