package canvas

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/lixenwraith/snake/core"
	"github.com/lixenwraith/snake/engine"
	"github.com/lixenwraith/snake/render"
)

// Palette
var (
	colorBackground = color.RGBA{26, 27, 38, 255}
	colorGrid       = color.RGBA{40, 42, 56, 255}
	colorFood       = color.RGBA{255, 80, 80, 255}
	colorHead       = color.RGBA{50, 255, 50, 255}
	colorDeadHead   = color.RGBA{255, 165, 0, 255}
	colorBody       = color.RGBA{0, 200, 0, 255}
	colorTail       = color.RGBA{0, 130, 0, 255}
	colorText       = color.RGBA{255, 255, 255, 255}
	colorShade      = color.RGBA{0, 0, 0, 170}
	colorRecord     = color.RGBA{255, 192, 203, 255}
)

// cellInset keeps adjacent body segments visually distinct
const cellInset = 1

// cellRect returns the pixel rectangle of a grid cell
func cellRect(c core.Cell, size int) (x, y, w, h float32) {
	s := float32(size)
	return float32(c.X)*s + cellInset, float32(c.Y)*s + cellInset, s - 2*cellInset, s - 2*cellInset
}

// eyeOffset places the head's eye toward the heading, as a fraction of the cell
func eyeOffset(d core.Direction) (float32, float32) {
	return 0.5 + 0.25*float32(d.DX), 0.5 + 0.25*float32(d.DY)
}

// drawer paints snapshots with fixed cell size and fonts
type drawer struct {
	cellSize int
	hud      *text.GoTextFace
	title    *text.GoTextFace
}

func (d *drawer) draw(screen *ebiten.Image, snap engine.Snapshot, st render.Status) {
	screen.Fill(colorBackground)
	px := float32(snap.GridSize * d.cellSize)

	// Grid lines
	for i := 1; i < snap.GridSize; i++ {
		p := float32(i * d.cellSize)
		vector.StrokeLine(screen, p, 0, p, px, 1, colorGrid, false)
		vector.StrokeLine(screen, 0, p, px, p, 1, colorGrid, false)
	}

	if snap.HasFood {
		half := float32(d.cellSize) / 2
		cx := float32(snap.Food.X*d.cellSize) + half
		cy := float32(snap.Food.Y*d.cellSize) + half
		vector.DrawFilledCircle(screen, cx, cy, half-2, colorFood, true)
	}

	last := len(snap.Snake) - 1
	for i := last; i >= 0; i-- {
		x, y, w, h := cellRect(snap.Snake[i], d.cellSize)
		clr := colorBody
		switch {
		case i == 0 && snap.State == engine.StateGameOver:
			clr = colorDeadHead
		case i == 0:
			clr = colorHead
		case i == last:
			clr = colorTail
		}
		vector.DrawFilledRect(screen, x, y, w, h, clr, false)
	}

	if len(snap.Snake) > 0 {
		head := snap.Snake[0]
		ex, ey := eyeOffset(snap.FacingOrDefault())
		s := float32(d.cellSize)
		vector.DrawFilledCircle(screen, float32(head.X)*s+ex*s, float32(head.Y)*s+ey*s, s/8, colorBackground, true)
	}

	hud := fmt.Sprintf("Score %d  Best %d  %s", snap.Score, snap.HighScore, snap.Speed)
	if st.Muted {
		hud += "  muted"
	}
	d.text(screen, hud, d.hud, 4, 2, colorText)

	switch snap.State {
	case engine.StateIdle:
		d.banner(screen, px, []string{"SPACE or arrow to start"}, nil)
	case engine.StatePaused:
		d.banner(screen, px, []string{"PAUSED"}, nil)
	case engine.StateGameOver:
		lines := []string{
			"GAME OVER",
			fmt.Sprintf("Final score: %d", snap.Score),
			render.Proverb(snap.SessionID),
			"R to restart",
		}
		var record color.Color
		if snap.Score > 0 && snap.Score >= snap.HighScore {
			lines = append(lines[:2], append([]string{"New best!"}, lines[2:]...)...)
			record = colorRecord
		}
		d.banner(screen, px, lines, record)
	}
}

// banner shades the board and centres lines on it; the first line uses the title face
// A non-nil highlight colors the "New best!" line
func (d *drawer) banner(screen *ebiten.Image, px float32, lines []string, highlight color.Color) {
	vector.DrawFilledRect(screen, 0, 0, px, px, colorShade, false)

	lineH := d.hud.Size * 1.5
	total := d.title.Size*1.5 + lineH*float64(len(lines)-1)
	y := (float64(px) - total) / 2

	for i, ln := range lines {
		face := d.hud
		if i == 0 {
			face = d.title
		}
		clr := color.Color(colorText)
		if highlight != nil && ln == "New best!" {
			clr = highlight
		}
		w, _ := text.Measure(ln, face, 0)
		d.text(screen, ln, face, (float64(px)-w)/2, y, clr)
		y += face.Size * 1.5
	}
}

func (d *drawer) text(screen *ebiten.Image, s string, face *text.GoTextFace, x, y float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, s, face, op)
}
