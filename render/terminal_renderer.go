package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/snake/core"
	"github.com/lixenwraith/snake/engine"
)

const (
	cellWidth  = 2 // Terminal columns per grid cell, keeps cells roughly square
	hudHeight  = 2 // Status line + help line
	borderSize = 1
)

// Glyphs
const (
	glyphDot    = '·'
	glyphFood   = '●'
	glyphBody   = '█'
	glyphTail   = '▓'
	glyphCrash  = '×'
	glyphHLine  = '─'
	glyphVLine  = '│'
	glyphTL     = '┌'
	glyphTR     = '┐'
	glyphBL     = '└'
	glyphBR     = '┘'
	helpLine    = "←↑↓→/WASD move  space start/pause  r reset  1-4 speed  m mute  q quit"
	startPrompt = "Press SPACE or an arrow key to start"
)

// Status carries front-end state the core does not own
type Status struct {
	Muted   bool
	NoAudio bool
}

// TerminalRenderer paints a game snapshot onto a tcell screen
type TerminalRenderer struct {
	styles Styles
}

// NewTerminalRenderer creates a renderer with the default palette
func NewTerminalRenderer() *TerminalRenderer {
	return &TerminalRenderer{styles: DefaultStyles()}
}

// Layout is the screen placement of the board
type Layout struct {
	OriginX, OriginY int // Top-left corner of the border
	Width, Height    int // Board including border, in terminal cells
}

// ComputeLayout centres an n×n board horizontally on a w-column screen
func ComputeLayout(n, w int) Layout {
	l := Layout{
		Width:  n*cellWidth + 2*borderSize,
		Height: n + 2*borderSize,
	}
	if w > l.Width {
		l.OriginX = (w - l.Width) / 2
	}
	return l
}

// CellPos returns the screen column and row of a grid cell's first column
func (l Layout) CellPos(c core.Cell) (int, int) {
	return l.OriginX + borderSize + c.X*cellWidth, l.OriginY + borderSize + c.Y
}

// MinSize returns the screen size needed for an n×n board
func MinSize(n int) (int, int) {
	l := ComputeLayout(n, 0)
	return l.Width, l.Height + hudHeight
}

// Draw renders one full frame; callers Show the screen
func (r *TerminalRenderer) Draw(s tcell.Screen, snap engine.Snapshot, st Status) {
	s.SetStyle(r.styles.Background)
	s.Clear()

	w, h := s.Size()
	minW, minH := MinSize(snap.GridSize)
	if w < minW || h < minH {
		drawText(s, 0, 0, r.styles.Status, fmt.Sprintf("Terminal too small: need %dx%d, have %dx%d", minW, minH, w, h))
		return
	}

	l := ComputeLayout(snap.GridSize, w)
	r.drawBorder(s, l)
	r.drawCells(s, l, snap)
	r.drawHUD(s, l, snap, st)

	switch snap.State {
	case engine.StateIdle:
		r.drawBanner(s, l, startPrompt)
	case engine.StatePaused:
		r.drawBanner(s, l, "PAUSED")
	case engine.StateGameOver:
		r.drawGameOver(s, l, snap)
	}
}

func (r *TerminalRenderer) drawBorder(s tcell.Screen, l Layout) {
	right := l.OriginX + l.Width - 1
	bottom := l.OriginY + l.Height - 1

	for x := l.OriginX + 1; x < right; x++ {
		s.SetContent(x, l.OriginY, glyphHLine, nil, r.styles.Border)
		s.SetContent(x, bottom, glyphHLine, nil, r.styles.Border)
	}
	for y := l.OriginY + 1; y < bottom; y++ {
		s.SetContent(l.OriginX, y, glyphVLine, nil, r.styles.Border)
		s.SetContent(right, y, glyphVLine, nil, r.styles.Border)
	}
	s.SetContent(l.OriginX, l.OriginY, glyphTL, nil, r.styles.Border)
	s.SetContent(right, l.OriginY, glyphTR, nil, r.styles.Border)
	s.SetContent(l.OriginX, bottom, glyphBL, nil, r.styles.Border)
	s.SetContent(right, bottom, glyphBR, nil, r.styles.Border)
}

func (r *TerminalRenderer) drawCells(s tcell.Screen, l Layout, snap engine.Snapshot) {
	// Background dots
	for y := 0; y < snap.GridSize; y++ {
		for x := 0; x < snap.GridSize; x++ {
			r.setCell(s, l, core.Cell{X: x, Y: y}, glyphDot, ' ', r.styles.Dot)
		}
	}

	if snap.HasFood {
		r.setCell(s, l, snap.Food, glyphFood, ' ', r.styles.Food)
	}

	last := len(snap.Snake) - 1
	for i := last; i >= 0; i-- {
		c := snap.Snake[i]
		switch {
		case i == 0:
			glyph, style := HeadGlyph(snap.FacingOrDefault()), r.styles.Head
			if snap.State == engine.StateGameOver {
				glyph, style = glyphCrash, r.styles.DeadHead
			}
			r.setCell(s, l, c, glyph, ' ', style)
		case i == last:
			r.setCell(s, l, c, glyphTail, glyphTail, r.styles.Tail)
		default:
			r.setCell(s, l, c, glyphBody, glyphBody, r.styles.Body)
		}
	}
}

// setCell writes both columns of a grid cell
func (r *TerminalRenderer) setCell(s tcell.Screen, l Layout, c core.Cell, first, second rune, style tcell.Style) {
	if !c.In(l.gridSize()) {
		return
	}
	x, y := l.CellPos(c)
	s.SetContent(x, y, first, nil, style)
	s.SetContent(x+1, y, second, nil, style)
}

func (l Layout) gridSize() int {
	return (l.Width - 2*borderSize) / cellWidth
}

func (r *TerminalRenderer) drawHUD(s tcell.Screen, l Layout, snap engine.Snapshot, st Status) {
	y := l.OriginY + l.Height
	x := l.OriginX

	x = drawText(s, x, y, r.styles.Status, "Score ")
	x = drawText(s, x, y, r.styles.Score, fmt.Sprintf("%d", snap.Score))
	x = drawText(s, x, y, r.styles.Status, "  Best ")
	x = drawText(s, x, y, r.styles.Score, fmt.Sprintf("%d", snap.HighScore))
	x = drawText(s, x, y, r.styles.Status, "  Speed "+snap.Speed.String())
	x = drawText(s, x, y, r.styles.Status, "  ")

	stateStyle := r.styles.Background.Foreground(StateColor(snap.State)).Bold(true)
	x = drawText(s, x, y, stateStyle, snap.State.String())

	switch {
	case st.NoAudio:
		drawText(s, x, y, r.styles.Help, "  no audio")
	case st.Muted:
		drawText(s, x, y, r.styles.Help, "  muted")
	}

	drawText(s, l.OriginX, y+1, r.styles.Help, helpLine)
}

// drawBanner prints a single centred line in the upper quarter of the board, clear of the start cell
func (r *TerminalRenderer) drawBanner(s tcell.Screen, l Layout, text string) {
	y := l.OriginY + l.Height/4
	drawCentered(s, l, y, r.styles.Overlay, " "+text+" ")
}

type overlayLine struct {
	text  string
	style tcell.Style
}

func (r *TerminalRenderer) drawGameOver(s tcell.Screen, l Layout, snap engine.Snapshot) {
	lines := []overlayLine{
		{"GAME OVER", r.styles.Overlay.Bold(true)},
		{fmt.Sprintf("Final score: %d", snap.Score), r.styles.Overlay},
	}
	if snap.Score > 0 && snap.Score >= snap.HighScore {
		lines = append(lines, overlayLine{"New best!", r.styles.Record})
	}
	lines = append(lines,
		overlayLine{Proverb(snap.SessionID), r.styles.Overlay.Italic(true)},
		overlayLine{"r to restart", r.styles.Overlay},
	)

	boxW := 0
	for _, ln := range lines {
		if n := len([]rune(ln.text)); n > boxW {
			boxW = n
		}
	}
	boxW += 4
	if boxW > l.Width-2 {
		boxW = l.Width - 2
	}
	boxH := len(lines) + 2

	left := l.OriginX + (l.Width-boxW)/2
	top := l.OriginY + (l.Height-boxH)/2
	for y := top; y < top+boxH; y++ {
		for x := left; x < left+boxW; x++ {
			s.SetContent(x, y, ' ', nil, r.styles.Overlay)
		}
	}
	for i, ln := range lines {
		drawCentered(s, l, top+1+i, ln.style, ln.text)
	}
}

// HeadGlyph returns the arrow pointing along d
func HeadGlyph(d core.Direction) rune {
	switch d {
	case core.Up:
		return '▲'
	case core.Down:
		return '▼'
	case core.Left:
		return '◀'
	default:
		return '▶'
	}
}

// drawText writes text left to right and returns the column after it
func drawText(s tcell.Screen, x, y int, style tcell.Style, text string) int {
	for _, r := range text {
		s.SetContent(x, y, r, nil, style)
		x++
	}
	return x
}

// drawCentered writes text centred across the board, clipped to its width
func drawCentered(s tcell.Screen, l Layout, y int, style tcell.Style, text string) {
	runes := []rune(text)
	if limit := l.Width - 2; len(runes) > limit && limit > 0 {
		runes = runes[:limit]
	}
	x := l.OriginX + (l.Width-len(runes))/2
	drawText(s, x, y, style, string(runes))
}
