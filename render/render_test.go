package render

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/snake/core"
	"github.com/lixenwraith/snake/engine"
)

func newScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	if err := s.Init(); err != nil {
		t.Fatalf("Screen init failed: %v", err)
	}
	s.SetSize(w, h)
	t.Cleanup(s.Fini)
	return s
}

func runeAt(s tcell.Screen, x, y int) rune {
	r, _, _, _ := s.GetContent(x, y)
	return r
}

func rowText(s tcell.Screen, y int) string {
	w, _ := s.Size()
	var b strings.Builder
	for x := 0; x < w; x++ {
		b.WriteRune(runeAt(s, x, y))
	}
	return b.String()
}

func screenText(s tcell.Screen) string {
	_, h := s.Size()
	rows := make([]string, h)
	for y := 0; y < h; y++ {
		rows[y] = rowText(s, y)
	}
	return strings.Join(rows, "\n")
}

func TestLayout(t *testing.T) {
	l := ComputeLayout(20, 80)
	if l.Width != 42 || l.Height != 22 {
		t.Errorf("Expected 42x22 board, got %dx%d", l.Width, l.Height)
	}
	if l.OriginX != 19 {
		t.Errorf("Expected centred origin 19, got %d", l.OriginX)
	}
	x, y := l.CellPos(core.Cell{X: 10, Y: 10})
	if x != 40 || y != 11 {
		t.Errorf("Expected (10,10) at (40,11), got (%d,%d)", x, y)
	}
	if w, h := MinSize(20); w != 42 || h != 24 {
		t.Errorf("Expected min size 42x24, got %dx%d", w, h)
	}
}

func TestDrawIdleBoard(t *testing.T) {
	s := newScreen(t, 80, 30)
	g, _ := engine.NewTestGame(20, 1)
	g.PlaceBoard([]core.Cell{{X: 10, Y: 10}}, core.None, core.Cell{X: 3, Y: 14})

	NewTerminalRenderer().Draw(s, g.Snapshot(), Status{})
	l := ComputeLayout(20, 80)

	if r := runeAt(s, l.OriginX, l.OriginY); r != glyphTL {
		t.Errorf("Expected top-left corner, got %q", r)
	}
	if r := runeAt(s, l.OriginX+l.Width-1, l.OriginY+l.Height-1); r != glyphBR {
		t.Errorf("Expected bottom-right corner, got %q", r)
	}

	hx, hy := l.CellPos(core.Cell{X: 10, Y: 10})
	if r := runeAt(s, hx, hy); r != '▶' {
		t.Errorf("Expected right-facing head before start, got %q", r)
	}
	fx, fy := l.CellPos(core.Cell{X: 3, Y: 14})
	if r := runeAt(s, fx, fy); r != glyphFood {
		t.Errorf("Expected food glyph, got %q", r)
	}
	dx, dy := l.CellPos(core.Cell{X: 0, Y: 19})
	if r := runeAt(s, dx, dy); r != glyphDot {
		t.Errorf("Expected background dot, got %q", r)
	}

	text := screenText(s)
	if !strings.Contains(text, startPrompt) {
		t.Error("Expected start prompt on the idle board")
	}
	if !strings.Contains(text, "Idle") || !strings.Contains(text, "Speed medium") {
		t.Errorf("Expected HUD with state and speed, got:\n%s", rowText(s, l.OriginY+l.Height))
	}
}

func TestDrawSnakeSegments(t *testing.T) {
	s := newScreen(t, 80, 30)
	g, _ := engine.NewTestGame(20, 1)
	g.PlaceBoard(
		[]core.Cell{{X: 5, Y: 5}, {X: 5, Y: 6}, {X: 5, Y: 7}},
		core.Up,
		core.Cell{X: 15, Y: 15},
	)
	g.Start()

	NewTerminalRenderer().Draw(s, g.Snapshot(), Status{Muted: true})
	l := ComputeLayout(20, 80)

	want := map[core.Cell]rune{
		{X: 5, Y: 5}: '▲',
		{X: 5, Y: 6}: glyphBody,
		{X: 5, Y: 7}: glyphTail,
	}
	for c, r := range want {
		x, y := l.CellPos(c)
		if got := runeAt(s, x, y); got != r {
			t.Errorf("Cell %v: expected %q, got %q", c, r, got)
		}
	}

	hud := rowText(s, l.OriginY+l.Height)
	if !strings.Contains(hud, "Running") || !strings.Contains(hud, "muted") {
		t.Errorf("Expected running muted HUD, got %q", hud)
	}
	if strings.Contains(screenText(s), startPrompt) {
		t.Error("Expected no start prompt while running")
	}
}

func TestDrawHeadGlyphs(t *testing.T) {
	tests := map[core.Direction]rune{
		core.Up:    '▲',
		core.Down:  '▼',
		core.Left:  '◀',
		core.Right: '▶',
		core.None:  '▶',
	}
	for d, want := range tests {
		if got := HeadGlyph(d); got != want {
			t.Errorf("%s: expected %q, got %q", d, want, got)
		}
	}
}

func TestDrawPaused(t *testing.T) {
	s := newScreen(t, 80, 30)
	g, _ := engine.NewTestGame(20, 1)
	g.Start()
	g.Pause()

	NewTerminalRenderer().Draw(s, g.Snapshot(), Status{})

	if !strings.Contains(screenText(s), "PAUSED") {
		t.Error("Expected paused banner")
	}
}

func TestDrawGameOver(t *testing.T) {
	s := newScreen(t, 80, 30)
	g, _ := engine.NewTestGame(20, 1)
	g.PlaceBoard([]core.Cell{{X: 1, Y: 5}}, core.Left, core.Cell{X: 0, Y: 5})
	g.Start()
	g.Tick()
	g.Tick()
	if g.State() != engine.StateGameOver {
		t.Fatalf("Expected GameOver, got %s", g.State())
	}

	snap := g.Snapshot()
	NewTerminalRenderer().Draw(s, snap, Status{})
	text := screenText(s)

	for _, want := range []string{"GAME OVER", "Final score: 10", "New best!", "r to restart", Proverb(snap.SessionID)} {
		if !strings.Contains(text, want) {
			t.Errorf("Expected %q in game over box", want)
		}
	}
}

func TestDrawTooSmall(t *testing.T) {
	s := newScreen(t, 20, 10)
	g, _ := engine.NewTestGame(20, 1)

	NewTerminalRenderer().Draw(s, g.Snapshot(), Status{})

	if !strings.Contains(rowText(s, 0), "Terminal too small") {
		t.Errorf("Expected size warning, got %q", rowText(s, 0))
	}
}

func TestProverbStable(t *testing.T) {
	a := Proverb("session-a")
	if a != Proverb("session-a") {
		t.Error("Expected the same proverb for the same session")
	}
	if a == "" {
		t.Error("Expected a proverb")
	}
}
