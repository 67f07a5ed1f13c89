package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/snake/engine"
)

// RGB color definitions
var (
	RgbBackground = tcell.NewRGBColor(26, 27, 38)    // Tokyo Night background
	RgbGridDot    = tcell.NewRGBColor(60, 62, 80)    // Faint dot per empty cell
	RgbBorder     = tcell.NewRGBColor(120, 124, 150) // Board frame
	RgbFood       = tcell.NewRGBColor(255, 80, 80)   // Red apple
	RgbHead       = tcell.NewRGBColor(50, 255, 50)   // Bright green
	RgbBody       = tcell.NewRGBColor(0, 200, 0)     // Normal green
	RgbTail       = tcell.NewRGBColor(0, 130, 0)     // Dark green
	RgbDeadHead   = tcell.NewRGBColor(255, 165, 0)   // Orange head after collision

	RgbStatusText  = tcell.NewRGBColor(255, 255, 255) // White
	RgbHelpText    = tcell.NewRGBColor(140, 140, 160) // Muted gray
	RgbScoreText   = tcell.NewRGBColor(255, 255, 0)   // Yellow
	RgbOverlayBg   = tcell.NewRGBColor(40, 20, 20)    // Dark red box
	RgbOverlayText = tcell.NewRGBColor(255, 255, 200) // Warm white
	RgbRecord      = tcell.NewRGBColor(255, 192, 203) // Pink for a new best

	RgbStateRunning = tcell.NewRGBColor(144, 238, 144) // Light grass green
	RgbStatePaused  = tcell.NewRGBColor(255, 165, 0)   // Orange
	RgbStateIdle    = tcell.NewRGBColor(135, 206, 250) // Light sky blue
	RgbStateOver    = tcell.NewRGBColor(200, 50, 50)   // Red
)

// Styles groups the styles a frame is drawn with
type Styles struct {
	Background tcell.Style
	Dot        tcell.Style
	Border     tcell.Style
	Food       tcell.Style
	Head       tcell.Style
	DeadHead   tcell.Style
	Body       tcell.Style
	Tail       tcell.Style
	Status     tcell.Style
	Score      tcell.Style
	Help       tcell.Style
	Overlay    tcell.Style
	Record     tcell.Style
}

// DefaultStyles returns the truecolor palette
func DefaultStyles() Styles {
	bg := tcell.StyleDefault.Background(RgbBackground)
	return Styles{
		Background: bg,
		Dot:        bg.Foreground(RgbGridDot),
		Border:     bg.Foreground(RgbBorder),
		Food:       bg.Foreground(RgbFood).Bold(true),
		Head:       bg.Foreground(RgbHead).Bold(true),
		DeadHead:   bg.Foreground(RgbDeadHead).Bold(true),
		Body:       bg.Foreground(RgbBody),
		Tail:       bg.Foreground(RgbTail),
		Status:     bg.Foreground(RgbStatusText),
		Score:      bg.Foreground(RgbScoreText).Bold(true),
		Help:       bg.Foreground(RgbHelpText),
		Overlay:    tcell.StyleDefault.Background(RgbOverlayBg).Foreground(RgbOverlayText),
		Record:     tcell.StyleDefault.Background(RgbOverlayBg).Foreground(RgbRecord).Bold(true),
	}
}

// StateColor returns the label color for a lifecycle state
func StateColor(state engine.State) tcell.Color {
	switch state {
	case engine.StateRunning:
		return RgbStateRunning
	case engine.StatePaused:
		return RgbStatePaused
	case engine.StateGameOver:
		return RgbStateOver
	default:
		return RgbStateIdle
	}
}
