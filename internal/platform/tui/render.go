package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/gem-catcher/internal/core"
)

// palette maps core.Color to ANSI 256-color codes. Bright colors are bold.
var palette = map[core.Color]struct {
	code string
	bold bool
}{
	core.ColorRed:           {"1", false},
	core.ColorGreen:         {"2", false},
	core.ColorYellow:        {"3", false},
	core.ColorBlue:          {"4", false},
	core.ColorMagenta:       {"5", false},
	core.ColorCyan:          {"6", false},
	core.ColorWhite:         {"7", false},
	core.ColorBrightRed:     {"9", true},
	core.ColorBrightGreen:   {"10", true},
	core.ColorBrightYellow:  {"11", true},
	core.ColorBrightBlue:    {"12", true},
	core.ColorBrightMagenta: {"13", true},
	core.ColorBrightCyan:    {"14", true},
	core.ColorBrightWhite:   {"15", true},
	core.ColorOrange:        {"208", false},
	core.ColorGray:          {"245", false},
}

// ScreenRenderer turns Screen buffers into styled strings for one output.
// SSH sessions get their own so each client sees its own color profile.
type ScreenRenderer struct {
	plain  lipgloss.Style
	styles map[core.Color]lipgloss.Style
}

// NewScreenRenderer builds the styles for r. A nil r uses the default renderer.
func NewScreenRenderer(r *lipgloss.Renderer) *ScreenRenderer {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	sr := &ScreenRenderer{
		plain:  r.NewStyle(),
		styles: make(map[core.Color]lipgloss.Style, len(palette)),
	}
	for c, p := range palette {
		sr.styles[c] = r.NewStyle().Foreground(lipgloss.Color(p.code)).Bold(p.bold)
	}
	return sr
}

func (sr *ScreenRenderer) style(c core.Color) lipgloss.Style {
	if st, ok := sr.styles[c]; ok {
		return st
	}
	return sr.plain
}

// Render converts the screen to text, one styled run per stretch of equal color.
func (sr *ScreenRenderer) Render(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}
		for x := 0; x < s.Width(); {
			c := s.GetCell(x, y).Color
			run.Reset()
			for ; x < s.Width() && s.GetCell(x, y).Color == c; x++ {
				run.WriteRune(s.GetCell(x, y).Rune)
			}
			sb.WriteString(sr.style(c).Render(run.String()))
		}
	}
	return sb.String()
}

var defaultScreenRenderer = NewScreenRenderer(nil)

// RenderScreen renders with the process-wide lipgloss renderer.
func RenderScreen(s *core.Screen) string {
	return defaultScreenRenderer.Render(s)
}
