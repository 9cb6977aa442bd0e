package gems

import (
	"fmt"
	"math"

	"github.com/vovakirdan/gem-catcher/internal/core"
	"github.com/vovakirdan/gem-catcher/internal/games/gems/sim"
)

// Terminal cells are about twice as tall as wide, so one world unit spans
// two columns and one row.
const (
	colsPerUnit = 2.0
	rowsPerUnit = 1.0
)

// Visual characters for rendering
const (
	BodyChar     = '@'
	GhostChar    = '&'
	AirChar      = 'o'
	BoxChar      = '█'
	SlabChar     = '▒'
	HazardChar   = '~'
	TrapChar     = '?'
	GemChar      = '◆'
	BoostChar    = '»'
	SummitChar   = '★'
	FloorChar    = '·'
	WallChar     = '#'
	RemnantBig   = '▓'
	RemnantSmall = '░'
)

// rampGlyphs shade ramp steps from low to high.
var rampGlyphs = []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

// headingGlyphs point along the camera yaw in 45° sectors, starting at +X.
var headingGlyphs = []rune{'→', '↗', '↑', '↖', '←', '↙', '↓', '↘'}

const helpLine = "WASD move  ←→ turn  Space jump  P center  C ghost  R restart  B menu  Q quit"

// view maps world coordinates to screen cells around the body.
type view struct {
	cx, cy    int     // screen cell of the body
	ox, oy    float64 // world position under the body
	top, last int     // map rows, inclusive
}

func newView(dst *core.Screen, snap sim.Snapshot) view {
	top, last := 1, dst.Height()-2
	return view{
		cx:   dst.Width() / 2,
		cy:   (top + last) / 2,
		ox:   snap.Body.X,
		oy:   snap.Body.Y,
		top:  top,
		last: last,
	}
}

func (v view) col(wx float64) int {
	return v.cx + int(math.Floor((wx-v.ox)*colsPerUnit+0.5))
}

func (v view) row(wy float64) int {
	return v.cy - int(math.Floor((wy-v.oy)*rowsPerUnit+0.5))
}

// world returns the world position at the centre of a cell.
func (v view) world(col, row int) (float64, float64) {
	return v.ox + float64(col-v.cx)/colsPerUnit, v.oy + float64(v.cy-row)/rowsPerUnit
}

func (v view) set(dst *core.Screen, col, row int, r rune, c core.Color) {
	if row < v.top || row > v.last {
		return
	}
	dst.SetColored(col, row, r, c)
}

// fill paints every cell whose centre lies in the box. Boxes smaller than
// a cell still get the cell they are centred in.
func (v view) fill(dst *core.Screen, b core.Box, r rune, c core.Color) {
	painted := false
	for row := v.row(b.MinY() + b.SY); row <= v.row(b.MinY()); row++ {
		for col := v.col(b.MinX()); col <= v.col(b.MinX()+b.SX); col++ {
			if x, y := v.world(col, row); b.Contains(x, y) {
				v.set(dst, col, row, r, c)
				painted = true
			}
		}
	}
	if !painted {
		v.set(dst, v.col(b.X), v.row(b.Y), r, c)
	}
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.sim == nil || dst.Height() < 5 {
		return
	}
	snap := g.snap
	v := newView(dst, snap)

	g.drawArena(dst, v, snap)
	for _, h := range snap.Hazards {
		g.drawHazard(dst, v, h)
	}
	for _, s := range snap.Slabs {
		v.fill(dst, s.Footprint(), SlabChar, core.ColorGray)
	}
	for _, r := range snap.Ramps {
		g.drawRamp(dst, v, r)
	}
	for _, b := range snap.Boxes {
		v.fill(dst, core.Square(b.X, b.Y, snap.BoxSize), BoxChar, core.ColorWhite)
	}
	for _, r := range snap.Remnants {
		glyph := RemnantSmall
		if r.Scale > 0.5 {
			glyph = RemnantBig
		}
		v.fill(dst, core.Square(r.X, r.Y, snap.BoxSize*r.Scale), glyph, core.ColorGray)
	}
	for _, t := range snap.Traps {
		v.set(dst, v.col(t.X), v.row(t.Y), TrapChar, core.ColorBrightMagenta)
	}
	for _, p := range snap.Pickups {
		r, c := pickupGlyph(p.Category)
		v.set(dst, v.col(p.X), v.row(p.Y), r, c)
	}
	g.drawBody(dst, v, snap)

	g.drawHUD(dst, snap)
	g.drawFooter(dst)
	if !snap.Running {
		drawCenteredMessage(dst, "TIME UP",
			fmt.Sprintf("Score: %d  Level: %d  |  R restart  B menu", snap.Score, snap.Level))
	}
}

// drawArena marks every other lattice point with a floor dot and the
// boundary with walls.
func (g *Game) drawArena(dst *core.Screen, v view, snap sim.Snapshot) {
	limit := float64(snap.GridSize) * snap.Cell
	for row := v.top; row <= v.last; row++ {
		for col := 0; col < dst.Width(); col++ {
			x, y := v.world(col, row)
			outside := math.Abs(x) > limit || math.Abs(y) > limit
			if outside && math.Abs(x) <= limit+snap.Cell && math.Abs(y) <= limit+snap.Cell {
				v.set(dst, col, row, WallChar, core.ColorGray)
			}
		}
	}
	for ix := -snap.GridSize; ix <= snap.GridSize; ix += 2 {
		for iy := -snap.GridSize; iy <= snap.GridSize; iy += 2 {
			x, y := float64(ix)*snap.Cell, float64(iy)*snap.Cell
			v.set(dst, v.col(x), v.row(y), FloorChar, core.ColorGray)
		}
	}
}

func (g *Game) drawHazard(dst *core.Screen, v view, h sim.Hazard) {
	c := core.ColorOrange
	if h.TTL < 2 {
		c = core.ColorRed
	}
	for row := v.row(h.Y + h.Radius); row <= v.row(h.Y-h.Radius); row++ {
		for col := v.col(h.X - h.Radius); col <= v.col(h.X+h.Radius); col++ {
			x, y := v.world(col, row)
			if core.Dist2(x, y, h.X, h.Y) <= h.Radius*h.Radius {
				v.set(dst, col, row, HazardChar, c)
			}
		}
	}
}

// drawRamp shades each cell by the step height under it.
func (g *Game) drawRamp(dst *core.Screen, v view, r sim.Ramp) {
	fp := r.Footprint()
	top := r.TopHeight()
	for row := v.row(fp.MinY() + fp.SY); row <= v.row(fp.MinY()); row++ {
		for col := v.col(fp.MinX()); col <= v.col(fp.MinX()+fp.SX); col++ {
			x, y := v.world(col, row)
			h := r.HeightAt(x, y)
			if h <= 0 {
				continue
			}
			idx := int(h / top * float64(len(rampGlyphs)-1))
			v.set(dst, col, row, rampGlyphs[core.Clamp(idx, 0, len(rampGlyphs)-1)], core.ColorYellow)
		}
	}
}

func (g *Game) drawBody(dst *core.Screen, v view, snap sim.Snapshot) {
	glyph, c := BodyChar, core.ColorBrightGreen
	switch {
	case snap.Ghost:
		glyph, c = GhostChar, core.ColorBrightCyan
	case !snap.Body.Grounded:
		glyph = AirChar
	}
	if snap.BoostActive {
		c = core.ColorBrightYellow
	}
	v.set(dst, v.cx, v.cy, glyph, c)

	sector := int(math.Round(g.yaw/45)) % len(headingGlyphs)
	if sector < 0 {
		sector += len(headingGlyphs)
	}
	dx := []int{2, 2, 0, -2, -2, -2, 0, 2}[sector]
	dy := []int{0, -1, -1, -1, 0, 1, 1, 1}[sector]
	v.set(dst, v.cx+dx, v.cy+dy, headingGlyphs[sector], core.ColorGreen)
}

func pickupGlyph(c sim.Category) (rune, core.Color) {
	switch c {
	case sim.CategoryRed:
		return GemChar, core.ColorBrightRed
	case sim.CategoryBlue:
		return GemChar, core.ColorBrightBlue
	case sim.CategoryYellow:
		return GemChar, core.ColorBrightYellow
	case sim.CategoryBoost:
		return BoostChar, core.ColorBrightCyan
	case sim.CategorySummit:
		return SummitChar, core.ColorBrightWhite
	}
	return GemChar, core.ColorDefault
}

// drawHUD writes the status line.
func (g *Game) drawHUD(dst *core.Screen, snap sim.Snapshot) {
	secs := int(math.Ceil(snap.Remaining))
	hud := fmt.Sprintf(" Score: %d  Level: %d  Time: %d:%02d  Gems: %d  Speed: %.1f",
		snap.Score, snap.Level, secs/60, secs%60, snap.Collected, snap.Speed)
	dst.DrawTextColored(0, 0, hud, core.ColorBrightWhite)

	x := len([]rune(hud))
	flag := func(text string, c core.Color) {
		dst.DrawTextColored(x, 0, text, c)
		x += len([]rune(text))
	}
	if snap.BoostActive {
		flag(fmt.Sprintf("  BOOST %.0fs", math.Ceil(snap.BoostLeft)), core.ColorBrightYellow)
	}
	if snap.Occupied {
		flag("  LAVA", core.ColorOrange)
	}
	if snap.Ghost {
		flag("  GHOST", core.ColorBrightCyan)
	}
}

// drawFooter shows the active popup, or the controls when there is none.
func (g *Game) drawFooter(dst *core.Screen) {
	y := dst.Height() - 1
	if g.popup != "" {
		x := (dst.Width() - len([]rune(g.popup))) / 2
		dst.DrawTextColored(x, y, g.popup, core.ColorBrightYellow)
		return
	}
	dst.DrawTextColored(0, y, helpLine, core.ColorGray)
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := max(len([]rune(title)), len([]rune(subtitle))) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	titleX := boxX + (boxW-len([]rune(title)))/2
	dst.DrawTextColored(titleX, boxY+1, title, core.ColorBrightRed)

	subtitleX := boxX + (boxW-len([]rune(subtitle)))/2
	dst.DrawText(subtitleX, boxY+3, subtitle)
}
