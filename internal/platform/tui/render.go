package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/rockdodge/internal/core"
	"github.com/vovakirdan/rockdodge/internal/sim"
)

// Layout rows around the play area.
const (
	hudRows  = 2 // status line and separator
	helpRows = 1
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:     lipgloss.NewStyle(),
	core.ColorRed:         lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:       lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:      lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorCyan:        lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorWhite:       lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorBrightGreen: lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	core.ColorBrightWhite: lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Bold(true),
	core.ColorOrange:      lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	core.ColorGray:        lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	core.ColorDarkGray:    lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Adjacent cells with the same color share one style run.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			runColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != runColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[runColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// Projection maps simulation units onto terminal cells. Cells are roughly
// twice as tall as they are wide, so rows cover more units than columns.
type Projection struct {
	UnitsPerCol int
	UnitsPerRow int
	TopRow      int // First screen row of the play area
}

// DefaultProjection is used by the play command.
func DefaultProjection() Projection {
	return Projection{UnitsPerCol: 10, UnitsPerRow: 20, TopRow: hudRows}
}

// PlayArea returns the simulation size of a cols x rows cell area.
func (p Projection) PlayArea(cols, rows int) (width, height int) {
	return cols * p.UnitsPerCol, rows * p.UnitsPerRow
}

// PlayRows returns how many screen rows remain for the play area on a
// terminal of the given height.
func PlayRows(termHeight int) int {
	return max(termHeight-hudRows-helpRows, 0)
}

// CellRect returns the screen cells covered by a simulation rectangle.
// Every non-empty rectangle covers at least one cell.
func (p Projection) CellRect(r core.Rect) core.Rect {
	x0 := floorDiv(r.X, p.UnitsPerCol)
	y0 := floorDiv(r.Y, p.UnitsPerRow)
	x1 := floorDiv(r.Right()-1, p.UnitsPerCol)
	y1 := floorDiv(r.Bottom()-1, p.UnitsPerRow)
	return core.NewRect(x0, y0+p.TopRow, max(x1-x0+1, 1), max(y1-y0+1, 1))
}

// cellCenter returns the simulation coordinates of a cell's center.
func (p Projection) cellCenter(col, row int) (float64, float64) {
	return (float64(col) + 0.5) * float64(p.UnitsPerCol),
		(float64(row-p.TopRow) + 0.5) * float64(p.UnitsPerRow)
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// DrawFrame renders a snapshot: HUD, rocks, ship, and the pause or
// game-over overlay.
func DrawFrame(scr *core.Screen, snap sim.Snapshot, proj Projection) {
	scr.Clear()
	drawHUD(scr, snap)

	for _, o := range snap.Obstacles {
		drawRock(scr, o, proj)
	}
	drawShip(scr, snap.Ship, proj)

	switch {
	case snap.IsGameOver:
		drawGameOver(scr, snap)
	case snap.Paused:
		drawBanner(scr, []string{"PAUSED", "", "press p to resume"}, core.ColorYellow)
	}
}

func drawHUD(scr *core.Screen, snap sim.Snapshot) {
	const barWidth = 20

	pct := snap.HealthPercent()
	barColor := core.ColorBrightGreen
	switch {
	case pct <= 25:
		barColor = core.ColorRed
	case pct <= 50:
		barColor = core.ColorYellow
	}

	filled := 0
	if snap.MaxHealth > 0 {
		filled = (snap.Health*barWidth + snap.MaxHealth - 1) / snap.MaxHealth
	}

	x := 0
	scr.DrawText(x, 0, "HP ", core.ColorWhite)
	x += 3
	scr.DrawHLine(x, 0, filled, '█', barColor)
	scr.DrawHLine(x+filled, 0, barWidth-filled, '░', core.ColorDarkGray)
	x += barWidth
	scr.DrawText(x, 0, fmt.Sprintf(" %3d%%", pct), barColor)

	stats := fmt.Sprintf("Score %d  Level %d  Rocks %d", snap.Score, snap.Level, snap.AsteroidsSurvived)
	scr.DrawText(max(scr.Width()-len(stats), x+7), 0, stats, core.ColorBrightWhite)

	scr.DrawHLine(0, 1, scr.Width(), '─', core.ColorGray)
}

func drawShip(scr *core.Screen, ship sim.ShipView, proj Projection) {
	cells := proj.CellRect(ship.Bounds)
	scr.DrawRect(cells, '=', core.ColorCyan)

	nose := ship.Silhouette[2]
	_, noseRow := proj.CellRect(core.NewRect(nose.X, nose.Y, 1, 1)).Center()
	noseRow = core.Clamp(noseRow, cells.Y, cells.Bottom()-1)
	scr.SetColor(cells.Right()-1, noseRow, '>', core.ColorBrightWhite)
}

func drawRock(scr *core.Screen, o sim.ObstacleView, proj Projection) {
	cells := proj.CellRect(o.Bounds)
	color := core.ColorGray
	if o.Speed >= 4 {
		color = core.ColorOrange
	}

	cx, cy, rx, ry := o.Ellipse()
	drawn := false
	for row := cells.Y; row < cells.Bottom(); row++ {
		for col := cells.X; col < cells.Right(); col++ {
			px, py := proj.cellCenter(col, row)
			dx, dy := (px-cx)/rx, (py-cy)/ry
			if dx*dx+dy*dy <= 1 {
				scr.SetColor(col, row, '@', color)
				drawn = true
			}
		}
	}
	// Small rocks may not cover any cell center.
	if !drawn {
		col, row := cells.Center()
		scr.SetColor(col, row, 'o', color)
	}
}

func drawGameOver(scr *core.Screen, snap sim.Snapshot) {
	drawBanner(scr, []string{
		"GAME OVER",
		"",
		"Your ship exploded.",
		"",
		fmt.Sprintf("Score: %d", snap.Score),
		fmt.Sprintf("Highest level: %d", snap.Level),
		fmt.Sprintf("Rocks survived: %d", snap.AsteroidsSurvived),
		"",
		"r restart  c copy  q quit",
	}, core.ColorRed)
}

// drawBanner draws lines centered in a box over the play area.
func drawBanner(scr *core.Screen, lines []string, title core.Color) {
	width := 0
	for _, l := range lines {
		width = max(width, len([]rune(l)))
	}
	box := core.NewRect(0, 0, width+6, len(lines)+2)
	box.X = (scr.Width() - box.W) / 2
	box.Y = max((scr.Height()-box.H)/2, hudRows)

	scr.DrawRect(box, ' ', core.ColorDefault)
	scr.DrawBox(box, core.ColorWhite)
	for i, l := range lines {
		c := core.ColorWhite
		if i == 0 {
			c = title
		}
		scr.DrawTextCentered(box.Y+1+i, l, c)
	}
}

// Summary is the one-line run report copied to the clipboard.
func Summary(snap sim.Snapshot) string {
	return fmt.Sprintf("rockdodge: score %d, level %d, %d rocks survived in %s",
		snap.Score, snap.Level, snap.AsteroidsSurvived, snap.Elapsed.Truncate(time.Second))
}
