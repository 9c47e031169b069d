package blockshot

import (
	"fmt"
	"math"

	platformcore "github.com/vovakirdan/blockshot/internal/core"
	"github.com/vovakirdan/blockshot/internal/games/blockshot/core"
)

const (
	cellW      = 2  // Terminal columns per grid cell
	hudHeight  = 2  // Title line and separator
	panelWidth = 22 // Side panel with next block and counters
	guideDots  = 10 // Aim guide length in dots
)

// layout places the board on the screen.
type layout struct {
	board     platformcore.Rect // Frame including the border
	panelX    int               // -1 when the panel does not fit
	shooterY  int
	tooSmall  bool
	cellsLeft int // Screen x of grid column 0
	cellsTop  int // Screen y of the far wall row
}

func computeLayout(w, h int, geo core.Geometry) layout {
	boardW := geo.Cols*cellW + 2
	boardH := geo.Rows + 2
	if w < boardW || h < hudHeight+boardH+1 {
		return layout{tooSmall: true}
	}

	total := boardW
	withPanel := w >= boardW+2+panelWidth
	if withPanel {
		total += 2 + panelWidth
	}

	l := layout{
		board:  platformcore.NewRect((w-total)/2, hudHeight, boardW, boardH),
		panelX: -1,
	}
	if withPanel {
		l.panelX = l.board.Right() + 2
	}
	l.shooterY = l.board.Bottom()
	l.cellsLeft = l.board.X + 1
	l.cellsTop = l.board.Y + 1
	return l
}

// cellPos returns the screen position of grid cell (row, col).
func (l layout) cellPos(geo core.Geometry, row, col int) (int, int) {
	return l.cellsLeft + col*cellW, l.cellsTop + (geo.Rows - 1 - row)
}

// pixelX maps a horizontal pixel position to a screen column at half-cell
// resolution.
func (l layout) pixelX(geo core.Geometry, x float64) int {
	sx := int(math.Floor(x / geo.CellSize * cellW))
	return l.cellsLeft + platformcore.Clamp(sx, 0, geo.Cols*cellW-1)
}

// pixelY maps a vertical pixel position to the screen row of its grid row.
func (l layout) pixelY(geo core.Geometry, y float64) int {
	row := platformcore.Clamp(geo.RowToGrid(y), 0, geo.Rows-1)
	return l.cellsTop + (geo.Rows - 1 - row)
}

// Render draws the game to the screen.
func (g *Game) Render(dst *platformcore.Screen) {
	dst.Clear()
	g.renderHUD(dst)

	if g.err != nil {
		renderOverlay(dst, platformcore.NewRect(0, 0, dst.Width(), dst.Height()), platformcore.ColorBrightRed,
			"Invalid config", g.err.Error(), "Q to quit, R to retry")
		return
	}

	snap, ok := g.Snapshot()
	if !ok {
		return
	}

	l := computeLayout(dst.Width(), dst.Height(), snap.Geometry)
	if l.tooSmall {
		need := fmt.Sprintf("Need %dx%d", snap.Geometry.Cols*cellW+2, snap.Geometry.Rows+hudHeight+3)
		dst.DrawTextCentered(dst.Height()/2, "Window too small", platformcore.ColorYellow)
		dst.DrawTextCentered(dst.Height()/2+1, need, platformcore.ColorGray)
		return
	}

	dst.DrawBox(l.board, platformcore.ColorGray)
	renderGrid(dst, l, snap)
	renderAimGuide(dst, l, snap)
	renderProjectiles(dst, l, snap)
	renderShooter(dst, l, snap)
	if l.panelX >= 0 {
		renderPanel(dst, l, snap)
	}

	switch {
	case snap.State == core.StateGameOver:
		lines := []string{"GAME OVER", fmt.Sprintf("Score: %d", snap.Score)}
		if g.final != nil {
			s := g.final.Stats
			lines = append(lines,
				fmt.Sprintf("Shots %d  Merges %d", s.Fired, s.Merges),
				fmt.Sprintf("Matches %d  Bombs %d", s.Matches, s.Explosions),
			)
		}
		lines = append(lines, "R to restart")
		renderOverlay(dst, l.board, platformcore.ColorBrightRed, lines...)
	case g.paused:
		renderOverlay(dst, l.board, platformcore.ColorBrightYellow, "PAUSED", "P to continue")
	}
}

// renderHUD draws the title line.
func (g *Game) renderHUD(dst *platformcore.Screen) {
	hud := " " + g.info.title
	if g.sim != nil {
		hud += fmt.Sprintf(" | Score: %d", g.sim.Score())
	}
	dst.DrawTextWithColor(0, 0, hud, platformcore.ColorCyan)
	dst.DrawHLine(0, 1, dst.Width(), '─', platformcore.ColorGray)
}

func renderGrid(dst *platformcore.Screen, l layout, snap core.Snapshot) {
	geo := snap.Geometry
	for row := range geo.Rows {
		for col := range geo.Cols {
			x, y := l.cellPos(geo, row, col)
			if b := snap.Grid.Get(row, col); b != nil {
				drawBlock(dst, x, y, *b)
				continue
			}
			dst.SetWithColor(x, y, '·', platformcore.ColorGray)
		}
	}
}

// renderAimGuide traces the path the loaded block would take, using the
// same motion rules as a real projectile.
func renderAimGuide(dst *platformcore.Screen, l layout, snap core.Snapshot) {
	if snap.State == core.StateGameOver {
		return
	}
	geo := snap.Geometry
	sh := snap.Shooter
	speed := geo.CellSize / 5

	p := core.Projectile{
		X:  sh.X,
		Y:  sh.Y,
		DX: speed * math.Cos(sh.Angle),
		DY: -speed * math.Sin(sh.Angle),
	}
	maxTicks := int(geo.Height()/(speed*math.Max(math.Sin(sh.Angle), 0.01))) + 1
	for tick, dots := 1, 0; tick <= maxTicks && dots < guideDots; tick++ {
		p.Advance(geo, 1)
		if _, terminal := p.CheckTerminal(snap.Grid, geo); terminal {
			return
		}
		if tick%5 == 0 {
			dst.SetWithColor(l.pixelX(geo, p.X), l.pixelY(geo, p.Y), '•', platformcore.ColorWhite)
			dots++
		}
	}
}

func renderProjectiles(dst *platformcore.Screen, l layout, snap core.Snapshot) {
	geo := snap.Geometry
	for _, p := range snap.Projectiles {
		if geo.RowToGrid(p.Y) < 0 {
			continue
		}
		col := geo.ClampColumn(geo.ColumnToGrid(p.X))
		x, _ := l.cellPos(geo, 0, col)
		drawBlock(dst, x, l.pixelY(geo, p.Y), p.Block)
	}
}

func renderShooter(dst *platformcore.Screen, l layout, snap core.Snapshot) {
	geo := snap.Geometry
	x := l.pixelX(geo, snap.Shooter.X)
	x -= (x - l.cellsLeft) % cellW
	drawBlock(dst, x, l.shooterY, snap.Shooter.Loaded)
}

func renderPanel(dst *platformcore.Screen, l layout, snap core.Snapshot) {
	x, y := l.panelX, l.board.Y
	label := platformcore.ColorGray

	dst.DrawTextWithColor(x, y, "Next", label)
	drawBlock(dst, x+6, y, snap.Shooter.Loaded)
	dst.DrawTextWithColor(x+9, y, snap.Shooter.Loaded.Kind.String(), platformcore.ColorDefault)

	deg := snap.Shooter.Angle * 180 / math.Pi
	rows := []struct {
		name  string
		value string
	}{
		{"Score", fmt.Sprintf("%d", snap.Score)},
		{"Aim", fmt.Sprintf("%.0f°", deg)},
		{"In flight", fmt.Sprintf("%d", len(snap.Projectiles))},
		{"Shots", fmt.Sprintf("%d", snap.Stats.Fired)},
		{"Merges", fmt.Sprintf("%d", snap.Stats.Merges)},
		{"Matches", fmt.Sprintf("%d", snap.Stats.Matches)},
		{"Bombs", fmt.Sprintf("%d", snap.Stats.Explosions)},
		{"Cleared", fmt.Sprintf("%d", snap.Stats.Cleared)},
	}
	for i, r := range rows {
		dst.DrawTextWithColor(x, y+2+i, r.name, label)
		dst.DrawText(x+11, y+2+i, r.value)
	}

	legend := y + 3 + len(rows)
	drawBlock(dst, x, legend, core.NewNormal(core.ColorRed))
	dst.DrawTextWithColor(x+3, legend, "match 3+", label)
	drawBlock(dst, x, legend+1, core.NewNumber(core.ColorRed))
	dst.DrawTextWithColor(x+3, legend+1, "merge numbers", label)
	drawBlock(dst, x, legend+2, core.NewBomb(core.ColorRed))
	dst.DrawTextWithColor(x+3, legend+2, "bomb 3x3", label)
}

// drawBlock draws a block two columns wide.
func drawBlock(dst *platformcore.Screen, x, y int, b core.Block) {
	c := blockColor(b.Color)
	switch b.Kind {
	case core.KindNumber:
		dst.DrawTextWithColor(x, y, numberLabel(b.Value), c)
	case core.KindBomb:
		dst.DrawTextWithColor(x, y, "()", c)
	default:
		dst.DrawTextWithColor(x, y, "██", c)
	}
}

// numberLabel fits a value into two columns.
func numberLabel(v int) string {
	if v > 99 {
		return "9+"
	}
	return fmt.Sprintf("%2d", v)
}

// blockColor maps block colors to screen colors.
func blockColor(c core.Color) platformcore.Color {
	switch c {
	case core.ColorRed:
		return platformcore.ColorBrightRed
	case core.ColorGreen:
		return platformcore.ColorBrightGreen
	case core.ColorBlue:
		return platformcore.ColorBrightBlue
	case core.ColorYellow:
		return platformcore.ColorBrightYellow
	case core.ColorPurple:
		return platformcore.ColorBrightMagenta
	default:
		return platformcore.ColorWhite
	}
}

// renderOverlay draws a framed message box centered in area.
func renderOverlay(dst *platformcore.Screen, area platformcore.Rect, color platformcore.Color, lines ...string) {
	width := 0
	for _, line := range lines {
		width = max(width, len([]rune(line)))
	}
	box := area.Centered(min(width+4, dst.Width()), len(lines)+2)

	dst.DrawRect(box, ' ', platformcore.ColorDefault)
	dst.DrawBox(box, color)
	for i, line := range lines {
		x := box.X + (box.W-len([]rune(line)))/2
		lineColor := platformcore.ColorDefault
		if i == 0 {
			lineColor = color
		}
		dst.DrawTextWithColor(x, box.Y+1+i, line, lineColor)
	}
}
