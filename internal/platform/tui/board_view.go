package tui

import (
	"fmt"

	"github.com/pkamenev/firetower/internal/config"
	"github.com/pkamenev/firetower/internal/core"
	"github.com/pkamenev/firetower/internal/engine"
)

// Board layout constants
const (
	boardBoxX = 0
	boardBoxY = 0
	boardBoxW = engine.BoardSize*2 + 5 // borders plus spaced cells
	boardBoxH = engine.BoardSize + 2

	cellOriginX = boardBoxX + 3 // first cell column, cells two apart
	cellOriginY = boardBoxY + 1

	sidebarX = boardBoxX + boardBoxW + 2
)

// drawBoard renders the 16x16 grid with theme glyphs and the cursor.
func (m Model) drawBoard() {
	theme := m.opts.Theme

	towers := make(map[engine.Point]bool)
	homes := make(map[engine.Point]bool)
	for _, p := range m.game.Players() {
		for _, cell := range p.Tower() {
			towers[cell] = true
		}
		homes[p.Home()] = true
	}

	m.screen.DrawBox(core.NewRect(boardBoxX, boardBoxY, boardBoxW, boardBoxH))

	for y := 0; y < engine.BoardSize; y++ {
		for x := 0; x < engine.BoardSize; x++ {
			p := engine.Point{X: x, Y: y}
			tile := m.game.Tile(p)
			glyph := theme.TileGlyph(tile)
			color := theme.TileColor(tile)

			// Towers and homes tint unburnt trees only; fire keeps
			// its own color everywhere
			if tile == engine.Tree {
				switch {
				case homes[p]:
					color = config.ParseColor(theme.HomeColor)
				case towers[p]:
					color = config.ParseColor(theme.TowerColor)
				}
			}

			m.screen.SetCell(cellOriginX+x*2, cellOriginY+y, glyph, color)
		}
	}

	if m.phase == phasePlaying {
		cx := cellOriginX + m.cursor.X*2
		cy := cellOriginY + m.cursor.Y
		m.screen.SetCell(cx-1, cy, '[', core.ColorYellow)
		m.screen.SetCell(cx+1, cy, ']', core.ColorYellow)
	}
}

// drawSidebar renders wind, the player roster and the card list.
func (m Model) drawSidebar() {
	x := sidebarX
	m.screen.DrawTextColored(x, 0, "FIRETOWER", core.ColorBrightWhite)

	m.screen.DrawTextColored(x, 2,
		fmt.Sprintf("Wind from the %s", m.game.Wind()), core.ColorCyan)

	y := 4
	for _, p := range m.game.Players() {
		line := fmt.Sprintf("%s %s", p.Corner, p.Name)
		color := core.ColorDefault
		if !p.Active {
			line += " (out)"
			color = core.ColorGray
		}
		m.screen.DrawTextColored(x, y, line, color)
		y++
	}

	y++
	for _, info := range engine.Actions() {
		marker := ' '
		color := core.ColorDefault
		if info.Kind == m.game.Selected() {
			marker = '>'
			color = core.ColorYellow
		}
		line := fmt.Sprintf("%c%d %s", marker, int(info.Kind)+1, info.Name)
		if info.Kind == m.game.Selected() && info.Oriented {
			line += fmt.Sprintf(" (%s)", m.game.Orientation())
		}
		m.screen.DrawTextColored(x, y, line, color)
		y++
	}
}

// drawStatus renders the message line and key help at the bottom.
func (m Model) drawStatus() {
	h := m.screen.Height()

	status := m.status
	if status == "" && m.game.EmberLifted() {
		status = "ember in hand, place it orthogonal to fire"
	}
	if status != "" {
		m.screen.DrawTextColored(1, h-2, status, core.ColorRed)
	}

	help := "arrows/hjkl move  1-8 card  enter apply  w wind  q quit"
	if m.phase == phaseOver {
		help = "r rematch  q quit"
	}
	m.screen.DrawTextColored(1, h-1, help, core.ColorGray)
}

// drawWinner renders the end-of-match overlay.
func (m Model) drawWinner() {
	title := "NOBODY SURVIVED"
	if v := m.game.Victor(); v != nil {
		title = fmt.Sprintf("%s WINS", v.Name)
	}

	w := core.Max(len(title)+6, 24)
	box := core.NewRect((m.screen.Width()-w)/2, m.screen.Height()/2-2, w, 5)
	m.screen.FillRect(box, ' ')
	m.screen.DrawBox(box)
	m.screen.DrawTextColored(box.X+(w-len(title))/2, box.Y+2, title, core.ColorBrightWhite)
}
