package ui

import (
	"fmt"
	"strconv"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/gridcrawl/internal/engine"
	"github.com/samdwyer/gridcrawl/internal/grid"
	"github.com/samdwyer/gridcrawl/internal/world"
)

// Layout of the screen, in cells.
const (
	statRow     = 0
	boardTop    = 2
	boardLeft   = 2
	cellWidth   = 2 // Each board cell is a glyph followed by a space
	panelGap    = 4
	maxMessages = 6
)

// View holds what the renderer shows besides the board.
type View struct {
	Messages []string           // Most recent last
	Prompt   string             // Bottom line; key hints when empty
	Help     []engine.HelpEntry // Drawn over the message area when set
}

// Renderer handles drawing the game to the screen.
type Renderer struct {
	screen *Screen
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen *Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Render draws the stat line, the board, the item panel, and the messages.
func (r *Renderer) Render(snap engine.Snapshot, view View) {
	r.screen.Clear()

	r.renderStats(snap)
	r.renderBoard(snap.Snapshot)
	r.renderPanel(snap.Snapshot, boardLeft+snap.Cols*cellWidth+panelGap)

	y := boardTop + snap.Rows + 1
	if len(view.Help) > 0 {
		y = r.renderHelp(view.Help, y)
	} else {
		y = r.renderMessages(view.Messages, y)
	}

	prompt := view.Prompt
	if prompt == "" {
		prompt = "wasd/arrows move  i inventory  o equipment  e/u/q item  ? help  esc quit"
	}
	r.screen.DrawText(0, y+1, prompt, tcell.StyleDefault.Foreground(tcell.ColorGray))

	r.screen.Show()
}

func (r *Renderer) renderStats(snap engine.Snapshot) {
	st := snap.Stats
	label := tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	value := tcell.StyleDefault.Foreground(tcell.ColorYellow)
	if snap.Ended {
		value = tcell.StyleDefault.Foreground(tcell.ColorRed)
	}

	x := r.screen.DrawText(0, statRow, st.Name, label)
	fields := []struct{ name, value string }{
		{"HP", FormatStat(st.HP)},
		{"DMG", FormatStat(st.Damage)},
		{"ARM", FormatStat(st.Armor)},
		{"Score", strconv.Itoa(st.Score)},
		{"Turn", strconv.Itoa(st.Turn)},
		{"Room", strconv.Itoa(st.Room)},
	}
	for _, f := range fields {
		x = r.screen.DrawText(x+2, statRow, f.name+" ", label)
		x = r.screen.DrawText(x, statRow, f.value, value)
	}
}

func (r *Renderer) renderBoard(snap world.Snapshot) {
	for row := range snap.Cells {
		for col, cell := range snap.Cells[row] {
			ch, style := cellGlyph(cell)
			r.screen.SetContent(boardLeft+col*cellWidth, boardTop+row, ch, style)
		}
	}
}

// cellGlyph picks what to draw for a cell: a creature over an item over the floor.
func cellGlyph(cell world.Cell) (rune, tcell.Style) {
	switch {
	case cell.Creature != nil:
		style := tcell.StyleDefault.Foreground(cell.Creature.Color)
		if cell.IsPlayer {
			style = style.Bold(true)
		}
		return cell.Creature.Symbol, style
	case cell.Item != nil:
		style := tcell.StyleDefault.Foreground(cell.Item.Color)
		if cell.ItemCount > 1 {
			style = style.Underline(true)
		}
		return cell.Item.Symbol, style
	default:
		return cell.Tile.Rune(), tileStyle(cell.Tile)
	}
}

// tileStyle returns the appropriate style for a tile type.
func tileStyle(tile grid.Tile) tcell.Style {
	switch tile {
	case grid.TileWall:
		return tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
	case grid.TileFloor:
		return tcell.StyleDefault.Foreground(tcell.ColorGray)
	case grid.TileEntry, grid.TileExit:
		return tcell.StyleDefault.Foreground(tcell.ColorTeal)
	default:
		return tcell.StyleDefault
	}
}

func (r *Renderer) renderPanel(snap world.Snapshot, x int) {
	heading := tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	plain := tcell.StyleDefault.Foreground(tcell.ColorSilver)

	y := boardTop
	r.screen.DrawText(x, y, "Equipped", heading)
	y++
	for _, line := range snap.Equipment {
		r.screen.DrawText(x, y, FormatItemLine(line), plain)
		y++
	}
	y++
	r.screen.DrawText(x, y, "Inventory", heading)
	y++
	for _, line := range snap.Inventory {
		r.screen.DrawText(x, y, FormatItemLine(line), plain)
		y++
	}
}

func (r *Renderer) renderMessages(messages []string, y int) int {
	if len(messages) > maxMessages {
		messages = messages[len(messages)-maxMessages:]
	}
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	for _, msg := range messages {
		r.screen.DrawText(0, y, msg, style)
		y++
	}
	return y
}

func (r *Renderer) renderHelp(help []engine.HelpEntry, y int) int {
	keys := tcell.StyleDefault.Foreground(tcell.ColorYellow)
	desc := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	for _, entry := range help {
		r.screen.DrawText(0, y, fmt.Sprintf("%-18s", entry.Keys), keys)
		r.screen.DrawText(18, y, entry.Description, desc)
		y++
	}
	return y
}

// FormatStat prints a stat without trailing zeros: 7, 29.25, -0.5.
func FormatStat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// FormatItemLine prints an inventory or equipment entry as "0 sword (right hand)".
func FormatItemLine(line world.ItemLine) string {
	if line.Slot.Attachable() {
		return fmt.Sprintf("%d %s (%s)", line.Index, line.Name, line.Slot.Label())
	}
	return fmt.Sprintf("%d %s", line.Index, line.Name)
}

// TextBoard renders the board as plain text rows, for line-oriented output.
func TextBoard(snap world.Snapshot) []string {
	rows := make([]string, len(snap.Cells))
	for row, cells := range snap.Cells {
		runes := make([]rune, 0, len(cells)*cellWidth)
		for col, cell := range cells {
			if col > 0 {
				runes = append(runes, ' ')
			}
			ch, _ := cellGlyph(cell)
			runes = append(runes, ch)
		}
		rows[row] = string(runes)
	}
	return rows
}
