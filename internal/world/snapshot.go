package world

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/gridcrawl/internal/entity"
	"github.com/samdwyer/gridcrawl/internal/gamedata"
	"github.com/samdwyer/gridcrawl/internal/grid"
)

// Glyph is a renderable symbol with its color.
type Glyph struct {
	Symbol rune
	Color  tcell.Color
}

// Cell is what a renderer needs to draw one position.
type Cell struct {
	Tile      grid.Tile
	Creature  *Glyph // nil when empty
	IsPlayer  bool
	Item      *Glyph // First floor item, nil when none
	ItemCount int
}

// StatLine is the player's status header.
type StatLine struct {
	Name   string
	HP     float64
	Damage float64
	Armor  float64
	Score  int
	Turn   int
	Room   int
}

// ItemLine describes one inventory or equipment entry.
type ItemLine struct {
	Index int
	Name  string
	Slot  gamedata.Slot
}

// Snapshot is a read-only copy of the world for presentation.
type Snapshot struct {
	Rows, Cols int
	Cells      [][]Cell // Indexed [row][col]
	Stats      StatLine
	Inventory  []ItemLine
	Equipment  []ItemLine
	Creatures  int // Excluding the player
}

// Snapshot copies the current state. Later mutations do not affect it.
func (w *World) Snapshot() Snapshot {
	s := Snapshot{
		Rows:  w.Room.Rows,
		Cols:  w.Room.Cols,
		Cells: make([][]Cell, w.Room.Rows),
		Stats: StatLine{
			Name:   w.Player.Name,
			HP:     w.Player.HP,
			Damage: w.Player.Damage,
			Armor:  w.Player.Armor,
			Score:  w.Player.Score,
			Turn:   w.Turn,
			Room:   w.Rooms,
		},
		Inventory: itemLines(w.Player.Inventory),
		Equipment: itemLines(w.Player.Equipped),
		Creatures: len(w.Creatures) - 1,
	}

	for row := range s.Cells {
		s.Cells[row] = make([]Cell, w.Room.Cols)
		for col := range s.Cells[row] {
			s.Cells[row][col].Tile = w.Room.TileAt(grid.Pos(row, col))
		}
	}

	for _, g := range w.FloorItems {
		if !w.Room.Contains(g.Pos) {
			continue
		}
		cell := &s.Cells[g.Pos.Row][g.Pos.Col]
		if cell.Item == nil {
			cell.Item = &Glyph{Symbol: g.Symbol, Color: g.Color()}
		}
		cell.ItemCount++
	}

	for _, c := range w.Creatures {
		if !w.Room.Contains(c.Pos) {
			continue
		}
		cell := &s.Cells[c.Pos.Row][c.Pos.Col]
		cell.Creature = &Glyph{Symbol: c.Symbol, Color: c.Color()}
		cell.IsPlayer = w.Player.Is(c)
	}

	return s
}

func itemLines(items []*entity.Gear) []ItemLine {
	lines := make([]ItemLine, len(items))
	for i, g := range items {
		lines[i] = ItemLine{Index: i, Name: g.Name, Slot: g.Slot}
	}
	return lines
}
