package maze

import (
	"github.com/KirkDiggler/maze-api/internal/pkg/rng"
)

// side of a room a connector is breached through
type side int

const (
	sideTop side = iota
	sideBottom
	sideLeft
	sideRight
)

// room is a carved rectangle in grid cells. Not kept after generation.
type room struct {
	x, y, w, h int
}

// addRoom carves one rectangle and breaches a single connector wall.
// After maxRoomAttempts without a fitting rectangle the room is skipped.
func (m *Maze) addRoom(src rng.Source) {
	r, ok := m.pickRoom(src)
	if !ok {
		m.SkippedRooms++
		return
	}

	for y := r.y; y < r.y+r.h; y++ {
		for x := r.x; x < r.x+r.w; x++ {
			m.set(Cell{X: x, Y: y}, Open)
		}
	}
	m.refreshFree()

	connector := r.connector(side(src.Intn(4)), src)
	if !m.interior(connector) {
		m.DisconnectedRooms++
		return
	}
	m.set(connector, Open)
	m.refreshFree()
}

func (m *Maze) pickRoom(src rng.Source) (room, bool) {
	minSize, maxSize := m.config.MinRoomSize, m.config.MaxRoomSize
	for attempt := 0; attempt < maxRoomAttempts; attempt++ {
		w := minSize + src.Intn(maxSize-minSize+1)
		h := minSize + src.Intn(maxSize-minSize+1)

		// interior spans [1, cols-2]
		maxX := m.cols - 1 - w
		maxY := m.rows - 1 - h
		if maxX < 1 || maxY < 1 {
			continue
		}
		return room{
			x: 1 + src.Intn(maxX),
			y: 1 + src.Intn(maxY),
			w: w,
			h: h,
		}, true
	}
	return room{}, false
}

// connector returns the wall cell adjoining r on s
func (r room) connector(s side, src rng.Source) Cell {
	switch s {
	case sideTop:
		return Cell{X: r.x + src.Intn(r.w), Y: r.y - 1}
	case sideBottom:
		return Cell{X: r.x + src.Intn(r.w), Y: r.y + r.h}
	case sideLeft:
		return Cell{X: r.x - 1, Y: r.y + src.Intn(r.h)}
	default:
		return Cell{X: r.x + r.w, Y: r.y + src.Intn(r.h)}
	}
}

// tryPatchRoom opens a 2x2 lattice patch anchored at c, a 3x3 block of
// grid cells, clearing the walls between patch cells pairwise. Patches
// that would reach the border are not opened. It returns the lattice
// cells the patch opened that were still walls.
func (m *Maze) tryPatchRoom(c Cell, src rng.Source) []Cell {
	if src.Float64() >= m.config.patchChance() {
		return nil
	}

	far := Cell{X: c.X + 2, Y: c.Y + 2}
	if !m.interior(far) {
		return nil
	}

	slots := [4]Cell{c, {X: c.X + 2, Y: c.Y}, {X: c.X, Y: c.Y + 2}, far}
	var opened []Cell
	for _, slot := range slots[1:] {
		if !m.IsOpen(slot) {
			opened = append(opened, slot)
		}
	}

	for y := c.Y; y <= far.Y; y++ {
		for x := c.X; x <= far.X; x++ {
			m.set(Cell{X: x, Y: y}, Open)
		}
	}

	if src.Float64() < furnitureChance {
		m.FurnitureHints = append(m.FurnitureHints, m.CellToWorld(slots[src.Intn(len(slots))]))
	}
	return opened
}
