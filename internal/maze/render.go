package maze

import (
	"strings"

	"github.com/KirkDiggler/maze-api/internal/errors"
)

const (
	wallRune      = '#'
	openRune      = '.'
	furnitureRune = 'L'
)

// Snapshot returns one string per grid row, '#' for wall and '.' for open
func (m *Maze) Snapshot() []string {
	rows := make([]string, m.rows)
	var b strings.Builder
	for y := 0; y < m.rows; y++ {
		b.Reset()
		for x := 0; x < m.cols; x++ {
			if m.cells[y*m.cols+x] == Open {
				b.WriteRune(openRune)
			} else {
				b.WriteRune(wallRune)
			}
		}
		rows[y] = b.String()
	}
	return rows
}

// String renders the maze with furniture hints marked 'L'
func (m *Maze) String() string {
	rows := m.Snapshot()
	for _, hint := range m.FurnitureHints {
		c, ok := m.WorldToCell(hint)
		if !ok {
			continue
		}
		row := []rune(rows[c.Y])
		row[c.X] = furnitureRune
		rows[c.Y] = string(row)
	}
	return strings.Join(rows, "\n")
}

// FromSnapshot restores a maze from rows produced by Snapshot.
// The rows must match the grid dimensions implied by cfg.
func FromSnapshot(cfg Config, rows []string) (*Maze, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	m := newMaze(cfg)
	if len(rows) != m.rows {
		return nil, errors.InvalidArgumentf("snapshot has %d rows, expected %d", len(rows), m.rows)
	}

	for y, row := range rows {
		if len(row) != m.cols {
			return nil, errors.InvalidArgumentf("snapshot row %d has %d cells, expected %d", y, len(row), m.cols)
		}
		for x, r := range row {
			switch r {
			case openRune:
				m.set(Cell{X: x, Y: y}, Open)
			case wallRune:
			case furnitureRune:
				m.set(Cell{X: x, Y: y}, Open)
				m.FurnitureHints = append(m.FurnitureHints, m.CellToWorld(Cell{X: x, Y: y}))
			default:
				return nil, errors.InvalidArgumentf("snapshot row %d has unknown cell %q", y, r)
			}
		}
	}

	m.closeBorder()
	m.refreshFree()
	return m, nil
}
