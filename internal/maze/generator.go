// Package maze builds corridor mazes on a two-step lattice and carves
// rooms into them.
//
// Generation runs once and synchronously. The returned Maze is never
// mutated again, so any number of goroutines may read it afterwards.
package maze

import (
	"log/slog"

	"github.com/KirkDiggler/maze-api/internal/errors"
	"github.com/KirkDiggler/maze-api/internal/pkg/rng"
)

// lattice steps move two cells so a wall cell always separates corridors
var latticeSteps = [4]Cell{{0, -2}, {0, 2}, {-2, 0}, {2, 0}}

// frame is one entry of the backtracker stack
type frame struct {
	cell Cell
	dirs [4]Cell
	next int
}

// Generate builds a maze from cfg drawing all randomness from src.
// It fails with a configuration error before touching any grid state
// when cfg cannot produce an interior cell.
func Generate(cfg Config, src rng.Source) (*Maze, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if src == nil {
		return nil, errors.Configuration("random source is required")
	}

	m := newMaze(cfg)
	m.carve(src)
	m.closeBorder()
	m.refreshFree()

	if cfg.roomMode() == RoomModeRect {
		for i := 0; i < cfg.NumberOfRooms; i++ {
			m.addRoom(src)
		}
	}
	m.closeBorder()
	m.refreshFree()

	slog.Debug("maze generated",
		"columns", m.cols,
		"rows", m.rows,
		"open_cells", len(m.free),
		"skipped_rooms", m.SkippedRooms,
		"disconnected_rooms", m.DisconnectedRooms)

	return m, nil
}

// GenerateWithSeed builds a maze using a source seeded from cfg.RandomSeed
func GenerateWithSeed(cfg Config) (*Maze, error) {
	return Generate(cfg, rng.NewSeeded(cfg.RandomSeed))
}

// carve runs the randomized depth first backtracker from (1,1).
// The explicit stack reproduces the recursive visiting order: each cell
// shuffles its directions once on entry and resumes where it left off
// after a child is exhausted.
func (m *Maze) carve(src rng.Source) {
	start := Cell{X: 1, Y: 1}
	stack := m.enter(start, src)

	for len(stack) > 0 {
		top := stack[len(stack)-1]
		if top.next == len(top.dirs) {
			stack = stack[:len(stack)-1]
			continue
		}

		d := top.dirs[top.next]
		top.next++

		target := Cell{X: top.cell.X + d.X, Y: top.cell.Y + d.Y}
		if !m.interior(target) || m.IsOpen(target) {
			continue
		}

		m.set(Cell{X: top.cell.X + d.X/2, Y: top.cell.Y + d.Y/2}, Open)
		stack = append(stack, m.enter(target, src)...)
	}
}

// enter opens c and prepares its stack frame. Lattice cells newly opened
// by a patch room get frames of their own so the carve continues past them.
func (m *Maze) enter(c Cell, src rng.Source) []*frame {
	m.set(c, Open)
	cells := []Cell{c}
	if m.config.roomMode() == RoomModePatch {
		cells = append(cells, m.tryPatchRoom(c, src)...)
	}

	frames := make([]*frame, len(cells))
	for n, cell := range cells {
		f := &frame{cell: cell, dirs: latticeSteps}
		rng.Shuffle(src, len(f.dirs), func(i, j int) {
			f.dirs[i], f.dirs[j] = f.dirs[j], f.dirs[i]
		})
		frames[n] = f
	}
	return frames
}
