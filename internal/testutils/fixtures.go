package testutils

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/maze-api/internal/maze"
)

// Fixture seeds and sizes
const (
	// TestSeed is the seed fixtures generate from unless a test picks its own
	TestSeed int64 = 42

	// SmallMazeOpenCells is how many cells a room-free 10x10 maze at
	// corridor width 2 opens: a 3x3 lattice plus the 8 passages of its
	// spanning tree
	SmallMazeOpenCells = 17
)

// CorridorConfig returns a room-free config at corridor width 2
func CorridorConfig(width, height int, seed int64) maze.Config {
	return maze.Config{
		Width:         width,
		Height:        height,
		CorridorWidth: 2,
		RandomSeed:    seed,
	}
}

// SmallMazeConfig is the 10x10 maze most tests start from
func SmallMazeConfig() maze.Config {
	return CorridorConfig(10, 10, TestSeed)
}

// LoopLayout is a hand-drawn 7x7 layout with a single loop, a dead end
// at the bottom right and a spur at (3,3)-(3,4). Cell (x,y) is centered
// at (2x,2y) in world space.
var LoopLayout = []string{
	"#######",
	"#.....#",
	"#.###.#",
	"#.#...#",
	"#.#.###",
	"#...#.#",
	"#######",
}

// LoadLayout restores rows into a maze sized for them
func LoadLayout(t testing.TB, rows []string) *maze.Maze {
	t.Helper()

	m, err := maze.FromSnapshot(CorridorConfig(2*(len(rows)-2), 2*(len(rows)-2), TestSeed), rows)
	require.NoError(t, err)
	return m
}
