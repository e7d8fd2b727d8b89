package maze_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/maze-api/internal/errors"
	"github.com/KirkDiggler/maze-api/internal/maze"
	"github.com/KirkDiggler/maze-api/internal/pkg/rng"
)

type GeneratorTestSuite struct {
	suite.Suite
}

func TestGeneratorTestSuite(t *testing.T) {
	suite.Run(t, new(GeneratorTestSuite))
}

func (s *GeneratorTestSuite) corridorConfig(width, height, cw int, seed int64) maze.Config {
	return maze.Config{
		Width:         width,
		Height:        height,
		CorridorWidth: cw,
		RandomSeed:    seed,
	}
}

// openGraph counts open cells and the edges between orthogonal open neighbors
func openGraph(m *maze.Maze) (vertices, edges int) {
	for y := 0; y < m.Rows(); y++ {
		for x := 0; x < m.Columns(); x++ {
			c := maze.Cell{X: x, Y: y}
			if !m.IsOpen(c) {
				continue
			}
			vertices++
			if m.IsOpen(maze.Cell{X: x + 1, Y: y}) {
				edges++
			}
			if m.IsOpen(maze.Cell{X: x, Y: y + 1}) {
				edges++
			}
		}
	}
	return vertices, edges
}

func reachable(m *maze.Maze, from maze.Cell) int {
	seen := map[maze.Cell]bool{from: true}
	queue := []maze.Cell{from}
	for len(queue) > 0 {
		c := queue[0]
		queue = queue[1:]
		for _, n := range m.Neighbors(c) {
			if !seen[n] {
				seen[n] = true
				queue = append(queue, n)
			}
		}
	}
	return len(seen)
}

func (s *GeneratorTestSuite) assertBorderClosed(m *maze.Maze) {
	for x := 0; x < m.Columns(); x++ {
		s.False(m.IsOpen(maze.Cell{X: x, Y: 0}), "top border at %d", x)
		s.False(m.IsOpen(maze.Cell{X: x, Y: m.Rows() - 1}), "bottom border at %d", x)
	}
	for y := 0; y < m.Rows(); y++ {
		s.False(m.IsOpen(maze.Cell{X: 0, Y: y}), "left border at %d", y)
		s.False(m.IsOpen(maze.Cell{X: m.Columns() - 1, Y: y}), "right border at %d", y)
	}
}

func (s *GeneratorTestSuite) TestPerfectMaze() {
	testCases := []struct {
		name   string
		width  int
		height int
		cw     int
	}{
		{name: "small square", width: 10, height: 10, cw: 2},
		{name: "wide", width: 40, height: 12, cw: 2},
		{name: "even lattice", width: 12, height: 14, cw: 2},
		{name: "unit corridors", width: 15, height: 9, cw: 1},
		{name: "wide corridors", width: 60, height: 45, cw: 3},
		{name: "single cell", width: 2, height: 2, cw: 2},
	}

	for _, tc := range testCases {
		for seed := int64(1); seed <= 5; seed++ {
			s.Run(tc.name, func() {
				m, err := maze.GenerateWithSeed(s.corridorConfig(tc.width, tc.height, tc.cw, seed))
				s.Require().NoError(err)

				v, e := openGraph(m)
				s.Require().Positive(v)
				s.Equal(v-1, e, "corridor graph must be a tree")
				s.Equal(v, reachable(m, maze.Cell{X: 1, Y: 1}), "corridor graph must be connected")
				s.assertBorderClosed(m)
			})
		}
	}
}

func (s *GeneratorTestSuite) TestTenByTenScenario() {
	m, err := maze.GenerateWithSeed(s.corridorConfig(10, 10, 2, 99))
	s.Require().NoError(err)

	s.Equal(7, m.Columns())
	s.Equal(7, m.Rows())
	s.assertBorderClosed(m)

	free := m.FreeCells()
	s.Require().NotEmpty(free)
	s.LessOrEqual(len(free), 24)
	// every lattice cell is reached: 9 cells joined by 8 breached walls
	s.Len(free, 17)

	seen := make(map[maze.Coord]bool)
	for _, c := range free {
		s.False(seen[c], "duplicate free cell %v", c)
		seen[c] = true

		s.Zero(c.X % 2)
		s.Zero(c.Y % 2)
		s.GreaterOrEqual(c.X, 2)
		s.LessOrEqual(c.X, 10)
		s.GreaterOrEqual(c.Y, 2)
		s.LessOrEqual(c.Y, 10)

		cell, ok := m.WorldToCell(c)
		s.Require().True(ok)
		s.True(m.IsOpen(cell))
	}
}

func (s *GeneratorTestSuite) TestFreeCellsMatchOpenCells() {
	cfg := s.corridorConfig(30, 30, 2, 4)
	cfg.NumberOfRooms = 4
	cfg.MinRoomSize = 2
	cfg.MaxRoomSize = 4

	m, err := maze.GenerateWithSeed(cfg)
	s.Require().NoError(err)

	v, _ := openGraph(m)
	s.Len(m.FreeCells(), v)
	s.Equal(v, m.OpenCount())
	s.assertBorderClosed(m)
}

func (s *GeneratorTestSuite) TestDeterministic() {
	cfg := s.corridorConfig(40, 30, 2, 1234)
	cfg.NumberOfRooms = 3
	cfg.MinRoomSize = 2
	cfg.MaxRoomSize = 5

	first, err := maze.GenerateWithSeed(cfg)
	s.Require().NoError(err)
	second, err := maze.Generate(cfg, rng.NewSeeded(1234))
	s.Require().NoError(err)

	s.Equal(first.Snapshot(), second.Snapshot())
	s.Equal(first.FreeCells(), second.FreeCells())
}

func (s *GeneratorTestSuite) TestConfigurationErrors() {
	testCases := []struct {
		name   string
		modify func(*maze.Config)
		field  string
	}{
		{
			name:   "zero corridor width",
			modify: func(c *maze.Config) { c.CorridorWidth = 0 },
			field:  "corridor_width",
		},
		{
			name:   "width smaller than corridor",
			modify: func(c *maze.Config) { c.Width = 1 },
			field:  "width",
		},
		{
			name:   "height smaller than corridor",
			modify: func(c *maze.Config) { c.Height = 0 },
			field:  "height",
		},
		{
			name: "inverted room sizes",
			modify: func(c *maze.Config) {
				c.NumberOfRooms = 1
				c.MinRoomSize = 4
				c.MaxRoomSize = 2
			},
			field: "max_room_size",
		},
		{
			name: "zero room size",
			modify: func(c *maze.Config) {
				c.NumberOfRooms = 1
				c.MaxRoomSize = 2
			},
			field: "min_room_size",
		},
		{
			name:   "unknown room mode",
			modify: func(c *maze.Config) { c.RoomMode = "cave" },
			field:  "room_mode",
		},
		{
			name: "grid too large to allocate",
			modify: func(c *maze.Config) {
				c.Width = 1<<33 - 2
				c.Height = 1<<31 - 2
				c.CorridorWidth = 1
			},
			field: "width",
		},
		{
			name: "grid just over the cell cap",
			modify: func(c *maze.Config) {
				c.Width = 2 * (maze.MaxCells/2 + 1)
				c.Height = 4
				c.CorridorWidth = 2
			},
			field: "width",
		},
		{
			name:   "patch chance above one",
			modify: func(c *maze.Config) { c.PatchRoomChance = 1.5 },
			field:  "patch_room_chance",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			cfg := s.corridorConfig(10, 10, 2, 1)
			tc.modify(&cfg)

			m, err := maze.GenerateWithSeed(cfg)
			s.Require().Error(err)
			s.Nil(m)
			s.True(errors.IsConfiguration(err))
			s.Contains(err.Error(), tc.field)
		})
	}
}

func (s *GeneratorTestSuite) TestNilSource() {
	_, err := maze.Generate(s.corridorConfig(10, 10, 2, 1), nil)
	s.Require().Error(err)
	s.True(errors.IsConfiguration(err))
}

func (s *GeneratorTestSuite) TestRoomsThatCannotFitAreSkipped() {
	cfg := s.corridorConfig(10, 10, 2, 8)
	cfg.NumberOfRooms = 2
	cfg.MinRoomSize = 10
	cfg.MaxRoomSize = 10

	m, err := maze.GenerateWithSeed(cfg)
	s.Require().NoError(err)
	s.Equal(2, m.SkippedRooms)
	s.Zero(m.DisconnectedRooms)

	// still a plain corridor maze
	v, e := openGraph(m)
	s.Equal(v-1, e)
}

func (s *GeneratorTestSuite) TestRoomTouchingBorderIsLeftDisconnected() {
	// a 5x5 room fills the whole interior of a 7x7 grid, so every
	// connector candidate lands on the border ring
	cfg := s.corridorConfig(10, 10, 2, 3)
	cfg.NumberOfRooms = 1
	cfg.MinRoomSize = 5
	cfg.MaxRoomSize = 5

	m, err := maze.GenerateWithSeed(cfg)
	s.Require().NoError(err)

	s.Zero(m.SkippedRooms)
	s.Equal(1, m.DisconnectedRooms)
	s.Len(m.FreeCells(), 25)
	s.assertBorderClosed(m)
}

func (s *GeneratorTestSuite) TestRoomsAddOpenCells() {
	base := s.corridorConfig(30, 30, 2, 11)
	plain, err := maze.GenerateWithSeed(base)
	s.Require().NoError(err)

	withRooms := base
	withRooms.NumberOfRooms = 3
	withRooms.MinRoomSize = 3
	withRooms.MaxRoomSize = 4
	carved, err := maze.GenerateWithSeed(withRooms)
	s.Require().NoError(err)

	s.Greater(carved.OpenCount(), plain.OpenCount())
	s.Zero(carved.SkippedRooms)
}

func (s *GeneratorTestSuite) TestPatchRooms() {
	cfg := s.corridorConfig(10, 10, 2, 5)
	cfg.RoomMode = maze.RoomModePatch
	cfg.PatchRoomChance = 1

	m, err := maze.GenerateWithSeed(cfg)
	s.Require().NoError(err)

	// the first patch is anchored at the start cell and opens a 3x3 block
	for y := 1; y <= 3; y++ {
		for x := 1; x <= 3; x++ {
			s.True(m.IsOpen(maze.Cell{X: x, Y: y}), "patch cell %d,%d", x, y)
		}
	}
	s.assertBorderClosed(m)
	s.Equal(m.OpenCount(), reachable(m, maze.Cell{X: 1, Y: 1}))

	// the carve continues past patches, so every lattice cell is reached
	for y := 1; y < m.Rows()-1; y += 2 {
		for x := 1; x < m.Columns()-1; x += 2 {
			s.True(m.IsOpen(maze.Cell{X: x, Y: y}), "lattice cell %d,%d", x, y)
		}
	}

	for _, hint := range m.FurnitureHints {
		cell, ok := m.WorldToCell(hint)
		s.Require().True(ok)
		s.True(m.IsOpen(cell))
	}
}

func (s *GeneratorTestSuite) TestCellWorldConversion() {
	m, err := maze.GenerateWithSeed(s.corridorConfig(10, 10, 2, 1))
	s.Require().NoError(err)

	s.Equal(maze.Coord{X: 6, Y: 4}, m.CellToWorld(maze.Cell{X: 3, Y: 2}))

	cell, ok := m.WorldToCell(maze.Coord{X: 7, Y: 5})
	s.True(ok)
	s.Equal(maze.Cell{X: 3, Y: 2}, cell)

	_, ok = m.WorldToCell(maze.Coord{X: -1, Y: 0})
	s.False(ok)
	s.False(m.IsOpen(maze.Cell{X: 50, Y: 50}))
}
