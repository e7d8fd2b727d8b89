package maze

// Maze is a generated grid. It is mutated only while generating and is
// safe for concurrent readers afterwards.
type Maze struct {
	config Config
	cols   int
	rows   int
	cells  []CellState
	free   []Coord

	// SkippedRooms counts rooms that found no fitting rectangle
	SkippedRooms int
	// DisconnectedRooms counts rooms whose connector fell outside the interior.
	// Such rooms stay carved and may be unreachable.
	DisconnectedRooms int
	// FurnitureHints are world coordinates inside patch rooms reserved for furniture
	FurnitureHints []Coord
}

func newMaze(cfg Config) *Maze {
	cols, rows := cfg.Columns(), cfg.Rows()
	return &Maze{
		config: cfg,
		cols:   cols,
		rows:   rows,
		cells:  make([]CellState, cols*rows),
	}
}

// Config returns the record the maze was built from
func (m *Maze) Config() Config {
	return m.config
}

// Columns returns the grid width including the border
func (m *Maze) Columns() int {
	return m.cols
}

// Rows returns the grid height including the border
func (m *Maze) Rows() int {
	return m.rows
}

// CorridorWidth returns the world scale of a single cell
func (m *Maze) CorridorWidth() int {
	return m.config.CorridorWidth
}

// InBounds reports whether c lies on the grid, border included
func (m *Maze) InBounds(c Cell) bool {
	return c.X >= 0 && c.Y >= 0 && c.X < m.cols && c.Y < m.rows
}

// interior reports whether c lies strictly inside the border ring
func (m *Maze) interior(c Cell) bool {
	return c.X > 0 && c.Y > 0 && c.X < m.cols-1 && c.Y < m.rows-1
}

// IsOpen reports whether c is walkable. Out of bounds cells are walls.
func (m *Maze) IsOpen(c Cell) bool {
	if !m.InBounds(c) {
		return false
	}
	return m.cells[c.Y*m.cols+c.X] == Open
}

// State returns the state of c, Wall when out of bounds
func (m *Maze) State(c Cell) CellState {
	if !m.IsOpen(c) {
		return Wall
	}
	return Open
}

func (m *Maze) set(c Cell, s CellState) {
	m.cells[c.Y*m.cols+c.X] = s
}

// CellToWorld scales a grid cell into world space
func (m *Maze) CellToWorld(c Cell) Coord {
	cw := m.config.CorridorWidth
	return Coord{X: c.X * cw, Y: c.Y * cw}
}

// WorldToCell maps a world coordinate to the cell containing it
func (m *Maze) WorldToCell(p Coord) (Cell, bool) {
	cw := m.config.CorridorWidth
	c := Cell{X: floorDiv(p.X, cw), Y: floorDiv(p.Y, cw)}
	return c, m.InBounds(c)
}

// FreeCells returns the open cells in world space, row-major. The slice is a copy.
func (m *Maze) FreeCells() []Coord {
	out := make([]Coord, len(m.free))
	copy(out, m.free)
	return out
}

// OpenCount returns the number of open cells
func (m *Maze) OpenCount() int {
	return len(m.free)
}

// Neighbors returns the open cells orthogonally adjacent to c
func (m *Maze) Neighbors(c Cell) []Cell {
	var out []Cell
	for _, d := range neighborSteps {
		n := Cell{X: c.X + d.X, Y: c.Y + d.Y}
		if m.IsOpen(n) {
			out = append(out, n)
		}
	}
	return out
}

// refreshFree recomputes the free cell set from the grid
func (m *Maze) refreshFree() {
	m.free = m.free[:0]
	for y := 0; y < m.rows; y++ {
		for x := 0; x < m.cols; x++ {
			if m.cells[y*m.cols+x] == Open {
				m.free = append(m.free, m.CellToWorld(Cell{X: x, Y: y}))
			}
		}
	}
}

// closeBorder forces the outer ring back to wall
func (m *Maze) closeBorder() {
	for x := 0; x < m.cols; x++ {
		m.set(Cell{X: x, Y: 0}, Wall)
		m.set(Cell{X: x, Y: m.rows - 1}, Wall)
	}
	for y := 0; y < m.rows; y++ {
		m.set(Cell{X: 0, Y: y}, Wall)
		m.set(Cell{X: m.cols - 1, Y: y}, Wall)
	}
}

var neighborSteps = [4]Cell{{0, -1}, {0, 1}, {-1, 0}, {1, 0}}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
