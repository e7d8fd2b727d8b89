package navigation

import (
	"context"
	"math"
	"sync"

	"github.com/KirkDiggler/maze-api/internal/maze"
)

// GridPort implements Port and Prober over a baked cell grid.
// A world point belongs to the cell whose center is nearest, centers
// sitting at cell * corridorWidth.
type GridPort struct {
	mu     sync.RWMutex
	baked  bool
	cols   int
	rows   int
	scale  float64
	open   []bool
	agents map[string]*route
}

type route struct {
	destination Vec
	goal        maze.Cell
	waypoints   []Vec
}

// NewGridPort returns an unbaked port. Every query fails until Bake.
func NewGridPort() *GridPort {
	return &GridPort{
		agents: make(map[string]*route),
	}
}

// Bake copies the walkable surface out of grid and drops existing routes
func (p *GridPort) Bake(grid Grid) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.agents = make(map[string]*route)
	if grid == nil || grid.CorridorWidth() <= 0 {
		p.baked = false
		return
	}

	p.cols, p.rows = grid.Columns(), grid.Rows()
	p.scale = float64(grid.CorridorWidth())
	p.open = make([]bool, p.cols*p.rows)
	for y := 0; y < p.rows; y++ {
		for x := 0; x < p.cols; x++ {
			p.open[y*p.cols+x] = grid.IsOpen(maze.Cell{X: x, Y: y})
		}
	}
	p.baked = true
}

// Baked reports whether Bake has run with a usable grid
func (p *GridPort) Baked() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.baked
}

func (p *GridPort) cellOf(v Vec) maze.Cell {
	return maze.Cell{
		X: int(math.Round(v.X / p.scale)),
		Y: int(math.Round(v.Y / p.scale)),
	}
}

func (p *GridPort) center(c maze.Cell) Vec {
	return Vec{X: float64(c.X) * p.scale, Y: float64(c.Y) * p.scale}
}

func (p *GridPort) walkable(c maze.Cell) bool {
	if c.X < 0 || c.Y < 0 || c.X >= p.cols || c.Y >= p.rows {
		return false
	}
	return p.open[c.Y*p.cols+c.X]
}

// SamplePoint returns the center of the walkable cell nearest to near,
// provided it lies within radius
func (p *GridPort) SamplePoint(ctx context.Context, near Vec, radius float64) (Vec, bool) {
	if ctx.Err() != nil || radius < 0 {
		return Vec{}, false
	}

	p.mu.RLock()
	defer p.mu.RUnlock()
	if !p.baked {
		return Vec{}, false
	}

	origin := p.cellOf(near)
	reach := int(math.Ceil(radius/p.scale)) + 1

	best, bestDist, found := Vec{}, math.Inf(1), false
	for dy := -reach; dy <= reach; dy++ {
		for dx := -reach; dx <= reach; dx++ {
			c := maze.Cell{X: origin.X + dx, Y: origin.Y + dy}
			if !p.walkable(c) {
				continue
			}
			pt := p.center(c)
			if d := pt.Distance(near); d <= radius && d < bestDist {
				best, bestDist, found = pt, d, true
			}
		}
	}
	return best, found
}

// SetDestination records to as the agent's goal. The path is planned on
// the next Step.
func (p *GridPort) SetDestination(agentID string, to Vec) {
	p.mu.Lock()
	defer p.mu.Unlock()

	r, ok := p.agents[agentID]
	if !ok {
		r = &route{}
		p.agents[agentID] = r
	}
	if r.destination == to && r.waypoints != nil {
		return
	}
	r.destination = to
	r.waypoints = nil
}

// Destination returns the agent's current goal
func (p *GridPort) Destination(agentID string) (Vec, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	r, ok := p.agents[agentID]
	if !ok {
		return Vec{}, false
	}
	return r.destination, true
}

// Forget drops an agent's route
func (p *GridPort) Forget(agentID string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.agents, agentID)
}

// Step advances an agent standing at from toward its destination by
// speed*dt along a grid path and returns the new position. Without a
// destination or a path the agent stays put.
func (p *GridPort) Step(agentID string, from Vec, speed, dt float64) Vec {
	p.mu.Lock()
	defer p.mu.Unlock()

	r, ok := p.agents[agentID]
	if !ok || !p.baked || speed <= 0 || dt <= 0 {
		return from
	}

	goal := p.cellOf(r.destination)
	if r.waypoints == nil || r.goal != goal {
		path := p.path(p.cellOf(from), goal)
		if path == nil {
			return from
		}
		r.goal = goal
		r.waypoints = make([]Vec, 0, len(path))
		// the first cell is where the agent already stands
		for _, c := range path[1:] {
			r.waypoints = append(r.waypoints, p.center(c))
		}
		r.waypoints = append(r.waypoints, r.destination)
	}

	pos := from
	budget := speed * dt
	for budget > 0 && len(r.waypoints) > 0 {
		next := r.waypoints[0]
		d := pos.Distance(next)
		if d > budget {
			pos = pos.MoveToward(next, budget)
			break
		}
		pos = next
		budget -= d
		r.waypoints = r.waypoints[1:]
	}
	return pos
}

// Visible reports whether the segment between from and to stays on
// walkable cells and within maxDistance
func (p *GridPort) Visible(from, to Vec, maxDistance float64) bool {
	if from.Distance(to) > maxDistance {
		return false
	}

	p.mu.RLock()
	defer p.mu.RUnlock()
	if !p.baked {
		return false
	}
	return p.lineClear(from, to)
}

// lineClear walks every cell the segment crosses. A segment passing
// exactly through a cell corner must clear both cells beside it.
func (p *GridPort) lineClear(from, to Vec) bool {
	// shift into cell space where cell c covers [c, c+1)
	x0, y0 := from.X/p.scale+0.5, from.Y/p.scale+0.5
	x1, y1 := to.X/p.scale+0.5, to.Y/p.scale+0.5

	cx, cy := int(math.Floor(x0)), int(math.Floor(y0))
	ex, ey := int(math.Floor(x1)), int(math.Floor(y1))
	stepX, tMaxX, tDeltaX := traversal(x0, x1)
	stepY, tMaxY, tDeltaY := traversal(y0, y1)

	remaining := absInt(ex-cx) + absInt(ey-cy)
	for {
		if !p.walkable(maze.Cell{X: cx, Y: cy}) {
			return false
		}
		if remaining <= 0 {
			return true
		}

		switch {
		case tMaxX < tMaxY:
			cx += stepX
			tMaxX += tDeltaX
			remaining--
		case tMaxY < tMaxX:
			cy += stepY
			tMaxY += tDeltaY
			remaining--
		default:
			if !p.walkable(maze.Cell{X: cx + stepX, Y: cy}) || !p.walkable(maze.Cell{X: cx, Y: cy + stepY}) {
				return false
			}
			cx += stepX
			cy += stepY
			tMaxX += tDeltaX
			tMaxY += tDeltaY
			remaining -= 2
		}
	}
}

// traversal returns the step direction along one axis, the segment
// parameter of the first cell boundary and the parameter span of a cell
func traversal(from, to float64) (step int, tMax, tDelta float64) {
	d := to - from
	switch {
	case d > 0:
		return 1, (math.Floor(from) + 1 - from) / d, 1 / d
	case d < 0:
		return -1, (from - math.Floor(from)) / -d, 1 / -d
	default:
		return 0, math.Inf(1), math.Inf(1)
	}
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// Compile-time checks
var (
	_ Port   = (*GridPort)(nil)
	_ Prober = (*GridPort)(nil)
)
