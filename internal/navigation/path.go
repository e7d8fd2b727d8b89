package navigation

import (
	"github.com/KirkDiggler/maze-api/internal/maze"
)

// Path returns the shortest walkable cell path between two points,
// nil when none exists
func (p *GridPort) Path(from, to Vec) []maze.Cell {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if !p.baked {
		return nil
	}
	return p.path(p.cellOf(from), p.cellOf(to))
}

// path runs a breadth first search. Caller holds the lock.
func (p *GridPort) path(start, goal maze.Cell) []maze.Cell {
	if !p.walkable(start) || !p.walkable(goal) {
		return nil
	}
	if start == goal {
		return []maze.Cell{start}
	}

	index := func(c maze.Cell) int { return c.Y*p.cols + c.X }
	prev := make([]int, len(p.open))
	for i := range prev {
		prev[i] = -1
	}
	prev[index(start)] = index(start)

	queue := []maze.Cell{start}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if cur == goal {
			break
		}
		for _, d := range [4]maze.Cell{{X: 0, Y: -1}, {X: 0, Y: 1}, {X: -1, Y: 0}, {X: 1, Y: 0}} {
			n := maze.Cell{X: cur.X + d.X, Y: cur.Y + d.Y}
			if !p.walkable(n) || prev[index(n)] != -1 {
				continue
			}
			prev[index(n)] = index(cur)
			queue = append(queue, n)
		}
	}

	if prev[index(goal)] == -1 {
		return nil
	}

	var path []maze.Cell
	for at := index(goal); ; at = prev[at] {
		path = append(path, maze.Cell{X: at % p.cols, Y: at / p.cols})
		if at == index(start) {
			break
		}
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
