// Package spatial keeps the registry of free cells used to place
// collectibles, enemies and furniture without overlap.
package spatial

import (
	"sync"

	"github.com/KirkDiggler/maze-api/internal/maze"
	"github.com/KirkDiggler/maze-api/internal/pkg/rng"
)

// GridView is the part of a maze the registry derives from
type GridView interface {
	FreeCells() []maze.Coord
}

// Registry is an ordered view of unclaimed open cells.
// A claimed cell never reappears until the next Rebuild.
type Registry struct {
	mu      sync.RWMutex
	grid    GridView
	cells   []maze.Coord
	claimed map[maze.Coord]struct{}
}

// NewRegistry returns an empty registry. Call Rebuild once the grid is final.
func NewRegistry() *Registry {
	return &Registry{
		claimed: make(map[maze.Coord]struct{}),
	}
}

// Rebuild replaces the registry contents with the open cells of grid and
// clears every claim
func (r *Registry) Rebuild(grid GridView) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.grid = grid
	r.claimed = make(map[maze.Coord]struct{})
	r.cells = nil
	if grid != nil {
		r.cells = grid.FreeCells()
	}
}

// Refresh re-reads the current grid but keeps claimed cells out
func (r *Registry) Refresh() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.grid == nil {
		return
	}

	all := r.grid.FreeCells()
	r.cells = all[:0]
	for _, c := range all {
		if _, taken := r.claimed[c]; !taken {
			r.cells = append(r.cells, c)
		}
	}
}

// FreeCells returns a copy of the unclaimed cells in order
func (r *Registry) FreeCells() []maze.Coord {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]maze.Coord, len(r.cells))
	copy(out, r.cells)
	return out
}

// Len returns the number of unclaimed cells
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.cells)
}

// Claimed reports whether c was claimed since the last Rebuild
func (r *Registry) Claimed(c maze.Coord) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.claimed[c]
	return ok
}

// Claim removes c from the free set. It returns false when c is not free.
func (r *Registry) Claim(c maze.Coord) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, cell := range r.cells {
		if cell == c {
			r.removeAt(i)
			return true
		}
	}
	return false
}

// ClaimRandom claims the cell at a uniformly random index
func (r *Registry) ClaimRandom(src rng.Source) (maze.Coord, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.cells) == 0 {
		return maze.Coord{}, false
	}
	i := src.Intn(len(r.cells))
	c := r.cells[i]
	r.removeAt(i)
	return c, true
}

// Random returns a uniformly random free cell without claiming it
func (r *Registry) Random(src rng.Source) (maze.Coord, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if len(r.cells) == 0 {
		return maze.Coord{}, false
	}
	return r.cells[src.Intn(len(r.cells))], true
}

// removeAt keeps the remaining cells in order. Caller holds the lock.
func (r *Registry) removeAt(i int) {
	r.claimed[r.cells[i]] = struct{}{}
	r.cells = append(r.cells[:i], r.cells[i+1:]...)
}
