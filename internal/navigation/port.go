// Package navigation defines the walkable-surface contract agents move
// through and ships a grid-backed implementation of it.
package navigation

import (
	"context"
	"math"

	"github.com/KirkDiggler/maze-api/internal/maze"
)

//go:generate mockgen -destination=mock/mock_port.go -package=navigationmock github.com/KirkDiggler/maze-api/internal/navigation Port,Prober

// Vec is a continuous world-space position
type Vec struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// VecFromCoord converts a grid-aligned world coordinate
func VecFromCoord(c maze.Coord) Vec {
	return Vec{X: float64(c.X), Y: float64(c.Y)}
}

// Sub returns v - o
func (v Vec) Sub(o Vec) Vec {
	return Vec{X: v.X - o.X, Y: v.Y - o.Y}
}

// Len returns the euclidean length of v
func (v Vec) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Distance returns the euclidean distance between v and o
func (v Vec) Distance(o Vec) float64 {
	return v.Sub(o).Len()
}

// MoveToward steps from v toward target by at most step
func (v Vec) MoveToward(target Vec, step float64) Vec {
	d := target.Sub(v)
	dist := d.Len()
	if dist <= step || dist == 0 {
		return target
	}
	return Vec{X: v.X + d.X/dist*step, Y: v.Y + d.Y/dist*step}
}

// Grid is the walkable surface a port bakes from
type Grid interface {
	Columns() int
	Rows() int
	CorridorWidth() int
	IsOpen(c maze.Cell) bool
}

// Port resolves walkable points and accepts movement destinations
type Port interface {
	// SamplePoint returns a walkable point within radius of near
	SamplePoint(ctx context.Context, near Vec, radius float64) (Vec, bool)
	// SetDestination points agentID at to
	SetDestination(agentID string, to Vec)
	// Bake refreshes the walkable surface once the grid is final
	Bake(grid Grid)
}

// Prober answers straight-line visibility queries
type Prober interface {
	// Visible reports whether a ray from from reaches to within
	// maxDistance without hitting an obstacle
	Visible(from, to Vec, maxDistance float64) bool
}
