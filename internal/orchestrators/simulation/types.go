package simulation

import (
	"github.com/KirkDiggler/maze-api/internal/agent"
	"github.com/KirkDiggler/maze-api/internal/maze"
	"github.com/KirkDiggler/maze-api/internal/navigation"
	"github.com/KirkDiggler/maze-api/internal/repositories/mazes"
	"github.com/KirkDiggler/maze-api/internal/spatial"
)

// Population is re-exported so callers need not import the repository
type Population = mazes.Population

// CreateMazeInput defines the request for generating and storing a maze
type CreateMazeInput struct {
	Config     maze.Config
	Population Population
}

// CreateMazeOutput describes the generated maze
type CreateMazeOutput struct {
	MazeID string
	// Seed is the seed the maze was generated with, drawn when the
	// request left it unset
	Seed              int64
	Render            string
	Columns           int
	Rows              int
	OpenCells         int
	SkippedRooms      int
	DisconnectedRooms int
	Placement         *spatial.Placement
	// PlacementWarning is set when free cells ran out during population
	PlacementWarning string
}

// GetMazeInput identifies a stored maze
type GetMazeInput struct {
	MazeID string
}

// GetMazeOutput contains a stored maze
type GetMazeOutput struct {
	MazeID     string
	Config     maze.Config
	Population Population
	Render     string
	OpenCells  int
}

// DeleteMazeInput identifies a stored maze
type DeleteMazeInput struct {
	MazeID string
}

// DeleteMazeOutput reports whether a maze was removed
type DeleteMazeOutput struct {
	Deleted bool
}

// ListMazesInput is reserved for filters
type ListMazesInput struct{}

// ListMazesOutput lists stored maze IDs
type ListMazesOutput struct {
	MazeIDs []string
}

// SimulateInput defines a simulation run. Either MazeID names a stored
// maze or Config describes one to generate on the fly.
type SimulateInput struct {
	MazeID     string
	Config     *maze.Config
	Population *Population

	Ticks int
	// Delta is the seconds per tick, DefaultDelta when zero
	Delta float64
	// Parallel ticks agents on their own goroutines
	Parallel bool

	AgentConfig *agent.Config
	// PlayerSpeed is how fast the player walks between collectibles
	PlayerSpeed float64
}

// AgentReport is the final state of one enemy
type AgentReport struct {
	ID          string
	Mode        agent.Mode
	Position    navigation.Vec
	State       agent.State
	Attacks     int
	PatrolDraws int
}

// PlayerReport is the final state of the player
type PlayerReport struct {
	ID        string
	Position  navigation.Vec
	Health    float64
	MaxHealth float64
	Alive     bool
	Collected int
}

// SimulateOutput describes a finished run
type SimulateOutput struct {
	MazeID   string
	TicksRun int
	Elapsed  float64
	Agents   []AgentReport
	Player   PlayerReport
	// Won is set when the player collected every collectible
	Won      bool
	Warnings []string
}
