package v1alpha1

import (
	"encoding/json"

	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/maze-api/internal/agent"
	"github.com/KirkDiggler/maze-api/internal/errors"
	"github.com/KirkDiggler/maze-api/internal/maze"
	"github.com/KirkDiggler/maze-api/internal/navigation"
	"github.com/KirkDiggler/maze-api/internal/orchestrators/simulation"
	"github.com/KirkDiggler/maze-api/internal/spatial"
)

// CreateMazeRequest is the CreateMaze payload
type CreateMazeRequest struct {
	Config     maze.Config           `json:"config"`
	Population simulation.Population `json:"population"`
}

// MazeRequest names a stored maze
type MazeRequest struct {
	MazeID string `json:"maze_id"`
}

// SimulateRequest is the Simulate payload. Either MazeID or Config is set.
type SimulateRequest struct {
	MazeID      string                 `json:"maze_id,omitempty"`
	Config      *maze.Config           `json:"config,omitempty"`
	Population  *simulation.Population `json:"population,omitempty"`
	Ticks       int                    `json:"ticks"`
	Delta       float64                `json:"delta,omitempty"`
	Parallel    bool                   `json:"parallel,omitempty"`
	AgentConfig *agent.Config          `json:"agent_config,omitempty"`
	PlayerSpeed float64                `json:"player_speed,omitempty"`
}

// Placement lists where entities were put, in world coordinates
type Placement struct {
	Collectibles []maze.Coord `json:"collectibles"`
	Enemies      []maze.Coord `json:"enemies"`
	Furniture    []maze.Coord `json:"furniture"`
}

// CreateMazeResponse describes a stored maze
type CreateMazeResponse struct {
	MazeID            string    `json:"maze_id"`
	Seed              int64     `json:"seed"`
	Render            string    `json:"render"`
	Columns           int       `json:"columns"`
	Rows              int       `json:"rows"`
	OpenCells         int       `json:"open_cells"`
	SkippedRooms      int       `json:"skipped_rooms"`
	DisconnectedRooms int       `json:"disconnected_rooms"`
	Placement         Placement `json:"placement"`
	PlacementWarning  string    `json:"placement_warning,omitempty"`
}

// GetMazeResponse is a stored maze
type GetMazeResponse struct {
	MazeID     string                `json:"maze_id"`
	Config     maze.Config           `json:"config"`
	Population simulation.Population `json:"population"`
	Render     string                `json:"render"`
	OpenCells  int                   `json:"open_cells"`
}

// DeleteMazeResponse reports a removal
type DeleteMazeResponse struct {
	Deleted bool `json:"deleted"`
}

// ListMazesResponse lists stored maze IDs
type ListMazesResponse struct {
	MazeIDs []string `json:"maze_ids"`
}

// Agent is the final state of one enemy
type Agent struct {
	ID             string         `json:"id"`
	Mode           string         `json:"mode"`
	Position       navigation.Vec `json:"position"`
	CurrentTarget  navigation.Vec `json:"current_target"`
	WaitTimer      float64        `json:"wait_timer"`
	LastAttackTime float64        `json:"last_attack_time"`
	Attacks        int            `json:"attacks"`
	PatrolDraws    int            `json:"patrol_draws"`
}

// Player is the final state of the player
type Player struct {
	ID        string         `json:"id"`
	Position  navigation.Vec `json:"position"`
	Health    float64        `json:"health"`
	MaxHealth float64        `json:"max_health"`
	Alive     bool           `json:"alive"`
	Collected int            `json:"collected"`
}

// SimulateResponse describes a finished run
type SimulateResponse struct {
	MazeID   string   `json:"maze_id,omitempty"`
	TicksRun int      `json:"ticks_run"`
	Elapsed  float64  `json:"elapsed"`
	Agents   []Agent  `json:"agents"`
	Player   Player   `json:"player"`
	Won      bool     `json:"won"`
	Warnings []string `json:"warnings,omitempty"`
}

// Decode unpacks a Struct payload into one of the request types
func Decode(in *structpb.Struct, out any) error {
	if in == nil {
		return errors.InvalidArgument("request is required")
	}
	raw, err := in.MarshalJSON()
	if err != nil {
		return errors.WrapWithCode(err, errors.CodeInvalidArgument, "request is not valid JSON")
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return errors.WrapWithCode(err, errors.CodeInvalidArgument, "request does not match the method")
	}
	return nil
}

// Encode packs one of the response types into a Struct payload
func Encode(in any) (*structpb.Struct, error) {
	raw, err := json.Marshal(in)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode response")
	}
	out := &structpb.Struct{}
	if err := out.UnmarshalJSON(raw); err != nil {
		return nil, errors.Wrap(err, "failed to encode response")
	}
	return out, nil
}

func convertPlacement(p *spatial.Placement) Placement {
	if p == nil {
		return Placement{}
	}
	return Placement{
		Collectibles: nonNil(p.Collectibles),
		Enemies:      nonNil(p.Enemies),
		Furniture:    nonNil(p.Furniture),
	}
}

func convertAgents(reports []simulation.AgentReport) []Agent {
	agents := make([]Agent, 0, len(reports))
	for _, r := range reports {
		agents = append(agents, Agent{
			ID:             r.ID,
			Mode:           string(r.Mode),
			Position:       r.Position,
			CurrentTarget:  r.State.CurrentTarget,
			WaitTimer:      r.State.WaitTimer,
			LastAttackTime: r.State.LastAttackTime,
			Attacks:        r.Attacks,
			PatrolDraws:    r.PatrolDraws,
		})
	}
	return agents
}

func convertPlayer(r simulation.PlayerReport) Player {
	return Player{
		ID:        r.ID,
		Position:  r.Position,
		Health:    r.Health,
		MaxHealth: r.MaxHealth,
		Alive:     r.Alive,
		Collected: r.Collected,
	}
}

func nonNil(coords []maze.Coord) []maze.Coord {
	if coords == nil {
		return []maze.Coord{}
	}
	return coords
}
