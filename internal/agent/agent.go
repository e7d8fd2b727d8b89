// Package agent implements the enemy behavior state machine.
//
// An Agent patrols random free cells, chases the player once it can see
// them and attacks inside attack range. Each agent owns its state and is
// only mutated by its own Tick, so distinct agents may tick in parallel
// while the grid and registry are read-only.
package agent

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/core"

	"github.com/KirkDiggler/maze-api/internal/errors"
	"github.com/KirkDiggler/maze-api/internal/maze"
	"github.com/KirkDiggler/maze-api/internal/navigation"
	"github.com/KirkDiggler/maze-api/internal/pkg/idgen"
	"github.com/KirkDiggler/maze-api/internal/pkg/rng"
)

//go:generate mockgen -destination=mock/mock_agent.go -package=agentmock github.com/KirkDiggler/maze-api/internal/agent Player,CellSource

// EntityType is the core.Entity type of every agent
const EntityType = "enemy"

// Player is the read side of the player the agent hunts plus the damage hook
type Player interface {
	// Position returns false while the player is not available
	Position() (navigation.Vec, bool)
	IsHiding() bool
	IsAlive() bool
	TakeDamage(amount float64)
}

// CellSource provides candidate patrol points
type CellSource interface {
	FreeCells() []maze.Coord
}

// Mode is the behavior state of an agent
type Mode string

const (
	ModePatrolling Mode = "patrolling"
	ModeChasing    Mode = "chasing"
	// ModeIdle agents never move or change state again
	ModeIdle Mode = "idle"
)

// State is the per-agent mutable state
type State struct {
	Mode           Mode           `json:"mode"`
	CurrentTarget  navigation.Vec `json:"current_target"`
	WaitTimer      float64        `json:"wait_timer"`
	LastAttackTime float64        `json:"last_attack_time"`
}

// Deps are the collaborators an agent is wired to at spawn
type Deps struct {
	Player      Player
	Cells       CellSource
	Nav         navigation.Port
	Prober      navigation.Prober
	Source      rng.Source
	IDGenerator idgen.Generator
	Logger      *slog.Logger
}

// Agent is one enemy
type Agent struct {
	id     string
	cfg    Config
	player Player
	nav    navigation.Port
	prober navigation.Prober
	source rng.Source
	logger *slog.Logger

	patrolPoints []maze.Coord
	position     navigation.Vec
	state        State
	wasChasing   bool
	canSee       bool
	attacks      int
	redraws      int
}

// Spawn creates an agent at initial and draws its first patrol target.
// An agent that finds no usable patrol point is returned idle with a
// warning logged rather than failing.
func Spawn(initial navigation.Vec, cfg Config, deps Deps) (*Agent, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	vb := errors.NewValidationBuilder()
	if deps.Nav == nil {
		vb.RequiredField("deps.nav")
	}
	if deps.Prober == nil {
		vb.RequiredField("deps.prober")
	}
	if deps.Source == nil {
		vb.RequiredField("deps.source")
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	if deps.IDGenerator == nil {
		deps.IDGenerator = idgen.NewUUID(EntityType)
	}
	if deps.Logger == nil {
		deps.Logger = slog.Default()
	}

	a := &Agent{
		id:       deps.IDGenerator.Generate(),
		cfg:      cfg,
		player:   deps.Player,
		nav:      deps.Nav,
		prober:   deps.Prober,
		source:   deps.Source,
		position: initial,
		state:    State{Mode: ModePatrolling},
	}
	a.logger = deps.Logger.With("agent_id", a.id)

	if deps.Cells != nil {
		a.patrolPoints = deps.Cells.FreeCells()
	}
	if len(a.patrolPoints) == 0 {
		a.logger.Warn("enemy has no patrol points, staying idle")
		a.state.Mode = ModeIdle
		return a, nil
	}

	if err := a.drawPatrolTarget(context.Background()); err != nil {
		a.goIdle(err)
	}
	return a, nil
}

// GetID implements core.Entity
func (a *Agent) GetID() string {
	return a.id
}

// GetType implements core.Entity
func (a *Agent) GetType() string {
	return EntityType
}

// Config returns the tuning the agent was spawned with
func (a *Agent) Config() Config {
	return a.cfg
}

// State returns a copy of the agent state
func (a *Agent) State() State {
	return a.state
}

// Mode returns the current behavior mode
func (a *Agent) Mode() Mode {
	return a.state.Mode
}

// Position returns where the agent stands
func (a *Agent) Position() navigation.Vec {
	return a.position
}

// MoveTo places the agent. The driver calls it after applying movement.
func (a *Agent) MoveTo(pos navigation.Vec) {
	a.position = pos
}

// CanSeePlayer returns the visibility computed by the last tick
func (a *Agent) CanSeePlayer() bool {
	return a.canSee
}

// Attacks returns how many attacks the agent has landed
func (a *Agent) Attacks() int {
	return a.attacks
}

// PatrolDraws returns how many patrol targets the agent has drawn
func (a *Agent) PatrolDraws() int {
	return a.redraws
}

func (a *Agent) goIdle(err error) {
	a.state.Mode = ModeIdle
	a.logger.Warn("enemy cannot reach a patrol point, staying idle",
		"error", err,
		"retries", a.cfg.MaxTargetRetries)
}

var _ core.Entity = (*Agent)(nil)
