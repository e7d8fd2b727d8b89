// Package simulation generates mazes, stores their layouts and runs the
// enemy behavior simulation over them
package simulation

//go:generate mockgen -destination=mock/mock_service.go -package=simulationmock github.com/KirkDiggler/maze-api/internal/orchestrators/simulation Service

import (
	"context"
	"log/slog"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/maze-api/internal/agent"
	"github.com/KirkDiggler/maze-api/internal/errors"
	"github.com/KirkDiggler/maze-api/internal/maze"
	"github.com/KirkDiggler/maze-api/internal/pkg/idgen"
	"github.com/KirkDiggler/maze-api/internal/pkg/rng"
	"github.com/KirkDiggler/maze-api/internal/repositories/mazes"
)

// Simulation limits and defaults
const (
	DefaultDelta       = 0.1
	DefaultPlayerSpeed = 2.0
	MaxTicks           = 100_000
)

// Service defines the maze and simulation operations
type Service interface {
	// CreateMaze generates, populates and stores a maze
	CreateMaze(ctx context.Context, input *CreateMazeInput) (*CreateMazeOutput, error)

	// GetMaze returns a stored maze
	GetMaze(ctx context.Context, input *GetMazeInput) (*GetMazeOutput, error)

	// DeleteMaze removes a stored maze
	DeleteMaze(ctx context.Context, input *DeleteMazeInput) (*DeleteMazeOutput, error)

	// ListMazes returns the IDs of stored mazes
	ListMazes(ctx context.Context, input *ListMazesInput) (*ListMazesOutput, error)

	// Simulate runs the tick loop over a stored or ad hoc maze
	Simulate(ctx context.Context, input *SimulateInput) (*SimulateOutput, error)
}

// Config holds the dependencies for the simulation orchestrator
type Config struct {
	Repository  mazes.Repository
	IDGenerator idgen.Generator

	// AgentConfig is the enemy tuning used when a run does not override it.
	// Zero value means agent.DefaultConfig.
	AgentConfig agent.Config
	// TTL is how long stored mazes live, mazes.DefaultTTL when zero
	TTL time.Duration
	// Roller draws seeds for configs that leave random_seed at zero,
	// dice.DefaultRoller when nil
	Roller dice.Roller
	Logger *slog.Logger
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Repository == nil {
		vb.RequiredField("Repository")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}

	return vb.Build()
}

type orchestrator struct {
	repo     mazes.Repository
	idGen    idgen.Generator
	agentCfg agent.Config
	ttl      time.Duration
	roller   dice.Roller
	logger   *slog.Logger
}

// NewOrchestrator creates a new simulation orchestrator
func NewOrchestrator(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	agentCfg := cfg.AgentConfig
	if agentCfg == (agent.Config{}) {
		agentCfg = agent.DefaultConfig()
	}
	if err := agentCfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid agent config")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	roller := cfg.Roller
	if roller == nil {
		roller = dice.DefaultRoller
	}

	return &orchestrator{
		repo:     cfg.Repository,
		idGen:    cfg.IDGenerator,
		agentCfg: agentCfg,
		ttl:      cfg.TTL,
		roller:   roller,
		logger:   logger,
	}, nil
}

// seeded fills in a drawn seed when the config leaves it unset
func (o *orchestrator) seeded(cfg maze.Config) (maze.Config, error) {
	if cfg.RandomSeed != 0 {
		return cfg, nil
	}
	seed, err := rng.DrawSeed(o.roller)
	if err != nil {
		return cfg, errors.Wrap(err, "failed to draw maze seed")
	}
	cfg.RandomSeed = seed
	return cfg, nil
}

// CreateMaze generates a maze, places the requested entities and stores
// the layout. A placement shortfall is reported, not failed.
func (o *orchestrator) CreateMaze(ctx context.Context, input *CreateMazeInput) (*CreateMazeOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := validatePopulation(input.Population); err != nil {
		return nil, err
	}

	cfg, err := o.seeded(input.Config)
	if err != nil {
		return nil, err
	}

	m, err := maze.GenerateWithSeed(cfg)
	if err != nil {
		return nil, err
	}

	w, err := buildWorld(m, input.Population, o.logger)
	if err != nil {
		return nil, err
	}

	mazeID := o.idGen.Generate()
	_, err = o.repo.Save(ctx, mazes.SaveInput{
		Record: &mazes.Record{
			ID:                mazeID,
			Config:            cfg,
			Rows:              m.Snapshot(),
			Population:        input.Population,
			FurnitureHints:    m.FurnitureHints,
			OpenCells:         m.OpenCount(),
			SkippedRooms:      m.SkippedRooms,
			DisconnectedRooms: m.DisconnectedRooms,
		},
		TTL: o.ttl,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to save maze")
	}

	o.logger.Info("Maze created",
		"maze_id", mazeID,
		"columns", m.Columns(),
		"rows", m.Rows(),
		"open_cells", m.OpenCount(),
		"seed", cfg.RandomSeed,
	)

	output := &CreateMazeOutput{
		MazeID:            mazeID,
		Seed:              cfg.RandomSeed,
		Render:            m.String(),
		Columns:           m.Columns(),
		Rows:              m.Rows(),
		OpenCells:         m.OpenCount(),
		SkippedRooms:      m.SkippedRooms,
		DisconnectedRooms: m.DisconnectedRooms,
		Placement:         w.placement,
	}
	if w.warning != nil {
		output.PlacementWarning = w.warning.Error()
	}
	return output, nil
}

// GetMaze loads a stored maze
func (o *orchestrator) GetMaze(ctx context.Context, input *GetMazeInput) (*GetMazeOutput, error) {
	if input == nil || input.MazeID == "" {
		return nil, errors.InvalidArgument("maze ID is required")
	}

	m, record, err := o.loadMaze(ctx, input.MazeID)
	if err != nil {
		return nil, err
	}

	return &GetMazeOutput{
		MazeID:     record.ID,
		Config:     record.Config,
		Population: record.Population,
		Render:     m.String(),
		OpenCells:  m.OpenCount(),
	}, nil
}

// DeleteMaze removes a stored maze, NotFound when there was none
func (o *orchestrator) DeleteMaze(ctx context.Context, input *DeleteMazeInput) (*DeleteMazeOutput, error) {
	if input == nil || input.MazeID == "" {
		return nil, errors.InvalidArgument("maze ID is required")
	}

	out, err := o.repo.Delete(ctx, mazes.DeleteInput{ID: input.MazeID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to delete maze %s", input.MazeID)
	}
	if !out.Deleted {
		return nil, errors.NotFoundf("maze %s not found", input.MazeID)
	}

	o.logger.Info("Maze deleted", "maze_id", input.MazeID)
	return &DeleteMazeOutput{Deleted: true}, nil
}

// ListMazes lists stored maze IDs
func (o *orchestrator) ListMazes(ctx context.Context, _ *ListMazesInput) (*ListMazesOutput, error) {
	out, err := o.repo.List(ctx, mazes.ListInput{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list mazes")
	}
	return &ListMazesOutput{MazeIDs: out.IDs}, nil
}

func (o *orchestrator) loadMaze(ctx context.Context, mazeID string) (*maze.Maze, *mazes.Record, error) {
	out, err := o.repo.Get(ctx, mazes.GetInput{ID: mazeID})
	if err != nil {
		return nil, nil, err
	}

	m, err := maze.FromSnapshot(out.Record.Config, out.Record.Rows)
	if err != nil {
		return nil, nil, errors.WrapWithCode(err, errors.CodeInternal, "stored maze layout is corrupt")
	}
	m.FurnitureHints = out.Record.FurnitureHints
	m.SkippedRooms = out.Record.SkippedRooms
	m.DisconnectedRooms = out.Record.DisconnectedRooms

	return m, out.Record, nil
}

func validatePopulation(pop Population) error {
	vb := errors.NewValidationBuilder()
	errors.ValidateMin("population.collectibles", pop.Collectibles, 0, vb)
	errors.ValidateMin("population.enemies", pop.Enemies, 0, vb)
	errors.ValidateMin("population.furniture", pop.Furniture, 0, vb)
	return vb.Build()
}
