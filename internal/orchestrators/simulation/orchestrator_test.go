package simulation_test

import (
	"context"
	"math"
	"strings"
	"testing"

	mock_dice "github.com/KirkDiggler/rpg-toolkit/dice/mock"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/maze-api/internal/agent"
	"github.com/KirkDiggler/maze-api/internal/errors"
	"github.com/KirkDiggler/maze-api/internal/maze"
	"github.com/KirkDiggler/maze-api/internal/orchestrators/simulation"
	"github.com/KirkDiggler/maze-api/internal/pkg/clock"
	"github.com/KirkDiggler/maze-api/internal/pkg/idgen"
	"github.com/KirkDiggler/maze-api/internal/player"
	"github.com/KirkDiggler/maze-api/internal/repositories/mazes"
	mazesmock "github.com/KirkDiggler/maze-api/internal/repositories/mazes/mock"
	"github.com/KirkDiggler/maze-api/internal/testutils"
)

type OrchestratorTestSuite struct {
	suite.Suite
	ctx          context.Context
	repo         mazes.Repository
	orchestrator simulation.Service
}

func TestOrchestratorTestSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorTestSuite))
}

func (s *OrchestratorTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.repo = mazes.NewInMemoryRepository(clock.New())
	s.orchestrator = s.newOrchestrator()
}

func (s *OrchestratorTestSuite) newOrchestrator() simulation.Service {
	o, err := simulation.NewOrchestrator(&simulation.Config{
		Repository:  s.repo,
		IDGenerator: idgen.NewSequential("maze"),
	})
	s.Require().NoError(err)
	return o
}

func (s *OrchestratorTestSuite) TestNewOrchestratorValidation() {
	_, err := simulation.NewOrchestrator(nil)
	s.True(errors.IsInvalidArgument(err))

	_, err = simulation.NewOrchestrator(&simulation.Config{})
	s.True(errors.IsInvalidArgument(err))

	bad := agent.DefaultConfig()
	bad.MaxTargetRetries = 0
	_, err = simulation.NewOrchestrator(&simulation.Config{
		Repository:  s.repo,
		IDGenerator: idgen.NewSequential("maze"),
		AgentConfig: bad,
	})
	s.True(errors.IsConfiguration(err))
}

func (s *OrchestratorTestSuite) TestCreateGetDelete() {
	created, err := s.orchestrator.CreateMaze(s.ctx, &simulation.CreateMazeInput{
		Config:     testutils.CorridorConfig(20, 20, 4),
		Population: simulation.Population{Collectibles: 2, Enemies: 1},
	})
	s.Require().NoError(err)
	s.Equal("maze_1", created.MazeID)
	s.Equal(12, created.Columns)
	s.Equal(12, created.Rows)
	s.Equal(49, created.OpenCells)
	s.Len(created.Placement.Collectibles, 2)
	s.Len(created.Placement.Enemies, 1)
	s.Empty(created.PlacementWarning)

	got, err := s.orchestrator.GetMaze(s.ctx, &simulation.GetMazeInput{MazeID: created.MazeID})
	s.Require().NoError(err)
	s.Equal(created.Render, got.Render)
	s.Equal(created.OpenCells, got.OpenCells)
	s.Equal(simulation.Population{Collectibles: 2, Enemies: 1}, got.Population)

	list, err := s.orchestrator.ListMazes(s.ctx, &simulation.ListMazesInput{})
	s.Require().NoError(err)
	s.Equal([]string{"maze_1"}, list.MazeIDs)

	deleted, err := s.orchestrator.DeleteMaze(s.ctx, &simulation.DeleteMazeInput{MazeID: created.MazeID})
	s.Require().NoError(err)
	s.True(deleted.Deleted)

	_, err = s.orchestrator.GetMaze(s.ctx, &simulation.GetMazeInput{MazeID: created.MazeID})
	s.True(errors.IsNotFound(err))

	_, err = s.orchestrator.DeleteMaze(s.ctx, &simulation.DeleteMazeInput{MazeID: created.MazeID})
	s.True(errors.IsNotFound(err))
}

func (s *OrchestratorTestSuite) TestCreateMazeReportsPlacementShortfall() {
	// one open cell goes to the player
	created, err := s.orchestrator.CreateMaze(s.ctx, &simulation.CreateMazeInput{
		Config:     testutils.SmallMazeConfig(),
		Population: simulation.Population{Collectibles: 30},
	})
	s.Require().NoError(err)
	s.Equal(testutils.SmallMazeOpenCells, created.OpenCells)
	s.Len(created.Placement.Collectibles, testutils.SmallMazeOpenCells-1)
	s.Contains(created.PlacementWarning, "free cells")
}

func (s *OrchestratorTestSuite) TestCreateMazeInvalidInput() {
	testCases := []struct {
		name  string
		input *simulation.CreateMazeInput
		check func(error) bool
	}{
		{
			name:  "nil input",
			input: nil,
			check: errors.IsInvalidArgument,
		},
		{
			name: "negative population",
			input: &simulation.CreateMazeInput{
				Config:     testutils.SmallMazeConfig(),
				Population: simulation.Population{Enemies: -1},
			},
			check: errors.IsInvalidArgument,
		},
		{
			name:  "zero corridor width",
			input: &simulation.CreateMazeInput{Config: maze.Config{Width: 10, Height: 10}},
			check: errors.IsConfiguration,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, err := s.orchestrator.CreateMaze(s.ctx, tc.input)
			s.Require().Error(err)
			s.True(tc.check(err), "unexpected error %v", err)
		})
	}
}

func (s *OrchestratorTestSuite) TestCreateMazeRepositoryFailure() {
	ctrl := gomock.NewController(s.T())
	repo := mazesmock.NewMockRepository(ctrl)
	repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil, errors.Unavailable("redis is down"))

	o, err := simulation.NewOrchestrator(&simulation.Config{
		Repository:  repo,
		IDGenerator: idgen.NewSequential("maze"),
	})
	s.Require().NoError(err)

	_, err = o.CreateMaze(s.ctx, &simulation.CreateMazeInput{Config: testutils.SmallMazeConfig()})
	s.Require().Error(err)
	s.Equal(errors.CodeUnavailable, errors.GetCode(err))
}

func (s *OrchestratorTestSuite) TestUnseededMazeRecordsDrawnSeed() {
	ctrl := gomock.NewController(s.T())
	roller := mock_dice.NewMockRoller(ctrl)
	roller.EXPECT().Roll(math.MaxInt32).Return(4242, nil)

	o, err := simulation.NewOrchestrator(&simulation.Config{
		Repository:  s.repo,
		IDGenerator: idgen.NewSequential("maze"),
		Roller:      roller,
	})
	s.Require().NoError(err)

	cfg := testutils.CorridorConfig(20, 20, 0)
	created, err := o.CreateMaze(s.ctx, &simulation.CreateMazeInput{Config: cfg})
	s.Require().NoError(err)
	s.Equal(int64(4242), created.Seed)

	got, err := o.GetMaze(s.ctx, &simulation.GetMazeInput{MazeID: created.MazeID})
	s.Require().NoError(err)
	s.Equal(int64(4242), got.Config.RandomSeed)

	cfg.RandomSeed = 4242
	replay, err := maze.GenerateWithSeed(cfg)
	s.Require().NoError(err)
	s.Equal(created.Render, replay.String())
}

func (s *OrchestratorTestSuite) TestSeededMazeSkipsRoller() {
	ctrl := gomock.NewController(s.T())
	roller := mock_dice.NewMockRoller(ctrl)

	o, err := simulation.NewOrchestrator(&simulation.Config{
		Repository:  s.repo,
		IDGenerator: idgen.NewSequential("maze"),
		Roller:      roller,
	})
	s.Require().NoError(err)

	created, err := o.CreateMaze(s.ctx, &simulation.CreateMazeInput{Config: testutils.CorridorConfig(20, 20, 4)})
	s.Require().NoError(err)
	s.Equal(int64(4), created.Seed)
}

func (s *OrchestratorTestSuite) TestUnseededSimulateDrawsSeed() {
	ctrl := gomock.NewController(s.T())
	roller := mock_dice.NewMockRoller(ctrl)
	roller.EXPECT().Roll(math.MaxInt32).Return(0, errors.Unavailable("no entropy"))

	o, err := simulation.NewOrchestrator(&simulation.Config{
		Repository:  s.repo,
		IDGenerator: idgen.NewSequential("maze"),
		Roller:      roller,
	})
	s.Require().NoError(err)

	_, err = o.Simulate(s.ctx, &simulation.SimulateInput{
		Config: ptr(testutils.CorridorConfig(20, 20, 0)),
		Ticks:  5,
	})
	s.Require().Error(err)
	s.Contains(err.Error(), "failed to draw maze seed")
}

func (s *OrchestratorTestSuite) TestSimulateCollectsEverything() {
	out, err := s.orchestrator.Simulate(s.ctx, &simulation.SimulateInput{
		Config:     ptr(testutils.CorridorConfig(20, 20, 3)),
		Population: &simulation.Population{Collectibles: 1},
		Ticks:      5000,
	})
	s.Require().NoError(err)
	s.True(out.Won)
	s.Equal(1, out.Player.Collected)
	s.True(out.Player.Alive)
	s.Less(out.TicksRun, 5000)
	s.Empty(out.Agents)
}

func (s *OrchestratorTestSuite) TestSimulateRunsEveryTickWithoutGoal() {
	out, err := s.orchestrator.Simulate(s.ctx, &simulation.SimulateInput{
		Config:     ptr(testutils.CorridorConfig(20, 20, 3)),
		Population: &simulation.Population{},
		Ticks:      25,
		Delta:      0.2,
	})
	s.Require().NoError(err)
	s.False(out.Won)
	s.Equal(25, out.TicksRun)
	s.InDelta(5.0, out.Elapsed, 1e-9)
}

func (s *OrchestratorTestSuite) TestSimulateStoredMaze() {
	created, err := s.orchestrator.CreateMaze(s.ctx, &simulation.CreateMazeInput{
		Config:     testutils.CorridorConfig(30, 30, 8),
		Population: simulation.Population{Collectibles: 3, Enemies: 2},
	})
	s.Require().NoError(err)

	out, err := s.orchestrator.Simulate(s.ctx, &simulation.SimulateInput{
		MazeID: created.MazeID,
		Ticks:  50,
	})
	s.Require().NoError(err)
	s.Equal(created.MazeID, out.MazeID)
	s.Require().Len(out.Agents, 2)
	for _, a := range out.Agents {
		s.NotEqual(agent.ModeIdle, a.Mode)
		s.GreaterOrEqual(a.PatrolDraws, 1)
	}
	s.Equal(player.DefaultMaxHealth, out.Player.MaxHealth)
}

func (s *OrchestratorTestSuite) TestSimulateIsDeterministic() {
	input := &simulation.SimulateInput{
		Config:     ptr(testutils.CorridorConfig(30, 30, 11)),
		Population: &simulation.Population{Collectibles: 2, Enemies: 3, Furniture: 2},
		Ticks:      200,
	}

	first, err := s.newOrchestrator().Simulate(s.ctx, input)
	s.Require().NoError(err)
	second, err := s.newOrchestrator().Simulate(s.ctx, input)
	s.Require().NoError(err)

	s.Equal(first, second)
}

func (s *OrchestratorTestSuite) TestSimulateParallel() {
	out, err := s.orchestrator.Simulate(s.ctx, &simulation.SimulateInput{
		Config:     ptr(testutils.CorridorConfig(40, 40, 5)),
		Population: &simulation.Population{Enemies: 6},
		Ticks:      100,
		Parallel:   true,
	})
	s.Require().NoError(err)
	s.Len(out.Agents, 6)
	s.LessOrEqual(out.TicksRun, 100)
	if out.TicksRun < 100 {
		s.False(out.Player.Alive)
	}
}

func (s *OrchestratorTestSuite) TestSimulateCanceled() {
	ctx, cancel := context.WithCancel(s.ctx)
	cancel()

	_, err := s.orchestrator.Simulate(ctx, &simulation.SimulateInput{
		Config: ptr(testutils.CorridorConfig(20, 20, 3)),
		Ticks:  10,
	})
	s.Require().Error(err)
	s.Equal(errors.CodeCanceled, errors.GetCode(err))
}

func (s *OrchestratorTestSuite) TestSimulateInvalidInput() {
	testCases := []struct {
		name  string
		input *simulation.SimulateInput
		check func(error) bool
		field string
	}{
		{name: "nil input", check: errors.IsInvalidArgument},
		{
			name:  "no maze",
			input: &simulation.SimulateInput{Ticks: 1},
			check: errors.IsInvalidArgument,
			field: "maze_id",
		},
		{
			name:  "no ticks",
			input: &simulation.SimulateInput{Config: ptr(testutils.SmallMazeConfig())},
			check: errors.IsInvalidArgument,
			field: "ticks",
		},
		{
			name:  "too many ticks",
			input: &simulation.SimulateInput{Config: ptr(testutils.SmallMazeConfig()), Ticks: simulation.MaxTicks + 1},
			check: errors.IsInvalidArgument,
			field: "ticks",
		},
		{
			name: "bad agent config",
			input: &simulation.SimulateInput{
				Config:      ptr(testutils.SmallMazeConfig()),
				Ticks:       1,
				AgentConfig: &agent.Config{},
			},
			check: errors.IsConfiguration,
		},
		{
			name:  "unknown maze",
			input: &simulation.SimulateInput{MazeID: "missing", Ticks: 1},
			check: errors.IsNotFound,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, err := s.orchestrator.Simulate(s.ctx, tc.input)
			s.Require().Error(err)
			s.True(tc.check(err), "unexpected error %v", err)
			if tc.field != "" {
				s.True(strings.Contains(err.Error(), tc.field), "error %q should name %s", err, tc.field)
			}
		})
	}
}

func ptr[T any](v T) *T {
	return &v
}
