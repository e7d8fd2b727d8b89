package v1alpha1_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/maze-api/internal/agent"
	"github.com/KirkDiggler/maze-api/internal/errors"
	"github.com/KirkDiggler/maze-api/internal/handlers/maze/v1alpha1"
	"github.com/KirkDiggler/maze-api/internal/maze"
	"github.com/KirkDiggler/maze-api/internal/navigation"
	"github.com/KirkDiggler/maze-api/internal/orchestrators/simulation"
	simulationmock "github.com/KirkDiggler/maze-api/internal/orchestrators/simulation/mock"
	"github.com/KirkDiggler/maze-api/internal/spatial"
)

type HandlerTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	mockMaze *simulationmock.MockService
	handler  *v1alpha1.Handler
	ctx      context.Context
}

func TestHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}

func (s *HandlerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockMaze = simulationmock.NewMockService(s.ctrl)
	s.ctx = context.Background()

	handler, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{
		MazeService: s.mockMaze,
	})
	s.Require().NoError(err)
	s.handler = handler
}

func (s *HandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *HandlerTestSuite) request(fields map[string]any) *structpb.Struct {
	req, err := structpb.NewStruct(fields)
	s.Require().NoError(err)
	return req
}

func (s *HandlerTestSuite) TestNewHandlerRequiresService() {
	_, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{})
	s.True(errors.IsInvalidArgument(err))

	_, err = v1alpha1.NewHandler(nil)
	s.True(errors.IsInvalidArgument(err))
}

func (s *HandlerTestSuite) TestCreateMaze() {
	s.mockMaze.EXPECT().
		CreateMaze(s.ctx, &simulation.CreateMazeInput{
			Config: maze.Config{
				Width:         10,
				Height:        10,
				CorridorWidth: 2,
				RandomSeed:    7,
			},
			Population: simulation.Population{Collectibles: 1, Enemies: 2},
		}).
		Return(&simulation.CreateMazeOutput{
			MazeID:    "maze_1",
			Render:    "###\n#.#\n###\n",
			Columns:   7,
			Rows:      7,
			OpenCells: 17,
			Placement: &spatial.Placement{
				Collectibles: []maze.Coord{{X: 2, Y: 2}},
				Enemies:      []maze.Coord{{X: 4, Y: 2}, {X: 6, Y: 6}},
			},
		}, nil)

	resp, err := s.handler.CreateMaze(s.ctx, s.request(map[string]any{
		"config": map[string]any{
			"width":          10,
			"height":         10,
			"corridor_width": 2,
			"random_seed":    7,
		},
		"population": map[string]any{"collectibles": 1, "enemies": 2},
	}))
	s.Require().NoError(err)

	fields := resp.GetFields()
	s.Equal("maze_1", fields["maze_id"].GetStringValue())
	s.Equal(float64(17), fields["open_cells"].GetNumberValue())
	placement := fields["placement"].GetStructValue().GetFields()
	s.Len(placement["enemies"].GetListValue().GetValues(), 2)
	s.Empty(placement["furniture"].GetListValue().GetValues())
	s.NotContains(fields, "placement_warning")
}

func (s *HandlerTestSuite) TestCreateMazeRejectsMalformedRequest() {
	_, err := s.handler.CreateMaze(s.ctx, s.request(map[string]any{
		"config": "not an object",
	}))
	s.Require().Error(err)
	s.Equal(codes.InvalidArgument, status.Code(err))
}

func (s *HandlerTestSuite) TestCreateMazeConfigurationError() {
	s.mockMaze.EXPECT().
		CreateMaze(s.ctx, gomock.Any()).
		Return(nil, errors.Configurationf("corridor_width must be at least 1"))

	_, err := s.handler.CreateMaze(s.ctx, s.request(map[string]any{}))
	s.Require().Error(err)
	s.Equal(codes.InvalidArgument, status.Code(err))
	s.True(errors.IsConfiguration(errors.FromGRPCError(err)))
}

func (s *HandlerTestSuite) TestGetMaze() {
	s.mockMaze.EXPECT().
		GetMaze(s.ctx, &simulation.GetMazeInput{MazeID: "maze_1"}).
		Return(&simulation.GetMazeOutput{
			MazeID:     "maze_1",
			Config:     maze.Config{Width: 10, Height: 10, CorridorWidth: 2},
			Population: simulation.Population{Furniture: 3},
			Render:     "#",
			OpenCells:  17,
		}, nil)

	resp, err := s.handler.GetMaze(s.ctx, s.request(map[string]any{"maze_id": "maze_1"}))
	s.Require().NoError(err)

	fields := resp.GetFields()
	s.Equal("maze_1", fields["maze_id"].GetStringValue())
	s.Equal(float64(2), fields["config"].GetStructValue().GetFields()["corridor_width"].GetNumberValue())
	s.Equal(float64(3), fields["population"].GetStructValue().GetFields()["furniture"].GetNumberValue())
}

func (s *HandlerTestSuite) TestGetMazeRequiresID() {
	_, err := s.handler.GetMaze(s.ctx, s.request(map[string]any{}))
	s.Equal(codes.InvalidArgument, status.Code(err))
}

func (s *HandlerTestSuite) TestGetMazeNotFound() {
	s.mockMaze.EXPECT().
		GetMaze(s.ctx, &simulation.GetMazeInput{MazeID: "gone"}).
		Return(nil, errors.NotFoundf("maze %s not found", "gone").WithMeta("maze_id", "gone"))

	_, err := s.handler.GetMaze(s.ctx, s.request(map[string]any{"maze_id": "gone"}))
	s.Equal(codes.NotFound, status.Code(err))
	s.Equal("gone", errors.GetMeta(errors.FromGRPCError(err))["maze_id"])
}

func (s *HandlerTestSuite) TestDeleteMaze() {
	s.mockMaze.EXPECT().
		DeleteMaze(s.ctx, &simulation.DeleteMazeInput{MazeID: "maze_1"}).
		Return(&simulation.DeleteMazeOutput{Deleted: true}, nil)

	resp, err := s.handler.DeleteMaze(s.ctx, s.request(map[string]any{"maze_id": "maze_1"}))
	s.Require().NoError(err)
	s.True(resp.GetFields()["deleted"].GetBoolValue())
}

func (s *HandlerTestSuite) TestListMazesEmpty() {
	s.mockMaze.EXPECT().
		ListMazes(s.ctx, &simulation.ListMazesInput{}).
		Return(&simulation.ListMazesOutput{}, nil)

	resp, err := s.handler.ListMazes(s.ctx, s.request(nil))
	s.Require().NoError(err)
	s.NotNil(resp.GetFields()["maze_ids"].GetListValue())
	s.Empty(resp.GetFields()["maze_ids"].GetListValue().GetValues())
}

func (s *HandlerTestSuite) TestSimulate() {
	cfg := agent.DefaultConfig()
	s.mockMaze.EXPECT().
		Simulate(s.ctx, &simulation.SimulateInput{
			MazeID:      "maze_1",
			Ticks:       20,
			Parallel:    true,
			AgentConfig: &cfg,
		}).
		Return(&simulation.SimulateOutput{
			MazeID:   "maze_1",
			TicksRun: 20,
			Elapsed:  2,
			Agents: []simulation.AgentReport{{
				ID:       "enemy_1",
				Mode:     agent.ModeChasing,
				Position: navigation.Vec{X: 2, Y: 4},
				State: agent.State{
					Mode:           agent.ModeChasing,
					LastAttackTime: 1.5,
				},
				Attacks:     1,
				PatrolDraws: 1,
			}},
			Player: simulation.PlayerReport{
				ID:        "player_1",
				Health:    90,
				MaxHealth: 100,
				Alive:     true,
			},
			Warnings: []string{"enemy enemy_2 is idle"},
		}, nil)

	resp, err := s.handler.Simulate(s.ctx, s.request(map[string]any{
		"maze_id":  "maze_1",
		"ticks":    20,
		"parallel": true,
		"agent_config": map[string]any{
			"detection_range":    cfg.DetectionRange,
			"chase_speed":        cfg.ChaseSpeed,
			"patrol_speed":       cfg.PatrolSpeed,
			"patrol_wait_time":   cfg.PatrolWaitTime,
			"attack_range":       cfg.AttackRange,
			"attack_damage":      cfg.AttackDamage,
			"attack_cooldown":    cfg.AttackCooldown,
			"stopping_distance":  cfg.StoppingDistance,
			"sample_radius":      cfg.SampleRadius,
			"max_target_retries": cfg.MaxTargetRetries,
		},
	}))
	s.Require().NoError(err)

	fields := resp.GetFields()
	s.Equal(float64(20), fields["ticks_run"].GetNumberValue())
	agents := fields["agents"].GetListValue().GetValues()
	s.Require().Len(agents, 1)
	enemy := agents[0].GetStructValue().GetFields()
	s.Equal("chasing", enemy["mode"].GetStringValue())
	s.Equal(1.5, enemy["last_attack_time"].GetNumberValue())
	s.Equal(float64(90), fields["player"].GetStructValue().GetFields()["health"].GetNumberValue())
	s.Len(fields["warnings"].GetListValue().GetValues(), 1)
}

func (s *HandlerTestSuite) TestSimulateCanceled() {
	s.mockMaze.EXPECT().
		Simulate(s.ctx, gomock.Any()).
		Return(nil, errors.WrapWithCode(context.Canceled, errors.CodeCanceled, "simulation canceled"))

	_, err := s.handler.Simulate(s.ctx, s.request(map[string]any{"maze_id": "maze_1", "ticks": 5}))
	s.Equal(codes.Canceled, status.Code(err))
}
