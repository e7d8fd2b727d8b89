// Package v1alpha1 handles the maze gRPC service interface
package v1alpha1

import (
	"context"

	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/maze-api/internal/errors"
	"github.com/KirkDiggler/maze-api/internal/orchestrators/simulation"
)

// HandlerConfig holds dependencies for the maze handler
type HandlerConfig struct {
	MazeService simulation.Service
}

// Validate ensures all required dependencies are present
func (c *HandlerConfig) Validate() error {
	if c.MazeService == nil {
		return errors.InvalidArgument("maze service is required")
	}
	return nil
}

// Handler implements MazeServiceServer
type Handler struct {
	UnimplementedMazeServiceServer
	mazeService simulation.Service
}

// NewHandler creates a new maze handler with the given configuration
func NewHandler(cfg *HandlerConfig) (*Handler, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Handler{
		mazeService: cfg.MazeService,
	}, nil
}

// CreateMaze generates, populates and stores a maze
func (h *Handler) CreateMaze(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in CreateMazeRequest
	if err := Decode(req, &in); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.mazeService.CreateMaze(ctx, &simulation.CreateMazeInput{
		Config:     in.Config,
		Population: in.Population,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return respond(&CreateMazeResponse{
		MazeID:            out.MazeID,
		Seed:              out.Seed,
		Render:            out.Render,
		Columns:           out.Columns,
		Rows:              out.Rows,
		OpenCells:         out.OpenCells,
		SkippedRooms:      out.SkippedRooms,
		DisconnectedRooms: out.DisconnectedRooms,
		Placement:         convertPlacement(out.Placement),
		PlacementWarning:  out.PlacementWarning,
	})
}

// GetMaze returns a stored maze
func (h *Handler) GetMaze(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in MazeRequest
	if err := Decode(req, &in); err != nil {
		return nil, errors.ToGRPCError(err)
	}
	if in.MazeID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("maze_id is required"))
	}

	out, err := h.mazeService.GetMaze(ctx, &simulation.GetMazeInput{MazeID: in.MazeID})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return respond(&GetMazeResponse{
		MazeID:     out.MazeID,
		Config:     out.Config,
		Population: out.Population,
		Render:     out.Render,
		OpenCells:  out.OpenCells,
	})
}

// DeleteMaze removes a stored maze
func (h *Handler) DeleteMaze(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in MazeRequest
	if err := Decode(req, &in); err != nil {
		return nil, errors.ToGRPCError(err)
	}
	if in.MazeID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("maze_id is required"))
	}

	out, err := h.mazeService.DeleteMaze(ctx, &simulation.DeleteMazeInput{MazeID: in.MazeID})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return respond(&DeleteMazeResponse{Deleted: out.Deleted})
}

// ListMazes lists stored maze IDs
func (h *Handler) ListMazes(ctx context.Context, _ *structpb.Struct) (*structpb.Struct, error) {
	out, err := h.mazeService.ListMazes(ctx, &simulation.ListMazesInput{})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	ids := out.MazeIDs
	if ids == nil {
		ids = []string{}
	}
	return respond(&ListMazesResponse{MazeIDs: ids})
}

// Simulate runs the enemy simulation
func (h *Handler) Simulate(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in SimulateRequest
	if err := Decode(req, &in); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.mazeService.Simulate(ctx, &simulation.SimulateInput{
		MazeID:      in.MazeID,
		Config:      in.Config,
		Population:  in.Population,
		Ticks:       in.Ticks,
		Delta:       in.Delta,
		Parallel:    in.Parallel,
		AgentConfig: in.AgentConfig,
		PlayerSpeed: in.PlayerSpeed,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return respond(&SimulateResponse{
		MazeID:   out.MazeID,
		TicksRun: out.TicksRun,
		Elapsed:  out.Elapsed,
		Agents:   convertAgents(out.Agents),
		Player:   convertPlayer(out.Player),
		Won:      out.Won,
		Warnings: out.Warnings,
	})
}

func respond(resp any) (*structpb.Struct, error) {
	out, err := Encode(resp)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return out, nil
}
