package client

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/maze-api/internal/handlers/maze/v1alpha1"
	"github.com/KirkDiggler/maze-api/internal/maze"
)

var createReq v1alpha1.CreateMazeRequest

var createMazeCmd = &cobra.Command{
	Use:   "create-maze",
	Short: "Generate and store a maze",
	Long: `Generate a maze on the server, populate it and store the layout. Examples:

  create-maze --width 40 --height 20 --seed 7
  create-maze --rooms 4 --min-room 2 --max-room 4 --enemies 3`,
	RunE: runCreateMaze,
}

func init() {
	f := createMazeCmd.Flags()
	f.IntVar(&createReq.Config.Width, "width", 40, "Maze width in world units")
	f.IntVar(&createReq.Config.Height, "height", 20, "Maze height in world units")
	f.IntVar(&createReq.Config.CorridorWidth, "corridor-width", 2, "Cell size in world units")
	f.IntVar(&createReq.Config.NumberOfRooms, "rooms", 0, "Number of rectangular rooms")
	f.IntVar(&createReq.Config.MinRoomSize, "min-room", 0, "Minimum room size in cells")
	f.IntVar(&createReq.Config.MaxRoomSize, "max-room", 0, "Maximum room size in cells")
	f.Int64Var(&createReq.Config.RandomSeed, "seed", 1, "Random seed")
	f.StringVar((*string)(&createReq.Config.RoomMode), "room-mode", string(maze.RoomModeRect), "Room mode (rect, patch)")
	f.IntVar(&createReq.Population.Collectibles, "collectibles", 3, "Collectibles to place")
	f.IntVar(&createReq.Population.Enemies, "enemies", 2, "Enemies to place")
	f.IntVar(&createReq.Population.Furniture, "furniture", 2, "Lockers to place")
}

func runCreateMaze(_ *cobra.Command, _ []string) error {
	client, cleanup, err := createMazeClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	req, err := v1alpha1.Encode(&createReq)
	if err != nil {
		return err
	}

	resp, err := client.CreateMaze(ctx, req)
	if err != nil {
		return fmt.Errorf("failed to create maze: %w", err)
	}
	if done, err := printRaw(resp); done {
		return err
	}

	var out v1alpha1.CreateMazeResponse
	if err := v1alpha1.Decode(resp, &out); err != nil {
		return err
	}

	fmt.Printf("Maze %s (%dx%d cells, %d open)\n\n", out.MazeID, out.Columns, out.Rows, out.OpenCells)
	fmt.Print(out.Render)
	fmt.Printf("\nPlaced %d collectibles, %d enemies, %d lockers\n",
		len(out.Placement.Collectibles), len(out.Placement.Enemies), len(out.Placement.Furniture))
	if out.PlacementWarning != "" {
		fmt.Printf("warning: %s\n", out.PlacementWarning)
	}
	return nil
}
