package client

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/maze-api/internal/handlers/maze/v1alpha1"
)

var getMazeCmd = &cobra.Command{
	Use:   "get-maze [maze-id]",
	Short: "Show a stored maze",
	Args:  cobra.ExactArgs(1),
	RunE:  runGetMaze,
}

func runGetMaze(_ *cobra.Command, args []string) error {
	client, cleanup, err := createMazeClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	req, err := v1alpha1.Encode(&v1alpha1.MazeRequest{MazeID: args[0]})
	if err != nil {
		return err
	}

	resp, err := client.GetMaze(ctx, req)
	if err != nil {
		return fmt.Errorf("failed to get maze: %w", err)
	}
	if done, err := printRaw(resp); done {
		return err
	}

	var out v1alpha1.GetMazeResponse
	if err := v1alpha1.Decode(resp, &out); err != nil {
		return err
	}

	fmt.Printf("Maze %s (seed %d, %d open cells)\n\n", out.MazeID, out.Config.RandomSeed, out.OpenCells)
	fmt.Print(out.Render)
	fmt.Printf("\nPopulation: %d collectibles, %d enemies, %d lockers\n",
		out.Population.Collectibles, out.Population.Enemies, out.Population.Furniture)
	return nil
}
