package client

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/maze-api/internal/handlers/maze/v1alpha1"
)

var deleteMazeCmd = &cobra.Command{
	Use:   "delete-maze [maze-id]",
	Short: "Delete a stored maze",
	Args:  cobra.ExactArgs(1),
	RunE:  runDeleteMaze,
}

func runDeleteMaze(_ *cobra.Command, args []string) error {
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

	if _, err := client.DeleteMaze(ctx, req); err != nil {
		return fmt.Errorf("failed to delete maze: %w", err)
	}

	fmt.Printf("Deleted maze %s\n", args[0])
	return nil
}
