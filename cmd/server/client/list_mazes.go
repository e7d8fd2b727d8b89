package client

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/maze-api/internal/handlers/maze/v1alpha1"
)

var listMazesCmd = &cobra.Command{
	Use:   "list-mazes",
	Short: "List stored mazes",
	RunE:  runListMazes,
}

func runListMazes(_ *cobra.Command, _ []string) error {
	client, cleanup, err := createMazeClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.ListMazes(ctx, &structpb.Struct{})
	if err != nil {
		return fmt.Errorf("failed to list mazes: %w", err)
	}
	if done, err := printRaw(resp); done {
		return err
	}

	var out v1alpha1.ListMazesResponse
	if err := v1alpha1.Decode(resp, &out); err != nil {
		return err
	}

	if len(out.MazeIDs) == 0 {
		fmt.Println("No stored mazes")
		return nil
	}
	for _, id := range out.MazeIDs {
		fmt.Println(id)
	}
	return nil
}
