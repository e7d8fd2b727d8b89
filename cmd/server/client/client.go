// Package client provides test commands for the Maze API gRPC service
package client

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/maze-api/internal/handlers/maze/v1alpha1"
)

var (
	// Connection flags
	serverAddr string
	timeout    time.Duration
	rawOutput  bool
)

// ClientCmd is the root command for all client test commands
var ClientCmd = &cobra.Command{
	Use:   "client",
	Short: "Test client commands for the Maze API",
	Long:  `Client commands allow you to test the Maze API by making real gRPC requests.`,
}

func init() {
	ClientCmd.PersistentFlags().StringVar(&serverAddr, "server", "localhost:50051", "gRPC server address")
	ClientCmd.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "Request timeout")
	ClientCmd.PersistentFlags().BoolVar(&rawOutput, "json", false, "Print the raw JSON response")

	ClientCmd.AddCommand(createMazeCmd)
	ClientCmd.AddCommand(getMazeCmd)
	ClientCmd.AddCommand(deleteMazeCmd)
	ClientCmd.AddCommand(listMazesCmd)
	ClientCmd.AddCommand(simulateCmd)
}

// createMazeClient creates a maze service client
func createMazeClient() (v1alpha1.MazeServiceClient, func(), error) {
	conn, err := grpc.NewClient(serverAddr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to server: %w", err)
	}

	cleanup := func() {
		_ = conn.Close() // nolint:errcheck // safe to ignore in cleanup
	}

	return v1alpha1.NewMazeServiceClient(conn), cleanup, nil
}

// printRaw prints the response as indented JSON when --json is set
func printRaw(resp *structpb.Struct) (bool, error) {
	if !rawOutput {
		return false, nil
	}
	raw, err := json.MarshalIndent(resp.AsMap(), "", "  ")
	if err != nil {
		return true, fmt.Errorf("failed to format response: %w", err)
	}
	fmt.Println(string(raw))
	return true, nil
}
