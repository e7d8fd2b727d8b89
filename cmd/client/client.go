// Package main provides a standalone command-line client for the Maze API
package main

import (
	"fmt"
	"os"

	"github.com/KirkDiggler/maze-api/cmd/server/client"
)

func main() {
	client.ClientCmd.Use = "maze-client"
	if err := client.ClientCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
