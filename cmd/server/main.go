// Package main is the entry point for the maze gRPC server and local tools
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/maze-api/cmd/server/client"
	"github.com/KirkDiggler/maze-api/internal/config"
)

var (
	envConfig *config.Config
	logLevel  string
)

var rootCmd = &cobra.Command{
	Use:   "maze-api",
	Short: "Maze API gRPC Server",
	Long: `Maze API generates grid mazes, stores their layouts and simulates
enemies that patrol, chase and attack a player walking the maze.`,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		envConfig = cfg
		setupLogger(cmd)
		return nil
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error), MAZE_LOG_LEVEL when unset")

	rootCmd.AddCommand(serverCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(client.ClientCmd)
}

func setupLogger(cmd *cobra.Command) {
	level := envConfig.LogLevel
	if logLevel != "" {
		if err := level.UnmarshalText([]byte(logLevel)); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "ignoring log level %q: %v\n", logLevel, err)
			level = envConfig.LogLevel
		}
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}
