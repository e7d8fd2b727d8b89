package main

import (
	"fmt"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/maze-api/internal/maze"
	"github.com/KirkDiggler/maze-api/internal/pkg/rng"
)

var mazeFlags struct {
	width         int
	height        int
	corridorWidth int
	rooms         int
	minRoom       int
	maxRoom       int
	seed          int64
	roomMode      string
	patchChance   float64
}

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a maze and print it",
	Long: `Generate a maze locally and print it as ASCII.
'#' is wall, '.' is open floor and 'L' marks a furniture slot.`,
	RunE: runGenerate,
}

func init() {
	addMazeFlags(generateCmd)
}

func addMazeFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&mazeFlags.width, "width", 0, "Maze width in world units, MAZE_WIDTH when unset")
	cmd.Flags().IntVar(&mazeFlags.height, "height", 0, "Maze height in world units, MAZE_HEIGHT when unset")
	cmd.Flags().IntVar(&mazeFlags.corridorWidth, "corridor-width", 0, "Cell size in world units, MAZE_CORRIDOR_WIDTH when unset")
	cmd.Flags().IntVar(&mazeFlags.rooms, "rooms", 0, "Number of rectangular rooms")
	cmd.Flags().IntVar(&mazeFlags.minRoom, "min-room", 0, "Minimum room size in cells")
	cmd.Flags().IntVar(&mazeFlags.maxRoom, "max-room", 0, "Maximum room size in cells")
	cmd.Flags().Int64Var(&mazeFlags.seed, "seed", 1, "Random seed, 0 draws a fresh one")
	cmd.Flags().StringVar(&mazeFlags.roomMode, "room-mode", string(maze.RoomModeRect), "Room mode (rect, patch)")
	cmd.Flags().Float64Var(&mazeFlags.patchChance, "patch-chance", maze.DefaultPatchRoomChance, "Chance a carved cell opens a patch room")
}

func mazeConfigFromFlags() maze.Config {
	cfg := maze.Config{
		Width:           mazeFlags.width,
		Height:          mazeFlags.height,
		CorridorWidth:   mazeFlags.corridorWidth,
		NumberOfRooms:   mazeFlags.rooms,
		MinRoomSize:     mazeFlags.minRoom,
		MaxRoomSize:     mazeFlags.maxRoom,
		RandomSeed:      mazeFlags.seed,
		RoomMode:        maze.RoomMode(mazeFlags.roomMode),
		PatchRoomChance: mazeFlags.patchChance,
	}
	if cfg.Width == 0 {
		cfg.Width = envConfig.MazeWidth
	}
	if cfg.Height == 0 {
		cfg.Height = envConfig.MazeHeight
	}
	if cfg.CorridorWidth == 0 {
		cfg.CorridorWidth = envConfig.MazeCorridorWidth
	}
	return cfg
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	cfg := mazeConfigFromFlags()
	if cfg.RandomSeed == 0 {
		seed, err := rng.DrawSeed(dice.DefaultRoller)
		if err != nil {
			return err
		}
		cfg.RandomSeed = seed
	}

	m, err := maze.GenerateWithSeed(cfg)
	if err != nil {
		return fmt.Errorf("failed to generate maze: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprint(out, m.String())
	fmt.Fprintf(out, "\n%dx%d cells, %d open, seed %d", m.Columns(), m.Rows(), m.OpenCount(), cfg.RandomSeed)
	if m.SkippedRooms > 0 || m.DisconnectedRooms > 0 {
		fmt.Fprintf(out, ", %d rooms skipped, %d disconnected", m.SkippedRooms, m.DisconnectedRooms)
	}
	fmt.Fprintln(out)
	return nil
}
