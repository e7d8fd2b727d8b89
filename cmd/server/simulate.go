package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/maze-api/internal/orchestrators/simulation"
	"github.com/KirkDiggler/maze-api/internal/pkg/clock"
	"github.com/KirkDiggler/maze-api/internal/pkg/idgen"
	"github.com/KirkDiggler/maze-api/internal/repositories/mazes"
)

var simFlags struct {
	collectibles int
	enemies      int
	furniture    int
	ticks        int
	delta        float64
	parallel     bool
	playerSpeed  float64
}

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run a simulation locally",
	Long:  `Generate a maze, populate it and run the enemy simulation without a server.`,
	RunE:  runSimulate,
}

func init() {
	addMazeFlags(simulateCmd)
	simulateCmd.Flags().IntVar(&simFlags.collectibles, "collectibles", 3, "Collectibles for the player to pick up")
	simulateCmd.Flags().IntVar(&simFlags.enemies, "enemies", 2, "Enemies to spawn")
	simulateCmd.Flags().IntVar(&simFlags.furniture, "furniture", 2, "Lockers the player can hide in")
	simulateCmd.Flags().IntVar(&simFlags.ticks, "ticks", 600, "Ticks to run")
	simulateCmd.Flags().Float64Var(&simFlags.delta, "delta", simulation.DefaultDelta, "Seconds per tick")
	simulateCmd.Flags().BoolVar(&simFlags.parallel, "parallel", false, "Tick enemies concurrently")
	simulateCmd.Flags().Float64Var(&simFlags.playerSpeed, "player-speed", simulation.DefaultPlayerSpeed, "Player walking speed")
}

func runSimulate(cmd *cobra.Command, _ []string) error {
	service, err := simulation.NewOrchestrator(&simulation.Config{
		Repository:  mazes.NewInMemoryRepository(clock.New()),
		IDGenerator: idgen.NewSequential("local"),
		Logger:      slog.Default(),
	})
	if err != nil {
		return fmt.Errorf("failed to create simulation: %w", err)
	}

	cfg := mazeConfigFromFlags()
	out, err := service.Simulate(cmd.Context(), &simulation.SimulateInput{
		Config: &cfg,
		Population: &simulation.Population{
			Collectibles: simFlags.collectibles,
			Enemies:      simFlags.enemies,
			Furniture:    simFlags.furniture,
		},
		Ticks:       simFlags.ticks,
		Delta:       simFlags.delta,
		Parallel:    simFlags.parallel,
		PlayerSpeed: simFlags.playerSpeed,
	})
	if err != nil {
		return fmt.Errorf("simulation failed: %w", err)
	}

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "Ran %d ticks (%.1fs)\n\n", out.TicksRun, out.Elapsed)
	p := out.Player
	fmt.Fprintf(w, "Player %s at (%.1f, %.1f): %.0f/%.0f health, %d collected\n",
		p.ID, p.Position.X, p.Position.Y, p.Health, p.MaxHealth, p.Collected)
	for _, a := range out.Agents {
		fmt.Fprintf(w, "Enemy %s at (%.1f, %.1f): %s, %d attacks, %d patrol draws\n",
			a.ID, a.Position.X, a.Position.Y, a.Mode, a.Attacks, a.PatrolDraws)
	}

	switch {
	case out.Won:
		fmt.Fprintln(w, "\nThe player collected everything")
	case !p.Alive:
		fmt.Fprintln(w, "\nThe player was caught")
	}
	for _, warning := range out.Warnings {
		fmt.Fprintf(w, "warning: %s\n", warning)
	}
	return nil
}
