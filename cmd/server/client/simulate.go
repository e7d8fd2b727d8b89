package client

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/maze-api/internal/handlers/maze/v1alpha1"
)

var simulateReq v1alpha1.SimulateRequest

var simulateCmd = &cobra.Command{
	Use:   "simulate [maze-id]",
	Short: "Simulate enemies in a stored maze",
	Long: `Run the enemy simulation over a stored maze. Examples:

  simulate maze_1234 --ticks 600
  simulate maze_1234 --ticks 100 --parallel`,
	Args: cobra.ExactArgs(1),
	RunE: runSimulate,
}

func init() {
	f := simulateCmd.Flags()
	f.IntVar(&simulateReq.Ticks, "ticks", 600, "Ticks to run")
	f.Float64Var(&simulateReq.Delta, "delta", 0, "Seconds per tick, server default when zero")
	f.BoolVar(&simulateReq.Parallel, "parallel", false, "Tick enemies concurrently")
	f.Float64Var(&simulateReq.PlayerSpeed, "player-speed", 0, "Player walking speed, server default when zero")
}

func runSimulate(_ *cobra.Command, args []string) error {
	client, cleanup, err := createMazeClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	simulateReq.MazeID = args[0]
	req, err := v1alpha1.Encode(&simulateReq)
	if err != nil {
		return err
	}

	resp, err := client.Simulate(ctx, req)
	if err != nil {
		return fmt.Errorf("failed to simulate: %w", err)
	}
	if done, err := printRaw(resp); done {
		return err
	}

	var out v1alpha1.SimulateResponse
	if err := v1alpha1.Decode(resp, &out); err != nil {
		return err
	}

	fmt.Printf("Ran %d ticks (%.1fs)\n", out.TicksRun, out.Elapsed)
	p := out.Player
	fmt.Printf("Player: %.0f/%.0f health, %d collected, alive=%t\n", p.Health, p.MaxHealth, p.Collected, p.Alive)
	for _, a := range out.Agents {
		fmt.Printf("  %s %-10s (%.1f, %.1f) attacks=%d draws=%d\n",
			a.ID, a.Mode, a.Position.X, a.Position.Y, a.Attacks, a.PatrolDraws)
	}
	if out.Won {
		fmt.Println("Won")
	}
	for _, w := range out.Warnings {
		fmt.Printf("warning: %s\n", w)
	}
	return nil
}
