package simulation

import (
	"context"
	"fmt"
	"sync"

	"github.com/KirkDiggler/maze-api/internal/agent"
	"github.com/KirkDiggler/maze-api/internal/errors"
	"github.com/KirkDiggler/maze-api/internal/maze"
	"github.com/KirkDiggler/maze-api/internal/navigation"
	"github.com/KirkDiggler/maze-api/internal/player"
)

// pickupRadius is how close the player must get to an item or locker
const pickupRadius = 0.5

// run is the mutable state of one simulation
type run struct {
	world   *world
	port    *navigation.GridPort
	player  *player.Player
	agents  []*agent.Agent
	pending []navigation.Vec
	lockers []navigation.Vec
}

// Simulate regenerates or loads a maze, bakes navigation, spawns the
// player and enemies and ticks until the budget runs out, the player
// dies or every collectible is picked up
func (o *orchestrator) Simulate(ctx context.Context, input *SimulateInput) (*SimulateOutput, error) {
	if err := o.validateSimulate(input); err != nil {
		return nil, err
	}

	m, pop, err := o.resolveMaze(ctx, input)
	if err != nil {
		return nil, err
	}

	agentCfg := o.agentCfg
	if input.AgentConfig != nil {
		agentCfg = *input.AgentConfig
	}
	dt := input.Delta
	if dt == 0 {
		dt = DefaultDelta
	}

	// generation phase, finished before the first tick
	w, err := buildWorld(m, pop, o.logger)
	if err != nil {
		return nil, err
	}
	r, err := o.newRun(w, agentCfg, input.PlayerSpeed)
	if err != nil {
		return nil, err
	}

	output := &SimulateOutput{MazeID: input.MazeID}
	if w.warning != nil {
		output.Warnings = append(output.Warnings, w.warning.Error())
	}

	o.logger.Info("Simulation started",
		"maze_id", input.MazeID,
		"ticks", input.Ticks,
		"delta", dt,
		"enemies", len(r.agents),
		"collectibles", len(r.pending),
		"parallel", input.Parallel,
	)

	for tick := 1; tick <= input.Ticks; tick++ {
		if err := ctx.Err(); err != nil {
			return nil, errors.WrapWithCode(err, errors.CodeCanceled, "simulation canceled").
				WithMeta("ticks_run", output.TicksRun)
		}

		now := float64(tick) * dt
		r.stepPlayer(dt)
		r.stepAgents(ctx, now, dt, input.Parallel)

		output.TicksRun = tick
		output.Elapsed = now

		if output.Won = r.won(); output.Won || !r.player.IsAlive() {
			break
		}
	}

	for _, a := range r.agents {
		if a.Mode() == agent.ModeIdle {
			output.Warnings = append(output.Warnings, fmt.Sprintf("enemy %s is idle", a.GetID()))
		}
		output.Agents = append(output.Agents, AgentReport{
			ID:          a.GetID(),
			Mode:        a.Mode(),
			Position:    a.Position(),
			State:       a.State(),
			Attacks:     a.Attacks(),
			PatrolDraws: a.PatrolDraws(),
		})
	}
	pos, _ := r.player.Position()
	output.Player = PlayerReport{
		ID:        r.player.GetID(),
		Position:  pos,
		Health:    r.player.Health(),
		MaxHealth: r.player.MaxHealth(),
		Alive:     r.player.IsAlive(),
		Collected: r.player.Collected(),
	}

	o.logger.Info("Simulation finished",
		"maze_id", input.MazeID,
		"ticks_run", output.TicksRun,
		"player_health", output.Player.Health,
		"collected", output.Player.Collected,
		"won", output.Won,
	)

	return output, nil
}

func (o *orchestrator) validateSimulate(input *SimulateInput) error {
	if input == nil {
		return errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	if input.MazeID == "" && input.Config == nil {
		vb.Field("maze_id", "maze_id or config is required")
	}
	if input.Ticks < 1 || input.Ticks > MaxTicks {
		vb.Fieldf("ticks", "must be within [1, %d], got %d", MaxTicks, input.Ticks)
	}
	if input.Delta < 0 {
		vb.Fieldf("delta", "must not be negative, got %v", input.Delta)
	}
	if input.PlayerSpeed < 0 {
		vb.Fieldf("player_speed", "must not be negative, got %v", input.PlayerSpeed)
	}
	if input.Population != nil {
		if err := validatePopulation(*input.Population); err != nil {
			return err
		}
	}
	if err := vb.Build(); err != nil {
		return err
	}

	if input.AgentConfig != nil {
		return input.AgentConfig.Validate()
	}
	return nil
}

// resolveMaze loads the stored maze or generates the ad hoc one
func (o *orchestrator) resolveMaze(ctx context.Context, input *SimulateInput) (*maze.Maze, Population, error) {
	var (
		m   *maze.Maze
		pop Population
	)

	if input.MazeID != "" {
		loaded, record, err := o.loadMaze(ctx, input.MazeID)
		if err != nil {
			return nil, pop, err
		}
		m, pop = loaded, record.Population
	} else {
		cfg, err := o.seeded(*input.Config)
		if err != nil {
			return nil, pop, err
		}
		generated, err := maze.GenerateWithSeed(cfg)
		if err != nil {
			return nil, pop, err
		}
		m = generated
	}

	if input.Population != nil {
		pop = *input.Population
	}
	return m, pop, nil
}

func (o *orchestrator) newRun(w *world, agentCfg agent.Config, playerSpeed float64) (*run, error) {
	port := navigation.NewGridPort()
	port.Bake(w.maze)

	if playerSpeed == 0 {
		playerSpeed = DefaultPlayerSpeed
	}
	p := player.New(player.Config{ID: o.idGen.Generate(), Speed: playerSpeed})
	p.MoveTo(navigation.VecFromCoord(w.playerStart))

	r := &run{world: w, port: port, player: p}
	for _, c := range w.placement.Collectibles {
		r.pending = append(r.pending, navigation.VecFromCoord(c))
	}
	for _, c := range w.placement.Furniture {
		r.lockers = append(r.lockers, navigation.VecFromCoord(c))
	}
	r.planRoute()

	for i, cell := range w.placement.Enemies {
		a, err := agent.Spawn(navigation.VecFromCoord(cell), agentCfg, agent.Deps{
			Player:      p,
			Cells:       w.maze,
			Nav:         port,
			Prober:      port,
			Source:      w.source.Derive(agentStreamBase + int64(i)),
			IDGenerator: o.idGen,
			Logger:      o.logger,
		})
		if err != nil {
			return nil, errors.Wrapf(err, "failed to spawn enemy %d", i)
		}
		r.agents = append(r.agents, a)
	}
	return r, nil
}

// planRoute walks the player through every reachable collectible in
// placement order
func (r *run) planRoute() {
	from, _ := r.player.Position()
	var route []navigation.Vec
	for _, target := range r.pending {
		path := r.port.Path(from, target)
		if path == nil {
			continue
		}
		for _, c := range path[1:] {
			route = append(route, navigation.VecFromCoord(r.world.maze.CellToWorld(c)))
		}
		from = target
	}
	r.player.SetRoute(route)
}

func (r *run) stepPlayer(dt float64) {
	pos := r.player.Advance(dt)

	remaining := r.pending[:0]
	for _, item := range r.pending {
		if pos.Distance(item) <= pickupRadius {
			r.player.Collect()
			continue
		}
		remaining = append(remaining, item)
	}
	r.pending = remaining

	hiding := false
	for _, locker := range r.lockers {
		if pos.Distance(locker) <= pickupRadius {
			hiding = true
			break
		}
	}
	r.player.SetHiding(hiding)
}

// stepAgents ticks every agent then moves it along its intent. Agents
// only share the player and the baked port, both safe for concurrent use.
func (r *run) stepAgents(ctx context.Context, now, dt float64, parallel bool) {
	step := func(a *agent.Agent) {
		result := a.Tick(ctx, now, dt)
		if result.Skipped || !result.Intent.HasDestination {
			return
		}
		a.MoveTo(r.port.Step(a.GetID(), a.Position(), result.Intent.Speed, dt))
	}

	if !parallel {
		for _, a := range r.agents {
			step(a)
		}
		return
	}

	var wg sync.WaitGroup
	for _, a := range r.agents {
		wg.Add(1)
		go func(a *agent.Agent) {
			defer wg.Done()
			step(a)
		}(a)
	}
	wg.Wait()
}

func (r *run) won() bool {
	total := len(r.world.placement.Collectibles)
	return total > 0 && r.player.Collected() == total
}
