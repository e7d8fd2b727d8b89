package simulation

import (
	"log/slog"

	"github.com/KirkDiggler/maze-api/internal/errors"
	"github.com/KirkDiggler/maze-api/internal/maze"
	"github.com/KirkDiggler/maze-api/internal/pkg/rng"
	"github.com/KirkDiggler/maze-api/internal/spatial"
)

// world is a fully generated and populated maze. Nothing in it is
// mutated once buildWorld returns.
type world struct {
	maze        *maze.Maze
	registry    *spatial.Registry
	placement   *spatial.Placement
	playerStart maze.Coord
	// source seeds every per-run random stream
	source *rng.Seeded
	// warning is the recoverable placement error, if any
	warning error
}

const (
	placementStream int64 = 1
	agentStreamBase int64 = 100
)

// buildWorld runs the generation phase: grid, registry, player start and
// population. It completes before any agent is spawned.
func buildWorld(m *maze.Maze, pop Population, logger *slog.Logger) (*world, error) {
	reg := spatial.NewRegistry()
	reg.Rebuild(m)

	seed := rng.NewSeeded(m.Config().RandomSeed)
	placeSrc := seed.Derive(placementStream)

	start, ok := reg.ClaimRandom(placeSrc)
	if !ok {
		return nil, errors.Configuration("maze has no free cell for the player")
	}

	placement, err := spatial.Populate(reg, placeSrc, spatial.Request{
		Collectibles:   pop.Collectibles,
		Enemies:        pop.Enemies,
		Furniture:      pop.Furniture,
		FurnitureSlots: m.FurnitureHints,
	})
	if err != nil && !errors.IsPlacementExhausted(err) {
		return nil, errors.Wrap(err, "failed to populate maze")
	}
	if err != nil {
		logger.Warn("Placement stopped early",
			"error", err,
			"requested", pop.Collectibles+pop.Enemies+pop.Furniture,
			"placed", placement.Total())
	}

	return &world{
		maze:        m,
		registry:    reg,
		placement:   placement,
		playerStart: start,
		source:      seed,
		warning:     err,
	}, nil
}
