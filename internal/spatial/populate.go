package spatial

import (
	"github.com/KirkDiggler/maze-api/internal/errors"
	"github.com/KirkDiggler/maze-api/internal/maze"
	"github.com/KirkDiggler/maze-api/internal/pkg/rng"
)

// Request is how many of each entity kind to place
type Request struct {
	Collectibles int
	Enemies      int
	Furniture    int
	// FurnitureSlots are preferred furniture cells, such as patch room hints.
	// Slots already claimed are passed over.
	FurnitureSlots []maze.Coord
}

// Placement holds the claimed cell of every placed entity
type Placement struct {
	Collectibles []maze.Coord
	Enemies      []maze.Coord
	Furniture    []maze.Coord
}

// Total returns the number of placed entities
func (p *Placement) Total() int {
	return len(p.Collectibles) + len(p.Enemies) + len(p.Furniture)
}

// Populate places collectibles, then enemies, then furniture, each on a
// uniformly random free cell. When the registry runs dry it stops and
// returns the partial placement with a PLACEMENT_EXHAUSTED error, which
// callers should treat as a warning.
func Populate(reg *Registry, src rng.Source, req Request) (*Placement, error) {
	if reg == nil || src == nil {
		return nil, errors.InvalidArgument("registry and random source are required")
	}

	placement := &Placement{}
	requested := req.Collectibles + req.Enemies + req.Furniture

	var ok bool
	if placement.Collectibles, ok = claimN(reg, src, req.Collectibles); !ok {
		return placement, exhausted(placement, requested)
	}
	if placement.Enemies, ok = claimN(reg, src, req.Enemies); !ok {
		return placement, exhausted(placement, requested)
	}

	for _, slot := range req.FurnitureSlots {
		if len(placement.Furniture) == req.Furniture {
			break
		}
		if reg.Claim(slot) {
			placement.Furniture = append(placement.Furniture, slot)
		}
	}
	rest, ok := claimN(reg, src, req.Furniture-len(placement.Furniture))
	placement.Furniture = append(placement.Furniture, rest...)
	if !ok {
		return placement, exhausted(placement, requested)
	}

	return placement, nil
}

func claimN(reg *Registry, src rng.Source, n int) ([]maze.Coord, bool) {
	out := make([]maze.Coord, 0, max(n, 0))
	for i := 0; i < n; i++ {
		c, ok := reg.ClaimRandom(src)
		if !ok {
			return out, false
		}
		out = append(out, c)
	}
	return out, true
}

func exhausted(p *Placement, requested int) error {
	return errors.PlacementExhaustedf("free cells ran out after placing %d of %d entities", p.Total(), requested).
		WithMeta("placed", p.Total()).
		WithMeta("requested", requested)
}
