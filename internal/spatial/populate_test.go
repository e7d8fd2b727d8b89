package spatial_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/maze-api/internal/errors"
	"github.com/KirkDiggler/maze-api/internal/maze"
	"github.com/KirkDiggler/maze-api/internal/pkg/rng"
	"github.com/KirkDiggler/maze-api/internal/spatial"
)

func newRegistry(t *testing.T, width, height int) (*maze.Maze, *spatial.Registry) {
	t.Helper()
	m, err := maze.GenerateWithSeed(maze.Config{Width: width, Height: height, CorridorWidth: 2, RandomSeed: 3})
	require.NoError(t, err)

	reg := spatial.NewRegistry()
	reg.Rebuild(m)
	return m, reg
}

func TestPopulateNoOverlap(t *testing.T) {
	m, reg := newRegistry(t, 30, 30)

	placement, err := spatial.Populate(reg, rng.NewSeeded(8), spatial.Request{
		Collectibles: 5,
		Enemies:      3,
		Furniture:    4,
	})
	require.NoError(t, err)

	assert.Len(t, placement.Collectibles, 5)
	assert.Len(t, placement.Enemies, 3)
	assert.Len(t, placement.Furniture, 4)
	assert.Equal(t, 12, placement.Total())

	seen := make(map[maze.Coord]bool)
	all := append(append(append([]maze.Coord{}, placement.Collectibles...), placement.Enemies...), placement.Furniture...)
	for _, c := range all {
		assert.False(t, seen[c], "overlap at %v", c)
		seen[c] = true
		assert.True(t, reg.Claimed(c))
	}
	assert.Equal(t, m.OpenCount()-12, reg.Len())
}

func TestPopulateStopsEarlyWhenExhausted(t *testing.T) {
	// 10x10 at corridor width 2 has exactly 17 open cells
	_, reg := newRegistry(t, 10, 10)

	placement, err := spatial.Populate(reg, rng.NewSeeded(1), spatial.Request{
		Collectibles: 10,
		Enemies:      5,
		Furniture:    5,
	})
	require.Error(t, err)
	assert.True(t, errors.IsPlacementExhausted(err))
	assert.True(t, errors.IsRecoverable(err))

	require.NotNil(t, placement)
	assert.Len(t, placement.Collectibles, 10)
	assert.Len(t, placement.Enemies, 5)
	assert.Len(t, placement.Furniture, 2)
	assert.Equal(t, 17, errors.GetMeta(err)["placed"])
	assert.Zero(t, reg.Len())
}

func TestPopulatePrefersFurnitureSlots(t *testing.T) {
	m, reg := newRegistry(t, 20, 20)
	free := m.FreeCells()
	slots := []maze.Coord{free[0], free[1]}

	placement, err := spatial.Populate(reg, rng.NewSeeded(4), spatial.Request{
		Furniture:      3,
		FurnitureSlots: slots,
	})
	require.NoError(t, err)
	require.Len(t, placement.Furniture, 3)
	assert.Equal(t, slots, placement.Furniture[:2])
}

func TestPopulateRequiresRegistry(t *testing.T) {
	_, err := spatial.Populate(nil, rng.NewSeeded(1), spatial.Request{Enemies: 1})
	assert.True(t, errors.IsInvalidArgument(err))
}
