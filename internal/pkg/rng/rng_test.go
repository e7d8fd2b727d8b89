package rng_test

import (
	"errors"
	"math"
	"testing"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	mock_dice "github.com/KirkDiggler/rpg-toolkit/dice/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/maze-api/internal/pkg/rng"
)

type fixedRoller struct {
	value int
}

func (f *fixedRoller) Roll(_ int) (int, error) { return f.value, nil }
func (f *fixedRoller) RollN(count, _ int) ([]int, error) {
	out := make([]int, count)
	for i := range out {
		out[i] = f.value
	}
	return out, nil
}

func TestSeededIsDeterministic(t *testing.T) {
	a := rng.NewSeeded(42)
	b := rng.NewSeeded(42)

	for i := 0; i < 50; i++ {
		assert.Equal(t, a.Intn(1000), b.Intn(1000))
	}
	assert.Equal(t, a.Float64(), b.Float64())
}

func TestSeededRoll(t *testing.T) {
	src := rng.NewSeeded(7)

	for i := 0; i < 100; i++ {
		v, err := src.Roll(6)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, v, 1)
		assert.LessOrEqual(t, v, 6)
	}

	_, err := src.Roll(0)
	assert.Error(t, err)

	rolls, err := src.RollN(4, 20)
	require.NoError(t, err)
	assert.Len(t, rolls, 4)
}

func TestDeriveProducesIndependentStreams(t *testing.T) {
	base := rng.NewSeeded(3)
	first := base.Derive(1)
	second := base.Derive(2)

	assert.NotEqual(t, first.Seed(), second.Seed())
	assert.Equal(t, first.Seed(), base.Derive(1).Seed())
}

func TestFromRoller(t *testing.T) {
	src := rng.FromRoller(&fixedRoller{value: 3})
	assert.Equal(t, 2, src.Intn(10))
	assert.InDelta(t, 0.0, src.Float64(), 0.0001)

	seeded := rng.NewSeeded(1)
	assert.Same(t, seeded, rng.FromRoller(seeded))

	// the toolkit's default roller is usable as a source
	def := rng.FromRoller(dice.DefaultRoller)
	v := def.Intn(4)
	assert.GreaterOrEqual(t, v, 0)
	assert.Less(t, v, 4)
}

func TestShuffleKeepsElements(t *testing.T) {
	items := []int{1, 2, 3, 4, 5, 6}
	rng.Shuffle(rng.NewSeeded(9), len(items), func(i, j int) {
		items[i], items[j] = items[j], items[i]
	})
	assert.ElementsMatch(t, []int{1, 2, 3, 4, 5, 6}, items)
}

func TestDrawSeed(t *testing.T) {
	ctrl := gomock.NewController(t)
	roller := mock_dice.NewMockRoller(ctrl)

	roller.EXPECT().Roll(math.MaxInt32).Return(12345, nil)
	seed, err := rng.DrawSeed(roller)
	require.NoError(t, err)
	assert.Equal(t, int64(12345), seed)

	roller.EXPECT().Roll(math.MaxInt32).Return(0, errors.New("entropy unavailable"))
	_, err = rng.DrawSeed(roller)
	assert.ErrorContains(t, err, "entropy unavailable")

	_, err = rng.DrawSeed(nil)
	assert.Error(t, err)

	seed, err = rng.DrawSeed(dice.DefaultRoller)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, seed, int64(1))
	assert.LessOrEqual(t, seed, int64(math.MaxInt32))
}
