// Package rng provides the random sources used by maze generation and
// agent behavior. Every source here also satisfies the rpg-toolkit
// dice.Roller interface so the same stream can back die rolls.
package rng

import (
	"fmt"
	"math"
	"math/rand"
	"sync"

	"github.com/KirkDiggler/rpg-toolkit/dice"
)

// Source is the minimal random stream consumed by the domain packages
type Source interface {
	// Intn returns a uniform value in [0, n). n must be positive.
	Intn(n int) int
	// Float64 returns a uniform value in [0, 1).
	Float64() float64
}

// Seeded is a deterministic Source. It is safe for concurrent use,
// though concurrent callers will interleave the stream.
type Seeded struct {
	mu   sync.Mutex
	rand *rand.Rand
	seed int64
}

// NewSeeded returns a source whose stream is fully determined by seed
func NewSeeded(seed int64) *Seeded {
	return &Seeded{
		rand: rand.New(rand.NewSource(seed)), //nolint:gosec // gameplay randomness
		seed: seed,
	}
}

// DrawSeed rolls a fresh seed in [1, math.MaxInt32] from roller. Callers
// record the result so an unseeded run can be replayed.
func DrawSeed(roller dice.Roller) (int64, error) {
	if roller == nil {
		return 0, fmt.Errorf("roller is required")
	}
	v, err := roller.Roll(math.MaxInt32)
	if err != nil {
		return 0, fmt.Errorf("failed to draw seed: %w", err)
	}
	return int64(v), nil
}

// Seed returns the seed the source was created with
func (s *Seeded) Seed() int64 {
	return s.seed
}

// Intn implements Source
func (s *Seeded) Intn(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rand.Intn(n)
}

// Float64 implements Source
func (s *Seeded) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rand.Float64()
}

// Roll implements dice.Roller, returning a value in [1, size]
func (s *Seeded) Roll(size int) (int, error) {
	if size <= 0 {
		return 0, fmt.Errorf("invalid die size: %d", size)
	}
	return s.Intn(size) + 1, nil
}

// RollN implements dice.Roller
func (s *Seeded) RollN(count, size int) ([]int, error) {
	if count < 0 {
		return nil, fmt.Errorf("invalid dice count: %d", count)
	}
	results := make([]int, count)
	for i := range results {
		v, err := s.Roll(size)
		if err != nil {
			return nil, err
		}
		results[i] = v
	}
	return results, nil
}

// Derive returns a new independent source seeded from this one's seed
// and offset. Used to hand each agent its own stream.
func (s *Seeded) Derive(offset int64) *Seeded {
	return NewSeeded(s.seed*1_000_003 + offset)
}

const floatResolution = 1 << 30

// rollerSource adapts any dice.Roller into a Source
type rollerSource struct {
	roller dice.Roller
}

// FromRoller wraps a dice.Roller as a Source. A failing roll yields
// the lowest value of the range.
func FromRoller(roller dice.Roller) Source {
	if s, ok := roller.(Source); ok {
		return s
	}
	return &rollerSource{roller: roller}
}

func (r *rollerSource) Intn(n int) int {
	v, err := r.roller.Roll(n)
	if err != nil {
		return 0
	}
	return v - 1
}

func (r *rollerSource) Float64() float64 {
	v, err := r.roller.Roll(floatResolution)
	if err != nil {
		return 0
	}
	return float64(v-1) / floatResolution
}

// Shuffle permutes the first n elements using swap (Fisher-Yates)
func Shuffle(src Source, n int, swap func(i, j int)) {
	for i := n - 1; i > 0; i-- {
		j := src.Intn(i + 1)
		swap(i, j)
	}
}

// Compile-time checks
var (
	_ Source      = (*Seeded)(nil)
	_ dice.Roller = (*Seeded)(nil)
)
