package agent

import (
	"github.com/KirkDiggler/maze-api/internal/errors"
)

// Config tunes one enemy. Distances are world units, times are seconds.
type Config struct {
	DetectionRange   float64 `json:"detection_range"`
	ChaseSpeed       float64 `json:"chase_speed"`
	PatrolSpeed      float64 `json:"patrol_speed"`
	PatrolWaitTime   float64 `json:"patrol_wait_time"`
	AttackRange      float64 `json:"attack_range"`
	AttackDamage     float64 `json:"attack_damage"`
	AttackCooldown   float64 `json:"attack_cooldown"`
	StoppingDistance float64 `json:"stopping_distance"`
	// SampleRadius is how far a patrol point may be snapped to walkable ground
	SampleRadius     float64 `json:"sample_radius"`
	MaxTargetRetries int     `json:"max_target_retries"`
}

// DefaultConfig returns the stock enemy tuning
func DefaultConfig() Config {
	return Config{
		DetectionRange:   5,
		ChaseSpeed:       4,
		PatrolSpeed:      3,
		PatrolWaitTime:   2,
		AttackRange:      1,
		AttackDamage:     10,
		AttackCooldown:   1,
		StoppingDistance: 0.5,
		SampleRadius:     2,
		MaxTargetRetries: 16,
	}
}

// Validate requires every tuning value to be positive
func (c *Config) Validate() error {
	vb := errors.NewConfigurationBuilder()

	errors.ValidatePositive("detection_range", c.DetectionRange, vb)
	errors.ValidatePositive("chase_speed", c.ChaseSpeed, vb)
	errors.ValidatePositive("patrol_speed", c.PatrolSpeed, vb)
	errors.ValidatePositive("patrol_wait_time", c.PatrolWaitTime, vb)
	errors.ValidatePositive("attack_range", c.AttackRange, vb)
	errors.ValidatePositive("attack_damage", c.AttackDamage, vb)
	errors.ValidatePositive("attack_cooldown", c.AttackCooldown, vb)
	errors.ValidatePositive("stopping_distance", c.StoppingDistance, vb)
	errors.ValidatePositive("sample_radius", c.SampleRadius, vb)
	errors.ValidateMin("max_target_retries", c.MaxTargetRetries, 1, vb)

	return vb.Build()
}
