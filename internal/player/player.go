// Package player is the simulated player the enemies hunt
package player

import (
	"sync"

	"github.com/KirkDiggler/rpg-toolkit/core"

	"github.com/KirkDiggler/maze-api/internal/navigation"
)

// EntityType is the core.Entity type of the player
const EntityType = "player"

// DefaultMaxHealth is the health a player starts with
const DefaultMaxHealth = 100.0

// Config describes a new player
type Config struct {
	ID        string
	MaxHealth float64
	// Speed is how fast the player walks its route, world units per second
	Speed float64
}

// Player is safe for concurrent use. Agents ticking in parallel read its
// position and report damage.
type Player struct {
	mu        sync.RWMutex
	id        string
	position  navigation.Vec
	placed    bool
	hiding    bool
	health    float64
	maxHealth float64
	speed     float64
	route     []navigation.Vec
	collected int
}

// New creates a player that has not been placed yet
func New(cfg Config) *Player {
	maxHealth := cfg.MaxHealth
	if maxHealth <= 0 {
		maxHealth = DefaultMaxHealth
	}
	return &Player{
		id:        cfg.ID,
		health:    maxHealth,
		maxHealth: maxHealth,
		speed:     cfg.Speed,
	}
}

// GetID implements core.Entity
func (p *Player) GetID() string {
	return p.id
}

// GetType implements core.Entity
func (p *Player) GetType() string {
	return EntityType
}

// Position returns false until the player is placed
func (p *Player) Position() (navigation.Vec, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.position, p.placed
}

// MoveTo places the player
func (p *Player) MoveTo(pos navigation.Vec) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.position = pos
	p.placed = true
}

// IsHiding reports whether the player is hidden from enemies
func (p *Player) IsHiding() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.hiding
}

// SetHiding toggles hiding. Dead players cannot hide.
func (p *Player) SetHiding(hiding bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.hiding = hiding && p.health > 0
}

// IsAlive reports whether health is above zero
func (p *Player) IsAlive() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.health > 0
}

// TakeDamage lowers health, never below zero
func (p *Player) TakeDamage(amount float64) {
	if amount <= 0 {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()

	p.health -= amount
	if p.health <= 0 {
		p.health = 0
		p.hiding = false
	}
}

// Health returns the current health
func (p *Player) Health() float64 {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.health
}

// MaxHealth returns the starting health
func (p *Player) MaxHealth() float64 {
	return p.maxHealth
}

// SetRoute replaces the waypoints the player walks
func (p *Player) SetRoute(route []navigation.Vec) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.route = append([]navigation.Vec(nil), route...)
}

// RouteLen returns how many waypoints are left
func (p *Player) RouteLen() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return len(p.route)
}

// Advance walks the route for dt seconds and returns the new position.
// Dead or unplaced players do not move.
func (p *Player) Advance(dt float64) navigation.Vec {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.placed || p.health <= 0 || p.speed <= 0 || dt <= 0 {
		return p.position
	}

	budget := p.speed * dt
	for budget > 0 && len(p.route) > 0 {
		next := p.route[0]
		d := p.position.Distance(next)
		if d > budget {
			p.position = p.position.MoveToward(next, budget)
			break
		}
		p.position = next
		budget -= d
		p.route = p.route[1:]
	}
	return p.position
}

// Collect records a picked up collectible and returns the running total
func (p *Player) Collect() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.collected++
	return p.collected
}

// Collected returns how many collectibles were picked up
func (p *Player) Collected() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.collected
}

var _ core.Entity = (*Player)(nil)
