package agent

import (
	"context"

	"github.com/KirkDiggler/maze-api/internal/errors"
	"github.com/KirkDiggler/maze-api/internal/navigation"
)

// Intent is the movement an agent asks for this tick
type Intent struct {
	Speed          float64
	Destination    navigation.Vec
	HasDestination bool
}

// TickResult reports what one tick did
type TickResult struct {
	// Skipped is set when a collaborator was missing and nothing ran
	Skipped  bool
	Mode     Mode
	Intent   Intent
	Redrew   bool
	Attacked bool
	Damage   float64
}

// Tick advances the state machine. now is the simulation time in
// seconds and dt the time since the previous tick.
//
// Visibility decides the mode. Losing sight redraws a patrol target
// exactly once, on the chase to patrol edge. Patrolling agents wait
// PatrolWaitTime at their target before drawing the next. Chasing agents
// attack inside AttackRange once AttackCooldown has passed since the
// last attack.
func (a *Agent) Tick(ctx context.Context, now, dt float64) TickResult {
	if a.state.Mode == ModeIdle {
		return TickResult{Mode: ModeIdle}
	}
	if a.player == nil || ctx.Err() != nil {
		return TickResult{Skipped: true, Mode: a.state.Mode}
	}
	playerPos, ok := a.player.Position()
	if !ok {
		return TickResult{Skipped: true, Mode: a.state.Mode}
	}

	result := TickResult{}
	a.canSee = a.canSeePlayer(playerPos)

	var speed float64
	if a.canSee {
		a.state.Mode = ModeChasing
		speed = a.cfg.ChaseSpeed
	} else {
		if a.wasChasing {
			if err := a.drawPatrolTarget(ctx); err != nil {
				return a.drawFailed(err)
			}
			result.Redrew = true
		}
		a.state.Mode = ModePatrolling
		speed = a.cfg.PatrolSpeed
	}

	if a.state.Mode == ModeChasing {
		a.chase(playerPos, now, &result)
	} else if err := a.patrol(ctx, dt, &result); err != nil {
		return a.drawFailed(err)
	}

	a.wasChasing = a.state.Mode == ModeChasing
	result.Mode = a.state.Mode
	result.Intent.Speed = speed
	return result
}

// canSeePlayer is false while the player hides or is dead, otherwise the
// player must be in detection range with a clear line
func (a *Agent) canSeePlayer(playerPos navigation.Vec) bool {
	if a.player.IsHiding() || !a.player.IsAlive() {
		return false
	}
	if a.position.Distance(playerPos) > a.cfg.DetectionRange {
		return false
	}
	return a.prober.Visible(a.position, playerPos, a.cfg.DetectionRange)
}

func (a *Agent) chase(playerPos navigation.Vec, now float64, result *TickResult) {
	a.nav.SetDestination(a.id, playerPos)
	result.Intent.Destination = playerPos
	result.Intent.HasDestination = true

	if a.position.Distance(playerPos) <= a.cfg.AttackRange &&
		now-a.state.LastAttackTime >= a.cfg.AttackCooldown {
		a.attack(now, result)
	}
}

func (a *Agent) attack(now float64, result *TickResult) {
	a.state.LastAttackTime = now
	a.attacks++
	a.player.TakeDamage(a.cfg.AttackDamage)

	result.Attacked = true
	result.Damage = a.cfg.AttackDamage
	a.logger.Debug("enemy attacks player", "damage", a.cfg.AttackDamage, "time", now)
}

func (a *Agent) patrol(ctx context.Context, dt float64, result *TickResult) error {
	// a target drawn this tick starts its wait on the next one
	if !result.Redrew && a.position.Distance(a.state.CurrentTarget) < a.cfg.StoppingDistance {
		a.state.WaitTimer -= dt
		if a.state.WaitTimer <= 0 {
			if err := a.drawPatrolTarget(ctx); err != nil {
				return err
			}
			result.Redrew = true
		}
	}

	a.nav.SetDestination(a.id, a.state.CurrentTarget)
	result.Intent.Destination = a.state.CurrentTarget
	result.Intent.HasDestination = true
	return nil
}

// drawFailed idles the agent when navigation gave up. A canceled draw
// only skips the tick.
func (a *Agent) drawFailed(err error) TickResult {
	if !errors.IsNavigationUnavailable(err) {
		return TickResult{Skipped: true, Mode: a.state.Mode}
	}
	a.goIdle(err)
	a.wasChasing = false
	return TickResult{Mode: ModeIdle}
}

// drawPatrolTarget picks random patrol points until the navigation port
// resolves one, giving up after MaxTargetRetries
func (a *Agent) drawPatrolTarget(ctx context.Context) error {
	for attempt := 0; attempt < a.cfg.MaxTargetRetries; attempt++ {
		if err := ctx.Err(); err != nil {
			return errors.WrapWithCode(err, errors.CodeCanceled, "patrol target draw canceled")
		}

		point := a.patrolPoints[a.source.Intn(len(a.patrolPoints))]
		resolved, ok := a.nav.SamplePoint(ctx, navigation.VecFromCoord(point), a.cfg.SampleRadius)
		if !ok {
			continue
		}

		a.state.CurrentTarget = resolved
		a.state.WaitTimer = a.cfg.PatrolWaitTime
		a.redraws++
		return nil
	}

	return errors.NavigationUnavailablef("no walkable patrol point after %d attempts", a.cfg.MaxTargetRetries)
}
