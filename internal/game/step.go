package game

import (
	"math"

	"pupdash/internal/core"
)

// Step advances the world by dt seconds with the given input. One call is one
// tick. Order per tick: jump trigger, gravity integration, spawn timers,
// scroll and prune, obstacle collisions, treat pickups. An obstacle hit sets
// the terminal flag and aborts the rest of the tick, so treats are never
// collected on the tick the session ends.
func (w *World) Step(dt float64, in core.InputFrame) {
	if w.gameOver {
		return
	}
	// A stalled or backgrounded host clock can hand us garbage deltas.
	if dt < 0 || math.IsNaN(dt) {
		dt = 0
	}
	w.elapsed += dt

	// Jump is edge-insensitive: a held key re-launches on the landing tick.
	p := &w.player
	if in.Has(core.ActionJump) && p.OnGround {
		p.Vel = w.cfg.Physics.JumpVelocity
		p.OnGround = false
	}

	// Semi-implicit Euler: velocity first, then position.
	p.Vel += w.cfg.Physics.Gravity * dt
	p.Y += p.Vel * dt
	if groundTop := w.groundTop(); p.Y >= groundTop {
		p.Y = groundTop
		p.Vel = 0
		p.OnGround = true
	}

	w.obstacleTimer -= dt
	if w.obstacleTimer <= 0 {
		w.spawnObstacle()
		w.obstacleTimer = w.drawObstacleDelay()
	}
	w.treatTimer -= dt
	if w.treatTimer <= 0 {
		w.spawnTreat()
		w.treatTimer = w.drawTreatDelay()
	}

	scroll := w.cfg.Physics.ScrollSpeed * dt
	for i := range w.obstacles {
		w.obstacles[i].X -= scroll
	}
	for i := range w.treats {
		w.treats[i].X -= scroll
	}
	w.prune()

	playerRect := p.Rect()
	for _, o := range w.obstacles {
		if playerRect.Intersects(o.Rect()) {
			w.gameOver = true
			return
		}
	}

	// Every overlapping treat this tick counts; each can only be hit once
	// because pickup removes it.
	kept := w.treats[:0]
	for _, t := range w.treats {
		if playerRect.Intersects(t.Rect()) {
			w.score++
			continue
		}
		kept = append(kept, t)
	}
	w.treats = kept
}

// prune drops entities whose right edge has passed the margin left of the
// field. Lazy off-screen cleanup; order-independent.
func (w *World) prune() {
	margin := w.cfg.Field.PruneMargin

	keptObstacles := w.obstacles[:0]
	for _, o := range w.obstacles {
		if o.X+o.W >= -margin {
			keptObstacles = append(keptObstacles, o)
		}
	}
	w.obstacles = keptObstacles

	keptTreats := w.treats[:0]
	for _, t := range w.treats {
		if t.X+t.W >= -margin {
			keptTreats = append(keptTreats, t)
		}
	}
	w.treats = keptTreats
}
