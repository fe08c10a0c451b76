// Package game implements the pupdash world: a side-scrolling runner where
// the pup jumps over crates and cones and catches treats at three heights.
// The package contains pure simulation logic with no platform dependencies;
// the tui layer drives it with per-frame deltas and renders its snapshots.
package game

import (
	"math/rand"

	"pupdash/internal/config"
	"pupdash/internal/core"
)

// ID and Title identify the game to the CLI and the HUD.
const (
	ID    = "pupdash"
	Title = "Pupdash"
)

// ObstacleKind selects one of the two obstacle variants. The kind determines
// dimensions only; behavior is identical.
type ObstacleKind int

const (
	KindCrate ObstacleKind = iota
	KindCone
)

// String returns a human-readable name for the obstacle kind.
func (k ObstacleKind) String() string {
	switch k {
	case KindCrate:
		return "crate"
	case KindCone:
		return "cone"
	default:
		return "unknown"
	}
}

// Player is the controllable pup. X and the hitbox size are fixed for the
// session; only Y, Vel and OnGround change.
type Player struct {
	X, Y     float64
	W, H     float64
	Vel      float64 // vertical velocity, negative = up
	OnGround bool
}

// Rect returns the player's collision rectangle.
func (p Player) Rect() core.Rect {
	return core.NewRect(p.X, p.Y, p.W, p.H)
}

// Obstacle is a ground-bound hazard scrolling in from the right.
type Obstacle struct {
	Kind ObstacleKind
	X, Y float64
	W, H float64
}

// Rect returns the obstacle's collision rectangle.
func (o Obstacle) Rect() core.Rect {
	return core.NewRect(o.X, o.Y, o.W, o.H)
}

// Treat is a collectible scrolling in from the right at one of three fixed
// height tiers.
type Treat struct {
	X, Y float64
	W, H float64
	Tier int // 0 = ground, 1 = small jump, 2 = big jump
}

// Rect returns the treat's collision rectangle.
func (t Treat) Rect() core.Rect {
	return core.NewRect(t.X, t.Y, t.W, t.H)
}

// World owns the whole session state: player kinematics, active entities,
// score, terminal flag and the two spawn timers. All mutation happens in
// Step on the single update goroutine; no locking is needed.
type World struct {
	cfg config.Config
	rng *rand.Rand

	player    Player
	obstacles []Obstacle
	treats    []Treat

	score    int
	gameOver bool
	elapsed  float64 // seconds of simulated play in this session

	obstacleTimer float64
	treatTimer    float64
}

// New creates a world from the given tunables and RNG seed.
func New(cfg config.Config, seed int64) *World {
	w := &World{
		cfg:       cfg,
		obstacles: make([]Obstacle, 0, 8),
		treats:    make([]Treat, 0, 8),
	}
	w.Reset(seed)
	return w
}

// Reset reinitializes the session: player at rest on the ground, empty
// entity lists, zero score, cleared terminal flag, freshly drawn spawn
// timers. This is the restart operation; a reset world is indistinguishable
// from a newly constructed one with the same seed.
func (w *World) Reset(seed int64) {
	w.rng = rand.New(rand.NewSource(seed))

	w.player = Player{
		X:        w.cfg.Player.X,
		Y:        w.groundTop(),
		W:        w.cfg.Player.Width,
		H:        w.cfg.Player.Height,
		Vel:      0,
		OnGround: true,
	}
	w.obstacles = w.obstacles[:0]
	w.treats = w.treats[:0]
	w.score = 0
	w.gameOver = false
	w.elapsed = 0
	w.obstacleTimer = w.drawObstacleDelay()
	w.treatTimer = w.drawTreatDelay()
}

// groundTop is the resting y of the player's top edge: ground line minus
// player height. The player's y never exceeds it.
func (w *World) groundTop() float64 {
	return w.cfg.Field.GroundY - w.cfg.Player.Height
}

// Config returns the tunables this world was built with.
func (w *World) Config() config.Config {
	return w.cfg
}

// Score returns the current session score.
func (w *World) Score() int {
	return w.score
}

// Over reports whether the terminal flag is set.
func (w *World) Over() bool {
	return w.gameOver
}
