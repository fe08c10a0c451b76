package game

// Snapshot is a read-only copy of the world state, taken once per tick for
// the render layer and for tests. Mutating a snapshot never affects the
// world.
type Snapshot struct {
	Elapsed   float64 // seconds of simulated play
	Score     int
	GameOver  bool
	Player    Player
	Jumping   bool // true while airborne
	Obstacles []Obstacle
	Treats    []Treat
}

// Snapshot captures the current world state.
func (w *World) Snapshot() Snapshot {
	obstacles := make([]Obstacle, len(w.obstacles))
	copy(obstacles, w.obstacles)
	treats := make([]Treat, len(w.treats))
	copy(treats, w.treats)

	return Snapshot{
		Elapsed:   w.elapsed,
		Score:     w.score,
		GameOver:  w.gameOver,
		Player:    w.player,
		Jumping:   !w.player.OnGround,
		Obstacles: obstacles,
		Treats:    treats,
	}
}
