package game

// spawnObstacle places a new obstacle at the field's right edge, resting on
// the ground plane. The variant is chosen uniformly; variants differ in
// dimensions only.
func (w *World) spawnObstacle() {
	kind := KindCrate
	size := w.cfg.Obstacles.Crate
	if w.rng.Intn(2) == 1 {
		kind = KindCone
		size = w.cfg.Obstacles.Cone
	}

	w.obstacles = append(w.obstacles, Obstacle{
		Kind: kind,
		X:    w.cfg.Field.Width,
		Y:    w.cfg.Field.GroundY - size.Height,
		W:    size.Width,
		H:    size.Height,
	})
}

// spawnTreat places a new treat at the field's right edge at one of the three
// configured height tiers, chosen uniformly.
func (w *World) spawnTreat() {
	tier := w.rng.Intn(len(w.cfg.Treats.Tiers))

	w.treats = append(w.treats, Treat{
		X:    w.cfg.Field.Width,
		Y:    w.cfg.Field.GroundY - w.cfg.Treats.Tiers[tier] - w.cfg.Treats.Height,
		W:    w.cfg.Treats.Width,
		H:    w.cfg.Treats.Height,
		Tier: tier,
	})
}

// drawObstacleDelay draws the next obstacle spawn delay, uniform continuous
// over the configured range.
func (w *World) drawObstacleDelay() float64 {
	return w.uniform(w.cfg.Obstacles.SpawnIntervalMin, w.cfg.Obstacles.SpawnIntervalMax)
}

// drawTreatDelay draws the next treat spawn delay.
func (w *World) drawTreatDelay() float64 {
	return w.uniform(w.cfg.Treats.SpawnIntervalMin, w.cfg.Treats.SpawnIntervalMax)
}

func (w *World) uniform(min, max float64) float64 {
	if max <= min {
		return min
	}
	return min + w.rng.Float64()*(max-min)
}
