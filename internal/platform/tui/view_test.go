package tui

import (
	"strings"
	"testing"

	"pupdash/internal/config"
	"pupdash/internal/core"
	"pupdash/internal/game"
)

func TestDrawWorldBasics(t *testing.T) {
	cfg := config.DefaultConfig()
	w := game.New(cfg, 1)
	screen := core.NewScreen(80, 23)

	DrawWorld(screen, w.Snapshot(), cfg)

	// Ground line spans the projected ground row.
	groundRow := int(cfg.Field.GroundY * float64(screen.Height()) / cfg.Field.Height)
	for _, x := range []int{0, 40, 79} {
		if screen.Get(x, groundRow) != GroundChar {
			t.Fatalf("expected ground at (%d, %d), got %q", x, groundRow, screen.Get(x, groundRow))
		}
	}

	if !strings.Contains(screen.Row(0), "Score: 0") {
		t.Errorf("HUD should show the score, row 0 = %q", screen.Row(0))
	}

	// The pup sits above the ground line.
	if !strings.ContainsRune(screen.String(), PupBody) {
		t.Error("player should be drawn")
	}
}

func TestDrawWorldEntities(t *testing.T) {
	cfg := config.DefaultConfig()
	screen := core.NewScreen(80, 23)

	snap := game.Snapshot{
		Player: game.Player{X: 40, Y: 146, W: 12, H: 14, OnGround: true},
		Obstacles: []game.Obstacle{
			{Kind: game.KindCrate, X: 160, Y: 144, W: 16, H: 16},
			{Kind: game.KindCone, X: 220, Y: 140, W: 11, H: 20},
		},
		Treats: []game.Treat{
			{X: 190, Y: 83, W: 9, H: 9, Tier: 2},
		},
	}

	DrawWorld(screen, snap, cfg)
	out := screen.String()

	if !strings.ContainsRune(out, CrateChar) {
		t.Error("crate should be drawn")
	}
	if !strings.ContainsRune(out, ConeChar) {
		t.Error("cone should be drawn")
	}
	if !strings.ContainsRune(out, TreatChar) {
		t.Error("treat should be drawn")
	}
}

func TestDrawWorldGameOver(t *testing.T) {
	cfg := config.DefaultConfig()
	screen := core.NewScreen(80, 23)

	snap := game.Snapshot{
		GameOver: true,
		Score:    7,
		Player:   game.Player{X: 40, Y: 146, W: 12, H: 14, OnGround: true},
	}

	DrawWorld(screen, snap, cfg)
	out := screen.String()

	if !strings.Contains(out, "GAME OVER") {
		t.Error("game over banner should be drawn")
	}
	if !strings.Contains(out, "Score: 7") {
		t.Error("final score should be shown")
	}
}

func TestRenderScreenStripsNothing(t *testing.T) {
	s := core.NewScreen(10, 2)
	s.DrawTextColored(0, 0, "ab", core.ColorBrightYellow)
	s.DrawText(0, 1, "cd")

	out := RenderScreen(s)
	for _, want := range []string{"ab", "cd"} {
		if !strings.Contains(out, want) {
			t.Errorf("rendered output should contain %q", want)
		}
	}
	if strings.Count(out, "\n") != 1 {
		t.Errorf("expected exactly one newline between two rows, got %d", strings.Count(out, "\n"))
	}
}
