package tui

import (
	"fmt"

	"pupdash/internal/config"
	"pupdash/internal/core"
	"pupdash/internal/game"
)

// Visual characters for rendering.
const (
	PupBody    = '█'
	PupHead    = '◆'
	CrateChar  = '▓'
	ConeChar   = '▲'
	TreatChar  = '●'
	GroundChar = '═'
)

// DrawWorld projects a world snapshot onto the cell buffer. The world is
// simulated in a fixed coordinate space (cfg.Field), so the projection simply
// scales positions to whatever terminal size the buffer has.
func DrawWorld(dst *core.Screen, snap game.Snapshot, cfg config.Config) {
	dst.Clear()

	sx := float64(dst.Width()) / cfg.Field.Width
	sy := float64(dst.Height()) / cfg.Field.Height

	groundRow := int(cfg.Field.GroundY * sy)
	dst.DrawHLine(0, groundRow, dst.Width(), GroundChar, core.ColorGray)

	for _, o := range snap.Obstacles {
		x, y, w, h := cellRect(o.X, o.Y, o.W, o.H, sx, sy)
		switch o.Kind {
		case game.KindCone:
			dst.FillRect(x, y, w, h, ConeChar, core.ColorBrightRed)
		default:
			dst.FillRect(x, y, w, h, CrateChar, core.ColorOrange)
		}
	}

	for _, tr := range snap.Treats {
		// A treat is a single glyph at its center; scaling a 9px square down
		// to cells would make it invisible at small terminal sizes.
		cx := int((tr.X + tr.W/2) * sx)
		cy := int((tr.Y + tr.H/2) * sy)
		dst.SetCell(cx, cy, TreatChar, core.ColorBrightMagenta)
	}

	drawPup(dst, snap, sx, sy)
	drawHUD(dst, snap)

	if snap.GameOver {
		drawCenteredMessage(dst, "GAME OVER",
			fmt.Sprintf("Score: %d  |  Press r to restart", snap.Score))
	}
}

// drawPup renders the player with a head glyph in the top-right corner of
// its hitbox, facing the scroll direction.
func drawPup(dst *core.Screen, snap game.Snapshot, sx, sy float64) {
	p := snap.Player
	x, y, w, h := cellRect(p.X, p.Y, p.W, p.H, sx, sy)
	dst.FillRect(x, y, w, h, PupBody, core.ColorBrightYellow)
	dst.SetCell(x+w-1, y, PupHead, core.ColorBrightYellow)
}

func drawHUD(dst *core.Screen, snap game.Snapshot) {
	scoreText := fmt.Sprintf(" Score: %d ", snap.Score)
	dst.DrawTextColored(2, 0, scoreText, core.ColorWhite)

	timeText := fmt.Sprintf(" %5.1fs ", snap.Elapsed)
	dst.DrawTextColored(dst.Width()-len(timeText)-2, 0, timeText, core.ColorGray)
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.FillRect(boxX, boxY, boxW, boxH, ' ', core.ColorDefault)
	dst.DrawBox(boxX, boxY, boxW, boxH)

	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}

// cellRect converts a world rectangle to cell coordinates, keeping every
// entity at least one cell big so nothing disappears on small terminals.
func cellRect(x, y, w, h, sx, sy float64) (cx, cy, cw, ch int) {
	cx = int(x*sx + 0.5)
	cy = int(y*sy + 0.5)
	cw = core.Max(1, int(w*sx+0.5))
	ch = core.Max(1, int(h*sy+0.5))
	return cx, cy, cw, ch
}
