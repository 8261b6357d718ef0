package shooter

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/space-shooter/internal/core"
)

// Visual characters for rendering
const (
	ShipNose         = '>'
	ShipTail         = '='
	EnemyChar        = '<'
	AsteroidChar     = '@'
	PlayerBulletChar = '-'
	EnemyBulletChar  = '•'
	DropChar         = '+'
	StarChar         = '.'
	ExplosionChar    = '*'
	HitChar          = 'x'
)

// Minimum terminal size
const (
	minScreenW = 30
	minScreenH = 10
)

// Render draws the current game state into the screen buffer.
func (g *Game) Render(dst *core.Screen) {
	w, h := dst.Width(), dst.Height()
	if w < minScreenW || h < minScreenH {
		dst.DrawTextCentered(h/2, "Terminal too small")
		return
	}

	v := viewport{
		worldW: g.cfg.World.Width,
		worldH: g.cfg.World.Height,
		x:      0,
		y:      1,
		w:      w,
		h:      h - 1,
	}

	g.renderWorld(dst, v)
	g.renderEffects(dst, v)
	g.renderHUD(dst)
	g.renderOverlay(dst)
}

// viewport maps world coordinates onto the play area of the screen.
type viewport struct {
	worldW, worldH float64
	x, y, w, h     int
}

func (v viewport) cell(p core.Vec) (int, int) {
	cx := v.x + int(p.X/v.worldW*float64(v.w))
	cy := v.y + int(p.Y/v.worldH*float64(v.h))
	return cx, cy
}

func (g *Game) renderWorld(dst *core.Screen, v viewport) {
	for _, s := range g.sim.Entities(CategoryStar) {
		x, y := v.cell(s.Pos)
		// Faster stars are closer and brighter
		color := core.ColorGray
		if -s.Vel.X > (g.cfg.Stars.MinSpeed+g.cfg.Stars.MaxSpeed)/2 {
			color = core.ColorWhite
		}
		dst.SetColored(x, y, StarChar, color)
	}

	for _, d := range g.sim.Entities(CategoryDrop) {
		x, y := v.cell(d.Pos)
		dst.SetColored(x, y, DropChar, core.ColorBrightGreen)
	}

	for _, e := range g.sim.Entities(CategoryAsteroid) {
		x, y := v.cell(e.Pos)
		dst.SetColored(x, y, AsteroidChar, core.ColorOrange)
	}

	for _, e := range g.sim.Entities(CategoryEnemy) {
		x, y := v.cell(e.Pos)
		dst.SetColored(x, y, EnemyChar, core.ColorBrightMagenta)
	}

	for _, e := range g.sim.Entities(CategoryBoss) {
		x, y := v.cell(e.Pos)
		dst.DrawTextColored(x-1, y-1, "/#\\", core.ColorBrightRed)
		dst.DrawTextColored(x-2, y, "<###", core.ColorBrightRed)
		dst.DrawTextColored(x-1, y+1, "\\#/", core.ColorBrightRed)
		bar := healthBar(e.Health, e.MaxHealth, 4)
		dst.DrawTextColored(x-2, y-2, bar, core.ColorRed)
	}

	for _, b := range g.sim.Entities(CategoryEnemyBullet) {
		x, y := v.cell(b.Pos)
		dst.SetColored(x, y, EnemyBulletChar, core.ColorRed)
	}

	for _, b := range g.sim.Entities(CategoryPlayerBullet) {
		x, y := v.cell(b.Pos)
		dst.SetColored(x, y, PlayerBulletChar, core.ColorBrightYellow)
	}

	if ship, ok := g.sim.Ship(); ok {
		x, y := v.cell(ship.Pos)
		dst.SetColored(x-1, y, ShipTail, core.ColorCyan)
		dst.SetColored(x, y, ShipNose, core.ColorBrightCyan)
	}
}

func (g *Game) renderEffects(dst *core.Screen, v viewport) {
	for _, e := range g.hud.effects {
		x, y := v.cell(e.pos)
		switch e.kind {
		case EffectExplosion:
			dst.SetColored(x, y, ExplosionChar, core.ColorBrightYellow)
			if e.scale >= 1 {
				dst.SetColored(x-1, y, ExplosionChar, core.ColorOrange)
				dst.SetColored(x+1, y, ExplosionChar, core.ColorOrange)
				dst.SetColored(x, y-1, ExplosionChar, core.ColorRed)
				dst.SetColored(x, y+1, ExplosionChar, core.ColorRed)
			}
		case EffectHit:
			dst.SetColored(x, y, HitChar, core.ColorYellow)
		case EffectPickup:
			dst.SetColored(x, y, DropChar, core.ColorBrightWhite)
		}
	}
}

func (g *Game) renderHUD(dst *core.Screen) {
	st := g.State()

	scoreText := fmt.Sprintf("SCORE %d", st.Score)
	dst.DrawTextColored(1, 0, scoreText, core.ColorBrightWhite)

	hpColor := core.ColorBrightGreen
	switch {
	case st.Health <= 25:
		hpColor = core.ColorBrightRed
	case st.Health <= 50:
		hpColor = core.ColorYellow
	}
	hpText := fmt.Sprintf("HP %s %3d", healthBar(st.Health, g.cfg.Player.MaxHealth, 10), st.Health)
	dst.DrawTextColored((dst.Width()-len([]rune(hpText)))/2, 0, hpText, hpColor)

	levelText := fmt.Sprintf("LV %d", st.Level)
	dst.DrawTextColored(dst.Width()-len(levelText)-1, 0, levelText, core.ColorBrightCyan)
}

func (g *Game) renderOverlay(dst *core.Screen) {
	h := dst.Height()

	if g.hud.bannerMs > 0 && !g.sim.GameOver() {
		dst.DrawTextCentered(h/3, fmt.Sprintf("*** LEVEL %d ***", g.hud.bannerLevel))
	}

	if g.paused {
		drawMessageBox(dst, []string{"PAUSED", "", "P to resume"})
		return
	}

	if g.hud.gameOver {
		stats := g.sim.Stats()
		drawMessageBox(dst, []string{
			"GAME OVER",
			"",
			fmt.Sprintf("Score: %d", g.hud.finalScore),
			fmt.Sprintf("Level: %d  Kills: %d", stats.MaxLevel, stats.TotalKills()),
			"",
			"R restart  Q quit",
		})
	}
}

// drawMessageBox draws centered lines inside a box.
func drawMessageBox(dst *core.Screen, lines []string) {
	width := 0
	for _, l := range lines {
		width = max(width, len([]rune(l)))
	}
	boxW := width + 4
	boxH := len(lines) + 2
	x := (dst.Width() - boxW) / 2
	y := (dst.Height() - boxH) / 2

	dst.DrawRect(core.NewRect(x, y, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(x, y, boxW, boxH))
	for i, l := range lines {
		dst.DrawTextCentered(y+1+i, l)
	}
}

// healthBar renders a fixed-width bar like [####----].
func healthBar(health, maxHealth, width int) string {
	if maxHealth <= 0 {
		return "[" + strings.Repeat("-", width) + "]"
	}
	filled := core.Clamp((health*width+maxHealth-1)/maxHealth, 0, width)
	return "[" + strings.Repeat("#", filled) + strings.Repeat("-", width-filled) + "]"
}
