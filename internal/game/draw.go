package game

import (
	"chosenoffset.com/skirmish/internal/render"
)

// Draw renders the game to the screen. It only reads state.
func (g *Game) Draw(screen render.Image) {
	screen.Fill(Background)

	g.drawPlayer(screen)
	g.drawEnemies(screen)
	g.drawBullets(screen)

	g.HealthBar.Draw(g.Renderer, screen, g.State.Player.Health)
	g.Minimap.Draw(g.Renderer, screen, g.State)
}

func (g *Game) drawPlayer(screen render.Image) {
	p := &g.State.Player
	if !p.Alive {
		return
	}
	half := float32(PlayerDrawSize) / 2
	g.Renderer.FillRect(screen, float32(p.Pos.X)-half, float32(p.Pos.Y)-half, PlayerDrawSize, PlayerDrawSize, PlayerColor)
}

func (g *Game) drawEnemies(screen render.Image) {
	for i := range g.State.Enemies {
		e := &g.State.Enemies[i]
		if !e.Alive {
			continue
		}
		size := float32(e.Size)
		g.Renderer.FillRect(screen, float32(e.Pos.X)-size/2, float32(e.Pos.Y)-size/2, size, size, EnemyColor)
	}
}

func (g *Game) drawBullets(screen render.Image) {
	for _, b := range g.State.Bullets {
		g.Renderer.FillRect(screen, float32(b.Pos.X)-BulletWidth/2, float32(b.Pos.Y)-BulletLength, BulletWidth, BulletLength, BulletColor)
	}
}
