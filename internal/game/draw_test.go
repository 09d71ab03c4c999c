package game

import (
	"testing"

	"go.uber.org/mock/gomock"

	"chosenoffset.com/skirmish/internal/render/mocks"
	"chosenoffset.com/skirmish/internal/simulation"
	"chosenoffset.com/skirmish/internal/ui/hud"
)

func drawState() *simulation.State {
	s := simulation.NewState(&simulation.Config{
		Player: simulation.PlayerConfig{X: 400, Y: 300, Size: 20, Speed: 4, Health: 100},
	}, 800, 600, nil)
	s.Enemies = []simulation.Enemy{
		{Body: simulation.Body{Pos: simulation.Vec{X: 100, Y: 50}, Size: 20, Health: 50, Alive: true}},
		{Body: simulation.Body{Pos: simulation.Vec{X: 500, Y: 500}, Size: 20, Alive: false}},
	}
	s.Bullets = []simulation.Bullet{{Pos: simulation.Vec{X: 200, Y: 250}}}
	return s
}

func TestDrawOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	r := mocks.NewMockRenderer(ctrl)
	screen := mocks.NewMockImage(ctrl)

	g := New(drawState(), r, nil, nil, 800, 600)

	screen.EXPECT().Size().Return(800, 600)
	gomock.InOrder(
		screen.EXPECT().Fill(Background),
		r.EXPECT().FillRect(screen, float32(385), float32(285), float32(30), float32(30), PlayerColor),
		r.EXPECT().FillRect(screen, float32(90), float32(40), float32(20), float32(20), EnemyColor),
		r.EXPECT().FillRect(screen, float32(198), float32(240), float32(4), float32(10), BulletColor),
		r.EXPECT().FillRect(screen, float32(20), float32(20), float32(200), float32(20), hud.HealthFill),
		r.EXPECT().StrokeRect(screen, float32(20), float32(20), float32(200), float32(20), float32(1), hud.HealthOutline),
		r.EXPECT().FillRect(screen, float32(690), float32(10), float32(100), float32(100), hud.MinimapBack),
		r.EXPECT().FillRect(screen, float32(730), float32(40), float32(4), float32(4), hud.MinimapPlayer),
		r.EXPECT().FillRect(screen, float32(700), float32(15), float32(3), float32(3), hud.MinimapEnemies),
	)

	g.Draw(screen)
}

func TestDrawDeadPlayer(t *testing.T) {
	ctrl := gomock.NewController(t)
	r := mocks.NewMockRenderer(ctrl)
	screen := mocks.NewMockImage(ctrl)

	s := drawState()
	s.Enemies = nil
	s.Bullets = nil
	s.Player.Health = -0.2
	s.Player.Alive = false
	g := New(s, r, nil, nil, 800, 600)

	// The player sprite and the health fill are gone; the minimap still
	// tracks the player.
	screen.EXPECT().Size().Return(800, 600)
	gomock.InOrder(
		screen.EXPECT().Fill(Background),
		r.EXPECT().StrokeRect(screen, float32(20), float32(20), float32(200), float32(20), float32(1), hud.HealthOutline),
		r.EXPECT().FillRect(screen, float32(690), float32(10), float32(100), float32(100), hud.MinimapBack),
		r.EXPECT().FillRect(screen, float32(730), float32(40), float32(4), float32(4), hud.MinimapPlayer),
	)

	g.Draw(screen)
}
