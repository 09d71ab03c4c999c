package game

import (
	"log"

	"chosenoffset.com/skirmish/internal/audio"
	"chosenoffset.com/skirmish/internal/render"
	"chosenoffset.com/skirmish/internal/simulation"
	"chosenoffset.com/skirmish/internal/ui/hud"
)

// Game drives one arcade run: it samples input, steps the simulation,
// carries out the resulting effects and draws the frame.
type Game struct {
	ScreenWidth  int
	ScreenHeight int
	State        *simulation.State
	Renderer     render.Renderer
	InputMgr     render.InputManager
	Audio        audio.Player

	HealthBar hud.HealthBar
	Minimap   hud.Minimap
}

// New creates a game over an existing state. A nil player mutes audio.
func New(state *simulation.State, r render.Renderer, input render.InputManager, player audio.Player, width, height int) *Game {
	if player == nil {
		player = audio.Nop{}
	}
	return &Game{
		ScreenWidth:  width,
		ScreenHeight: height,
		State:        state,
		Renderer:     r,
		InputMgr:     input,
		Audio:        player,
		HealthBar:    hud.DefaultHealthBar(),
		Minimap:      hud.DefaultMinimap(),
	}
}

// Update handles one simulation tick.
func (g *Game) Update() error {
	if g.InputMgr.IsKeyPressed(render.KeyEscape) {
		return render.ErrQuit
	}

	if g.InputMgr.IsMouseButtonJustPressed(render.MouseButtonLeft) {
		g.apply(g.State.Fire())
	}

	g.apply(g.State.Step(ReadInput(g.InputMgr)))
	return nil
}

// Layout returns the game's logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.ScreenWidth, g.ScreenHeight
}

// ReadInput samples the held movement keys. WASD and the arrow keys are
// equivalent.
func ReadInput(in render.InputManager) simulation.Input {
	return simulation.Input{
		Up:    in.IsKeyPressed(render.KeyW) || in.IsKeyPressed(render.KeyUp),
		Down:  in.IsKeyPressed(render.KeyS) || in.IsKeyPressed(render.KeyDown),
		Left:  in.IsKeyPressed(render.KeyA) || in.IsKeyPressed(render.KeyLeft),
		Right: in.IsKeyPressed(render.KeyD) || in.IsKeyPressed(render.KeyRight),
	}
}

// apply carries out simulation effects.
func (g *Game) apply(effects []simulation.Effect) {
	for _, e := range effects {
		switch e.Kind {
		case simulation.EffectPlayCue:
			g.Audio.Play(e.Cue)
		case simulation.EffectEnemyDown:
			log.Printf("Enemy %d destroyed at frame %d (%d remaining)", e.Enemy, g.State.Frame, g.State.AliveEnemies())
		case simulation.EffectPlayerDown:
			log.Printf("Player down at frame %d", g.State.Frame)
		}
	}
}
