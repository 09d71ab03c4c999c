package main

import (
	"flag"
	"log"
	"math/rand"
	"time"

	"chosenoffset.com/skirmish/internal/audio"
	"chosenoffset.com/skirmish/internal/game"
	"chosenoffset.com/skirmish/internal/render"
	ebitenrender "chosenoffset.com/skirmish/internal/render/ebiten"
	"chosenoffset.com/skirmish/internal/render/terminal"
	"chosenoffset.com/skirmish/internal/simulation"
)

func main() {
	configPath := flag.String("config", "data/skirmish.json", "simulation tuning file")
	term := flag.Bool("term", false, "play in the terminal instead of a window")
	seed := flag.Int64("seed", 0, "enemy placement seed (0 picks one from the clock)")
	screenWidth := flag.Int("width", 800, "canvas width")
	screenHeight := flag.Int("height", 600, "canvas height")
	mute := flag.Bool("mute", false, "disable sound")
	flag.Parse()

	cfg, err := simulation.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	log.Printf("Enemy placement seed: %d", *seed)
	state := simulation.NewState(cfg, float64(*screenWidth), float64(*screenHeight), rand.New(rand.NewSource(*seed)))

	player, cleanup := openAudio(*mute)
	defer cleanup()

	renderer, inputMgr, engine, err := openBackend(*term)
	if err != nil {
		log.Fatalf("Failed to open display: %v", err)
	}

	g := game.New(state, renderer, inputMgr, player, *screenWidth, *screenHeight)

	engine.SetWindowSize(*screenWidth, *screenHeight)
	engine.SetWindowTitle("Skirmish - WASD to move, click to fire")
	engine.SetWindowResizable(false)

	log.Println("Starting game...")
	if err := engine.RunGame(g); err != nil {
		log.Fatal(err)
	}
	log.Printf("Game over after %d frames, %d enemies left", state.Frame, state.AliveEnemies())
}

// openAudio starts the sound manager. Audio failures are not fatal; the
// game runs silently instead.
func openAudio(mute bool) (audio.Player, func()) {
	cfg := audio.LoadConfig()
	if mute {
		cfg.Enabled = false
	}
	if !cfg.Enabled {
		log.Println("Audio disabled")
		return audio.Nop{}, func() {}
	}

	sm := audio.NewSoundManager(cfg)
	if err := sm.Initialize(); err != nil {
		log.Printf("Warning: Failed to initialize audio: %v", err)
		return audio.Nop{}, func() {}
	}
	return sm, sm.Cleanup
}

func openBackend(term bool) (render.Renderer, render.InputManager, render.Engine, error) {
	if !term {
		return ebitenrender.NewRenderer(), ebitenrender.NewInputManager(), ebitenrender.NewEngine(), nil
	}

	input := terminal.NewInputManager()
	engine, err := terminal.NewEngine(input)
	if err != nil {
		return nil, nil, nil, err
	}
	return terminal.NewRenderer(), input, engine, nil
}
