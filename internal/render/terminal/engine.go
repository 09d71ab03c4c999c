package terminal

import (
	"bytes"
	"errors"
	"io"
	"fmt"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"

	"chosenoffset.com/skirmish/internal/render"
)

// FrameDuration is the tick period of the terminal loop.
const FrameDuration = time.Second / 60

// Engine implements render.Engine on a terminal screen.
type Engine struct {
	screen tcell.Screen
	input  *InputManager
	canvas *Canvas
	title  string
}

// NewEngine creates an engine on the current terminal.
func NewEngine(input *InputManager) (*Engine, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("failed to open terminal: %w", err)
	}
	return NewEngineWithScreen(screen, input), nil
}

// NewEngineWithScreen creates an engine on an existing, uninitialized screen.
func NewEngineWithScreen(screen tcell.Screen, input *InputManager) *Engine {
	return &Engine{
		screen: screen,
		input:  input,
		canvas: NewCanvas(0, 0, 0, 0),
	}
}

// SetWindowSize is a no-op; the terminal decides its own size.
func (e *Engine) SetWindowSize(width, height int) {}

// SetWindowTitle records the title, logged when the run starts.
func (e *Engine) SetWindowTitle(title string) {
	e.title = title
}

// SetWindowResizable is a no-op; terminals are always resizable.
func (e *Engine) SetWindowResizable(resizable bool) {}

// RunGame runs the tick loop until the game returns an error, the user
// presses Ctrl-C, or the game asks to quit with render.ErrQuit.
// Log output is held back while the screen is open and written to the
// previous log writer once the terminal is restored.
func (e *Engine) RunGame(game render.Game) error {
	held := holdLogs()
	defer held.release()

	if err := e.screen.Init(); err != nil {
		return fmt.Errorf("failed to initialize terminal: %w", err)
	}
	defer e.screen.Fini()

	e.screen.EnableMouse()
	e.screen.SetStyle(tcell.StyleDefault.
		Background(tcell.ColorDefault).
		Foreground(tcell.ColorWhite))
	e.screen.Clear()
	if e.title != "" {
		log.Printf("Running %q in terminal mode", e.title)
	}

	// Start input handling goroutine
	events := make(chan tcell.Event, 16)
	done := make(chan struct{})
	defer close(done)
	go func() {
		for {
			ev := e.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	ticker := time.NewTicker(FrameDuration)
	defer ticker.Stop()

	for {
		// Handle input (non-blocking)
	drain:
		for {
			select {
			case ev := <-events:
				if key, ok := ev.(*tcell.EventKey); ok && key.Key() == tcell.KeyCtrlC {
					return nil
				}
				if _, ok := ev.(*tcell.EventResize); ok {
					e.screen.Sync()
				}
				e.input.HandleEvent(ev)
			default:
				break drain
			}
		}

		e.input.BeginTick()
		if err := game.Update(); err != nil {
			if errors.Is(err, render.ErrQuit) {
				return nil
			}
			return err
		}

		cols, rows := e.screen.Size()
		width, height := game.Layout(cols, rows)
		e.canvas.Resize(cols, rows, width, height)
		game.Draw(e.canvas)
		e.canvas.Flush(e.screen)
		e.screen.Show()

		// Wait for next frame
		<-ticker.C
	}
}

// heldLogs buffers the standard logger's output.
type heldLogs struct {
	prev io.Writer
	buf  bytes.Buffer
}

func holdLogs() *heldLogs {
	h := &heldLogs{prev: log.Writer()}
	log.SetOutput(&h.buf)
	return h
}

// release restores the previous writer and replays what was logged.
func (h *heldLogs) release() {
	log.SetOutput(h.prev)
	h.prev.Write(h.buf.Bytes())
}
