package terminal

import (
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"

	"chosenoffset.com/skirmish/internal/render"
)

// keyTimeout is how long a key counts as held after its last press or
// auto-repeat. Terminals never report key releases.
const keyTimeout = 150 * time.Millisecond

// InputManager implements render.InputManager from tcell events.
type InputManager struct {
	mu        sync.Mutex
	now       func() time.Time
	lastPress [render.KeyCount]time.Time

	mouseDown     bool
	pendingClicks int
	clickThisTick bool
}

// NewInputManager creates an input manager using the wall clock.
func NewInputManager() *InputManager {
	return &InputManager{now: time.Now}
}

// HandleEvent records a key press or mouse button change.
func (m *InputManager) HandleEvent(ev tcell.Event) {
	m.mu.Lock()
	defer m.mu.Unlock()

	switch ev := ev.(type) {
	case *tcell.EventKey:
		if key, ok := keyFromEvent(ev); ok {
			m.lastPress[key] = m.now()
		}
	case *tcell.EventMouse:
		down := ev.Buttons()&tcell.Button1 != 0
		if down && !m.mouseDown {
			m.pendingClicks++
		}
		m.mouseDown = down
	}
}

// BeginTick releases at most one queued click to the coming update, so
// rapid clicks between ticks each fire once.
func (m *InputManager) BeginTick() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.clickThisTick = m.pendingClicks > 0
	if m.clickThisTick {
		m.pendingClicks--
	}
}

// IsKeyPressed reports whether key was pressed within the hold timeout.
func (m *InputManager) IsKeyPressed(key render.Key) bool {
	if key < 0 || int(key) >= render.KeyCount {
		return false
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	last := m.lastPress[key]
	return !last.IsZero() && m.now().Sub(last) < keyTimeout
}

// IsMouseButtonJustPressed reports a left click released by BeginTick.
// Terminals only reliably report the primary button.
func (m *InputManager) IsMouseButtonJustPressed(button render.MouseButton) bool {
	if button != render.MouseButtonLeft {
		return false
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.clickThisTick
}

// keyFromEvent converts a tcell key event to a render.Key.
func keyFromEvent(ev *tcell.EventKey) (render.Key, bool) {
	switch ev.Key() {
	case tcell.KeyUp:
		return render.KeyUp, true
	case tcell.KeyDown:
		return render.KeyDown, true
	case tcell.KeyLeft:
		return render.KeyLeft, true
	case tcell.KeyRight:
		return render.KeyRight, true
	case tcell.KeyEscape:
		return render.KeyEscape, true
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'w', 'W':
			return render.KeyW, true
		case 'a', 'A':
			return render.KeyA, true
		case 's', 'S':
			return render.KeyS, true
		case 'd', 'D':
			return render.KeyD, true
		}
	}
	return 0, false
}
