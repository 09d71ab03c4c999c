package terminal

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"chosenoffset.com/skirmish/internal/render"
)

func newTestInput(clock *time.Time) *InputManager {
	m := NewInputManager()
	m.now = func() time.Time { return *clock }
	return m
}

func TestKeyHeldUntilTimeout(t *testing.T) {
	clock := time.Unix(1000, 0)
	m := newTestInput(&clock)

	if m.IsKeyPressed(render.KeyW) {
		t.Fatal("Expected no keys held initially")
	}

	m.HandleEvent(tcell.NewEventKey(tcell.KeyRune, 'w', tcell.ModNone))
	if !m.IsKeyPressed(render.KeyW) {
		t.Error("Expected W held right after press")
	}

	clock = clock.Add(keyTimeout - time.Millisecond)
	if !m.IsKeyPressed(render.KeyW) {
		t.Error("Expected W held within the timeout")
	}

	clock = clock.Add(2 * time.Millisecond)
	if m.IsKeyPressed(render.KeyW) {
		t.Error("Expected W released after the timeout")
	}
}

func TestKeyMapping(t *testing.T) {
	tests := []struct {
		ev   *tcell.EventKey
		want render.Key
	}{
		{tcell.NewEventKey(tcell.KeyRune, 'a', tcell.ModNone), render.KeyA},
		{tcell.NewEventKey(tcell.KeyRune, 'S', tcell.ModShift), render.KeyS},
		{tcell.NewEventKey(tcell.KeyRune, 'd', tcell.ModNone), render.KeyD},
		{tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), render.KeyUp},
		{tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone), render.KeyDown},
		{tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), render.KeyLeft},
		{tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone), render.KeyRight},
		{tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), render.KeyEscape},
	}
	for _, tt := range tests {
		got, ok := keyFromEvent(tt.ev)
		if !ok || got != tt.want {
			t.Errorf("keyFromEvent(%v) = %v, %v; want %v", tt.ev.Name(), got, ok, tt.want)
		}
	}

	if _, ok := keyFromEvent(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)); ok {
		t.Error("Expected unrelated keys to be ignored")
	}
}

func TestOutOfRangeKey(t *testing.T) {
	m := NewInputManager()
	if m.IsKeyPressed(render.Key(-1)) || m.IsKeyPressed(render.Key(render.KeyCount)) {
		t.Error("Expected out-of-range keys to report not pressed")
	}
}

func TestClicksAreEdgeTriggeredAndQueued(t *testing.T) {
	m := NewInputManager()
	press := tcell.NewEventMouse(5, 5, tcell.Button1, tcell.ModNone)
	release := tcell.NewEventMouse(5, 5, tcell.ButtonNone, tcell.ModNone)

	// Two full clicks and a drag report between ticks.
	m.HandleEvent(press)
	m.HandleEvent(press)
	m.HandleEvent(release)
	m.HandleEvent(press)
	m.HandleEvent(release)

	m.BeginTick()
	if !m.IsMouseButtonJustPressed(render.MouseButtonLeft) {
		t.Error("Expected the first click on tick 1")
	}
	if m.IsMouseButtonJustPressed(render.MouseButtonRight) {
		t.Error("Expected right button to never report")
	}

	m.BeginTick()
	if !m.IsMouseButtonJustPressed(render.MouseButtonLeft) {
		t.Error("Expected the second click on tick 2")
	}

	m.BeginTick()
	if m.IsMouseButtonJustPressed(render.MouseButtonLeft) {
		t.Error("Expected no click on tick 3")
	}
}
