package simulation

import "testing"

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name      string
		a, b      Vec
		threshold float64
		want      bool
	}{
		{"same point", Vec{0, 0}, Vec{0, 0}, 20, true},
		{"documented example", Vec{110, 105}, Vec{100, 100}, 20, true},
		{"inside half extent", Vec{105, 105}, Vec{100, 100}, 20, true},
		{"beyond half extent", Vec{115, 100}, Vec{100, 100}, 20, true},
		{"on x edge", Vec{120, 100}, Vec{100, 100}, 20, false},
		{"on y edge", Vec{100, 80}, Vec{100, 100}, 20, false},
		{"one axis only", Vec{100, 150}, Vec{100, 100}, 20, false},
		{"zero threshold", Vec{1, 1}, Vec{1, 1}, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Overlaps(tt.a, tt.b, tt.threshold); got != tt.want {
				t.Errorf("Overlaps(%v, %v, %v) = %v, want %v", tt.a, tt.b, tt.threshold, got, tt.want)
			}
			if got := Overlaps(tt.b, tt.a, tt.threshold); got != tt.want {
				t.Errorf("Overlaps is not symmetric for %v, %v", tt.a, tt.b)
			}
		})
	}
}

func TestApplyDamage(t *testing.T) {
	b := &Body{Health: 50, Alive: true}

	if b.ApplyDamage(20) {
		t.Error("Expected first hit not to kill")
	}
	if b.Health != 30 {
		t.Errorf("Expected health 30, got %v", b.Health)
	}
	if b.ApplyDamage(20) {
		t.Error("Expected second hit not to kill")
	}
	if !b.ApplyDamage(20) {
		t.Error("Expected third hit to report the kill")
	}
	if b.Alive {
		t.Error("Expected body to be dead")
	}
	if b.ApplyDamage(20) {
		t.Error("Expected damage on a dead body to be ignored")
	}
	if b.Health != -10 {
		t.Errorf("Expected health frozen at -10, got %v", b.Health)
	}
}

func TestApplyDamageKillsAtExactlyZero(t *testing.T) {
	b := &Body{Health: 20, Alive: true}
	if !b.ApplyDamage(20) || b.Alive {
		t.Errorf("Expected health 0 to kill, got alive=%v", b.Alive)
	}
}

func TestDamageableImplementations(t *testing.T) {
	targets := []Damageable{
		&Player{Body: Body{Pos: Vec{1, 2}, Size: 20, Health: 1, Alive: true}},
		&Enemy{Body: Body{Pos: Vec{1, 2}, Size: 20, Health: 1, Alive: true}},
	}
	for _, target := range targets {
		if !Touches(Vec{10, 10}, target) {
			t.Errorf("%T: expected probe to touch", target)
		}
		if !target.ApplyDamage(1) {
			t.Errorf("%T: expected the blow to kill", target)
		}
		if Touches(Vec{1, 2}, target) {
			t.Errorf("%T: dead targets must not be touchable", target)
		}
	}
}

func TestCueString(t *testing.T) {
	if CueShoot.String() != "shoot" || CueHit.String() != "hit" {
		t.Errorf("unexpected cue names %q %q", CueShoot, CueHit)
	}
	if Cue(9).String() != "cue(9)" {
		t.Errorf("unexpected fallback name %q", Cue(9))
	}
}
