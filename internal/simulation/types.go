package simulation

import "math"

// BulletSpeed is the upward displacement of every bullet per frame.
const BulletSpeed = 6.0

// Vec is a point or displacement in world coordinates.
type Vec struct {
	X, Y float64
}

// Add returns v+o.
func (v Vec) Add(o Vec) Vec {
	return Vec{X: v.X + o.X, Y: v.Y + o.Y}
}

// Overlaps reports whether a and b are within threshold of each other on
// both axes. The threshold is the full size of the reference box, so the
// effective hit region is twice the drawn box.
func Overlaps(a, b Vec, threshold float64) bool {
	return math.Abs(a.X-b.X) < threshold && math.Abs(a.Y-b.Y) < threshold
}

// Damageable is anything with health that can be hit.
type Damageable interface {
	Position() Vec
	Extent() float64
	IsAlive() bool
	ApplyDamage(amount float64) bool
}

// Touches reports whether probe lies inside the hit region of a live target.
func Touches(probe Vec, target Damageable) bool {
	return target.IsAlive() && Overlaps(probe, target.Position(), target.Extent())
}

// Body is the shared shape of the player and enemies.
type Body struct {
	Pos    Vec
	Size   float64
	Health float64
	Alive  bool
}

// Position returns the body's centre.
func (b *Body) Position() Vec { return b.Pos }

// Extent returns the collision threshold.
func (b *Body) Extent() float64 { return b.Size }

// IsAlive reports whether the body still takes part in collision and drawing.
func (b *Body) IsAlive() bool { return b.Alive }

// ApplyDamage subtracts amount from health. Dead bodies are left untouched.
// Alive latches to false once health reaches zero; the return value is true
// only for the blow that caused it.
func (b *Body) ApplyDamage(amount float64) bool {
	if !b.Alive {
		return false
	}
	b.Health -= amount
	if b.Health <= 0 {
		b.Alive = false
		return true
	}
	return false
}

// Player is the single user-controlled entity.
type Player struct {
	Body
	Speed float64
}

// Enemy is a stationary target. Dead enemies stay in the slice.
type Enemy struct {
	Body
}

// Bullet travels at a fixed velocity until it leaves the top edge or hits.
type Bullet struct {
	Pos Vec
	Vel Vec
}

// Input is the held direction set sampled at the start of a frame.
type Input struct {
	Up, Down, Left, Right bool
}
