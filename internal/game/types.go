package game

import "image/color"

// Playfield colours
var (
	Background  = color.RGBA{255, 255, 255, 255}
	PlayerColor = color.RGBA{0, 255, 0, 255}
	EnemyColor  = color.RGBA{255, 0, 0, 255}
	BulletColor = color.RGBA{255, 255, 0, 255}
)

// Sprite sizes in canvas pixels. The player square is drawn at a fixed
// size independent of its collision size.
const (
	PlayerDrawSize = 30
	BulletWidth    = 4
	BulletLength   = 10
)
