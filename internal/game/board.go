package game

import (
	"bishoprook/internal/domain"
)

const (
	BoardSize = 8
	MaxRounds = 15

	// The bishop never moves; the rook starts in the corner.
	BishopX, BishopY = 2, 2 // c3
	RookStartX       = 7    // h1
	RookStartY       = 0
)

// At converts internal coordinates to a Position with chess notation filled in.
func At(x, y int) domain.Position {
	return domain.Position{
		File: string(rune('a' + x)),
		Rank: y + 1,
		X:    x,
		Y:    y,
	}
}

// Wrap folds a coordinate back onto the board.
func Wrap(v int) int {
	v %= BoardSize
	if v < 0 {
		v += BoardSize
	}
	return v
}

// MoveRook advances the rook by squares in the given direction, wrapping
// around the board edge on the moved axis.
func MoveRook(x, y int, direction string, squares int) (int, int) {
	if direction == domain.DirectionUp {
		return x, Wrap(y + squares)
	}
	return Wrap(x + squares), y
}

// Captured reports whether the bishop attacks the square. The bishop captures
// on any strict diagonal from its fixed square.
func Captured(x, y int) bool {
	dx := x - BishopX
	if dx < 0 {
		dx = -dx
	}
	dy := y - BishopY
	if dy < 0 {
		dy = -dy
	}
	return dx == dy && dx > 0
}
