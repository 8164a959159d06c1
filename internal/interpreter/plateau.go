package interpreter

import "fmt"

// Plateau is the inclusive grid [0,MaxX] x [0,MaxY].
type Plateau struct {
	MaxX, MaxY int
}

func NewPlateau(maxX, maxY int) (Plateau, error) {
	if maxX <= 0 || maxY <= 0 {
		return Plateau{}, fmt.Errorf("%w: %d %d", ErrInvalidPlateauSize, maxX, maxY)
	}
	return Plateau{MaxX: maxX, MaxY: maxY}, nil
}

func (p Plateau) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x <= p.MaxX && y <= p.MaxY
}

func (p Plateau) String() string {
	return fmt.Sprintf("%dx%d", p.MaxX, p.MaxY)
}
