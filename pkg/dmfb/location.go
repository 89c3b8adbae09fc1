package dmfb

import "fmt"

// Location is a cell on the biochip grid.
type Location struct {
	X int
	Y int
}

func (l Location) String() string {
	return fmt.Sprintf("(%d, %d)", l.X, l.Y)
}

// Offset returns the location shifted by dx columns and dy rows.
func (l Location) Offset(dx, dy int) Location {
	return Location{X: l.X + dx, Y: l.Y + dy}
}

// ManhattanDistance computes MD(u, v) = |u.x - v.x| + |u.y - v.y|
func ManhattanDistance(u, v Location) int {
	return abs(u.X-v.X) + abs(u.Y-v.Y)
}

func abs(a int) int {
	if a < 0 {
		return -a
	}
	return a
}

// Footprint is the (height, width) area, in cells, occupied by an operation.
type Footprint struct {
	Height int
	Width  int
}

func (f Footprint) String() string {
	return fmt.Sprintf("%dx%d", f.Height, f.Width)
}

// Rotated swaps height and width.
func (f Footprint) Rotated() Footprint {
	return Footprint{Height: f.Width, Width: f.Height}
}

// Oriented returns the footprint as used on the grid for the given
// orientation flag.
func (f Footprint) Oriented(rotated bool) Footprint {
	if rotated {
		return f.Rotated()
	}
	return f
}

// Cells enumerates [at.X, at.X+Width) x [at.Y, at.Y+Height).
func (f Footprint) Cells(at Location) []Location {
	if f.Height <= 0 || f.Width <= 0 {
		return nil
	}
	cells := make([]Location, 0, f.Height*f.Width)
	for dx := 0; dx < f.Width; dx++ {
		for dy := 0; dy < f.Height; dy++ {
			cells = append(cells, at.Offset(dx, dy))
		}
	}
	return cells
}
