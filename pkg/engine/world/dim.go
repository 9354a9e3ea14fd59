package world

// Dim is a width and height, of a grid or of the screen
type Dim struct {
	W int
	H int
}

// NewDim creates a dimension
func NewDim(w, h int) Dim {
	return Dim{W: w, H: h}
}

// Idx returns the index of p in a dense row-major array of this dimension
func (d Dim) Idx(p Pos) int {
	return p.X + d.W*p.Y
}

// Area returns the number of cells
func (d Dim) Area() int {
	return d.W * d.H
}

// Contains checks if a position is within bounds
func (d Dim) Contains(p Pos) bool {
	return p.X >= 0 && p.X < d.W && p.Y >= 0 && p.Y < d.H
}

// IsBorder checks if a position is on the edge of the grid
func (d Dim) IsBorder(p Pos) bool {
	return d.Contains(p) && (p.X == 0 || p.Y == 0 || p.X == d.W-1 || p.Y == d.H-1)
}

// Center returns the position at the middle of the grid
func (d Dim) Center() Pos {
	return Pos{X: d.W / 2, Y: d.H / 2}
}

// InDir returns the neighbour of p in the given direction, failing at every edge
func (d Dim) InDir(p Pos, dir Direction) (Pos, bool) {
	q, ok := p.InDir(dir)
	if !ok || !d.Contains(q) {
		return p, false
	}
	return q, true
}

// Verticalize trades width for height: the new height is the sum of both and
// the new width is half the old height, at least minWidth.
func (d *Dim) Verticalize(minWidth int) {
	w := d.H
	d.H += d.W
	d.W = max(w/2, minWidth)
}
