package world

// PosMap maps every position of a grid to a value, with a default value on
// positions never explicitly set. It is never resized after construction.
//
// Positions outside the dimension are a caller error (index out of range).
type PosMap[T comparable] struct {
	dim          Dim
	values       []T
	defaultValue T
}

// PosSet is a PosMap used as a set of positions
type PosSet = PosMap[bool]

// NewPosMap creates a map of the given dimensions filled with defaultValue
func NewPosMap[T comparable](dim Dim, defaultValue T) *PosMap[T] {
	values := make([]T, dim.Area())
	var zero T
	if defaultValue != zero {
		for i := range values {
			values[i] = defaultValue
		}
	}
	return &PosMap[T]{
		dim:          dim,
		values:       values,
		defaultValue: defaultValue,
	}
}

// NewPosSet creates an empty position set
func NewPosSet(dim Dim) *PosSet {
	return NewPosMap(dim, false)
}

// Dim returns the dimensions of the map
func (m *PosMap[T]) Dim() Dim {
	return m.dim
}

// Get returns the value at p
func (m *PosMap[T]) Get(p Pos) T {
	return m.values[m.dim.Idx(p)]
}

// Set stores value at p
func (m *PosMap[T]) Set(p Pos, value T) {
	m.values[m.dim.Idx(p)] = value
}

// Clear resets every position to the default value
func (m *PosMap[T]) Clear() {
	for i := range m.values {
		m.values[i] = m.defaultValue
	}
}

// Remove resets p to the default value and returns the previous value
func (m *PosMap[T]) Remove(p Pos) T {
	idx := m.dim.Idx(p)
	old := m.values[idx]
	m.values[idx] = m.defaultValue
	return old
}

// IsEmpty tells whether every position holds the default value.
//
// Warning: this is a linear scan.
func (m *PosMap[T]) IsEmpty() bool {
	return !m.IsNotEmpty()
}

// IsNotEmpty tells whether some position holds a non default value.
//
// Warning: this is a linear scan.
func (m *PosMap[T]) IsNotEmpty() bool {
	for _, v := range m.values {
		if v != m.defaultValue {
			return true
		}
	}
	return false
}

// Count returns the number of positions not holding the default value (linear scan)
func (m *PosMap[T]) Count() int {
	n := 0
	for _, v := range m.values {
		if v != m.defaultValue {
			n++
		}
	}
	return n
}

// ForEach calls fn for every position, row by row
func (m *PosMap[T]) ForEach(fn func(p Pos, value T)) {
	for y := 0; y < m.dim.H; y++ {
		for x := 0; x < m.dim.W; x++ {
			p := Pos{X: x, Y: y}
			fn(p, m.values[m.dim.Idx(p)])
		}
	}
}
