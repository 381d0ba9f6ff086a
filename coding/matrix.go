// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

// A Module is the value of a QR code pixel.
type Module byte

const (
	Undetermined Module = iota // not yet placed
	Light
	Dark
)

func (m Module) String() string {
	switch m {
	case Light:
		return "light"
	case Dark:
		return "dark"
	}
	return "undetermined"
}

func moduleOf(dark bool) Module {
	if dark {
		return Dark
	}
	return Light
}

// A Matrix is a square grid of modules, each flagged as either a
// function module or a data module.
//
// Function flags are set while building a Plan and never change
// afterwards, so overlays of one skeleton share them.
type Matrix struct {
	size int
	mod  []Module // row major
	fn   []bool   // function module flags, row major
}

// NewMatrix returns an empty size×size Matrix.
func NewMatrix(size int) *Matrix {
	return &Matrix{
		size: size,
		mod:  make([]Module, size*size),
		fn:   make([]bool, size*size),
	}
}

// Size returns the number of modules on a side.
func (m *Matrix) Size() int { return m.size }

// in reports whether (x, y) is inside the grid.
func (m *Matrix) in(x, y int) bool {
	return 0 <= x && x < m.size && 0 <= y && y < m.size
}

// Get returns the module at (x, y).  Outside the grid, the quiet
// zone, it returns Light.
func (m *Matrix) Get(x, y int) Module {
	if !m.in(x, y) {
		return Light
	}
	return m.mod[y*m.size+x]
}

// Dark reports whether the module at (x, y) is dark.
func (m *Matrix) Dark(x, y int) bool { return m.Get(x, y) == Dark }

// IsFunction reports whether (x, y) is a function module.  It
// returns false outside the grid.
func (m *Matrix) IsFunction(x, y int) bool {
	return m.in(x, y) && m.fn[y*m.size+x]
}

// setFunction marks (x, y) as a function module with the given value.
func (m *Matrix) setFunction(x, y int, dark bool) {
	i := y*m.size + x
	m.mod[i] = moduleOf(dark)
	m.fn[i] = true
}

// setReserved sets the value of the function module at (x, y) without
// touching the shared function flags.
func (m *Matrix) setReserved(x, y int, dark bool) {
	if !m.fn[y*m.size+x] {
		panic("qr: format module not reserved")
	}
	m.mod[y*m.size+x] = moduleOf(dark)
}

// setData sets the data module at (x, y).
func (m *Matrix) setData(x, y int, dark bool) error {
	i := y*m.size + x
	if m.fn[i] {
		return PlacementError{x, y}
	}
	m.mod[i] = moduleOf(dark)
	return nil
}

// overlay returns a copy of m for placing data.  The copy shares the
// function flags with m.
func (m *Matrix) overlay() *Matrix {
	mod := make([]Module, len(m.mod))
	copy(mod, m.mod)
	return &Matrix{size: m.size, mod: mod, fn: m.fn}
}
