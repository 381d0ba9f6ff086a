// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import "sync"

// A Plan describes how to construct a QR code of a specific version.
type Plan struct {
	VersionInfo

	// Skeleton holds the function patterns with the format
	// information area reserved.  All other modules are
	// Undetermined.  It must not be modified.
	Skeleton *Matrix
}

// Pre-allocated Plans.  A Plan is created the first time a version is
// used.
var plans [MaxVersion + 1]struct {
	once sync.Once
	p    *Plan
}

// NewPlan returns the Plan for a QR code of the given version.
// The Plan is shared and must not be modified.
func NewPlan(v Version) (*Plan, error) {
	if v < MinVersion || v > MaxVersion {
		return nil, ErrVersion
	}
	p := &plans[v]
	p.once.Do(func() { p.p = vplan(v) })
	return p.p, nil
}

var finder = [7]uint8{
	0b1111111,
	0b1000001,
	0b1011101,
	0b1011101,
	0b1011101,
	0b1000001,
	0b1111111,
}

var align = [5]uint8{
	0b11111,
	0b10001,
	0b10101,
	0b10001,
	0b11111,
}

// vplan creates a Plan for the given version.
func vplan(v Version) *Plan {
	info := vtab[v]
	siz := info.Size
	m := NewMatrix(siz)

	// Position boxes and separators.
	finderBox(m, 0, 0)
	finderBox(m, siz-7, 0)
	finderBox(m, 0, siz-7)

	// Alignment boxes.
	for _, y := range apos[v] {
		for _, x := range apos[v] {
			if x <= 7 && (y <= 7 || y >= siz-8) || x >= siz-8 && y <= 7 {
				continue // overlaps a position box
			}
			alignBox(m, x, y)
		}
	}

	// Timing markers.
	for i := 8; i < siz-8; i++ {
		if m.Get(i, 6) == Undetermined {
			m.setFunction(i, 6, i&1 == 0)
		}
		if m.Get(6, i) == Undetermined {
			m.setFunction(6, i, i&1 == 0)
		}
	}

	// One lonely black pixel.
	m.setFunction(8, siz-8, true)

	// Format information area.
	for i := 0; i <= 8; i++ {
		if i != 6 {
			m.setFunction(8, i, false)
			m.setFunction(i, 8, false)
		}
	}
	for i := 0; i < 8; i++ {
		m.setFunction(siz-1-i, 8, false)
		if y := siz - 1 - i; m.Get(8, y) == Undetermined {
			m.setFunction(8, y, false)
		}
	}

	return &Plan{VersionInfo: info, Skeleton: m}
}

// finderBox draws a position box at upper left x, y and the light
// separator around it.
func finderBox(m *Matrix, x, y int) {
	for dy, row := range finder {
		for dx := 0; dx < 7; dx++ {
			m.setFunction(x+dx, y+dy, row>>(6-dx)&1 != 0)
		}
	}
	for i := -1; i <= 7; i++ {
		for _, d := range [4][2]int{{-1, i}, {7, i}, {i, -1}, {i, 7}} {
			xx, yy := x+d[0], y+d[1]
			if 0 <= xx && xx < m.size && 0 <= yy && yy < m.size &&
				m.Get(xx, yy) == Undetermined {
				m.setFunction(xx, yy, false)
			}
		}
	}
}

// alignBox draws an alignment (small) box centred at x, y.
func alignBox(m *Matrix, x, y int) {
	for dy, row := range align {
		for dx := 0; dx < 5; dx++ {
			m.setFunction(x-2+dx, y-2+dy, row>>(4-dx)&1 != 0)
		}
	}
}
