// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

// Penalty weights.
const (
	MinRun = 5  // RunP:  minimum run length
	RunPP  = 3  // RunP:  points for a run of MinRun
	BoxPP  = 3  // BoxP:  points per box
	FindPP = 40 // FindP: points per pattern
	BalPP  = 10 // BalP:  points per 5% deviation from 50%
)

// Finder-like patterns, 11 modules read left to right or top to
// bottom, most significant bit first.
const (
	findA    = 0b1011101_0000 // light modules after
	findB    = 0b0000_1011101 // light modules before
	findMask = 1<<11 - 1
)

// Penalty returns the penalty value used for choosing the mask.
// Undetermined modules count as light.
//
// Total penalty is the sum of penalties for runs and boxes of
// same-colour pixels, finder patterns and colour balance:
//
//   - RunP: for each maximal run of n pixels in a row or column,
//     n>=5 -> n-2
//   - BoxP: for possibly overlapping 2x2 boxes -> 3
//   - FindP: for possibly overlapping finder-like patterns in rows
//     and columns -> 40
//   - BalP: for dark proportion n -> 10*floor(abs(2n-1)*10)
func (m *Matrix) Penalty() int {
	return m.runPenalty() + m.boxPenalty() + m.finderPenalty() +
		m.balancePenalty()
}

// line returns a function reading modules of row (or column) i.
func (m *Matrix) line(i int, vertical bool) func(j int) bool {
	if vertical {
		return func(j int) bool { return m.Dark(i, j) }
	}
	return func(j int) bool { return m.Dark(j, i) }
}

func (m *Matrix) runPenalty() int {
	p := 0
	for _, vertical := range [2]bool{false, true} {
		for i := 0; i < m.size; i++ {
			at := m.line(i, vertical)
			r := 1
			for j := 1; j < m.size; j++ {
				if at(j) == at(j-1) {
					r++
					continue
				}
				if r >= MinRun {
					p += RunPP + r - MinRun
				}
				r = 1
			}
			if r >= MinRun {
				p += RunPP + r - MinRun
			}
		}
	}
	return p
}

func (m *Matrix) boxPenalty() int {
	p := 0
	for y := 0; y+1 < m.size; y++ {
		for x := 0; x+1 < m.size; x++ {
			c := m.Dark(x, y)
			if m.Dark(x+1, y) == c && m.Dark(x, y+1) == c &&
				m.Dark(x+1, y+1) == c {
				p += BoxPP
			}
		}
	}
	return p
}

func (m *Matrix) finderPenalty() int {
	p := 0
	for _, vertical := range [2]bool{false, true} {
		for i := 0; i < m.size; i++ {
			at := m.line(i, vertical)
			pat := 0 // last 11 modules
			for j := 0; j < m.size; j++ {
				pat = pat<<1&findMask
				if at(j) {
					pat |= 1
				}
				if j >= 10 && (pat == findA || pat == findB) {
					p += FindPP
				}
			}
		}
	}
	return p
}

func (m *Matrix) balancePenalty() int {
	dark := 0
	for _, v := range m.mod {
		if v == Dark {
			dark++
		}
	}
	total := len(m.mod)
	if total == 0 {
		return 0
	}
	d := dark*20 - total*10
	if d < 0 {
		d = -d
	}
	return d / total * BalPP
}
