// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

// A MaskFunc reports whether the data module in column x, row y is
// inverted.
type MaskFunc func(x, y int) bool

// Mask patterns:
//
//	0: ▄▀▄▀▄▀▄▀▄▀▄▀  1: ▄▄▄▄▄▄▄▄▄▄▄▄  2:  ██ ██ ██ ██  3: ▄█▀▄█▀▄█▀▄█▀
//	   ▄▀▄▀▄▀▄▀▄▀▄▀     ▄▄▄▄▄▄▄▄▄▄▄▄      ██ ██ ██ ██     ▀▄█▀▄█▀▄█▀▄█
//	   ▄▀▄▀▄▀▄▀▄▀▄▀     ▄▄▄▄▄▄▄▄▄▄▄▄      ██ ██ ██ ██     █▀▄█▀▄█▀▄█▀▄
//
//	4:    ███   ███  5:  ▄▄▄▄▄ ▄▄▄▄▄  6:    ▄▄▄   ▄▄▄  7: ▄█▄▀ ▀▄█▄▀ ▀
//	   ███   ███         █▀▄▀█ █▀▄▀█      ▄▀▄ █ ▄▀▄ █     ▄▀█▀▄ ▄▀█▀▄
//	      ███   ███      ██▄██ ██▄██      █▄▄▀  █▄▄▀      ▄  ▀██▄  ▀██
var masks = [8]MaskFunc{
	func(x, y int) bool { return (x+y)%2 == 0 },
	func(x, y int) bool { return y%2 == 0 },
	func(x, y int) bool { return x%3 == 0 },
	func(x, y int) bool { return (x+y)%3 == 0 },
	func(x, y int) bool { return (y/2+x/3)%2 == 0 },
	func(x, y int) bool { return x*y%2+x*y%3 == 0 },
	func(x, y int) bool { return (x*y%2+x*y%3)%2 == 0 },
	func(x, y int) bool { return ((x+y)%2+x*y%3)%2 == 0 },
}

// NumMasks is the number of mask patterns.
const NumMasks = len(masks)

// Mask returns the mask pattern with the given number.
func Mask(mask int) (MaskFunc, error) {
	if mask < 0 || mask >= NumMasks {
		return nil, MaskError(mask)
	}
	return masks[mask], nil
}

// placeData writes codewords to the undetermined modules of m in
// zigzag scan order, inverting the bits selected by mask.  Modules
// left over after the last codeword get a masked zero bit.
func placeData(m *Matrix, codewords []byte, mask MaskFunc) error {
	siz := m.size
	total := len(codewords) * 8
	n := 0 // codeword bits placed
	up := true
	for x := siz - 1; x > 0; x -= 2 {
		if x == 6 { // vertical timing strip
			x--
		}
		for i := 0; i < siz; i++ {
			y := i
			if up {
				y = siz - 1 - i
			}
			for xx := x; xx > x-2; xx-- {
				if m.Get(xx, y) != Undetermined {
					continue
				}
				var bit bool
				if n < total {
					bit = codewords[n>>3]>>(7&^n)&1 != 0
					n++
				}
				if err := m.setData(xx, y, bit != mask(xx, y)); err != nil {
					return err
				}
			}
		}
		up = !up
	}
	if n != total {
		return ErrEncoding
	}
	return nil
}

// FormatBits returns the 15 bit format information for level l and
// the given mask: 5 data bits protected by a BCH(15,5) code and
// XORed with 0x5412.
func FormatBits(l Level, mask int) uint16 {
	const formatPoly = 0x537
	fb := (l.formatCode()<<3 | uint16(mask&7)) << 10
	rem := fb
	for i := 4; i >= 0; i-- {
		if rem&((1<<10)<<i) != 0 {
			rem ^= formatPoly << i
		}
	}
	return (fb | rem) ^ 0x5412
}

// placeFormat writes format information fb to the reserved area of m.
func placeFormat(m *Matrix, fb uint16) {
	siz := m.size
	bit := func(i int) bool { return fb>>i&1 != 0 }
	// Next to the upper left position box.
	for i := 0; i < 6; i++ {
		m.setReserved(8, i, bit(i))
	}
	m.setReserved(8, 7, bit(6))
	m.setReserved(8, 8, bit(7))
	m.setReserved(7, 8, bit(8))
	for i := 9; i < 15; i++ {
		m.setReserved(14-i, 8, bit(i))
	}
	// Next to the upper right and lower left position boxes.
	for i := 0; i < 8; i++ {
		m.setReserved(siz-1-i, 8, bit(i))
	}
	for i := 8; i < 15; i++ {
		m.setReserved(8, siz-15+i, bit(i))
	}
}
