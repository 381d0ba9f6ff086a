// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gf256 implements arithmetic over the Galois Field GF(256)
// and the Reed-Solomon encoding built on it.
package gf256 // import "github.com/gigtarget/qr/gf256"

import "strconv"

// A Field represents an instance of GF(256) defined by a specific
// polynomial and generator.
type Field struct {
	log [256]byte // log[0] is unused
	exp [512]byte // exp[i+255] == exp[i]; Mul indexes up to 508
}

// NewField returns a new field corresponding to the polynomial poly
// and generator α.  The Reed-Solomon encoding in QR codes uses
// polynomial 0x11d with generator 2.
//
// NewField panics if poly is not of degree 8 or α does not generate
// the multiplicative group of the field.
func NewField(poly, α int) *Field {
	if poly < 0x100 || poly >= 0x200 {
		panic("gf256: invalid polynomial " + strconv.Itoa(poly))
	}
	f := new(Field)
	x := 1
	for i := 0; i < 255; i++ {
		if x == 0 || x == 1 && i != 0 {
			panic("gf256: invalid generator " + strconv.Itoa(α) +
				" for polynomial " + strconv.Itoa(poly))
		}
		f.exp[i] = byte(x)
		f.log[x] = byte(i)
		x = mul(x, α, poly)
	}
	for i := 255; i < len(f.exp); i++ {
		f.exp[i] = f.exp[i-255]
	}
	return f
}

// mul returns the product x*y mod poly, a GF(256) multiplication.
func mul(x, y, poly int) int {
	z := 0
	for x > 0 {
		if x&1 != 0 {
			z ^= y
		}
		x >>= 1
		y <<= 1
		if y&0x100 != 0 {
			y ^= poly
		}
	}
	return z
}

// Add returns the sum of x and y in the field.
func Add(x, y byte) byte {
	return x ^ y
}

// Exp returns the base-α exponential of e in the field.
// If e < 0, Exp returns 0.
func (f *Field) Exp(e int) byte {
	if e < 0 {
		return 0
	}
	return f.exp[e%255]
}

// Log returns the base-α logarithm of x in the field.
// If x == 0, Log returns -1.
func (f *Field) Log(x byte) int {
	if x == 0 {
		return -1
	}
	return int(f.log[x])
}

// Inv returns the multiplicative inverse of x in the field.
// If x == 0, Inv returns 0.
func (f *Field) Inv(x byte) byte {
	if x == 0 {
		return 0
	}
	return f.exp[255-int(f.log[x])]
}

// Mul returns the product of x and y in the field.
func (f *Field) Mul(x, y byte) byte {
	if x == 0 || y == 0 {
		return 0
	}
	return f.exp[int(f.log[x])+int(f.log[y])]
}

// PolyMul returns the product of polynomials p and q.  Coefficients
// are stored highest degree first.
func (f *Field) PolyMul(p, q []byte) []byte {
	if len(p) == 0 || len(q) == 0 {
		return nil
	}
	r := make([]byte, len(p)+len(q)-1)
	for i, a := range p {
		if a == 0 {
			continue
		}
		for j, b := range q {
			r[i+j] ^= f.Mul(a, b)
		}
	}
	return r
}

// Generator returns the Reed-Solomon generator polynomial of the
// given degree, the product of (x - α^i) for 0 <= i < degree.
// The result has degree+1 coefficients, the first of which is 1.
func (f *Field) Generator(degree int) []byte {
	g := []byte{1}
	for i := 0; i < degree; i++ {
		g = f.PolyMul(g, []byte{1, f.exp[i]})
	}
	return g
}

// Remainder returns the remainder of data*x^n divided by gen, where n
// is the degree of gen.  gen must be monic.  The result has exactly n
// coefficients, the Reed-Solomon check bytes for data.
func (f *Field) Remainder(data, gen []byte) []byte {
	n := len(gen) - 1
	if n < 0 {
		return nil
	}
	r := make([]byte, len(data)+n)
	copy(r, data)
	for i := range data {
		c := r[i]
		if c == 0 {
			continue
		}
		lc := int(f.log[c])
		for j, g := range gen {
			if g != 0 {
				r[i+j] ^= f.exp[lc+int(f.log[g])]
			}
		}
	}
	return r[len(data):]
}

// An RSEncoder implements Reed-Solomon encoding
// over a given field using a given number of error correction bytes.
type RSEncoder struct {
	f   *Field
	c   int
	gen []byte
}

// NewRSEncoder returns a new Reed-Solomon encoder
// over the given field and number of error correction bytes.
func NewRSEncoder(f *Field, c int) *RSEncoder {
	return &RSEncoder{f: f, c: c, gen: f.Generator(c)}
}

// Generator returns the generator polynomial used by rs.
// The caller must not modify it.
func (rs *RSEncoder) Generator() []byte { return rs.gen }

// ECC writes to check the error correcting code bytes
// for data using the given Reed-Solomon parameters.
func (rs *RSEncoder) ECC(data []byte, check []byte) {
	if len(check) < rs.c {
		panic("gf256: invalid check byte length")
	}
	if rs.c == 0 {
		return
	}
	copy(check, rs.f.Remainder(data, rs.gen))
}
