// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import (
	"errors"
	"fmt"
)

// Bits is a bit buffer written most significant bit first.
type Bits struct {
	b    []byte
	nbit int
}

// NewBits returns Bits with enough capacity for a QR code of
// version v.
func NewBits(v Version) *Bits {
	n := 0
	if v >= MinVersion && v <= MaxVersion {
		n = vtab[v].TotalCodewords
	}
	return &Bits{b: make([]byte, 0, n)}
}

func (b *Bits) Reset() {
	b.b = b.b[:0]
	b.nbit = 0
}

func (b *Bits) Bits() int {
	return b.nbit
}

func (b *Bits) Bytes() []byte {
	if b.nbit%8 != 0 {
		panic("qr: fractional byte")
	}
	return b.b
}

// Write appends the low nbit bits of v, 0 <= nbit <= 32.
func (b *Bits) Write(v uint32, nbit int) {
	if nbit == 0 {
		return
	}
	v <<= 32 - nbit
	if rem := -b.nbit & 7; rem != 0 {
		b.b[len(b.b)-1] |= byte(v >> (32 - rem))
		if rem >= nbit {
			b.nbit += nbit
			return
		}
		b.nbit += rem
		nbit -= rem
		v <<= rem
	}
	for n := nbit; n > 0; n -= 8 {
		b.b = append(b.b, byte(v>>24))
		v <<= 8
	}
	b.nbit += nbit
}

// WriteBytes appends p, 8 bits per byte.
func (b *Bits) WriteBytes(p []byte) {
	if b.nbit&7 == 0 {
		b.b = append(b.b, p...)
		b.nbit += len(p) * 8
		return
	}
	for _, v := range p {
		b.Write(uint32(v), 8)
	}
}

// PadTo adds up to t terminator bits to b, pads it with zeros to a
// byte boundary and fills it with pad bytes up to n bits.  n must be
// a multiple of 8 not less than b.Bits().
func (b *Bits) PadTo(t, n int) {
	b.nbit = min(b.nbit+t, n)
	for len(b.b)*8 < b.nbit {
		b.b = append(b.b, 0)
	}
	b.nbit = len(b.b) * 8
	for pad := byte(0xec); b.nbit < n; pad ^= 0xec ^ 0x11 {
		b.b = append(b.b, pad)
		b.nbit += 8
	}
}

// Byte mode segment header.
const (
	byteIndicator = 4 // 4 bit mode indicator
	termBits      = 4 // maximum terminator length
)

// countLength returns the length of the character count field of a
// byte mode segment in version v.
func countLength(v Version) int {
	if v <= 9 {
		return 8
	}
	return 16
}

// EncodeBytes returns the data codewords of a QR code of version v
// holding data as a single byte mode segment, with terminator and
// padding.  The result has exactly VersionInfo.DataCodewords bytes.
func EncodeBytes(data []byte, v Version) ([]byte, error) {
	b := NewBits(v)
	if err := b.encodeBytes(data, v); err != nil {
		return nil, err
	}
	return b.Bytes(), nil
}

func (b *Bits) encodeBytes(data []byte, v Version) error {
	if v < MinVersion || v > MaxVersion {
		return ErrVersion
	}
	n := v.DataBits()
	cl := countLength(v)
	if need := 4 + cl + len(data)*8; need > n {
		return fmt.Errorf("%w: cannot encode %d bits into %d-bit code",
			ErrDataTooLong, need, n)
	}
	b.Write(byteIndicator, 4)
	b.Write(uint32(len(data)), cl)
	b.WriteBytes(data)
	b.PadTo(termBits, n)
	return nil
}

// ChooseVersion returns the smallest version able to hold data and
// the data codewords for that version.
func ChooseVersion(data []byte) (Version, []byte, error) {
	for v := MinVersion; v <= MaxVersion; v++ {
		cw, err := EncodeBytes(data, v)
		if err == nil {
			return v, cw, nil
		} else if !errors.Is(err, ErrDataTooLong) {
			return 0, nil, err
		}
	}
	return 0, nil, fmt.Errorf("%w: %d bytes exceed version %d capacity",
		ErrDataTooLong, len(data), MaxVersion)
}
