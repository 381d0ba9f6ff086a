// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package coding implements low-level QR coding details: versions 1
// to 4 in byte mode at error correction level L.
package coding // import "github.com/gigtarget/qr/coding"

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/gigtarget/qr/gf256"
)

var (
	ErrLevel       = errors.New("qr: invalid level")
	ErrVersion     = errors.New("qr: invalid version")
	ErrDataTooLong = errors.New("qr: data too long")
	ErrEncoding    = errors.New("qr: internal error: wrong number of data bits placed")
)

// PlacementError reports an attempt to write data onto a function
// module.  It indicates an internal error.
type PlacementError struct {
	X, Y int
}

func (e PlacementError) Error() string {
	return fmt.Sprintf("qr: internal error: data written to function module (%d,%d)",
		e.X, e.Y)
}

// MaskError represents an invalid mask number.
type MaskError int

func (e MaskError) Error() string {
	return "qr: invalid mask " + strconv.Itoa(int(e))
}

// Field is the field for QR error correction.
var Field = gf256.NewField(0x11d, 2)

// A Version represents a QR version.
// The version specifies the size of the QR code:
// a QR code with version v has 4v+17 pixels on a side.
// Only versions 1 to 4 are supported.
type Version int

// Supported versions.
const (
	MinVersion Version = 1 // Minimum QR version
	MaxVersion Version = 4 // Maximum QR version
)

func (v Version) String() string {
	return strconv.Itoa(int(v))
}

// A Level represents a QR error correction level.
// From least to most tolerant of errors, they are L, M, Q, H.
// Only L is supported by the encoder.
type Level int

const (
	L Level = iota
	M
	Q
	H
)

func (l Level) String() string {
	if L <= l && l <= H {
		return "LMQH"[l : l+1]
	}
	return strconv.Itoa(int(l))
}

// formatCode returns the 2 bit format information code for l.
func (l Level) formatCode() uint16 {
	return [4]uint16{1, 0, 3, 2}[l&3]
}

// VersionInfo describes the symbol layout of a version at level L.
type VersionInfo struct {
	Version        Version
	Size           int // number of pixels on a side
	TotalCodewords int // data and check bytes
	DataCodewords  int // data bytes
	ECCCodewords   int // check bytes
	ECCBlocks      int // Reed-Solomon blocks
}

// vtab lists versions 1 to 4 at level L.  Entry 0 is unused.
var vtab = [MaxVersion + 1]VersionInfo{
	{},
	{1, 21, 26, 19, 7, 1},
	{2, 25, 44, 34, 10, 1},
	{3, 29, 70, 55, 15, 1},
	{4, 33, 100, 80, 20, 1},
}

// Alignment pattern centre coordinates.
var apos = [MaxVersion + 1][]int{
	2: {6, 18},
	3: {6, 22},
	4: {6, 26},
}

// Info returns the layout of v.
func (v Version) Info() (VersionInfo, error) {
	if v < MinVersion || v > MaxVersion {
		return VersionInfo{}, ErrVersion
	}
	return vtab[v], nil
}

// DataBits returns the number of data bits that can be stored in a
// QR code of version v.  It returns 0 for unsupported versions.
func (v Version) DataBits() int {
	if v < MinVersion || v > MaxVersion {
		return 0
	}
	return vtab[v].DataCodewords * 8
}
