// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package qr encodes QR codes.

Codes are Model 2 symbols of versions 1 to 4 holding data in byte
mode at error correction level L, the smallest version that fits the
data being chosen.  A Code is a packed bitmap that can be rendered as
an image.Image or written as PNG, PBM, EPS, SVG or text.
*/
package qr // import "github.com/gigtarget/qr"

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"golang.org/x/text/encoding/charmap"

	"github.com/gigtarget/qr/coding"
)

// A Level denotes a QR error correction level.
// From least to most tolerant of errors, they are L, M, Q, H.
// Only L is supported by the encoder.
type Level int

const (
	L Level = iota // 20% redundant
	M              // 38% redundant
	Q              // 55% redundant
	H              // 65% redundant
)

func (l Level) String() string { return coding.Level(l).String() }

// Defaults for the rendering fields of a Code.
const (
	DefaultScale  = 10
	DefaultBorder = 4
)

var (
	ErrArgs        = errors.New("qr: invalid arguments")
	ErrDataTooLong = coding.ErrDataTooLong
	ErrLevel       = coding.ErrLevel
)

// Encode returns an encoding of data in byte mode at the given error
// correction level.
func Encode(data []byte, level Level) (*Code, error) {
	s, err := coding.Encode(data, coding.Level(level))
	if err != nil {
		return nil, err
	}
	return newCode(s), nil
}

// EncodeString returns an encoding of the UTF-8 bytes of text.
func EncodeString(text string, level Level) (*Code, error) {
	return Encode([]byte(text), level)
}

// EncodeLatin1 converts text from UTF-8 to ISO 8859-1, the default
// byte mode character set, and returns its encoding.
func EncodeLatin1(text string, level Level) (*Code, error) {
	s, err := charmap.ISO8859_1.NewEncoder().String(text)
	if err != nil {
		return nil, fmt.Errorf("qr: cannot convert %q to Latin-1: %w",
			text, err)
	}
	return EncodeString(s, level)
}

// A Code is a square pixel grid.
// It implements image.Image and direct PNG encoding.
type Code struct {
	Bitmap  []byte          // 1 is black, 0 is white
	Size    int             // number of pixels on a side
	Stride  int             // number of bytes per row
	Scale   int             // number of image pixels per QR pixel
	Border  int             // quiet zone width in QR pixels
	Reverse bool            // swap colours
	Palette *[2]color.Color // background and foreground, if not nil

	Version coding.Version // QR code version
	Level   Level          // QR error correction level
	Mask    int            // mask pattern
	Penalty int            // mask penalty score
}

// newCode packs the modules of s into a bitmap.
func newCode(s *coding.Symbol) *Code {
	siz := s.Size()
	stride := (siz + 7) / 8
	c := &Code{
		Bitmap:  make([]byte, stride*siz),
		Size:    siz,
		Stride:  stride,
		Scale:   DefaultScale,
		Border:  DefaultBorder,
		Version: s.Version,
		Level:   Level(s.Level),
		Mask:    s.Mask,
		Penalty: s.Score,
	}
	for y := 0; y < siz; y++ {
		row := c.Bitmap[y*stride:]
		for x := 0; x < siz; x++ {
			if s.Dark(x, y) {
				row[x/8] |= 0x80 >> uint(x&7)
			}
		}
	}
	return c
}

// Black returns true if the pixel at (x,y) is black.
func (c *Code) Black(x, y int) bool {
	return 0 <= x && x < c.Size && 0 <= y && y < c.Size &&
		c.Bitmap[y*c.Stride+x/8]&(1<<uint(7-x&7)) != 0
}

// maxPixels is the largest image width accepted by the renderers.
const maxPixels = 1 << 16

// isValid reports whether c can be rendered.
func (c *Code) isValid() bool {
	return c != nil && c.Size > 0 && c.Scale > 0 && c.Border >= 0 &&
		c.Stride >= (c.Size+7)/8 && len(c.Bitmap) >= c.Stride*c.Size &&
		c.Size+c.Border*2 <= maxPixels/c.Scale
}

// pixels returns the image width in pixels, quiet zone included.
func (c *Code) pixels() int { return (c.Size + c.Border*2) * c.Scale }

// colors returns the background and foreground colours.
func (c *Code) colors() [2]color.Color {
	pal := [2]color.Color{color.Gray{0xff}, color.Gray{0x00}}
	if c.Palette != nil {
		pal = *c.Palette
	}
	if c.Reverse {
		pal[0], pal[1] = pal[1], pal[0]
	}
	return pal
}

// remap returns a copy of c with the pixel at (x,y) taken from f(x,y).
func (c *Code) remap(f func(x, y int) (int, int)) *Code {
	cc := *c
	cc.Bitmap = make([]byte, c.Stride*c.Size)
	for y := 0; y < c.Size; y++ {
		for x := 0; x < c.Size; x++ {
			if c.Black(f(x, y)) {
				cc.Bitmap[y*c.Stride+x/8] |= 0x80 >> uint(x&7)
			}
		}
	}
	return &cc
}

// Flip returns a copy of c flipped horizontally.
func (c *Code) Flip() *Code {
	n := c.Size - 1
	return c.remap(func(x, y int) (int, int) { return n - x, y })
}

// Rotate returns a copy of c rotated 90° counterclockwise.
func (c *Code) Rotate() *Code {
	n := c.Size - 1
	return c.remap(func(x, y int) (int, int) { return n - y, x })
}

// Image returns an Image displaying the code.  A Scale below 1 is
// taken as 1 and a negative Border as 0.
func (c *Code) Image() image.Image {
	return &codeImage{c, c.colors(), max(c.Scale, 1), max(c.Border, 0)}
}

// codeImage implements image.PalettedImage.
type codeImage struct {
	*Code
	pal           [2]color.Color
	scale, border int
}

func (c *codeImage) Bounds() image.Rectangle {
	d := (c.Size + c.border*2) * c.scale
	return image.Rect(0, 0, d, d)
}

func (c *codeImage) ColorIndexAt(x, y int) uint8 {
	if x < 0 || y < 0 {
		return 0
	}
	if c.Black(x/c.scale-c.border, y/c.scale-c.border) {
		return 1
	}
	return 0
}

func (c *codeImage) At(x, y int) color.Color {
	return c.pal[c.ColorIndexAt(x, y)]
}

func (c *codeImage) ColorModel() color.Model {
	return color.Palette(c.pal[:])
}
