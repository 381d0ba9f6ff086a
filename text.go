// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qr

import (
	"io"
	"strings"
)

// ink reports whether the pixel at (x,y) is drawn in text output.
func (c *Code) ink(x, y int) bool { return c.Black(x, y) != c.Reverse }

// halfBlocks is indexed by the upper pixel, then the lower one.
var halfBlocks = [2][2]string{{" ", "▄"}, {"▀", "█"}}

// String returns the code drawn with UTF-8 block elements, two pixel
// rows per line of text, quiet zone included.  Black pixels are
// drawn as blocks unless c.Reverse is set, which suits terminals with
// a dark background.  String ignores c.Scale.
func (c *Code) String() string {
	var b strings.Builder
	bord := c.Border
	for y := -bord; y < c.Size+bord; y += 2 {
		for x := -bord; x < c.Size+bord; x++ {
			lo := y+1 < c.Size+bord && c.ink(x, y+1)
			b.WriteString(halfBlocks[b2i(c.ink(x, y))][b2i(lo)])
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func b2i(b bool) int {
	if b {
		return 1
	}
	return 0
}

// EncodeUTF8 writes c.String() to w.
func (c *Code) EncodeUTF8(w io.Writer) error {
	if w == nil || !c.isValid() {
		return ErrArgs
	}
	_, err := io.WriteString(w, c.String())
	return err
}

// EncodeASCII writes the code to w drawn with "##" for each black
// pixel and two spaces for each white one, quiet zone included.
// EncodeASCII ignores c.Scale.
func (c *Code) EncodeASCII(w io.Writer) error {
	if w == nil || !c.isValid() {
		return ErrArgs
	}
	pix := c.Size + 2*c.Border
	b := make([]byte, (pix*2+1)*pix)
	i := 0
	for y := -c.Border; y < c.Size+c.Border; y++ {
		for x := -c.Border; x < c.Size+c.Border; x++ {
			var p byte = ' '
			if c.ink(x, y) {
				p = '#'
			}
			_ = b[i+1]
			b[i], b[i+1] = p, p
			i += 2
		}
		b[i] = '\n'
		i++
	}
	_, err := w.Write(b)
	return err
}
