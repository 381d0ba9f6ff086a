// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qr

import (
	"bufio"
	"fmt"
	"image/color"
	"io"
)

// rgb returns the components of col in the range [0, 1].
func rgb(col color.Color) (r, g, b float64) {
	rr, gg, bb, _ := col.RGBA()
	return float64(rr) / 0xffff, float64(gg) / 0xffff, float64(bb) / 0xffff
}

// EncodeEPS writes an Encapsulated PostScript image displaying the
// code to w, centred on a letter size page.  c.Scale is the module
// size in points.  Transparency in c.Palette is ignored.
func (c *Code) EncodeEPS(w io.Writer) error {
	if w == nil || !c.isValid() {
		return ErrArgs
	}
	const midx, midy = 306, 396
	b := bufio.NewWriter(w)
	siz := c.Size
	scale := c.Scale
	bord := c.Border
	xorig := (midx*2 - (siz+2*bord)*scale) / 2
	yorig := (midy*2 - (siz+2*bord)*scale) / 2
	fmt.Fprintf(b, `%%!PS-Adobe-2.0 EPSF-2.0
%%%%Creator: QR https://github.com/gigtarget/qr
%%%%Title: QR Code
%%%%BoundingBox: %d %d %d %d
%%%%EndComments
%%%%EndProlog
<< >> begin
gsave
%g %g translate
%d dup neg scale
/row 0 def
/p { 0 rmoveto 0 rlineto } def
/r { 0 row 1 add dup /row exch def moveto } def
`,
		xorig-1, yorig-1, midx*2-xorig, midy*2-yorig,
		midx-float64(siz*scale)/2, midy+float64((siz-1)*scale)/2-1,
		scale)
	if c.Reverse || c.Palette != nil {
		// Paint the background, then set the foreground colour.
		pal := c.colors()
		br, bg, bb := rgb(pal[0])
		fr, fg, fb := rgb(pal[1])
		fmt.Fprintf(b, `gsave
newpath %d %d moveto
%d dup neg scale
%.3g %.3g %.3g setrgbcolor
1 0 rlineto stroke
grestore
%.3g %.3g %.3g setrgbcolor
`,
			-bord, siz/2, siz+2*bord, br, bg, bb, fr, fg, fb)
	}
	b.WriteString("newpath 0 0 moveto\n")
	for y := 0; y < siz; y++ {
		for x := 0; x < siz; {
			s := x
			for x < siz && !c.Black(x, y) {
				x++
			}
			if x == siz {
				break
			}
			start := x
			for x < siz && c.Black(x, y) {
				x++
			}
			fmt.Fprintf(b, "%d %d p ", x-start, start-s)
		}
		b.WriteString("r\n")
	}
	b.WriteString("stroke grestore\nend\n%%Trailer\n")
	return b.Flush()
}
