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

	svg "github.com/ajstarks/svgo"
)

// svgFill returns the CSS fill declarations for col.
func svgFill(col color.Color) string {
	c := color.NRGBAModel.Convert(col).(color.NRGBA)
	s := fmt.Sprintf("fill:#%02x%02x%02x", c.R, c.G, c.B)
	if c.A != 0xff {
		s += fmt.Sprintf(";fill-opacity:%.3g", float64(c.A)/0xff)
	}
	return s
}

// EncodeSVG writes a Scalable Vector Graphics image displaying the
// code to w.  The background is a single rectangle, each black
// module another, c.Scale units on a side.
func (c *Code) EncodeSVG(w io.Writer) error {
	if w == nil || !c.isValid() {
		return ErrArgs
	}
	b := bufio.NewWriter(w)
	dim := c.pixels()
	pal := c.colors()
	s := svg.New(b)
	s.Start(dim, dim, fmt.Sprintf(`viewBox="0 0 %d %d"`, dim, dim),
		`shape-rendering="crispEdges"`)
	s.Rect(0, 0, dim, dim, svgFill(pal[0]))
	s.Gstyle(svgFill(pal[1]))
	for y := 0; y < c.Size; y++ {
		for x := 0; x < c.Size; x++ {
			if c.Black(x, y) {
				s.Rect((x+c.Border)*c.Scale, (y+c.Border)*c.Scale,
					c.Scale, c.Scale)
			}
		}
	}
	s.Gend()
	s.End()
	return b.Flush()
}
