// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qr

import (
	"bufio"
	"io"
	"strconv"
)

// EncodePBM writes a Portable Bit Map image displaying the code to w,
// for use with netpbm.  EncodePBM disregards c.Palette, as other PNM
// formats are not supported.
func (c *Code) EncodePBM(w io.Writer) error {
	if w == nil || !c.isValid() {
		return ErrArgs
	}
	b := bufio.NewWriter(w)
	length := c.pixels()
	ls := strconv.Itoa(length)
	if _, err := b.WriteString("P4\n" + ls + " " + ls + "\n"); err != nil {
		return err
	}
	row := make([]byte, (length+7)/8)
	for y := -c.Border; y < c.Size+c.Border; y++ {
		c.pbmRow(row, y)
		for i := 0; i < c.Scale; i++ {
			if _, err := b.Write(row); err != nil {
				return err
			}
		}
	}
	return b.Flush()
}

// pbmRow encodes row y of QR pixels, quiet zone included, in PBM
// format, where 1 is black.  Padding bits at the end are zero.
func (c *Code) pbmRow(row []byte, y int) {
	clear(row)
	j := 0
	for x := -c.Border; x < c.Size+c.Border; x++ {
		if c.Black(x, y) == c.Reverse {
			j += c.Scale
			continue
		}
		for end := j + c.Scale; j < end; j++ {
			row[j>>3] |= 0x80 >> uint(j&7)
		}
	}
}
