// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qr

import (
	"bytes"
	"image/png"
	"io"
)

// pngEncoder writes 1 bit paletted images.
var pngEncoder = png.Encoder{CompressionLevel: png.BestCompression}

// PNG returns a PNG image displaying the code, or nil if c cannot be
// rendered.
func (c *Code) PNG() []byte {
	var b bytes.Buffer
	if err := c.EncodePNG(&b); err != nil {
		return nil
	}
	return b.Bytes()
}

// EncodePNG writes a PNG image displaying the code to w.
// The image has a two colour palette, see Image.
func (c *Code) EncodePNG(w io.Writer) error {
	if w == nil || !c.isValid() {
		return ErrArgs
	}
	return pngEncoder.Encode(w, c.Image())
}
