// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qr

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"image/color"
	"image/png"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gigtarget/qr/coding"
)

func hello(t *testing.T) *Code {
	t.Helper()
	c, err := EncodeString("HELLO", L)
	require.NoError(t, err)
	return c
}

func TestEncode(t *testing.T) {
	c := hello(t)
	assert.Equal(t, coding.Version(1), c.Version)
	assert.Equal(t, 21, c.Size)
	assert.Equal(t, 3, c.Stride)
	assert.Len(t, c.Bitmap, 63)
	assert.Equal(t, DefaultScale, c.Scale)
	assert.Equal(t, DefaultBorder, c.Border)
	assert.Equal(t, L, c.Level)

	s, err := coding.Encode([]byte("HELLO"), coding.L)
	require.NoError(t, err)
	assert.Equal(t, s.Mask, c.Mask)
	assert.Equal(t, s.Score, c.Penalty)
	for y := 0; y < c.Size; y++ {
		for x := 0; x < c.Size; x++ {
			require.Equal(t, s.Dark(x, y), c.Black(x, y), "(%d,%d)", x, y)
		}
		// Padding bits stay clear.
		assert.Zero(t, c.Bitmap[y*c.Stride+2]&0x07)
	}
	assert.False(t, c.Black(-1, 0))
	assert.False(t, c.Black(0, 21))
}

func TestEncodeVersions(t *testing.T) {
	for n, v := range map[int]coding.Version{0: 1, 17: 1, 18: 2, 32: 2,
		33: 3, 53: 3, 54: 4, 78: 4} {
		c, err := Encode(make([]byte, n), L)
		require.NoError(t, err, "%d bytes", n)
		assert.Equal(t, v, c.Version, "%d bytes", n)
		assert.Equal(t, int(v)*4+17, c.Size, "%d bytes", n)
	}
}

func TestEncodeErrors(t *testing.T) {
	_, err := Encode(make([]byte, 79), L)
	assert.ErrorIs(t, err, ErrDataTooLong)
	for _, l := range []Level{M, Q, H} {
		_, err = EncodeString("HELLO", l)
		assert.ErrorIs(t, err, ErrLevel, "level %v", l)
	}
}

func TestEncodeLatin1(t *testing.T) {
	c, err := EncodeLatin1("café", L)
	require.NoError(t, err)
	want, err := Encode([]byte("caf\xe9"), L)
	require.NoError(t, err)
	assert.Equal(t, want, c)

	_, err = EncodeLatin1("5 €", L)
	assert.Error(t, err)
}

func TestFlipRotate(t *testing.T) {
	c := hello(t)
	n := c.Size - 1
	f := c.Flip()
	r := c.Rotate()
	for y := 0; y <= n; y++ {
		for x := 0; x <= n; x++ {
			require.Equal(t, c.Black(n-x, y), f.Black(x, y))
			require.Equal(t, c.Black(n-y, x), r.Black(x, y))
		}
	}
	assert.Equal(t, c.Bitmap, f.Flip().Bitmap)
	assert.Equal(t, c.Bitmap, r.Rotate().Rotate().Rotate().Bitmap)
	assert.NotEqual(t, c.Bitmap, r.Bitmap)
}

func TestImage(t *testing.T) {
	c := hello(t)
	img := c.Image()
	assert.Equal(t, 290, img.Bounds().Dx())
	assert.Equal(t, 290, img.Bounds().Dy())
	assert.Equal(t, color.Gray{0xff}, img.At(0, 0))
	assert.Equal(t, color.Gray{0x00}, img.At(40, 40))
	assert.Equal(t, color.Gray{0x00}, img.At(49, 49))
	assert.Equal(t, color.Gray{0xff}, img.At(50, 50)) // inside ring

	c.Reverse = true
	assert.Equal(t, color.Gray{0x00}, c.Image().At(0, 0))

	c.Reverse = false
	c.Scale, c.Border = 0, -1
	img = c.Image()
	assert.Equal(t, 21, img.Bounds().Dx())
	assert.Equal(t, color.Gray{0x00}, img.At(0, 0))
	assert.Equal(t, color.Gray{0xff}, img.At(-1, 0))
	assert.Equal(t, color.Gray{0xff}, img.At(7, 0))
	c.Scale, c.Border = 10, 4

	red := color.RGBA{0xff, 0, 0, 0xff}
	c.Reverse = false
	c.Palette = &[2]color.Color{color.White, red}
	assert.Equal(t, red, c.Image().At(40, 40))
}

func TestEncodePNG(t *testing.T) {
	c := hello(t)
	c.Scale = 2
	b := c.PNG()
	require.NotNil(t, b)
	img, err := png.Decode(bytes.NewReader(b))
	require.NoError(t, err)
	require.Equal(t, 58, img.Bounds().Dx())
	for y := 0; y < 58; y++ {
		for x := 0; x < 58; x++ {
			g := color.GrayModel.Convert(img.At(x, y)).(color.Gray)
			require.Equal(t, c.Black(x/2-4, y/2-4), g.Y == 0,
				"(%d,%d)", x, y)
		}
	}
}

func TestEncodePBM(t *testing.T) {
	c := hello(t)
	c.Scale, c.Border = 1, 0
	var b bytes.Buffer
	require.NoError(t, c.EncodePBM(&b))
	assert.Equal(t, "P4\n21 21\n", b.String()[:len("P4\n21 21\n")])
	assert.Equal(t, c.Bitmap, b.Bytes()[len("P4\n21 21\n"):])

	b.Reset()
	c.Scale, c.Border = 10, 4
	require.NoError(t, c.EncodePBM(&b))
	hdr := "P4\n290 290\n"
	require.True(t, strings.HasPrefix(b.String(), hdr))
	pix := b.Bytes()[len(hdr):]
	require.Len(t, pix, 290*37)
	assert.Equal(t, make([]byte, 37), pix[:37]) // quiet zone
	row := pix[40*37 : 41*37]
	assert.Equal(t, []byte{0, 0, 0, 0, 0, 0xff, 0xff}, row[:7])
	assert.Equal(t, []byte{0xfc, 0}, row[13:15])
}

// svgDoc is the structure written by EncodeSVG.
type svgDoc struct {
	Width          string    `xml:"width,attr"`
	Height         string    `xml:"height,attr"`
	ViewBox        string    `xml:"viewBox,attr"`
	ShapeRendering string    `xml:"shape-rendering,attr"`
	Rects          []svgRect `xml:"rect"`
	G              []struct {
		Style string    `xml:"style,attr"`
		Rects []svgRect `xml:"rect"`
	} `xml:"g"`
}

type svgRect struct {
	X      int    `xml:"x,attr"`
	Y      int    `xml:"y,attr"`
	Width  int    `xml:"width,attr"`
	Height int    `xml:"height,attr"`
	Style  string `xml:"style,attr"`
}

func parseSVG(t *testing.T, c *Code) svgDoc {
	t.Helper()
	var b bytes.Buffer
	require.NoError(t, c.EncodeSVG(&b))
	assert.True(t, strings.HasPrefix(b.String(), "<?xml"))
	var doc svgDoc
	require.NoError(t, xml.Unmarshal(b.Bytes(), &doc))
	require.Len(t, doc.Rects, 1)
	require.Len(t, doc.G, 1)
	return doc
}

func TestEncodeSVG(t *testing.T) {
	c := hello(t)
	doc := parseSVG(t, c)
	assert.Equal(t, "290", doc.Width)
	assert.Equal(t, "290", doc.Height)
	assert.Equal(t, "0 0 290 290", doc.ViewBox)
	assert.Equal(t, "crispEdges", doc.ShapeRendering)
	assert.Equal(t, svgRect{0, 0, 290, 290, "fill:#ffffff"}, doc.Rects[0])
	assert.Equal(t, "fill:#000000", doc.G[0].Style)

	var want []svgRect
	for y := 0; y < c.Size; y++ {
		for x := 0; x < c.Size; x++ {
			if c.Black(x, y) {
				want = append(want, svgRect{X: (x + 4) * 10,
					Y: (y + 4) * 10, Width: 10, Height: 10})
			}
		}
	}
	assert.Equal(t, want, doc.G[0].Rects)
	assert.Equal(t, svgRect{X: 40, Y: 40, Width: 10, Height: 10},
		doc.G[0].Rects[0])

	c.Palette = &[2]color.Color{color.Transparent, color.RGBA{0, 0, 0x80, 0xff}}
	doc = parseSVG(t, c)
	assert.Equal(t, "fill:#000000;fill-opacity:0", doc.Rects[0].Style)
	assert.Equal(t, "fill:#000080", doc.G[0].Style)

	c.Palette = nil
	c.Reverse = true
	doc = parseSVG(t, c)
	assert.Equal(t, "fill:#000000", doc.Rects[0].Style)
	assert.Equal(t, "fill:#ffffff", doc.G[0].Style)
}

func TestString(t *testing.T) {
	c := hello(t)
	lines := strings.Split(strings.TrimSuffix(c.String(), "\n"), "\n")
	require.Len(t, lines, 15)
	for _, l := range lines {
		assert.Equal(t, 29, utf8.RuneCountInString(l))
	}
	assert.Equal(t, strings.Repeat(" ", 29), lines[0])
	// Rows 0 and 1 of the upper left finder.
	assert.True(t, strings.HasPrefix(lines[2], "    █▀▀▀▀▀█ "), lines[2])
	// Row 6 of the finder and the separator.
	assert.True(t, strings.HasPrefix(lines[5], "    ▀▀▀▀▀▀▀ "), lines[5])

	c.Reverse = true
	assert.True(t, strings.HasPrefix(c.String(), strings.Repeat("█", 29)+"\n"))

	var b bytes.Buffer
	require.NoError(t, c.EncodeUTF8(&b))
	assert.Equal(t, c.String(), b.String())
}

func TestEncodeASCII(t *testing.T) {
	c := hello(t)
	c.Border = 1
	var b bytes.Buffer
	require.NoError(t, c.EncodeASCII(&b))
	lines := strings.Split(strings.TrimSuffix(b.String(), "\n"), "\n")
	require.Len(t, lines, 23)
	assert.Equal(t, strings.Repeat(" ", 46), lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "  ##############  "), lines[1])
	assert.True(t, strings.HasPrefix(lines[2], "  ##          ##  "), lines[2])
}

func TestEncodeEPS(t *testing.T) {
	c := hello(t)
	var b bytes.Buffer
	require.NoError(t, c.EncodeEPS(&b))
	s := b.String()
	assert.True(t, strings.HasPrefix(s, "%!PS-Adobe-2.0 EPSF-2.0\n"))
	assert.True(t, strings.HasSuffix(s, "%%Trailer\n"))
	assert.Equal(t, c.Size, strings.Count(s, " r\n")+strings.Count(s, "\nr\n"))
	assert.NotContains(t, s, "setrgbcolor")

	b.Reset()
	c.Reverse = true
	require.NoError(t, c.EncodeEPS(&b))
	assert.Contains(t, b.String(), "0 0 0 setrgbcolor\n1 0 rlineto")
}

func TestInvalidArgs(t *testing.T) {
	var b bytes.Buffer
	for _, f := range []func(c *Code){
		func(c *Code) { c.Scale = 0 },
		func(c *Code) { c.Border = -1 },
		func(c *Code) { c.Stride = 2 },
		func(c *Code) { c.Bitmap = c.Bitmap[:10] },
		func(c *Code) { c.Scale = 1 << 16 },
	} {
		c := hello(t)
		f(c)
		assert.Nil(t, c.PNG())
		assert.ErrorIs(t, c.EncodePNG(&b), ErrArgs)
		assert.ErrorIs(t, c.EncodePBM(&b), ErrArgs)
		assert.ErrorIs(t, c.EncodeSVG(&b), ErrArgs)
		assert.ErrorIs(t, c.EncodeEPS(&b), ErrArgs)
		assert.ErrorIs(t, c.EncodeASCII(&b), ErrArgs)
		assert.ErrorIs(t, c.EncodeUTF8(&b), ErrArgs)
	}
	assert.Zero(t, b.Len())
	assert.ErrorIs(t, hello(t).EncodeSVG(nil), ErrArgs)
}

func ExampleEncodeString() {
	c, err := EncodeString("https://example.com/", L)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(c.Version, c.Size, c.Level)
	// Output: 2 25 L
}
