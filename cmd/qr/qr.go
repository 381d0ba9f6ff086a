// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Qr is a QR code generator.
package main

import (
	"bytes"
	"fmt"
	"image/color"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/hashicorp/go-hclog"
	"github.com/mattn/go-isatty"
	"github.com/pborman/getopt/v2"
	"golang.org/x/image/colornames"

	"github.com/gigtarget/qr"
)

var g = struct {
	scale   int             // scale
	border  int             // quiet zone
	palette *[2]color.Color // palette
	rev     bool            // reverse colours
	fn      string          // filename
	lev     qr.Level        // QR correction level
	format  int             // output file format
	ops     []transform     // flips and rotations, in order
	bg, fg  rgba            // colour
	colSet  bool            // colour set
	latin1  bool            // Latin-1 byte mode
	debug   bool            // debug logging
}{
	bg: rgba{0xff, 0xff, 0xff, 0xff},
	fg: rgba{0x00, 0x00, 0x00, 0xff},
}

// logLevelEnv overrides the default log level.
const logLevelEnv = "QR_LOG_LEVEL"

func printUsage(w io.Writer) {
	cl := getopt.CommandLine
	prog := cl.Program()
	ul := make([]string, 1, 4)
	ul[0] = cl.UsageLine() + " [string ...]"
	ml := max(70-len("Usage: ")-1-len(prog), 0)
	for i := 0; len(ul[i]) > ml; i++ {
		s := ul[i]
		n := ml - 1
		for n > 0 && (s[n] != ' ' || s[n+1] != '[') {
			n--
		}
		ul = append(ul, s[n+1:])
		ul[i] = s[:max(n, 0)]
		ml = 60
	}
	fmt.Fprint(w, "QR code generator\nUsage: ", prog, " ",
		strings.Join(ul, "\n          "), `
If no string is given, data is read from standard input and the final
newline is stripped.  Data is encoded in byte mode at level L using
the smallest QR version from 1 to 4 that fits.  The log level is
taken from $`+logLevelEnv+` (default warn).

`)
	var b bytes.Buffer
	cl.PrintOptions(&b)
	w.Write(b.Bytes())
}

type opt func()

func (opt) String() string                    { return "" }
func (o opt) Set(string, getopt.Option) error { o(); return nil }

func usage() {
	printUsage(os.Stderr)
	os.Exit(2)
}

func help() {
	printUsage(os.Stdout)
	os.Exit(0)
}

func version() {
	fmt.Println(`qr version 0.1.0
Copyright (c) 2011 The Go Authors
Copyright (c) 2025 Vadim Vygonets`)
	os.Exit(0)
}

// A transform rotates or reflects a code.
type transform func(*qr.Code) *qr.Code

func flip()   { g.ops = append(g.ops, (*qr.Code).Flip) }
func rotate() { g.ops = append(g.ops, (*qr.Code).Rotate) }

type rgba struct {
	R, G, B, A uint8
}

func (c *rgba) String() string {
	if *c == (rgba{0x00, 0x00, 0x00, 0xff}) {
		return "black"
	} else if *c == (rgba{0xff, 0xff, 0xff, 0xff}) {
		return "white"
	} else if c.A == 0xff {
		return fmt.Sprintf("%02x%02x%02x", c.R, c.G, c.B)
	} else {
		return fmt.Sprintf("%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
	}
}

func (c *rgba) Set(s string, _ getopt.Option) error {
	g.colSet = true
	name := strings.ToLower(strings.ReplaceAll(s, " ", ""))
	if v, ok := colornames.Map[name]; ok {
		*c = rgba(v)
		return nil
	}
	n, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return fmt.Errorf("%q: bad colour spec", s)
	}
	switch len(s) {
	case 3:
		n = n<<4 | 0xf
		fallthrough
	case 4:
		var nn uint64
		for i := 0; i < 4; i++ {
			nn <<= 8
			nn |= n >> 12 & 0xf * 0x11
			n <<= 4
		}
		n = nn
	case 6:
		n = n<<8 | 0xff
	case 8:
	default:
		return fmt.Errorf("%q: bad colour spec", s)
	}
	c.R, c.G, c.B, c.A = uint8(n>>24), uint8(n>>16), uint8(n>>8), uint8(n)
	return nil
}

var formats = []string{
	"svg", "svgi", "png", "pngi", "pbm", "pbmi", "eps", "epsi",
	"utf8", "utf8i", "ascii", "asciii",
}

var encoders = [...]func(*qr.Code, io.Writer) error{
	(*qr.Code).EncodeSVG,
	(*qr.Code).EncodePNG,
	(*qr.Code).EncodePBM,
	(*qr.Code).EncodeEPS,
	(*qr.Code).EncodeUTF8,
	(*qr.Code).EncodeASCII,
}

// formatIndex returns the encoder index for output type t and
// whether colours are inverted.
func formatIndex(t string) (int, bool, bool) {
	for i, v := range formats {
		if t == v {
			return i >> 1, i&1 != 0, true
		}
	}
	return 0, false, false
}

func parseFlags() {
	getopt.SetUsage(usage)
	getopt.Flag(opt(help), 'h', "show this help").SetFlag()
	getopt.Flag(opt(version), 'V', "print version and copyright").SetFlag()
	getopt.FlagLong(&g.bg, "background", 'B', `background colour; see -F`,
		"RGB[A]|name")
	getopt.FlagLong(&g.fg, "foreground", 'F', `foreground colour `+
		`as 3, 4, 6 or 8 hex digits or SVG colour name; `+
		`only for types svg[i], png[i] and eps[i]`, "RGB[A]|name")
	getopt.Flag(opt(flip), 'f', `flip code horizontally; `+
		`to flip vertically, use "-frr"`).SetFlag()
	getopt.Flag(opt(rotate), 'r', `rotate code 90° counterclockwise; `+
		`-r and -f may be given multiple times, `+
		`order matters: "-fr" = "-rfrr" = "-rrrf"`).SetFlag()
	getopt.Flag(&g.latin1, '1', "convert data to Latin-1")
	getopt.Flag(&g.debug, 'd', "log debugging information")
	border := getopt.Unsigned('m', qr.DefaultBorder,
		&getopt.UnsignedLimit{Base: 0, Bits: 16, Min: 0, Max: 1 << 12},
		"quiet zone pixels", "margin")
	fno := getopt.Flag(&g.fn, 'o', `output file, or "-" for `+
		`standard output`, "file")
	lev := getopt.Enum('l',
		[]string{"l", "m", "q", "h", "L", "M", "Q", "H"}, "l",
		"error correction level, lowest to highest; "+
			"only l is supported", "l|m|q|h")
	scale := getopt.Unsigned('s', qr.DefaultScale,
		&getopt.UnsignedLimit{Base: 0, Bits: 16, Min: 1, Max: 1 << 12},
		`image pixels (type eps[i]: points) per QR module ("pixel"); `+
			`ignored for types utf8[i] and ascii[i]`, "scale")
	ff := getopt.Enum('t', formats, "", `output format, one of: `+
		strings.Join(formats, ", ")+
		`; types with "i" appended have colours inverted; `+
		`if no -o is given and standard output is a TTY, `+
		`default is utf8, otherwise svg`, "type")

	getopt.Parse()
	g.scale = int(*scale)
	g.border = int(*border)
	g.lev = qr.Level(strings.Index("lmqhLMQH", *lev) & 3)
	if *ff == "" {
		if !fno.Seen() && isatty.IsTerminal(os.Stdout.Fd()) {
			*ff = "utf8"
		} else {
			*ff = "svg"
		}
	}
	g.format, g.rev, _ = formatIndex(*ff)
	if g.fn == "-" {
		g.fn = ""
	}
	if g.colSet {
		g.palette = &[2]color.Color{color.NRGBA(g.bg), color.NRGBA(g.fg)}
	}
}

// newLogger returns the logger for the level set by -d or the
// environment.
func newLogger() hclog.Logger {
	level, bad := hclog.Warn, ""
	if s := os.Getenv(logLevelEnv); s != "" {
		if level = hclog.LevelFromString(s); level == hclog.NoLevel {
			level, bad = hclog.Warn, s
		}
	}
	if g.debug {
		level = hclog.Debug
	}
	log := hclog.New(&hclog.LoggerOptions{
		Name:   "qr",
		Level:  level,
		Output: os.Stderr,
	})
	if bad != "" {
		log.Warn("unknown log level", "env", logLevelEnv, "value", bad)
	}
	return log
}

func fatal(log hclog.Logger, msg string, err error) {
	log.Error(msg, "error", err)
	os.Exit(1)
}

func main() {
	parseFlags()
	log := newLogger()

	var s string
	if args := getopt.Args(); len(args) != 0 {
		s = strings.Join(args, " ")
	} else {
		var b strings.Builder
		if _, err := io.Copy(&b, os.Stdin); err != nil {
			fatal(log, "cannot read standard input", err)
		}
		s, _ = strings.CutSuffix(
			strings.ReplaceAll(b.String(), "\r\n", "\n"), "\n")
	}

	encode := qr.EncodeString
	if g.latin1 {
		encode = qr.EncodeLatin1
	}
	c, err := encode(s, g.lev)
	if err != nil {
		fatal(log, "cannot encode data", err)
	}
	log.Debug("encoded", "bytes", len(s), "latin1", g.latin1,
		"version", c.Version, "level", c.Level, "mask", c.Mask,
		"penalty", c.Penalty)
	if err := write(log, c); err != nil {
		fatal(log, "cannot write code", err)
	}
}

func write(log hclog.Logger, c *qr.Code) error {
	for _, op := range g.ops {
		c = op(c)
	}
	c.Scale = g.scale
	c.Border = g.border
	c.Palette = g.palette
	c.Reverse = g.rev

	var w io.WriteCloser = os.Stdout
	if g.fn != "" {
		f, err := os.OpenFile(g.fn, os.O_WRONLY|os.O_CREATE|os.O_TRUNC,
			0666)
		if err != nil {
			return err
		}
		w = f
	}
	log.Debug("writing", "format", formats[g.format*2], "reverse", g.rev,
		"scale", c.Scale, "border", c.Border, "file", g.fn)
	err := encoders[g.format](c, w)
	if g.fn != "" {
		if cerr := w.Close(); err == nil {
			err = cerr
		}
	}
	return err
}
