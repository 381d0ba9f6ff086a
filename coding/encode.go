// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import (
	"golang.org/x/sync/errgroup"

	"github.com/gigtarget/qr/gf256"
)

// A Symbol is an encoded QR code.
type Symbol struct {
	Version Version // QR code version
	Level   Level   // QR error correction level
	Mask    int     // mask pattern
	Score   int     // penalty of the chosen mask
	*Matrix
}

// Codewords returns the data codewords followed by the Reed-Solomon
// check bytes for data encoded at version v.
func Codewords(data []byte, v Version) ([]byte, error) {
	info, err := v.Info()
	if err != nil {
		return nil, err
	}
	dcw, err := EncodeBytes(data, v)
	if err != nil {
		return nil, err
	}
	return appendECC(dcw, info), nil
}

// appendECC appends check bytes to data codewords dcw.
func appendECC(dcw []byte, info VersionInfo) []byte {
	cw := make([]byte, info.TotalCodewords)
	copy(cw, dcw)
	rs := gf256.NewRSEncoder(Field, info.ECCCodewords)
	rs.ECC(cw[:info.DataCodewords], cw[info.DataCodewords:])
	return cw
}

// Encode returns a QR code holding data in byte mode at level l,
// using the smallest version that fits.
func Encode(data []byte, l Level) (*Symbol, error) {
	if l != L {
		return nil, ErrLevel
	}
	v, dcw, err := ChooseVersion(data)
	if err != nil {
		return nil, err
	}
	p, err := NewPlan(v)
	if err != nil {
		return nil, err
	}
	return p.Encode(appendECC(dcw, p.VersionInfo), l)
}

// Encode places codewords on the plan's skeleton under each mask and
// returns the code with the smallest penalty.  Ties go to the lowest
// mask number.
func (p *Plan) Encode(codewords []byte, l Level) (*Symbol, error) {
	var (
		g   errgroup.Group
		cm  [NumMasks]*Matrix
		pen [NumMasks]int
	)
	for mask := range masks {
		mask := mask
		g.Go(func() error {
			m, err := p.Apply(codewords, l, mask)
			if err != nil {
				return err
			}
			cm[mask], pen[mask] = m, m.Penalty()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	best := 0
	for mask := 1; mask < NumMasks; mask++ {
		if pen[mask] < pen[best] {
			best = mask
		}
	}
	return &Symbol{
		Version: p.Version,
		Level:   l,
		Mask:    best,
		Score:   pen[best],
		Matrix:  cm[best],
	}, nil
}

// Apply returns a new Matrix with codewords placed on the plan's
// skeleton under the given mask, and the format information set.
func (p *Plan) Apply(codewords []byte, l Level, mask int) (*Matrix, error) {
	mf, err := Mask(mask)
	if err != nil {
		return nil, err
	}
	m := p.Skeleton.overlay()
	if err := placeData(m, codewords, mf); err != nil {
		return nil, err
	}
	placeFormat(m, FormatBits(l, mask))
	return m, nil
}
