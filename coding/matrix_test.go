// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import "testing"

func TestMatrixOutside(t *testing.T) {
	s, err := Encode([]byte("HELLO"), L)
	if err != nil {
		t.Fatal(err)
	}
	n := s.Size()
	if !s.Dark(n-1, 0) || !s.IsFunction(n-1, 0) {
		t.Fatalf("(%d,0) is not a dark function module", n-1)
	}
	for _, p := range [][2]int{{-1, 1}, {n, 0}, {0, -1}, {0, n}, {-1, -1}, {n, n}} {
		x, y := p[0], p[1]
		if got := s.Get(x, y); got != Light {
			t.Errorf("Get(%d,%d) = %v, want light", x, y, got)
		}
		if s.Dark(x, y) || s.IsFunction(x, y) {
			t.Errorf("(%d,%d): Dark %v IsFunction %v, want false",
				x, y, s.Dark(x, y), s.IsFunction(x, y))
		}
	}
}
