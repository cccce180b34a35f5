// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package brotli

import "testing"

func TestLiteralContextRange(t *testing.T) {
	// Every (mode, prev1, prev2) combination must land in [0,63]: this is
	// relied upon directly as a context-map index without further masking.
	for mode := uint(0); mode <= contextModeSigned; mode++ {
		for p1 := 0; p1 < 256; p1 += 7 {
			for p2 := 0; p2 < 256; p2 += 11 {
				ctx := literalContext(mode, byte(p1), byte(p2))
				if ctx > 63 {
					t.Fatalf("mode %d, prev1 %d, prev2 %d: context %d out of range", mode, p1, p2, ctx)
				}
			}
		}
	}
}

func TestLiteralContextLSB6IgnoresPrev2(t *testing.T) {
	a := literalContext(contextModeLSB6, 0x41, 0x00)
	b := literalContext(contextModeLSB6, 0x41, 0xff)
	if a != b {
		t.Errorf("LSB6 context should be independent of prev2: got %d and %d", a, b)
	}
	if want := byte(0x41 & 0x3f); a != want {
		t.Errorf("LSB6 context = %d, want %d", a, want)
	}
}

func TestLiteralContextMSB6IgnoresPrev2(t *testing.T) {
	a := literalContext(contextModeMSB6, 0xcf, 0x00)
	b := literalContext(contextModeMSB6, 0xcf, 0xff)
	if a != b {
		t.Errorf("MSB6 context should be independent of prev2: got %d and %d", a, b)
	}
	if want := byte(0xcf >> 2); a != want {
		t.Errorf("MSB6 context = %d, want %d", a, want)
	}
}
