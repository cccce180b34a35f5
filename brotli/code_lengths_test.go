// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package brotli

import (
	"bytes"
	"testing"

	"github.com/brotlico/brotli/internal/testutil"
)

func TestBuildPrefixTableSingleSymbol(t *testing.T) {
	// Simple encoding, 1 symbol: flag=1, num_symbols-1=0, sym=2 (2 bits,
	// alphabet size 4). A single-symbol tree must decode with zero bits
	// consumed regardless of what follows in the stream.
	buf := testutil.MustDecodeBitGen("<<< D1:1 D2:0 D2:2")
	var br bitReader
	br.Reset(bytes.NewReader(buf))
	pd := buildPrefixTable(&br, 4)
	if got := pd.ReadSymbol(&br); got != 2 {
		t.Errorf("ReadSymbol() = %d, want 2", got)
	}
}

func TestBuildPrefixTableTwoSymbols(t *testing.T) {
	// Simple encoding, 2 symbols {0, 3}, both 1-bit codes: canonical
	// assignment gives sym 0 the code "0" and sym 3 the code "1".
	buf := testutil.MustDecodeBitGen("<<< D1:1 D2:1 D2:0 D2:3 D1:0")
	var br bitReader
	br.Reset(bytes.NewReader(buf))
	pd := buildPrefixTable(&br, 4)
	if got := pd.ReadSymbol(&br); got != 0 {
		t.Errorf("ReadSymbol() = %d, want 0", got)
	}
}
