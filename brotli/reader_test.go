// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package brotli

import "io"
import "io/ioutil"
import "bytes"
import "testing"

import "github.com/google/go-cmp/cmp"

import "github.com/brotlico/brotli/internal/testutil"

func TestReader(t *testing.T) {
	var vectors = []struct {
		desc   string // Description of the test
		input  string // Test input string in hex
		output string // Expected output string in hex
		err    error  // Expected error
	}{{
		desc:   "empty string",
		input:  "",
		output: "",
		err:    io.ErrUnexpectedEOF,
	}, {
		// size_bytes=0 (no hint), window-bits flag=0 (wbits=16), then an
		// immediate metadata-only terminator (input_end=1, no hint) with a
		// zero-padded final byte.
		desc:   "empty stream, zero padding",
		input:  "10",
		output: "",
	}, {
		// Same as above, but the pad bits following input_end are non-zero.
		desc:   "empty stream, non-zero padding",
		input:  "30",
		output: "",
		err:    ErrCorrupt,
	}, {
		// One content meta-block (length 1, single block type throughout,
		// single-symbol simple prefix codes for the literal/command/distance
		// trees, literal 'A') followed by a metadata-only terminator.
		desc:   "single literal",
		input:  "20000000800405810001",
		output: "41",
	}}

	for i, v := range vectors {
		input := testutil.MustDecodeHex(v.input)
		data, err := ioutil.ReadAll(NewReader(bytes.NewReader(input)))
		want := testutil.MustDecodeHex(v.output)

		if err != v.err {
			t.Errorf("test %d (%q): got %v, want %v", i, v.desc, err, v.err)
		}
		if diff := cmp.Diff(want, data); diff != "" {
			t.Errorf("test %d (%q): mismatch (-want +got):\n%s", i, v.desc, diff)
		}
	}
}
