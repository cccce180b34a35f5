// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package brotli

import "testing"

func TestInverseMoveToFront(t *testing.T) {
	var vectors = []struct {
		input  []byte
		output []byte
	}{{
		input:  []byte{},
		output: []byte{},
	}, {
		// All zeros: the MTF table never moves, so output is identity.
		input:  []byte{0, 0, 0},
		output: []byte{0, 0, 0},
	}, {
		// v[0]=2 emits mtfLUT[2]=2 and promotes it to the front: {2,0,1,3,...}.
		// v[1]=0 then emits the new front, 2.
		input:  []byte{2, 0, 1},
		output: []byte{2, 2, 0},
	}}

	for i, v := range vectors {
		got := append([]byte(nil), v.input...)
		inverseMoveToFront(got)
		if len(got) != len(v.output) {
			t.Fatalf("test %d: length mismatch: got %d, want %d", i, len(got), len(v.output))
		}
		for j := range got {
			if got[j] != v.output[j] {
				t.Errorf("test %d: byte %d: got %d, want %d", i, j, got[j], v.output[j])
			}
		}
	}
}
