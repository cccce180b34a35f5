// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package brotli

// mtfLUT is the identity permutation used to seed inverseMoveToFront.
var mtfLUT [256]byte

func init() {
	for i := range mtfLUT {
		mtfLUT[i] = byte(i)
	}
}

// inverseMoveToFront applies the inverse move-to-front transform to v in
// place, §4.8. It is used by the context-map decoder; it is not generally
// self-inverse (applying it twice does not reproduce the input).
func inverseMoveToFront(v []byte) {
	mtf := mtfLUT // local copy, seeded to the identity permutation
	for i, vi := range v {
		v[i] = mtf[vi]
		if vi != 0 {
			copy(mtf[1:vi+1], mtf[:vi])
			mtf[0] = v[i]
		}
	}
}
