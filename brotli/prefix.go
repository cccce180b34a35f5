// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package brotli

const (
	// This is the maximum bit-width of a prefix code.
	// Thus, it is okay to use uint16 to store codes.
	maxPrefixBits = 15

	// The size of the alphabet for various prefix codes.
	numLitSyms        = 256                  // Literal symbols
	maxNumDistSyms    = 16 + 120 + (48 << 3) // Distance symbols
	numInsSyms        = 704                  // Insert-and-copy length symbols
	numBlkCntSyms     = 26                   // Block count symbols
	maxNumBlkTypeSyms = 256 + 2              // Block type symbols
	maxNumCtxMapSyms  = 256 + 16             // Context map symbols

	numShortDistCodes = 16 // Short (recency-ring) distance codes, §4.7

	// This should be the max of each of the constants above.
	maxNumAlphabetSyms = numInsSyms
)

var (
	// Prefix code lengths for the simple code-length encoding, §4.3.
	simpleLens1  = [1]uint{0}
	simpleLens2  = [2]uint{1, 1}
	simpleLens3  = [3]uint{1, 2, 2}
	simpleLens4a = [4]uint{2, 2, 2, 2}
	simpleLens4b = [4]uint{1, 2, 3, 3}

	// codeLengthOrder is the order in which the 19 code-length-of-symbol
	// lengths are read out of the complex encoding, §4.3.
	codeLengthOrder = [19]uint{
		1, 2, 3, 4, 0, 17, 18, 5, 6, 16, 7, 8, 9, 10, 11, 12, 13, 14, 15,
	}
)

type rangeCode struct {
	base uint32 // Starting base offset of the range
	bits uint8  // Bit-width of a subsequent integer to add to base offset
}
type rangeCodes []rangeCode

var (
	// insLenRanges converts an insert_code into an (offset, nbits) pair, §4.6.
	insLenRanges rangeCodes

	// cpyLenRanges converts a copy_code into an (offset, nbits) pair, §4.6.
	cpyLenRanges rangeCodes

	// blkLenRanges converts a block-length symbol into an actual length, §4.5.
	blkLenRanges rangeCodes
)

// insertRangeOffset and copyRangeOffset select the base row of
// insLenRanges/cpyLenRanges a command symbol's insert/copy sub-code starts
// from, keyed by the (range_idx mod 2) normalization of §4.6. Only indices
// 0 and 1 are ever read; the remaining entries exist only to match the
// 8-entry shape §4.6 describes and are never consulted.
var (
	insertRangeOffset = [8]uint32{0, 8, 0, 0, 0, 0, 0, 0}
	copyRangeOffset   = [8]uint32{0, 0, 0, 0, 0, 0, 0, 0}
)

// shortDistIndexOffset and shortDistValueOffset implement the short
// (recency-ring) distance code table of §4.7: for distance_code < 16,
// distance = ring[(cursor+shortDistIndexOffset[code]) mod 4] +
// shortDistValueOffset[code].
var (
	shortDistIndexOffset = [numShortDistCodes]int{
		3, 2, 1, 0, 3, 3, 3, 3, 3, 3, 2, 2, 2, 2, 2, 2,
	}
	shortDistValueOffset = [numShortDistCodes]int32{
		0, 0, 0, 0, -1, 1, -2, 2, -3, 3, -1, 1, -2, 2, -3, 3,
	}
)

type prefixCode struct {
	sym uint16 // The symbol being mapped
	val uint16 // Value of the prefix code (must be in [0..1<<len])
	len uint8  // Bit length of the prefix code
}
type prefixCodes []prefixCode

func initPrefixLUTs() {
	// Sanity check some constants.
	for _, numMax := range []uint{
		numLitSyms, maxNumDistSyms, numInsSyms, numBlkCntSyms, maxNumBlkTypeSyms, maxNumCtxMapSyms,
	} {
		if numMax > maxNumAlphabetSyms {
			panic("maximum alphabet size is not updated")
		}
	}
	if maxNumAlphabetSyms >= 1<<prefixSymbolBits {
		panic("maximum alphabet size is too large to represent")
	}
	if maxPrefixBits >= 1<<prefixCountBits {
		panic("maximum prefix bit-length is too large to represent")
	}

	initPrefixRangeLUTs()
}

func initPrefixRangeLUTs() {
	var makeRanges = func(base uint, bits []uint) (rc []rangeCode) {
		for _, nb := range bits {
			rc = append(rc, rangeCode{base: uint32(base), bits: uint8(nb)})
			base += 1 << nb
		}
		return rc
	}

	insLenRanges = makeRanges(0, []uint{
		0, 0, 0, 0, 0, 0, 1, 1, 2, 2, 3, 3, 4, 4, 5, 5, 6, 7, 8, 9, 10, 12, 14, 24,
	}) // §4.6
	cpyLenRanges = makeRanges(2, []uint{
		0, 0, 0, 0, 0, 0, 0, 0, 1, 1, 2, 2, 3, 3, 4, 4, 5, 5, 6, 7, 8, 9, 10, 24,
	}) // §4.6
	blkLenRanges = makeRanges(1, []uint{
		2, 2, 2, 2, 3, 3, 3, 3, 4, 4, 4, 4, 5, 5, 5, 5, 6, 6, 7, 8, 9, 10, 11, 12, 13, 24,
	}) // §4.5
}
