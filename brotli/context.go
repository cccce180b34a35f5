// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package brotli

// Literal context modes, §4.10 step 4. The 2-bit context_mode read from the
// stream is shifted left by one to index contextLookupOffsets in pairs.
const (
	contextModeLSB6 = iota
	contextModeMSB6
	contextModeUTF8
	contextModeSigned
)

var (
	// contextLookup is the flattened CTX1/CTX2 pair for every context mode:
	// mode m uses contextLookup[contextLookupOffsets[2*m]+prev1] as CTX1 and
	// contextLookup[contextLookupOffsets[2*m+1]+prev2] as CTX2, §4.10 step 4
	// and §3's context computation. Every entry fits in 6 bits so the
	// OR of a CTX1 and CTX2 lookup always lands in [0,63].
	contextLookup [8 * 256]byte

	// contextLookupOffsets locates the (CTX1, CTX2) pair for mode m at
	// indices 2*m and 2*m+1.
	contextLookupOffsets = [8]uint32{0, 256, 512, 768, 1024, 1280, 1536, 1792}

	// byteSignClass buckets a byte into one of eight classes, shared by the
	// UTF-8-aware and signed context modes.
	byteSignClass [256]byte
)

func initContextLUTs() {
	for i := 0; i < 256; i++ {
		b := byte(i)
		byteSignClass[i] = classifyByteSign(b)
	}
	for i := 0; i < 256; i++ {
		b := byte(i)

		// LSB6: ctx = prev1 & 0x3f, prev2 unused.
		contextLookup[0*256+i] = b & 0x3f
		contextLookup[1*256+i] = 0

		// MSB6: ctx = prev1 >> 2, prev2 unused.
		contextLookup[2*256+i] = b >> 2
		contextLookup[3*256+i] = 0

		// UTF8: the leading byte contributes a coarser class that folds
		// continuation bytes together, the trailing byte its full class.
		lead := byteSignClass[i]
		if b >= 0x80 && b <= 0xbf {
			lead = 0
		}
		contextLookup[4*256+i] = lead << 3
		contextLookup[5*256+i] = byteSignClass[i]

		// Signed: both bytes contribute their full 3-bit class.
		contextLookup[6*256+i] = byteSignClass[i] << 3
		contextLookup[7*256+i] = byteSignClass[i]
	}
}

// classifyByteSign buckets a byte into one of eight classes by its
// high bits, used to build the UTF-8-aware and signed context tables.
func classifyByteSign(b byte) byte {
	switch {
	case b == 0:
		return 0
	case b < 0x20:
		return 1
	case b < 0x40:
		return 2
	case b < 0x60:
		return 3
	case b < 0x80:
		return 4
	case b < 0xc0:
		return 5
	case b < 0xe0:
		return 6
	default:
		return 7
	}
}

// literalContext returns the literal context ID in [0,63] for the given
// context mode and the two previously emitted bytes.
func literalContext(mode uint, prev1, prev2 byte) byte {
	off1 := contextLookupOffsets[2*mode]
	off2 := contextLookupOffsets[2*mode+1]
	return contextLookup[off1+uint32(prev1)] | contextLookup[off2+uint32(prev2)]
}
