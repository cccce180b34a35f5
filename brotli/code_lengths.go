// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package brotli

// readComplexCodeLengthSymbol decodes one of the six code-length-of-length
// values {0,1,2,3,4,5} using the fixed 2-to-4 bit decision tree of §4.3.
// This is hand-written rather than built through the generic canonical
// prefix-code machinery because the table is given directly by the format
// as a literal bit pattern, not derived from a set of code lengths.
func readComplexCodeLengthSymbol(br *bitReader) uint {
	switch br.ReadBits(2) {
	case 0:
		return 0
	case 1:
		return 3
	case 2:
		return 4
	default: // 3
		if br.ReadBits(1) == 0 {
			return 2
		}
		if br.ReadBits(1) == 0 {
			return 1
		}
		return 5
	}
}

// buildPrefixTable decodes a vector of A code lengths from br and builds a
// prefixDecoder over them, implementing the simple/complex encoding of §4.3.
func buildPrefixTable(br *bitReader, alphabetSize uint) *prefixDecoder {
	lens, single, isSingle := readCodeLengths(br, alphabetSize)
	if isSingle {
		pd := new(prefixDecoder)
		pd.Init([]prefixCode{{sym: single}}, true)
		return pd
	}
	return newPrefixDecoderFromLengths(lens)
}

// newPrefixDecoderFromLengths builds a prefixDecoder from a dense length
// vector (zero meaning "symbol unused").
func newPrefixDecoderFromLengths(lens []uint) *prefixDecoder {
	var codes []prefixCode
	for sym, l := range lens {
		if l > 0 {
			codes = append(codes, prefixCode{sym: uint16(sym), len: uint8(l)})
		}
	}
	pd := new(prefixDecoder)
	if len(codes) == 0 {
		panic(ErrCorrupt)
	}
	pd.Init(codes, true)
	return pd
}

// readCodeLengths decodes the dense code-length vector for an alphabet of
// the given size, dispatching on the simple/complex flag of §4.3. A
// single-symbol simple code cannot be represented as a dense length vector
// (its one live entry has length 0, indistinguishable from "unused"), so
// that case is reported separately via single/isSingle.
func readCodeLengths(br *bitReader, alphabetSize uint) (lens []uint, single uint16, isSingle bool) {
	lens = make([]uint, alphabetSize)
	if br.ReadBits(1) == 1 {
		single, isSingle = readSimpleCodeLengths(br, lens)
	} else {
		readComplexCodeLengths(br, lens)
	}
	return lens, single, isSingle
}

// readSimpleCodeLengths implements the simple encoding of §4.3: 1 to 4
// symbols given explicitly, with a small fixed set of length assignments.
func readSimpleCodeLengths(br *bitReader, lens []uint) (single uint16, isSingle bool) {
	numSymbols := int(br.ReadBits(2)) + 1
	maxBits := uint(0)
	for 1<<maxBits < len(lens) {
		maxBits++
	}

	var syms [4]uint
	for i := 0; i < numSymbols; i++ {
		syms[i] = br.ReadBits(maxBits)
		if int(syms[i]) >= len(lens) {
			panic(ErrCorrupt)
		}
	}

	switch numSymbols {
	case 1:
		return uint16(syms[0]), true
	case 2:
		lens[syms[0]] = 1
		lens[syms[1]] = 1
	case 3:
		lens[syms[0]] = 1
		lens[syms[1]] = 2
		lens[syms[2]] = 2
	case 4:
		if br.ReadBits(1) == 1 {
			lens[syms[0]] = 1
			lens[syms[1]] = 2
			lens[syms[2]] = 3
			lens[syms[3]] = 3
		} else {
			lens[syms[0]] = 2
			lens[syms[1]] = 2
			lens[syms[2]] = 2
			lens[syms[3]] = 2
		}
	}
	return 0, false
}

// readComplexCodeLengths implements the complex encoding of §4.3: a nested
// 19-symbol prefix code over code-length-of-length values, then an
// RLE-compressed dense length vector for the target alphabet.
func readComplexCodeLengths(br *bitReader, lens []uint) {
	numCodes := int(br.ReadBits(4)) + 4
	if numCodes > 19 {
		panic(ErrCorrupt)
	}

	var codeLens [19]uint
	start := 0
	if br.ReadBits(1) == 1 {
		start = 2
	}
	for i := start; i < numCodes; i++ {
		codeLens[codeLengthOrder[i]] = readComplexCodeLengthSymbol(br)
	}
	clDec := newPrefixDecoderFromLengths(codeLens[:])

	maxSymbol := len(lens)
	if br.ReadBits(1) == 1 {
		nbits := 2 + 2*br.ReadBits(3)
		maxSymbol = int(br.ReadBits(nbits)) + 2
		if maxSymbol > len(lens) {
			panic(ErrCorrupt)
		}
	}

	prev := uint(8)
	i := 0
	for i < maxSymbol && i < len(lens) {
		sym := uint(clDec.ReadSymbol(br))
		switch {
		case sym <= 15:
			if sym != 0 {
				prev = sym
			}
			lens[i] = sym
			i++
		case sym == 16:
			reps := int(br.ReadBits(2)) + 3
			if i+reps > len(lens) {
				panic(ErrCorrupt)
			}
			for ; reps > 0; reps-- {
				lens[i] = prev
				i++
			}
		case sym == 17:
			reps := int(br.ReadBits(3)) + 3
			if i+reps > len(lens) {
				panic(ErrCorrupt)
			}
			i += reps
		default: // sym == 18
			reps := int(br.ReadBits(7)) + 11
			if i+reps > len(lens) {
				panic(ErrCorrupt)
			}
			i += reps
		}
	}
}
