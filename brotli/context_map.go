// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package brotli

// decodeContextMap decodes a context map of the given size, §4.4: an
// RLE-compressed, optionally inverse-MTF'd byte vector assigning each
// (block type, context) pair a Huffman tree-group index.
func decodeContextMap(br *bitReader, size int) (ctxMap []byte, numTrees int) {
	numTrees = int(br.ReadBits(8)) + 1
	ctxMap = make([]byte, size)
	if numTrees == 1 {
		return ctxMap, numTrees
	}

	maxRunLengthPrefix := uint(0)
	if br.ReadBits(1) == 1 {
		maxRunLengthPrefix = br.ReadBits(4) + 1
	}

	alphabetSize := uint(numTrees) + maxRunLengthPrefix
	pd := buildPrefixTable(br, alphabetSize)

	i := 0
	for i < size {
		sym := uint(pd.ReadSymbol(br))
		switch {
		case sym == 0:
			i++ // single zero
		case sym <= maxRunLengthPrefix:
			run := (1 << sym) + int(br.ReadBits(sym))
			if i+run > size {
				panic(ErrCorrupt)
			}
			i += run
		default:
			ctxMap[i] = byte(sym - maxRunLengthPrefix)
			i++
		}
	}

	if br.ReadBits(1) == 1 {
		inverseMoveToFront(ctxMap)
	}
	return ctxMap, numTrees
}
