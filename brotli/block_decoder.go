// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package brotli

// blockState tracks the per-stream block-type switching state of §4.5: a
// 2-entry recency ring of past block types, the currently active type, and
// how many symbols remain in the current block.
type blockState struct {
	numTypes int
	curType  int
	length   int // symbols remaining in the current block
	ring     [2]int
	cursor   int

	typeDec *prefixDecoder // nil when numTypes == 1
	lenDec  *prefixDecoder // nil when numTypes == 1
}

// initBlockState reads the per-stream block-type header of §4.10 step 2.
func initBlockState(br *bitReader, metaBlockLen int) *blockState {
	bs := &blockState{ring: [2]int{0, 1}}
	if br.ReadBits(1) == 1 {
		bs.numTypes = int(br.ReadBits(8)) + 1
		bs.typeDec = buildPrefixTable(br, uint(bs.numTypes+2))
		bs.lenDec = buildPrefixTable(br, numBlkCntSyms)
		bs.length = bs.readBlockLength(br)
	} else {
		bs.numTypes = 1
		bs.length = metaBlockLen
	}
	return bs
}

// ensureBlock switches to the next block when the current one is exhausted.
func (bs *blockState) ensureBlock(br *bitReader) {
	if bs.length > 0 {
		return
	}
	if bs.numTypes == 1 {
		panic(ErrCorrupt) // exhausted a single-type block with more symbols due
	}
	t := bs.typeDec.ReadSymbol(br)
	var newType int
	switch {
	case t == 0:
		newType = bs.ring[bs.cursor&1]
	case t == 1:
		newType = (bs.ring[(bs.cursor-1)&1] + 1) % bs.numTypes
	default:
		newType = int(t) - 2
		if newType >= bs.numTypes {
			panic(ErrCorrupt)
		}
	}
	bs.ring[bs.cursor&1] = newType
	bs.cursor++
	bs.curType = newType
	bs.length = bs.readBlockLength(br)
}

func (bs *blockState) readBlockLength(br *bitReader) int {
	sym := bs.lenDec.ReadSymbol(br)
	rc := blkLenRanges[sym]
	return int(rc.base) + int(br.ReadBits(uint(rc.bits)))
}

// consume accounts for one decoded symbol against the current block.
func (bs *blockState) consume() {
	bs.length--
}
