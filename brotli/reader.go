// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package brotli

import (
	"bytes"
	"io"
)

// htreeGroup is an ordered sequence of prefix-code tables sharing one
// alphabet size, the "Huffman tree group" of §3. One group exists per
// stream (literal, command, distance) per meta-block.
type htreeGroup struct {
	trees []*prefixDecoder
}

func readTreeGroup(br *bitReader, alphabetSize uint, numTrees int) *htreeGroup {
	g := &htreeGroup{trees: make([]*prefixDecoder, numTrees)}
	for i := range g.trees {
		g.trees[i] = buildPrefixTable(br, alphabetSize)
	}
	return g
}

// readBitsWide reads n bits, possibly more than bitReader's single-call
// limit, LSB-first into a uint64.
func readBitsWide(br *bitReader, n uint) uint64 {
	var v uint64
	var got uint
	for got < n {
		chunk := n - got
		if chunk > 24 {
			chunk = 24
		}
		v |= uint64(br.ReadBits(chunk)) << got
		got += chunk
	}
	return v
}

// bitLen64 is the position of the highest set bit of v, plus one (0 for
// v == 0); it sizes the stream-size hint's interaction with window bits and
// the meta-block length field, §4.10.
func bitLen64(v uint64) uint {
	var n uint
	for v > 0 {
		n++
		v >>= 1
	}
	return n
}

// Reader decompresses a brotli-style stream read from an underlying
// io.Reader. It is not safe for concurrent use.
type Reader struct {
	InputOffset  int64 // Total number of bytes read from the underlying io.Reader
	OutputOffset int64 // Total number of bytes decoded so far (some may not yet be returned by Read)

	rd   bitReader  // Input source
	ring ringBuffer // Sliding-window output engine, §4.9
	dist *distRing  // Distance recency ring, §4.7

	prev1, prev2 byte // Last two decoded literal bytes, for context computation

	wbits    uint  // Sliding window size, in bits
	haveHint bool  // Whether the stream declared a decoded-size hint
	hint     int64 // Declared decoded size, if haveHint
	hintBits uint  // Bit width of hint, if haveHint

	out  bytes.Buffer // Decoded bytes ready to be emitted from Read
	step func()        // Next step of decompression work (can panic)
	err  error         // Persistent error
}

// NewReader creates a new Reader reading the given brotli-style stream.
func NewReader(r io.Reader) *Reader {
	br := new(Reader)
	br.Reset(r)
	return br
}

// NewBufferedReader creates a Reader over an in-memory encoded buffer.
func NewBufferedReader(data []byte) *Reader {
	return NewReader(bytes.NewReader(data))
}

// Reset discards any state and makes the Reader read from r, as if it was
// newly created with NewReader.
func (br *Reader) Reset(r io.Reader) error {
	*br = Reader{}
	br.rd.Reset(r)
	br.dist = newDistRing()
	br.step = br.readStreamHeader
	return nil
}

// Close returns the error, if any, that decoding had already hit (io.EOF is
// not reported), and makes later calls to Read fail with io.ErrClosedPipe.
// It does not close the underlying reader.
func (br *Reader) Close() error {
	if br.err == io.EOF || br.err == io.ErrClosedPipe {
		return nil
	}
	err := br.err
	br.err = io.ErrClosedPipe
	return err
}

func (br *Reader) Read(buf []byte) (int, error) {
	if br.err != nil && br.out.Len() == 0 {
		return 0, br.err
	}
	for br.out.Len() == 0 && br.step != nil {
		func() {
			defer errRecover(&br.err)
			br.step()
		}()
		br.InputOffset = br.rd.Offset()
		if br.err != nil {
			break
		}
	}
	br.OutputOffset = int64(br.ring.Pos())
	if br.out.Len() > 0 {
		return br.out.Read(buf)
	}
	if br.err != nil {
		return 0, br.err
	}
	return 0, io.EOF
}

// WriteTo implements io.WriterTo: it decodes the entire stream into w,
// surfacing any error the sink returns rather than swallowing it, §7.
func (br *Reader) WriteTo(w io.Writer) (n int64, err error) {
	buf := make([]byte, 32*1024)
	for {
		nr, rerr := br.Read(buf)
		if nr > 0 {
			nw, werr := w.Write(buf[:nr])
			n += int64(nw)
			if werr != nil {
				return n, werr
			}
			if nw != nr {
				return n, io.ErrShortWrite
			}
		}
		if rerr != nil {
			if rerr == io.EOF {
				return n, nil
			}
			return n, rerr
		}
	}
}

// readStreamHeader reads the stream-wide header of §4.10: an optional
// decoded-size hint, then the window size.
func (br *Reader) readStreamHeader() {
	r := &br.rd
	sizeBytes := r.ReadBits(3)
	if sizeBytes == 0 {
		br.haveHint = false
	} else {
		hint := readBitsWide(r, sizeBytes*8)
		br.haveHint = true
		br.hint = int64(hint)
		br.hintBits = bitLen64(hint)
	}

	if !br.haveHint || br.hintBits > 16 {
		if r.ReadBits(1) == 1 {
			br.wbits = 17 + r.ReadBits(3)
		} else {
			br.wbits = 16
		}
	} else {
		br.wbits = 16
	}

	br.ring.Init(br.wbits)
	br.ring.Attach(&br.out)
	br.step = br.decodeMetaBlock
}

// decodeMetaBlock decodes exactly one meta-block: its header (§4.10 steps
// 1-7) and its command/literal/copy body (§4.10 step 8). Read calls it
// repeatedly, once per meta-block, until the stream's final meta-block has
// been processed.
func (br *Reader) decodeMetaBlock() {
	r := &br.rd
	inputEnd := r.ReadBits(1) == 1

	if inputEnd && !br.haveHint {
		// Metadata-only terminator: nothing else to read.
		if r.ReadPads() > 0 {
			panic(ErrCorrupt)
		}
		br.ring.FlushFinal()
		br.step = nil
		return
	}

	var metaBlockLen int
	switch {
	case inputEnd:
		metaBlockLen = int(br.hint) - int(br.ring.Pos())
	case !br.haveHint:
		nibbles := r.ReadBits(3)
		metaBlockLen = int(readBitsWide(r, 4*nibbles)) + 1
	default:
		metaBlockLen = int(readBitsWide(r, br.hintBits)) + 1
	}
	if metaBlockLen < 0 {
		panic(ErrCorrupt)
	}
	metaBlockEnd := br.ring.Pos() + uint64(metaBlockLen)

	lBlocks := initBlockState(r, metaBlockLen)
	cBlocks := initBlockState(r, metaBlockLen)
	dBlocks := initBlockState(r, metaBlockLen)

	postfixBits := r.ReadBits(2)
	numDirect := uint(16) + (r.ReadBits(4) << postfixBits)
	numDistanceCodes := numDirect + (48 << postfixBits)

	contextModes := make([]uint, lBlocks.numTypes)
	for i := range contextModes {
		contextModes[i] = r.ReadBits(2)
	}

	literalCtxMap, numLiteralTrees := decodeContextMap(r, lBlocks.numTypes<<6)
	distCtxMap, numDistTrees := decodeContextMap(r, dBlocks.numTypes<<2)

	literalTrees := readTreeGroup(r, numLitSyms, numLiteralTrees)
	commandTrees := readTreeGroup(r, numInsSyms, cBlocks.numTypes)
	distTrees := readTreeGroup(r, numDistanceCodes, numDistTrees)

	for br.ring.Pos() < metaBlockEnd {
		cBlocks.ensureBlock(r)
		cmd := readCommand(r, commandTrees.trees[cBlocks.curType])
		cBlocks.consume()

		for i := 0; i < cmd.insertLen; i++ {
			if br.ring.Pos() >= metaBlockEnd {
				panic(ErrCorrupt)
			}
			lBlocks.ensureBlock(r)
			mode := contextModes[lBlocks.curType]
			ctx := literalContext(mode, br.prev1, br.prev2)
			treeIdx := literalCtxMap[lBlocks.curType<<6|int(ctx)]
			sym := literalTrees.trees[treeIdx].ReadSymbol(r)
			br.ring.WriteByte(byte(sym))
			lBlocks.consume()
			br.prev2, br.prev1 = br.prev1, byte(sym)
		}

		if br.ring.Pos() == metaBlockEnd {
			break
		}

		var distCode uint
		if !cmd.distImplicit {
			dBlocks.ensureBlock(r)
			distCtxIdx := cmd.copyLen - 2
			if distCtxIdx > 3 {
				distCtxIdx = 3
			}
			treeIdx := distCtxMap[dBlocks.curType<<2|distCtxIdx]
			distCode = uint(distTrees.trees[treeIdx].ReadSymbol(r))
			dBlocks.consume()
		}

		distance, short := resolveDistance(r, distCode, numDirect, postfixBits, br.dist)
		if !short {
			br.dist.push(distance)
		}

		maxDist := br.ring.MaxDistance()
		if distance <= 0 || uint64(distance) > br.ring.Pos() || uint64(distance) > maxDist {
			panic(ErrCorrupt)
		}
		if br.ring.Pos()+uint64(cmd.copyLen) > metaBlockEnd {
			panic(ErrCorrupt)
		}
		br.ring.Copy(distance, cmd.copyLen)

		pos := br.ring.Pos()
		br.prev1 = br.ring.ByteAt(pos - 1)
		br.prev2 = br.ring.ByteAt(pos - 2)
	}

	if inputEnd {
		if r.ReadPads() > 0 {
			panic(ErrCorrupt)
		}
		br.ring.FlushFinal()
		br.step = nil
	}
}

// DecodedSize is the "size probe" entry point of §6.1: it reads only the
// stream-size hint, if present, without decoding anything. ok is false if
// the stream carries no explicit decoded-size hint.
func DecodedSize(data []byte) (size int64, ok bool) {
	defer func() {
		if recover() != nil {
			size, ok = 0, false
		}
	}()
	var r bitReader
	r.Reset(bytes.NewReader(data))
	sizeBytes := r.ReadBits(3)
	if sizeBytes == 0 {
		return 0, false
	}
	return int64(readBitsWide(&r, sizeBytes*8)), true
}
