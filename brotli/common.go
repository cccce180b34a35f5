// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package brotli implements a decoder for a Brotli-style compressed data
// format. Its stream and meta-block headers use a simplified grammar, so it
// does not decode streams produced by standard Brotli encoders.
package brotli

func initLUTs() {
	initContextLUTs()
	initPrefixLUTs()
}

func init() { initLUTs() }
