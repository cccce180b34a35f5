// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package brotli

import (
	"bytes"
	"testing"
)

func TestRingBufferLiteralsAndCopy(t *testing.T) {
	var out bytes.Buffer
	var rb ringBuffer
	rb.Init(4) // window size 16
	rb.Attach(&out)

	for _, b := range []byte("abcd") {
		rb.WriteByte(b)
	}
	// Self-overlapping repeat: distance 1 duplicates the last byte 4 times.
	rb.Copy(1, 4)
	rb.FlushFinal()

	got := out.String()
	want := "abcddddd"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestRingBufferWindowWrapFlushes(t *testing.T) {
	var out bytes.Buffer
	var rb ringBuffer
	rb.Init(2) // window size 4
	rb.Attach(&out)

	for _, b := range []byte("abcdef") {
		rb.WriteByte(b)
	}
	if out.Len() != 4 {
		t.Fatalf("expected one full window flushed automatically, got %d bytes", out.Len())
	}
	rb.FlushFinal()
	if out.String() != "abcdef" {
		t.Errorf("got %q, want %q", out.String(), "abcdef")
	}
}

func TestRingBufferMaxDistance(t *testing.T) {
	var rb ringBuffer
	rb.Init(10) // window size 1024
	if got, want := rb.MaxDistance(), uint64(1024-16); got != want {
		t.Errorf("MaxDistance() = %d, want %d", got, want)
	}
}
