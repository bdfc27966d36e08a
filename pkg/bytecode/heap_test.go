/******************************************************************************\
* The Ori Programming Language                                                 *
*                                                                              *
* Copyright 2023-2026 The Ori Authors                                          *
* Licensed under the MIT license (see LICENSE.txt for details)                 *
\******************************************************************************/

package bytecode

import (
	"testing"
)

func TestHeapInterning(t *testing.T) {
	heap := NewHeap()

	a := heap.CopyString("twin")
	b := heap.CopyString("twin")
	if a != b {
		t.Fatalf("expected byte-identical strings to share one handle")
	}

	c := heap.CopyString("other")
	if a == c {
		t.Fatalf("expected different contents to get different handles")
	}
}

func TestHeapTakeStringReusesInterned(t *testing.T) {
	heap := NewHeap()

	copied := heap.CopyString("shared")
	taken := heap.TakeString([]byte("shared"))

	if taken != copied {
		t.Fatalf("expected TakeString to reuse the interned handle")
	}

	fresh := heap.TakeString([]byte("fresh"))
	if fresh == copied {
		t.Fatalf("expected new content to allocate a new object")
	}
	if string(fresh.Chars) != "fresh" {
		t.Errorf("expected the taken buffer to become the content, got %q", fresh.Chars)
	}
}

func TestHeapHashCached(t *testing.T) {
	heap := NewHeap()

	s := heap.CopyString("hash me")
	if s.Hash != HashString([]byte("hash me")) {
		t.Errorf("expected the cached hash to match a fresh FNV-1a computation")
	}
}

func TestHeapFree(t *testing.T) {
	heap := NewHeap()

	heap.CopyString("one")
	heap.CopyString("two")
	heap.CopyString("two") // interned: no new object
	heap.TakeString([]byte("three"))

	if freed := heap.Free(); freed != 3 {
		t.Fatalf("expected 3 objects freed, got %v", freed)
	}

	// The heap is reusable, and the old handles are no longer canonical.
	again := heap.CopyString("one")
	if again == nil {
		t.Fatalf("expected the heap to stay usable after Free")
	}
	if freed := heap.Free(); freed != 1 {
		t.Errorf("expected 1 object freed on the second round, got %v", freed)
	}
}

func TestHashStringIsFNV1a(t *testing.T) {
	// Reference values for the 32-bit FNV-1a algorithm.
	tests := []struct {
		input    string
		expected uint32
	}{
		{"", 2166136261},
		{"a", 0xe40c292c},
		{"foobar", 0xbf9cf968},
	}

	for _, tt := range tests {
		if got := HashString([]byte(tt.input)); got != tt.expected {
			t.Errorf("HashString(%q): expected %#x, got %#x", tt.input, tt.expected, got)
		}
	}
}
