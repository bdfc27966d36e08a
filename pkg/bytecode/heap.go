/******************************************************************************\
* The Ori Programming Language                                                 *
*                                                                              *
* Copyright 2023-2026 The Ori Authors                                          *
* Licensed under the MIT license (see LICENSE.txt for details)                 *
\******************************************************************************/

package bytecode

// A Heap owns every object the interpreter allocates. Objects are linked into
// an intrusive list as they are created, and the whole list is released in one
// sweep when the Heap is freed.
//
// The Heap is also the string interner: every string creation goes through it,
// and byte-identical strings share a single *ObjString handle. This is what
// makes string equality a pointer comparison.
//
// Both the compiler (string and identifier constants) and the VM
// (concatenation) allocate through the same Heap, so interning holds across
// the whole pipeline.
type Heap struct {
	// objects is the head of the owned-object list.
	objects Object

	// strings is the interning table. Keys are every live string; values are
	// unused (always null).
	strings *Table
}

// NewHeap returns a new, empty Heap.
func NewHeap() *Heap {
	return &Heap{
		strings: NewTable(),
	}
}

// Strings returns the Heap's interning table.
func (h *Heap) Strings() *Table {
	return h.strings
}

// CopyString interns the string with the content of chars, copying the bytes
// if a new object has to be allocated. The caller keeps ownership of chars.
func (h *Heap) CopyString(chars string) *ObjString {
	bs := []byte(chars)
	hash := HashString(bs)

	if interned := h.strings.FindString(bs, hash); interned != nil {
		return interned
	}

	return h.allocateString(bs, hash)
}

// TakeString interns the string with the content of chars, taking ownership
// of the buffer. If an identical string is already interned, the buffer is
// discarded and the existing handle returned.
func (h *Heap) TakeString(chars []byte) *ObjString {
	hash := HashString(chars)

	if interned := h.strings.FindString(chars, hash); interned != nil {
		return interned
	}

	return h.allocateString(chars, hash)
}

// allocateString creates a new string object, links it into the owned list,
// and registers it in the interning table. chars must not be aliased by the
// caller afterwards.
func (h *Heap) allocateString(chars []byte, hash uint32) *ObjString {
	s := &ObjString{
		Obj:   Obj{Kind: ObjKindString, Next: h.objects},
		Chars: chars,
		Hash:  hash,
	}
	h.objects = s

	h.strings.Set(s, NewValueNull())

	return s
}

// Free releases every object the Heap owns, along with the interning table,
// and resets the Heap to a blank state. Returns the number of objects
// released. Each object is unlinked exactly once; handles that escaped keep
// their content but are no longer owned by anything.
func (h *Heap) Free() int {
	freed := 0
	for obj := h.objects; obj != nil; {
		next := obj.Header().Next
		obj.Header().Next = nil
		freed++
		obj = next
	}
	h.objects = nil
	h.strings.Free()
	return freed
}
