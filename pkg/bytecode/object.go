/******************************************************************************\
* The Ori Programming Language                                                 *
*                                                                              *
* Copyright 2023-2026 The Ori Authors                                          *
* Licensed under the MIT license (see LICENSE.txt for details)                 *
\******************************************************************************/

package bytecode

// An ObjKind represents one of the kinds of heap objects the Ori Virtual
// Machine can allocate. Strings are the only kind for now.
type ObjKind int

const (
	// ObjKindString identifies a string object.
	ObjKindString ObjKind = iota
)

// Obj is the header embedded in every heap object. It carries the object kind
// and the intrusive link used by the Heap's owned-object list.
type Obj struct {
	// Kind is the kind of the object.
	Kind ObjKind

	// Next is the next object in the Heap's owned list.
	Next Object
}

// Object is a heap-allocated Ori object. Every Object is owned by a Heap and
// linked into its object list via the embedded Obj header.
type Object interface {
	// Header returns the object's embedded header.
	Header() *Obj

	// String converts the object to the string the user sees.
	String() string
}

// ObjString is a string object: an immutable byte buffer with a cached hash.
type ObjString struct {
	Obj

	// Chars is the content of the string. Raw bytes: length is a byte count,
	// no codepoint interpretation whatsoever.
	Chars []byte

	// Hash is the FNV-1a hash of Chars, cached at construction.
	Hash uint32
}

// Header returns the object's embedded header. Fulfills the Object interface.
func (s *ObjString) Header() *Obj {
	return &s.Obj
}

// String converts the string object to a plain Go string.
func (s *ObjString) String() string {
	return string(s.Chars)
}

// HashString computes the 32-bit FNV-1a hash of the given bytes.
func HashString(chars []byte) uint32 {
	hash := uint32(2166136261)
	for _, c := range chars {
		hash ^= uint32(c)
		hash *= 16777619
	}
	return hash
}
