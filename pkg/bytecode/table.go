/******************************************************************************\
* The Ori Programming Language                                                 *
*                                                                              *
* Copyright 2023-2026 The Ori Authors                                          *
* Licensed under the MIT license (see LICENSE.txt for details)                 *
\******************************************************************************/

package bytecode

import "bytes"

// tableMaxLoad is the load factor above which a Table grows.
const tableMaxLoad = 0.75

// minTableCapacity is the capacity a Table starts with when its first entry
// is inserted. Growth doubles from there.
const minTableCapacity = 8

// An entry is one slot of a Table. A nil Key with a null Value is an empty
// slot; a nil Key with a true Value is a tombstone (a deleted entry that must
// not break probe chains).
type entry struct {
	key   *ObjString
	value Value
}

// A Table is a hash table mapping interned strings to values. It uses open
// addressing with linear probing, which means lookups depend on keys being
// canonical: two keys are the same key only if they are the same *ObjString.
// The one content-based lookup is FindString, which exists precisely so the
// interner can canonicalize new strings.
type Table struct {
	// count is the number of used slots, tombstones included.
	count int

	// entries is the slot array. Its length is the table's capacity.
	entries []entry
}

// NewTable returns a new, empty Table.
func NewTable() *Table {
	return &Table{}
}

// findEntry returns the slot where key lives, or the slot where it would be
// inserted: the first tombstone found on the probe chain if there was one,
// the terminating empty slot otherwise.
func findEntry(entries []entry, key *ObjString) *entry {
	index := key.Hash % uint32(len(entries))
	var tombstone *entry

	for {
		e := &entries[index]

		if e.key == nil {
			if e.value.IsNull() {
				// Empty slot: the key is absent. Reuse a tombstone if we
				// passed one on the way here.
				if tombstone != nil {
					return tombstone
				}
				return e
			}
			// Tombstone: remember the first one, keep probing.
			if tombstone == nil {
				tombstone = e
			}
		} else if e.key == key {
			return e
		}

		index = (index + 1) % uint32(len(entries))
	}
}

// Get looks key up in the table. Returns the associated value and whether the
// key was present at all.
func (t *Table) Get(key *ObjString) (Value, bool) {
	if t.count == 0 {
		return NewValueNull(), false
	}

	e := findEntry(t.entries, key)
	if e.key == nil {
		return NewValueNull(), false
	}
	return e.value, true
}

// Set inserts or overwrites the value associated with key. Returns true iff
// key was not present before, including when the key lands on a tombstone.
// Reusing a tombstone does not increase count: the tombstone is already
// accounted for in it.
func (t *Table) Set(key *ObjString, value Value) bool {
	if float64(t.count+1) > float64(len(t.entries))*tableMaxLoad {
		t.adjustCapacity(growCapacity(len(t.entries)))
	}

	e := findEntry(t.entries, key)

	isNewKey := e.key == nil
	if isNewKey && e.value.IsNull() {
		t.count++
	}

	e.key = key
	e.value = value
	return isNewKey
}

// Delete removes key from the table, leaving a tombstone so probe chains stay
// intact. Returns true iff the key was present.
func (t *Table) Delete(key *ObjString) bool {
	if t.count == 0 {
		return false
	}

	e := findEntry(t.entries, key)
	if e.key == nil {
		return false
	}

	e.key = nil
	e.value = NewValueBool(true)
	return true
}

// AddAll copies every live entry of from into t.
func (t *Table) AddAll(from *Table) {
	for i := range from.entries {
		e := &from.entries[i]
		if e.key != nil {
			t.Set(e.key, e.value)
		}
	}
}

// FindString looks up an entry whose key has the given content and hash. This
// is the only content-based lookup on the Table, used by the interner before
// creating a new string. Returns nil if no such key exists.
func (t *Table) FindString(chars []byte, hash uint32) *ObjString {
	if t.count == 0 {
		return nil
	}

	index := hash % uint32(len(t.entries))
	for {
		e := &t.entries[index]

		if e.key == nil {
			// An empty non-tombstone slot terminates the probe chain.
			if e.value.IsNull() {
				return nil
			}
		} else if len(e.key.Chars) == len(chars) && e.key.Hash == hash &&
			bytes.Equal(e.key.Chars, chars) {
			return e.key
		}

		index = (index + 1) % uint32(len(t.entries))
	}
}

// Free resets the table to a blank state, releasing the slot array.
func (t *Table) Free() {
	t.count = 0
	t.entries = nil
}

// adjustCapacity resizes the slot array to capacity and re-inserts all live
// entries. Tombstones are dropped, so count is recomputed as the live count.
func (t *Table) adjustCapacity(capacity int) {
	entries := make([]entry, capacity)
	for i := range entries {
		entries[i].value = NewValueNull()
	}

	t.count = 0
	for i := range t.entries {
		e := &t.entries[i]
		if e.key == nil {
			continue
		}

		dest := findEntry(entries, e.key)
		dest.key = e.key
		dest.value = e.value
		t.count++
	}

	t.entries = entries
}

// growCapacity returns the next capacity to grow a buffer to: buffers start
// at 8 slots and double from there.
func growCapacity(capacity int) int {
	if capacity < minTableCapacity {
		return minTableCapacity
	}
	return capacity * 2
}
