// Package jstring implements the runtime's string primitive: a byte-sized
// view with no required terminator, byte-exact comparison, and zero-copy
// single-byte slicing. Strings are immortal — the garbage collector never
// frees a string buffer, which sidesteps having to track which views share
// a parent buffer (a documented limitation, not an oversight).
package jstring

// String is a byte-sequence view: a slice plus its length. Two Strings can
// share an underlying array (as produced by CharAt), so callers must not
// mutate the bytes behind a String.
type String struct {
	bytes []byte
}

// FromBytes builds a String view over b without copying.
func FromBytes(b []byte) String {
	return String{bytes: b}
}

// FromGoString builds a String view over s's bytes.
func FromGoString(s string) String {
	return String{bytes: []byte(s)}
}

// Len returns the byte length of the string.
func (s String) Len() int {
	return len(s.bytes)
}

// Bytes returns the raw bytes backing the view.
func (s String) Bytes() []byte {
	return s.bytes
}

// Go renders the string as a native Go string (a copy).
func (s String) Go() string {
	return string(s.bytes)
}

// CharAt returns a zero-copy, length-1 view into s at the given byte index.
// The caller is responsible for bounds checking; CharAt panics on an
// out-of-range index the same way a slice expression would.
func (s String) CharAt(index int) String {
	return String{bytes: s.bytes[index : index+1]}
}

// Compare performs a byte-exact comparison with a length tie-break: strings
// that share a common prefix are ordered by length, matching string_cmp in
// the original runtime.
func Compare(a, b String) int {
	minLen := a.Len()
	if b.Len() < minLen {
		minLen = b.Len()
	}
	for i := 0; i < minLen; i++ {
		if a.bytes[i] != b.bytes[i] {
			return int(a.bytes[i]) - int(b.bytes[i])
		}
	}
	return a.Len() - b.Len()
}

// Equal reports whether a and b hold byte-identical content.
func Equal(a, b String) bool {
	return Compare(a, b) == 0
}

// Concat returns a new String holding the byte-wise concatenation of a and b.
func Concat(a, b String) String {
	out := make([]byte, a.Len()+b.Len())
	copy(out, a.bytes)
	copy(out[a.Len():], b.bytes)
	return String{bytes: out}
}

// Hash computes the FNV-1a hash of the string, used by the object store to
// pre-filter property lookups before a byte-wise comparison.
func Hash(s String) uint32 {
	const offsetBasis uint32 = 2166136261
	const prime uint32 = 16777619

	h := offsetBasis
	for _, b := range s.bytes {
		h ^= uint32(b)
		h *= prime
	}
	return h
}
