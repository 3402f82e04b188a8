package runtime

import "github.com/cwbudde/jsrt/internal/jstring"

// ClassTag distinguishes the three object classes. Function and Array are
// classes, not Value tags: spec.md §3 is explicit that "is this a function"
// means "Object-tagged, non-null, class == Function".
type ClassTag uint8

const (
	ClassPlain ClassTag = iota
	ClassFunction
	ClassArray
)

func (c ClassTag) String() string {
	switch c {
	case ClassFunction:
		return "Function"
	case ClassArray:
		return "Array"
	default:
		return "Object"
	}
}

// Property is one (key, hash, value) triple in an object's property table.
type Property struct {
	Key   jstring.String
	Hash  uint32
	Value Value
}

// NativeFunc is the native function pointer a Function object carries,
// matching the ABI in spec.md §6: the environment, the receiver, the
// argument count (arguments live on the environment's call stack, tail
// relative), and the function's captured binding.
type NativeFunc func(env Env, this Value, argCount int, binding *Object) Value

// Object is the runtime representation of every non-primitive value:
// plain objects, arrays, and functions all share this layout, exactly as
// JSObject does in the original runtime. A Function object additionally
// populates Native and may populate Binding; everything else leaves them
// nil/zero.
type Object struct {
	Class      ClassTag
	Properties []Property
	Prototype  *Object
	Primitive  *Value
	GCMark     bool

	Native  NativeFunc
	Binding *Object
}

// NewObject allocates a plain object with the given prototype (which may be
// nil). The caller is responsible for registering it with the GC registry
// before any further allocation, per spec.md §4.H.
func NewObject(prototype *Object) *Object {
	return &Object{Class: ClassPlain, Prototype: prototype}
}

// NewFunctionObject allocates a Function-classed object wrapping fn, with
// the given prototype and captured binding.
func NewFunctionObject(prototype *Object, fn NativeFunc, binding *Object) *Object {
	return &Object{Class: ClassFunction, Prototype: prototype, Native: fn, Binding: binding}
}

// findOwnWithHash does the hash-prefiltered linear scan spec.md §4.B
// describes: compare the precomputed hash before falling back to a
// byte-wise string comparison.
func findOwnWithHash(o *Object, key jstring.String, hash uint32) *Property {
	for i := range o.Properties {
		p := &o.Properties[i]
		if p.Hash == hash && jstring.Equal(p.Key, key) {
			return p
		}
	}
	return nil
}

// FindOwn looks up key among o's own properties only.
func (o *Object) FindOwn(key jstring.String) *Property {
	return findOwnWithHash(o, key, jstring.Hash(key))
}

// HasOwn reports whether key is present as an own property.
func (o *Object) HasOwn(key jstring.String) bool {
	return o.FindOwn(key) != nil
}

// Find walks o's prototype chain (own properties first) and returns the
// first matching property, or nil if key is not found anywhere in the
// chain.
func (o *Object) Find(key jstring.String) *Property {
	hash := jstring.Hash(key)
	for cur := o; cur != nil; cur = cur.Prototype {
		if p := findOwnWithHash(cur, key, hash); p != nil {
			return p
		}
	}
	return nil
}

// GetOwn returns the value of an own property, or Undefined if absent.
func (o *Object) GetOwn(key jstring.String) Value {
	if p := o.FindOwn(key); p != nil {
		return p.Value
	}
	return NewUndefined()
}

// Get walks the prototype chain and returns the resolved value, or
// Undefined if key is not found anywhere in the chain.
func (o *Object) Get(key jstring.String) Value {
	if p := o.Find(key); p != nil {
		return p.Value
	}
	return NewUndefined()
}

// Add appends a new property without checking whether key already exists.
// It is faster than Set and is used only where the caller already knows the
// key is absent (spec.md §4.B) — binding.Declare; the bootstrap uses Set.
func (o *Object) Add(key jstring.String, value Value) {
	o.Properties = append(o.Properties, Property{Key: key, Hash: jstring.Hash(key), Value: value})
}

// Set replaces an existing own property in place, or appends a new one.
// When o is an Array and key is a non-negative integer index at or beyond
// the current length, the length property is raised to match — arrays
// never auto-shrink (spec.md §4.B).
func (o *Object) Set(key jstring.String, value Value) {
	hash := jstring.Hash(key)
	if p := findOwnWithHash(o, key, hash); p != nil {
		p.Value = value
	} else {
		o.Properties = append(o.Properties, Property{Key: key, Hash: hash, Value: value})
	}

	if o.Class == ClassArray {
		o.maybeRaiseLength(key, value)
	}
}

var lengthKey = jstring.FromGoString("length")

func (o *Object) maybeRaiseLength(key jstring.String, value Value) {
	if jstring.Equal(key, lengthKey) {
		return
	}
	index, ok := numericIndex(key)
	if !ok {
		return
	}
	current := o.GetOwn(lengthKey)
	currentLen := int32(0)
	if current.Tag() == TagNumber {
		currentLen = current.Number()
	}
	if index+1 > currentLen {
		o.Set(lengthKey, NewNumber(index+1))
	}
}

// numericIndex reports whether key looks like a non-negative decimal array
// index, and if so its integer value. This mirrors the original runtime's
// "js_to_string(numeric key)" comparisons without requiring a parser: the
// object store only ever needs to recognise indices that dispatch already
// formatted via ToString(NewNumber(i)).
func numericIndex(key jstring.String) (int32, bool) {
	b := key.Bytes()
	if len(b) == 0 {
		return 0, false
	}
	var n int32
	for _, c := range b {
		if c < '0' || c > '9' {
			return 0, false
		}
		n = n*10 + int32(c-'0')
	}
	return n, true
}
