package runtime

import "github.com/cwbudde/jsrt/internal/jstring"

// Tag discriminates the variant held by a Value.
type Tag uint8

const (
	TagUndefined Tag = iota
	TagNumber
	TagString
	TagBoolean
	TagObject
)

func (t Tag) String() string {
	switch t {
	case TagUndefined:
		return "undefined"
	case TagNumber:
		return "number"
	case TagString:
		return "string"
	case TagBoolean:
		return "boolean"
	case TagObject:
		return "object"
	default:
		return "unknown"
	}
}

// Value is the tagged union every compiled-code operation passes around.
// It is cheap to copy, as spec.md requires: the payload is either an int32,
// a jstring.String view, a bool, or a pointer.
type Value struct {
	tag    Tag
	number int32
	str    jstring.String
	flag   bool
	object *Object
}

// Tag returns the discriminant of v.
func (v Value) Tag() Tag { return v.tag }

// Number returns the int32 payload. Only meaningful when Tag() == TagNumber.
func (v Value) Number() int32 { return v.number }

// String returns the string payload. Only meaningful when Tag() == TagString.
func (v Value) String() jstring.String { return v.str }

// Bool returns the boolean payload. Only meaningful when Tag() == TagBoolean.
func (v Value) Bool() bool { return v.flag }

// Object returns the object payload, or nil for the JavaScript null value
// (which is Object-tagged with a nil reference). Only meaningful when
// Tag() == TagObject.
func (v Value) Object() *Object { return v.object }

// NewNumber constructs a Number value.
func NewNumber(n int32) Value {
	return Value{tag: TagNumber, number: n}
}

// NewString constructs a String value from a jstring.String view.
func NewString(s jstring.String) Value {
	return Value{tag: TagString, str: s}
}

// NewStringFromGo constructs a String value from a native Go string.
func NewStringFromGo(s string) Value {
	return Value{tag: TagString, str: jstring.FromGoString(s)}
}

// NewBoolean constructs a Boolean value.
func NewBoolean(b bool) Value {
	return Value{tag: TagBoolean, flag: b}
}

// NewUndefined constructs the Undefined value.
func NewUndefined() Value {
	return Value{tag: TagUndefined}
}

// NewNull constructs the JavaScript null value: Object-tagged with a nil
// reference. Null is not the same value as Undefined.
func NewNull() Value {
	return Value{tag: TagObject, object: nil}
}

// NewObjectValue constructs an Object value wrapping o. Passing a nil o produces
// null, matching NewNull.
func NewObjectValue(o *Object) Value {
	return Value{tag: TagObject, object: o}
}

// IsNull reports whether v is the null value.
func (v Value) IsNull() bool {
	return v.tag == TagObject && v.object == nil
}

// IsFunction reports whether v is an Object-tagged value whose class is
// Function. Function is a class, not a tag — see spec.md §3.
func IsFunction(v Value) bool {
	return v.tag == TagObject && v.object != nil && v.object.Class == ClassFunction
}

// IsObject reports whether v carries the Object tag, including null.
func (v Value) IsObject() bool {
	return v.tag == TagObject
}
