package runtime

import "github.com/cwbudde/jsrt/internal/jstring"

// GetProperty implements the external property-read half of spec.md §4.B
// and the `get_property` ABI entry of §6: the key is always ToString-
// coerced, except that indexing a String primitive by a non-negative
// numeric key is serviced directly from the string view (a zero-copy
// single-byte slice) rather than going through ToObject and constructing a
// throwaway String wrapper. "length" on a string primitive is likewise
// answered directly. Anything else falls through to ToObject followed by
// the object store's prototype-chain Get.
func GetProperty(env Env, obj, key Value, call CallFunc, invokeConstructor InvokeConstructorFunc) Value {
	keyStr := ToString(env, key, call)

	if obj.Tag() == TagString {
		if index, ok := numericIndex(keyStr.String()); ok {
			if int(index) < obj.String().Len() {
				return NewString(obj.String().CharAt(int(index)))
			}
			return NewUndefined()
		}
		if jstring.Equal(keyStr.String(), lengthStr) {
			return NewNumber(StringLength(obj))
		}
	}

	target := ToObject(env, obj, invokeConstructor)
	return target.Object().Get(keyStr.String())
}

// SetProperty implements the external property-write half of spec.md §4.B
// and the `set_property` ABI entry of §6: the key is ToString-coerced and
// the (possibly freshly wrapped) object's Set is invoked. Writing through a
// Number/String primitive coerces a throwaway wrapper object exactly the
// way ToObject always does, so the write is observably discarded — the
// same behaviour assigning to a primitive produces in sloppy-mode
// ECMAScript.
func SetProperty(env Env, obj, key, value Value, call CallFunc, invokeConstructor InvokeConstructorFunc) {
	keyStr := ToString(env, key, call)
	target := ToObject(env, obj, invokeConstructor)
	target.Object().Set(keyStr.String(), value)
}
