// Package inspect dumps the live object graph to JSON and queries it,
// a supplemented diagnostic surface with no counterpart in
// original_source/src/js.c (spec.md's supplemented features): the original
// runtime has no introspection story beyond a debugger attached to raw
// memory, and a JSON dump stands in for that here. Objects are addressed by
// their stable arena index (their position in the GC registry) rather than
// by pointer, since pointers aren't a useful handle across a dump/query
// round trip and the registry already gives every live object one.
package inspect

import (
	"encoding/json"
	"strconv"

	"github.com/cwbudde/jsrt/internal/runtime"
	"github.com/cwbudde/jsrt/internal/runtimeenv"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// objDump is one object's JSON rendering: its class, its prototype's arena
// index (absent for the root object with no prototype), its wrapper
// primitive if it has one, and its own properties.
type objDump struct {
	Class      string                     `json:"class"`
	Prototype  *int                       `json:"prototype,omitempty"`
	Primitive  json.RawMessage            `json:"primitive,omitempty"`
	Properties map[string]json.RawMessage `json:"properties,omitempty"`
}

// DumpJSON renders every object the environment's GC registry currently
// holds into a JSON document of the shape:
//
//	{"global": <index>, "objects": {"<index>": {...}, ...}}
//
// Each property and primitive value is itself rendered via encodeValue;
// object-typed values become {"$ref": <index>} rather than being inlined,
// so cycles in the prototype/property graph round-trip without recursion.
func DumpJSON(e *runtimeenv.Env) (string, error) {
	objects := e.GCObjects()
	index := make(map[*runtime.Object]int, len(objects))
	for i, o := range objects {
		index[o] = i
	}

	doc := "{}"
	var err error
	for i, o := range objects {
		raw, marshalErr := marshalObject(o, index)
		if marshalErr != nil {
			return "", marshalErr
		}
		doc, err = sjson.SetRawBytes([]byte(doc), "objects."+strconv.Itoa(i), raw)
		if err != nil {
			return "", err
		}
	}
	if global := e.Global().Object(); global != nil {
		if gi, ok := index[global]; ok {
			doc, err = sjson.SetBytes([]byte(doc), "global", gi)
			if err != nil {
				return "", err
			}
		}
	}
	return string([]byte(doc)), nil
}

func marshalObject(o *runtime.Object, index map[*runtime.Object]int) ([]byte, error) {
	d := objDump{Class: classString(o.Class)}

	if o.Prototype != nil {
		if pi, ok := index[o.Prototype]; ok {
			d.Prototype = &pi
		}
	}
	if o.Primitive != nil {
		raw, err := encodeValue(*o.Primitive, index)
		if err != nil {
			return nil, err
		}
		d.Primitive = raw
	}
	if len(o.Properties) > 0 {
		d.Properties = make(map[string]json.RawMessage, len(o.Properties))
		for _, p := range o.Properties {
			raw, err := encodeValue(p.Value, index)
			if err != nil {
				return nil, err
			}
			d.Properties[p.Key.Go()] = raw
		}
	}
	return json.Marshal(d)
}

func encodeValue(v runtime.Value, index map[*runtime.Object]int) (json.RawMessage, error) {
	switch v.Tag() {
	case runtime.TagUndefined:
		return json.RawMessage("null"), nil
	case runtime.TagNumber:
		return json.Marshal(v.Number())
	case runtime.TagString:
		return json.Marshal(v.String().Go())
	case runtime.TagBoolean:
		return json.Marshal(v.Bool())
	case runtime.TagObject:
		if v.IsNull() {
			return json.RawMessage("null"), nil
		}
		if oi, ok := index[v.Object()]; ok {
			return json.Marshal(map[string]int{"$ref": oi})
		}
		return json.RawMessage("null"), nil
	default:
		return json.RawMessage("null"), nil
	}
}

func classString(c runtime.ClassTag) string {
	switch c {
	case runtime.ClassFunction:
		return "Function"
	case runtime.ClassArray:
		return "Array"
	default:
		return "Object"
	}
}

// Query evaluates a gjson path against a dump produced by DumpJSON and
// returns the matched value's raw JSON text, e.g. Query(dump,
// "objects.3.properties.length") to read one object's length property.
func Query(dump, path string) string {
	return gjson.Get(dump, path).Raw
}
