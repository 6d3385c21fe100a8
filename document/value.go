// Package document models a decoded JSON-like value as a closed set of
// variant kinds. The explorer walks these values to build its node set; it
// never touches raw JSON or YAML text itself.
package document

import (
	"fmt"
	"strconv"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Kind identifies the variant held by a Value.
type Kind int

const (
	KindNull Kind = iota
	KindObject
	KindArray
	KindString
	KindNumber
	KindBool
)

// String returns the lowercase kind name ("object", "array", ...).
func (k Kind) String() string {
	switch k {
	case KindObject:
		return "object"
	case KindArray:
		return "array"
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindBool:
		return "boolean"
	case KindNull:
		return "null"
	default:
		return "unknown"
	}
}

// Value is one decoded JSON-like value. Object members keep their insertion
// order, which the explorer relies on for deterministic node ordering.
type Value struct {
	kind    Kind
	str     string
	num     float64
	boolean bool
	members *orderedmap.OrderedMap[string, *Value]
	elems   []*Value
}

// Object creates an empty object value.
func Object() *Value {
	return &Value{
		kind:    KindObject,
		members: orderedmap.New[string, *Value](),
	}
}

// Array creates an array value holding the given elements in order.
func Array(elems ...*Value) *Value {
	return &Value{kind: KindArray, elems: elems}
}

// String creates a string value.
func String(s string) *Value {
	return &Value{kind: KindString, str: s}
}

// Number creates a number value.
func Number(n float64) *Value {
	return &Value{kind: KindNumber, num: n}
}

// Bool creates a boolean value.
func Bool(b bool) *Value {
	return &Value{kind: KindBool, boolean: b}
}

// Null creates a null value.
func Null() *Value {
	return &Value{kind: KindNull}
}

// Kind returns the variant kind of the value.
func (v *Value) Kind() Kind { return v.kind }

// IsContainer reports whether the value is an object or an array.
func (v *Value) IsContainer() bool {
	return v.kind == KindObject || v.kind == KindArray
}

// Len returns the direct member count for objects, the element count for
// arrays, and 0 for scalars.
func (v *Value) Len() int {
	switch v.kind {
	case KindObject:
		return v.members.Len()
	case KindArray:
		return len(v.elems)
	default:
		return 0
	}
}

// Set adds or replaces an object member, keeping insertion order for new
// keys. It panics when called on a non-object; programmatic document
// construction is a build-time concern and a kind mismatch is a caller bug.
func (v *Value) Set(key string, child *Value) *Value {
	if v.kind != KindObject {
		panic(fmt.Sprintf("document: Set on %s value", v.kind))
	}
	v.members.Set(key, child)
	return v
}

// Append adds elements to an array value. Panics on a non-array, same as Set.
func (v *Value) Append(elems ...*Value) *Value {
	if v.kind != KindArray {
		panic(fmt.Sprintf("document: Append on %s value", v.kind))
	}
	v.elems = append(v.elems, elems...)
	return v
}

// Get looks up a direct object member. The second result reports presence.
func (v *Value) Get(key string) (*Value, bool) {
	if v.kind != KindObject {
		return nil, false
	}
	return v.members.Get(key)
}

// Index returns the array element at i, or nil when out of range.
func (v *Value) Index(i int) *Value {
	if v.kind != KindArray || i < 0 || i >= len(v.elems) {
		return nil
	}
	return v.elems[i]
}

// Each visits object members in insertion order or array elements in index
// order. For arrays the key is the decimal element index. Scalars are not
// visited.
func (v *Value) Each(fn func(key string, child *Value)) {
	switch v.kind {
	case KindObject:
		for pair := v.members.Oldest(); pair != nil; pair = pair.Next() {
			fn(pair.Key, pair.Value)
		}
	case KindArray:
		for i, elem := range v.elems {
			fn(strconv.Itoa(i), elem)
		}
	}
}

// StringValue returns the string payload of a string value, or "" otherwise.
func (v *Value) StringValue() string { return v.str }

// NumberValue returns the numeric payload of a number value, or 0 otherwise.
func (v *Value) NumberValue() float64 { return v.num }

// BoolValue returns the boolean payload of a bool value, or false otherwise.
func (v *Value) BoolValue() bool { return v.boolean }

// Display returns the user-facing scalar representation used for rendering
// and value search: strings verbatim, whole-number floats without a decimal
// point, "null" for null. Containers render as a "{...}"/"[...]" summary with
// their direct child count.
func (v *Value) Display() string {
	switch v.kind {
	case KindString:
		return v.str
	case KindNumber:
		if v.num == float64(int64(v.num)) {
			return strconv.FormatInt(int64(v.num), 10)
		}
		return strconv.FormatFloat(v.num, 'g', -1, 64)
	case KindBool:
		return strconv.FormatBool(v.boolean)
	case KindNull:
		return "null"
	case KindObject:
		return fmt.Sprintf("{...} (%d fields)", v.Len())
	case KindArray:
		return fmt.Sprintf("[...] (%d items)", v.Len())
	default:
		return ""
	}
}

// Interface converts the value back to plain Go types: map[string]interface{}
// for objects (insertion order is lost), []interface{} for arrays, float64,
// string, bool, or nil for scalars.
func (v *Value) Interface() interface{} {
	switch v.kind {
	case KindObject:
		out := make(map[string]interface{}, v.members.Len())
		for pair := v.members.Oldest(); pair != nil; pair = pair.Next() {
			out[pair.Key] = pair.Value.Interface()
		}
		return out
	case KindArray:
		out := make([]interface{}, len(v.elems))
		for i, elem := range v.elems {
			out[i] = elem.Interface()
		}
		return out
	case KindString:
		return v.str
	case KindNumber:
		return v.num
	case KindBool:
		return v.boolean
	default:
		return nil
	}
}
