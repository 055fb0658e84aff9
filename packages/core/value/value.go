package value

import (
	"fmt"
	"strconv"
)

// Kind identifies the dynamic type held by a Value.
type Kind int

const (
	Null Kind = iota
	Bool
	Number
	String
	Array
	Object
)

func (k Kind) String() string {
	switch k {
	case Null:
		return "null"
	case Bool:
		return "bool"
	case Number:
		return "number"
	case String:
		return "string"
	case Array:
		return "array"
	case Object:
		return "object"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Value is a JSON-like tagged variant. The zero Value is null.
//
// Numbers keep their literal text so integers survive a round trip exactly.
type Value struct {
	kind Kind
	b    bool
	s    string
	arr  []Value
	obj  *Map
}

func NewNull() Value {
	return Value{kind: Null}
}

func NewBool(b bool) Value {
	return Value{kind: Bool, b: b}
}

// NewNumber wraps a JSON number literal. The caller is responsible for the
// literal being valid JSON number syntax.
func NewNumber(literal string) Value {
	return Value{kind: Number, s: literal}
}

func NewInt(i int64) Value {
	return Value{kind: Number, s: strconv.FormatInt(i, 10)}
}

func NewString(s string) Value {
	return Value{kind: String, s: s}
}

func NewArray(items ...Value) Value {
	if items == nil {
		items = []Value{}
	}
	return Value{kind: Array, arr: items}
}

func NewObject(m *Map) Value {
	if m == nil {
		m = NewMap()
	}
	return Value{kind: Object, obj: m}
}

func (v Value) Kind() Kind {
	return v.kind
}

func (v Value) IsNull() bool {
	return v.kind == Null
}

// Str returns the string content of a String value.
func (v Value) Str() (string, bool) {
	if v.kind != String {
		return "", false
	}
	return v.s, true
}

func (v Value) Boolean() (bool, bool) {
	if v.kind != Bool {
		return false, false
	}
	return v.b, true
}

// NumberLiteral returns the literal text of a Number value.
func (v Value) NumberLiteral() (string, bool) {
	if v.kind != Number {
		return "", false
	}
	return v.s, true
}

// Items returns the elements of an Array value. The slice must not be modified.
func (v Value) Items() []Value {
	if v.kind != Array {
		return nil
	}
	return v.arr
}

// Map returns the entries of an Object value.
func (v Value) Map() *Map {
	if v.kind != Object {
		return nil
	}
	return v.obj
}

// Text renders scalars as plain text (strings unquoted) and containers as
// compact JSON. It is used wherever a value has to become a query string or
// a log line.
func (v Value) Text() string {
	switch v.kind {
	case Null:
		return ""
	case Bool:
		return strconv.FormatBool(v.b)
	case Number, String:
		return v.s
	default:
		data, err := v.MarshalJSON()
		if err != nil {
			return ""
		}
		return string(data)
	}
}

func (v Value) String() string {
	data, err := v.MarshalJSON()
	if err != nil {
		return fmt.Sprintf("<%s>", v.kind)
	}
	return string(data)
}

// Clone returns a deep copy.
func (v Value) Clone() Value {
	switch v.kind {
	case Array:
		items := make([]Value, len(v.arr))
		for i, item := range v.arr {
			items[i] = item.Clone()
		}
		return NewArray(items...)
	case Object:
		return NewObject(v.obj.Clone())
	default:
		return v
	}
}

// Equal reports structural equality. Object key order is ignored, array order
// is not, numbers compare by literal text.
func Equal(a, b Value) bool {
	if a.kind != b.kind {
		return false
	}
	switch a.kind {
	case Null:
		return true
	case Bool:
		return a.b == b.b
	case Number, String:
		return a.s == b.s
	case Array:
		if len(a.arr) != len(b.arr) {
			return false
		}
		for i := range a.arr {
			if !Equal(a.arr[i], b.arr[i]) {
				return false
			}
		}
		return true
	case Object:
		if a.obj.Len() != b.obj.Len() {
			return false
		}
		for _, k := range a.obj.Keys() {
			av, _ := a.obj.Get(k)
			bv, ok := b.obj.Get(k)
			if !ok || !Equal(av, bv) {
				return false
			}
		}
		return true
	}
	return false
}

// Transform rebuilds v bottom-up, calling fn on every leaf (anything that is
// not an array or object). path is the dotted location of the leaf relative to
// root, e.g. "body.items[2].id". The first error aborts the walk.
func Transform(v Value, root string, fn func(leaf Value, path string) (Value, error)) (Value, error) {
	switch v.kind {
	case Array:
		items := make([]Value, len(v.arr))
		for i, item := range v.arr {
			next, err := Transform(item, fmt.Sprintf("%s[%d]", root, i), fn)
			if err != nil {
				return Value{}, err
			}
			items[i] = next
		}
		return NewArray(items...), nil
	case Object:
		out := NewMap()
		for _, k := range v.obj.Keys() {
			item, _ := v.obj.Get(k)
			next, err := Transform(item, joinPath(root, k), fn)
			if err != nil {
				return Value{}, err
			}
			out.Set(k, next)
		}
		return NewObject(out), nil
	default:
		return fn(v, root)
	}
}

func joinPath(root, key string) string {
	if root == "" {
		return key
	}
	return root + "." + key
}
