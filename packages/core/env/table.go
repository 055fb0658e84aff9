package env

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/tidwall/gjson"
)

// Table is an ordered mapping from variable name to string value.
//
// Declaration order matters: the compiler only lets a definition see the
// entries that precede it. Setting an existing name replaces the value and
// keeps the name at its original position.
type Table struct {
	keys   []string
	values map[string]string
}

func NewTable() *Table {
	return &Table{values: make(map[string]string)}
}

// TableOf builds a table from alternating name/value arguments.
func TableOf(pairs ...string) *Table {
	if len(pairs)%2 != 0 {
		panic("env.TableOf: odd number of arguments")
	}
	t := NewTable()
	for i := 0; i < len(pairs); i += 2 {
		t.Set(pairs[i], pairs[i+1])
	}
	return t
}

func (t *Table) Set(name, value string) {
	if t.values == nil {
		t.values = make(map[string]string)
	}
	if _, ok := t.values[name]; !ok {
		t.keys = append(t.keys, name)
	}
	t.values[name] = value
}

func (t *Table) Get(name string) (string, bool) {
	if t == nil {
		return "", false
	}
	v, ok := t.values[name]
	return v, ok
}

func (t *Table) Has(name string) bool {
	_, ok := t.Get(name)
	return ok
}

func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.keys)
}

// Keys returns the variable names in declaration order.
func (t *Table) Keys() []string {
	if t == nil {
		return nil
	}
	keys := make([]string, len(t.keys))
	copy(keys, t.keys)
	return keys
}

// Range calls fn for each entry in order until fn returns false.
func (t *Table) Range(fn func(name, value string) bool) {
	if t == nil {
		return
	}
	for _, k := range t.keys {
		if !fn(k, t.values[k]) {
			return
		}
	}
}

// Clone returns an independent copy. Cloning a nil table yields an empty one.
func (t *Table) Clone() *Table {
	out := NewTable()
	t.Range(func(name, value string) bool {
		out.Set(name, value)
		return true
	})
	return out
}

// Map returns the entries as a plain map.
func (t *Table) Map() map[string]string {
	out := make(map[string]string, t.Len())
	t.Range(func(name, value string) bool {
		out[name] = value
		return true
	})
	return out
}

func (t *Table) MarshalJSON() ([]byte, error) {
	if t == nil {
		return []byte("null"), nil
	}
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range t.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(t.values[k])
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes an object of string values in document order.
func (t *Table) UnmarshalJSON(data []byte) error {
	if !gjson.ValidBytes(data) {
		return fmt.Errorf("variables: invalid JSON")
	}
	r := gjson.ParseBytes(data)
	if !r.IsObject() {
		return fmt.Errorf("variables: expected object, got %s", r.Type)
	}

	out := NewTable()
	var err error
	r.ForEach(func(key, val gjson.Result) bool {
		if val.Type != gjson.String {
			err = fmt.Errorf("variable %q must be a string, got %s", key.Str, val.Type)
			return false
		}
		out.Set(key.Str, val.Str)
		return true
	})
	if err != nil {
		return err
	}
	*t = *out
	return nil
}
