package typecast

import (
	"errors"
	"fmt"
	"strings"

	"github.com/abdul-hamid-achik/ycurl/packages/core/value"
	"github.com/tidwall/gjson"
)

const (
	// NumberPrefix marks a string that becomes a JSON number, e.g. "number:${id}".
	NumberPrefix = "number:"
	// BoolPrefix marks a string that becomes a JSON boolean, e.g. "bool:${flag}".
	BoolPrefix = "bool:"
)

var (
	ErrNotNumber = errors.New("not a valid number")
	ErrNotBool   = errors.New("provided string was not `true` or `false`")
)

// Error reports a typed-literal payload that does not parse as its target type.
type Error struct {
	// Text is the payload after the prefix, e.g. "maybe" for "bool:maybe".
	Text string
	// Path locates the leaf, e.g. "body.items[0].flag".
	Path string
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("cannot cast %q at %s: %v", e.Text, e.Path, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Cast returns a copy of v where every string leaf carrying a typed-literal
// prefix is replaced by its native value. Other leaves are copied unchanged.
// root is used as the path prefix in errors.
func Cast(v value.Value, root string) (value.Value, error) {
	return value.Transform(v, root, castLeaf)
}

// CastMap is Cast for an object's entries. A nil map stays nil.
func CastMap(m *value.Map, root string) (*value.Map, error) {
	if m == nil {
		return nil, nil
	}
	out, err := Cast(value.NewObject(m), root)
	if err != nil {
		return nil, err
	}
	return out.Map(), nil
}

func castLeaf(leaf value.Value, path string) (value.Value, error) {
	s, ok := leaf.Str()
	if !ok {
		return leaf, nil
	}

	switch {
	case strings.HasPrefix(s, NumberPrefix):
		payload := strings.TrimPrefix(s, NumberPrefix)
		if !isNumber(payload) {
			return value.Value{}, &Error{Text: payload, Path: path, Err: ErrNotNumber}
		}
		return value.NewNumber(payload), nil
	case strings.HasPrefix(s, BoolPrefix):
		switch payload := strings.TrimPrefix(s, BoolPrefix); payload {
		case "true":
			return value.NewBool(true), nil
		case "false":
			return value.NewBool(false), nil
		default:
			return value.Value{}, &Error{Text: payload, Path: path, Err: ErrNotBool}
		}
	}
	return leaf, nil
}

// isNumber accepts exactly the JSON number grammar: no surrounding
// whitespace, no leading '+', no leading zeros, no NaN or Inf.
func isNumber(s string) bool {
	if s == "" || strings.TrimSpace(s) != s {
		return false
	}
	return gjson.Valid(s) && gjson.Parse(s).Type == gjson.Number
}
