package env

import (
	"encoding/json"
	"fmt"

	"github.com/abdul-hamid-achik/ycurl/packages/core/value"
)

// ExpandString substitutes every placeholder in s.
func ExpandString(s string, vars *Table) (string, error) {
	return substitute(s, vars)
}

// ExpandValue substitutes placeholders in every string leaf of v and returns a
// new tree of the same shape. Object keys and non-string leaves are copied
// unchanged. The first undefined name aborts the whole expansion.
func ExpandValue(v value.Value, vars *Table) (value.Value, error) {
	return value.Transform(v, "", func(leaf value.Value, _ string) (value.Value, error) {
		s, ok := leaf.Str()
		if !ok || !HasPlaceholders(s) {
			return leaf, nil
		}
		expanded, err := substitute(s, vars)
		if err != nil {
			return value.Value{}, err
		}
		return value.NewString(expanded), nil
	})
}

// Expand runs ExpandValue over any record that round-trips through JSON.
// The record is converted to a value tree, expanded, and decoded into a fresh
// T, so the input is never modified and no partial result is returned.
func Expand[T any](record T, vars *Table) (T, error) {
	var zero T

	data, err := json.Marshal(record)
	if err != nil {
		return zero, fmt.Errorf("encoding %T for expansion: %w", record, err)
	}

	tree, err := value.Parse(data)
	if err != nil {
		return zero, fmt.Errorf("encoding %T for expansion: %w", record, err)
	}

	expanded, err := ExpandValue(tree, vars)
	if err != nil {
		return zero, err
	}

	out, err := expanded.MarshalJSON()
	if err != nil {
		return zero, fmt.Errorf("decoding expanded %T: %w", record, err)
	}

	var result T
	if err := json.Unmarshal(out, &result); err != nil {
		return zero, fmt.Errorf("decoding expanded %T: %w", record, err)
	}
	return result, nil
}
