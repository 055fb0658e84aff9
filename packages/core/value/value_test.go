package value

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_PreservesKeyOrder(t *testing.T) {
	input := `{"z": 1, "a": {"y": true, "b": null}, "m": ["x", 2.50, -3]}`

	v, err := Parse([]byte(input))
	require.NoError(t, err)

	require.Equal(t, Object, v.Kind())
	assert.Equal(t, []string{"z", "a", "m"}, v.Map().Keys())

	inner, ok := v.Map().Get("a")
	require.True(t, ok)
	assert.Equal(t, []string{"y", "b"}, inner.Map().Keys())

	out, err := v.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `{"z":1,"a":{"y":true,"b":null},"m":["x",2.50,-3]}`, string(out))
}

func TestParse_Invalid(t *testing.T) {
	_, err := Parse([]byte(`{"a": `))
	assert.True(t, errors.Is(err, ErrInvalidJSON))
}

func TestParse_DuplicateKeysLastWins(t *testing.T) {
	v, err := Parse([]byte(`{"a": 1, "b": 2, "a": 3}`))
	require.NoError(t, err)

	assert.Equal(t, []string{"a", "b"}, v.Map().Keys())
	a, _ := v.Map().Get("a")
	lit, _ := a.NumberLiteral()
	assert.Equal(t, "3", lit)
}

func TestMarshal_DoesNotEscapeHTML(t *testing.T) {
	v := NewString("<a & b>")
	out, err := v.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `"<a & b>"`, string(out))
}

func TestMap_SetKeepsFirstPosition(t *testing.T) {
	m := NewMap()
	m.Set("a", NewInt(1))
	m.Set("b", NewInt(2))
	m.Set("a", NewInt(3))

	assert.Equal(t, []string{"a", "b"}, m.Keys())
	assert.Equal(t, 2, m.Len())

	a, _ := m.Get("a")
	assert.Equal(t, "3", a.Text())
}

func TestMap_JSONRoundTripInStruct(t *testing.T) {
	type record struct {
		Name string `json:"name"`
		Body *Map   `json:"body,omitempty"`
	}

	var r record
	require.NoError(t, json.Unmarshal([]byte(`{"name":"x","body":{"k":"v","a":[1,{"q":false}]}}`), &r))
	require.NotNil(t, r.Body)
	assert.Equal(t, []string{"k", "a"}, r.Body.Keys())

	out, err := json.Marshal(r)
	require.NoError(t, err)
	assert.Equal(t, `{"name":"x","body":{"k":"v","a":[1,{"q":false}]}}`, string(out))
}

func TestMap_UnmarshalRejectsNonObject(t *testing.T) {
	var m Map
	err := json.Unmarshal([]byte(`[1,2]`), &m)
	assert.Error(t, err)
}

func TestEqual(t *testing.T) {
	a, _ := Parse([]byte(`{"x": 1, "y": [true, "s"]}`))
	b, _ := Parse([]byte(`{"y": [true, "s"], "x": 1}`))
	c, _ := Parse([]byte(`{"x": 1, "y": ["s", true]}`))

	assert.True(t, Equal(a, b))
	assert.False(t, Equal(a, c))
	assert.False(t, Equal(NewString("1"), NewInt(1)))
}

func TestTransform_VisitsLeavesWithPaths(t *testing.T) {
	v, err := Parse([]byte(`{"a": {"b": [1, "two"]}, "c": null}`))
	require.NoError(t, err)

	var paths []string
	out, err := Transform(v, "body", func(leaf Value, path string) (Value, error) {
		paths = append(paths, path)
		if s, ok := leaf.Str(); ok {
			return NewString(s + "!"), nil
		}
		return leaf, nil
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"body.a.b[0]", "body.a.b[1]", "body.c"}, paths)
	assert.Equal(t, `{"a":{"b":[1,"two!"]},"c":null}`, out.String())
	// the input is not modified
	assert.Equal(t, `{"a":{"b":[1,"two"]},"c":null}`, v.String())
}

func TestTransform_StopsOnError(t *testing.T) {
	v, _ := Parse([]byte(`["a", "b", "c"]`))
	calls := 0
	_, err := Transform(v, "", func(leaf Value, path string) (Value, error) {
		calls++
		if path == "[1]" {
			return Value{}, errors.New("boom")
		}
		return leaf, nil
	})
	assert.EqualError(t, err, "boom")
	assert.Equal(t, 2, calls)
}

func TestText(t *testing.T) {
	tests := []struct {
		name     string
		value    Value
		expected string
	}{
		{"string", NewString("abc"), "abc"},
		{"number", NewNumber("3.14"), "3.14"},
		{"bool", NewBool(true), "true"},
		{"null", NewNull(), ""},
		{"array", NewArray(NewInt(1), NewString("x")), `[1,"x"]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.value.Text())
		})
	}
}

func TestMarshalIndent(t *testing.T) {
	v, _ := Parse([]byte(`{"b":1,"a":[true]}`))
	out, err := MarshalIndent(v, "    ")
	require.NoError(t, err)
	assert.Equal(t, "{\n    \"b\": 1,\n    \"a\": [\n        true\n    ]\n}", string(out))
}

func TestScalarAccessors(t *testing.T) {
	tests := []struct {
		name    string
		v       Value
		wantB   bool
		isBool  bool
		wantS   string
		isStr   bool
		wantNum string
		isNum   bool
	}{
		{"true", NewBool(true), true, true, "", false, "", false},
		{"false", NewBool(false), false, true, "", false, "", false},
		{"string true", NewString("true"), false, false, "true", true, "", false},
		{"number", NewNumber("1"), false, false, "", false, "1", true},
		{"null", NewNull(), false, false, "", false, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, ok := tt.v.Boolean()
			assert.Equal(t, tt.isBool, ok)
			assert.Equal(t, tt.wantB, b)

			s, ok := tt.v.Str()
			assert.Equal(t, tt.isStr, ok)
			assert.Equal(t, tt.wantS, s)

			n, ok := tt.v.NumberLiteral()
			assert.Equal(t, tt.isNum, ok)
			assert.Equal(t, tt.wantNum, n)
		})
	}
}
