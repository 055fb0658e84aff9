package env

import "fmt"

// Compile resolves raw variable definitions in declaration order.
//
// The result starts as a copy of base (which may be nil). Each definition may
// reference base entries and definitions that appear earlier in raw; forward
// and self references fail with *UndefinedVariableError. A definition whose
// name already exists overwrites it, so a request-local variable shadows a
// global one for the definitions that follow it.
func Compile(raw, base *Table) (*Table, error) {
	out := base.Clone()

	var err error
	raw.Range(func(name, rawValue string) bool {
		var expanded string
		expanded, err = substitute(rawValue, out)
		if err != nil {
			err = fmt.Errorf("compiling variable %q: %w", name, err)
			return false
		}
		out.Set(name, expanded)
		return true
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}
