package env

import (
	"fmt"
	"regexp"
)

// placeholderPattern matches ${name}. The name is any run of characters other
// than '}'; an unterminated "${name" is not a match and is left alone.
var placeholderPattern = regexp.MustCompile(`\$\{([^}]+)\}`)

// UndefinedVariableError reports a placeholder whose name is not visible in
// the scope it was evaluated in.
type UndefinedVariableError struct {
	Name string
}

func (e *UndefinedVariableError) Error() string {
	return fmt.Sprintf("variable `%s` is not defined", e.Name)
}

// Placeholders returns the distinct placeholder names in s in order of first
// occurrence.
func Placeholders(s string) []string {
	matches := placeholderPattern.FindAllStringSubmatch(s, -1)
	if len(matches) == 0 {
		return nil
	}
	seen := make(map[string]bool, len(matches))
	var names []string
	for _, m := range matches {
		if seen[m[1]] {
			continue
		}
		seen[m[1]] = true
		names = append(names, m[1])
	}
	return names
}

// HasPlaceholders reports whether s contains at least one ${name} token.
func HasPlaceholders(s string) bool {
	return placeholderPattern.MatchString(s)
}

// substitute replaces every placeholder in s using vars. Each distinct name is
// looked up once, in first-occurrence order, and the first missing name fails
// the whole string. Replacement happens in a single pass so text coming from
// a substituted value is never scanned again.
func substitute(s string, vars *Table) (string, error) {
	names := Placeholders(s)
	if len(names) == 0 {
		return s, nil
	}

	resolved := make(map[string]string, len(names))
	for _, name := range names {
		v, ok := vars.Get(name)
		if !ok {
			return "", &UndefinedVariableError{Name: name}
		}
		resolved[name] = v
	}

	return placeholderPattern.ReplaceAllStringFunc(s, func(match string) string {
		return resolved[match[2:len(match)-1]]
	}), nil
}
