package env

import (
	"fmt"
	"sort"

	"github.com/joho/godotenv"
)

// LoadDotEnv reads a .env file into a Table. Entries are ordered by name since
// the file format carries no ordering guarantees once parsed.
// Supports: KEY=value, KEY="quoted value", KEY='single quoted', # comments.
// Nothing is exported to the process environment.
func LoadDotEnv(path string) (*Table, error) {
	vars, err := godotenv.Read(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read env file: %w", err)
	}

	names := make([]string, 0, len(vars))
	for k := range vars {
		names = append(names, k)
	}
	sort.Strings(names)

	t := NewTable()
	for _, k := range names {
		t.Set(k, vars[k])
	}
	return t, nil
}
