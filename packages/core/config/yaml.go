package config

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/abdul-hamid-achik/ycurl/packages/core/value"
	"gopkg.in/yaml.v3"
)

// yamlToJSON converts a YAML document into JSON text. Mapping order is kept,
// which is what gives YAML variables the same declaration-order semantics as
// JSON ones.
func yamlToJSON(data []byte) ([]byte, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, errors.New("empty YAML document")
	}

	v, err := fromYAML(doc.Content[0])
	if err != nil {
		return nil, err
	}
	return v.MarshalJSON()
}

func fromYAML(n *yaml.Node) (value.Value, error) {
	switch n.Kind {
	case yaml.AliasNode:
		return fromYAML(n.Alias)
	case yaml.SequenceNode:
		items := make([]value.Value, 0, len(n.Content))
		for _, c := range n.Content {
			item, err := fromYAML(c)
			if err != nil {
				return value.Value{}, err
			}
			items = append(items, item)
		}
		return value.NewArray(items...), nil
	case yaml.MappingNode:
		m := value.NewMap()
		for i := 0; i+1 < len(n.Content); i += 2 {
			key := n.Content[i]
			if key.Kind != yaml.ScalarNode {
				return value.Value{}, fmt.Errorf("line %d: mapping keys must be scalars", key.Line)
			}
			item, err := fromYAML(n.Content[i+1])
			if err != nil {
				return value.Value{}, err
			}
			m.Set(key.Value, item)
		}
		return value.NewObject(m), nil
	case yaml.ScalarNode:
		return scalarFromYAML(n)
	default:
		return value.Value{}, fmt.Errorf("line %d: unsupported YAML node", n.Line)
	}
}

func scalarFromYAML(n *yaml.Node) (value.Value, error) {
	switch n.ShortTag() {
	case "!!null":
		return value.NewNull(), nil
	case "!!bool":
		var b bool
		if err := n.Decode(&b); err != nil {
			return value.Value{}, err
		}
		return value.NewBool(b), nil
	case "!!int":
		var i int64
		if err := n.Decode(&i); err != nil {
			return value.Value{}, err
		}
		return value.NewInt(i), nil
	case "!!float":
		var f float64
		if err := n.Decode(&f); err != nil {
			return value.Value{}, err
		}
		if math.IsInf(f, 0) || math.IsNaN(f) {
			return value.Value{}, fmt.Errorf("line %d: %s cannot be represented in JSON", n.Line, n.Value)
		}
		return value.NewNumber(strconv.FormatFloat(f, 'g', -1, 64)), nil
	default:
		return value.NewString(n.Value), nil
	}
}
