package lang

import (
	"fmt"
	"math"
	"os"
	"slices"

	"github.com/goccy/go-yaml"
)

// Variables is the environment a statement is evaluated against. It is
// owned by the caller and read-only from the pipeline's perspective;
// concurrent mutation during an in-flight evaluation is the caller's
// responsibility to synchronize.
type Variables map[string]Value

// Names returns the sorted identifiers defined in the environment.
func (v Variables) Names() []string {
	names := make([]string, 0, len(v))

	for name := range v {
		names = append(names, name)
	}

	slices.Sort(names)

	return names
}

// VariablesFromMap converts a generic map (such as one decoded from
// YAML) into an environment. Supported value types are booleans,
// integers, and strings; integral floats are accepted since YAML
// decoders may produce them for whole numbers. Any other type fails
// with an [*Error] naming the variable.
func VariablesFromMap(m map[string]any) (Variables, error) {
	vars := make(Variables, len(m))

	for name, raw := range m {
		val, err := valueOf(raw)
		if err != nil {
			return nil, NewError(fmt.Sprintf(
				"Variable '%s' has unsupported type %T", name, raw,
			))
		}

		vars[name] = val
	}

	return vars, nil
}

// ParseVariables decodes a YAML document mapping identifiers to scalar
// values into an environment.
func ParseVariables(data []byte) (Variables, error) {
	m := map[string]any{}

	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, NewError("invalid variable document: " + err.Error())
	}

	return VariablesFromMap(m)
}

// LoadVariables reads and decodes the YAML variable file at path.
func LoadVariables(path string) (Variables, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, NewError("read variable file: " + err.Error())
	}

	return ParseVariables(data)
}

// valueOf converts a supported Go scalar into a Value.
func valueOf(raw any) (Value, error) {
	switch v := raw.(type) {
	case bool:
		return BoolValue(v), nil
	case int:
		return IntValue(v), nil
	case int64:
		return IntValue(int(v)), nil
	case uint64:
		if v > math.MaxInt {
			return Value{}, NewError("integer overflow")
		}

		return IntValue(int(v)), nil
	case float64:
		if v != math.Trunc(v) {
			return Value{}, NewError("non-integral number")
		}

		return IntValue(int(v)), nil
	case string:
		return TextValue(v), nil
	default:
		return Value{}, NewError("unsupported type")
	}
}
