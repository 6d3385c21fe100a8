package document

import (
	"fmt"
	"strconv"

	"github.com/buger/jsonparser"
	"gopkg.in/yaml.v3"

	"github.com/grovetools/jsontree/errors"
)

// maxAliasDepth bounds YAML alias expansion so an anchor chain cannot recurse
// unboundedly. JSON input cannot cycle, so no equivalent guard exists there.
const maxAliasDepth = 1000

// DecodeJSON decodes raw JSON text into a Value. It walks the text with
// jsonparser rather than encoding/json so object members keep their document
// order instead of being shuffled through a Go map.
func DecodeJSON(data []byte) (*Value, error) {
	raw, dataType, _, err := jsonparser.Get(data)
	if err != nil {
		return nil, errors.DecodeFailed("json", err)
	}
	v, err := fromJSONValue(raw, dataType)
	if err != nil {
		return nil, errors.DecodeFailed("json", err)
	}
	return v, nil
}

func fromJSONValue(raw []byte, dataType jsonparser.ValueType) (*Value, error) {
	switch dataType {
	case jsonparser.Object:
		obj := Object()
		err := jsonparser.ObjectEach(raw, func(key, value []byte, vt jsonparser.ValueType, _ int) error {
			k, err := jsonparser.ParseString(key)
			if err != nil {
				return err
			}
			child, err := fromJSONValue(value, vt)
			if err != nil {
				return err
			}
			obj.Set(k, child)
			return nil
		})
		if err != nil {
			return nil, err
		}
		return obj, nil

	case jsonparser.Array:
		arr := Array()
		var elemErr error
		_, err := jsonparser.ArrayEach(raw, func(value []byte, vt jsonparser.ValueType, _ int, cbErr error) {
			if elemErr != nil {
				return
			}
			if cbErr != nil {
				elemErr = cbErr
				return
			}
			child, err := fromJSONValue(value, vt)
			if err != nil {
				elemErr = err
				return
			}
			arr.Append(child)
		})
		if err != nil {
			return nil, err
		}
		if elemErr != nil {
			return nil, elemErr
		}
		return arr, nil

	case jsonparser.String:
		s, err := jsonparser.ParseString(raw)
		if err != nil {
			return nil, err
		}
		return String(s), nil

	case jsonparser.Number:
		n, err := jsonparser.ParseFloat(raw)
		if err != nil {
			return nil, err
		}
		return Number(n), nil

	case jsonparser.Boolean:
		b, err := jsonparser.ParseBoolean(raw)
		if err != nil {
			return nil, err
		}
		return Bool(b), nil

	case jsonparser.Null:
		return Null(), nil

	default:
		return nil, errors.UnsupportedValue(fmt.Sprintf("JSON value type %v", dataType))
	}
}

// DecodeYAML decodes YAML text into a Value. Mapping nodes preserve key order
// (yaml.Node keeps document order, unlike unmarshalling into a map), and
// aliases are expanded up to maxAliasDepth.
func DecodeYAML(data []byte) (*Value, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, errors.DecodeFailed("yaml", err)
	}
	if root.Kind == 0 || len(root.Content) == 0 {
		return Null(), nil
	}
	v, err := fromYAMLNode(root.Content[0], 0)
	if err != nil {
		return nil, errors.DecodeFailed("yaml", err)
	}
	return v, nil
}

func fromYAMLNode(node *yaml.Node, depth int) (*Value, error) {
	if depth > maxAliasDepth {
		return nil, fmt.Errorf("alias expansion exceeds %d levels", maxAliasDepth)
	}

	switch node.Kind {
	case yaml.MappingNode:
		obj := Object()
		for i := 0; i+1 < len(node.Content); i += 2 {
			keyNode, valNode := node.Content[i], node.Content[i+1]
			if keyNode.Kind != yaml.ScalarNode {
				return nil, errors.UnsupportedValue(fmt.Sprintf("non-scalar mapping key at line %d", keyNode.Line))
			}
			child, err := fromYAMLNode(valNode, depth+1)
			if err != nil {
				return nil, err
			}
			obj.Set(keyNode.Value, child)
		}
		return obj, nil

	case yaml.SequenceNode:
		arr := Array()
		for _, elem := range node.Content {
			child, err := fromYAMLNode(elem, depth+1)
			if err != nil {
				return nil, err
			}
			arr.Append(child)
		}
		return arr, nil

	case yaml.ScalarNode:
		return fromYAMLScalar(node)

	case yaml.AliasNode:
		return fromYAMLNode(node.Alias, depth+1)

	default:
		return nil, errors.UnsupportedValue(fmt.Sprintf("YAML node kind %v at line %d", node.Kind, node.Line))
	}
}

func fromYAMLScalar(node *yaml.Node) (*Value, error) {
	switch node.Tag {
	case "!!null":
		return Null(), nil
	case "!!bool":
		b, err := strconv.ParseBool(node.Value)
		if err != nil {
			return nil, fmt.Errorf("invalid boolean %q at line %d", node.Value, node.Line)
		}
		return Bool(b), nil
	case "!!int", "!!float":
		n, err := strconv.ParseFloat(node.Value, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid number %q at line %d", node.Value, node.Line)
		}
		return Number(n), nil
	default:
		// Strings, timestamps, and anything else tagged scalar all surface
		// as strings; the explorer has no richer scalar kinds.
		return String(node.Value), nil
	}
}
