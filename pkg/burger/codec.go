package burger

import (
	"bytes"
	"errors"
	"fmt"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// Format is a recipe document encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// document fixes the field order of encoded recipes.
type document struct {
	Buns     int    `json:"buns" yaml:"buns"`
	Cheese   int    `json:"cheese" yaml:"cheese"`
	Tomatoes int    `json:"tomatoes" yaml:"tomatoes"`
	Cutlets  int    `json:"cutlets" yaml:"cutlets"`
	Eggs     int    `json:"eggs" yaml:"eggs"`
	Sauce    string `json:"sauce" yaml:"sauce"`
}

func (r Recipe) document() document {
	return document{
		Buns:     r.Buns(),
		Cheese:   r.Cheese(),
		Tomatoes: r.Tomatoes(),
		Cutlets:  r.Cutlets(),
		Eggs:     r.Eggs(),
		Sauce:    r.Sauce(),
	}
}

// FormatFromPath picks a format from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, path)
}

// Decode parses and validates a recipe document.
func Decode(data []byte, format Format) (*Recipe, error) {
	values, err := DecodeMap(data, format)
	if err != nil {
		return nil, err
	}
	return FromMap(values)
}

// DecodeMap parses a document into raw field values without validating them.
func DecodeMap(data []byte, format Format) (map[string]any, error) {
	switch format {
	case FormatJSON:
		return decodeJSONMap(data)
	case FormatYAML:
		var node yaml.Node
		if err := yaml.Unmarshal(data, &node); err != nil {
			return nil, errors.Join(ErrMalformedDocument, err)
		}
		return decodeYAMLMap(&node)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
}

// decodeJSONMap keeps numbers as json.Number so fractions are not mistaken for integers.
func decodeJSONMap(data []byte) (map[string]any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var values map[string]any
	if err := dec.Decode(&values); err != nil {
		return nil, errors.Join(ErrMalformedDocument, err)
	}
	return values, nil
}

func (r Recipe) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.document())
}

// UnmarshalJSON validates every field; r is left unchanged on failure.
func (r *Recipe) UnmarshalJSON(data []byte) error {
	values, err := decodeJSONMap(data)
	if err != nil {
		return err
	}
	decoded, err := FromMap(values)
	if err != nil {
		return err
	}
	*r = *decoded
	return nil
}

func (r Recipe) MarshalYAML() (any, error) {
	return r.document(), nil
}

// UnmarshalYAML validates every field; r is left unchanged on failure.
func (r *Recipe) UnmarshalYAML(node *yaml.Node) error {
	values, err := decodeYAMLMap(node)
	if err != nil {
		return err
	}
	decoded, err := FromMap(values)
	if err != nil {
		return err
	}
	*r = *decoded
	return nil
}

var yamlIntLiteral = regexp.MustCompile(`^[-+]?[0-9]+$`)

// yamlInt is a decimal YAML integer too large for int64. yaml.v3 resolves such
// literals to !!float; keeping the text lets the quantity rule report it as out
// of range rather than as a float.
type yamlInt string

func (n yamlInt) Int64() (int64, error) { return strconv.ParseInt(string(n), 10, 64) }

func (n yamlInt) String() string { return string(n) }

// decodeYAMLMap decodes a mapping node into raw field values.
func decodeYAMLMap(node *yaml.Node) (map[string]any, error) {
	if node.Kind == yaml.DocumentNode {
		if len(node.Content) == 0 {
			return nil, nil
		}
		node = node.Content[0]
	}
	if node.Kind == 0 {
		return nil, nil
	}
	if node.Kind != yaml.MappingNode || hasMergeKey(node) {
		var values map[string]any
		if err := node.Decode(&values); err != nil {
			return nil, errors.Join(ErrMalformedDocument, err)
		}
		return values, nil
	}

	values := make(map[string]any, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		var key string
		if err := node.Content[i].Decode(&key); err != nil {
			return nil, errors.Join(ErrMalformedDocument, err)
		}

		valueNode := node.Content[i+1]
		if valueNode.Kind == yaml.ScalarNode && valueNode.Style&yaml.TaggedStyle == 0 &&
			valueNode.ShortTag() == "!!float" && yamlIntLiteral.MatchString(valueNode.Value) {
			values[key] = yamlInt(valueNode.Value)
			continue
		}

		var value any
		if err := valueNode.Decode(&value); err != nil {
			return nil, errors.Join(ErrMalformedDocument, err)
		}
		values[key] = value
	}
	return values, nil
}

func hasMergeKey(node *yaml.Node) bool {
	for i := 0; i < len(node.Content); i += 2 {
		if node.Content[i].ShortTag() == "!!merge" {
			return true
		}
	}
	return false
}
