package validator

import "fmt"

// InList validates that value equals one of allowedValues.
// Values of a different dynamic type never match.
func InList[T comparable](field string, value any, allowedValues []T) Rule {
	return Rule{
		Check: func() bool {
			v, ok := value.(T)
			if !ok {
				return false
			}
			for _, allowed := range allowedValues {
				if v == allowed {
					return true
				}
			}
			return false
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("expected %v to be one of %q", value, allowedValues),
			TranslationKey: "validation.in_list",
			TranslationValues: map[string]any{
				"field":          field,
				"value":          value,
				"allowed_values": allowedValues,
			},
			Kind: ErrNotAllowed,
		},
	}
}

// OneOf accepts only values equal to one of a fixed list of strings.
type OneOf struct {
	options []string
}

// NewOneOf copies options; order and duplicates are kept as given.
func NewOneOf(options []string) OneOf {
	return OneOf{options: append([]string(nil), options...)}
}

// Options returns a copy of the allowed values.
func (o OneOf) Options() []string {
	return append([]string(nil), o.options...)
}

func (o OneOf) Validate(value any) error {
	return first(InList("", value, o.options))
}
