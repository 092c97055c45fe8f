package validator

import (
	"fmt"
	"math"
	"reflect"
	"regexp"
)

// Between validates that a numeric value lies within [min, max].
func Between[T Numeric](field string, value, min, max T) Rule {
	return Rule{
		Check: func() bool {
			return value >= min && value <= max
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("quantity %v should not be less than %v and greater than %v", value, min, max),
			TranslationKey: "validation.between",
			TranslationValues: map[string]any{
				"field": field,
				"value": value,
				"min":   min,
				"max":   max,
			},
			Kind: ErrOutOfRange,
		},
	}
}

// BoundedInt accepts integers within an inclusive range.
// Booleans are rejected even though some decoders treat them as numbers.
type BoundedInt struct {
	Min int
	Max int
}

// NewBoundedInt returns a rule accepting integers in [min, max].
// min <= max is not checked; an inverted range rejects every value.
func NewBoundedInt(min, max int) BoundedInt {
	return BoundedInt{Min: min, Max: max}
}

func (b BoundedInt) Validate(value any) error {
	n, err := Int(value)
	if err != nil {
		return err
	}
	return first(Between("", n, int64(b.Min), int64(b.Max)))
}

// int64er is implemented by decoder number types such as json.Number.
type int64er interface {
	Int64() (int64, error)
}

var integerLiteral = regexp.MustCompile(`^[-+]?[0-9]+$`)

// Int converts any Go integer kind, or a decoder number holding an integral value, to int64.
// Booleans, floats, strings and everything else fail with ErrTypeMismatch; integers
// that do not fit in int64, including integer literals held by decoder numbers, fail
// with ErrOutOfRange.
func Int(value any) (int64, error) {
	switch v := value.(type) {
	case bool:
		return 0, typeMismatch(value)
	case int64er:
		n, err := v.Int64()
		if err == nil {
			return n, nil
		}
		if s, ok := value.(fmt.Stringer); ok && integerLiteral.MatchString(s.String()) {
			return 0, overflow(s.String())
		}
		return 0, typeMismatch(value)
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int(), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		u := rv.Uint()
		if u > math.MaxInt64 {
			return 0, overflow(u)
		}
		return int64(u), nil
	}
	return 0, typeMismatch(value)
}

func overflow(value any) ValidationError {
	return ValidationError{
		Message:           fmt.Sprintf("quantity %v overflows int64", value),
		TranslationKey:    "validation.overflow",
		TranslationValues: map[string]any{"value": value},
		Kind:              ErrOutOfRange,
	}
}

func typeMismatch(value any) ValidationError {
	return ValidationError{
		Message:        fmt.Sprintf("quantity should be integer, got %v of type %T", value, value),
		TranslationKey: "validation.integer",
		TranslationValues: map[string]any{
			"value": value,
			"type":  fmt.Sprintf("%T", value),
		},
		Kind: ErrTypeMismatch,
	}
}
