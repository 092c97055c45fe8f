package validator

import (
	"errors"
	"fmt"
)

// Slot holds one record's value for a Field. The zero Slot is unset.
// Records embed slots as private fields so the owning Field is the only write path.
type Slot[T any] struct {
	value T
	set   bool
}

// Field binds a Validator to a named record attribute.
// A Field is created once per record type and shared by every instance;
// only the Slot values differ between instances.
type Field[T any] struct {
	name    string
	key     string
	rule    Validator
	convert func(any) (T, bool)
}

// NewField declares a validated field. convert turns a value that passed the
// rule into T; when nil a plain type assertion is used.
func NewField[T any](name string, rule Validator, convert func(any) (T, bool)) *Field[T] {
	if convert == nil {
		convert = func(v any) (T, bool) {
			t, ok := v.(T)
			return t, ok
		}
	}
	return &Field[T]{
		name:    name,
		key:     "_" + name,
		rule:    rule,
		convert: convert,
	}
}

// NewIntField declares an int field bounded by [min, max].
func NewIntField(name string, min, max int) *Field[int] {
	return NewField(name, NewBoundedInt(min, max), func(v any) (int, bool) {
		n, err := Int(v)
		if err != nil {
			return 0, false
		}
		return int(n), true
	})
}

// NewStringField declares a string field restricted to options.
func NewStringField(name string, options ...string) *Field[string] {
	return NewField[string](name, NewOneOf(options), nil)
}

func (f *Field[T]) Name() string { return f.name }

// StorageKey is the internal key the value is kept under, the name prefixed with "_".
func (f *Field[T]) StorageKey() string { return f.key }

func (f *Field[T]) Rule() Validator { return f.rule }

// Get returns the stored value and whether one was ever set.
// A nil slot yields the zero value and false.
func (f *Field[T]) Get(s *Slot[T]) (T, bool) {
	if s == nil {
		var zero T
		return zero, false
	}
	return s.value, s.set
}

// Set validates value and stores it in s. On failure s is left unchanged.
func (f *Field[T]) Set(s *Slot[T], value T) error {
	return f.Assign(s, value)
}

// Assign is Set for values of unknown type, such as decoded documents.
func (f *Field[T]) Assign(s *Slot[T], value any) error {
	if err := f.Validate(value); err != nil {
		return err
	}
	v, ok := f.convert(value)
	if !ok {
		return ValidationError{
			Field:          f.name,
			Message:        fmt.Sprintf("cannot store %T", value),
			TranslationKey: "validation.type",
			TranslationValues: map[string]any{
				"field": f.name,
				"type":  fmt.Sprintf("%T", value),
			},
			Kind: ErrTypeMismatch,
		}
	}
	if s == nil {
		return fmt.Errorf("%w: %s: nil slot", ErrValidationFailed, f.name)
	}
	s.value = v
	s.set = true
	return nil
}

// Validate runs the field's rule without storing anything.
// Every returned failure carries the field name; a rule reporting several
// failures yields ValidationErrors.
func (f *Field[T]) Validate(value any) error {
	err := f.rule.Validate(value)
	if err == nil {
		return nil
	}

	var verrs ValidationErrors
	if errors.As(err, &verrs) {
		bound := make(ValidationErrors, 0, len(verrs))
		for _, e := range verrs {
			bound = append(bound, e.withField(f.name))
		}
		return bound
	}

	var verr ValidationError
	if errors.As(err, &verr) {
		return verr.withField(f.name)
	}
	return ValidationError{
		Field:             f.name,
		Message:           err.Error(),
		TranslationKey:    "validation.invalid",
		TranslationValues: map[string]any{"field": f.name},
		Kind:              errors.Join(ErrInvalidValue, err),
	}
}
