package burger

import (
	"fmt"

	"github.com/dmitrymomot/fieldkit/pkg/validator"
)

// Field names in assignment order.
const (
	FieldBuns     = "buns"
	FieldCheese   = "cheese"
	FieldTomatoes = "tomatoes"
	FieldCutlets  = "cutlets"
	FieldEggs     = "eggs"
	FieldSauce    = "sauce"
)

// Field descriptors shared by every Recipe.
var (
	Buns     = validator.NewIntField(FieldBuns, 2, 3)
	Cheese   = validator.NewIntField(FieldCheese, 0, 2)
	Tomatoes = validator.NewIntField(FieldTomatoes, 0, 3)
	Cutlets  = validator.NewIntField(FieldCutlets, 1, 3)
	Eggs     = validator.NewIntField(FieldEggs, 0, 2)
	Sauce    = validator.NewStringField(FieldSauce, "ketchup", "mayo", "burger")
)

// Recipe is a burger whose fields always satisfy their rules.
// Values can only be changed through the setters, which validate first.
type Recipe struct {
	buns     validator.Slot[int]
	cheese   validator.Slot[int]
	tomatoes validator.Slot[int]
	cutlets  validator.Slot[int]
	eggs     validator.Slot[int]
	sauce    validator.Slot[string]
}

// New builds a validated recipe. It stops at the first invalid field and returns no recipe.
func New(buns, cheese, tomatoes, cutlets, eggs int, sauce string) (*Recipe, error) {
	r := &Recipe{}
	steps := []func() error{
		func() error { return r.SetBuns(buns) },
		func() error { return r.SetCheese(cheese) },
		func() error { return r.SetTomatoes(tomatoes) },
		func() error { return r.SetCutlets(cutlets) },
		func() error { return r.SetEggs(eggs) },
		func() error { return r.SetSauce(sauce) },
	}
	for _, step := range steps {
		if err := step(); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Fields lists the recipe field names in assignment order.
func Fields() []string {
	return []string{FieldBuns, FieldCheese, FieldTomatoes, FieldCutlets, FieldEggs, FieldSauce}
}

func (r *Recipe) Buns() int {
	v, _ := Buns.Get(&r.buns)
	return v
}

func (r *Recipe) Cheese() int {
	v, _ := Cheese.Get(&r.cheese)
	return v
}

func (r *Recipe) Tomatoes() int {
	v, _ := Tomatoes.Get(&r.tomatoes)
	return v
}

func (r *Recipe) Cutlets() int {
	v, _ := Cutlets.Get(&r.cutlets)
	return v
}

func (r *Recipe) Eggs() int {
	v, _ := Eggs.Get(&r.eggs)
	return v
}

func (r *Recipe) Sauce() string {
	v, _ := Sauce.Get(&r.sauce)
	return v
}

func (r *Recipe) SetBuns(n int) error {
	return Buns.Set(&r.buns, n)
}

func (r *Recipe) SetCheese(n int) error {
	return Cheese.Set(&r.cheese, n)
}

func (r *Recipe) SetTomatoes(n int) error {
	return Tomatoes.Set(&r.tomatoes, n)
}

func (r *Recipe) SetCutlets(n int) error {
	return Cutlets.Set(&r.cutlets, n)
}

func (r *Recipe) SetEggs(n int) error {
	return Eggs.Set(&r.eggs, n)
}

func (r *Recipe) SetSauce(s string) error {
	return Sauce.Set(&r.sauce, s)
}

// Set assigns a value of any type to the named field, validating it first.
func (r *Recipe) Set(field string, value any) error {
	switch field {
	case FieldBuns:
		return Buns.Assign(&r.buns, value)
	case FieldCheese:
		return Cheese.Assign(&r.cheese, value)
	case FieldTomatoes:
		return Tomatoes.Assign(&r.tomatoes, value)
	case FieldCutlets:
		return Cutlets.Assign(&r.cutlets, value)
	case FieldEggs:
		return Eggs.Assign(&r.eggs, value)
	case FieldSauce:
		return Sauce.Assign(&r.sauce, value)
	}
	return fmt.Errorf("%w: %q", ErrUnknownField, field)
}

// Get returns the named field's value.
func (r *Recipe) Get(field string) (any, error) {
	switch field {
	case FieldBuns:
		return r.Buns(), nil
	case FieldCheese:
		return r.Cheese(), nil
	case FieldTomatoes:
		return r.Tomatoes(), nil
	case FieldCutlets:
		return r.Cutlets(), nil
	case FieldEggs:
		return r.Eggs(), nil
	case FieldSauce:
		return r.Sauce(), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownField, field)
}

// Map returns the recipe as field name to value.
func (r *Recipe) Map() map[string]any {
	return map[string]any{
		FieldBuns:     r.Buns(),
		FieldCheese:   r.Cheese(),
		FieldTomatoes: r.Tomatoes(),
		FieldCutlets:  r.Cutlets(),
		FieldEggs:     r.Eggs(),
		FieldSauce:    r.Sauce(),
	}
}

func (r *Recipe) String() string {
	return fmt.Sprintf("buns=%d cheese=%d tomatoes=%d cutlets=%d eggs=%d sauce=%s",
		r.Buns(), r.Cheese(), r.Tomatoes(), r.Cutlets(), r.Eggs(), r.Sauce())
}

// FromMap builds a recipe from untyped values, assigning fields in order and
// stopping at the first missing or invalid one. Unknown keys are ignored.
func FromMap(values map[string]any) (*Recipe, error) {
	r := &Recipe{}
	for _, field := range Fields() {
		value, ok := values[field]
		if !ok {
			return nil, required(field)
		}
		if err := r.Set(field, value); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Check validates every field of values and reports all failures at once.
func Check(values map[string]any) error {
	var errs validator.ValidationErrors
	for _, field := range Fields() {
		value, ok := values[field]
		if !ok {
			errs.Add(required(field))
			continue
		}
		if err := validateField(field, value); err != nil {
			errs = append(errs, validator.ExtractValidationErrors(err)...)
		}
	}
	if errs.IsEmpty() {
		return nil
	}
	return errs
}

func validateField(field string, value any) error {
	switch field {
	case FieldBuns:
		return Buns.Validate(value)
	case FieldCheese:
		return Cheese.Validate(value)
	case FieldTomatoes:
		return Tomatoes.Validate(value)
	case FieldCutlets:
		return Cutlets.Validate(value)
	case FieldEggs:
		return Eggs.Validate(value)
	case FieldSauce:
		return Sauce.Validate(value)
	}
	return fmt.Errorf("%w: %q", ErrUnknownField, field)
}

func required(field string) validator.ValidationError {
	return validator.ValidationError{
		Field:             field,
		Message:           "field is required",
		TranslationKey:    "validation.required",
		TranslationValues: map[string]any{"field": field},
		Kind:              validator.ErrFieldRequired,
	}
}
