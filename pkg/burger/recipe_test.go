package burger_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/fieldkit/pkg/burger"
	"github.com/dmitrymomot/fieldkit/pkg/validator"
)

var bounds = map[string][2]int{
	burger.FieldBuns:     {2, 3},
	burger.FieldCheese:   {0, 2},
	burger.FieldTomatoes: {0, 3},
	burger.FieldCutlets:  {1, 3},
	burger.FieldEggs:     {0, 2},
}

var quantities = []string{
	burger.FieldBuns,
	burger.FieldCheese,
	burger.FieldTomatoes,
	burger.FieldCutlets,
	burger.FieldEggs,
}

func validRecipe(t *testing.T) *burger.Recipe {
	t.Helper()
	r, err := burger.New(2, 1, 1, 1, 1, "ketchup")
	require.NoError(t, err)
	return r
}

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("builds a valid recipe", func(t *testing.T) {
		r, err := burger.New(2, 1, 1, 1, 1, "ketchup")
		require.NoError(t, err)
		require.NotNil(t, r)

		assert.Equal(t, 2, r.Buns())
		assert.Equal(t, 1, r.Cheese())
		assert.Equal(t, 1, r.Tomatoes())
		assert.Equal(t, 1, r.Cutlets())
		assert.Equal(t, 1, r.Eggs())
		assert.Equal(t, "ketchup", r.Sauce())
	})

	t.Run("rejects too many buns", func(t *testing.T) {
		r, err := burger.New(4, 1, 1, 1, 1, "ketchup")
		require.Error(t, err)
		assert.Nil(t, r)
		assert.ErrorIs(t, err, validator.ErrOutOfRange)
		assert.Equal(t, "buns: quantity 4 should not be less than 2 and greater than 3", err.Error())
	})

	t.Run("rejects unknown sauce", func(t *testing.T) {
		r, err := burger.New(2, 1, 1, 1, 1, "bbq")
		require.Error(t, err)
		assert.Nil(t, r)
		assert.ErrorIs(t, err, validator.ErrNotAllowed)
		assert.Contains(t, err.Error(), "bbq")
	})

	t.Run("stops at the first invalid field", func(t *testing.T) {
		_, err := burger.New(2, 5, 9, 0, 7, "bbq")
		require.Error(t, err)

		errs := validator.ExtractValidationErrors(err)
		require.Len(t, errs, 1)
		assert.Equal(t, burger.FieldCheese, errs[0].Field)
	})

	t.Run("accepts the extreme bounds", func(t *testing.T) {
		_, err := burger.New(2, 0, 0, 1, 0, "mayo")
		assert.NoError(t, err)
		_, err = burger.New(3, 2, 3, 3, 2, "burger")
		assert.NoError(t, err)
	})
}

func TestRecipe_Bounds(t *testing.T) {
	t.Parallel()

	for _, field := range quantities {
		lo, hi := bounds[field][0], bounds[field][1]

		t.Run(field+" accepts every value in range", func(t *testing.T) {
			for n := lo; n <= hi; n++ {
				r := validRecipe(t)
				require.NoError(t, r.Set(field, n))
				got, err := r.Get(field)
				require.NoError(t, err)
				assert.Equal(t, n, got)
			}
		})

		t.Run(field+" rejects values just outside range", func(t *testing.T) {
			for _, n := range []int{lo - 1, hi + 1} {
				r := validRecipe(t)
				before, _ := r.Get(field)

				err := r.Set(field, n)
				require.Error(t, err)
				assert.ErrorIs(t, err, validator.ErrOutOfRange)
				assert.ErrorIs(t, err, validator.ErrInvalidValue)

				after, _ := r.Get(field)
				assert.Equal(t, before, after)
			}
		})

		t.Run(field+" rejects booleans", func(t *testing.T) {
			r := validRecipe(t)
			for _, v := range []bool{true, false} {
				err := r.Set(field, v)
				require.Error(t, err)
				assert.ErrorIs(t, err, validator.ErrTypeMismatch)
				assert.NotErrorIs(t, err, validator.ErrInvalidValue)
			}
		})
	}
}

func TestRecipe_Sauce(t *testing.T) {
	t.Parallel()

	t.Run("accepts every allowed sauce", func(t *testing.T) {
		for _, sauce := range []string{"ketchup", "mayo", "burger"} {
			r := validRecipe(t)
			require.NoError(t, r.SetSauce(sauce))
			assert.Equal(t, sauce, r.Sauce())
		}
	})

	t.Run("rejects other sauces and keeps the old one", func(t *testing.T) {
		r := validRecipe(t)
		err := r.SetSauce("mustard")
		require.Error(t, err)
		assert.ErrorIs(t, err, validator.ErrNotAllowed)
		assert.Contains(t, err.Error(), "mustard")
		assert.Equal(t, "ketchup", r.Sauce())
	})

	t.Run("rejects non-string values", func(t *testing.T) {
		r := validRecipe(t)
		assert.ErrorIs(t, r.Set(burger.FieldSauce, 1), validator.ErrNotAllowed)
	})
}

func TestRecipe_TypedSetters(t *testing.T) {
	t.Parallel()

	r := validRecipe(t)
	require.NoError(t, r.SetBuns(3))
	require.NoError(t, r.SetCheese(2))
	require.NoError(t, r.SetTomatoes(3))
	require.NoError(t, r.SetCutlets(3))
	require.NoError(t, r.SetEggs(2))
	assert.Equal(t, "buns=3 cheese=2 tomatoes=3 cutlets=3 eggs=2 sauce=ketchup", r.String())

	assert.Error(t, r.SetCutlets(0))
	assert.Error(t, r.SetEggs(3))
	assert.Equal(t, 3, r.Cutlets())
	assert.Equal(t, 2, r.Eggs())
}

func TestRecipe_UnknownField(t *testing.T) {
	t.Parallel()

	r := validRecipe(t)
	assert.ErrorIs(t, r.Set("pickles", 1), burger.ErrUnknownField)

	_, err := r.Get("pickles")
	assert.ErrorIs(t, err, burger.ErrUnknownField)
}

func TestFields(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"buns", "cheese", "tomatoes", "cutlets", "eggs", "sauce"}, burger.Fields())
	assert.Equal(t, "_buns", burger.Buns.StorageKey())
	assert.Equal(t, validator.NewBoundedInt(1, 3), burger.Cutlets.Rule())
	assert.Equal(t, []string{"ketchup", "mayo", "burger"}, burger.Sauce.Rule().(validator.OneOf).Options())
}

func TestFromMap(t *testing.T) {
	t.Parallel()

	valid := func() map[string]any {
		return map[string]any{
			"buns": 2, "cheese": 1, "tomatoes": 1, "cutlets": 1, "eggs": 1, "sauce": "ketchup",
		}
	}

	t.Run("builds recipe and ignores unknown keys", func(t *testing.T) {
		values := valid()
		values["pickles"] = 4
		r, err := burger.FromMap(values)
		require.NoError(t, err)
		assert.Equal(t, map[string]any{
			"buns": 2, "cheese": 1, "tomatoes": 1, "cutlets": 1, "eggs": 1, "sauce": "ketchup",
		}, r.Map())
	})

	t.Run("reports missing field", func(t *testing.T) {
		values := valid()
		delete(values, "eggs")
		r, err := burger.FromMap(values)
		assert.Nil(t, r)
		assert.ErrorIs(t, err, validator.ErrFieldRequired)
		assert.Equal(t, "eggs: field is required", err.Error())
	})

	t.Run("rejects boolean quantity", func(t *testing.T) {
		values := valid()
		values["cutlets"] = true
		r, err := burger.FromMap(values)
		assert.Nil(t, r)
		assert.ErrorIs(t, err, validator.ErrTypeMismatch)
	})
}

func TestCheck(t *testing.T) {
	t.Parallel()

	t.Run("returns nil for valid values", func(t *testing.T) {
		err := burger.Check(map[string]any{
			"buns": 3, "cheese": 0, "tomatoes": 0, "cutlets": 1, "eggs": 0, "sauce": "mayo",
		})
		assert.NoError(t, err)
	})

	t.Run("reports every failing field", func(t *testing.T) {
		err := burger.Check(map[string]any{
			"buns": 4, "cheese": true, "tomatoes": 1, "cutlets": 1, "sauce": "bbq",
		})
		require.Error(t, err)

		errs := validator.ExtractValidationErrors(err)
		assert.Equal(t, []string{"buns", "cheese", "eggs", "sauce"}, errs.Fields())
		assert.ErrorIs(t, err, validator.ErrOutOfRange)
		assert.ErrorIs(t, err, validator.ErrTypeMismatch)
		assert.ErrorIs(t, err, validator.ErrFieldRequired)
		assert.ErrorIs(t, err, validator.ErrNotAllowed)
	})
}
