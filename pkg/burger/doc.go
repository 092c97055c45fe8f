// Package burger defines Recipe, a burger record whose six fields are guarded
// by validator fields.
//
// Quantities are bounded integers: buns 2..3, cheese 0..2, tomatoes 0..3,
// cutlets 1..3 and eggs 0..2. Sauce must be one of "ketchup", "mayo" or
// "burger". New, FromMap and the JSON and YAML decoders all assign fields in
// that order and stop at the first invalid one; Check reports every failure.
//
//	r, err := burger.New(2, 1, 1, 1, 1, "ketchup")
//	if err != nil {
//	    if errors.Is(err, validator.ErrOutOfRange) {
//	        // a quantity is outside its bounds
//	    }
//	}
package burger
