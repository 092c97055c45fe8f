// Package validator provides validated record fields and the rules that guard them.
//
// A Field binds a name and a Validator once, at record-type declaration time,
// and is shared by every record instance. Each instance keeps its value in a
// private Slot, and the Field is the only way to write it: Set and Assign run
// the rule first and leave the slot untouched when the rule fails.
//
// # Rules
//
//   - BoundedInt accepts integers in an inclusive [Min, Max] range. Booleans,
//     floats and strings fail with ErrTypeMismatch, integers outside the range
//     fail with ErrOutOfRange.
//   - OneOf accepts values equal to one of a fixed list of strings, failing with
//     ErrNotAllowed otherwise.
//
// Both range and membership failures wrap ErrInvalidValue.
//
// # Usage
//
//	var buns = validator.NewIntField("buns", 2, 3)
//
//	type Recipe struct {
//	    buns validator.Slot[int]
//	}
//
//	func (r *Recipe) SetBuns(n int) error { return buns.Set(&r.buns, n) }
//
// # Error Handling
//
// Every failure is a ValidationError naming the field, a human-readable
// message and a translation key. errors.Is matches its Kind; several failures
// can be collected with Apply into ValidationErrors, which unwraps to each of
// them.
//
// Fields are immutable once declared and safe to share between goroutines.
// Slots are not synchronized.
package validator
