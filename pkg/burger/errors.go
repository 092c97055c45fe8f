package burger

import "errors"

var (
	// ErrUnknownField is returned when a field name does not belong to Recipe.
	ErrUnknownField = errors.New("unknown recipe field")

	// ErrUnsupportedFormat is returned when a document format cannot be decoded.
	ErrUnsupportedFormat = errors.New("unsupported recipe format")

	// ErrMalformedDocument is returned when a document is not a mapping of fields.
	ErrMalformedDocument = errors.New("malformed recipe document")
)
