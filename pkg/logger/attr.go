package logger

import (
	"log/slog"

	"github.com/dmitrymomot/fieldkit/pkg/validator"
)

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// File records a source file path under the key "file".
func File(path string) slog.Attr {
	return slog.String("file", path)
}

// ValidationErrors groups field failures under the key "fields", one
// attribute per failure keyed by field name. Errors that carry no field
// failures yield an empty Attr.
func ValidationErrors(err error) slog.Attr {
	errs := validator.ExtractValidationErrors(err)
	if len(errs) == 0 {
		return slog.Attr{}
	}
	attrs := make([]slog.Attr, 0, len(errs))
	for _, e := range errs {
		attrs = append(attrs, slog.String(e.Field, e.Message))
	}
	return slog.Attr{Key: "fields", Value: slog.GroupValue(attrs...)}
}

// Values groups a record's field values under the key "values".
func Values(values map[string]any, order []string) slog.Attr {
	attrs := make([]slog.Attr, 0, len(order))
	for _, key := range order {
		if v, ok := values[key]; ok {
			attrs = append(attrs, slog.Any(key, v))
		}
	}
	return slog.Attr{Key: "values", Value: slog.GroupValue(attrs...)}
}
