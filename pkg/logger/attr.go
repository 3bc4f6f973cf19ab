package logger

import (
	"log/slog"

	"github.com/dmitrymomot/fiscalkit/pkg/fiscal"
)

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// RequestID records the request identifier under the key "request_id".
// If id is empty, it returns an empty Attr.
func RequestID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("request_id", id)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Identifier groups the identifier type and its masked value under the key
// "identifier". The raw value is never logged; only the last four
// characters survive fiscal.Mask.
func Identifier(kind, value string) slog.Attr {
	return slog.Group("identifier",
		slog.String("kind", kind),
		slog.String("value", fiscal.Mask(value)),
	)
}

// ErrorKind records a validation failure kind under the key "error_kind".
// KindNone produces an empty Attr.
func ErrorKind(k fiscal.ErrorKind) slog.Attr {
	if k == fiscal.KindNone {
		return slog.Attr{}
	}
	return slog.String("error_kind", k.String())
}

// BankCode records an ABI bank code under the key "abi".
func BankCode(abi string) slog.Attr {
	return slog.String("abi", abi)
}

// Duration records a duration under the key "duration".
func Duration(d any) slog.Attr {
	return slog.Any("duration", d)
}
