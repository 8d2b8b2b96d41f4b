package logger

import (
	"log/slog"
	"strconv"

	"github.com/cidadaoativo/cidadao/pkg/cpf"
)

// Group creates a slog group attribute from the provided attributes.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Errors groups non-nil errors under the key "errors".
func Errors(errs ...error) slog.Attr {
	as := make([]slog.Attr, 0, len(errs))
	for i, err := range errs {
		if err != nil {
			as = append(as, slog.Any(strconv.Itoa(i), err))
		}
	}
	if len(as) == 0 {
		return slog.Attr{}
	}
	return slog.Attr{Key: "errors", Value: slog.GroupValue(as...)}
}

// Error records err under the key "error". Nil errors yield an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// RequestID records the request identifier under the key "request_id".
func RequestID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("request_id", id)
}

// ClientIP records the resolved client address.
func ClientIP(ip string) slog.Attr {
	return slog.String("client_ip", ip)
}

// Lang records the negotiated language tag.
func Lang(tag string) slog.Attr {
	return slog.String("lang", tag)
}

// CPF records a taxpayer number with every digit except the last two hidden.
// Input may be masked or raw; only its digits are used.
func CPF(value string) slog.Attr {
	return slog.String("cpf", MaskCPF(value))
}

// MaskCPF hides all but the last two digits of a CPF while keeping the
// punctuation of the formatted mask.
func MaskCPF(value string) string {
	digits := cpf.Unformat(value)
	if len(digits) > cpf.Length {
		digits = digits[:cpf.Length]
	}
	formatted := []byte(cpf.Format(digits))
	visible := 2
	for i := len(formatted) - 1; i >= 0; i-- {
		if formatted[i] < '0' || formatted[i] > '9' {
			continue
		}
		if visible > 0 && len(digits) == cpf.Length {
			visible--
			continue
		}
		formatted[i] = '*'
	}
	return string(formatted)
}

// StatusCode records an HTTP status code.
func StatusCode(code int) slog.Attr {
	return slog.Int("status", code)
}

// Duration records a duration under the key "duration".
func Duration(d any) slog.Attr {
	return slog.Any("duration", d)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Event records the event name under the key "event".
func Event(name string) slog.Attr {
	return slog.String("event", name)
}

// Handler records the handler name under the key "handler".
func Handler(name string) slog.Attr {
	return slog.String("handler", name)
}
