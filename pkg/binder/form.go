package binder

import (
	"fmt"
	"net/http"
	"net/url"
	"reflect"
	"strconv"
	"strings"
)

// Form decodes an application/x-www-form-urlencoded body.
func Form() func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		if !hasMediaType(r, "application/x-www-form-urlencoded") {
			return ErrBinderNotApplicable
		}
		r.Body = http.MaxBytesReader(nil, r.Body, MaxBodySize)
		if err := r.ParseForm(); err != nil {
			return fmt.Errorf("%w: %v", ErrFailedToParseForm, err)
		}
		return bindValues(v, r.PostForm, ErrFailedToParseForm)
	}
}

// Query decodes the URL query of GET and HEAD requests.
func Query() func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			return ErrBinderNotApplicable
		}
		return bindValues(v, r.URL.Query(), ErrFailedToParseQuery)
	}
}

func bindValues(v any, values url.Values, bindErr error) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer || rv.IsNil() || rv.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("%w: %w", bindErr, ErrInvalidTarget)
	}
	rv = rv.Elem()
	rt := rv.Type()

	for i := range rt.NumField() {
		sf := rt.Field(i)
		if !sf.IsExported() {
			continue
		}
		name := sf.Tag.Get("form")
		if name == "-" {
			continue
		}
		if name == "" {
			name = strings.ToLower(sf.Name)
		}
		name, _, _ = strings.Cut(name, ",")

		raw, ok := values[name]
		if !ok || len(raw) == 0 {
			continue
		}
		if err := setValue(rv.Field(i), raw[0]); err != nil {
			return fmt.Errorf("%w: field %s: %v", bindErr, name, err)
		}
	}
	return nil
}

func setValue(field reflect.Value, value string) error {
	switch field.Kind() {
	case reflect.Pointer:
		if field.IsNil() {
			field.Set(reflect.New(field.Type().Elem()))
		}
		return setValue(field.Elem(), value)
	case reflect.String:
		field.SetString(value)
	case reflect.Bool:
		switch strings.ToLower(value) {
		case "on", "yes":
			field.SetBool(true)
			return nil
		case "off", "no", "":
			field.SetBool(false)
			return nil
		}
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid bool value %q", value)
		}
		field.SetBool(b)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(value, 10, field.Type().Bits())
		if err != nil {
			return fmt.Errorf("invalid int value %q", value)
		}
		field.SetInt(n)
	default:
		return fmt.Errorf("unsupported type %s", field.Kind())
	}
	return nil
}
