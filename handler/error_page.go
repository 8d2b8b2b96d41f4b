package handler

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/a-h/templ"
)

// DefaultErrorPage is a minimal standalone error page.
func DefaultErrorPage(p ErrorPageParams) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		lang := p.Lang
		if lang == "" {
			lang = "pt-BR"
		}
		_, err := fmt.Fprintf(w,
			`<!DOCTYPE html><html lang="%s"><head><meta charset="utf-8"><title>%s</title></head>`+
				`<body><main><h1>%s</h1><p>%s</p>`,
			templ.EscapeString(lang),
			strconv.Itoa(p.StatusCode),
			strconv.Itoa(p.StatusCode),
			templ.EscapeString(p.Message),
		)
		if err != nil {
			return err
		}
		if p.RequestID != "" {
			if _, err := fmt.Fprintf(w, `<p><small>%s</small></p>`, templ.EscapeString(p.RequestID)); err != nil {
				return err
			}
		}
		_, err = io.WriteString(w, `</main></body></html>`)
		return err
	})
}
