package handler

import (
	"errors"
	"log/slog"
	"maps"
	"net/http"
	"strings"

	"github.com/a-h/templ"

	"github.com/cidadaoativo/cidadao/pkg/binder"
	"github.com/cidadaoativo/cidadao/pkg/logger"
	"github.com/cidadaoativo/cidadao/pkg/requestid"
	"github.com/cidadaoativo/cidadao/pkg/validator"
)

// Translator resolves translation keys. *i18n.Translator satisfies it.
type Translator interface {
	DefaultLanguage() string
	Has(lang, key string) bool
	TParams(lang, key string, params map[string]any) string
}

// ErrorPageParams contains data for rendering error pages
type ErrorPageParams struct {
	Lang       string
	StatusCode int
	Code       string
	Message    string
	RequestID  string
}

// ErrorHandlerConfig configures NewErrorHandler.
type ErrorHandlerConfig struct {
	// Translator renders messages. Without one, validation messages fall
	// back to their English defaults and other errors to the status text.
	Translator Translator

	// ErrorPage renders the page for browser requests (default: DefaultErrorPage).
	ErrorPage func(ErrorPageParams) templ.Component

	// FormErrorSignal names the Datastar signal that receives the general
	// error message (default: "formError").
	FormErrorSignal string

	// FieldErrorSuffix is appended to a field name to form the signal that
	// receives its message, e.g. "cpf" becomes "cpfError" (default: "Error").
	FieldErrorSuffix string
}

// ErrorInfo is an error classified for the client.
type ErrorInfo struct {
	StatusCode int
	Key        string
	Message    string
	Fields     validator.ValidationErrors
	LogLevel   slog.Level
}

func setConfigDefaults(cfg ErrorHandlerConfig) ErrorHandlerConfig {
	if cfg.ErrorPage == nil {
		cfg.ErrorPage = DefaultErrorPage
	}
	if cfg.FormErrorSignal == "" {
		cfg.FormErrorSignal = "formError"
	}
	if cfg.FieldErrorSuffix == "" {
		cfg.FieldErrorSuffix = "Error"
	}
	return cfg
}

// ClassifyError maps err to a status code and translation key.
// Unknown errors are reported as 500 without exposing their text.
func ClassifyError(err error) ErrorInfo {
	info := ErrorInfo{
		StatusCode: ErrInternalServerError.Code,
		Key:        ErrInternalServerError.Key,
	}

	var httpErr HTTPError
	switch {
	case validator.IsValidationError(err):
		info.StatusCode = ErrUnprocessableEntity.Code
		info.Key = ErrUnprocessableEntity.Key
		info.Fields = validator.ExtractValidationErrors(err)
	case errors.As(err, &httpErr):
		info.StatusCode = httpErr.Code
		info.Key = httpErr.Key
		info.Message = httpErr.Message
	case errors.Is(err, binder.ErrUnsupportedMediaType):
		info.StatusCode = ErrUnsupportedMediaType.Code
		info.Key = ErrUnsupportedMediaType.Key
	case errors.Is(err, binder.ErrFailedToParseJSON),
		errors.Is(err, binder.ErrFailedToParseForm),
		errors.Is(err, binder.ErrFailedToParseQuery),
		errors.Is(err, binder.ErrFailedToReadSignals):
		info.StatusCode = ErrBadRequest.Code
		info.Key = ErrBadRequest.Key
	}

	info.LogLevel = determineLogLevel(info)
	return info
}

func determineLogLevel(info ErrorInfo) slog.Level {
	switch {
	case len(info.Fields) > 0:
		return slog.LevelInfo
	case info.StatusCode < http.StatusInternalServerError:
		return slog.LevelWarn
	default:
		return slog.LevelError
	}
}

// TranslateValidationErrors renders one message per failed rule, keyed by
// field. A key "fields.<field>.<rule>" overrides the generic
// "validation.<rule>" message, and "fields.<field>.label" fills the
// %{field} placeholder.
func TranslateValidationErrors(tr Translator, lang string, errs validator.ValidationErrors) map[string][]string {
	if len(errs) == 0 {
		return nil
	}
	out := make(map[string][]string, len(errs))
	for _, e := range errs {
		out[e.Field] = append(out[e.Field], translateValidationError(tr, lang, e))
	}
	return out
}

func translateValidationError(tr Translator, lang string, e validator.ValidationError) string {
	if tr == nil || e.TranslationKey == "" {
		return e.Message
	}

	params := make(map[string]any, len(e.TranslationValues)+1)
	maps.Copy(params, e.TranslationValues)
	if label := "fields." + e.Field + ".label"; tr.Has(lang, label) {
		params["field"] = tr.TParams(lang, label, nil)
	}

	rule := strings.TrimPrefix(e.TranslationKey, "validation.")
	if specific := "fields." + e.Field + "." + rule; tr.Has(lang, specific) {
		return tr.TParams(lang, specific, params)
	}
	if tr.Has(lang, e.TranslationKey) {
		return tr.TParams(lang, e.TranslationKey, params)
	}
	return e.Message
}

// NewErrorHandler creates the error handler shared by all routes. The
// response follows the client: Datastar requests get their error signals
// patched, browsers get an HTML page and everything else gets JSON.
func NewErrorHandler(log *slog.Logger, cfg ErrorHandlerConfig) ErrorHandler {
	cfg = setConfigDefaults(cfg)
	if log == nil {
		log = slog.Default()
	}
	log = log.With(logger.Component("error_handler"))

	return func(ctx Context, err error) {
		r := ctx.Request()
		info := ClassifyError(err)

		log.LogAttrs(r.Context(), info.LogLevel, "request error",
			logger.Error(err),
			logger.StatusCode(info.StatusCode),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Bool("datastar", ctx.IsDatastar()),
		)

		lang := ctx.Lang()
		if lang == "" && cfg.Translator != nil {
			lang = cfg.Translator.DefaultLanguage()
		}

		detail := ErrorDetail{
			Code:    info.Key,
			Message: message(cfg.Translator, lang, info),
			Details: TranslateValidationErrors(cfg.Translator, lang, info.Fields),
		}

		var resp Response
		switch {
		case ctx.IsDatastar():
			resp = Signals(errorSignals(cfg, detail))
		case wantsHTML(r):
			resp = Templ(cfg.ErrorPage(ErrorPageParams{
				Lang:       lang,
				StatusCode: info.StatusCode,
				Code:       info.Key,
				Message:    detail.Message,
				RequestID:  requestid.FromContext(r.Context()),
			}), WithStatus(info.StatusCode))
		default:
			resp = JSONError(info.StatusCode, detail)
		}

		if renderErr := resp.Render(ctx.ResponseWriter(), r); renderErr != nil {
			log.LogAttrs(r.Context(), slog.LevelError, "failed to render error response",
				logger.Error(renderErr),
				logger.Event("render_error"),
			)
		}
	}
}

func message(tr Translator, lang string, info ErrorInfo) string {
	if info.Message != "" {
		return info.Message
	}
	if tr != nil && tr.Has(lang, info.Key) {
		return tr.TParams(lang, info.Key, nil)
	}
	if text := http.StatusText(info.StatusCode); text != "" {
		return text
	}
	return info.Key
}

func errorSignals(cfg ErrorHandlerConfig, detail ErrorDetail) map[string]any {
	signals := map[string]any{cfg.FormErrorSignal: detail.Message}
	for field, msgs := range detail.Details {
		signals[field+cfg.FieldErrorSuffix] = msgs[0]
	}
	return signals
}

func wantsHTML(r *http.Request) bool {
	return strings.Contains(r.Header.Get("Accept"), "text/html")
}

// StatusHandler adapts an HTTPError to an http.HandlerFunc, for router
// fallbacks such as NotFound and MethodNotAllowed.
func StatusHandler(eh ErrorHandler, err HTTPError) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		eh(NewContext(w, r), err)
	}
}
