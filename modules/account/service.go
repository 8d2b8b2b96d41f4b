package account

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/cidadaoativo/cidadao/handler"
	"github.com/cidadaoativo/cidadao/pkg/authapi"
	"github.com/cidadaoativo/cidadao/pkg/binder"
	"github.com/cidadaoativo/cidadao/pkg/logger"
	"github.com/cidadaoativo/cidadao/pkg/ratelimiter"
	"github.com/cidadaoativo/cidadao/pkg/validator"
)

// Translation keys of errors raised by this module.
const (
	KeyLoginFailed    = "errors.login_failed"
	KeyRegisterFailed = "errors.register_failed"
	KeyCPFRegistered  = "errors.cpf_registered"
	KeyTooManyLogins  = "errors.too_many_logins"
)

// AuthBackend is the part of *authapi.Client the service calls.
type AuthBackend interface {
	Login(ctx context.Context, req authapi.LoginRequest) (*authapi.Token, error)
	Register(ctx context.Context, req authapi.RegisterRequest) error
}

// Service serves the sign-in and sign-up endpoints.
type Service struct {
	auth         AuthBackend
	limiter      ratelimiter.RateLimiter
	translator   handler.Translator
	errorHandler handler.ErrorHandler
	log          *slog.Logger
	now          func() time.Time
}

// Option configures a Service.
type Option func(*Service)

// WithLimiter throttles login attempts per CPF. Without it logins are not
// throttled.
func WithLimiter(l ratelimiter.RateLimiter) Option {
	return func(s *Service) { s.limiter = l }
}

// WithTranslator translates the live CPF error message.
func WithTranslator(t handler.Translator) Option {
	return func(s *Service) { s.translator = t }
}

func WithErrorHandler(h handler.ErrorHandler) Option {
	return func(s *Service) { s.errorHandler = h }
}

func WithLogger(l *slog.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.log = l
		}
	}
}

// WithClock sets the clock birth dates are checked against.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

func NewService(auth AuthBackend, opts ...Option) *Service {
	s := &Service{
		auth: auth,
		log:  slog.New(slog.DiscardHandler),
		now:  time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.log = s.log.With(logger.Component("account"))
	return s
}

// Handle returns the module router:
//
//	GET|POST /cpf/mask   live CPF formatting
//	POST     /login      sign-in
//	POST     /register   sign-up
func (s *Service) Handle() http.Handler {
	r := chi.NewRouter()

	eh := handler.WithErrorHandler(s.errorHandler)

	mask := handler.Wrap(s.mask,
		handler.WithBinders(binder.Signals(), binder.Query(), binder.JSON(), binder.Form()),
		eh,
	)
	r.Get("/cpf/mask", mask)
	r.Post("/cpf/mask", mask)

	r.Post("/login", handler.Wrap(s.login,
		handler.WithBinders(binder.Signals(), binder.JSON(), binder.Form()),
		eh,
	))
	r.Post("/register", handler.Wrap(s.register,
		handler.WithBinders(binder.Signals(), binder.JSON(), binder.Form()),
		eh,
	))

	return r
}

func (s *Service) mask(ctx handler.Context, req MaskRequest) handler.Response {
	res := Mask(req.CPF)
	if res.Complete && !res.Valid {
		errs := validator.ExtractValidationErrors(validator.Apply(validator.ValidCPF(FieldCPF, res.Masked)))
		res.Error = handler.TranslateValidationErrors(s.translator, s.lang(ctx), errs)[FieldCPF][0]
	}

	if ctx.IsDatastar() {
		return handler.Signals(map[string]any{
			FieldCPF:           res.Masked,
			FieldCPF + "Error": res.Error,
		})
	}
	return handler.JSON(http.StatusOK, res)
}

func (s *Service) login(ctx handler.Context, req LoginForm) handler.Response {
	if err := req.Validate(); err != nil {
		return handler.Error(err)
	}
	req.Normalize()

	key := "login:" + req.CPF
	if s.limiter != nil {
		res, err := s.limiter.Allow(ctx, key)
		switch {
		case err != nil:
			s.log.WarnContext(ctx, "login throttling unavailable", logger.Error(err))
		case !res.Allowed():
			ratelimiter.SetHeaders(ctx.ResponseWriter(), res)
			s.log.InfoContext(ctx, "login throttled", logger.CPF(req.CPF), logger.Event("login_throttled"))
			return handler.Error(handler.NewHTTPError(http.StatusTooManyRequests, KeyTooManyLogins))
		}
	}

	token, err := s.auth.Login(ctx, req.request())
	if err != nil {
		s.log.InfoContext(ctx, "login rejected", logger.CPF(req.CPF), logger.Error(err))
		return handler.Error(backendError(err, KeyLoginFailed))
	}

	if s.limiter != nil {
		if err := s.limiter.Reset(ctx, key); err != nil {
			s.log.WarnContext(ctx, "failed to reset login throttle", logger.Error(err))
		}
	}
	s.log.InfoContext(ctx, "login succeeded", logger.CPF(req.CPF), logger.Event("login"))

	return handler.JSON(http.StatusOK, token)
}

func (s *Service) register(ctx handler.Context, req RegisterForm) handler.Response {
	if err := req.Validate(s.now()); err != nil {
		return handler.Error(err)
	}
	req.Normalize()

	if err := s.auth.Register(ctx, req.request()); err != nil {
		s.log.InfoContext(ctx, "registration rejected", logger.CPF(req.CPF), logger.Error(err))
		return handler.Error(backendError(err, KeyRegisterFailed))
	}
	s.log.InfoContext(ctx, "account registered", logger.CPF(req.CPF), logger.Event("register"))

	return handler.JSON(http.StatusCreated, map[string]string{"cpf": req.CPF})
}

func (s *Service) lang(ctx handler.Context) string {
	if lang := ctx.Lang(); lang != "" || s.translator == nil {
		return lang
	}
	return s.translator.DefaultLanguage()
}

// backendError maps an auth backend failure to the client error. The
// backend's own description, when present, is shown as is.
func backendError(err error, key string) error {
	if errors.Is(err, authapi.ErrUnavailable) {
		return errors.Join(err, handler.ErrServiceUnavailable)
	}

	var apiErr *authapi.APIError
	if !errors.As(err, &apiErr) {
		return errors.Join(err, handler.NewHTTPError(http.StatusBadGateway, key))
	}

	var httpErr handler.HTTPError
	switch {
	case errors.Is(err, authapi.ErrUnauthorized):
		httpErr = handler.NewHTTPError(http.StatusUnauthorized, key)
	case errors.Is(err, authapi.ErrConflict):
		httpErr = handler.NewHTTPError(http.StatusConflict, KeyCPFRegistered)
	case apiErr.StatusCode >= 400 && apiErr.StatusCode < 500:
		httpErr = handler.NewHTTPError(http.StatusBadRequest, key)
	default:
		httpErr = handler.NewHTTPError(http.StatusBadGateway, key)
	}
	return errors.Join(err, httpErr.WithMessage(apiErr.Description))
}
