// Command cidadao serves the citizen account API.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/cidadaoativo/cidadao/handler"
	"github.com/cidadaoativo/cidadao/modules/account"
	"github.com/cidadaoativo/cidadao/pkg/authapi"
	"github.com/cidadaoativo/cidadao/pkg/clientip"
	"github.com/cidadaoativo/cidadao/pkg/config"
	"github.com/cidadaoativo/cidadao/pkg/httpserver"
	"github.com/cidadaoativo/cidadao/pkg/i18n"
	"github.com/cidadaoativo/cidadao/pkg/logger"
	"github.com/cidadaoativo/cidadao/pkg/ratelimiter"
	"github.com/cidadaoativo/cidadao/pkg/redis"
	"github.com/cidadaoativo/cidadao/pkg/requestid"
)

type appConfig struct {
	Env             string `env:"APP_ENV" envDefault:"development"`
	Service         string `env:"APP_NAME" envDefault:"cidadao"`
	LogLevel        string `env:"LOG_LEVEL"`
	DefaultLanguage string `env:"DEFAULT_LANGUAGE" envDefault:"pt-BR"`

	// IPRequestsPerMinute throttles every route per client IP. Zero disables it.
	IPRequestsPerMinute int `env:"IP_RATE_PER_MINUTE" envDefault:"120"`
}

func main() {
	if err := run(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	var (
		appCfg    appConfig
		serverCfg httpserver.Config
		authCfg   authapi.Config
		loginCfg  ratelimiter.Config
		redisCfg  redis.Config
		ipCfg     clientip.Config
	)
	for _, load := range []func() error{
		func() error { return config.Load(&appCfg) },
		func() error { return config.Load(&serverCfg) },
		func() error { return config.Load(&authCfg) },
		func() error { return config.Load(&loginCfg) },
		func() error { return config.Load(&redisCfg) },
		func() error { return config.Load(&ipCfg) },
	} {
		if err := load(); err != nil {
			return err
		}
	}

	opts := []logger.Option{
		logger.WithEnvironment(appCfg.Env, appCfg.Service),
		logger.WithContextExtractors(requestid.LoggerExtractor, clientip.LoggerExtractor, i18n.LoggerExtractor),
	}
	if appCfg.LogLevel != "" {
		opts = append(opts, logger.WithLevelName(appCfg.LogLevel))
	}
	log := logger.New(opts...)
	logger.SetAsDefault(log)

	translations, err := i18n.LoadFS(account.Locales, "locales")
	if err != nil {
		return fmt.Errorf("load translations: %w", err)
	}
	translator, err := i18n.New(translations,
		i18n.WithDefaultLanguage(appCfg.DefaultLanguage),
		i18n.WithLogger(log.With(logger.Component("i18n"))),
	)
	if err != nil {
		return fmt.Errorf("init translator: %w", err)
	}

	authClient, err := authapi.New(authCfg)
	if err != nil {
		return err
	}

	var (
		store      ratelimiter.Store
		checks     []httpserver.Check
		serverOpts []httpserver.Option
	)
	if redisCfg.Enabled() {
		client, err := redis.Connect(ctx, redisCfg)
		if err != nil {
			return err
		}
		store = ratelimiter.NewRedisStore(client)
		checks = append(checks, redis.Healthcheck(client))
		serverOpts = append(serverOpts, httpserver.WithStopHook(func() { _ = client.Close() }))
		log.Info("rate limiter backed by redis", logger.Component("ratelimiter"))
	} else {
		mem := ratelimiter.NewMemoryStore()
		store = mem
		serverOpts = append(serverOpts, httpserver.WithStopHook(mem.Close))
		log.Info("rate limiter kept in memory", logger.Component("ratelimiter"))
	}

	loginLimiter, err := ratelimiter.NewBucket(store, loginCfg)
	if err != nil {
		return err
	}

	var ipLimiter *ratelimiter.Bucket
	if appCfg.IPRequestsPerMinute > 0 {
		ipStore := ratelimiter.NewMemoryStore()
		serverOpts = append(serverOpts, httpserver.WithStopHook(ipStore.Close))
		ipLimiter, err = ratelimiter.NewBucket(ipStore, ratelimiter.Config{
			Capacity:       appCfg.IPRequestsPerMinute,
			RefillRate:     appCfg.IPRequestsPerMinute,
			RefillInterval: time.Minute,
		})
		if err != nil {
			return err
		}
	}

	errorHandler := handler.NewErrorHandler(log, handler.ErrorHandlerConfig{Translator: translator})

	r := chi.NewRouter()
	r.Use(
		requestid.Middleware,
		clientip.New(ipCfg).Middleware,
		middleware.Recoverer,
		i18n.Middleware(translator),
	)
	r.NotFound(handler.StatusHandler(errorHandler, handler.ErrNotFound))
	r.MethodNotAllowed(handler.StatusHandler(errorHandler, handler.ErrMethodNotAllowed))

	r.Get("/health", httpserver.HealthCheckHandler(log))
	r.Get("/ready", httpserver.HealthCheckHandler(log, checks...))

	r.Group(func(r chi.Router) {
		if ipLimiter != nil {
			r.Use(ratelimiter.Middleware(ipLimiter, clientip.Key, log))
		}

		svc := account.NewService(authClient,
			account.WithLimiter(loginLimiter),
			account.WithTranslator(translator),
			account.WithErrorHandler(errorHandler),
			account.WithLogger(log),
		)
		r.Mount("/api/account", svc.Handle())
	})

	server := httpserver.New(serverCfg, append(serverOpts, httpserver.WithLogger(log))...)
	return server.Run(ctx, r)
}
