// Package account serves the citizen sign-in and sign-up endpoints.
//
// Forms are validated here, with one translated message per field, and the
// accepted data is forwarded to the external auth backend with the CPF mask
// stripped. Login attempts are throttled per CPF and the throttle is cleared
// after a successful login. The /cpf/mask endpoint formats a CPF while it is
// being typed and validates it once all 11 digits are present.
//
// Mount it under a router that runs the i18n middleware:
//
//	svc := account.NewService(authClient,
//		account.WithLimiter(limiter),
//		account.WithTranslator(translator),
//		account.WithErrorHandler(errorHandler),
//	)
//	r.Mount("/api/account", svc.Handle())
package account
