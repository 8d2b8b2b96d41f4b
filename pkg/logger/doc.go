// Package logger builds *slog.Logger values for the service and provides
// attribute helpers so the same keys are used everywhere.
//
// New applies a list of Option functions and returns a logger whose handler
// is wrapped by LogHandlerDecorator. The decorator runs the registered
// ContextExtractor callbacks on every record, which is how request ids and
// the negotiated language end up in request-scoped log lines.
//
//	log := logger.New(
//		logger.WithEnvironment(cfg.Env, "cidadao"),
//		logger.WithContextExtractors(requestid.LoggerExtractor),
//	)
//	log.InfoContext(ctx, "login accepted", logger.CPF(form.CPF))
//
// # Personal data
//
// CPF numbers must never be written in full. The CPF helper keeps only the
// last two digits and replaces the rest of the mask with asterisks:
//
//	logger.CPF("529.982.247-25") // cpf=***.***.***-25
//
// Error and Errors return an empty slog.Attr for nil errors, so callers can
// pass them unconditionally.
package logger
