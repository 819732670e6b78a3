// Package logger builds the *slog.Logger used across namesmith.
//
// New takes functional options (format, level, output, static attributes,
// context extractors) and wraps the chosen slog handler with a
// LogHandlerDecorator that copies request-scoped values out of the context on
// every record:
//
//	log := logger.New(
//		logger.WithEnvironment(cfg.Env, "namesmith"),
//		logger.WithContextValue("request_id", middleware.RequestIDKey),
//	)
//	log.DebugContext(ctx, "symbol sampled", logger.Position(3), logger.Symbol("k"))
//
// The attribute helpers in attr.go keep key names consistent. Helpers that
// take an error or an optional value return an empty slog.Attr for nil input,
// which slog drops, so call sites need no nil checks.
package logger
