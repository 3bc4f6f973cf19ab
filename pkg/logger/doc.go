// Package logger builds *slog.Logger instances through functional options and
// provides attribute helpers with consistent key names for fiscal identifier
// services.
//
// New picks a text or JSON handler, attaches static attributes and wraps the
// result with LogHandlerDecorator, which runs registered ContextExtractor
// callbacks (for example a request id lookup) on every record.
//
//	log := logger.New(
//		logger.WithEnvironment("production", "fiscal"),
//		logger.WithContextValue("request_id", requestIDKey),
//	)
//	log.WarnContext(ctx, "bank lookup failed",
//		logger.Identifier("iban", iban),
//		logger.BankCode(abi),
//		logger.Error(err),
//	)
//
// Identifier masks the value with fiscal.Mask, so tax codes and account
// numbers never reach the logs in full. Error and ErrorKind return an empty
// Attr for nil errors and fiscal.KindNone, which slog silently drops.
package logger
