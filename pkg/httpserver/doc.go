// Package httpserver runs an http.Handler with graceful shutdown on context
// cancellation or SIGINT/SIGTERM, configurable timeouts and slog logging.
//
//	srv := httpserver.NewFromConfig(cfg.HTTP, httpserver.WithLogger(log))
//	if err := srv.Run(ctx, fiscalapi.Router(enricher, log)); err != nil {
//		log.Error("server stopped", logger.Error(err))
//	}
//
// Run wraps listen and serve failures with ErrStart; Shutdown wraps
// http.Server.Shutdown failures with ErrShutdown. HealthCheckHandler serves
// liveness and readiness probes.
package httpserver
