// Package fiscalapi exposes the fiscal engine over HTTP.
//
// Routes:
//
//	POST /v1/validate/{kind}   kind is codice-fiscale, partita-iva or iban
//	POST /v1/derive            derive a codice fiscale from personal data
//	GET  /v1/iban/{iban}       split an IBAN and resolve its bank
//	GET  /healthz              liveness probe
//
// Every response carries an X-Request-ID header. A client supplied id is
// reused when it is well formed, otherwise a new UUID is generated.
//
// Usage:
//
//	reg, _ := bankregistry.Default()
//	enricher := bankregistry.NewEnricher(bankregistry.NewCached(reg, 0))
//	srv := httpserver.New(httpserver.WithAddr(":8080"))
//	_ = srv.Run(ctx, fiscalapi.Router(enricher, fiscalapi.WithLogger(log)))
package fiscalapi
