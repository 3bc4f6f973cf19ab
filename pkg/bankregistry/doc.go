// Package bankregistry resolves the ABI code of an Italian IBAN to the bank
// that issued it.
//
// The fiscal package only guarantees that an IBAN is well formed; naming the
// bank is a separate, best-effort step. Registry is the lookup contract.
// Static is an in-memory table loaded from YAML (a default table of major
// banks is embedded), Cached adds an LRU in front of any Registry, and
// Enricher ties validation, component extraction and lookup together.
//
//	reg, err := bankregistry.Default()
//	if err != nil {
//		return err
//	}
//	enricher := bankregistry.NewEnricher(bankregistry.NewCached(reg, 0),
//		bankregistry.WithLogger(log),
//	)
//	res, err := enricher.Enrich(ctx, "IT60X0542811101000000123456")
//	if err != nil {
//		return err // malformed IBAN
//	}
//	if res.BankFound {
//		fmt.Println(res.Bank.Name) // UBI Banca
//	}
//
// Lookup failures are logged and leave BankFound false; they never
// invalidate an IBAN.
package bankregistry
