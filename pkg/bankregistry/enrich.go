package bankregistry

import (
	"context"
	"errors"
	"log/slog"

	"github.com/dmitrymomot/fiscalkit/pkg/fiscal"
	"github.com/dmitrymomot/fiscalkit/pkg/logger"
)

// Enrichment is an IBAN split into components plus, when the lookup
// succeeded, the bank that issued it.
type Enrichment struct {
	Outcome    fiscal.Outcome
	Components fiscal.IBANComponents
	Bank       Bank
	BankFound  bool
}

// Enricher resolves the bank behind an IBAN. Lookup failures never turn a
// valid IBAN into an error: they are logged and reported through BankFound.
type Enricher struct {
	registry Registry
	log      *slog.Logger
}

// EnricherOption configures an Enricher.
type EnricherOption func(*Enricher)

// WithLogger sets the logger used to report failed lookups.
func WithLogger(l *slog.Logger) EnricherOption {
	return func(e *Enricher) {
		if l != nil {
			e.log = l
		}
	}
}

func NewEnricher(registry Registry, opts ...EnricherOption) *Enricher {
	e := &Enricher{registry: registry, log: logger.Discard()}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Enrich validates iban and looks up its ABI code. An empty iban yields a
// zero Enrichment with a valid outcome. An invalid iban returns
// ErrInvalidIBAN joined with the outcome's sentinel error and no lookup is
// made; if only the checksum is wrong, Components is still filled in.
func (e *Enricher) Enrich(ctx context.Context, iban string) (Enrichment, error) {
	out := fiscal.ValidateIBAN(iban)
	if fiscal.Normalize(iban) == "" {
		return Enrichment{Outcome: out}, nil
	}

	comp, _ := fiscal.ExtractIBANComponents(iban)
	res := Enrichment{Outcome: out, Components: comp}
	if !out.Valid {
		return res, errors.Join(ErrInvalidIBAN, out.Err())
	}

	bank, err := e.registry.Lookup(ctx, comp.BankCode)
	if err != nil {
		level := slog.LevelWarn
		if errors.Is(err, ErrBankNotFound) {
			level = slog.LevelDebug
		}
		e.log.Log(ctx, level, "bank lookup failed",
			logger.Component("bankregistry"),
			logger.Identifier("iban", iban),
			logger.BankCode(comp.BankCode),
			logger.Error(err),
		)
		return res, nil
	}

	res.Bank = bank
	res.BankFound = true
	return res, nil
}
