package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrymomot/fiscalkit/pkg/bankregistry"
	"github.com/dmitrymomot/fiscalkit/pkg/fiscal"
	"github.com/dmitrymomot/fiscalkit/pkg/fiscalapi"
	"github.com/dmitrymomot/fiscalkit/pkg/httpserver"
	"github.com/dmitrymomot/fiscalkit/pkg/logger"
)

func (a *app) validate(args []string) int {
	if len(args) != 2 {
		fmt.Fprintln(a.stderr, "usage: fiscal validate cf|piva|iban VALUE")
		return exitUsage
	}

	var out fiscal.Outcome
	switch strings.ToLower(args[0]) {
	case "cf", "codice-fiscale":
		out = fiscal.ValidateCodiceFiscale(args[1])
	case "piva", "partita-iva":
		out = fiscal.ValidatePartitaIVA(args[1])
	case "iban":
		out = fiscal.ValidateIBAN(args[1])
	default:
		fmt.Fprintf(a.stderr, "unknown identifier kind %q\n", args[0])
		return exitUsage
	}

	if !out.Valid {
		fmt.Fprintf(a.stdout, "invalid: %s\n", out.Kind)
		return exitInvalid
	}
	fmt.Fprintln(a.stdout, "valid")
	return exitOK
}

func (a *app) derive(args []string) int {
	fs := flag.NewFlagSet("derive", flag.ContinueOnError)
	fs.SetOutput(a.stderr)
	surname := fs.String("surname", "", "surname")
	name := fs.String("name", "", "given name")
	birth := fs.String("birth", "", "birth date, YYYY-MM-DD")
	sex := fs.String("sex", "", "M or F")
	municipality := fs.String("municipality", "", "cadastral code of the birth place")
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}

	facts := fiscal.PersonalIdentityFacts{
		Surname:      *surname,
		GivenName:    *name,
		Sex:          fiscal.ParseSex(*sex),
		Municipality: *municipality,
	}
	if *birth != "" {
		d, err := time.Parse("2006-01-02", *birth)
		if err != nil {
			fmt.Fprintf(a.stderr, "invalid -birth %q: want YYYY-MM-DD\n", *birth)
			return exitUsage
		}
		facts.BirthDate = d
	}

	fmt.Fprintln(a.stdout, fiscal.Derive(facts))
	return exitOK
}

func (a *app) iban(ctx context.Context, args []string) int {
	if len(args) != 1 {
		fmt.Fprintln(a.stderr, "usage: fiscal iban VALUE")
		return exitUsage
	}

	e := bankregistry.NewEnricher(a.registry, bankregistry.WithLogger(a.log))
	res, err := e.Enrich(ctx, args[0])
	if err != nil && !errors.Is(err, bankregistry.ErrInvalidIBAN) {
		fmt.Fprintln(a.stderr, err)
		return exitUsage
	}

	c := res.Components
	if c.CountryCode != "" {
		fmt.Fprintf(a.stdout, "iban     %s\n", c)
		fmt.Fprintf(a.stdout, "cin      %s\n", c.CIN)
		fmt.Fprintf(a.stdout, "abi      %s\n", c.BankCode)
		fmt.Fprintf(a.stdout, "cab      %s\n", c.BranchCode)
		fmt.Fprintf(a.stdout, "account  %s\n", c.AccountNumber)
	}
	if res.BankFound {
		fmt.Fprintf(a.stdout, "bank     %s\n", res.Bank.Name)
		if res.Bank.BIC != "" {
			fmt.Fprintf(a.stdout, "bic      %s\n", res.Bank.BIC)
		}
	}

	if !res.Outcome.Valid {
		fmt.Fprintf(a.stdout, "invalid: %s\n", res.Outcome.Kind)
		return exitInvalid
	}
	return exitOK
}

func (a *app) serve(ctx context.Context) int {
	log := logger.New(append(a.logOpts,
		logger.WithContextExtractors(fiscalapi.RequestIDExtractor()),
	)...)
	logger.SetAsDefault(log)

	enricher := bankregistry.NewEnricher(a.registry, bankregistry.WithLogger(log))
	srv := httpserver.NewFromConfig(a.cfg.HTTP, httpserver.WithLogger(log))
	if err := srv.Run(ctx, fiscalapi.Router(enricher, fiscalapi.WithLogger(log))); err != nil {
		log.Error("server stopped", logger.Error(err))
		return exitFailure
	}
	return exitOK
}
