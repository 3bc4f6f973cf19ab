// Command fiscal validates and derives Italian fiscal identifiers and can
// serve the same operations over HTTP.
//
// Usage:
//
//	fiscal validate cf|piva|iban VALUE
//	fiscal derive -surname S -name N [-birth YYYY-MM-DD] [-sex M|F] [-municipality CODE]
//	fiscal iban VALUE
//	fiscal serve
//
// Configuration is read from the environment and an optional .env file.
// Exit status is 1 when an identifier is invalid, 2 on usage errors and 3
// when the server fails.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrymomot/fiscalkit/pkg/bankregistry"
	"github.com/dmitrymomot/fiscalkit/pkg/config"
	"github.com/dmitrymomot/fiscalkit/pkg/httpserver"
	"github.com/dmitrymomot/fiscalkit/pkg/logger"
)

const (
	exitOK      = 0
	exitInvalid = 1
	exitUsage   = 2
	exitFailure = 3
)

type appConfig struct {
	Env           string `env:"APP_ENV" envDefault:"development"`
	Name          string `env:"APP_NAME" envDefault:"fiscal"`
	LogLevel      string `env:"LOG_LEVEL" envDefault:"info"`
	BankRegistry  string `env:"FISCAL_BANK_REGISTRY"`
	BankCacheSize int    `env:"FISCAL_BANK_CACHE_SIZE" envDefault:"512"`

	HTTP httpserver.Config
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// app carries what every command needs.
type app struct {
	cfg      appConfig
	log      *slog.Logger
	logOpts  []logger.Option
	registry bankregistry.Registry
	stdout   io.Writer
	stderr   io.Writer
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		usage(stderr)
		return exitUsage
	}

	var cfg appConfig
	if err := config.Load(&cfg); err != nil {
		fmt.Fprintln(stderr, err)
		return exitUsage
	}

	a, err := newApp(cfg, stdout, stderr)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitUsage
	}

	switch args[0] {
	case "validate":
		return a.validate(args[1:])
	case "derive":
		return a.derive(args[1:])
	case "iban":
		return a.iban(ctx, args[1:])
	case "serve":
		return a.serve(ctx)
	case "help", "-h", "--help":
		usage(stdout)
		return exitOK
	default:
		fmt.Fprintf(stderr, "unknown command %q\n", args[0])
		usage(stderr)
		return exitUsage
	}
}

func newApp(cfg appConfig, stdout, stderr io.Writer) (*app, error) {
	level, err := logger.ParseLevel(cfg.LogLevel, slog.LevelInfo)
	if err != nil {
		return nil, err
	}
	logOpts := []logger.Option{
		logger.WithEnvironment(cfg.Env, cfg.Name),
		logger.WithLevel(level),
		logger.WithOutput(stderr),
	}

	var reg *bankregistry.Static
	if cfg.BankRegistry != "" {
		reg, err = bankregistry.LoadFile(cfg.BankRegistry)
	} else {
		reg, err = bankregistry.Default()
	}
	if err != nil {
		return nil, err
	}

	return &app{
		cfg:      cfg,
		log:      logger.New(logOpts...),
		logOpts:  logOpts,
		registry: bankregistry.NewCached(reg, cfg.BankCacheSize),
		stdout:   stdout,
		stderr:   stderr,
	}, nil
}

func usage(w io.Writer) {
	fmt.Fprint(w, `usage:
  fiscal validate cf|piva|iban VALUE
  fiscal derive -surname S -name N [-birth YYYY-MM-DD] [-sex M|F] [-municipality CODE]
  fiscal iban VALUE
  fiscal serve
`)
}
