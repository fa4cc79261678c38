// Command routegen compiles a declarative route-table file into the Go
// source that builds the router. It is meant to run as a pre-build step,
// e.g. from //go:generate or a Makefile target.
//
// Usage:
//
//	routegen -config routegen.toml
//	routegen -src app.routes -pkg web -router-import example.com/app/routing
//	routegen -src app.routes -expr
//	routegen -config routegen.toml -watch
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"github.com/rohanthewiz/routegen"
)

func mainImpl() error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	configPath := flag.String("config", "", "path to routegen.toml")
	src := flag.String("src", "", "route-table source file (overrides config)")
	out := flag.String("o", "", "output file (overrides config)")
	pkg := flag.String("pkg", "", "package clause for the generated file")
	funcName := flag.String("func", "", "generated function name (default BuildRoutes)")
	routerImport := flag.String("router-import", "", "router package import path")
	routerAlias := flag.String("router-alias", "", "identifier for the router package in emitted code")
	routerType := flag.String("router-type", "", "router builder type name (default Router)")
	imports := flag.String("imports", "", "comma-separated extra imports for handler packages")
	expr := flag.Bool("expr", false, "print the builder-chain expression to stdout instead of writing a file")
	doc := flag.String("doc", "", "also write an HTML route summary to this file")
	watch := flag.Bool("watch", false, "regenerate whenever the source changes")
	logLevel := flag.String("log-level", "info", "log level (debug, info, warn, error)")
	flag.Parse()
	if args := flag.Args(); len(args) > 0 {
		return fmt.Errorf("unexpected arguments: %v", args)
	}

	initLogging(*logLevel)

	cfg, err := loadConfig(*configPath)
	if err != nil {
		return err
	}

	// Flags override the config file.
	if *src != "" {
		cfg.Source = *src
	}
	if *out != "" {
		cfg.Output = *out
	}
	if *pkg != "" {
		cfg.Package = *pkg
	}
	if *funcName != "" {
		cfg.Func = *funcName
	}
	if *routerImport != "" {
		cfg.Router.Import = *routerImport
	}
	if *routerAlias != "" {
		cfg.Router.Alias = *routerAlias
	}
	if *routerType != "" {
		cfg.Router.Type = *routerType
	}
	if *imports != "" {
		for _, imp := range strings.Split(*imports, ",") {
			if imp = strings.TrimSpace(imp); imp != "" {
				cfg.Imports = append(cfg.Imports, imp)
			}
		}
	}
	cfg.LoadDefaults()
	if err = cfg.Validate(); err != nil {
		return err
	}

	if cfg.Source == "" {
		return errors.New("a route source is required (-src or config)")
	}

	if *expr {
		return printExpr(*cfg)
	}

	generate := func() error { return generateAll(*cfg, *doc) }
	if err = generate(); err != nil {
		return err
	}
	slog.Info("generated", "source", cfg.Source, "output", cfg.Output)

	if *watch {
		err = routegen.Watch(ctx, cfg.Source, generate)
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	}
	return nil
}

// printExpr compiles the source and prints the bare chain expression.
func printExpr(cfg routegen.Config) error {
	data, err := os.ReadFile(cfg.Source)
	if err != nil {
		return err
	}
	chain, err := routegen.Compile(string(data), cfg)
	if err != nil {
		return err
	}
	fmt.Println(chain)
	return nil
}

// generateAll writes the generated Go file, plus the HTML summary when
// requested. Parse failures abort with no partial output.
func generateAll(cfg routegen.Config, docPath string) error {
	if err := routegen.WriteFile(cfg); err != nil {
		return err
	}
	if docPath == "" {
		return nil
	}

	data, err := os.ReadFile(cfg.Source)
	if err != nil {
		return err
	}
	table, err := routegen.Parse(string(data))
	if err != nil {
		return err
	}
	return os.WriteFile(docPath, []byte(routegen.RouteDocs(table, cfg.Source)), 0644)
}

func loadConfig(path string) (*routegen.Config, error) {
	if path == "" {
		// No config file; everything comes from flags.
		return &routegen.Config{}, nil
	}
	return routegen.LoadConfig(path)
}

// initLogging configures slog with tint for colored, concise output on
// stderr, keeping stdout clean for -expr.
func initLogging(level string) {
	ll := &slog.LevelVar{}
	switch level {
	case "debug":
		ll.Set(slog.LevelDebug)
	case "warn":
		ll.Set(slog.LevelWarn)
	case "error":
		ll.Set(slog.LevelError)
	}
	slog.SetDefault(slog.New(tint.NewHandler(colorable.NewColorable(os.Stderr), &tint.Options{
		Level:      ll,
		TimeFormat: "15:04:05",
		NoColor:    !isatty.IsTerminal(os.Stderr.Fd()),
	})))
}

func main() {
	if err := mainImpl(); err != nil && !errors.Is(err, context.Canceled) {
		fmt.Fprintf(os.Stderr, "routegen: %v\n", err)
		os.Exit(1)
	}
}
