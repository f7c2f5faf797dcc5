package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strings"

	"github.com/Aman-s12345/go-routegen/internal/config"
	"github.com/Aman-s12345/go-routegen/internal/emit"
	"github.com/Aman-s12345/go-routegen/internal/introspect"
	"github.com/Aman-s12345/go-routegen/internal/logging"
	"github.com/Aman-s12345/go-routegen/internal/registry"
	"github.com/Aman-s12345/go-routegen/internal/render"
	"github.com/Aman-s12345/go-routegen/internal/synth"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
)

type options struct {
	updateSnapshot bool
	stderr         io.Writer
}

func main() {
	// cmd line flags
	var (
		configPath     = flag.String("config", "", "Path to configuration file (.toml or .json)")
		projectPath    = flag.String("project", "", "Path to Go project (default .)")
		rootNamespace  = flag.String("root", "", "Root controller namespace, e.g. example.com/app/http/controllers")
		pattern        = flag.String("pattern", "", "Glob selecting controller source files (default **/*.go)")
		controllers    = flag.String("controllers", "", "Comma-separated controller names; disables discovery")
		snapshotPath   = flag.String("snapshot", "", "Registered routes snapshot (.yaml|.yml|.json)")
		outputPath     = flag.String("output", "", "Output file path, - for stdout (default -)")
		outputFormat   = flag.String("format", "", "Output format (laravel|go|yaml|json)")
		introspector   = flag.String("introspector", "", "Introspector (source|packages)")
		appendOutput   = flag.Bool("append", false, "Append to an existing routes file instead of replacing it")
		workers        = flag.Int("workers", 0, "Controllers processed concurrently")
		logLevel       = flag.String("log-level", "", "Log level (debug|info|warn|error)")
		logFormat      = flag.String("log-format", "", "Log format (text|json)")
		updateSnapshot = flag.Bool("update-snapshot", false, "Record generated routes in the snapshot file")
		help           = flag.Bool("h", false, "Show help")
	)
	flag.Parse()

	if *help {
		flag.PrintDefaults()
		return
	}

	_ = godotenv.Load()

	cfg := &config.Config{}
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
		cfg = loaded
	}

	overlay := &config.Config{
		RootNamespace:      *rootNamespace,
		OutputFormat:       *outputFormat,
		Introspector:       *introspector,
		ProjectPath:        *projectPath,
		ControllersPattern: *pattern,
		Controllers:        splitFlag(*controllers),
		SnapshotPath:       *snapshotPath,
		OutputPath:         *outputPath,
		Workers:            *workers,
		Logging: logging.Config{
			Level:  logging.Level(*logLevel),
			Format: logging.Format(*logFormat),
		},
	}
	if flagSet("append") {
		overlay.Append = appendOutput
	}
	// Flags beat environment variables, which beat the config file.
	if err := cfg.Finalize(overlay); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	opts := options{updateSnapshot: *updateSnapshot, stderr: os.Stderr}
	if err := run(ctx, cfg, opts); err != nil {
		log.Fatalf("Failed to generate routes: %v", err)
	}
}

// run executes one generation pass. Diagnostics are printed to
// opts.stderr and never fail the run.
func run(ctx context.Context, cfg *config.Config, opts options) error {
	if opts.updateSnapshot && cfg.SnapshotPath == "" {
		return fmt.Errorf("%w: update-snapshot requires a snapshot path", synth.ErrConfiguration)
	}
	if _, err := os.Stat(cfg.ProjectPath); errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("project path does not exist: %s", cfg.ProjectPath)
	}

	logger := logging.New(&cfg.Logging, opts.stderr).With("run", uuid.NewString())

	ti, err := newIntrospector(cfg)
	if err != nil {
		return err
	}

	names := cfg.Controllers
	if cfg.Discover() {
		names, err = introspect.Discover(cfg.ProjectPath, cfg.ControllersPattern)
		if err != nil {
			return fmt.Errorf("failed to discover controllers: %w", err)
		}
		logger.Info("controllers discovered", "pattern", cfg.ControllersPattern, "count", len(names))
	}

	snapshot := &registry.Snapshot{}
	if cfg.SnapshotPath != "" {
		snapshot, err = loadSnapshot(cfg.SnapshotPath, opts.updateSnapshot)
		if err != nil {
			return err
		}
		logger.Info("snapshot loaded", "path", cfg.SnapshotPath, "routes", len(snapshot.Routes))
	}

	renderer, err := render.New(render.Format(cfg.OutputFormat))
	if err != nil {
		return err
	}

	engine, err := synth.New(synth.Config{
		RootNamespace: cfg.RootNamespace,
		Introspector:  ti,
		IgnoreMethods: cfg.IgnoreMethods,
		Workers:       cfg.Workers,
		Logger:        logger,
	})
	if err != nil {
		return err
	}

	result, err := engine.Generate(ctx, names, snapshot)
	if err != nil {
		return err
	}
	for _, d := range result.Diagnostics {
		fmt.Fprintf(opts.stderr, "WARNING: %v\n", d)
	}

	if len(result.Groups) == 0 {
		logger.Info("no missing routes")
		return nil
	}

	text, err := renderer.Render(result.Groups)
	if err != nil {
		return err
	}
	if err := writeOutput(cfg, text); err != nil {
		return err
	}
	logger.Info("routes written",
		"output", cfg.OutputPath,
		"format", cfg.OutputFormat,
		"bytes", len(text))

	if opts.updateSnapshot {
		updated := snapshot.Append(synth.Registered(result.Groups)...)
		if err := registry.Save(cfg.SnapshotPath, updated); err != nil {
			return fmt.Errorf("failed to update snapshot: %w", err)
		}
		logger.Info("snapshot updated", "path", cfg.SnapshotPath, "routes", len(updated.Routes))
	}
	return nil
}

func newIntrospector(cfg *config.Config) (introspect.TypeIntrospector, error) {
	switch cfg.Introspector {
	case config.IntrospectorPackages:
		return introspect.NewPackages(cfg.ProjectPath, cfg.CacheSize)
	default:
		return introspect.NewSource(cfg.ProjectPath)
	}
}

// loadSnapshot reads the snapshot at path. A missing file is an empty
// snapshot when it is about to be created.
func loadSnapshot(path string, create bool) (*registry.Snapshot, error) {
	snapshot, err := registry.Load(path)
	if create && errors.Is(err, os.ErrNotExist) {
		return &registry.Snapshot{}, nil
	}
	if err != nil {
		return nil, err
	}
	return snapshot, nil
}

func writeOutput(cfg *config.Config, text []byte) error {
	if cfg.Appends() {
		return emit.Append(cfg.OutputPath, text)
	}
	return emit.Write(cfg.OutputPath, text)
}

// flagSet reports whether the named flag was given on the command line.
func flagSet(name string) bool {
	set := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == name {
			set = true
		}
	})
	return set
}

func splitFlag(v string) []string {
	var items []string
	for _, item := range strings.Split(v, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
