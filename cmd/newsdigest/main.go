package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/fatih/color"
	"github.com/go-pkgz/lgr"
	"github.com/jessevdk/go-flags"

	"github.com/worldmonitor/newsdigest/pkg/cache"
	"github.com/worldmonitor/newsdigest/pkg/classify"
	"github.com/worldmonitor/newsdigest/pkg/config"
	"github.com/worldmonitor/newsdigest/pkg/digest"
	"github.com/worldmonitor/newsdigest/pkg/feed"
	"github.com/worldmonitor/newsdigest/pkg/registry"
	"github.com/worldmonitor/newsdigest/pkg/scheduler"
	"github.com/worldmonitor/newsdigest/server"
)

// Opts with all CLI options
type Opts struct {
	Config string `short:"f" long:"config" env:"CONFIG" description:"config file (defaults used when omitted)"`
	Listen string `short:"l" long:"listen" env:"LISTEN" description:"listen address, overrides config"`

	// Common options
	Debug   bool `long:"dbg" env:"DEBUG" description:"debug mode"`
	Version bool `short:"V" long:"version" description:"show version info"`
	NoColor bool `long:"no-color" env:"NO_COLOR" description:"disable color output"`
}

var revision = "unknown"

func main() {
	var opts Opts
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	if opts.Version {
		fmt.Printf("Version: %s\nGolang: %s\n", revision, runtime.Version())
		os.Exit(0)
	}

	color.NoColor = opts.NoColor
	setupLog(opts.Debug)

	log.Printf("[INFO] starting newsdigest version %s", revision)

	ctx, cancel := context.WithCancel(context.Background())

	// handle termination signals
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
		<-sigChan
		log.Print("[INFO] termination signal received")
		cancel()
	}()

	err := run(ctx, opts)
	cancel()

	if err != nil {
		log.Printf("[ERROR] server failed: %v", err)
		os.Exit(1)
	}

	log.Print("[INFO] shutdown complete")
}

// run wires the engine together and serves until ctx is canceled
func run(ctx context.Context, opts Opts) error {
	cfg := config.Default()
	if opts.Config != "" {
		var err error
		if cfg, err = config.Load(opts.Config); err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
	}
	if opts.Listen != "" {
		cfg.Server.Listen = opts.Listen
	}

	reg := registry.New()
	if cfg.Registry.Path != "" {
		var err error
		if reg, err = registry.Load(cfg.Registry.Path); err != nil {
			return fmt.Errorf("failed to load feed registry: %w", err)
		}
		log.Printf("[INFO] feed registry loaded from %s", cfg.Registry.Path)
	}

	// a dead cache service degrades to uncached operation, never a failure
	var store feed.Store
	redisStore, err := cache.NewRedis(cfg.Redis.URL)
	if err != nil {
		log.Printf("[WARN] cache unavailable, running uncached: %v", err)
		store = cache.Noop{}
	} else {
		store = redisStore
		defer redisStore.Close()
	}

	dc := cfg.GetDigestConfig()

	parser := feed.NewParser(classify.New(), dc.ItemsPerFeed)
	fetcher := feed.NewFetcher(feed.FetcherConfig{
		Store:     store,
		Parser:    parser,
		Timeout:   dc.FeedTimeout,
		TTL:       dc.FeedTTL,
		UserAgent: dc.UserAgent,
	})

	sched := scheduler.New(fetcher, dc.BatchConcurrency, dc.Deadline)
	builder := digest.NewBuilder(reg, sched, dc.MaxPerCategory)
	svc := digest.NewService(builder, store, dc.DigestTTL, dc.FallbackCapacity)
	generator := feed.NewGenerator(cfg.GetBaseURL())

	srv := server.New(cfg, svc, generator, revision, opts.Debug)
	return srv.Run(ctx)
}

func setupLog(dbg bool, secs ...string) {
	logOpts := []lgr.Option{lgr.Out(io.Discard), lgr.Err(io.Discard)}
	if dbg {
		logOpts = []lgr.Option{lgr.Debug, lgr.Msec, lgr.LevelBraces, lgr.StackTraceOnError}
	}

	colorizer := lgr.Mapper{
		ErrorFunc:  func(s string) string { return color.New(color.FgHiRed).Sprint(s) },
		WarnFunc:   func(s string) string { return color.New(color.FgRed).Sprint(s) },
		InfoFunc:   func(s string) string { return color.New(color.FgYellow).Sprint(s) },
		DebugFunc:  func(s string) string { return color.New(color.FgWhite).Sprint(s) },
		CallerFunc: func(s string) string { return color.New(color.FgBlue).Sprint(s) },
		TimeFunc:   func(s string) string { return color.New(color.FgCyan).Sprint(s) },
	}
	logOpts = append(logOpts, lgr.Map(colorizer))
	if len(secs) > 0 {
		logOpts = append(logOpts, lgr.Secret(secs...))
	}
	lgr.SetupStdLogger(logOpts...)
	lgr.Setup(logOpts...)
}
