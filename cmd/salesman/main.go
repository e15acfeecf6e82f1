// Command salesman solves travelling-salesman instances loaded from CSV
// datasets or generated at random.
//
// Usage:
//
//	salesman [-config file] [-data dir] [-dataset name] [-algo name | -compare]
//	         [-random n] [-seed s] [-time-limit d]
//
// Without -dataset or -random, and with stdin attached to a terminal, an
// interactive menu lists the datasets under the data directory and the
// available algorithms.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/go-kit/kit/log"
	"github.com/go-kit/kit/log/level"
	"github.com/natefinch/lumberjack"

	"github.com/katalvlaran/salesman/builder"
	"github.com/katalvlaran/salesman/config"
	"github.com/katalvlaran/salesman/graph"
	"github.com/katalvlaran/salesman/loader"
	"github.com/katalvlaran/salesman/runner"
	"github.com/katalvlaran/salesman/tsp"
)

// randomSide is the square side used for -random instances.
const randomSide = 1000

var errUsage = errors.New("usage")

func main() {
	var (
		configPath = flag.String("config", "", "configuration file (yaml, toml or json)")
		dataDir    = flag.String("data", "", "directory holding the datasets")
		dataset    = flag.String("dataset", "", "dataset name under the data directory, or a path")
		algo       = flag.String("algo", "", "algorithm: branch-and-bound, double-tree or nearest-neighbour-swap")
		compare    = flag.Bool("compare", false, "run every algorithm and compare")
		random     = flag.Int("random", 0, "solve a random Euclidean instance with n cities")
		seed       = flag.Int64("seed", 0, "RNG seed for -random and the swap search")
		timeLimit  = flag.Duration("time-limit", 0, "branch-and-bound budget (overrides config)")
	)
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "data":
			cfg.DataDir = *dataDir
		case "algo":
			cfg.Algorithm = *algo
		case "seed":
			cfg.Seed = *seed
		case "time-limit":
			cfg.TimeLimit = *timeLimit
		}
	})
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	logger, closeLog := newLogger(cfg.Log)
	defer closeLog()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a := app{
		cfg:    cfg,
		logger: logger,
		out:    os.Stdout,
		svc:    runner.NewLoggingMiddleware(runner.New(cfg.SolverOptions()), log.With(logger, "component", "runner")),
	}
	level.Info(logger).Log("msg", "salesman started", "env", cfg.Env, "data", cfg.DataDir)

	switch {
	case *random > 0:
		err = a.runRandom(ctx, *random, *compare)
	case *dataset != "":
		err = a.runDataset(ctx, *dataset, *compare)
	case isTerminal(os.Stdin):
		err = newMenu(os.Stdin, os.Stdout, a).run(ctx)
	default:
		err = errUsage
	}
	if errors.Is(err, errUsage) {
		flag.Usage()
		os.Exit(2)
	}
	if err != nil {
		level.Error(logger).Log("exit", err)
		os.Exit(1)
	}
	level.Info(logger).Log("msg", "finished")
}

// newLogger builds the logfmt logger, rotating into cfg.File when set.
func newLogger(cfg config.Log) (log.Logger, func()) {
	var w io.Writer = os.Stderr
	closer := func() {}
	if cfg.File != "" {
		lj := &lumberjack.Logger{
			Filename: cfg.File,
			MaxSize:  cfg.MaxSizeMB, // megabytes
			MaxAge:   cfg.MaxAgeDays,
		}
		w = lj
		closer = func() { _ = lj.Close() }
	}

	var logger log.Logger
	{
		logger = log.NewLogfmtLogger(log.NewSyncWriter(w))
		logger = log.With(logger, "ts", log.DefaultTimestampUTC)
		logger = log.With(logger, "caller", log.DefaultCaller)
		logger = level.NewFilter(logger, levelOption(cfg.Level))
	}

	return logger, closer
}

func levelOption(name string) level.Option {
	switch name {
	case "debug":
		return level.AllowDebug()
	case "warn":
		return level.AllowWarn()
	case "error":
		return level.AllowError()
	default:
		return level.AllowInfo()
	}
}

func isTerminal(f *os.File) bool {
	fi, err := f.Stat()

	return err == nil && fi.Mode()&os.ModeCharDevice != 0
}

// app carries what every run mode needs.
type app struct {
	cfg    config.Config
	logger log.Logger
	out    io.Writer
	svc    runner.Service
}

func (a app) runRandom(ctx context.Context, n int, compare bool) error {
	g, err := builder.BuildGraph(
		[]builder.BuilderOption{builder.WithSeed(a.cfg.Seed)},
		builder.Euclidean(n, randomSide),
	)
	if err != nil {
		return err
	}

	return a.solve(ctx, fmt.Sprintf("random-%d", n), g, compare)
}

// runDataset resolves name under the data directory first, then as a path.
func (a app) runDataset(ctx context.Context, name string, compare bool) error {
	d, err := loader.Open(filepath.Join(a.cfg.DataDir, name))
	if err != nil {
		if d, err = loader.Open(name); err != nil {
			return err
		}
	}

	return a.solveDataset(ctx, d, a.cfg.SolverAlgorithm(), compare)
}

func (a app) solveDataset(ctx context.Context, d loader.Dataset, algo tsp.Algorithm, compare bool) error {
	begin := time.Now()
	g, err := d.Load()
	if err != nil {
		return err
	}
	level.Debug(a.logger).Log("msg", "dataset loaded", "name", d.Name, "took", time.Since(begin))
	if compare {
		return a.compare(ctx, d.Name, g)
	}

	return a.solveOne(ctx, d.Name, g, algo)
}

func (a app) solve(ctx context.Context, name string, g *graph.Graph, compare bool) error {
	if compare {
		return a.compare(ctx, name, g)
	}

	return a.solveOne(ctx, name, g, a.cfg.SolverAlgorithm())
}

func (a app) solveOne(ctx context.Context, name string, g *graph.Graph, algo tsp.Algorithm) error {
	res, err := a.svc.Solve(ctx, g, algo)
	if f := solverFailure(err); f != nil {
		return f
	}
	writeHeader(a.out, name, g)
	writeResult(a.out, g, res, err)

	return nil
}

func (a app) compare(ctx context.Context, name string, g *graph.Graph) error {
	out, err := runner.Compare(ctx, a.svc, g, tsp.Algorithms())
	if err != nil {
		return err
	}
	writeHeader(a.out, name, g)
	writeComparison(a.out, out)

	return nil
}

// solverFailure drops the errors that the report already explains.
func solverFailure(err error) error {
	switch {
	case err == nil,
		errors.Is(err, tsp.ErrTimeLimit),
		errors.Is(err, tsp.ErrNoHamiltonianCycle),
		errors.Is(err, tsp.ErrNoTourFound),
		errors.Is(err, tsp.ErrDisconnected):
		return nil
	}

	return err
}
