// Command siman runs simulated annealing against the demo problems bundled
// with this module: a TSP instance loaded from a TSPLIB file, or an
// inversion-count sort of a shuffled sequence.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"

	"github.com/anneal-go/siman"
	"github.com/anneal-go/siman/moves/invsort"
	tspmove "github.com/anneal-go/siman/moves/tsp"
	"github.com/anneal-go/siman/runstore"
	"github.com/anneal-go/siman/tsplib"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "siman:", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: siman <anneal tsp FILE | anneal sort N | history>")
	}

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
		With().Timestamp().Logger()

	store, err := runstore.NewStore()
	if err != nil {
		return fmt.Errorf("create run store: %w", err)
	}

	switch args[0] {
	case "anneal":
		return runAnneal(args[1:], log, store)
	case "history":
		return runHistory(args[1:], store)
	default:
		return fmt.Errorf("unknown subcommand %q", args[0])
	}
}

func runAnneal(args []string, log zerolog.Logger, store *runstore.Store) error {
	fs := pflag.NewFlagSet("anneal", pflag.ContinueOnError)
	seed := fs.Uint32("seed", 5241999, "RNG seed")
	preset := fs.String("preset", "", "config preset: default, combinatorial_tour, ordering_search")
	debug := fs.Bool("debug", false, "enable contract assertions")
	if err := fs.Parse(args); err != nil {
		return err
	}
	siman.Debug = *debug

	rest := fs.Args()
	if len(rest) < 1 {
		return fmt.Errorf("usage: siman anneal <tsp FILE | sort N>")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	switch rest[0] {
	case "tsp":
		if len(rest) < 2 {
			return fmt.Errorf("usage: siman anneal tsp FILE")
		}
		return annealTSP(ctx, rest[1], *seed, *preset, log, store)
	case "sort":
		if len(rest) < 2 {
			return fmt.Errorf("usage: siman anneal sort N")
		}
		var n int
		if _, err := fmt.Sscanf(rest[1], "%d", &n); err != nil {
			return fmt.Errorf("invalid N %q: %w", rest[1], err)
		}
		return annealSort(ctx, n, *seed, *preset, log, store)
	default:
		return fmt.Errorf("unknown anneal kind %q", rest[0])
	}
}

func configFor(preset string) (siman.AnnealerConfig, error) {
	if preset == "" {
		return siman.NewAnnealerConfig(), nil
	}
	return siman.NewPresetConfig(siman.ConfigPreset(preset))
}

func annealTSP(ctx context.Context, path string, seed uint32, preset string, log zerolog.Logger, store *runstore.Store) error {
	inst, err := tsplib.LoadFile(path)
	if err != nil {
		return err
	}

	mgr, err := tspmove.NewManager(inst, seed)
	if err != nil {
		return err
	}

	cfg, err := configFor(preset)
	if err != nil {
		return err
	}
	cfg.RNGSeed = seed

	log.Info().Str("instance", inst.Name).Int("cities", inst.Size()).Msg("starting anneal")

	initial := mgr.Score()
	start := time.Now()

	a := siman.NewAnnealer[tspmove.Move, float64](cfg, siman.WriterSink{W: os.Stdout})
	if err := a.Optimize(ctx, mgr); err != nil && ctx.Err() == nil {
		return err
	}

	duration := time.Since(start)
	log.Info().Float64("initial_cost", initial).Float64("final_cost", mgr.Score()).
		Dur("duration", duration).Msg("anneal finished")

	_, err = store.Record(runstore.Record{
		ProblemKind: "tsp",
		Seed:        seed,
		InitialCost: initial,
		BestCost:    mgr.Score(),
		FinalCost:   mgr.Score(),
		Duration:    duration,
	})
	return err
}

func annealSort(ctx context.Context, n int, seed uint32, preset string, log zerolog.Logger, store *runstore.Store) error {
	mgr, err := invsort.NewManager(n, seed)
	if err != nil {
		return err
	}

	cfg, err := configFor(preset)
	if err != nil {
		return err
	}
	cfg.RNGSeed = seed

	log.Info().Int("n", n).Msg("starting anneal")

	initial := mgr.Score()
	start := time.Now()

	a := siman.NewAnnealer[invsort.Move, int](cfg, siman.WriterSink{W: os.Stdout})
	if err := a.Optimize(ctx, mgr); err != nil && ctx.Err() == nil {
		return err
	}
	annealed := mgr.Score()

	lo := siman.NewLocalOpt[invsort.Move, int](nil)
	if err := lo.Optimize(ctx, mgr); err != nil && ctx.Err() == nil {
		return err
	}

	duration := time.Since(start)
	log.Info().Int("initial_cost", initial).Int("annealed_cost", annealed).Int("final_cost", mgr.Score()).
		Dur("duration", duration).Msg("anneal finished")

	_, err = store.Record(runstore.Record{
		ProblemKind: "invsort",
		Seed:        seed,
		InitialCost: float64(initial),
		BestCost:    float64(mgr.Score()),
		FinalCost:   float64(mgr.Score()),
		Duration:    duration,
	})
	return err
}

// runHistory lists runs recorded in store during this process's lifetime.
// The store is in-memory only (see package runstore), so a fresh CLI
// invocation always starts empty; this subcommand is mainly useful when
// an invocation records more than one run (e.g. future multi-seed
// batch modes) or from a test harness driving the package directly.
func runHistory(args []string, store *runstore.Store) error {
	fs := pflag.NewFlagSet("history", pflag.ContinueOnError)
	kind := fs.String("kind", "", "filter by problem kind")
	if err := fs.Parse(args); err != nil {
		return err
	}

	var (
		records []runstore.Record
		err     error
	)
	if *kind != "" {
		records, err = store.ByProblemKind(*kind)
	} else {
		records, err = store.All()
	}
	if err != nil {
		return err
	}

	for _, r := range records {
		fmt.Printf("%s  kind=%-8s seed=%-10d initial=%-12.4f best=%-12.4f duration=%s\n",
			r.ID, r.ProblemKind, r.Seed, r.InitialCost, r.BestCost, r.Duration)
	}
	return nil
}
