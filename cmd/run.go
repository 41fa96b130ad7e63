package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/abhisek/dosewise/internal/app"
	"github.com/abhisek/dosewise/internal/catalog"
	"github.com/abhisek/dosewise/internal/condition"
	"github.com/abhisek/dosewise/internal/questions"
	"github.com/abhisek/dosewise/internal/randutil"
	"github.com/abhisek/dosewise/internal/scenario"
	"github.com/abhisek/dosewise/internal/screens/session"
)

// runApp builds the engine from flags and launches the TUI.
func runApp(cmd *cobra.Command) error {
	seed, _ := cmd.Flags().GetUint64("seed")
	verbose, _ := cmd.Flags().GetBool("verbose")

	log := buildLogger(verbose)

	cat, err := catalog.Default()
	if err != nil {
		return fmt.Errorf("load medication catalog: %w", err)
	}

	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	log.Debug().Uint64("seed", seed).Msg("engine seeded")

	rng := randutil.New(seed)
	gen := scenario.NewGenerator(cat, rng, log)

	curated := make([]*scenario.Scenario, 0, condition.Count())
	for _, tmpl := range condition.All() {
		curated = append(curated, gen.Generate(tmpl))
	}
	seq := scenario.NewSequencer(gen, rng, curated, scenario.DefaultGeneratedPerCycle)

	opts := app.Options{
		Catalog: cat,
		Session: session.Deps{
			Sequencer: seq,
			Questions: questions.New(rng, questions.Config{}),
			RNG:       rng,
			Log:       log,
		},
	}

	return app.Run(opts)
}

// buildLogger returns a console logger on stderr when verbose, and a
// no-op logger otherwise so the TUI stays clean.
func buildLogger(verbose bool) zerolog.Logger {
	if !verbose {
		return zerolog.Nop()
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(zerolog.DebugLevel).
		With().Timestamp().Logger()
}
