// Command ppcalc is a thin demo CLI over the diffcalc/perfcalc core: load a
// JSON beatmap fixture, run the difficulty or performance pipeline, print a
// table. It exists so the core has a runnable entry point, not as a real
// beatmap-listing/scoring client (see beatmap.FromJSON's doc comment for the
// format it accepts).
package main

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})

	if err := rootCmd.Execute(); err != nil {
		log.Error().Err(err).Msg("ppcalc failed")
		os.Exit(1)
	}
}
