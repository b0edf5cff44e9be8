// Command listdemo walks through the singly-linked list operations, the card
// deck and the locked list, logging what each step does.
package main

import (
	"context"
	"flag"
	"os"

	"github.com/Mangofish369/CSC148-Labs/log"
	"go.uber.org/multierr"
	"go.uber.org/zap/zapcore"
)

type config struct {
	seed    int64
	workers int
}

func main() {
	dev := flag.Bool("dev", false, "human-readable console logging")
	level := zapcore.InfoLevel
	flag.Var(&level, "level", "minimum log level")
	cfg := config{}
	flag.Int64Var(&cfg.seed, "seed", 1, "seed for the deck shuffle")
	flag.IntVar(&cfg.workers, "workers", 4, "routines sharing the locked list")
	flag.Parse()

	if cfg.workers < 1 {
		cfg.workers = 1
	}

	log.InitDefault(log.NewInput{
		Name:          "listdemo",
		Level:         level,
		IsDevelopment: *dev,
	})
	log.Infow("starting", "seed", cfg.seed, "workers", cfg.workers)
	logger := log.With("run", "listdemo")
	defer logger.Sync()

	err := runScenarios(log.LogContext(context.Background(), logger), cfg)
	if err != nil {
		errs := multierr.Errors(err)
		log.Errorw("scenarios failed", "failures", len(errs))
		log.Error(errs[0])
		logger.Sync()
		os.Exit(1)
	}
	log.Infow("all scenarios passed")
}
