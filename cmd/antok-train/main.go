// Command antok-train learns a subword vocabulary from a text corpus and
// writes it as a scored TSV file.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/hupe1980/antok"
	"github.com/hupe1980/antok/colony"
	"github.com/hupe1980/antok/corpus"
	"github.com/hupe1980/antok/vocab"
)

func main() {
	var (
		corpusPath   = flag.String("corpus", "AllCombined.txt", "path to the training corpus")
		fallbackPath = flag.String("fallback", "sherlock.txt", "fallback corpus when the primary is missing")
		outPath      = flag.String("out", "tokens.txt", "output vocabulary file (.zst/.lz4 for compression)")
		generations  = flag.Int("generations", antok.DefaultGenerations, "number of training generations")
		chunkSize    = flag.Int("chunk-size", 1000, "chunk size in bytes for monolithic corpora")
		keepRatio    = flag.Float64("keep-ratio", colony.DefaultOptions.KeepRatio, "fraction of tokens surviving each selection")
		noDecay      = flag.Bool("no-decay", false, "disable survivor decay during selection")
		seed         = flag.Int64("seed", 0, "fixed random seed (0 seeds from the clock)")
		verbose      = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := antok.NewTextLogger(level)

	ctx := context.Background()

	text, err := corpus.Fallback(
		corpus.LocalSource{Path: *corpusPath},
		corpus.LocalSource{Path: *fallbackPath},
	).Load(ctx)
	if err != nil {
		logger.Error("failed to load corpus", "error", err)
		os.Exit(1)
	}

	segments, err := corpus.Split(text, func(o *corpus.SplitOptions) {
		o.ChunkSize = *chunkSize
	})
	if err != nil {
		logger.Error("failed to segment corpus", "error", err)
		os.Exit(1)
	}

	logger.Info("corpus loaded", "bytes", len(text), "segments", len(segments))

	opts := []antok.Option{
		antok.WithGenerations(*generations),
		antok.WithLogger(logger),
		antok.WithColonyOptions(func(o *colony.Options) {
			o.KeepRatio = *keepRatio
			o.DecaySurvivors = !*noDecay
		}),
	}
	if *seed != 0 {
		opts = append(opts, antok.WithRandomSeed(*seed))
	}

	trainer, err := antok.New(segments, opts...)
	if err != nil {
		logger.Error("failed to create trainer", "error", err)
		os.Exit(1)
	}
	defer trainer.Close()

	start := time.Now()
	if err := trainer.Train(ctx); err != nil {
		logger.Error("training failed", "error", err)
		os.Exit(1)
	}

	v := trainer.Vocabulary()

	fmt.Println("\nTop 10 tokens:")
	for _, e := range v.Top(10) {
		fmt.Printf("%q: %.2f\n", e.Token, e.Score)
	}

	if err := vocab.SaveFile(*outPath, v); err != nil {
		logger.Error("failed to save vocabulary", "path", *outPath, "error", err)
		os.Exit(1)
	}

	logger.Info("vocabulary saved",
		"path", *outPath,
		"tokens", v.Len(),
		"elapsed", time.Since(start),
	)
}
