// Package antok learns a subword vocabulary from raw text with an ant
// colony: stochastic agents walk corpus segments, probabilistically choose
// token boundaries, and reinforce their choices on a shared pheromone
// store. Periodic selection prunes the store to its fittest entries, and
// the surviving scored vocabulary drives a deterministic greedy tokenizer
// at inference time.
//
// # Quick Start
//
// Training:
//
//	text, _ := corpus.Fallback(
//	    corpus.LocalSource{Path: "AllCombined.txt"},
//	    corpus.LocalSource{Path: "sherlock.txt"},
//	).Load(ctx)
//	segments, _ := corpus.Split(text)
//
//	trainer, _ := antok.New(segments, antok.WithGenerations(20))
//	if err := trainer.Train(ctx); err != nil { ... }
//
//	vocab.SaveFile("tokens.txt", trainer.Vocabulary())
//
// Inference:
//
//	tok, _ := tokenizer.Load("tokens.txt")
//	tokens := tok.Tokenize("ant colony optimization works well")
//
// # Training Pipeline
//
// Each generation is three strictly separated phases:
//
//  1. Traversal — every segment is walked in parallel; read-only on the
//     store, one private random source per ant.
//  2. Deposit — every path reinforces the store in parallel; per-token
//     atomic updates, no global lock.
//  3. Selection — single-threaded pruning to the top keep-ratio fraction,
//     with optional survivor decay.
//
// The run is an offline batch job: it either completes all generations or
// is aborted via context cancellation with no partial-state recovery.
package antok
