package antok_test

import (
	"context"
	"fmt"
	"strings"

	"github.com/hupe1980/antok"
	"github.com/hupe1980/antok/corpus"
	"github.com/hupe1980/antok/tokenizer"
)

func Example() {
	text := strings.Repeat("the quick brown fox jumps over the lazy dog\n", 50)

	segments, err := corpus.Lines(strings.NewReader(text))
	if err != nil {
		panic(err)
	}

	trainer, err := antok.New(segments,
		antok.WithGenerations(5),
		antok.WithRandomSeed(42),
	)
	if err != nil {
		panic(err)
	}
	defer trainer.Close()

	if err := trainer.Train(context.Background()); err != nil {
		panic(err)
	}

	tok := tokenizer.New(trainer.Vocabulary())
	tokens := tok.Tokenize("the quick fox")

	fmt.Println(strings.Join(tokens, "") == "the quick fox")
	// Output: true
}
