// Command antok-tokenize applies a trained vocabulary to text and reports
// the segmentation, timing, and round-trip reconstruction.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/hupe1980/antok/tokenizer"
)

const defaultText = "the quick brown fox jumps over the lazy dog two zero zero nine"

func main() {
	vocabPath := flag.String("vocab", "tokens.txt", "path to the vocabulary file")
	flag.Parse()

	input := defaultText
	if flag.NArg() > 0 {
		input = flag.Arg(0)
	}

	tok, err := tokenizer.Load(*vocabPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load %q (run training first?): %v\n", *vocabPath, err)
		os.Exit(1)
	}

	fmt.Printf("Loaded vocab size: %d tokens\n", tok.Vocab().Len())
	fmt.Printf("Max token length in vocab: %d chars\n", tok.MaxTokenLen())
	fmt.Printf("\nInput Text:\n%q\n", input)

	start := time.Now()
	tokens := tok.Tokenize(input)
	elapsed := time.Since(start)

	fmt.Printf("\nTokenized Output (%d tokens found in %s):\n", len(tokens), elapsed)
	fmt.Printf("%q\n", tokens)

	fmt.Printf("\nReconstructed: %q\n", strings.Join(tokens, ""))
}
