// bench - compares the size of the same document rendered as QueryKnot
// and as JSON. Token economy is the reason QueryKnot exists; this makes
// the savings visible for a real payload.
//
// Usage:
//
//	bench [file]    Input is a JSON object; defaults to stdin.
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	gojson "github.com/goccy/go-json"

	"github.com/queryknot/queryknot/queryknot"
)

func main() {
	var input io.Reader = os.Stdin
	if len(os.Args) > 1 && os.Args[1] != "-" {
		f, err := os.Open(os.Args[1])
		if err != nil {
			fatal("open file: %v", err)
		}
		defer f.Close()
		input = f
	}

	data, err := io.ReadAll(input)
	if err != nil {
		fatal("read input: %v", err)
	}

	knot, err := queryknot.FromJSON(data)
	if err != nil {
		fatal("convert: %v", err)
	}

	// Re-marshal compact so the comparison is against JSON at its best.
	var v any
	if err := gojson.Unmarshal(data, &v); err != nil {
		fatal("parse json: %v", err)
	}
	compact, err := gojson.Marshal(v)
	if err != nil {
		fatal("marshal json: %v", err)
	}

	jsonBytes := len(compact)
	knotBytes := len(knot)

	fmt.Printf("JSON:      %5d bytes  ~%4d tokens\n", jsonBytes, estimateTokens(string(compact)))
	fmt.Printf("QueryKnot: %5d bytes  ~%4d tokens\n", knotBytes, estimateTokens(knot))
	if jsonBytes > 0 {
		fmt.Printf("Savings:   %.1f%% bytes\n", 100*float64(jsonBytes-knotBytes)/float64(jsonBytes))
	}
}

// estimateTokens approximates LLM token count: one token per word plus one
// per punctuation cluster. Rough, but stable across runs.
func estimateTokens(s string) int {
	tokens := 0
	inWord := false
	for _, r := range s {
		switch {
		case r == ' ' || r == '\n' || r == '\t':
			inWord = false
		case strings.ContainsRune(`{}[]",:`, r):
			tokens++
			inWord = false
		default:
			if !inWord {
				tokens++
				inWord = true
			}
		}
	}
	return tokens
}

func fatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "bench: "+format+"\n", args...)
	os.Exit(1)
}
