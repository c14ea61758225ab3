// Command cssfmt is a small CLI around the csssyntax tokenizer, parser,
// and serializer: tokenize, parse, and format CSS from the command line.
package main

import (
	"fmt"
	"os"

	"github.com/cssyntax/csssyntax/cmd/cssfmt/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
