package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/cssyntax/csssyntax/log"
	"github.com/spf13/cobra"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "cssfmt",
	Short: "Tokenize, parse, and format CSS using the CSS Syntax Module Level 3 grammar",
	Long: `cssfmt is a command-line front end over the csssyntax tokenizer,
component-value builder, rule parser, and serializer.

It does not evaluate CSS in any way — no selector matching, no cascade,
no layout. It exposes the pure syntactic transforms: source text in,
a token stream or component-value tree or re-serialized text out.`,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log which encoding-selection rules fire for byte input")
	cobra.OnInitialize(func() {
		if verbose {
			log.SetLevel(log.DebugLevel)
		}
	})
}

func readInput(args []string) (string, error) {
	data, err := readInputBytes(args)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func readInputBytes(args []string) ([]byte, error) {
	if len(args) == 1 && args[0] != "-" {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", args[0], err)
		}
		return data, nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return nil, fmt.Errorf("reading stdin: %w", err)
	}
	return data, nil
}
