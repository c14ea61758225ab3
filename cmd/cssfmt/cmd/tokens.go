package cmd

import (
	"fmt"

	"github.com/cssyntax/csssyntax/css"
	"github.com/spf13/cobra"
)

var (
	tokensSkipWhitespace bool
	tokensSkipComments   bool
	tokensUnicodeRanges  bool
)

var tokensCmd = &cobra.Command{
	Use:   "tokens [file]",
	Short: "Print the component-value list produced by tokenizing a file or stdin",
	Long: `tokens reads CSS source (a file argument, "-", or stdin if no
argument is given) and prints the flat list of component values the
tokenizer and component-value builder produce, one per line.

Examples:
  cssfmt tokens style.css
  echo 'a { color: red }' | cssfmt tokens`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTokens,
}

func init() {
	rootCmd.AddCommand(tokensCmd)
	tokensCmd.Flags().BoolVar(&tokensSkipWhitespace, "skip-whitespace", false, "omit whitespace tokens from the output")
	tokensCmd.Flags().BoolVar(&tokensSkipComments, "skip-comments", false, "omit comment tokens from the output")
	tokensCmd.Flags().BoolVar(&tokensUnicodeRanges, "unicode-ranges", false, "recognize U+... unicode-range tokens")
}

func runTokens(cmd *cobra.Command, args []string) error {
	input, err := readInput(args)
	if err != nil {
		return err
	}
	nodes := css.ParseComponentValueList(input, css.Options{
		SkipWhitespace: tokensSkipWhitespace,
		SkipComments:   tokensSkipComments,
		UnicodeRanges:  tokensUnicodeRanges,
	})
	for _, n := range nodes {
		fmt.Println(n.String())
	}
	return nil
}
