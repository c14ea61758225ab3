package cmd

import (
	"fmt"

	"github.com/cssyntax/csssyntax/css"
	"github.com/spf13/cobra"
)

var (
	parseRuleListOnly   bool
	parseSkipWhitespace bool
	parseSkipComments   bool
)

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Parse a stylesheet and print its rule tree",
	Long: `parse reads CSS source (a file argument, "-", or stdin if no
argument is given), parses it as a stylesheet, and prints an indented
dump of the resulting rule/declaration tree.

Use --rule-list to parse with "parse a list of rules" semantics instead
of "parse a stylesheet" (no CDO/CDC HTML-compatibility dropping).`,
	Args: cobra.MaximumNArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)
	parseCmd.Flags().BoolVar(&parseRuleListOnly, "rule-list", false, "use 'parse a list of rules' instead of 'parse a stylesheet'")
	parseCmd.Flags().BoolVar(&parseSkipWhitespace, "skip-whitespace", true, "omit whitespace nodes from the tree")
	parseCmd.Flags().BoolVar(&parseSkipComments, "skip-comments", true, "omit comment nodes from the tree")
}

func runParse(cmd *cobra.Command, args []string) error {
	input, err := readInput(args)
	if err != nil {
		return err
	}
	opts := css.Options{SkipWhitespace: parseSkipWhitespace, SkipComments: parseSkipComments}
	var rules []*css.Node
	if parseRuleListOnly {
		rules = css.ParseRuleList(input, opts)
	} else {
		rules = css.ParseStylesheet(input, opts)
	}
	fmt.Print(css.DumpList(rules))
	return nil
}
