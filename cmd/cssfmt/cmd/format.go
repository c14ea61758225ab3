package cmd

import (
	"fmt"
	"os"

	"github.com/cssyntax/csssyntax/css"
	"github.com/spf13/cobra"
)

var (
	formatWrite               bool
	formatList                bool
	formatProtocolEncoding    string
	formatEnvironmentEncoding string
)

var formatCmd = &cobra.Command{
	Use:   "format [files...]",
	Short: "Re-serialize CSS source through the parser",
	Long: `format parses each file (or stdin, if none are given) as a
stylesheet and serializes the result back to text.

This is not a style-reflowing pretty-printer: whitespace inside rules
is preserved verbatim, while whitespace between top-level rules is
dropped. Beyond that, what it normalizes is only
what the serializer is required to normalize for round-trip safety —
inserting the minimal "/**/" where two adjacent tokens would otherwise
re-tokenize differently, and rewriting malformed constructs to their
canonical error representation.

Examples:
  cssfmt format style.css              # print the reformatted source
  cssfmt format -w style.css           # rewrite the file in place
  cssfmt format -l *.css               # list files that would change`,
	RunE: runFormat,
}

func init() {
	rootCmd.AddCommand(formatCmd)
	formatCmd.Flags().BoolVarP(&formatWrite, "write", "w", false, "rewrite the file in place instead of printing to stdout")
	formatCmd.Flags().BoolVarP(&formatList, "list", "l", false, "list files whose formatting would change, without rewriting")
	formatCmd.Flags().StringVar(&formatProtocolEncoding, "protocol-encoding", "", "out-of-band encoding label (e.g. from a Content-Type header) for byte input")
	formatCmd.Flags().StringVar(&formatEnvironmentEncoding, "environment-encoding", "", "fallback encoding label used if no protocol encoding, BOM, or @charset rule is found")
}

func runFormat(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		input, err := readInputBytes(nil)
		if err != nil {
			return err
		}
		fmt.Print(formatBytes(input))
		return nil
	}

	hadErr := false
	for _, path := range args {
		if err := formatFile(path); err != nil {
			fmt.Fprintf(os.Stderr, "cssfmt: %s: %v\n", path, err)
			hadErr = true
		}
	}
	if hadErr {
		return fmt.Errorf("formatting failed for one or more files")
	}
	return nil
}

func formatSource(src string) string {
	rules := css.ParseStylesheet(src, css.Options{})
	return css.SerializeList(rules)
}

func formatBytes(src []byte) string {
	if formatProtocolEncoding == "" && formatEnvironmentEncoding == "" {
		return formatSource(string(src))
	}
	rules := css.ParseStylesheetBytes(src, css.BytesOptions{
		ProtocolEncoding:    formatProtocolEncoding,
		EnvironmentEncoding: formatEnvironmentEncoding,
	})
	return css.SerializeList(rules)
}

func formatFile(path string) error {
	src, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading file: %w", err)
	}
	formatted := formatBytes(src)
	changed := formatted != string(src)

	switch {
	case formatList:
		if changed {
			fmt.Println(path)
		}
	case formatWrite:
		if changed {
			if err := os.WriteFile(path, []byte(formatted), 0644); err != nil {
				return fmt.Errorf("writing file: %w", err)
			}
			if verbose {
				fmt.Printf("formatted %s\n", path)
			}
		}
	default:
		fmt.Print(formatted)
	}
	return nil
}
