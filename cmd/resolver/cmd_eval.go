// cmd/resolver/cmd_eval.go
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bethropolis/resolver/internal/buffer"
	"github.com/bethropolis/resolver/internal/config"
	"github.com/bethropolis/resolver/internal/render"
	"github.com/bethropolis/resolver/internal/text"
)

// defaultEvalWidth is the text column width when wrap_width is unset.
const defaultEvalWidth = 40

func newEvalCmd(flags *config.Flags) *cobra.Command {
	var (
		verbose bool
		color   string
	)

	cmd := &cobra.Command{
		Use:   "eval [file]",
		Short: "Evaluate a sheet and print it next to its results",
		Long: `Evaluate a sheet without opening the editor.

If no file is provided, or the file is "-", reads the sheet from stdin.
The output has the same columns as the editor: line numbers, the wrapped
text and the results.

Use --verbose to print each evaluated expression with its result instead.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mode, err := parseColorMode(color)
			if err != nil {
				return err
			}

			cfg, closer, err := setup(flags)
			if err != nil {
				return err
			}
			defer closer.Close()

			name := "-"
			if len(args) > 0 {
				name = args[0]
			}
			content, err := readSheet(cmd.InOrStdin(), name)
			if err != nil {
				return err
			}

			width := cfg.Editor.WrapWidth
			if width <= 0 {
				width = defaultEvalWidth
			}
			buf := text.NewWithString(width, strings.TrimSuffix(content, "\n"))
			sheet := render.Pass(buf, render.Options{
				Fractions: cfg.Calc.Fractions,
				Constants: cfg.Calc.Constants,
				Gutter:    cfg.Editor.Gutter,
			})
			sheet.Apply(buf)

			out := cmd.OutOrStdout()
			if verbose {
				return explain(out, sheet, cfg.Calc.Fractions)
			}
			_, err = io.WriteString(out, sheet.Compose(buf, mode))
			return err
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Print every expression with its result")
	cmd.Flags().StringVar(&color, "color", "none", "Output styling: none, ansi or markup")
	return cmd
}

func parseColorMode(s string) (text.Mode, error) {
	switch s {
	case "none", "":
		return text.ModePlain, nil
	case "ansi":
		return text.ModeTerminal, nil
	case "markup":
		return text.ModeMarkup, nil
	}
	return text.ModePlain, fmt.Errorf("unknown color mode %q (want none, ansi or markup)", s)
}

// readSheet reads name, or in when name is "-".
func readSheet(in io.Reader, name string) (string, error) {
	if name == "-" {
		return buffer.ReadAll(in, "stdin")
	}
	f, err := os.Open(name)
	if err != nil {
		return "", fmt.Errorf("read file: %w", err)
	}
	defer f.Close()
	return buffer.ReadAll(f, name)
}

// explain writes one "N: expression => result" line per evaluated
// expression. Expressions that failed are listed with their error.
func explain(w io.Writer, sheet *render.Sheet, fractions bool) error {
	for i, p := range sheet.Paragraphs {
		for _, c := range p.Clauses {
			var err error
			if c.OK() {
				_, err = fmt.Fprintf(w, "%d: %s => %s\n", i+1, c.Source, c.Format(fractions))
			} else {
				_, err = fmt.Fprintf(w, "%d: %s => error: %v\n", i+1, c.Source, c.Err)
			}
			if err != nil {
				return err
			}
		}
	}
	return nil
}
