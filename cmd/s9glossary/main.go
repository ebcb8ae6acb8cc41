// Package main provides the CLI entry point for s9glossary.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/standardnine/s9glossary/pkg/glossary"
	"github.com/standardnine/s9glossary/pkg/glossary/output"
)

type cliOptions struct {
	outputPath string
	mode       string
	raw        bool
	diff       bool
	stdout     bool
	verbose    bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var o cliOptions

	rootCmd := &cobra.Command{
		Use:   "s9glossary [input.xlsx]",
		Short: "Convert a term/definition workbook into an S9ML glossary",
		Long: `s9glossary reads column A (term) and column B (description) of every
sheet in a workbook and writes them as glossentry elements of an S9ML
glossary document.`,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args, o)
		},
	}

	rootCmd.Flags().StringVarP(&o.outputPath, "output", "o", glossary.DefaultOutputPath, "Output file path (base path in per-sheet mode)")
	rootCmd.Flags().StringVar(&o.mode, "mode", string(glossary.ModeLastSheet), "Sheet output mode: last, per-sheet, merged")
	rootCmd.Flags().BoolVar(&o.raw, "raw", false, "Emit term and description text without XML escaping")
	rootCmd.Flags().BoolVar(&o.diff, "diff", false, "Print a diff against the existing output instead of writing")
	rootCmd.Flags().BoolVar(&o.stdout, "stdout", false, "Print documents to stdout instead of writing")
	rootCmd.Flags().BoolVarP(&o.verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.MarkFlagsMutuallyExclusive("diff", "stdout")

	return rootCmd
}

func run(cmd *cobra.Command, args []string, o cliOptions) error {
	inputPath := glossary.DefaultInputPath
	if len(args) > 0 {
		inputPath = args[0]
	}

	mode, err := glossary.ParseMode(o.mode)
	if err != nil {
		return err
	}

	level := slog.LevelInfo
	if o.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	escape := !o.raw
	opts := glossary.Options{
		Mode:       mode,
		OutputPath: o.outputPath,
		Escape:     &escape,
		Logger:     logger,
	}

	if !o.diff && !o.stdout {
		if _, err := glossary.Convert(inputPath, opts); err != nil {
			return fmt.Errorf("conversion failed: %w", err)
		}
		return nil
	}

	wb, err := glossary.Load(inputPath)
	if err != nil {
		return fmt.Errorf("conversion failed: %w", err)
	}
	outputs, err := glossary.Build(wb, opts)
	if err != nil {
		return fmt.Errorf("conversion failed: %w", err)
	}

	if o.stdout {
		return printOutputs(cmd.OutOrStdout(), outputs)
	}
	return printDiffs(cmd.OutOrStdout(), outputs)
}

func printOutputs(w io.Writer, outputs []glossary.Output) error {
	for _, out := range outputs {
		if _, err := fmt.Fprintln(w, out.Content); err != nil {
			return err
		}
	}
	return nil
}

// printDiffs diffs what each path will hold once every output is written,
// so only the last output for a path is compared.
func printDiffs(w io.Writer, outputs []glossary.Output) error {
	for _, out := range finalOutputs(outputs) {
		patch, err := output.Diff(out.Path, out.Content)
		if err != nil {
			return fmt.Errorf("diff %s: %w", out.Path, err)
		}
		if patch == "" {
			continue
		}
		if _, err := fmt.Fprint(w, patch); err != nil {
			return err
		}
	}
	return nil
}

// finalOutputs keeps the last output for each path, in path order of first write.
func finalOutputs(outputs []glossary.Output) []glossary.Output {
	index := make(map[string]int)
	var final []glossary.Output
	for _, out := range outputs {
		if i, ok := index[out.Path]; ok {
			final[i] = out
			continue
		}
		index[out.Path] = len(final)
		final = append(final, out)
	}
	return final
}
