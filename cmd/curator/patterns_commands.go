package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"curator/internal/config"
	"curator/internal/patterns"
)

func newPatternsCommand(ctx *commandContext) *cobra.Command {
	patternsCmd := &cobra.Command{
		Use:   "patterns",
		Short: "Maintain the standalone regex pattern files",
	}

	patternsCmd.AddCommand(newPatternsGenerateCommand(ctx))
	patternsCmd.AddCommand(newPatternsNormalizeCommand(ctx))

	return patternsCmd
}

func newPatternsGenerateCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "generate",
		Short: "Create pattern files for condition patterns that have none",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withLock(func(cfg *config.Config, logger *slog.Logger) error {
				synth := patterns.NewSynthesizer(cfg.CustomFormatsDir(), cfg.RegexPatternsDir(), logger)
				summary, err := synth.Run()
				if err != nil {
					return err
				}

				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "Existing pattern files: %d\n", summary.Existing)
				fmt.Fprintf(out, "Pattern references in custom formats: %d\n", summary.References)
				fmt.Fprintf(out, "Missing patterns: %d\n", summary.Missing)
				if summary.Missing == 0 {
					fmt.Fprintln(out, "All patterns already exist. Nothing to generate.")
				} else {
					fmt.Fprintf(out, "Created %d new pattern file(s) in %s\n",
						len(summary.Created), cfg.RegexPatternsDir())
				}
				if len(summary.Unmatched) > 0 {
					fmt.Fprintf(out, "WARNING: %d pattern(s) still missing after generation\n",
						len(summary.Unmatched))
				}
				if len(summary.Failures) > 0 {
					return fmt.Errorf("%d file(s) failed during pattern generation", len(summary.Failures))
				}
				return nil
			})
		},
	}
}

func newPatternsNormalizeCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "normalize",
		Short: "Rename pattern files with collision suffixes or unsafe names",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withLock(func(cfg *config.Config, logger *slog.Logger) error {
				summary, err := patterns.NewNormalizer(cfg.RegexPatternsDir(), logger).Run()
				if err != nil {
					return err
				}

				out := cmd.OutOrStdout()
				if len(summary.Renamed) > 0 {
					rows := make([][]string, 0, len(summary.Renamed))
					for _, rename := range summary.Renamed {
						rows = append(rows, []string{rename.From + ".yml", rename.To + ".yml"})
					}
					fmt.Fprintln(out, renderTable([]string{"From", "To"}, rows))
				}
				fmt.Fprintf(out, "Renamed %d of %d candidate file(s).\n",
					len(summary.Renamed), summary.Candidates)
				if len(summary.Failures) > 0 {
					return fmt.Errorf("%d file(s) failed during normalization", len(summary.Failures))
				}
				return nil
			})
		},
	}
}
