package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"curator/internal/config"
	"curator/internal/convert"
)

func newConvertCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "convert",
		Short: "Rewrite legacy specification documents into the condition schema",
		Long: "Convert reads every custom format document and rewrites legacy\n" +
			"specification-based files into the condition-based schema in place.\n" +
			"Documents already in the target schema are left untouched, so the\n" +
			"command is safe to re-run.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withLock(func(cfg *config.Config, logger *slog.Logger) error {
				summary, err := convert.New(cfg.CustomFormatsDir(), logger).Run()
				if err != nil {
					return err
				}

				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "Converted %d custom format(s); %d already in target schema.\n",
					summary.Converted, summary.Skipped)
				if len(summary.Failures) > 0 {
					return fmt.Errorf("%d file(s) failed to convert", len(summary.Failures))
				}
				return nil
			})
		},
	}
}
