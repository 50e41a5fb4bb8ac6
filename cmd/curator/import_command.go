package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"curator/internal/config"
	"curator/internal/ingest"
)

func newImportCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "import",
		Short: "Re-serialize legacy JSON custom format sources as YAML",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withLock(func(cfg *config.Config, logger *slog.Logger) error {
				importer := ingest.New(cfg.LegacyFormatsDir(), cfg.CustomFormatsDir(), logger)
				summary, err := importer.Run()
				if err != nil {
					return err
				}

				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "Imported %d custom format(s) to %s\n",
					summary.Imported, cfg.CustomFormatsDir())
				if len(summary.Failures) > 0 {
					return fmt.Errorf("%d file(s) failed to import", len(summary.Failures))
				}
				return nil
			})
		},
	}
}
