package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"curator/internal/config"
	"curator/internal/validate"
)

func newValidateCommand(ctx *commandContext) *cobra.Command {
	validateCmd := &cobra.Command{
		Use:   "validate",
		Short: "Check the dataset for broken references and invalid documents",
	}

	validateCmd.AddCommand(newValidateRefsCommand(ctx))
	validateCmd.AddCommand(newValidateSyntaxCommand(ctx))
	validateCmd.AddCommand(newValidateSchemaCommand(ctx))
	validateCmd.AddCommand(newValidateAllCommand(ctx))

	return validateCmd
}

func newValidateRefsCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "refs",
		Short: "Confirm every profile reference names an existing custom format",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			report, err := refsValidator(cfg, ctx.log()).Run()
			if err != nil {
				return err
			}
			return finishValidation(cmd.OutOrStdout(), ctx.log(), report,
				"All profile custom format references are valid.")
		},
	}
}

func newValidateSyntaxCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "syntax",
		Short: "Confirm every YAML file in the dataset parses",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			report, err := syntaxValidator(cfg, ctx.log()).Run()
			if err != nil {
				return err
			}
			return finishValidation(cmd.OutOrStdout(), ctx.log(), report, "All YAML files valid.")
		},
	}
}

func newValidateSchemaCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "Confirm documents carry their required fields",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			report, err := schemaValidator(cfg, ctx.log()).Run()
			if err != nil {
				return err
			}
			return finishValidation(cmd.OutOrStdout(), ctx.log(), report,
				"All documents are structurally valid.")
		},
	}
}

func newValidateAllCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "all",
		Short: "Run every validation pass",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger := ctx.log()

			var combined validate.Report
			syntaxReport, err := syntaxValidator(cfg, logger).Run()
			if err != nil {
				return err
			}
			combined.Merge(syntaxReport)

			schemaReport, err := schemaValidator(cfg, logger).Run()
			if err != nil {
				return err
			}
			combined.Merge(schemaReport)

			refsReport, err := refsValidator(cfg, logger).Run()
			if err != nil {
				return err
			}
			combined.Merge(refsReport)

			return finishValidation(cmd.OutOrStdout(), logger, combined, "Dataset is valid.")
		},
	}
}

func refsValidator(cfg *config.Config, logger *slog.Logger) *validate.RefValidator {
	return validate.NewRefValidator(cfg.CustomFormatsDir(), cfg.ProfilesDir(), logger)
}

func syntaxValidator(cfg *config.Config, logger *slog.Logger) *validate.SyntaxValidator {
	return validate.NewSyntaxValidator(
		[]string{cfg.CustomFormatsDir(), cfg.ProfilesDir()},
		[]string{cfg.RegexPatternsDir()},
		logger,
	)
}

func schemaValidator(cfg *config.Config, logger *slog.Logger) *validate.SchemaValidator {
	return validate.NewSchemaValidator(cfg.CustomFormatsDir(), cfg.RegexPatternsDir(), logger)
}

func finishValidation(out io.Writer, logger *slog.Logger, report validate.Report, success string) error {
	if report.OK() {
		fmt.Fprintln(out, success)
		return nil
	}

	report.Log(logger)
	rows := make([][]string, 0, len(report.Findings))
	for _, f := range report.Findings {
		rows = append(rows, []string{string(f.Kind), f.Path, f.Field, f.Name, f.Detail})
	}
	fmt.Fprintln(out, renderTable([]string{"Kind", "File", "Field", "Name", "Detail"}, rows))
	return fmt.Errorf("validation failed with %d finding(s)", len(report.Findings))
}
