package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fieldworks/farmgate/pkg/commands"
	"github.com/fieldworks/farmgate/pkg/config"
	"github.com/fieldworks/farmgate/pkg/report"
)

func newIntakeCmd() *cobra.Command {
	var (
		configPath string
		article    string
		farmer     string
		date       string
		quantity   int
		format     string
	)

	cmd := &cobra.Command{
		Use:   "intake",
		Short: "Run one intake request through the rule pipeline",
		Long: `Run one intake request through the configured rule pipeline and print
the resulting store. Without request flags the configured default request
is used; any flag given overrides that field.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			outFormat, err := report.ParseFormat(format)
			if err != nil {
				return err
			}

			opts := commands.IntakeOptions{
				ConfigPath: configPath,
				Format:     outFormat,
				Styled:     outFormat == report.FormatText && report.StylingEnabled(cmd.OutOrStdout()),
				Out:        cmd.OutOrStdout(),
			}

			// Request flags override the configured default field by field
			if cmd.Flags().Changed("article") || cmd.Flags().Changed("farmer") ||
				cmd.Flags().Changed("date") || cmd.Flags().Changed("quantity") {
				cfg, err := config.Load(configPath)
				if err != nil {
					return err
				}
				req := cfg.Request
				if cmd.Flags().Changed("article") {
					req.Article = article
				}
				if cmd.Flags().Changed("farmer") {
					req.Farmer = farmer
				}
				if cmd.Flags().Changed("date") {
					req.Date = date
				}
				if cmd.Flags().Changed("quantity") {
					req.Quantity = quantity
				}
				opts.Request = &req
			}

			result, err := commands.Intake(opts)
			if err != nil {
				return err
			}

			if result.Pipeline.StoppedAt == "permission" {
				fmt.Fprintln(cmd.ErrOrStderr(), "intake blocked: profile lacks special permission")
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Config file (default: standard search order)")
	cmd.Flags().StringVar(&article, "article", "", "Article name")
	cmd.Flags().StringVar(&farmer, "farmer", "", "Farmer name")
	cmd.Flags().StringVar(&date, "date", "", "Delivery date")
	cmd.Flags().IntVar(&quantity, "quantity", 0, "Quantity")
	cmd.Flags().StringVarP(&format, "format", "f", "text", "Report format: text, json or xml")

	return cmd
}
