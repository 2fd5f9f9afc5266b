package main

import (
	"fmt"
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/fieldworks/farmgate/pkg/commands"
)

func newStagesCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "stages",
		Short: "List the available rule stages and the configured order",
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := commands.Stages(configPath)
			if err != nil {
				return err
			}

			data := pterm.TableData{{"Stage", "Description"}}
			for _, info := range result.Registered {
				data = append(data, []string{info.Name, info.Description})
			}

			if err := pterm.DefaultTable.
				WithHasHeader().
				WithData(data).
				WithWriter(cmd.OutOrStdout()).
				Render(); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "\nPipeline order: %s\n",
				strings.Join(result.Configured, " -> "))
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Config file (default: standard search order)")
	return cmd
}
