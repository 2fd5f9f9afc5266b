package main

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/fieldworks/farmgate/pkg/commands"
)

func newProfileCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Show the effective configuration profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := commands.Profile(configPath)
			if err != nil {
				return err
			}

			p := result.Profile
			data := pterm.TableData{
				{"Setting", "Value"},
				{"special_permission", fmt.Sprintf("%t", p.SpecialPermission)},
				{"user_type", p.UserType.String()},
				{"weekend", fmt.Sprintf("%t", p.Weekend)},
				{"active_user", fmt.Sprintf("%t", p.ActiveUser)},
				{"high_priority", fmt.Sprintf("%t", p.HighPriority)},
				{"location", p.Location.String()},
			}

			if err := pterm.DefaultTable.
				WithHasHeader().
				WithData(data).
				WithWriter(cmd.OutOrStdout()).
				Render(); err != nil {
				return err
			}

			source := result.Source
			if source == "" {
				source = "built-in defaults"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "\nSource: %s\n", source)
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Config file (default: standard search order)")
	return cmd
}
