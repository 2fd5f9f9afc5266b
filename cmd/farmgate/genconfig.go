package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fieldworks/farmgate/pkg/commands"
)

func newGenConfigCmd() *cobra.Command {
	var (
		configPath string
		write      bool
		target     string
		effective  bool
	)

	cmd := &cobra.Command{
		Use:   "gen-config",
		Short: "Output the default configuration",
		Long: `Output the default configuration file. With --effective the fully
resolved configuration (defaults, config file and environment) is rendered
instead. With --write the content is written to disk.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := commands.GenConfig(commands.GenConfigOptions{
				Effective:  effective,
				ConfigPath: configPath,
				Write:      write,
				TargetPath: target,
			})
			if err != nil {
				return err
			}

			if result.FileWritten != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", result.FileWritten)
				return nil
			}
			fmt.Fprint(cmd.OutOrStdout(), result.Content)
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Config file for --effective resolution")
	cmd.Flags().BoolVar(&write, "write", false, "Write the config file to disk")
	cmd.Flags().StringVarP(&target, "output", "o", "", "Target path for --write (default: ./farmgate.toml)")
	cmd.Flags().BoolVar(&effective, "effective", false, "Render the fully resolved configuration")

	return cmd
}
