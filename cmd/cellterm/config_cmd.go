package main

import (
	"github.com/spf13/cobra"

	"github.com/lixenwraith/cellterm/config"
)

func newConfigCmd(a *app) *cobra.Command {
	var defaults bool

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as TOML",
		Long: `Print the configuration after merging defaults, the config file and
CELLTERM_* environment variables. Use --defaults for a starter file.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			c := a.raw
			if defaults {
				c = config.Default()
			}
			data, err := c.Encode()
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
	cmd.Flags().BoolVar(&defaults, "defaults", false, "print built-in defaults instead")
	return cmd
}
