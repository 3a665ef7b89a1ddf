// cmd/resolver/cmd_version.go
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bethropolis/resolver/internal/config"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "%s v%s\n", config.AppName, config.Version)
			return err
		},
	}
}
