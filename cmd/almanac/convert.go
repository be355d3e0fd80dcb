package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"almanac/internal/core/almanac"
	"almanac/internal/core/version"
)

func newConvertCmd(g *globals) *cobra.Command {
	return &cobra.Command{
		Use:   "convert [file|-]",
		Short: "Rewrite an almanac as YAML",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := readAlmanac(cmd, args, g.format)
			if err != nil {
				return err
			}
			b, err := almanac.FormatYAML(a)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(b)
			return err
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			bi := version.Info("almanac")
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s (%s, %s, %s)\n", bi.Service, bi.Version, bi.Commit, bi.Date, bi.GoVersion)
		},
	}
}
