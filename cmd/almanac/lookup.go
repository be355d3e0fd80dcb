package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newLookupCmd(g *globals) *cobra.Command {
	var value uint64
	cmd := &cobra.Command{
		Use:   "lookup [file|-]",
		Short: "Follow one value through every stage",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := readAlmanac(cmd, args, g.format)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			p := newPrinter(g.human)
			hops := a.Pipeline.Trace(value)
			for _, h := range hops {
				fmt.Fprintf(out, "%-24s %s -> %s\n", h.Stage, p.num(h.In), p.num(h.Out))
			}
			final := value
			if len(hops) > 0 {
				final = hops[len(hops)-1].Out
			}
			fmt.Fprintln(out, p.num(final))
			return nil
		},
	}
	cmd.Flags().Uint64Var(&value, "value", 0, "value to trace")
	_ = cmd.MarkFlagRequired("value")
	return cmd
}
