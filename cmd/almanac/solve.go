package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"almanac/internal/core/almanac"
	"almanac/internal/core/interval"
)

func newSolveCmd(g *globals) *cobra.Command {
	var (
		mode    string
		workers int
		trace   bool
	)
	cmd := &cobra.Command{
		Use:   "solve [file|-]",
		Short: "Print the lowest location reachable from the seeds",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := almanac.ParseMode(mode)
			if err != nil {
				return err
			}
			a, err := readAlmanac(cmd, args, g.format)
			if err != nil {
				return err
			}
			res, err := almanac.Solve(a, m, interval.NewEngine(engineOptions(workers)...))
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			p := newPrinter(g.human)
			if trace {
				for _, r := range res.Reports {
					fmt.Fprintf(out, "%-24s in=%s out=%s moved=%s len=%s\n",
						r.Name, p.num(r.In), p.num(r.Out), p.num(r.Translated), p.num(r.OutLen))
				}
			}
			fmt.Fprintln(out, p.num(res.Answer))
			return nil
		},
	}
	cmd.Flags().StringVar(&mode, "mode", string(almanac.ModeRanges), "seed reading: ranges or seeds")
	cmd.Flags().IntVar(&workers, "workers", 0, "engine workers (0 reads CORE_ENGINE_WORKERS)")
	cmd.Flags().BoolVar(&trace, "trace", false, "print a line per stage before the answer")
	return cmd
}
