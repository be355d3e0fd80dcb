package main

import (
	"fmt"
	"io"
	"math/big"
	"os"
	"runtime"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"almanac/internal/core/almanac"
	"almanac/internal/core/interval"
	"almanac/internal/platform/config"
	perr "almanac/internal/platform/errors"
)

// shared flags
type globals struct {
	format string
	human  bool
}

func newRootCmd() *cobra.Command {
	g := &globals{}
	root := &cobra.Command{
		Use:           "almanac",
		Short:         "Remap seed ranges through an almanac's stages",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&g.format, "format", almanac.TextFormat, "input format: text or yaml")
	root.PersistentFlags().BoolVar(&g.human, "human", false, "group digits in printed numbers")

	root.AddCommand(
		newSolveCmd(g),
		newLookupCmd(g),
		newConvertCmd(g),
		newVersionCmd(),
	)
	return root
}

// readAlmanac reads args[0] or stdin when it is absent or "-"
func readAlmanac(cmd *cobra.Command, args []string, format string) (*almanac.Almanac, error) {
	var r io.Reader = cmd.InOrStdin()
	if len(args) > 0 && args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return nil, perr.Wrapf(err, perr.ErrorCodeNotFound, "open %s", args[0])
		}
		defer f.Close()
		r = f
	}
	return almanac.Read(r, format)
}

// engineOptions starts from CORE_ENGINE_* and lets a positive --workers win
func engineOptions(workers int) []interval.Option {
	cfg := config.New().Prefix("CORE_ENGINE_")
	if workers <= 0 {
		workers = cfg.MayInt("WORKERS", runtime.GOMAXPROCS(0))
	}
	return []interval.Option{
		interval.WithWorkers(workers),
		interval.WithParallelThreshold(cfg.MayInt("PARALLEL_MIN", interval.DefaultParallelThreshold)),
	}
}

// printer formats numbers, grouping digits when human is set
type printer struct {
	human bool
	p     *message.Printer
}

func newPrinter(human bool) printer {
	return printer{human: human, p: message.NewPrinter(language.English)}
}

func (p printer) num(v any) string {
	if b, ok := v.(*big.Int); ok {
		if b == nil || !b.IsUint64() {
			return b.String()
		}
		v = b.Uint64()
	}
	if p.human {
		return p.p.Sprintf("%d", v)
	}
	return fmt.Sprint(v)
}
