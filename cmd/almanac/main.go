// Command almanac solves seed almanacs from files or stdin
package main

import (
	"os"

	"almanac/internal/platform/logger"
)

func main() {
	lo := logger.FromEnv()
	if lo.Service == "" {
		lo.Service = "almanac"
	}
	logger.Init(lo)

	if err := newRootCmd().Execute(); err != nil {
		logger.Get().Error().Err(err).Msg("almanac failed")
		os.Exit(1)
	}
}
