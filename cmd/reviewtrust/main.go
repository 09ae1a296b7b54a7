// Command reviewtrust scores reviews from the command line
package main

import (
	"os"

	"reviewtrust/internal/platform/logger"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		logger.Get().Error().Err(err).Msg("reviewtrust failed")
		os.Exit(1)
	}
}
