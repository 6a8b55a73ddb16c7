package main

import (
	"fmt"

	"github.com/mvoronkov/gateway-init/internal/logger"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("gateway-init")
	if err := newRootCmd(log).Execute(); err != nil {
		log.Error().Err(err).Msg("bootstrap finished with errors")
	}

	// Exit 0 unconditionally: the downstream gateway must always be
	// allowed to start, with or without configuration changes.
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
