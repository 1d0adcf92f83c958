package main

import (
	"context"
	"os"

	"github.com/quantacloud/qcc/internal/cli"
	"github.com/quantacloud/qcc/internal/config"
	"github.com/quantacloud/qcc/internal/logger"
)

// Populated at link time via -ldflags.
var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	log := logger.NewClientLogger("qcc")

	settings, err := config.GetSettings()
	if err != nil {
		log.Error().Err(err).Msg("error loading settings")
		os.Stderr.WriteString("ERROR: " + err.Error() + "\n")
		os.Exit(1)
	}

	app := cli.New(settings, version(), log, os.Stdout, os.Stderr)
	if err = app.Run(context.Background(), os.Args[1:]); err != nil {
		// Already reported on stderr by the CLI.
		os.Exit(1)
	}
}

func version() string {
	v := buildVersion
	if v == "" {
		v = "N/A"
	}
	if buildDate != "" || buildCommit != "" {
		v += " (" + buildDate + " " + buildCommit + ")"
	}
	return v
}
