package main

import (
	"fmt"
	"os"
	"pqdate/cli"
	"pqdate/contract"
	"pqdate/internal"
	"pqdate/intl"
	"pqdate/services"

	"github.com/mama165/sdk-go/logs"
)

func main() {
	colours, err := run(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, cli.RenderError(err, colours))
		os.Exit(1)
	}
}

// run wires configuration, logger and service, then executes the command
// tree. It reports whether errors may be coloured.
func run(args []string) (bool, error) {
	config, err := internal.LoadConfig()
	if err != nil {
		return false, err
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	service := services.NewDateService(log, contract.SystemClock{}, intl.NewFormatter(nil))
	root := cli.NewRootCommand(cli.Dependencies{
		Log:     log,
		Service: service,
		Options: config.FormatOptions(),
		Colours: config.Colours,
	})
	root.SetArgs(args)
	return config.Colours, root.Execute()
}
