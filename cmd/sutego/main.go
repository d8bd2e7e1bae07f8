package main

import (
	"fmt"
	"os"

	"github.com/sutego/sutego/internal/cli"
)

var (
	version   = "develop"
	revision  = "HEAD"
	buildDate = "unknown"
)

func main() {
	if err := cli.Run(cli.Version{
		AppName:   "sutego",
		Version:   version,
		Revision:  revision,
		BuildDate: buildDate,
	}); err != nil {
		fmt.Fprintf(os.Stderr, "sutego: %v\n", err)
		os.Exit(1)
	}
}
