package main

import (
	"fmt"
	"os"

	app "github.com/valter-silva-au/umsebenzi/internal"
	"github.com/valter-silva-au/umsebenzi/internal/cli"
	"github.com/valter-silva-au/umsebenzi/internal/render"
)

// Set by goreleaser ldflags at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	cli.SetVersionInfo(version, commit, date)
	app.Init(version)

	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", render.ErrorLabel(), err)
		os.Exit(1)
	}
}
