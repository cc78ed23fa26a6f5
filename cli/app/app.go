// Package app builds the soroscan-cli command tree.
package app

import (
	"fmt"
	"os"
	"runtime"

	"github.com/urfave/cli"

	"github.com/soroscan/soroscan-go/cli/query"
	"github.com/soroscan/soroscan-go/cli/webhook"
)

// Version is the version of the tool, set at build time.
var Version string

func versionPrinter(c *cli.Context) {
	_, _ = fmt.Fprintf(c.App.Writer, "soroscan-cli\nVersion: %s\nGoVersion: %s\n",
		Version,
		runtime.Version(),
	)
}

// New creates a soroscan-cli instance of [cli.App] with all commands included.
func New() *cli.App {
	cli.VersionPrinter = versionPrinter
	ctl := cli.NewApp()
	ctl.Name = "soroscan-cli"
	ctl.Version = Version
	ctl.Usage = "SoroScan contract-indexing API client"
	ctl.ErrWriter = os.Stdout

	ctl.Commands = append(ctl.Commands, query.NewCommands()...)
	ctl.Commands = append(ctl.Commands, webhook.NewCommands()...)
	return ctl
}
