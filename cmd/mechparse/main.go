// mechparse is the command line front end of the CHEMKIN kinetics parser.
package main

import (
	"os"

	"github.com/turtacn/MechParse/internal/interfaces/cli"
)

// version is set at build time via -ldflags "-X main.version=...".
var version = "dev"

func main() {
	os.Exit(cli.Execute(version))
}
