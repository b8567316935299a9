// main - main entry-point to airdrop commands through cobra
// individual commands are outlined in ./cmd/
package main

import (
	"github.com/brave-intl/airdrop-go/libs/logging"

	cmdutils "github.com/brave-intl/airdrop-go/libs/cmd"

	// pull in application commands. setup code is in init
	_ "github.com/brave-intl/airdrop-go/cmd"
)

var (
	// variables will be overwritten at build time
	version   string
	commit    string
	buildTime string
)

func main() {
	defer func() {
		if logging.Writer != nil {
			logging.Writer.Close()
		}
	}()
	cmdutils.Execute(version, commit, buildTime)
}
