package main

import (
	"github.com/alecthomas/kong"
)

// version is set by ldflags during build.
var version = "dev"

type CLI struct {
	Version   kong.VersionFlag `short:"v" help:"Show version"`
	NextCall  NextCallCmd      `cmd:"" name:"next-call" help:"Suggest the next call for a board identifier"`
	Debug     DebugCmd         `cmd:"" help:"Print matched and rejected variants for a board identifier"`
	Interpret InterpretCmd     `cmd:"" help:"List plausible calls given a calls-CSV auction, with no hand"`
	Fight     FightCmd         `cmd:"" help:"Replay boards against a reference bidder process and diff"`
	Harness   HarnessCmd       `cmd:"" help:"Run the YAML test-vector replay harness"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("yarborough"),
		kong.Description("SAYC contract-bridge bidding engine"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}
