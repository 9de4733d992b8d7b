package main

import (
	"github.com/alecthomas/kong"

	"github.com/micalang/mica/cli"
)

func main() {
	var commands cli.Commands

	ctx := kong.Parse(&commands,
		kong.Name("mica"),
		kong.Description("Toolchain utilities for the Mica language."),
		kong.UsageOnError(),
	)

	err := ctx.Run(&commands.Globals)
	ctx.FatalIfErrorf(err)
}
