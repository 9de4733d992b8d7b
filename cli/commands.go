package cli

var (
	Version   = ""
	CommitSHA = ""
)

// Globals defines global flags available to all commands.
type Globals struct {
	Telemetry bool `help:"Show timing telemetry for operations."`
}

type Commands struct {
	Globals

	Check CheckCmd `cmd:"" help:"Lex a Mica source file and report diagnostics."`
	Dump  DumpCmd  `cmd:"" help:"Show the lexed token stream from a Mica source file."`
	Watch WatchCmd `cmd:"" help:"Re-lex a Mica source file whenever it changes."`
}
