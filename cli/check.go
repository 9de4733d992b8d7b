package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"

	"github.com/micalang/mica/diagnostic"
	"github.com/micalang/mica/lexer"
	"github.com/micalang/mica/output"
	"github.com/micalang/mica/source"
	"github.com/micalang/mica/telemetry"
)

// CheckCmd lexes a source file and reports every diagnostic found.
type CheckCmd struct {
	File FileOrStdin `help:"Mica input filename (use '-' for stdin, or omit for stdin)." arg:"" optional:""`
}

func (cmd *CheckCmd) Run(ctx *kong.Context, globals *Globals) error {
	if err := cmd.File.EnsureContents(); err != nil {
		return err
	}

	runCtx := context.Background()

	var collector telemetry.Collector
	if globals.Telemetry {
		collector = telemetry.NewTimingCollector()
		runCtx = telemetry.WithCollector(runCtx, collector)

		defer func() {
			_, _ = fmt.Fprintln(ctx.Stderr)
			collector.Report(ctx.Stderr)
		}()
	}

	src, err := cmd.File.Load()
	if err != nil {
		return err
	}

	buffer, bag := lexBuffer(runCtx, cmd.File.BaseName(), src)

	if buffer.HasErrors() {
		reportDiagnostics(ctx.Stderr, bag)

		_, _ = fmt.Fprintln(ctx.Stderr)
		printError(ctx.Stderr, fmt.Sprintf("%d diagnostic(s) found", bag.Len()))
		os.Exit(1)
	}

	printSuccess(ctx.Stdout, fmt.Sprintf("Lexed %d token(s) across %d line(s)",
		buffer.Len(), buffer.LineCount()))

	return nil
}

// lexBuffer runs the lexer under the context's telemetry collector.
func lexBuffer(ctx context.Context, name string, src *source.Buffer) (*lexer.TokenizedBuffer, *diagnostic.Bag) {
	timer := telemetry.FromContext(ctx).Start(fmt.Sprintf("lex %s", name))
	defer timer.End()

	bag := diagnostic.NewBag()
	return lexer.Lex(src, bag), bag
}

// reportDiagnostics replays collected diagnostics to the writer, styled.
func reportDiagnostics(w io.Writer, bag *diagnostic.Bag) {
	emitter := diagnostic.NewWriterEmitter(w, output.NewStyles(w))
	for _, d := range bag.Diagnostics() {
		emitter.Emit(d)
	}
}
