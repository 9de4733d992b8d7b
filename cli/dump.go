package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"
	"github.com/alecthomas/repr"

	"github.com/micalang/mica/diagnostic"
	"github.com/micalang/mica/lexer"
)

// DumpCmd shows the lexed token stream from a source file.
type DumpCmd struct {
	File   FileOrStdin `help:"Mica input filename (use '-' for stdin, or omit for stdin)." arg:"" optional:""`
	Output string      `help:"Write the dump to a file instead of stdout." short:"o" type:"path"`
	Raw    bool        `help:"Dump raw token records instead of the aligned rendering."`
}

func (cmd *DumpCmd) Run(ctx *kong.Context, globals *Globals) error {
	if err := cmd.File.EnsureContents(); err != nil {
		return err
	}

	src, err := cmd.File.Load()
	if err != nil {
		return err
	}

	bag := diagnostic.NewBag()
	buffer := lexer.Lex(src, bag)

	// Diagnostics go to stderr so the dump itself stays clean.
	if buffer.HasErrors() {
		reportDiagnostics(ctx.Stderr, bag)
	}

	w := io.Writer(ctx.Stdout)
	if cmd.Output != "" {
		if _, err := os.Stat(cmd.Output); err == nil {
			confirm, err := promptYesNo(fmt.Sprintf("Overwrite %s?", cmd.Output))
			if err != nil {
				return err
			}
			if !confirm {
				printInfof(ctx.Stdout, "Skipped writing %s", cmd.Output)
				return nil
			}
		}
		f, err := os.Create(cmd.Output)
		if err != nil {
			return fmt.Errorf("failed to create %s: %w", cmd.Output, err)
		}
		defer func() { _ = f.Close() }()
		w = f
	}

	if cmd.Raw {
		repr.New(w).Println(rawTokens(buffer))
		return nil
	}

	return buffer.Print(w)
}

// RawToken is the exported token record used by the raw dump.
type RawToken struct {
	Index    int
	Kind     string
	Line     int
	Column   int
	Indent   int
	Spelling string
	Recovery bool
}

func rawTokens(buffer *lexer.TokenizedBuffer) []RawToken {
	tokens := make([]RawToken, 0, buffer.Len())
	for _, t := range buffer.Tokens() {
		line := buffer.TokenLine(t)
		tokens = append(tokens, RawToken{
			Index:    t.Index(),
			Kind:     buffer.Kind(t).Name(),
			Line:     buffer.LineNumber(line),
			Column:   buffer.ColumnNumber(t),
			Indent:   buffer.IndentColumnNumber(line),
			Spelling: buffer.Text(t),
			Recovery: buffer.IsRecoveryToken(t),
		})
	}
	return tokens
}
