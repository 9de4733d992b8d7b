package cli

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/fsnotify/fsnotify"

	"github.com/micalang/mica/source"
)

// WatchCmd re-lexes a source file whenever it changes on disk, reporting
// fresh diagnostics after every write. Useful while editing malformed files.
type WatchCmd struct {
	File string `help:"Mica input filename to watch." arg:"" type:"existingfile"`
}

func (cmd *WatchCmd) Run(ctx *kong.Context, globals *Globals) error {
	absPath, err := filepath.Abs(cmd.File)
	if err != nil {
		return fmt.Errorf("failed to resolve %s: %w", cmd.File, err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to start watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	// Watch the directory rather than the file itself, so editors that
	// replace the file on save keep being observed.
	if err := watcher.Add(filepath.Dir(absPath)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", filepath.Dir(absPath), err)
	}

	printInfof(ctx.Stdout, "Watching %s", cmd.File)
	cmd.lexOnce(ctx, absPath)

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Name != absPath {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			cmd.lexOnce(ctx, absPath)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			printError(ctx.Stderr, fmt.Sprintf("watch error: %v", err))
		}
	}
}

func (cmd *WatchCmd) lexOnce(ctx *kong.Context, path string) {
	src, err := source.FromFile(path)
	if err != nil {
		printError(ctx.Stderr, err.Error())
		return
	}

	buffer, bag := lexBuffer(context.Background(), filepath.Base(path), src)
	if buffer.HasErrors() {
		reportDiagnostics(ctx.Stderr, bag)
		printError(ctx.Stderr, fmt.Sprintf("%d diagnostic(s) found", bag.Len()))
		return
	}

	printSuccess(ctx.Stdout, fmt.Sprintf("Lexed %d token(s) across %d line(s)",
		buffer.Len(), buffer.LineCount()))
}
