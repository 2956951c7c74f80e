package cli

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/ailang-lang/ailang/internal/frontend"
)

// watchAndCheck re-runs the checker whenever one of the target files is
// written. It blocks until interrupted.
func watchAndCheck(files []string, opts frontend.Options, stdout, stderr io.Writer) error {
	targets := make(map[string]bool, len(files))
	dirs := make(map[string]bool)
	for _, file := range files {
		abs, err := filepath.Abs(file)
		if err != nil {
			return err
		}
		targets[abs] = true
		dirs[filepath.Dir(abs)] = true
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	// Editors replace files on save, so watch the directories rather than
	// the files themselves.
	for dir := range dirs {
		if err := watcher.Add(dir); err != nil {
			return fmt.Errorf("watch %s: %w", dir, err)
		}
	}

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt)
	defer signal.Stop(interrupt)

	for _, file := range files {
		checkFile(file, opts, stdout, stderr)
	}
	fmt.Fprintln(stdout, "watching for changes...")

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			abs, err := filepath.Abs(event.Name)
			if err != nil || !targets[abs] {
				continue
			}
			checkFile(abs, opts, stdout, stderr)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintf(stderr, "watch error: %v\n", err)

		case <-interrupt:
			return nil
		}
	}
}
