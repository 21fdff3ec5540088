package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// debounceDelay is the quiet period after the last change before the file is parsed again.
const debounceDelay = 200 * time.Millisecond

// watch re-parses the file after changes until ctx is done.
// The directory is watched rather than the file, so editors replacing the file are handled too.
func (fp *fileParser) watch(ctx context.Context, path string) error {
	watcher, e := fsnotify.NewWatcher()
	if e != nil {
		return fmt.Errorf("failed to create watcher: %w", e)
	}
	defer watcher.Close()

	target, e := filepath.Abs(path)
	if e != nil {
		return e
	}

	if e := watcher.Add(filepath.Dir(target)); e != nil {
		return fmt.Errorf("failed to watch %s: %w", path, e)
	}
	fp.log.Info("watching for changes", "file", path)

	var (
		timer *time.Timer
		fire  <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			fp.log.Info("stopped watching", "file", path)
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target || event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}

			fp.log.Debug("file changed", "file", path, "op", event.Op.String())
			if timer == nil {
				timer = time.NewTimer(debounceDelay)
			} else {
				timer.Reset(debounceDelay)
			}
			fire = timer.C

		case <-fire:
			fire = nil
			if _, e := fp.parseFile(path); e != nil {
				fp.log.Error("re-parsing failed", "file", path, "error", e)
			}

		case e, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			fp.log.Error("watcher error", "error", e)
		}
	}
}
