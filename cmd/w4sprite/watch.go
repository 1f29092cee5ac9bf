package main

import (
	"log"
	"path/filepath"
	"time"

	"github.com/howeyc/fsnotify"

	"github.com/nf/w4go/sprite"
)

// watch re-runs c whenever one of its images changes,
// and publishes the new sprites to updates. It returns when stop is closed.
func watch(c *converter, updates chan []sprite.Named, stop <-chan struct{}) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	files := map[string]bool{}
	dirs := map[string]bool{}
	for _, f := range c.files {
		f = filepath.Clean(f)
		files[f] = true
		if d := filepath.Dir(f); !dirs[d] {
			if err := watcher.Watch(d); err != nil {
				return err
			}
			dirs[d] = true
		}
	}

	var run <-chan time.Time
	for {
		select {
		case <-stop:
			return nil
		case <-run:
			run = nil
			sprites, err := c.convert()
			if err != nil {
				log.Printf("watch: %v", err)
				break
			}
			log.Printf("watch: converted %d image(s)", len(sprites))
			publish(updates, sprites)
		case ev := <-watcher.Event:
			if files[filepath.Clean(ev.Name)] && !ev.IsAttrib() {
				run = time.After(100 * time.Millisecond)
			}
		case err := <-watcher.Error:
			log.Printf("watch: %v", err)
		}
	}
}
