package main

import (
	"bytes"
	"image"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/nf/w4go/sprite"
)

type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestWatch(t *testing.T) {
	dir := t.TempDir()
	img := filepath.Join(dir, "hero.png")
	writeImage(t, img, image.NewGray(image.Rect(0, 0, 8, 8)))

	logs := &syncBuffer{}
	log.SetOutput(logs)
	t.Cleanup(func() { log.SetOutput(os.Stderr) })

	c := &converter{files: []string{img}, out: filepath.Join(dir, "sprites.go"), pkg: "main"}
	updates := make(chan []sprite.Named, 1)
	stop := make(chan struct{})
	done := make(chan error, 1)
	go func() { done <- watch(c, updates, stop) }()
	t.Cleanup(func() {
		close(stop)
		if err := <-done; err != nil {
			t.Errorf("watch returned %v", err)
		}
	})

	// await rewrites the image until watch publishes a sprite of the given
	// width. Rewriting covers events lost before the watcher was set up.
	await := func(width int) {
		t.Helper()
		timeout := time.After(10 * time.Second)
		for {
			writeImage(t, img, image.NewGray(image.Rect(0, 0, width, 8)))
			select {
			case s := <-updates:
				if len(s) == 1 && s[0].Name == "hero" && s[0].Width == width {
					return
				}
			case <-time.After(250 * time.Millisecond):
			case <-timeout:
				t.Fatalf("no update with width %d; log:\n%s", width, logs.String())
			}
		}
	}

	await(8)
	if _, err := os.Stat(c.out); err != nil {
		t.Errorf("source not regenerated: %v", err)
	}

	if err := os.WriteFile(img, []byte("not an image"), 0644); err != nil {
		t.Fatal(err)
	}
	deadline := time.Now().Add(10 * time.Second)
	for !strings.Contains(logs.String(), "hero.png") {
		if time.Now().After(deadline) {
			t.Fatalf("bad image not logged; log:\n%s", logs.String())
		}
		time.Sleep(20 * time.Millisecond)
	}

	// Still watching after the failure.
	await(16)
}
