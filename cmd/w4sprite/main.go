// Command w4sprite converts images into WASM-4 sprite data declared as Go
// source, and can preview the sprites while they are being drawn.
package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"go/token"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/nf/w4go/sprite"
	"github.com/nf/w4go/w4"
)

func main() {
	log.SetPrefix("w4sprite: ")
	log.SetFlags(0)

	var (
		outFlag     = flag.String("o", "", "write Go source to `file` (default stdout)")
		pkgFlag     = flag.String("pkg", "main", "package `name` of the generated source")
		watchFlag   = flag.Bool("watch", false, "re-generate when an image changes")
		viewFlag    = flag.Bool("view", false, "preview sprites in a window")
		termFlag    = flag.Bool("term", false, "preview sprites in the terminal")
		scaleFlag   = flag.Int("scale", 4, "window preview scale `factor`")
		paletteFlag = flag.String("palette", "", "preview `colors`, four comma-separated RRGGBB values")
	)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s [-o file.go] [-pkg name] [-watch] [-view | -term] image...\n", os.Args[0])
		flag.PrintDefaults()
		os.Exit(2)
	}
	flag.Parse()
	if err := checkFlags(flag.NArg(), *outFlag, *viewFlag, *termFlag, *scaleFlag); err == errUsage {
		flag.Usage()
	} else if err != nil {
		log.Fatal(err)
	}
	palette := w4.DefaultPalette
	if *paletteFlag != "" {
		p, err := parsePalette(*paletteFlag)
		if err != nil {
			log.Fatal(err)
		}
		palette = p
	}

	c := &converter{files: flag.Args(), out: *outFlag, pkg: *pkgFlag}
	sprites, err := c.convert()
	if !*watchFlag && !*viewFlag && !*termFlag {
		if err != nil {
			log.Fatal(err)
		}
		return
	}
	if err != nil {
		log.Print(err)
	}

	updates := make(chan []sprite.Named, 1)
	if err == nil {
		updates <- sprites
	}
	if *watchFlag {
		go func() {
			if err := watch(c, updates, nil); err != nil {
				log.Fatalf("watch: %v", err)
			}
		}()
	}

	switch {
	case *viewFlag:
		err = newGUI(palette, *scaleFlag).Run(updates)
	case *termFlag:
		err = newTermView(palette, c.out).Run(updates)
	default:
		for range updates {
		}
	}
	if err != nil {
		log.Fatal(err)
	}
}

var errUsage = errors.New("usage")

// checkFlags reports errUsage for a malformed command line, or an error
// describing a combination of flags that cannot work.
func checkFlags(nargs int, out string, view, term bool, scale int) error {
	if nargs == 0 || (view && term) || scale < 1 {
		return errUsage
	}
	if term && out == "" {
		return errors.New("-term needs -o, as the terminal is taken by the preview")
	}
	return nil
}

// converter turns a set of image files into one Go source file.
type converter struct {
	files []string
	out   string // stdout if empty
	pkg   string
}

func (c *converter) convert() ([]sprite.Named, error) {
	var sprites []sprite.Named
	names := map[string]string{}
	for _, f := range c.files {
		name := sprite.Name(f)
		if token.IsKeyword(name) {
			return nil, fmt.Errorf("%s: sprite name %q is a Go keyword", f, name)
		}
		if prev, ok := names[name]; ok {
			return nil, fmt.Errorf("%s: sprite name %q already used by %s", f, name, prev)
		}
		names[name] = f
		s, err := sprite.Load(f)
		if err != nil {
			return nil, err
		}
		sprites = append(sprites, sprite.Named{Name: name, Sprite: s})
	}
	var buf bytes.Buffer
	if err := sprite.WriteSource(&buf, c.pkg, sprites); err != nil {
		return nil, err
	}
	if c.out == "" {
		_, err := os.Stdout.Write(buf.Bytes())
		return sprites, err
	}
	if err := os.WriteFile(c.out, buf.Bytes(), 0644); err != nil {
		return nil, err
	}
	return sprites, nil
}

func parsePalette(s string) (p w4.Palette, err error) {
	fields := strings.Split(s, ",")
	if len(fields) != len(p) {
		return p, fmt.Errorf("palette %q: need %d colors", s, len(p))
	}
	for i, f := range fields {
		f = strings.TrimPrefix(strings.TrimSpace(f), "#")
		v, err := strconv.ParseUint(f, 16, 24)
		if err != nil || len(f) != 6 {
			return p, fmt.Errorf("palette %q: bad color %q", s, f)
		}
		p[i] = w4.Color(v)
	}
	return p, nil
}

// publish replaces any pending update on ch with sprites.
func publish(ch chan []sprite.Named, sprites []sprite.Named) {
	for {
		select {
		case ch <- sprites:
			return
		default:
		}
		select {
		case <-ch:
		default:
		}
	}
}
