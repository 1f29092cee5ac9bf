package main

import (
	"image"
	"log"

	"golang.org/x/exp/shiny/driver"
	"golang.org/x/exp/shiny/screen"
	"golang.org/x/image/draw"
	"golang.org/x/mobile/event/key"
	"golang.org/x/mobile/event/lifecycle"
	"golang.org/x/mobile/event/paint"
	"golang.org/x/mobile/event/size"

	"github.com/nf/w4go/sprite"
	"github.com/nf/w4go/w4"
)

// gui previews sprites in a window.
type gui struct {
	palette w4.Palette
	scale   int

	sprites []sprite.Named
	sheet   *image.RGBA // scaled
}

func newGUI(p w4.Palette, scale int) *gui {
	return &gui{palette: p, scale: scale}
}

// update carries new sprites to the window's event loop.
type update struct {
	sprites []sprite.Named
}

func (g *gui) Run(updates <-chan []sprite.Named) (err error) {
	driver.Main(func(s screen.Screen) {
		var w screen.Window
		w, err = s.NewWindow(&screen.NewWindowOptions{
			Title:  "w4sprite",
			Width:  w4.ScreenSize * g.scale,
			Height: w4.ScreenSize * g.scale,
		})
		if err != nil {
			return
		}
		defer w.Release()

		done := make(chan bool)
		defer close(done)
		go func() {
			for {
				select {
				case sprites := <-updates:
					w.Send(update{sprites})
				case <-done:
					return
				}
			}
		}()

		var sz size.Event
		for {
			switch e := w.NextEvent().(type) {
			case lifecycle.Event:
				if e.To == lifecycle.StageDead {
					return
				}

			case key.Event:
				if e.Code == key.CodeEscape && e.Direction == key.DirPress {
					return
				}

			case size.Event:
				sz = e
				if sz.WidthPx+sz.HeightPx == 0 {
					return
				}

			case update:
				g.sprites = e.sprites
				g.sheet = scaled(sheet(g.sprites, g.palette), g.scale)
				w.Send(paint.Event{})

			case paint.Event:
				if err := g.paint(s, w, sz.Size()); err != nil {
					log.Printf("paint: %v", err)
				}

			case error:
				log.Print(e)
			}
		}
	})
	return err
}

func (g *gui) paint(s screen.Screen, w screen.Window, sz image.Point) error {
	if sz.X == 0 || sz.Y == 0 {
		return nil
	}
	b, err := s.NewBuffer(sz)
	if err != nil {
		return err
	}
	defer b.Release()
	m := b.RGBA()
	draw.Draw(m, m.Bounds(), image.NewUniform(background), image.Point{}, draw.Src)
	if g.sheet != nil {
		draw.Draw(m, g.sheet.Bounds(), g.sheet, image.Point{}, draw.Src)
	}
	w.Upload(image.Point{}, b, b.Bounds())
	w.Publish()
	return nil
}
