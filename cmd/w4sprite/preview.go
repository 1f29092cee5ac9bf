package main

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"golang.org/x/image/draw"

	"github.com/nf/w4go/sprite"
	"github.com/nf/w4go/w4"
)

var background = color.RGBA{0x40, 0x40, 0x40, 0xff}

const gap = 2 // pixels around each sprite

// sheet lays out the sprites left to right, colored with p.
func sheet(sprites []sprite.Named, p w4.Palette) *image.RGBA {
	w, h := gap, 0
	for _, s := range sprites {
		w += s.Width + gap
		if s.Height > h {
			h = s.Height
		}
	}
	m := image.NewRGBA(image.Rect(0, 0, w, h+2*gap))
	draw.Draw(m, m.Bounds(), image.NewUniform(background), image.Point{}, draw.Src)
	x := gap
	for _, s := range sprites {
		r := image.Rect(x, gap, x+s.Width, gap+s.Height)
		draw.Draw(m, r, s.Image(p), image.Point{}, draw.Src)
		x += s.Width + gap
	}
	return m
}

// scaled returns m enlarged by an integer factor.
func scaled(m image.Image, factor int) *image.RGBA {
	b := m.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx()*factor, b.Dy()*factor))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), m, b, draw.Src, nil)
	return dst
}

// halfBlocks renders m as tview color-tagged text, two pixel rows to
// each line of upper half block characters.
func halfBlocks(m image.Image) string {
	var (
		b   = m.Bounds()
		out strings.Builder
	)
	for y := b.Min.Y; y < b.Max.Y; y += 2 {
		for x := b.Min.X; x < b.Max.X; x++ {
			bottom := background
			if y+1 < b.Max.Y {
				bottom = rgba(m.At(x, y+1))
			}
			fmt.Fprintf(&out, "[%s:%s]▀", hex(rgba(m.At(x, y))), hex(bottom))
		}
		out.WriteString("[-:-]\n")
	}
	return out.String()
}

func rgba(c color.Color) color.RGBA {
	return color.RGBAModel.Convert(c).(color.RGBA)
}

func hex(c color.RGBA) string {
	return fmt.Sprintf("#%.2x%.2x%.2x", c.R, c.G, c.B)
}
