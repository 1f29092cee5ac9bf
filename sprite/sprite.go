// Package sprite converts between images and WASM-4 sprite data.
//
// Sprites hold 1 or 2 bits per pixel, packed into a continuous bit stream
// over the rows with the leftmost pixel in the most significant bits.
package sprite

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/png"
	"io"
	"os"
	"sort"

	_ "golang.org/x/image/bmp"

	"github.com/nf/w4go/w4"
)

// Sprite is image data in the format accepted by w4.Blit.
type Sprite struct {
	Width, Height int
	Flags         w4.BlitFlags // BlitOneBPP or BlitTwoBPP
	Data          []byte
}

// BPP returns the number of bits per pixel.
func (s *Sprite) BPP() int { return s.Flags.BPP() }

var ErrTooManyColors = errors.New("more than 4 colors")

// Load reads and converts the image in the named file.
func Load(name string) (*Sprite, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	s, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %v", name, err)
	}
	return s, nil
}

// Decode reads and converts a PNG, GIF or BMP image.
func Decode(r io.Reader) (*Sprite, error) {
	m, _, err := image.Decode(r)
	if err != nil {
		return nil, err
	}
	return FromImage(m)
}

// FromImage converts m to a sprite.
//
// An image with a palette of at most four colors keeps its palette order.
// Otherwise fully transparent pixels take index 0 and the remaining colors
// are indexed from lightest to darkest, matching the default palette.
// Images with at most two colors become 1 bit per pixel sprites.
func FromImage(m image.Image) (*Sprite, error) {
	var (
		b   = m.Bounds()
		idx = make([]uint8, 0, b.Dx()*b.Dy())
		n   int // colors used
	)
	if pm, ok := m.(*image.Paletted); ok && len(pm.Palette) <= 4 {
		for y := b.Min.Y; y < b.Max.Y; y++ {
			for x := b.Min.X; x < b.Max.X; x++ {
				idx = append(idx, pm.ColorIndexAt(x, y))
			}
		}
		n = len(pm.Palette)
	} else {
		lookup, err := indexColors(m)
		if err != nil {
			return nil, err
		}
		for y := b.Min.Y; y < b.Max.Y; y++ {
			for x := b.Min.X; x < b.Max.X; x++ {
				idx = append(idx, lookup[key(m.At(x, y))])
			}
		}
		n = len(lookup)
	}

	s := &Sprite{Width: b.Dx(), Height: b.Dy(), Flags: w4.BlitOneBPP}
	if n > 2 {
		s.Flags = w4.BlitTwoBPP
	}
	s.Data = pack(idx, s.BPP())
	return s, nil
}

// colorKey identifies a color; all fully transparent colors share a key.
type colorKey color.RGBA64

func key(c color.Color) colorKey {
	r, g, b, a := c.RGBA()
	if a == 0 {
		return colorKey{}
	}
	return colorKey{uint16(r), uint16(g), uint16(b), uint16(a)}
}

func (k colorKey) luma() uint32 {
	return 299*uint32(k.R>>8) + 587*uint32(k.G>>8) + 114*uint32(k.B>>8)
}

func indexColors(m image.Image) (map[colorKey]uint8, error) {
	var (
		b           = m.Bounds()
		seen        = map[colorKey]bool{}
		colors      []colorKey
		transparent bool
	)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			k := key(m.At(x, y))
			if seen[k] {
				continue
			}
			seen[k] = true
			if k.A == 0 {
				transparent = true
			} else {
				colors = append(colors, k)
			}
			if len(seen) > 4 {
				return nil, ErrTooManyColors
			}
		}
	}
	sort.SliceStable(colors, func(i, j int) bool {
		return colors[i].luma() > colors[j].luma()
	})
	lookup := make(map[colorKey]uint8, len(seen))
	next := uint8(0)
	if transparent {
		lookup[colorKey{}] = 0
		next++
	}
	for _, k := range colors {
		lookup[k] = next
		next++
	}
	return lookup, nil
}

func pack(idx []uint8, bpp int) []byte {
	data := make([]byte, (len(idx)*bpp+7)/8)
	mask := uint8(1)<<bpp - 1
	for i, v := range idx {
		bit := i * bpp
		data[bit/8] |= (v & mask) << (8 - bpp - bit%8)
	}
	return data
}

// Pixel returns the palette index of the pixel at (x, y).
func (s *Sprite) Pixel(x, y int) uint8 {
	var (
		bpp  = s.BPP()
		bit  = (y*s.Width + x) * bpp
		mask = uint8(1)<<bpp - 1
	)
	return s.Data[bit/8] >> (8 - bpp - bit%8) & mask
}

// Image decodes the sprite, coloring it with p.
func (s *Sprite) Image(p w4.Palette) *image.Paletted {
	pal := color.Palette{p[0], p[1]}
	if s.BPP() == 2 {
		pal = append(pal, p[2], p[3])
	}
	m := image.NewPaletted(image.Rect(0, 0, s.Width, s.Height), pal)
	for y := 0; y < s.Height; y++ {
		for x := 0; x < s.Width; x++ {
			m.SetColorIndex(x, y, s.Pixel(x, y))
		}
	}
	return m
}
