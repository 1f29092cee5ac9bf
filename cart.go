package main

import (
	"encoding/binary"
	"strconv"

	"github.com/nf/w4go/w4"
)

var smiley = [8]byte{
	0b11000011,
	0b10000001,
	0b00100100,
	0b00100100,
	0b00000000,
	0b00100100,
	0b10011001,
	0b11000011,
}

// cart holds the demo's state between frames.
type cart struct {
	presses uint16     // times X was pressed, kept on disk
	prev    w4.Buttons // gamepad state last frame
}

func (c *cart) start() {
	var buf [2]byte
	if w4.DiskRead(buf[:]) == len(buf) {
		c.presses = binary.LittleEndian.Uint16(buf[:])
	}
	w4.Trace("hello: " + strconv.Itoa(int(c.presses)) + " presses so far")

	w4.Tone(
		w4.ToneFrequency{Start: 440, End: 880},
		w4.ToneDuration{Sustain: 100},
		w4.ToneVolume{Sustain: 50, Peak: 100},
		w4.ToneFlags{Channel: w4.TonePulse1, Mode: w4.ToneMode3, Pan: w4.TonePanCenter},
	)
}

func (c *cart) update() {
	w4.SetDrawColors(w4.GetDrawColors().With(1, 2))
	w4.Text("Hello from Go!", 10, 10)

	pad := w4.Gamepad(0)
	if pad.Has(w4.ButtonX) {
		w4.SetDrawColors(w4.GetDrawColors().With(1, 4))
		if !c.prev.Has(w4.ButtonX) {
			c.presses++
			c.save()
		}
	}
	c.prev = pad

	w4.Blit(smiley[:], 76, 76, 8, 8, w4.BlitOneBPP)
	w4.Text("Press X to blink", 16, 90)
	w4.Text("Presses: "+strconv.Itoa(int(c.presses)), 16, 100)

	if x, y, b := w4.Mouse(); b.Has(w4.MouseLeft) {
		w4.SetPixel(int(x), int(y), 3)
	}
}

func (c *cart) save() {
	var buf [2]byte
	binary.LittleEndian.PutUint16(buf[:], c.presses)
	if w4.DiskWrite(buf[:]) != len(buf) {
		w4.Trace("hello: saving presses failed")
	}
}
