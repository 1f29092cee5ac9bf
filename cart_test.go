package main

import (
	"reflect"
	"testing"

	"github.com/nf/w4go/w4"
	"github.com/nf/w4go/w4/w4test"
)

func TestStart(t *testing.T) {
	for _, c := range []struct {
		disk    []byte
		presses uint16
	}{
		{nil, 0},
		{[]byte{7}, 0}, // short read
		{[]byte{0x34, 0x12}, 0x1234},
	} {
		r := w4test.Install(t)
		r.Disk = c.disk

		var cr cart
		cr.start()
		if cr.presses != c.presses {
			t.Errorf("disk %x: presses == %d, want %d", c.disk, cr.presses, c.presses)
		}
		tones := r.Named("tone")
		if len(tones) != 1 {
			t.Fatalf("played %d tones, want 1", len(tones))
		}
		want := []int64{880<<16 | 440, 100, 100<<8 | 50, int64(w4.ToneMode3)}
		if !reflect.DeepEqual(tones[0].Args, want) {
			t.Errorf("tone args %v, want %v", tones[0].Args, want)
		}
		if tr := r.Traces(); len(tr) != 1 {
			t.Errorf("traced %q, want one greeting", tr)
		}
	}
}

func TestUpdate(t *testing.T) {
	r := w4test.Install(t)
	var c cart

	c.update()
	if g := w4.GetDrawColors().Slot(1); g != 2 {
		t.Errorf("draw color 1 is %d, want 2", g)
	}
	wantTexts := []string{"Hello from Go!", "Press X to blink", "Presses: 0"}
	if g := r.Texts(); !reflect.DeepEqual(g, wantTexts) {
		t.Errorf("drew texts %q, want %q", g, wantTexts)
	}
	blits := r.Named("blit")
	if len(blits) != 1 {
		t.Fatalf("blitted %d sprites, want 1", len(blits))
	}
	if !reflect.DeepEqual(blits[0].Args, []int64{76, 76, 8, 8, 0}) {
		t.Errorf("blit args %v", blits[0].Args)
	}
	if !reflect.DeepEqual(blits[0].Data, smiley[:]) {
		t.Errorf("blit data %x, want smiley", blits[0].Data)
	}
	if len(r.Named("diskw")) != 0 {
		t.Errorf("wrote disk without a press")
	}
}

func TestUpdatePress(t *testing.T) {
	r := w4test.Install(t)
	var c cart

	w4.Poke(w4.GamepadAddr, byte(w4.ButtonX))
	c.update()
	if g := w4.GetDrawColors().Slot(1); g != 4 {
		t.Errorf("draw color 1 is %d while X held, want 4", g)
	}
	if c.presses != 1 {
		t.Errorf("presses == %d, want 1", c.presses)
	}
	if string(r.Disk) != "\x01\x00" {
		t.Errorf("disk holds %x, want 0100", r.Disk)
	}

	// Holding X does not count again.
	c.update()
	if c.presses != 1 {
		t.Errorf("presses == %d after holding X, want 1", c.presses)
	}

	w4.Poke(w4.GamepadAddr, 0)
	c.update()
	if g := w4.GetDrawColors().Slot(1); g != 2 {
		t.Errorf("draw color 1 is %d after release, want 2", g)
	}

	w4.Poke(w4.GamepadAddr, byte(w4.ButtonX|w4.ButtonUp))
	c.update()
	if c.presses != 2 {
		t.Errorf("presses == %d, want 2", c.presses)
	}
	if n := len(r.Named("diskw")); n != 2 {
		t.Errorf("wrote disk %d times, want 2", n)
	}
	texts := r.Texts()
	if g := texts[len(texts)-1]; g != "Presses: 2" {
		t.Errorf("last text %q, want %q", g, "Presses: 2")
	}

	// Another player's X is ignored.
	w4.Poke(w4.GamepadAddr, 0)
	w4.Poke(w4.GamepadAddr+1, byte(w4.ButtonX))
	c.update()
	if c.presses != 2 {
		t.Errorf("presses == %d after player 2 pressed X, want 2", c.presses)
	}
}

func TestUpdateMouse(t *testing.T) {
	w4test.Install(t)
	var c cart

	w4.Poke(w4.MouseXAddr, 10)
	w4.Poke(w4.MouseYAddr, 20)
	c.update()
	if g := w4.Pixel(10, 20); g != 0 {
		t.Errorf("pixel set without a click")
	}

	w4.Poke(w4.MouseButtonsAddr, byte(w4.MouseLeft))
	c.update()
	if g := w4.Pixel(10, 20); g != 3 {
		t.Errorf("Pixel(10, 20) == %d after click, want 3", g)
	}

	// Off-screen clicks are ignored.
	w4.Poke(w4.MouseXAddr, 0xff)
	w4.Poke(w4.MouseXAddr+1, 0xff)
	c.update()
}

func TestHooksCatchPanic(t *testing.T) {
	r := w4test.Install(t)
	defer func() {
		if recover() == nil {
			t.Errorf("update did not panic")
		}
		if tr := r.Traces(); len(tr) == 0 || tr[0] != "panic" {
			t.Errorf("traced %q, want panic report", tr)
		}
	}()
	w4.SetHost(panicHost{r})
	update()
}

// panicHost fails the first blit.
type panicHost struct{ *w4test.Recorder }

func (panicHost) Blit([]byte, int32, int32, uint32, uint32, uint32) {
	panic("blit failed")
}
