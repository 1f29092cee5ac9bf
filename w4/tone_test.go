package w4

import "testing"

func TestTonePack(t *testing.T) {
	if g := (ToneFrequency{Start: 440, End: 880}).Pack(); g != 880<<16|440 {
		t.Errorf("frequency packed to %.8x", g)
	}
	if g := (ToneDuration{Attack: 1, Decay: 2, Sustain: 3, Release: 4}).Pack(); g != 0x01020403 {
		t.Errorf("duration packed to %.8x, want 01020403", g)
	}
	if g := (ToneVolume{Sustain: 50, Peak: 100}).Pack(); g != 100<<8|50 {
		t.Errorf("volume packed to %.8x", g)
	}
}

func TestToneFlagsPack(t *testing.T) {
	for _, c := range []struct {
		f    ToneFlags
		want uint32
	}{
		{ToneFlags{}, 0},
		{ToneFlags{Channel: TonePulse2}, 0x01},
		{ToneFlags{Channel: ToneNoise, Mode: ToneMode4}, 0x0f},
		{ToneFlags{Channel: TonePulse1, Mode: ToneMode3, Pan: TonePanCenter}, 0x08},
		{ToneFlags{Channel: ToneTriangle, Pan: TonePanRight}, 0x22},
		{ToneFlags{Mode: ToneMode2, Pan: TonePanLeft, Note: true}, 0x54},
		// Out of range values do not leak into other fields.
		{ToneFlags{Channel: 0xff}, 0x03},
	} {
		if g := c.f.Pack(); g != c.want {
			t.Errorf("%+v packed to %.2x, want %.2x", c.f, g, c.want)
		}
	}
}
