package w4

// ToneFrequency is a frequency sweep in hertz. A zero End holds Start.
type ToneFrequency struct {
	Start, End uint16
}

func (f ToneFrequency) Pack() uint32 {
	return uint32(f.Start) | uint32(f.End)<<16
}

// ToneDuration is an ADSR envelope measured in frames.
type ToneDuration struct {
	Attack, Decay, Sustain, Release uint8
}

func (d ToneDuration) Pack() uint32 {
	return uint32(d.Attack)<<24 | uint32(d.Decay)<<16 |
		uint32(d.Release)<<8 | uint32(d.Sustain)
}

// ToneVolume gives the sustain and attack-peak volumes, 0-100.
// A zero Peak is played at 100.
type ToneVolume struct {
	Sustain, Peak uint8
}

func (v ToneVolume) Pack() uint32 {
	return uint32(v.Sustain) | uint32(v.Peak)<<8
}

// ToneChannel selects the audio channel (bits 0-1).
type ToneChannel uint8

const (
	TonePulse1 ToneChannel = iota
	TonePulse2
	ToneTriangle
	ToneNoise
)

// ToneMode selects the duty cycle of the pulse channels (bits 2-3).
type ToneMode uint8

const (
	ToneMode1 ToneMode = iota << 2 // 1/8
	ToneMode2                      // 1/4
	ToneMode3                      // 1/2
	ToneMode4                      // 3/4
)

// TonePan selects the stereo position (bits 4-5).
type TonePan uint8

const (
	TonePanCenter TonePan = iota << 4
	TonePanLeft
	TonePanRight
)

// ToneNoteMode (bit 6) makes the host read frequencies as MIDI note
// numbers, with pitch bend in the high byte of each half.
const ToneNoteMode = 1 << 6

type ToneFlags struct {
	Channel ToneChannel
	Mode    ToneMode
	Pan     TonePan
	Note    bool
}

func (f ToneFlags) Pack() uint32 {
	v := uint32(f.Channel&0x3) | uint32(f.Mode&0xc) | uint32(f.Pan&0x30)
	if f.Note {
		v |= ToneNoteMode
	}
	return v
}

// Tone plays a sound.
func Tone(freq ToneFrequency, dur ToneDuration, vol ToneVolume, flags ToneFlags) {
	hostTone(freq.Pack(), dur.Pack(), vol.Pack(), flags.Pack())
}
