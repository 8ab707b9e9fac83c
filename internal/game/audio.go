package game

import (
	"io"
	"math"
	"time"

	"github.com/hajimehoshi/oto/v2"

	"github.com/gsinfogaurav-sudo/music/internal/util"
)

const (
	SampleRate   = 44100
	ChannelCount = 2
	BitDepth     = 0 // 32-bit float (oto.FormatFloat32LE)
)

// SoundKind identifies the feedback cues.
type SoundKind int

const (
	SoundCorrect SoundKind = iota
	SoundIncorrect
	SoundComplete
	SoundMenuSelect
	SoundMetronome
)

// AudioSystem owns the oto context. The platform may refuse output
// until after a user interaction; playback silently drops until the
// ready channel closes.
type AudioSystem struct {
	ctx   *oto.Context
	ready chan struct{}
}

var globalAudio *AudioSystem

var sfxVolume float64 = 0.55

// InitAudio initializes the audio system.
func InitAudio() error {
	ctx, ready, err := oto.NewContext(SampleRate, ChannelCount, BitDepth)
	if err != nil {
		return err
	}
	globalAudio = &AudioSystem{ctx: ctx, ready: ready}
	return nil
}

// SetVolume sets output gain in [0,1].
func SetVolume(vol float64) {
	sfxVolume = util.Clamp(vol, 0, 1)
}

// PlayTone sounds a decaying pulse at freq. Each call plays an
// independent voice; overlapping calls simply mix.
func PlayTone(freq float64) {
	playSamples(genTone(freq, ToneSeconds))
}

// PlaySound plays a procedurally generated feedback cue.
func PlaySound(kind SoundKind) {
	playSamples(generateSound(kind))
}

func playSamples(samples []byte) {
	if globalAudio == nil || len(samples) == 0 {
		return
	}
	select {
	case <-globalAudio.ready:
	default:
		return
	}
	go func() {
		reader := &soundReader{data: samples}
		player := globalAudio.ctx.NewPlayer(reader)
		player.SetVolume(sfxVolume)
		player.Play()
		for player.IsPlaying() {
			time.Sleep(10 * time.Millisecond)
		}
		player.Close()
	}()
}

type soundReader struct {
	data []byte
	pos  int
}

func (r *soundReader) Read(p []byte) (int, error) {
	if r.pos >= len(r.data) {
		return 0, io.EOF
	}
	n := copy(p, r.data[r.pos:])
	r.pos += n
	return n, nil
}

// putStereoF32 writes a [-1,1] sample as float32 LE to both stereo channels at frame i.
func putStereoF32(buf []byte, i int, sample float64) {
	v := math.Float32bits(float32(sample))
	buf[i*8] = byte(v)
	buf[i*8+1] = byte(v >> 8)
	buf[i*8+2] = byte(v >> 16)
	buf[i*8+3] = byte(v >> 24)
	buf[i*8+4] = byte(v)
	buf[i*8+5] = byte(v >> 8)
	buf[i*8+6] = byte(v >> 16)
	buf[i*8+7] = byte(v >> 24)
}

// softSat applies gentle tanh-like saturation — no harsh clipping.
func softSat(x float64) float64 {
	if x > 1.0 {
		return 1.0 - 0.5/(x)
	}
	if x < -1.0 {
		return -1.0 + 0.5/(-x)
	}
	return x - x*x*x/3.0
}

// adsr returns an envelope at normalized progress [0,1].
// attack/decay/release are fractions of the total duration.
func adsr(progress, attack, decay, sustain, release float64) float64 {
	switch {
	case progress < attack:
		return progress / attack
	case progress < attack+decay:
		return 1.0 - (progress-attack)/decay*(1.0-sustain)
	case progress < 1.0-release:
		return sustain
	default:
		return sustain * (1.0 - (progress-(1.0-release))/release)
	}
}

// fm returns an FM-synthesized sample.
// carrier: base frequency, modRatio: modulator/carrier ratio, modIdx: modulation depth.
func fm(t, carrier, modRatio, modIdx float64) float64 {
	mod := math.Sin(2 * math.Pi * carrier * modRatio * t)
	return math.Sin(2*math.Pi*carrier*t + modIdx*mod)
}

// makeBuf allocates a stereo float32 buffer for n samples.
func makeBuf(n int) []byte { return make([]byte, n*8) }

// ---- Cues ----------------------------------------------------------------

func generateSound(kind SoundKind) []byte {
	switch kind {
	case SoundCorrect:
		return genCorrect()
	case SoundIncorrect:
		return genIncorrect()
	case SoundComplete:
		return genComplete()
	case SoundMenuSelect:
		return genMenuSelect()
	case SoundMetronome:
		return genMetronome()
	}
	return nil
}

// genTone: the keyboard voice — sine with a soft second harmonic and
// an exponential decay, short attack to avoid clicks.
func genTone(freq, dur float64) []byte {
	if freq <= 0 {
		return nil
	}
	n := int(dur * SampleRate)
	mix := make([]float64, n)
	for i := range mix {
		t := float64(i) / SampleRate
		p := float64(i) / float64(n)
		env := adsr(p, 0.01, 0.25, 0.35, 0.45)
		s := math.Sin(2*math.Pi*freq*t) * env * 0.46
		s += math.Sin(2*math.Pi*freq*2*t) * env * 0.12
		s += fm(t, freq, 3.0, 0.5*(1-p)) * env * 0.07
		mix[i] = s
	}
	return renderMix(mix)
}

// genCorrect: a rising perfect fifth, the second note landing on the
// downbeat of the feedback hold.
func genCorrect() []byte {
	steps := []struct {
		freq  float64
		start float64 // seconds into the cue
	}{
		{freq: 587.33, start: 0},    // D5
		{freq: 880.00, start: 0.08}, // A5
	}
	total := int(0.3 * SampleRate)
	mix := make([]float64, total)
	for _, st := range steps {
		from := int(st.start * SampleRate)
		span := total - from
		for j := 0; j < span; j++ {
			t := float64(j) / SampleRate
			np := float64(j) / float64(span)
			env := adsr(np, 0.008, 0.3, 0.12, 0.4)
			mix[from+j] += fm(t, st.freq, 2.0, 1.4*env) * env * 0.34
		}
	}
	return renderMix(mix)
}

// genIncorrect: a flat low wobble, clearly "no" without being harsh.
func genIncorrect() []byte {
	const base = 196.0 // G3
	n := int(0.28 * SampleRate)
	mix := make([]float64, n)
	for i := range mix {
		t := float64(i) / SampleRate
		p := float64(i) / float64(n)
		wobble := 1.0 + 0.02*math.Sin(2*math.Pi*11*t)
		env := adsr(p, 0.02, 0.3, 0.25, 0.35)
		mix[i] = fm(t, base*wobble*(1-0.18*p), 1.01, 1.1) * env * 0.4
	}
	return renderMix(mix)
}

// genComplete: the tonic triad rolled upward, one bell voice per note,
// each ringing until the cue ends.
func genComplete() []byte {
	arp := []float64{523.25, 659.25, 783.99, 1046.5} // C5 E5 G5 C6
	step := int(0.09 * SampleRate)
	total := len(arp)*step + int(0.25*SampleRate)
	mix := make([]float64, total)
	for vi, freq := range arp {
		from := vi * step
		ring := total - from
		for j := 0; j < ring; j++ {
			t := float64(j) / SampleRate
			decay := math.Exp(-3.2 * float64(j) / float64(ring))
			bell := fm(t, freq, 1.4, 2.0*decay)
			mix[from+j] += bell * decay * 0.3
		}
	}
	return renderMix(mix)
}

// genMenuSelect: a dry sub-50ms tap.
func genMenuSelect() []byte {
	n := int(0.045 * SampleRate)
	mix := make([]float64, n)
	for i := range mix {
		t := float64(i) / SampleRate
		p := float64(i) / float64(n)
		mix[i] = math.Sin(2*math.Pi*1046.5*t) * (1 - p) * (1 - p) * 0.35
	}
	return renderMix(mix)
}

// genMetronome: woodblock-ish tick for counting beats.
func genMetronome() []byte {
	n := int(0.05 * SampleRate)
	mix := make([]float64, n)
	for i := range mix {
		t := float64(i) / SampleRate
		p := float64(i) / float64(n)
		body := math.Sin(2*math.Pi*1900*t) * math.Exp(-p*28) * 0.5
		knock := math.Sin(2*math.Pi*840*t) * math.Exp(-p*16) * 0.22
		mix[i] = body + knock
	}
	return renderMix(mix)
}

// renderMix saturates a mono mix and packs it as stereo float32 frames.
func renderMix(mix []float64) []byte {
	buf := makeBuf(len(mix))
	for i, s := range mix {
		putStereoF32(buf, i, softSat(s))
	}
	return buf
}
