package game

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAdsrEnvelopeShape(t *testing.T) {
	assert.InDelta(t, 0.0, adsr(0, 0.1, 0.2, 0.5, 0.2), 0.001)
	assert.InDelta(t, 1.0, adsr(0.1, 0.1, 0.2, 0.5, 0.2), 0.001)
	assert.InDelta(t, 0.5, adsr(0.5, 0.1, 0.2, 0.5, 0.2), 0.001, "sustain plateau")
	assert.InDelta(t, 0.0, adsr(1.0, 0.1, 0.2, 0.5, 0.2), 0.001)

	for p := 0.0; p <= 1.0; p += 0.01 {
		v := adsr(p, 0.1, 0.2, 0.5, 0.2)
		assert.GreaterOrEqual(t, v, 0.0)
		assert.LessOrEqual(t, v, 1.0)
	}
}

func TestSoftSatStaysBounded(t *testing.T) {
	for _, x := range []float64{-10, -2, -1, -0.5, 0, 0.5, 1, 2, 10} {
		y := softSat(x)
		assert.LessOrEqual(t, math.Abs(y), 1.0, "input %v", x)
	}
	assert.Equal(t, 0.0, softSat(0))
	assert.Greater(t, softSat(0.5), 0.0)
	assert.Less(t, softSat(-0.5), 0.0)
}

func TestPutStereoF32RoundTrip(t *testing.T) {
	buf := makeBuf(2)
	putStereoF32(buf, 0, 0.25)
	putStereoF32(buf, 1, -1)

	read := func(off int) float32 {
		bits := uint32(buf[off]) | uint32(buf[off+1])<<8 | uint32(buf[off+2])<<16 | uint32(buf[off+3])<<24
		return math.Float32frombits(bits)
	}
	assert.Equal(t, float32(0.25), read(0), "left")
	assert.Equal(t, float32(0.25), read(4), "right")
	assert.Equal(t, float32(-1), read(8))
}

func TestGenToneLengthAndBounds(t *testing.T) {
	buf := genTone(440, ToneSeconds)
	assert.Equal(t, int(ToneSeconds*SampleRate)*8, len(buf))

	for i := 0; i < len(buf)/8; i++ {
		bits := uint32(buf[i*8]) | uint32(buf[i*8+1])<<8 | uint32(buf[i*8+2])<<16 | uint32(buf[i*8+3])<<24
		s := math.Float32frombits(bits)
		assert.LessOrEqual(t, math.Abs(float64(s)), 1.0)
	}
}

func TestGenToneRejectsBadFrequency(t *testing.T) {
	assert.Nil(t, genTone(0, ToneSeconds))
	assert.Nil(t, genTone(-440, ToneSeconds))
}

func TestFeedbackCuesAreNonEmpty(t *testing.T) {
	for _, kind := range []SoundKind{SoundCorrect, SoundIncorrect, SoundComplete, SoundMenuSelect, SoundMetronome} {
		buf := generateSound(kind)
		assert.NotEmpty(t, buf)
		assert.Zero(t, len(buf)%8, "whole stereo frames")
	}
}

func TestPlayWithoutAudioContextIsSafe(t *testing.T) {
	prev := globalAudio
	globalAudio = nil
	defer func() { globalAudio = prev }()

	PlayTone(440)
	PlaySound(SoundCorrect)
}

func TestSetVolumeClamps(t *testing.T) {
	defer SetVolume(0.55)
	SetVolume(2)
	assert.Equal(t, 1.0, sfxVolume)
	SetVolume(-1)
	assert.Equal(t, 0.0, sfxVolume)
}
