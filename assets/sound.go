// Package assets synthesises the game's sound effects.
package assets

import (
	"encoding/binary"
	"math"
	"sync"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

const SampleRate = 44100

var (
	audioOnce    sync.Once
	audioContext *audio.Context
)

// Context returns the process-wide audio context, creating it on first use.
func Context() *audio.Context {
	audioOnce.Do(func() {
		audioContext = audio.NewContext(SampleRate)
	})
	return audioContext
}

// Tone renders a sine blip as 16-bit little-endian stereo PCM, the format
// ebiten's audio players consume directly. The tail fades out linearly to
// avoid a click.
func Tone(freq, seconds, volume float64) []byte {
	n := int(seconds * SampleRate)
	if n <= 0 {
		return nil
	}
	volume = math.Max(0, math.Min(1, volume))
	buf := make([]byte, n*4)
	for i := range n {
		env := 1 - float64(i)/float64(n)
		s := math.Sin(2*math.Pi*freq*float64(i)/SampleRate) * env * volume
		v := uint16(int16(s * math.MaxInt16))
		binary.LittleEndian.PutUint16(buf[i*4:], v)
		binary.LittleEndian.PutUint16(buf[i*4+2:], v)
	}
	return buf
}

// Sound is a named effect ready to replay.
type Sound struct {
	pcm []byte
}

func NewSound(freq, seconds, volume float64) *Sound {
	return &Sound{pcm: Tone(freq, seconds, volume)}
}

// Play starts a fresh player so overlapping blips mix instead of cutting
// each other off.
func (s *Sound) Play() {
	if s == nil || len(s.pcm) == 0 {
		return
	}
	p := Context().NewPlayerFromBytes(s.pcm)
	p.Play()
}
