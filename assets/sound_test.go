package assets

import (
	"encoding/binary"
	"testing"
)

func TestToneLayout(t *testing.T) {
	cases := []struct {
		name    string
		seconds float64
		want    int
	}{
		{name: "tenth", seconds: 0.1, want: 4410 * 4},
		{name: "empty", seconds: 0, want: 0},
		{name: "negative", seconds: -1, want: 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := len(Tone(440, c.seconds, 0.5)); got != c.want {
				t.Fatalf("len = %d, want %d", got, c.want)
			}
		})
	}
}

func TestToneChannelsMatchAndStartSilent(t *testing.T) {
	pcm := Tone(880, 0.05, 1)
	if l := binary.LittleEndian.Uint16(pcm[0:]); l != 0 {
		t.Fatalf("first sample = %d, want 0", l)
	}
	peak := 0
	for i := 0; i+4 <= len(pcm); i += 4 {
		l := int16(binary.LittleEndian.Uint16(pcm[i:]))
		r := int16(binary.LittleEndian.Uint16(pcm[i+2:]))
		if l != r {
			t.Fatalf("frame %d: left %d != right %d", i/4, l, r)
		}
		peak = max(peak, int(l))
	}
	if peak < 10000 {
		t.Fatalf("peak = %d, tone too quiet", peak)
	}
}
