package audio

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSynthLengthAndEnvelope(t *testing.T) {
	pcm := Synth([]float32{440, 880}, 0.1)
	perNote := int(0.1 * sampleRate)
	assert.Len(t, pcm, 2*2*perNote)

	peak := func(from, to int) int16 {
		var p int16
		for i := from; i < to; i++ {
			v := int16(binary.LittleEndian.Uint16(pcm[2*i:]))
			if v < 0 {
				v = -v
			}
			p = max(p, v)
		}
		return p
	}

	head := peak(0, perNote/10)
	tail := peak(perNote-perNote/10, perNote)
	assert.Greater(t, head, tail, "note should decay")
	assert.Equal(t, int16(0), int16(binary.LittleEndian.Uint16(pcm[0:])))
}

func TestDisabledChimeIsSilent(t *testing.T) {
	c := NewChime(Settings{Enabled: false})
	assert.False(t, c.Init())
	c.Play()
	c.Close()
}
