// Package synth synthesizes the short tones actors emit. Device playback
// lives with the window backends.
package synth

import (
	"encoding/binary"
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/rotisserie/eris"
)

// SampleRate used for all synthesized audio
const SampleRate beep.SampleRate = 44100

// fadeSamples is the length of the linear fade applied at both ends of a
// tone so it does not click
const fadeSamples = 256

// Tone returns a streamer playing a sine at freq Hz for d
func Tone(sr beep.SampleRate, freq float64, d time.Duration) (beep.Streamer, error) {
	if freq <= 0 || freq >= float64(sr)/2 {
		return nil, eris.Errorf("tone frequency %.1f Hz out of range for sample rate %d", freq, sr)
	}
	sine, err := generators.SineTone(sr, freq)
	if err != nil {
		return nil, eris.Wrap(err, "failed to create sine generator")
	}
	return beep.Take(sr.N(d), sine), nil
}

// Samples drains a streamer into a slice, applying the edge fade
func Samples(s beep.Streamer) [][2]float64 {
	var out [][2]float64
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		out = append(out, buf[:n]...)
		if !ok {
			break
		}
	}

	for i := range out {
		gain := 1.0
		if i < fadeSamples {
			gain = float64(i) / fadeSamples
		}
		if rem := len(out) - 1 - i; rem < fadeSamples {
			gain = math.Min(gain, float64(rem)/fadeSamples)
		}
		out[i][0] *= gain
		out[i][1] *= gain
	}
	return out
}

// PCM16 encodes samples as signed 16-bit little-endian interleaved stereo
func PCM16(samples [][2]float64) []byte {
	out := make([]byte, len(samples)*4)
	for i, s := range samples {
		binary.LittleEndian.PutUint16(out[i*4:], uint16(toInt16(s[0])))
		binary.LittleEndian.PutUint16(out[i*4+2:], uint16(toInt16(s[1])))
	}
	return out
}

// ToneStreamer returns an in-memory streamer for a faded tone
func ToneStreamer(sr beep.SampleRate, freq float64, d time.Duration) (beep.Streamer, error) {
	s, err := Tone(sr, freq, d)
	if err != nil {
		return nil, err
	}
	samples := Samples(s)
	return beep.StreamerFunc(func(buf [][2]float64) (int, bool) {
		if len(samples) == 0 {
			return 0, false
		}
		n := copy(buf, samples)
		samples = samples[n:]
		return n, true
	}), nil
}

// TonePCM synthesizes a faded tone as 16-bit PCM
func TonePCM(sr beep.SampleRate, freq float64, d time.Duration) ([]byte, error) {
	s, err := Tone(sr, freq, d)
	if err != nil {
		return nil, err
	}
	return PCM16(Samples(s)), nil
}

func toInt16(v float64) int16 {
	v = math.Max(-1, math.Min(1, v))
	return int16(math.Round(v * math.MaxInt16))
}
