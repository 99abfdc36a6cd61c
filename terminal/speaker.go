package terminal

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/mp3"
	"github.com/gopxl/beep/speaker"
	"github.com/gopxl/beep/vorbis"
	"github.com/rotisserie/eris"

	"ebiten-actors/synth"
)

// Speaker plays actor tones and background music through the beep speaker
type Speaker struct {
	mu   sync.Mutex
	bgm  beep.StreamSeekCloser
	ctrl *beep.Ctrl
}

// NewSpeaker initializes the speaker. The scene runs silent if this fails.
func NewSpeaker() (*Speaker, error) {
	sr := synth.SampleRate
	if err := speaker.Init(sr, sr.N(time.Second/10)); err != nil {
		return nil, eris.Wrap(err, "failed to initialize speaker")
	}
	return &Speaker{}, nil
}

// PlayTone plays a faded sine blip
func (s *Speaker) PlayTone(freq float64, d time.Duration) error {
	tone, err := synth.ToneStreamer(synth.SampleRate, freq, d)
	if err != nil {
		return err
	}
	speaker.Play(tone)
	return nil
}

// PlayBGM loops an mp3 or ogg file
func (s *Speaker) PlayBGM(path string) error {
	s.StopBGM()

	file, err := os.Open(path)
	if err != nil {
		return eris.Wrapf(err, "failed to open audio file %s", path)
	}

	var (
		stream beep.StreamSeekCloser
		format beep.Format
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".mp3":
		stream, format, err = mp3.Decode(file)
	case ".ogg":
		stream, format, err = vorbis.Decode(file)
	default:
		file.Close()
		return eris.Errorf("unsupported audio format: %s", path)
	}
	if err != nil {
		file.Close()
		return eris.Wrapf(err, "failed to decode audio file %s", path)
	}

	var music beep.Streamer = beep.Loop(-1, stream)
	if format.SampleRate != synth.SampleRate {
		music = beep.Resample(4, format.SampleRate, synth.SampleRate, music)
	}

	ctrl := &beep.Ctrl{Streamer: music}
	s.mu.Lock()
	s.bgm, s.ctrl = stream, ctrl
	s.mu.Unlock()
	speaker.Play(ctrl)
	return nil
}

// StopBGM stops the background music. Tones keep playing.
func (s *Speaker) StopBGM() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.bgm == nil {
		return
	}
	detach(s.ctrl)
	s.bgm.Close()
	s.bgm, s.ctrl = nil, nil
}

// detach empties ctrl under the speaker lock; the mixer drops a drained
// streamer on its next pass
func detach(ctrl *beep.Ctrl) {
	speaker.Lock()
	ctrl.Streamer = nil
	speaker.Unlock()
}

// Close stops playback and releases the device
func (s *Speaker) Close() {
	s.StopBGM()
	speaker.Close()
}
