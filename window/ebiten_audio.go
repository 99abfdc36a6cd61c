package window

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/mp3"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/rotisserie/eris"

	"ebiten-actors/synth"
)

type toneKey struct {
	freq float64
	d    time.Duration
}

// EbitenAudio plays actor tones and looping background music through the
// ebiten audio context
type EbitenAudio struct {
	audioContext *audio.Context
	bgmPlayer    *audio.Player
	bgmFile      *os.File
	volume       float64
	sampleRate   int
	tones        map[toneKey][]byte
}

// NewEbitenAudio creates the audio device. Only one can exist per process.
func NewEbitenAudio() *EbitenAudio {
	sampleRate := int(synth.SampleRate)
	return &EbitenAudio{
		audioContext: audio.NewContext(sampleRate),
		volume:       1.0,
		sampleRate:   sampleRate,
		tones:        make(map[toneKey][]byte),
	}
}

// PlayTone plays a faded sine blip. Synthesized tones are cached.
func (s *EbitenAudio) PlayTone(freq float64, d time.Duration) error {
	key := toneKey{freq: freq, d: d}
	pcm, ok := s.tones[key]
	if !ok {
		var err error
		pcm, err = synth.TonePCM(synth.SampleRate, freq, d)
		if err != nil {
			return err
		}
		s.tones[key] = pcm
	}

	player := s.audioContext.NewPlayerFromBytes(pcm)
	player.SetVolume(s.volume)
	player.Play()
	return nil
}

// PlayBGM starts looping background music from an mp3 or ogg file
func (s *EbitenAudio) PlayBGM(path string) error {
	s.StopBGM()

	file, err := os.Open(path)
	if err != nil {
		return eris.Wrapf(err, "failed to open audio file %s", path)
	}

	var (
		stream io.ReadSeeker
		length int64
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".mp3":
		var st *mp3.Stream
		st, err = mp3.DecodeWithSampleRate(s.sampleRate, file)
		if err == nil {
			stream, length = st, st.Length()
		}
	case ".ogg":
		var st *vorbis.Stream
		st, err = vorbis.DecodeWithSampleRate(s.sampleRate, file)
		if err == nil {
			stream, length = st, st.Length()
		}
	default:
		file.Close()
		return eris.Errorf("unsupported audio format: %s", path)
	}
	if err != nil {
		file.Close()
		return eris.Wrapf(err, "failed to decode audio file %s", path)
	}

	player, err := s.audioContext.NewPlayer(audio.NewInfiniteLoop(stream, length))
	if err != nil {
		file.Close()
		return eris.Wrap(err, "failed to create audio player")
	}

	s.bgmFile = file
	s.bgmPlayer = player
	s.bgmPlayer.SetVolume(s.volume)
	s.bgmPlayer.Play()
	return nil
}

// StopBGM stops the background music
func (s *EbitenAudio) StopBGM() {
	if s.bgmPlayer != nil {
		s.bgmPlayer.Close()
		s.bgmPlayer = nil
	}
	if s.bgmFile != nil {
		s.bgmFile.Close()
		s.bgmFile = nil
	}
}

// IsBGMPlaying returns whether background music is currently playing
func (s *EbitenAudio) IsBGMPlaying() bool {
	return s.bgmPlayer != nil && s.bgmPlayer.IsPlaying()
}

// SetVolume sets the volume for tones and music (0.0 to 1.0)
func (s *EbitenAudio) SetVolume(volume float64) {
	s.volume = volume
	if s.bgmPlayer != nil {
		s.bgmPlayer.SetVolume(volume)
	}
}

func (s *EbitenAudio) Close() {
	s.StopBGM()
}
