// Package ambience plays looping ambient sounds and spawns the particle
// visuals that accompany them. At most one sound and its visual are active at
// a time.
package ambience

import (
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/flac"
	"github.com/gopxl/beep/v2/mp3"
	"github.com/gopxl/beep/v2/speaker"
	"github.com/gopxl/beep/v2/vorbis"
	"github.com/gopxl/beep/v2/wav"
	"github.com/maruel/natural"

	"github.com/ayoisaiah/mindful/internal/apperr"
)

var errInvalidSoundFormat = &apperr.Error{
	Message: "sound file must be in mp3, ogg, flac, or wav format: %s",
}

var soundExts = []string{".mp3", ".ogg", ".flac", ".wav"}

// Player plays one looping sound at a time.
type Player interface {
	Play(file string) error
	Stop()
}

// BeepPlayer plays sounds through the system speaker.
type BeepPlayer struct {
	stream     beep.StreamSeekCloser
	dir        string
	volume     float64
	sampleRate beep.SampleRate
	mu         sync.Mutex
}

// NewBeepPlayer returns a player that resolves relative file names against
// dir. Volume is relative to the original level: 0 leaves it unchanged,
// negative values make it quieter.
func NewBeepPlayer(dir string, volume float64) *BeepPlayer {
	return &BeepPlayer{
		dir:    dir,
		volume: volume,
	}
}

// Play replaces whatever is playing with file, looped forever.
func (p *BeepPlayer) Play(file string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.stopLocked()

	stream, format, err := decode(p.resolve(file))
	if err != nil {
		return err
	}

	if p.sampleRate == 0 {
		bufferSize := 10

		err = speaker.Init(
			format.SampleRate,
			format.SampleRate.N(time.Duration(int(time.Second)/bufferSize)),
		)
		if err != nil {
			_ = stream.Close()
			return err
		}

		p.sampleRate = format.SampleRate
	}

	looped, err := beep.Loop2(stream)
	if err != nil {
		_ = stream.Close()
		return err
	}

	var s beep.Streamer = looped

	if format.SampleRate != p.sampleRate {
		s = beep.Resample(4, format.SampleRate, p.sampleRate, s)
	}

	p.stream = stream

	speaker.Play(&effects.Volume{
		Streamer: s,
		Base:     2,
		Volume:   p.volume,
	})

	return nil
}

// Stop silences the speaker and releases the current file.
func (p *BeepPlayer) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.stopLocked()
}

func (p *BeepPlayer) stopLocked() {
	if p.stream == nil {
		return
	}

	speaker.Clear()

	_ = p.stream.Close()
	p.stream = nil
}

func (p *BeepPlayer) resolve(file string) string {
	if filepath.IsAbs(file) || p.dir == "" {
		return file
	}

	return filepath.Join(p.dir, file)
}

// decode opens path and returns a seekable stream. The file stays open until
// the stream is closed.
func decode(path string) (beep.StreamSeekCloser, beep.Format, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if !slices.Contains(soundExts, ext) {
		return nil, beep.Format{}, errInvalidSoundFormat.Fmt(path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, beep.Format{}, err
	}

	var (
		stream beep.StreamSeekCloser
		format beep.Format
	)

	switch ext {
	case ".ogg":
		stream, format, err = vorbis.Decode(f)
	case ".mp3":
		stream, format, err = mp3.Decode(f)
	case ".flac":
		stream, format, err = flac.Decode(io.Reader(f))
	case ".wav":
		stream, format, err = wav.Decode(io.Reader(f))
	}

	if err != nil {
		_ = f.Close()
		return nil, beep.Format{}, err
	}

	return stream, format, nil
}

// Available lists the sound files in dir in natural order.
func Available(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var files []string

	for _, e := range entries {
		if e.IsDir() {
			continue
		}

		ext := strings.ToLower(filepath.Ext(e.Name()))
		if slices.Contains(soundExts, ext) {
			files = append(files, e.Name())
		}
	}

	slices.SortFunc(files, func(a, b string) int {
		switch {
		case natural.Less(a, b):
			return -1
		case natural.Less(b, a):
			return 1
		default:
			return 0
		}
	})

	return files, nil
}
