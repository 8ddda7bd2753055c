package yuletide

import (
	"fmt"
	"io/fs"
	"math"
	"path"
	"strings"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/mp3"
	"github.com/gopxl/beep/speaker"
	"github.com/gopxl/beep/wav"
)

// Music is a looping background track playing on the speaker's own
// goroutine. The render loop never waits on it.
type Music struct {
	ctrl     *beep.Ctrl
	streamer beep.StreamSeekCloser
}

// PlayMusic decodes name from store and loops it forever at volume in
// [0, 1]. Any failure is logged and nil is returned; the overlay runs silent.
func PlayMusic(store fs.FS, name string, volume float64) *Music {
	m, err := playMusic(store, name, volume)
	if err != nil {
		logErr(err)
		return nil
	}
	return m
}

func playMusic(store fs.FS, name string, volume float64) (*Music, error) {
	if store == nil {
		return nil, fmt.Errorf("%w: %s: no asset store", ErrAssetLoad, name)
	}
	decode, err := decoderFor(name)
	if err != nil {
		return nil, err
	}
	f, err := store.Open(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrAssetLoad, name, err)
	}
	streamer, format, err := decode(f)
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("%w: decode %s: %w", ErrAssetLoad, name, err)
	}

	if err := speaker.Init(format.SampleRate, format.SampleRate.N(time.Second/10)); err != nil {
		_ = streamer.Close()
		return nil, fmt.Errorf("%w: audio output: %w", ErrPlatform, err)
	}

	gain, silent := volumeToGain(volume)
	ctrl := &beep.Ctrl{Streamer: &effects.Volume{
		Streamer: beep.Loop(-1, streamer),
		Base:     2,
		Volume:   gain,
		Silent:   silent,
	}}
	speaker.Play(ctrl)
	logf("playing %s (%d Hz)", name, format.SampleRate)
	return &Music{ctrl: ctrl, streamer: streamer}, nil
}

// Stop silences the track and releases the decoder. Safe on a nil Music.
func (m *Music) Stop() {
	if m == nil {
		return
	}
	speaker.Lock()
	m.ctrl.Paused = true
	speaker.Unlock()
	speaker.Clear()
	_ = m.streamer.Close()
}

type decodeFunc func(f fs.File) (beep.StreamSeekCloser, beep.Format, error)

// decoderFor picks a decoder from the file extension.
func decoderFor(name string) (decodeFunc, error) {
	switch strings.ToLower(path.Ext(name)) {
	case ".mp3":
		return func(f fs.File) (beep.StreamSeekCloser, beep.Format, error) {
			return mp3.Decode(f)
		}, nil
	case ".wav":
		return func(f fs.File) (beep.StreamSeekCloser, beep.Format, error) {
			return wav.Decode(f)
		}, nil
	default:
		return nil, fmt.Errorf("%w: %s: unsupported audio format", ErrAssetLoad, name)
	}
}

// volumeToGain maps a linear volume to a base-2 gain for effects.Volume.
func volumeToGain(volume float64) (gain float64, silent bool) {
	if volume <= 0 {
		return 0, true
	}
	return math.Log2(math.Min(volume, 1)), false
}
