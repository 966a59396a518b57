package tui

import (
	"bytes"
	_ "embed"
	"fmt"
	"sync"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"
	"github.com/faiface/beep/wav"
)

//go:embed assets/beep.wav
var beepWAV []byte

var (
	speakerOnce sync.Once
	speakerErr  error
)

// audioOutput is the mixer cue streams are played into
type audioOutput interface {
	Play(s beep.Streamer)
	Lock()
	Unlock()
}

// speakerOutput sends streams to the default audio device
type speakerOutput struct{}

func (speakerOutput) Play(s beep.Streamer) { speaker.Play(s) }
func (speakerOutput) Lock() { speaker.Lock() }
func (speakerOutput) Unlock() { speaker.Unlock() }

// SoundCue plays the bundled beep. Like an audio element it keeps a play
// position: Play continues from it and Stop pauses and rewinds to the start.
type SoundCue struct {
	out   audioOutput
	sound beep.StreamSeeker
	ctrl  *beep.Ctrl

	// queued is true while ctrl sits in the mixer, guarded by out.Lock
	queued bool
}

// NewSpeakerCue decodes the bundled beep and opens the speaker
func NewSpeakerCue() (*SoundCue, error) {
	buffer, err := decodeWAV(beepWAV)
	if err != nil {
		return nil, err
	}
	if err := initSpeaker(buffer.Format()); err != nil {
		return nil, err
	}
	return newSoundCue(buffer, speakerOutput{}), nil
}

func decodeWAV(data []byte) (*beep.Buffer, error) {
	streamer, format, err := wav.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode cue: %w", err)
	}
	defer streamer.Close()

	buffer := beep.NewBuffer(format)
	buffer.Append(streamer)
	return buffer, nil
}

// initSpeaker opens the audio device once per process
func initSpeaker(format beep.Format) error {
	speakerOnce.Do(func() {
		speakerErr = speaker.Init(format.SampleRate, format.SampleRate.N(time.Second/10))
	})
	if speakerErr != nil {
		return fmt.Errorf("init speaker: %w", speakerErr)
	}
	return nil
}

func newSoundCue(buffer *beep.Buffer, out audioOutput) *SoundCue {
	sound := buffer.Streamer(0, buffer.Len())
	return &SoundCue{
		out:   out,
		sound: sound,
		ctrl:  &beep.Ctrl{Streamer: sound, Paused: true},
	}
}

// Play resumes the beep from its current position. A beep that already
// played to the end starts over.
func (c *SoundCue) Play() error {
	c.out.Lock()
	if c.sound.Position() >= c.sound.Len() {
		if err := c.sound.Seek(0); err != nil {
			c.out.Unlock()
			return fmt.Errorf("rewind cue: %w", err)
		}
	}
	c.ctrl.Paused = false
	enqueue := !c.queued
	c.queued = true
	c.out.Unlock()

	if enqueue {
		// The callback runs inside the mixer with the lock held
		c.out.Play(beep.Seq(c.ctrl, beep.Callback(func() {
			c.queued = false
		})))
	}
	return nil
}

// Stop pauses the beep and rewinds it to the start
func (c *SoundCue) Stop() error {
	c.out.Lock()
	defer c.out.Unlock()

	c.ctrl.Paused = true
	if err := c.sound.Seek(0); err != nil {
		return fmt.Errorf("rewind cue: %w", err)
	}
	return nil
}
