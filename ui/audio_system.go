package ui

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/rs/zerolog"

	"ferris-shooter/entity"
	"ferris-shooter/systems"
	"ferris-shooter/world"
)

// Sound names
const (
	SoundPlayerShot = "player_shot"
	SoundEnemyShot  = "enemy_shot"
	SoundBoss       = "boss"
)

// AudioSystem plays short generated sound effects for world events
type AudioSystem struct {
	audioContext *audio.Context
	sounds       map[string][]byte
	volume       float64
	sampleRate   int
	disabled     bool
	logger       zerolog.Logger
}

// NewAudioSystem creates a new audio system. When disabled no audio context
// is opened and every call is a no-op.
func NewAudioSystem(disabled bool, volume float64, logger zerolog.Logger) *AudioSystem {
	sampleRate := 44100
	s := &AudioSystem{
		sounds:     make(map[string][]byte),
		volume:     volume,
		sampleRate: sampleRate,
		disabled:   disabled,
		logger:     logger,
	}
	if disabled {
		logger.Info().Msg("sound effects disabled")
		return s
	}

	s.audioContext = audio.NewContext(sampleRate)
	s.sounds[SoundPlayerShot] = tone(sampleRate, 880, 60)
	s.sounds[SoundEnemyShot] = tone(sampleRate, 330, 80)
	s.sounds[SoundBoss] = tone(sampleRate, 110, 400)
	return s
}

// Subscribe plays sounds for shots and boss waves
func (s *AudioSystem) Subscribe(w *world.World) {
	if s.disabled {
		return
	}

	em := w.GetEventManager()
	em.Subscribe(systems.EventFired, func(world.Event) {
		s.play(SoundPlayerShot)
	})
	em.Subscribe(world.EventSpawned, func(event world.Event) {
		if event.(world.SpawnEvent).Entity.Kind == entity.EnemyBullet {
			s.play(SoundEnemyShot)
		}
	})
	em.Subscribe(systems.EventWave, func(event world.Event) {
		if event.(systems.WaveEvent).Boss {
			s.play(SoundBoss)
		}
	})
}

// Play starts a named sound effect
func (s *AudioSystem) Play(name string) error {
	if s.disabled {
		return nil
	}

	pcm, ok := s.sounds[name]
	if !ok {
		return fmt.Errorf("unknown sound: %s", name)
	}

	player := s.audioContext.NewPlayerFromBytes(pcm)
	player.SetVolume(s.volume)
	player.Play()
	return nil
}

func (s *AudioSystem) play(name string) {
	if err := s.Play(name); err != nil {
		s.logger.Warn().Err(err).Msg("failed to play sound")
	}
}

// SetVolume sets the volume for sound effects (0.0 to 1.0)
func (s *AudioSystem) SetVolume(volume float64) {
	s.volume = volume
}

// GetVolume returns the current volume setting
func (s *AudioSystem) GetVolume() float64 {
	return s.volume
}

// tone renders a square wave with a linear fade out as 16-bit stereo PCM
func tone(sampleRate int, freq float64, durationMS int) []byte {
	n := sampleRate * durationMS / 1000
	buf := make([]byte, n*4)

	for i := 0; i < n; i++ {
		t := float64(i) / float64(sampleRate)
		v := 0.5
		if math.Sin(2*math.Pi*freq*t) < 0 {
			v = -0.5
		}
		v *= 1 - float64(i)/float64(n)

		sample := uint16(int16(v * math.MaxInt16))
		binary.LittleEndian.PutUint16(buf[i*4:], sample)
		binary.LittleEndian.PutUint16(buf[i*4+2:], sample)
	}
	return buf
}
