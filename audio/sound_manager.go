package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/gaze/content"
	"github.com/lixenwraith/gaze/engine"
	"github.com/lixenwraith/gaze/parameter"
	"github.com/lixenwraith/gaze/physics"
)

// SoundManager plays the session's sound cues through a single mixer
// It is an engine.Listener, every call is safe without an audio device
type SoundManager struct {
	mu            sync.Mutex
	cfg           AudioConfig
	mixer         *beep.Mixer
	initialized   bool
	lastCollision time.Time
	now           func() time.Time
}

// NewSoundManager creates a new sound manager
func NewSoundManager(cfg AudioConfig) *SoundManager {
	if cfg.SampleRate <= 0 {
		cfg.SampleRate = parameter.AudioSampleRate
	}
	return &SoundManager{
		cfg:   cfg,
		mixer: &beep.Mixer{},
		now:   time.Now,
	}
}

// Initialize sets up the speaker, a disabled config is a no-op
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized || !sm.cfg.Enabled {
		return nil
	}

	rate := beep.SampleRate(sm.cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("failed to initialize speaker: %w", err)
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	speaker.Clear()
	sm.initialized = false
}

// Play queues a cue, returns false when nothing was queued
func (sm *SoundManager) Play(st SoundType) bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.playLocked(st)
}

func (sm *SoundManager) playLocked(st SoundType) bool {
	if !sm.initialized {
		return false
	}

	if st == SoundCollision {
		now := sm.now()
		if now.Sub(sm.lastCollision) < parameter.MinCollisionSoundGap {
			return false
		}
		sm.lastCollision = now
	}

	s := CreateSound(st, sm.cfg)
	if s == nil {
		return false
	}
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
	return true
}

// OnOpen plays the bell
func (sm *SoundManager) OnOpen(content.Item) {
	sm.Play(SoundOpen)
}

// OnPublish plays the whoosh
func (sm *SoundManager) OnPublish(physics.Node, content.Item) {
	sm.Play(SoundPublish)
}

// OnFrame plays a rate-limited tick when nodes exchanged momentum
func (sm *SoundManager) OnFrame(stats engine.FrameStats) {
	if stats.Step.Impulses > 0 {
		sm.Play(SoundCollision)
	}
}

// OnSkip is silent
func (sm *SoundManager) OnSkip(uint64, any) {}
