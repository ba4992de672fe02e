package audio

// SoundType names a sound cue, used as the key of per-effect volumes
type SoundType string

const (
	SoundOpen      SoundType = "open"      // Thread opened
	SoundPublish   SoundType = "publish"   // Node published
	SoundCollision SoundType = "collision" // Node impact
)

// AudioConfig holds audio settings
type AudioConfig struct {
	Enabled       bool                  `toml:"enabled"`
	MasterVolume  float64               `toml:"master_volume"`
	EffectVolumes map[SoundType]float64 `toml:"effect_volumes"`
	SampleRate    int                   `toml:"sample_rate"`
}

// DefaultAudioConfig returns the default configuration, audio is opt-in
func DefaultAudioConfig() AudioConfig {
	return AudioConfig{
		Enabled:      false,
		MasterVolume: 0.5,
		EffectVolumes: map[SoundType]float64{
			SoundOpen:      0.6,
			SoundPublish:   0.5,
			SoundCollision: 0.2,
		},
		SampleRate: 44100,
	}
}

// effectVolume returns the effective volume of a cue, unknown cues play at full effect volume
func (c AudioConfig) effectVolume(st SoundType) float64 {
	v, ok := c.EffectVolumes[st]
	if !ok {
		v = 1
	}
	return v * c.MasterVolume
}
