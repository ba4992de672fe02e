package audio

import (
	"encoding/json"
	"os"
	"strconv"
)

// LoadAudioConfig applies environment overrides on top of base
func LoadAudioConfig(base AudioConfig) AudioConfig {
	cfg := base
	effects := make(map[SoundType]float64, len(base.EffectVolumes))
	for k, v := range base.EffectVolumes {
		effects[k] = v
	}
	cfg.EffectVolumes = effects

	// Check if audio is enabled
	if enabled := os.Getenv("GAZE_AUDIO_ENABLED"); enabled != "" {
		if val, err := strconv.ParseBool(enabled); err == nil {
			cfg.Enabled = val
		}
	}

	// Load master volume (0-100 converted to 0.0-1.0)
	if volume := os.Getenv("GAZE_MASTER_VOLUME"); volume != "" {
		if val, err := strconv.Atoi(volume); err == nil {
			cfg.MasterVolume = min(max(float64(val)/100.0, 0), 1)
		}
	}

	// Load effect volumes from JSON
	if effectVols := os.Getenv("GAZE_SFX_VOLUMES"); effectVols != "" {
		var volumes map[string]float64
		if err := json.Unmarshal([]byte(effectVols), &volumes); err == nil {
			for _, st := range []SoundType{SoundOpen, SoundPublish, SoundCollision} {
				if v, ok := volumes[string(st)]; ok {
					cfg.EffectVolumes[st] = v
				}
			}
		}
	}

	// Load sample rate
	if sampleRate := os.Getenv("GAZE_SAMPLE_RATE"); sampleRate != "" {
		if val, err := strconv.Atoi(sampleRate); err == nil && val > 0 {
			cfg.SampleRate = val
		}
	}

	return cfg
}
