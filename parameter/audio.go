package parameter

import "time"

// Sound Cues
const (
	AudioSampleRate = 44100

	// OpenSoundDuration is the bell played when a thread opens
	OpenSoundDuration = 600 * time.Millisecond
	OpenSoundAttack   = 5 * time.Millisecond
	OpenSoundRelease  = 550 * time.Millisecond

	// PublishSoundDuration is the whoosh played when a node is published
	PublishSoundDuration = 300 * time.Millisecond
	PublishSoundAttack   = 150 * time.Millisecond
	PublishSoundRelease  = 150 * time.Millisecond

	// CollisionSoundDuration is the short tick played on node impacts
	CollisionSoundDuration = 40 * time.Millisecond
	CollisionSoundAttack   = 2 * time.Millisecond
	CollisionSoundRelease  = 30 * time.Millisecond

	// MinCollisionSoundGap rate-limits collision ticks
	MinCollisionSoundGap = 120 * time.Millisecond
)
