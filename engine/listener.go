package engine

import (
	"time"

	"github.com/lixenwraith/gaze/content"
	"github.com/lixenwraith/gaze/physics"
)

// FrameStats summarizes one completed frame
type FrameStats struct {
	Frame    uint64
	Step     physics.StepStats
	Nodes    int
	Edges    int
	Duration time.Duration
}

// Listener receives the outbound signals of a session
// Calls happen on the loop goroutine and must not block
type Listener interface {
	OnOpen(item content.Item)
	OnPublish(node physics.Node, item content.Item)
	OnFrame(stats FrameStats)
	OnSkip(frame uint64, reason any)
}

// NopListener ignores every signal
type NopListener struct{}

func (NopListener) OnOpen(content.Item)                  {}
func (NopListener) OnPublish(physics.Node, content.Item) {}
func (NopListener) OnFrame(FrameStats)                   {}
func (NopListener) OnSkip(uint64, any)                   {}

// Listeners fans signals out to several listeners in order
type Listeners []Listener

func (ls Listeners) OnOpen(item content.Item) {
	for _, l := range ls {
		l.OnOpen(item)
	}
}

func (ls Listeners) OnPublish(node physics.Node, item content.Item) {
	for _, l := range ls {
		l.OnPublish(node, item)
	}
}

func (ls Listeners) OnFrame(stats FrameStats) {
	for _, l := range ls {
		l.OnFrame(stats)
	}
}

func (ls Listeners) OnSkip(frame uint64, reason any) {
	for _, l := range ls {
		l.OnSkip(frame, reason)
	}
}
