package archive

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/lixenwraith/gaze/content"
	"github.com/lixenwraith/gaze/engine"
	"github.com/lixenwraith/gaze/physics"
)

// Recorder is an engine.Listener that stores every published item
type Recorder struct {
	store  *Store
	logger *zap.Logger
	now    func() time.Time
}

// NewRecorder creates a recorder writing to store
func NewRecorder(store *Store, logger *zap.Logger) *Recorder {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Recorder{store: store, logger: logger, now: time.Now}
}

// OnPublish stores the item, failures are logged and otherwise ignored
func (r *Recorder) OnPublish(_ physics.Node, item content.Item) {
	if err := r.store.SavePublished(context.Background(), item, r.now()); err != nil {
		r.logger.Error("failed to record published item", zap.String("id", item.ID), zap.Error(err))
	}
}

func (r *Recorder) OnOpen(content.Item)       {}
func (r *Recorder) OnFrame(engine.FrameStats) {}
func (r *Recorder) OnSkip(uint64, any)        {}
