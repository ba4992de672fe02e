package engine

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/lixenwraith/gaze/content"
	"github.com/lixenwraith/gaze/input"
	"github.com/lixenwraith/gaze/parameter"
	"github.com/lixenwraith/gaze/physics"
	"github.com/lixenwraith/gaze/proximity"
	"github.com/lixenwraith/gaze/vmath"
)

// ErrNotFinite marks a frame whose step produced a non-finite position or velocity
var ErrNotFinite = errors.New("non-finite node state")

// Viewport is the world-unit size of the drawable area, re-queried every frame
type Viewport struct {
	Width, Height float64
}

// Options configures a Gaze session, zero values select defaults
type Options struct {
	EdgeThreshold  float64
	ClickThreshold float64
	Rand           *rand.Rand
	Clock          Clock
	Logger         *zap.Logger
	Listener       Listener
}

// Gaze is one constellation session: the node field, pointer state and derived edges
// All methods must be called from the goroutine driving the loop
type Gaze struct {
	field *physics.Field
	ctrl  *input.Controller
	edges []proximity.Edge

	threshold float64
	rng       *rand.Rand
	clock     Clock
	logger    *zap.Logger
	listener  Listener

	frame   uint64
	skipped uint64
}

// New creates an empty session
func New(opts Options) *Gaze {
	g := &Gaze{
		field:     physics.NewField(),
		threshold: opts.EdgeThreshold,
		rng:       opts.Rand,
		clock:     opts.Clock,
		logger:    opts.Logger,
		listener:  opts.Listener,
	}
	if opts.ClickThreshold > 0 {
		g.ctrl = input.NewControllerWithThreshold(opts.ClickThreshold)
	} else {
		g.ctrl = input.NewController()
	}
	if g.threshold <= 0 {
		g.threshold = parameter.EdgeDistanceThreshold
	}
	if g.rng == nil {
		g.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	if g.clock == nil {
		g.clock = NewTimeProvider()
	}
	if g.logger == nil {
		g.logger = zap.NewNop()
	}
	if g.listener == nil {
		g.listener = NopListener{}
	}
	return g
}

// Controller returns the interaction controller fed by pointer events
func (g *Gaze) Controller() *input.Controller {
	return g.ctrl
}

// Nodes returns a snapshot of the nodes in stable order
func (g *Gaze) Nodes() []physics.Node {
	return g.field.Nodes()
}

// Edges returns the edges built by the last completed frame
func (g *Gaze) Edges() []proximity.Edge {
	return g.edges
}

// FrameCount returns the number of completed frames
func (g *Gaze) FrameCount() uint64 {
	return g.frame
}

// SkippedFrames returns the number of frames dropped after an anomaly
func (g *Gaze) SkippedFrames() uint64 {
	return g.skipped
}

// Item returns the content carried by the node with the given id
func (g *Gaze) Item(id string) (content.Item, bool) {
	n, ok := g.field.Node(id)
	if !ok {
		return content.Item{}, false
	}
	item, ok := n.Payload.(content.Item)
	return item, ok
}

// Seed adds one node per item at a random inset position with a small drift
func (g *Gaze) Seed(items []content.Item, vp Viewport) error {
	for _, item := range items {
		n := physics.NewSizedNode(
			item.ID,
			sizeOf(item),
			physics.SeedJitter(g.rng),
			physics.SeedPosition(g.rng, vp.Width, vp.Height),
			physics.SeedVelocity(g.rng),
			item,
		)
		if err := g.field.Add(n); err != nil {
			return fmt.Errorf("failed to seed %q: %w", item.ID, err)
		}
	}
	g.logger.Debug("seeded field", zap.Int("nodes", len(items)))
	g.rebuildEdges(g.field.Nodes())
	return nil
}

// Publish validates a new item and adds it at the viewport center with a pop velocity
// The item receives a fresh id, any caller-supplied id is replaced
func (g *Gaze) Publish(item content.Item, vp Viewport) (physics.Node, content.Item, error) {
	item = item.Normalize()
	if err := content.Validate(item); err != nil {
		return physics.Node{}, content.Item{}, err
	}
	item.ID = uuid.NewString()

	n := physics.NewSizedNode(
		item.ID,
		sizeOf(item),
		0,
		physics.PublishPosition(vp.Width, vp.Height),
		physics.PublishVelocity(g.rng),
		item,
	)
	if err := g.field.Add(n); err != nil {
		return physics.Node{}, content.Item{}, fmt.Errorf("failed to publish: %w", err)
	}

	g.logger.Info("published node",
		zap.String("id", item.ID),
		zap.String("type", string(item.Type)),
		zap.String("size", sizeOf(item).String()),
	)
	g.listener.OnPublish(n, item)
	g.rebuildEdges(g.field.Nodes())
	return n, item, nil
}

// Open emits the opened signal for a node, typically after a disambiguated click
func (g *Gaze) Open(id string) (content.Item, bool) {
	item, ok := g.Item(id)
	if !ok {
		return content.Item{}, false
	}
	g.logger.Debug("opened node", zap.String("id", id))
	g.listener.OnOpen(item)
	return item, true
}

// Frame advances the simulation by one step and rebuilds the edges
// The step runs on a snapshot that is only committed when it completes with finite state,
// a panic or anomaly drops the frame and leaves the field untouched
func (g *Gaze) Frame(vp Viewport) (stats FrameStats, ok bool) {
	frame := g.frame + 1
	defer func() {
		if r := recover(); r != nil {
			g.skip(frame, r)
			stats, ok = FrameStats{}, false
		}
	}()

	start := g.clock.Now()

	work := g.field.Nodes()
	in := g.ctrl.Interaction()
	step := physics.Step(work, vp.Width, vp.Height, in)

	for i := range work {
		if !vmath.V2Finite(work[i].Pos) || !vmath.V2Finite(work[i].Vel) {
			g.skip(frame, fmt.Errorf("%w: node %s", ErrNotFinite, work[i].ID))
			return FrameStats{}, false
		}
	}

	if err := g.field.Apply(work); err != nil {
		g.skip(frame, err)
		return FrameStats{}, false
	}
	g.rebuildEdges(work)
	g.frame = frame

	stats = FrameStats{
		Frame:    frame,
		Step:     step,
		Nodes:    len(work),
		Edges:    len(g.edges),
		Duration: g.clock.Now().Sub(start),
	}
	g.listener.OnFrame(stats)
	return stats, true
}

func (g *Gaze) skip(frame uint64, reason any) {
	g.skipped++
	g.logger.Warn("frame skipped",
		zap.Uint64("frame", frame),
		zap.Any("reason", reason),
	)
	g.listener.OnSkip(frame, reason)
}

func (g *Gaze) rebuildEdges(nodes []physics.Node) {
	g.edges = proximity.BuildEdges(nodes, g.ctrl.HoveredID(), g.threshold)
}

func sizeOf(item content.Item) physics.SizeCategory {
	if item.HasImage() {
		return physics.SizeImage
	}
	return physics.SizeText
}
