package engine

import (
	"context"
	"math"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/gaze/content"
	"github.com/lixenwraith/gaze/physics"
	"github.com/lixenwraith/gaze/vmath"
)

type recordingListener struct {
	opened    []content.Item
	published []physics.Node
	frames    []FrameStats
	skipped   []uint64
	panicOn   uint64
}

func (r *recordingListener) OnOpen(item content.Item) { r.opened = append(r.opened, item) }

func (r *recordingListener) OnPublish(node physics.Node, _ content.Item) {
	r.published = append(r.published, node)
}

func (r *recordingListener) OnFrame(stats FrameStats) {
	if r.panicOn != 0 && stats.Frame == r.panicOn {
		panic("listener failure")
	}
	r.frames = append(r.frames, stats)
}

func (r *recordingListener) OnSkip(frame uint64, _ any) { r.skipped = append(r.skipped, frame) }

var testViewport = Viewport{Width: 800, Height: 600}

func newTestGaze(l Listener) *Gaze {
	return New(Options{
		Rand:     rand.New(rand.NewPCG(7, 11)),
		Clock:    NewMockTimeProvider(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)),
		Listener: l,
	})
}

func TestGaze_SeedUsesSizeCategories(t *testing.T) {
	items, err := content.DefaultSeeds()
	require.NoError(t, err)

	g := newTestGaze(nil)
	require.NoError(t, g.Seed(items, testViewport))
	require.Len(t, g.Nodes(), len(items))

	for _, n := range g.Nodes() {
		item, ok := n.Payload.(content.Item)
		require.True(t, ok)
		base := physics.SizeText.BaseRadius()
		if item.HasImage() {
			base = physics.SizeImage.BaseRadius()
		}
		assert.Equal(t, base, n.Mass, "node %s", n.ID)
		assert.GreaterOrEqual(t, n.Radius, base)
		assert.Less(t, n.Radius, base+20)
		assert.GreaterOrEqual(t, n.Pos.X, 100.0)
		assert.Less(t, n.Pos.X, 700.0)
	}

	assert.Error(t, g.Seed(items[:1], testViewport), "duplicate seed id must fail")
}

func TestGaze_PublishCreatesCenteredNode(t *testing.T) {
	l := &recordingListener{}
	g := newTestGaze(l)

	n, item, err := g.Publish(content.Item{
		Type:    content.TypeThought,
		Title:   "  New thought ",
		Content: "body",
	}, testViewport)
	require.NoError(t, err)

	assert.Equal(t, vmath.V2(400, 300), n.Pos)
	assert.NotEqual(t, vmath.Vec2{}, n.Vel)
	assert.LessOrEqual(t, math.Abs(n.Vel.X), 1.0)
	assert.LessOrEqual(t, math.Abs(n.Vel.Y), 1.0)
	assert.Equal(t, physics.SizeText.BaseRadius(), n.Radius)
	assert.Equal(t, "New thought", item.Title)
	assert.NotEmpty(t, item.ID)
	assert.Equal(t, item.ID, n.ID)

	require.Len(t, l.published, 1)
	assert.Equal(t, 1, len(g.Nodes()))
}

func TestGaze_PublishImageNodeIsLarger(t *testing.T) {
	g := newTestGaze(nil)
	n, _, err := g.Publish(content.Item{
		Type:    content.TypeCinema,
		Title:   "Still",
		Content: "frame",
		Image:   "https://example.com/still.jpg",
	}, testViewport)
	require.NoError(t, err)
	assert.Equal(t, physics.SizeImage.BaseRadius(), n.Radius)
}

func TestGaze_PublishRejectsInvalidItem(t *testing.T) {
	l := &recordingListener{}
	g := newTestGaze(l)

	_, _, err := g.Publish(content.Item{Title: "   "}, testViewport)
	assert.ErrorIs(t, err, content.ErrInvalidItem)
	assert.Empty(t, g.Nodes())
	assert.Empty(t, l.published)
}

func TestGaze_PublishIDsAreUnique(t *testing.T) {
	g := newTestGaze(nil)
	item := content.Item{Type: content.TypeVoice, Title: "t", Content: "c", ID: "fixed"}

	a, _, err := g.Publish(item, testViewport)
	require.NoError(t, err)
	b, _, err := g.Publish(item, testViewport)
	require.NoError(t, err)
	assert.NotEqual(t, a.ID, b.ID)
}

func TestGaze_FrameAdvancesAndBuildsEdges(t *testing.T) {
	l := &recordingListener{}
	g := newTestGaze(l)
	items := []content.Item{
		{ID: "a", Type: content.TypeThought, Title: "a", Content: "a"},
		{ID: "b", Type: content.TypeThought, Title: "b", Content: "b"},
	}
	// Tiny viewport collapses both seeds to the center, guaranteeing an edge
	require.NoError(t, g.Seed(items, Viewport{Width: 150, Height: 150}))

	stats, ok := g.Frame(testViewport)
	require.True(t, ok)
	assert.Equal(t, uint64(1), stats.Frame)
	assert.Equal(t, 2, stats.Nodes)
	assert.Equal(t, 1, stats.Step.Overlaps)
	assert.Len(t, g.Edges(), stats.Edges)
	assert.Equal(t, uint64(1), g.FrameCount())
	require.Len(t, l.frames, 1)
}

func TestGaze_OpenEmitsPayload(t *testing.T) {
	l := &recordingListener{}
	g := newTestGaze(l)
	require.NoError(t, g.Seed([]content.Item{
		{ID: "x", Type: content.TypeMusic, Title: "Song", Content: "c"},
	}, testViewport))

	item, ok := g.Open("x")
	require.True(t, ok)
	assert.Equal(t, "Song", item.Title)
	require.Len(t, l.opened, 1)

	_, ok = g.Open("missing")
	assert.False(t, ok)
	assert.Len(t, l.opened, 1)
}

func TestGaze_PanicInFrameIsSkipped(t *testing.T) {
	l := &recordingListener{panicOn: 2}
	g := newTestGaze(l)
	require.NoError(t, g.Seed([]content.Item{
		{ID: "x", Type: content.TypeMusic, Title: "Song", Content: "c"},
	}, testViewport))

	_, ok := g.Frame(testViewport)
	require.True(t, ok)

	assert.NotPanics(t, func() {
		_, ok = g.Frame(testViewport)
	})
	assert.False(t, ok)
	assert.Equal(t, []uint64{2}, l.skipped)
	assert.Equal(t, uint64(1), g.SkippedFrames())

	l.panicOn = 0
	_, ok = g.Frame(testViewport)
	assert.True(t, ok)
}

func TestGaze_NonFiniteFrameLeavesFieldUntouched(t *testing.T) {
	l := &recordingListener{}
	g := newTestGaze(l)
	require.NoError(t, g.field.Add(physics.NewNode("bad", 10, 10, vmath.V2(100, 100), vmath.V2(math.NaN(), 0), nil)))

	before := g.Nodes()
	_, ok := g.Frame(testViewport)
	assert.False(t, ok)
	assert.Equal(t, uint64(0), g.FrameCount())
	assert.Equal(t, before[0].Pos, g.Nodes()[0].Pos)
	assert.Equal(t, []uint64{1}, l.skipped)
}

func TestGaze_FrameDuration(t *testing.T) {
	clock := NewMockTimeProvider(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	clock.SetAutoStep(2 * time.Millisecond)
	g := New(Options{Clock: clock})

	stats, ok := g.Frame(testViewport)
	require.True(t, ok)
	assert.Equal(t, 2*time.Millisecond, stats.Duration)
}

func TestListeners_FanOut(t *testing.T) {
	a, b := &recordingListener{}, &recordingListener{}
	ls := Listeners{a, b, NopListener{}}

	ls.OnOpen(content.Item{ID: "x"})
	ls.OnSkip(3, "x")
	assert.Len(t, a.opened, 1)
	assert.Len(t, b.opened, 1)
	assert.Equal(t, []uint64{3}, b.skipped)
}

func TestRun_StopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	events := make(chan int)
	ticks := 0

	done := make(chan error, 1)
	go func() {
		done <- Run(ctx, time.Millisecond, events, func(int) bool { return true }, func() {
			ticks++
			if ticks == 3 {
				cancel()
			}
		})
	}()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("loop did not stop after cancel")
	}
	assert.Equal(t, 3, ticks)
}

func TestRun_EventsAppliedBeforeNextTick(t *testing.T) {
	events := make(chan int, 3)
	events <- 1
	events <- 2
	events <- 0

	var seen []int
	err := Run(context.Background(), time.Hour, events, func(v int) bool {
		seen = append(seen, v)
		return v != 0
	}, func() {
		t.Error("tick must not run")
	})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 0}, seen)
}

func TestRun_ClosedChannelEndsLoop(t *testing.T) {
	events := make(chan int)
	close(events)
	err := Run(context.Background(), time.Hour, events, func(int) bool { return true }, func() {})
	assert.NoError(t, err)
}
