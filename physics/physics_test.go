package physics

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/gaze/parameter"
	"github.com/lixenwraith/gaze/vmath"
)

func newTestRand() *rand.Rand {
	return rand.New(rand.NewPCG(1, 2))
}

func TestNewNode_ClampsInvalidRadius(t *testing.T) {
	tests := []struct {
		name   string
		radius float64
		mass   float64
	}{
		{"zero", 0, 0},
		{"negative", -5, 10},
		{"nan", math.NaN(), 10},
		{"inf", math.Inf(1), -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := NewNode("a", tt.radius, tt.mass, vmath.Vec2{}, vmath.Vec2{}, nil)
			assert.Equal(t, parameter.MinRadius, n.Radius)
			assert.Greater(t, n.Mass, 0.0)
		})
	}
}

func TestNewSizedNode_MassIsBaseRadius(t *testing.T) {
	n := NewSizedNode("img", SizeImage, 12.5, vmath.Vec2{}, vmath.Vec2{}, "payload")
	assert.Equal(t, parameter.ImageBaseRadius+12.5, n.Radius)
	assert.Equal(t, parameter.ImageBaseRadius, n.Mass)
	assert.Equal(t, "payload", n.Payload)

	txt := NewSizedNode("txt", SizeText, -3, vmath.Vec2{}, vmath.Vec2{}, nil)
	assert.Equal(t, parameter.TextBaseRadius, txt.Radius, "negative jitter is ignored")
}

func TestReflectWall_SignFlipAndExactClamp(t *testing.T) {
	tests := []struct {
		name    string
		pos     vmath.Vec2
		vel     vmath.Vec2
		wantPos vmath.Vec2
		wantVel vmath.Vec2
	}{
		{"left", vmath.V2(11, 300), vmath.V2(-3, 0), vmath.V2(10, 300), vmath.V2(3, 0)},
		{"right", vmath.V2(789, 300), vmath.V2(3, 0), vmath.V2(790, 300), vmath.V2(-3, 0)},
		{"top", vmath.V2(400, 11), vmath.V2(0, -2), vmath.V2(400, 10), vmath.V2(0, 2)},
		{"bottom", vmath.V2(400, 589), vmath.V2(1, 2), vmath.V2(401, 590), vmath.V2(1, -2)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nodes := []Node{NewNode("a", 10, 10, tt.pos, tt.vel, nil)}
			stats := Step(nodes, 800, 600, Interaction{})

			assert.Equal(t, tt.wantPos, nodes[0].Pos)
			assert.Equal(t, tt.wantVel, nodes[0].Vel)
			assert.Equal(t, 1, stats.WallBounces)
		})
	}
}

func TestStep_CornerReflectsBothAxes(t *testing.T) {
	nodes := []Node{NewNode("a", 10, 10, vmath.V2(11, 11), vmath.V2(-2, -2), nil)}
	stats := Step(nodes, 800, 600, Interaction{})

	assert.Equal(t, vmath.V2(10, 10), nodes[0].Pos)
	assert.Equal(t, vmath.V2(2, 2), nodes[0].Vel)
	assert.Equal(t, 2, stats.WallBounces)
}

func TestStep_WallContainment(t *testing.T) {
	rng := newTestRand()
	const width, height = 800.0, 600.0

	nodes := make([]Node, 0, 12)
	for i := 0; i < 12; i++ {
		pos := SeedPosition(rng, width, height)
		vel := vmath.V2((rng.Float64()-0.5)*20, (rng.Float64()-0.5)*20)
		nodes = append(nodes, NewNode(string(rune('a'+i)), 20+rng.Float64()*30, 30, pos, vel, nil))
	}

	for frame := 0; frame < 2000; frame++ {
		Step(nodes, width, height, Interaction{})
		for _, n := range nodes {
			require.GreaterOrEqual(t, n.Pos.X, n.Radius, "frame %d node %s", frame, n.ID)
			require.LessOrEqual(t, n.Pos.X, width-n.Radius, "frame %d node %s", frame, n.ID)
			require.GreaterOrEqual(t, n.Pos.Y, n.Radius, "frame %d node %s", frame, n.ID)
			require.LessOrEqual(t, n.Pos.Y, height-n.Radius, "frame %d node %s", frame, n.ID)
		}
	}
}

func TestStep_NonPositiveViewportSkipsWalls(t *testing.T) {
	nodes := []Node{NewNode("a", 10, 10, vmath.V2(-50, -50), vmath.V2(-1, -1), nil)}
	stats := Step(nodes, 0, -10, Interaction{})

	assert.Equal(t, vmath.V2(-51, -51), nodes[0].Pos)
	assert.Equal(t, vmath.V2(-1, -1), nodes[0].Vel)
	assert.Zero(t, stats.WallBounces)
}

func TestStep_HeadOnEqualMassSwapsVelocities(t *testing.T) {
	nodes := []Node{
		NewNode("a", 50, 50, vmath.V2(100, 300), vmath.V2(2, 0), nil),
		NewNode("b", 50, 50, vmath.V2(180, 300), vmath.V2(-2, 0), nil),
	}

	stats := Step(nodes, 800, 600, Interaction{})

	assert.Equal(t, 1, stats.Impulses)
	assert.InDelta(t, -2.0, nodes[0].Vel.X, 1e-9)
	assert.InDelta(t, 2.0, nodes[1].Vel.X, 1e-9)
	assert.InDelta(t, 0.0, nodes[0].Vel.Y, 1e-9)
	assert.InDelta(t, 0.0, nodes[1].Vel.Y, 1e-9)

	// Overlap fully corrected, split evenly
	assert.InDelta(t, 90.0, nodes[0].Pos.X, 1e-9)
	assert.InDelta(t, 190.0, nodes[1].Pos.X, 1e-9)
}

func TestStep_HeadOnApproachUntilContact(t *testing.T) {
	nodes := []Node{
		NewNode("a", 50, 50, vmath.V2(100, 300), vmath.V2(2, 0), nil),
		NewNode("b", 50, 50, vmath.V2(250, 300), vmath.V2(-2, 0), nil),
	}

	impulses := 0
	for frame := 0; frame < 30; frame++ {
		impulses += Step(nodes, 800, 600, Interaction{}).Impulses
	}

	assert.Equal(t, 1, impulses)
	assert.InDelta(t, -2.0, nodes[0].Vel.X, 1e-9)
	assert.InDelta(t, 2.0, nodes[1].Vel.X, 1e-9)
}

func TestStep_MomentumConservedUnequalMass(t *testing.T) {
	nodes := []Node{
		NewNode("heavy", 80, 80, vmath.V2(300, 300), vmath.V2(1, 0.5), nil),
		NewNode("light", 50, 50, vmath.V2(420, 310), vmath.V2(-3, 0), nil),
	}
	before := vmath.V2Add(vmath.V2Scale(nodes[0].Vel, nodes[0].Mass), vmath.V2Scale(nodes[1].Vel, nodes[1].Mass))

	stats := Step(nodes, 2000, 2000, Interaction{})
	require.Equal(t, 1, stats.Impulses)

	after := vmath.V2Add(vmath.V2Scale(nodes[0].Vel, nodes[0].Mass), vmath.V2Scale(nodes[1].Vel, nodes[1].Mass))
	assert.InDelta(t, before.X, after.X, 1e-9)
	assert.InDelta(t, before.Y, after.Y, 1e-9)
}

func TestStep_SeparatingPairGetsNoImpulse(t *testing.T) {
	nodes := []Node{
		NewNode("a", 50, 50, vmath.V2(300, 300), vmath.V2(-1, 0), nil),
		NewNode("b", 50, 50, vmath.V2(380, 300), vmath.V2(1, 0), nil),
	}

	stats := Step(nodes, 2000, 2000, Interaction{})

	assert.Equal(t, 1, stats.Overlaps)
	assert.Zero(t, stats.Impulses)
	assert.Equal(t, vmath.V2(-1, 0), nodes[0].Vel)
	assert.Equal(t, vmath.V2(1, 0), nodes[1].Vel)
}

func TestStep_OverlapNotIncreased(t *testing.T) {
	rng := newTestRand()
	for trial := 0; trial < 200; trial++ {
		a := NewNode("a", 30+rng.Float64()*40, 50, vmath.V2(400+rng.Float64()*100, 400+rng.Float64()*100),
			vmath.V2((rng.Float64()-0.5)*6, (rng.Float64()-0.5)*6), nil)
		b := NewNode("b", 30+rng.Float64()*40, 80, vmath.V2(400+rng.Float64()*100, 400+rng.Float64()*100),
			vmath.V2((rng.Float64()-0.5)*6, (rng.Float64()-0.5)*6), nil)
		nodes := []Node{a, b}

		before := vmath.V2Dist(a.Pos, b.Pos)
		minDistance := a.Radius + b.Radius

		Step(nodes, 2000, 2000, Interaction{})
		after := vmath.V2Dist(nodes[0].Pos, nodes[1].Pos)

		if before >= minDistance {
			assert.GreaterOrEqual(t, after, minDistance-1e-9, "trial %d", trial)
		} else {
			assert.Greater(t, after, before-1e-9, "trial %d: overlap must shrink", trial)
		}
	}
}

func TestResolvePair_CoincidentCentersUseFixedNormal(t *testing.T) {
	a := NewNode("a", 10, 10, vmath.V2(100, 100), vmath.Vec2{}, nil)
	b := NewNode("b", 10, 10, vmath.V2(100, 100), vmath.Vec2{}, nil)

	contact := ResolvePair(&a, &b)

	assert.Equal(t, ContactImpulse, contact)
	assert.Equal(t, vmath.V2(90, 100), a.Pos)
	assert.Equal(t, vmath.V2(110, 100), b.Pos)
	assert.True(t, vmath.V2Finite(a.Vel))
	assert.True(t, vmath.V2Finite(b.Vel))
}

func TestResolvePair_NoContact(t *testing.T) {
	a := NewNode("a", 10, 10, vmath.V2(0, 0), vmath.V2(1, 0), nil)
	b := NewNode("b", 10, 10, vmath.V2(20, 0), vmath.V2(-1, 0), nil)

	assert.Equal(t, ContactNone, ResolvePair(&a, &b), "touching is not overlapping")
	assert.Equal(t, vmath.V2(1, 0), a.Vel)
}

func TestStep_DraggedNodeFollowsPointer(t *testing.T) {
	nodes := []Node{
		NewNode("drag", 50, 50, vmath.V2(100, 100), vmath.V2(5, 5), nil),
		NewNode("other", 50, 50, vmath.V2(400, 300), vmath.V2(0, 0), nil),
	}
	in := Interaction{DraggedID: "drag", Pointer: vmath.V2(400, 310)}

	Step(nodes, 800, 600, in)

	assert.Equal(t, vmath.V2(400, 310), nodes[0].Pos)
	assert.InDelta(t, 60.0, nodes[0].Vel.X, 1e-9)
	assert.InDelta(t, 42.0, nodes[0].Vel.Y, 1e-9)

	// Overlapping the dragged node does not move the other node
	assert.Equal(t, vmath.V2(400, 300), nodes[1].Pos)
}

func TestStep_DraggedNodeNotClamped(t *testing.T) {
	nodes := []Node{NewNode("drag", 50, 50, vmath.V2(100, 100), vmath.Vec2{}, nil)}
	Step(nodes, 800, 600, Interaction{DraggedID: "drag", Pointer: vmath.V2(0, 600)})

	assert.Equal(t, vmath.V2(0, 600), nodes[0].Pos)
}

func TestStep_HoverDampingIsCumulative(t *testing.T) {
	nodes := []Node{NewNode("h", 10, 10, vmath.V2(400, 300), vmath.V2(1, -1), nil)}
	in := Interaction{HoveredID: "h"}

	Step(nodes, 800, 600, in)
	assert.InDelta(t, 0.9, nodes[0].Vel.X, 1e-12)

	Step(nodes, 800, 600, in)
	assert.InDelta(t, 0.81, nodes[0].Vel.X, 1e-12)
	assert.InDelta(t, -0.81, nodes[0].Vel.Y, 1e-12)
	assert.InDelta(t, 400+0.9+0.81, nodes[0].Pos.X, 1e-9)

	// Leaving hover stops the braking
	Step(nodes, 800, 600, Interaction{})
	assert.InDelta(t, 0.81, nodes[0].Vel.X, 1e-12)
}

func TestField_AddRejectsInvalidIDs(t *testing.T) {
	f := NewField()
	require.NoError(t, f.Add(NewNode("a", 10, 10, vmath.Vec2{}, vmath.Vec2{}, nil)))

	assert.ErrorIs(t, f.Add(NewNode("", 10, 10, vmath.Vec2{}, vmath.Vec2{}, nil)), ErrEmptyID)
	assert.ErrorIs(t, f.Add(NewNode("a", 10, 10, vmath.Vec2{}, vmath.Vec2{}, nil)), ErrDuplicateID)
	assert.Equal(t, 1, f.Len())
}

func TestField_NodesIsSnapshot(t *testing.T) {
	f := NewField()
	require.NoError(t, f.Add(NewNode("a", 10, 10, vmath.V2(100, 100), vmath.V2(1, 0), nil)))

	snap := f.Nodes()
	snap[0].Pos = vmath.V2(-1, -1)

	n, ok := f.Node("a")
	require.True(t, ok)
	assert.Equal(t, vmath.V2(100, 100), n.Pos)

	f.Step(800, 600, Interaction{})
	n, _ = f.Node("a")
	assert.Equal(t, vmath.V2(101, 100), n.Pos)
}

func TestSpawn_PublishIsCentered(t *testing.T) {
	rng := newTestRand()
	assert.Equal(t, vmath.V2(400, 300), PublishPosition(800, 600))

	for i := 0; i < 500; i++ {
		v := PublishVelocity(rng)
		assert.NotEqual(t, vmath.Vec2{}, v)
		assert.LessOrEqual(t, math.Abs(v.X), 1.0)
		assert.LessOrEqual(t, math.Abs(v.Y), 1.0)
	}
}

func TestSpawn_SeedBounds(t *testing.T) {
	rng := newTestRand()
	for i := 0; i < 500; i++ {
		p := SeedPosition(rng, 800, 600)
		assert.GreaterOrEqual(t, p.X, 100.0)
		assert.Less(t, p.X, 700.0)
		assert.GreaterOrEqual(t, p.Y, 100.0)
		assert.Less(t, p.Y, 500.0)

		v := SeedVelocity(rng)
		assert.LessOrEqual(t, math.Abs(v.X), 0.25)
		assert.LessOrEqual(t, math.Abs(v.Y), 0.25)

		j := SeedJitter(rng)
		assert.GreaterOrEqual(t, j, 0.0)
		assert.Less(t, j, parameter.RadiusJitter)
	}

	// Viewport smaller than the margins collapses to center
	assert.Equal(t, vmath.V2(75, 50), SeedPosition(rng, 150, 100))
}

func TestField_ApplyCommitsKinematicsOnly(t *testing.T) {
	f := NewField()
	require.NoError(t, f.Add(NewNode("a", 10, 10, vmath.V2(50, 50), vmath.V2(1, 0), nil)))
	require.NoError(t, f.Add(NewNode("b", 10, 10, vmath.V2(150, 50), vmath.V2(-1, 0), nil)))

	work := f.Nodes()
	work[0].Pos = vmath.V2(60, 60)
	work[0].Radius = 99
	require.NoError(t, f.Apply(work))

	a, _ := f.Node("a")
	assert.Equal(t, vmath.V2(60, 60), a.Pos)
	assert.Equal(t, 10.0, a.Radius)

	assert.ErrorIs(t, f.Apply(work[:1]), ErrSnapshotMismatch)
	work[0], work[1] = work[1], work[0]
	assert.ErrorIs(t, f.Apply(work), ErrSnapshotMismatch)
}
