package parameter

// Node Size Categories
const (
	// TextBaseRadius is the base radius and mass of a text-only node
	TextBaseRadius = 50.0

	// ImageBaseRadius is the base radius and mass of a node carrying an image
	ImageBaseRadius = 80.0

	// RadiusJitter bounds the random radius increment applied to seeded nodes, [0, RadiusJitter)
	RadiusJitter = 20.0

	// MinRadius is the floor applied to non-positive radii at creation
	MinRadius = 1.0
)

// Kinematics
const (
	// HoverDamping multiplies a hovered node's velocity every frame it stays hovered
	HoverDamping = 0.9

	// DragResponseFactor scales pointer-minus-position into the dragged node's throw velocity
	DragResponseFactor = 0.2

	// OverlapCorrectionShare is each node's share of the positional overlap correction
	OverlapCorrectionShare = 0.5
)

// Spawning
const (
	// SeedMargin keeps seeded nodes away from the viewport edge on placement
	SeedMargin = 100.0

	// SeedVelocitySpread is the full range of seeded velocity per axis, centred on zero
	SeedVelocitySpread = 0.5

	// PublishVelocitySpread is the full range of the published "pop" velocity per axis, centred on zero
	PublishVelocitySpread = 2.0
)
