package parameter

// Proximity Graph
const (
	// EdgeDistanceThreshold is the distance below which two nodes are connected
	EdgeDistanceThreshold = 350.0

	// EdgeFalloffExponent shapes the opacity drop-off, super-linear so only close nodes read as connected
	EdgeFalloffExponent = 1.5

	// EdgeIdleOpacityScale dims edges that do not touch the hovered node
	EdgeIdleOpacityScale = 0.3

	// EdgeHighlightOpacity is the fixed opacity of edges touching the hovered node
	EdgeHighlightOpacity = 0.8

	// EdgeIdleWeight and EdgeHighlightWeight are stroke weights
	EdgeIdleWeight      = 1.0
	EdgeHighlightWeight = 1.5
)
