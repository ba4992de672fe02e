package parameter

// ClickMoveThreshold is the pointer travel, in world units, past which a press becomes a drag
const ClickMoveThreshold = 5.0
