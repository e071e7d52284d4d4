// Package layout provides pure 2D layout algorithms for plugging into a host
// UI framework's layout protocol.
//
// Four algorithms are included: a wrapping flow layout, a greedy multi-column
// waterfall, equal-size vertical and horizontal stacks, and a compressing
// horizontal stack that reflows children to a shared height. Each is a pure
// function from a size proposal and an ordered sequence of child size queries
// to a container size and per-child placements, with an optional
// caller-owned cache memoizing the plan between the size query and the
// placement call.
//
// The engine knows nothing about views: children are anything implementing
// [Subview], and placements are delivered through a [PlaceFunc] callback.
package layout
