package layout

// Layout is the protocol every algorithm in this package implements.
//
// The host calls SizeThatFits to learn the container size an algorithm needs
// for a proposal, then Place with the final bounds to push frames onto its
// children. Both calls receive the same cache pointer; algorithms that
// memoize use it to avoid recomputing the plan between the two calls, and
// algorithms without a cache ignore it.
type Layout interface {
	// SizeThatFits computes the container size required to lay out the
	// subviews under the proposal.
	SizeThatFits(proposal Proposal, subviews Subviews, cache *PlanCache) Size

	// Place assigns a frame to every subview within bounds via place.
	Place(bounds Rect, proposal Proposal, subviews Subviews, cache *PlanCache, place PlaceFunc)
}

// Alignment specifies how content is positioned within available space
// on one axis.
type Alignment uint8

const (
	AlignStart  Alignment = iota // Leading edge (left / top)
	AlignCenter                  // Centered
	AlignEnd                     // Trailing edge (right / bottom)
)

// alignOffset returns the offset that positions content of the given size
// within the outer extent.
func alignOffset(align Alignment, outer, inner float64) float64 {
	switch align {
	case AlignEnd:
		return outer - inner
	case AlignCenter:
		return (outer - inner) / 2
	default: // AlignStart
		return 0
	}
}

// resolveGaps returns the spacing for each gap between n subviews.
// An explicit spacing overrides every gap; otherwise each subview's own
// preference toward its successor is used.
func resolveGaps(subviews Subviews, spacing *float64, axis Axis) (gaps []float64, total float64) {
	if len(subviews) < 2 {
		return nil, 0
	}
	gaps = make([]float64, len(subviews)-1)
	for i := range gaps {
		if spacing != nil {
			gaps[i] = *spacing
		} else {
			gaps[i] = subviews[i].Spacing(axis)
		}
		total += gaps[i]
	}
	return gaps, total
}
