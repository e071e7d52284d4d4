package layout

// CompressingHStack arranges subviews left to right at a shared height: the
// maximum unconstrained preferred height among them. Each subview's width is
// re-queried with that height imposed, so content that reflows under a fixed
// height (text, for instance) reports the width it actually needs. It holds
// no cache and recomputes on every call.
type CompressingHStack struct {
	// Spacing overrides every gap when non-nil; otherwise each subview's
	// own spacing preference toward its successor is used.
	Spacing *float64
}

// SizeThatFits computes the row size. The PlanCache is ignored.
func (s CompressingHStack) SizeThatFits(proposal Proposal, subviews Subviews, _ *PlanCache) Size {
	_, size := s.layout(subviews)
	return size
}

// Place assigns each subview its frame within bounds. The PlanCache is ignored.
func (s CompressingHStack) Place(bounds Rect, proposal Proposal, subviews Subviews, _ *PlanCache, place PlaceFunc) {
	plan, _ := s.layout(subviews)
	applyPlan(plan, bounds.Origin(), place)
}

func (s CompressingHStack) layout(subviews Subviews) ([]Placement, Size) {
	if len(subviews) == 0 {
		return nil, Size{}
	}

	height := 0.0
	for _, sv := range subviews {
		height = max(height, sv.SizeThatFits(UnspecifiedProposal()).Height)
	}
	gaps, total := resolveGaps(subviews, s.Spacing, Horizontal)

	// Re-query with the shared height imposed and the width left open.
	heightProposal := ProposeHeight(height)
	plan := make([]Placement, len(subviews))
	x := 0.0
	sum := 0.0
	for i, sv := range subviews {
		w := sv.SizeThatFits(heightProposal).Width
		plan[i] = Placement{
			Index:    i,
			Position: Point{X: x},
			Size:     Size{Width: w, Height: height},
		}
		sum += w
		x += w
		if i < len(gaps) {
			x += gaps[i]
		}
	}

	return plan, Size{Width: sum + total, Height: height}
}
