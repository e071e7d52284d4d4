package layout

// EqualVStack stacks subviews top to bottom, giving every subview the same
// size: the componentwise maximum of all unconstrained preferred sizes.
type EqualVStack struct {
	// Spacing overrides every gap when non-nil; otherwise each subview's
	// own spacing preference toward its successor is used.
	Spacing *float64
}

// SizeThatFits computes the stacked size. The PlanCache is unused: the
// vertical stack's memo lives in a StackCache whose invalidation the host
// drives explicitly (see SizeThatFitsCached).
func (s EqualVStack) SizeThatFits(proposal Proposal, subviews Subviews, _ *PlanCache) Size {
	var cache StackCache
	return s.SizeThatFitsCached(subviews, &cache)
}

// Place assigns each subview its frame within bounds, recomputing the
// measurement pass.
func (s EqualVStack) Place(bounds Rect, proposal Proposal, subviews Subviews, _ *PlanCache, place PlaceFunc) {
	var cache StackCache
	s.PlaceCached(bounds, subviews, &cache, place)
}

// SizeThatFitsCached computes the stacked size using the host-invalidated
// measurement cache.
func (s EqualVStack) SizeThatFitsCached(subviews Subviews, cache *StackCache) Size {
	if len(subviews) == 0 {
		return Size{}
	}
	s.measure(subviews, cache)
	return Size{
		Width:  cache.max.Width,
		Height: cache.max.Height*float64(len(subviews)) + cache.total,
	}
}

// PlaceCached assigns frames using the host-invalidated measurement cache.
func (s EqualVStack) PlaceCached(bounds Rect, subviews Subviews, cache *StackCache, place PlaceFunc) {
	if len(subviews) == 0 {
		return
	}
	s.measure(subviews, cache)

	y := 0.0
	for i := range subviews {
		// Every item is max-sized, so horizontal centering resolves to
		// offset zero; the arithmetic stays explicit for the contract.
		x := alignOffset(AlignCenter, cache.max.Width, cache.max.Width)
		place(i, Rect{
			X:      bounds.X + x,
			Y:      bounds.Y + y,
			Width:  cache.max.Width,
			Height: cache.max.Height,
		})
		y += cache.max.Height
		if i < len(cache.gaps) {
			y += cache.gaps[i]
		}
	}
}

// measure fills the cache with the shared max size and gap spacing,
// skipping the work when the cache is still valid.
func (s EqualVStack) measure(subviews Subviews, cache *StackCache) {
	if cache.valid {
		return
	}
	var maxSize Size
	for _, sv := range subviews {
		maxSize = maxSize.Max(sv.SizeThatFits(UnspecifiedProposal()))
	}
	gaps, total := resolveGaps(subviews, s.Spacing, Vertical)
	cache.max = maxSize
	cache.gaps = gaps
	cache.total = total
	cache.valid = true
}

// EqualHStack arranges subviews left to right. Without FillAvailable every
// subview keeps its own width (capped to the shared maximum) and receives the
// shared maximum height. With FillAvailable and a definite proposed width,
// expandable subviews split the remaining width equally. It holds no cache
// and recomputes on every call.
type EqualHStack struct {
	// Spacing overrides every gap when non-nil.
	Spacing *float64

	// FillAvailable distributes a definite proposed width across
	// expandable subviews instead of sizing the row to content.
	FillAvailable bool
}

// SizeThatFits computes the row size. The PlanCache is ignored.
func (s EqualHStack) SizeThatFits(proposal Proposal, subviews Subviews, _ *PlanCache) Size {
	_, size := s.layout(proposal, subviews)
	return size
}

// Place assigns each subview its frame within bounds. The PlanCache is
// ignored; the row is recomputed against the bounds width.
func (s EqualHStack) Place(bounds Rect, proposal Proposal, subviews Subviews, _ *PlanCache, place PlaceFunc) {
	plan, _ := s.layout(ProposeSize(bounds.Sized()), subviews)
	applyPlan(plan, bounds.Origin(), place)
}

func (s EqualHStack) layout(proposal Proposal, subviews Subviews) ([]Placement, Size) {
	if len(subviews) == 0 {
		return nil, Size{}
	}

	sizes := make([]Size, len(subviews))
	var maxSize Size
	for i, sv := range subviews {
		sizes[i] = sv.SizeThatFits(UnspecifiedProposal())
		maxSize = maxSize.Max(sizes[i])
	}
	gaps, total := resolveGaps(subviews, s.Spacing, Horizontal)

	widths := make([]float64, len(subviews))
	available, definite := proposal.Width.Value()
	if s.FillAvailable && definite {
		// Subviews whose natural width is at most one point are treated as
		// intrinsic fixed-width markers (dividers) and keep their width;
		// the rest split what remains.
		fixed := 0.0
		expandable := 0
		for i := range sizes {
			if sizes[i].Width <= 1 {
				widths[i] = sizes[i].Width
				fixed += sizes[i].Width
			} else {
				expandable++
			}
		}
		target := 0.0
		if expandable > 0 {
			target = max(0, (available-fixed-total)/float64(expandable))
		}
		for i := range widths {
			if sizes[i].Width > 1 {
				widths[i] = target
			}
		}
	} else {
		for i := range sizes {
			widths[i] = min(sizes[i].Width, maxSize.Width)
		}
	}

	plan := make([]Placement, len(subviews))
	x := 0.0
	for i := range subviews {
		plan[i] = Placement{
			Index:    i,
			Position: Point{X: x},
			Size:     Size{Width: widths[i], Height: maxSize.Height},
		}
		x += widths[i]
		if i < len(gaps) {
			x += gaps[i]
		}
	}

	width := x
	if s.FillAvailable && definite {
		width = available
	}
	return plan, Size{Width: width, Height: maxSize.Height}
}
