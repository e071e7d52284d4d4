package layout

// Waterfall distributes subviews into equal-width columns, always assigning
// the next subview to the column with the least accumulated height. Child
// order is preserved in the overall sequence but not within a column run.
type Waterfall struct {
	columns  int
	spacingX float64
	spacingY float64
	padding  Edges
}

// NewWaterfall creates a waterfall layout with the given column count and
// inter-item spacing. It panics if columns is less than one.
func NewWaterfall(columns int, spacingX, spacingY float64) Waterfall {
	if columns < 1 {
		panic("layout: waterfall requires at least one column")
	}
	return Waterfall{columns: columns, spacingX: spacingX, spacingY: spacingY}
}

// WithPadding returns a copy of the layout with the given content insets.
func (w Waterfall) WithPadding(padding Edges) Waterfall {
	w.padding = padding
	return w
}

// Columns returns the configured column count.
func (w Waterfall) Columns() int {
	return w.columns
}

// SizeThatFits computes the container size for the proposal, memoizing the
// full plan in cache. A proposal without a definite width yields zero size,
// since column widths cannot be derived.
func (w Waterfall) SizeThatFits(proposal Proposal, subviews Subviews, cache *PlanCache) Size {
	width, _ := proposal.Width.Value()
	if !cache.match(width, w.columns) {
		plan, size := w.layout(width, subviews)
		cache.store(width, w.columns, plan, size)
	}
	return cache.size
}

// Place assigns each subview its frame within bounds, reusing the cached plan
// only when both the width and the column count match the size query.
func (w Waterfall) Place(bounds Rect, proposal Proposal, subviews Subviews, cache *PlanCache, place PlaceFunc) {
	width := bounds.Width
	if !cache.match(width, w.columns) {
		plan, size := w.layout(width, subviews)
		cache.store(width, w.columns, plan, size)
	}
	applyPlan(cache.plan, bounds.Origin(), place)
}

// layout runs the greedy shortest-column pass. A non-positive container
// width short-circuits to zero size with no placements.
func (w Waterfall) layout(width float64, subviews Subviews) ([]Placement, Size) {
	if width <= 0 || len(subviews) == 0 {
		return nil, Size{}
	}
	inner := width - w.padding.Horizontal()
	if inner <= 0 {
		return nil, Size{}
	}

	columnWidth := (inner - float64(w.columns-1)*w.spacingX) / float64(w.columns)
	childProposal := ProposeWidth(columnWidth)
	heights := make([]float64, w.columns)

	plan := make([]Placement, 0, len(subviews))
	for i, sv := range subviews {
		size := sv.SizeThatFits(childProposal)

		// Shortest column wins; ties go to the lowest index.
		col := 0
		for c := 1; c < w.columns; c++ {
			if heights[c] < heights[col] {
				col = c
			}
		}

		plan = append(plan, Placement{
			Index: i,
			Position: Point{
				X: w.padding.Left + float64(col)*(columnWidth+w.spacingX),
				Y: w.padding.Top + heights[col] + w.spacingY,
			},
			Size: size,
		})
		heights[col] += w.spacingY + size.Height
	}

	tallest := 0.0
	for _, h := range heights {
		tallest = max(tallest, h)
	}

	// The container spans the full width regardless of partial column fill.
	return plan, Size{Width: width, Height: tallest + w.padding.Vertical()}
}
