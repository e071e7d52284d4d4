package layout

import "math"

// Flow arranges subviews left to right, wrapping to a new line when the next
// subview would exceed the container width. Configuration is immutable after
// construction.
type Flow struct {
	// HAlign shifts whole lines within the content width.
	HAlign Alignment

	// VAlign positions each item within its line's height band.
	// Ignored when FillLineHeight is set.
	VAlign Alignment

	// SpacingX is the horizontal gap between items on a line.
	SpacingX float64

	// SpacingY is the vertical gap between lines.
	SpacingY float64

	// FillLineHeight stretches every item to its line's full height
	// instead of aligning it by its own height.
	FillLineHeight bool

	// Padding insets the content area on all four sides.
	Padding Edges
}

// flowLine accumulates the items assigned to one line along with its running
// geometry. Stack-allocated per layout call, discarded after the plan is built.
type flowLine struct {
	start  int // index of the line's first item within the plan
	count  int
	y      float64
	width  float64
	height float64
}

// SizeThatFits computes the container size for the proposal, memoizing the
// full plan in cache. An unspecified or infinite width proposal lays out on a
// single unbounded line.
func (f Flow) SizeThatFits(proposal Proposal, subviews Subviews, cache *PlanCache) Size {
	width := proposal.Width.Resolve(math.Inf(1))
	if !cache.match(width, 0) {
		plan, size := f.layout(width, subviews)
		cache.store(width, 0, plan, size)
	}
	return cache.size
}

// Place assigns each subview its frame within bounds. The plan cached by the
// preceding size query is reused when the bounds width matches the width it
// was computed for; otherwise the whole plan is recomputed.
func (f Flow) Place(bounds Rect, proposal Proposal, subviews Subviews, cache *PlanCache, place PlaceFunc) {
	width := bounds.Width
	if !cache.match(width, 0) {
		plan, size := f.layout(width, subviews)
		cache.store(width, 0, plan, size)
	}
	applyPlan(cache.plan, bounds.Origin(), place)
}

// layout runs the full flow pass: greedy line fill, then a per-line
// alignment pass, then padding offsets.
func (f Flow) layout(width float64, subviews Subviews) ([]Placement, Size) {
	if len(subviews) == 0 {
		return nil, Size{}
	}

	inner := width - f.Padding.Horizontal()
	childProposal := Proposal{Height: Unspecified()}
	if math.IsInf(inner, 1) {
		childProposal.Width = Unspecified()
	} else {
		childProposal.Width = Definite(inner)
	}

	// Phase 1: greedy line fill. The wrap check only fires when the line
	// already has content, so an item wider than the container still lands
	// alone on a fresh line instead of looping.
	plan := make([]Placement, 0, len(subviews))
	var lines []flowLine
	line := flowLine{}
	currentX := 0.0

	for i, sv := range subviews {
		size := sv.SizeThatFits(childProposal)

		if line.count > 0 && currentX+f.SpacingX+size.Width > inner {
			line.width = currentX
			lines = append(lines, line)
			line = flowLine{
				start: len(plan),
				y:     line.y + line.height + f.SpacingY,
			}
			currentX = 0
		} else if line.count > 0 {
			currentX += f.SpacingX
		}

		plan = append(plan, Placement{
			Index:    i,
			Position: Point{X: currentX, Y: line.y},
			Size:     size,
		})
		line.count++
		currentX += size.Width
		line.height = max(line.height, size.Height)
	}
	line.width = currentX
	lines = append(lines, line)

	// Content width is the widest line, never exceeding the container.
	contentWidth := 0.0
	for _, l := range lines {
		contentWidth = max(contentWidth, l.width)
	}
	if !math.IsInf(inner, 1) {
		contentWidth = min(contentWidth, inner)
	}
	contentWidth = max(contentWidth, 0)

	// Phase 2: per-line alignment. Vertical alignment positions each item
	// within the line's height band; FillLineHeight overrides it and
	// stretches the item instead. Horizontal alignment shifts whole lines.
	for _, l := range lines {
		shift := alignOffset(f.HAlign, contentWidth, l.width)
		for j := l.start; j < l.start+l.count; j++ {
			item := &plan[j]
			item.Position.X += shift + f.Padding.Left
			if f.FillLineHeight {
				item.Position.Y = l.y
				item.Size.Height = l.height
			} else {
				item.Position.Y = l.y + alignOffset(f.VAlign, l.height, item.Size.Height)
			}
			item.Position.Y += f.Padding.Top
		}
	}

	last := lines[len(lines)-1]
	total := Size{
		Width:  contentWidth + f.Padding.Horizontal(),
		Height: last.y + last.height + f.Padding.Vertical(),
	}
	return plan, total
}
