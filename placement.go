package layout

// Placement holds the computed position and size for one child.
// Position is the child's top-left corner relative to the container's
// content origin.
type Placement struct {
	Index    int
	Position Point
	Size     Size
}

// applyPlan maps a placement plan onto the host's children: each placement
// is offset by the bounds origin and handed to place.
func applyPlan(plan []Placement, origin Point, place PlaceFunc) {
	for _, p := range plan {
		place(p.Index, Rect{
			X:      origin.X + p.Position.X,
			Y:      origin.Y + p.Position.Y,
			Width:  p.Size.Width,
			Height: p.Size.Height,
		})
	}
}
