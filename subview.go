package layout

// Axis identifies one layout direction.
type Axis uint8

const (
	Horizontal Axis = iota
	Vertical
)

// Subview is the interface a child exposes to the layout engine.
// The engine works entirely with this interface, so any host framework
// element (or plain value) can participate in layout.
type Subview interface {
	// SizeThatFits returns the child's preferred size under the proposal.
	SizeThatFits(proposal Proposal) Size

	// Spacing returns the preferred distance to the next subview on the
	// given axis. Consulted by the stack layouts when no explicit spacing
	// is configured.
	Spacing(axis Axis) float64
}

// Subviews is an ordered sequence of children for one layout pass.
// Indices are stable for the duration of the pass.
type Subviews []Subview

// PlaceFunc receives the final frame for one child, in the placement
// bounds' coordinate space. The engine calls it once per laid-out child.
type PlaceFunc func(index int, frame Rect)

// Static is a fixed-size Subview for hosts without their own element type.
// It reports its configured size, shrinking its width when a narrower
// definite width is proposed.
type Static struct {
	Size Size
	Gap  float64
}

// SizeThatFits returns the configured size, capped to a narrower proposed width.
func (s Static) SizeThatFits(proposal Proposal) Size {
	sz := s.Size
	if w, ok := proposal.Width.Value(); ok && w < sz.Width {
		sz.Width = max(0, w)
	}
	return sz
}

// Spacing returns the configured gap on both axes.
func (s Static) Spacing(Axis) float64 {
	return s.Gap
}
