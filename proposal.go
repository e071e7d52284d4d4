package layout

import "math"

// DimensionKind specifies how a Dimension is interpreted.
type DimensionKind uint8

const (
	KindUnspecified DimensionKind = iota // Let the child decide
	KindDefinite                         // Concrete constraint in points
	KindInfinite                         // Child's maximum natural size
)

// Dimension represents one axis of a size proposal: a definite value,
// "unspecified" (the child picks its natural size), or "infinite".
type Dimension struct {
	Amount float64
	Kind   DimensionKind
}

// Definite returns a Dimension carrying a concrete constraint.
func Definite(v float64) Dimension {
	return Dimension{Amount: v, Kind: KindDefinite}
}

// Unspecified returns a Dimension that lets the child decide.
func Unspecified() Dimension {
	return Dimension{Kind: KindUnspecified}
}

// Infinite returns a Dimension asking for the child's maximum natural size.
func Infinite() Dimension {
	return Dimension{Kind: KindInfinite}
}

// IsDefinite returns true if the dimension carries a concrete value.
func (d Dimension) IsDefinite() bool {
	return d.Kind == KindDefinite
}

// IsUnspecified returns true if the child should pick its natural size.
func (d Dimension) IsUnspecified() bool {
	return d.Kind == KindUnspecified
}

// Value returns the concrete constraint and whether one is present.
func (d Dimension) Value() (float64, bool) {
	if d.Kind == KindDefinite {
		return d.Amount, true
	}
	return 0, false
}

// Resolve computes the constraint as a plain float.
// Definite dimensions yield their value, infinite yields +Inf,
// and unspecified yields the fallback.
func (d Dimension) Resolve(fallback float64) float64 {
	switch d.Kind {
	case KindDefinite:
		return d.Amount
	case KindInfinite:
		return math.Inf(1)
	default:
		return fallback
	}
}

// Proposal is a size constraint used to query a child's preferred size
// and to communicate the container's own constraint.
type Proposal struct {
	Width, Height Dimension
}

// Propose creates a Proposal with both axes set.
func Propose(width, height Dimension) Proposal {
	return Proposal{Width: width, Height: height}
}

// ProposeSize creates a fully definite Proposal from a Size.
func ProposeSize(s Size) Proposal {
	return Proposal{Width: Definite(s.Width), Height: Definite(s.Height)}
}

// ProposeWidth creates a Proposal constraining only the width.
func ProposeWidth(w float64) Proposal {
	return Proposal{Width: Definite(w), Height: Unspecified()}
}

// ProposeHeight creates a Proposal constraining only the height.
func ProposeHeight(h float64) Proposal {
	return Proposal{Width: Unspecified(), Height: Definite(h)}
}

// UnspecifiedProposal creates a Proposal with both axes unspecified.
func UnspecifiedProposal() Proposal {
	return Proposal{}
}

// InfiniteProposal creates a Proposal asking for maximum natural sizes.
func InfiniteProposal() Proposal {
	return Proposal{Width: Infinite(), Height: Infinite()}
}
