package layout

// PlanCache memoizes the placement plan computed during a size query so the
// following placement call does not recompute it. A cache belongs to exactly
// one layout instance for one size-query/placement pair; the caller passes
// the same pointer into both calls. The zero value is an empty, invalid cache.
//
// A cached plan is reused only when the validity key matches exactly;
// any mismatch discards the whole plan and forces recomputation. The key is
// the container width, plus the column count for layouts that have one.
type PlanCache struct {
	width   float64
	columns int
	plan    []Placement
	size    Size
	valid   bool
}

// Invalidate discards the cached plan. Hosts call this when subviews or
// their content change without a width change, since the validity key
// cannot observe that.
func (c *PlanCache) Invalidate() {
	c.valid = false
	c.plan = nil
}

// match reports whether the cached plan can serve the given key.
func (c *PlanCache) match(width float64, columns int) bool {
	return c.valid && c.width == width && c.columns == columns
}

// store replaces the cached plan wholesale under a new key.
func (c *PlanCache) store(width float64, columns int, plan []Placement, size Size) {
	c.width = width
	c.columns = columns
	c.plan = plan
	c.size = size
	c.valid = true
}

// StackCache memoizes the measurement pass of the equal vertical stack:
// the shared maximum size, the per-gap spacing, and the spacing total.
// Unlike PlanCache it has no validity key; the host owns invalidation and
// calls Invalidate whenever the subview sequence or its content changes.
// The zero value is invalid, so the first use always measures.
type StackCache struct {
	max   Size
	gaps  []float64
	total float64
	valid bool
}

// Invalidate discards the cached measurements.
func (c *StackCache) Invalidate() {
	c.valid = false
	c.gaps = nil
}
