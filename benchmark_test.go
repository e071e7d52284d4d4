package layout

import "testing"

// buildSubviews creates n fixed-size subviews with cycling widths so flow
// lines and waterfall columns fill unevenly.
func buildSubviews(n int) Subviews {
	subviews := make(Subviews, n)
	for i := range subviews {
		subviews[i] = fixedView{
			w: float64(20 + (i*7)%60),
			h: float64(10 + (i*11)%40),
		}
	}
	return subviews
}

func discard(int, Rect) {}

func BenchmarkFlow_100Children(b *testing.B) {
	flow := Flow{SpacingX: 8, SpacingY: 8}
	subviews := buildSubviews(100)
	bounds := NewRect(0, 0, 400, 2000)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		var cache PlanCache
		flow.SizeThatFits(ProposeWidth(400), subviews, &cache)
		flow.Place(bounds, ProposeSize(bounds.Sized()), subviews, &cache, discard)
	}
}

func BenchmarkFlow_CachedPlacement(b *testing.B) {
	// Placement after a matching size query should only replay the plan.
	flow := Flow{SpacingX: 8, SpacingY: 8}
	subviews := buildSubviews(100)
	bounds := NewRect(0, 0, 400, 2000)

	var cache PlanCache
	flow.SizeThatFits(ProposeWidth(400), subviews, &cache)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		flow.Place(bounds, ProposeSize(bounds.Sized()), subviews, &cache, discard)
	}
}

func BenchmarkWaterfall_100Children(b *testing.B) {
	wf := NewWaterfall(4, 8, 8)
	subviews := buildSubviews(100)
	bounds := NewRect(0, 0, 400, 2000)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		var cache PlanCache
		wf.SizeThatFits(ProposeWidth(400), subviews, &cache)
		wf.Place(bounds, ProposeSize(bounds.Sized()), subviews, &cache, discard)
	}
}

func BenchmarkEqualVStack_100Children(b *testing.B) {
	stack := EqualVStack{}
	subviews := buildSubviews(100)
	bounds := NewRect(0, 0, 100, 5000)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		var cache StackCache
		stack.SizeThatFitsCached(subviews, &cache)
		stack.PlaceCached(bounds, subviews, &cache, discard)
	}
}
