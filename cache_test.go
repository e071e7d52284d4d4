package layout

import "testing"

func TestPlanCache_ZeroValueInvalid(t *testing.T) {
	var cache PlanCache
	if cache.match(0, 0) {
		t.Error("zero-value cache should not match anything")
	}
}

func TestPlanCache_MatchSemantics(t *testing.T) {
	var cache PlanCache
	plan := []Placement{{Index: 0, Size: Size{Width: 10, Height: 10}}}
	cache.store(100, 2, plan, Size{Width: 100, Height: 10})

	type tc struct {
		width   float64
		columns int
		want    bool
	}

	tests := map[string]tc{
		"exact key":        {width: 100, columns: 2, want: true},
		"width mismatch":   {width: 99, columns: 2, want: false},
		"columns mismatch": {width: 100, columns: 3, want: false},
		"both mismatch":    {width: 50, columns: 1, want: false},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := cache.match(tt.width, tt.columns); got != tt.want {
				t.Errorf("match(%v, %d) = %v, want %v", tt.width, tt.columns, got, tt.want)
			}
		})
	}
}

func TestPlanCache_StoreReplacesWholesale(t *testing.T) {
	var cache PlanCache
	cache.store(100, 0, []Placement{{Index: 0}, {Index: 1}}, Size{Width: 100, Height: 20})
	cache.store(60, 0, []Placement{{Index: 0}}, Size{Width: 60, Height: 40})

	if cache.match(100, 0) {
		t.Error("old key should no longer match after store")
	}
	if !cache.match(60, 0) {
		t.Error("new key should match")
	}
	if len(cache.plan) != 1 {
		t.Errorf("plan length = %d, want 1 (no partial reuse)", len(cache.plan))
	}
	if cache.size != (Size{Width: 60, Height: 40}) {
		t.Errorf("size = %+v, want {60 40}", cache.size)
	}
}

func TestPlanCache_Invalidate(t *testing.T) {
	var cache PlanCache
	cache.store(100, 0, []Placement{{Index: 0}}, Size{Width: 100, Height: 10})

	cache.Invalidate()
	if cache.match(100, 0) {
		t.Error("invalidated cache should not match its old key")
	}
	if cache.plan != nil {
		t.Error("invalidated cache should drop its plan")
	}
}

func TestStackCache_Invalidate(t *testing.T) {
	cache := StackCache{max: Size{Width: 10, Height: 10}, gaps: []float64{5}, total: 5, valid: true}

	cache.Invalidate()
	if cache.valid {
		t.Error("cache should be invalid after Invalidate")
	}
	if cache.gaps != nil {
		t.Error("invalidated cache should drop its gaps")
	}
}
