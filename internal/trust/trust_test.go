package trust

import "testing"

func TestClampBounds(t *testing.T) {
	tests := []struct {
		points int
		want   int
	}{
		{-5, 0},
		{0, 0},
		{50, 50},
		{100, 100},
		{115, 100},
	}

	for _, tt := range tests {
		if got := Clamp(tt.points); got != tt.want {
			t.Fatalf("Clamp(%d): expected %d, got %d", tt.points, tt.want, got)
		}
	}
}

func TestApplyClampsAtEdges(t *testing.T) {
	if got := Apply(95, ActionOrganizeEvent); got != 100 {
		t.Fatalf("expected 95 +20 to clamp at 100, got %d", got)
	}
	if got := Apply(5, ActionNoShow); got != 0 {
		t.Fatalf("expected 5 -10 to clamp at 0, got %d", got)
	}
}

func TestApplyUnknownActionIsNeutral(t *testing.T) {
	if got := Apply(42, PointAction("UNKNOWN")); got != 42 {
		t.Fatalf("expected unknown action to leave points at 42, got %d", got)
	}
}

func TestTierBoundaries(t *testing.T) {
	tests := []struct {
		points int
		want   Tier
	}{
		{0, TierNew},
		{19, TierNew},
		{20, TierBronze},
		{49, TierBronze},
		{50, TierSilver},
		{69, TierSilver},
		{70, TierHigh},
		{89, TierHigh},
		{90, TierElite},
		{100, TierElite},
	}

	for _, tt := range tests {
		if got := TierFor(tt.points); got != tt.want {
			t.Fatalf("TierFor(%d): expected %q, got %q", tt.points, tt.want, got)
		}
	}
}

func TestEligibilityGates(t *testing.T) {
	if CanRSVP(19) {
		t.Fatal("expected 19 points to be ineligible")
	}
	if !CanRSVP(20) {
		t.Fatal("expected 20 points to be eligible")
	}
	if !NearIneligibility(25) {
		t.Fatal("expected 25 points to trigger the warning band")
	}
	if NearIneligibility(30) {
		t.Fatal("expected 30 points to be clear of the warning band")
	}
	if NearIneligibility(10) {
		t.Fatal("warning band must not include already-ineligible counts")
	}
}

func TestAwardSequenceScenario(t *testing.T) {
	points := 75
	points = Apply(points, ActionOrganizeEvent)
	if points != 95 {
		t.Fatalf("after organize: expected 95, got %d", points)
	}
	points = Apply(points, ActionNoShow)
	if points != 85 {
		t.Fatalf("after no-show: expected 85, got %d", points)
	}
	points = Apply(points, ActionVerifyIdentity)
	if points != 95 {
		t.Fatalf("after verify: expected 95, got %d", points)
	}
	if tier := TierFor(points); tier != TierElite {
		t.Fatalf("expected tier %q at %d points, got %q", TierElite, points, tier)
	}
}
