package bags

import (
	"testing"

	"recycling-backend/internal/models"
)

func sortingBag(weight float64) *models.Bag {
	return &models.Bag{
		ID:             7,
		BagCode:        "BAG000002",
		Weight:         weight,
		OriginalWeight: weight,
		SortStatus:     models.BagStatusSorting,
		TripID:         3,
	}
}

func TestBuildSplitChildren(t *testing.T) {
	parent := sortingBag(300)
	entries := []SplitEntry{
		{Material: "อลูมิเนียม", Weight: 108},
		{Material: "พลาสติก", Weight: 72, Notes: "ต้องทำความสะอาด"},
	}

	children, total, err := buildSplitChildren(parent, entries)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if total != 180 {
		t.Fatalf("total = %v, want 180", total)
	}
	if len(children) != 2 {
		t.Fatalf("expected 2 children, got %d", len(children))
	}

	if children[0].BagCode != "BAG000002-A" {
		t.Errorf("first child code = %q, want BAG000002-A", children[0].BagCode)
	}
	if children[1].BagCode != "BAG000002-B" {
		t.Errorf("second child code = %q, want BAG000002-B", children[1].BagCode)
	}

	for i, child := range children {
		if child.TripID != parent.TripID {
			t.Errorf("child %d trip = %d, want %d", i, child.TripID, parent.TripID)
		}
		if child.ParentBagID == nil || *child.ParentBagID != parent.ID {
			t.Errorf("child %d parent ref incorrect: %v", i, child.ParentBagID)
		}
		if child.SortStatus != models.BagStatusReady {
			t.Errorf("child %d status = %s, want ready", i, child.SortStatus)
		}
		if child.OriginalWeight != child.Weight {
			t.Errorf("child %d original weight %v != weight %v", i, child.OriginalWeight, child.Weight)
		}
	}

	if children[0].Material == nil || *children[0].Material != "อลูมิเนียม" {
		t.Errorf("first child material incorrect: %v", children[0].Material)
	}
	if children[1].Notes != "ต้องทำความสะอาด" {
		t.Errorf("second child notes = %q", children[1].Notes)
	}

	// น้ำหนักต้องครบถ้วน: เป้ลูกรวมกับที่เหลือในเป้แม่เท่ากับน้ำหนักก่อนแบ่ง
	var childSum float64
	for _, child := range children {
		childSum += child.Weight
	}
	remaining := parent.Weight - total
	if childSum+remaining != parent.Weight {
		t.Errorf("weight not conserved: children %v + remaining %v != %v", childSum, remaining, parent.Weight)
	}
}

func TestBuildSplitChildrenExactWeight(t *testing.T) {
	// แบ่งพอดีน้ำหนักคงเหลือต้องทำได้ เป้แม่เหลือศูนย์
	parent := sortingBag(100)
	children, total, err := buildSplitChildren(parent, []SplitEntry{
		{Material: "ทองแดง", Weight: 100},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if total != 100 || len(children) != 1 {
		t.Fatalf("total = %v, children = %d", total, len(children))
	}
}

func TestBuildSplitChildrenOverAllocated(t *testing.T) {
	parent := sortingBag(100)
	_, _, err := buildSplitChildren(parent, []SplitEntry{
		{Material: "ทองแดง", Weight: 80},
		{Material: "เหล็ก", Weight: 30},
	})
	if err == nil {
		t.Fatal("expected over-allocation error, got nil")
	}
}

func TestBuildSplitChildrenRejectsBadEntries(t *testing.T) {
	parent := sortingBag(100)

	if _, _, err := buildSplitChildren(parent, nil); err == nil {
		t.Error("empty entries should be rejected")
	}
	if _, _, err := buildSplitChildren(parent, []SplitEntry{{Material: "เหล็ก", Weight: 0}}); err == nil {
		t.Error("zero weight should be rejected")
	}
	if _, _, err := buildSplitChildren(parent, []SplitEntry{{Material: "เหล็ก", Weight: -5}}); err == nil {
		t.Error("negative weight should be rejected")
	}
	if _, _, err := buildSplitChildren(parent, []SplitEntry{{Material: "", Weight: 10}}); err == nil {
		t.Error("missing material should be rejected")
	}
}

func TestBuildSplitChildrenManyEntries(t *testing.T) {
	// เกิน 26 รายการ ตัวอักษรท้ายรหัสต้องไม่ซ้ำกัน
	parent := sortingBag(1000)
	entries := make([]SplitEntry, 30)
	for i := range entries {
		entries[i] = SplitEntry{Material: "เหล็ก", Weight: 1}
	}

	children, _, err := buildSplitChildren(parent, entries)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	codes := make(map[string]bool)
	for _, child := range children {
		if codes[child.BagCode] {
			t.Fatalf("duplicate child code %q", child.BagCode)
		}
		codes[child.BagCode] = true
	}
	if children[26].BagCode != "BAG000002-AA" {
		t.Errorf("27th child code = %q, want BAG000002-AA", children[26].BagCode)
	}
}
