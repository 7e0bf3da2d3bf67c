package bags

import (
	"testing"

	"recycling-backend/internal/models"
)

func TestFormatBagCode(t *testing.T) {
	cases := []struct {
		seq  int64
		want string
	}{
		{1, "BAG000001"},
		{42, "BAG000042"},
		{999999, "BAG999999"},
		{1000000, "BAG1000000"}, // เกินหกหลักก็ยังไม่ชนกัน แค่ยาวขึ้น
	}
	for _, tc := range cases {
		if got := formatBagCode(tc.seq); got != tc.want {
			t.Errorf("formatBagCode(%d) = %q, want %q", tc.seq, got, tc.want)
		}
	}
}

func TestSplitSuffix(t *testing.T) {
	cases := []struct {
		index int
		want  string
	}{
		{0, "A"},
		{1, "B"},
		{25, "Z"},
		{26, "AA"},
		{27, "AB"},
		{51, "AZ"},
		{52, "BA"},
	}
	for _, tc := range cases {
		if got := splitSuffix(tc.index); got != tc.want {
			t.Errorf("splitSuffix(%d) = %q, want %q", tc.index, got, tc.want)
		}
	}
}

func TestSplitSuffixNeverRepeats(t *testing.T) {
	seen := make(map[string]int)
	for i := 0; i < 1000; i++ {
		s := splitSuffix(i)
		if prev, ok := seen[s]; ok {
			t.Fatalf("suffix %q generated for both %d and %d", s, prev, i)
		}
		seen[s] = i
	}
}

func TestNextSortStatusForwardOnly(t *testing.T) {
	order := []models.BagSortStatus{
		models.BagStatusPreparing,
		models.BagStatusSorting,
		models.BagStatusReady,
		models.BagStatusSold,
	}

	for i := 0; i < len(order)-1; i++ {
		next, ok := nextSortStatus(order[i])
		if !ok {
			t.Fatalf("%s should advance", order[i])
		}
		if next != order[i+1] {
			t.Errorf("next of %s = %s, want %s", order[i], next, order[i+1])
		}
	}

	if next, ok := nextSortStatus(models.BagStatusSold); ok {
		t.Errorf("sold should be terminal, got %s", next)
	}
}
