package lots

import "testing"

func TestFormatLotNumber(t *testing.T) {
	cases := []struct {
		seq  int64
		year int
		want string
	}{
		{1, 2025, "LOT001-2025"},
		{12, 2025, "LOT012-2025"},
		{999, 2026, "LOT999-2026"},
		{1000, 2026, "LOT1000-2026"}, // เกินสามหลักก็ยาวขึ้นเฉย ๆ ไม่วนกลับ
	}
	for _, tc := range cases {
		if got := formatLotNumber(tc.seq, tc.year); got != tc.want {
			t.Errorf("formatLotNumber(%d, %d) = %q, want %q", tc.seq, tc.year, got, tc.want)
		}
	}
}
