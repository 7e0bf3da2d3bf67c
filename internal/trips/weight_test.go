package trips

import "testing"

func fptr(v float64) *float64 { return &v }

func TestWeightDifferenceBothSupplied(t *testing.T) {
	// ส่งมาทั้งคู่ ค่าเดิมในฐานข้อมูลต้องไม่มีผล
	diff := resolveWeightDifference(fptr(120), fptr(150), 999, 999)
	if diff == nil {
		t.Fatal("expected a difference, got nil")
	}
	if *diff != 30 {
		t.Errorf("got %v, want 30", *diff)
	}
}

func TestWeightDifferenceOnlyInitialSupplied(t *testing.T) {
	// final ใช้ค่าที่บันทึกไว้เดิม
	diff := resolveWeightDifference(fptr(120), nil, 0, 150)
	if diff == nil {
		t.Fatal("expected a difference, got nil")
	}
	if *diff != 30 {
		t.Errorf("got %v, want 30", *diff)
	}
}

func TestWeightDifferenceOnlyFinalSupplied(t *testing.T) {
	diff := resolveWeightDifference(nil, fptr(150), 120, 0)
	if diff == nil {
		t.Fatal("expected a difference, got nil")
	}
	if *diff != 30 {
		t.Errorf("got %v, want 30", *diff)
	}
}

func TestWeightDifferenceNeitherSupplied(t *testing.T) {
	if diff := resolveWeightDifference(nil, nil, 120, 150); diff != nil {
		t.Errorf("expected nil (leave stored value alone), got %v", *diff)
	}
}

// เคสตามพฤติกรรมเดิมของระบบ: เที่ยวใหม่น้ำหนัก 0/0
// ชั่งขาแรก 120 อย่างเดียว ส่วนต่างจะเป็น 0-120 = -120 ไปก่อน
// จนกว่าจะชั่งขาสุดท้ายค่าถึงจะมีความหมาย
func TestWeightDifferenceFreshTripScenario(t *testing.T) {
	diff := resolveWeightDifference(fptr(120), nil, 0, 0)
	if diff == nil {
		t.Fatal("expected a difference, got nil")
	}
	if *diff != -120 {
		t.Errorf("got %v, want -120 (documented behavior, not a bug)", *diff)
	}

	// ชั่งขาสุดท้าย 150 โดยมี initial 120 บันทึกไว้แล้ว
	diff = resolveWeightDifference(nil, fptr(150), 120, 0)
	if diff == nil {
		t.Fatal("expected a difference, got nil")
	}
	if *diff != 30 {
		t.Errorf("got %v, want 30", *diff)
	}
}

func TestWeightDifferenceZeroIsAValue(t *testing.T) {
	// ส่งศูนย์มาต้องถือว่าส่งค่ามา ไม่ใช่ไม่ได้ส่ง
	diff := resolveWeightDifference(fptr(0), nil, 120, 150)
	if diff == nil {
		t.Fatal("expected a difference, got nil")
	}
	if *diff != 150 {
		t.Errorf("got %v, want 150", *diff)
	}
}
