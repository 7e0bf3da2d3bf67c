package bags

import (
	"encoding/json"
	"testing"
)

// หน้าบ้านส่ง body ตอนสร้างเป้เป็น camelCase โดยเฉพาะ tripId
func TestCreateBagRequestDecode(t *testing.T) {
	raw := []byte(`{"weight":45.5,"material":"พลาสติกใส","tripId":7}`)

	var body CreateBagRequest
	if err := json.Unmarshal(raw, &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if body.Weight != 45.5 {
		t.Errorf("Weight = %v, want 45.5", body.Weight)
	}
	if body.Material == nil || *body.Material != "พลาสติกใส" {
		t.Errorf("Material = %v, want พลาสติกใส", body.Material)
	}
	if body.TripID != 7 {
		t.Errorf("TripID = %d, want 7", body.TripID)
	}
}

// material เป็น optional ไม่ส่งมาก็ต้องเป็น nil
func TestCreateBagRequestDecodeWithoutMaterial(t *testing.T) {
	raw := []byte(`{"weight":10,"tripId":3}`)

	var body CreateBagRequest
	if err := json.Unmarshal(raw, &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if body.Material != nil {
		t.Errorf("Material = %v, want nil", body.Material)
	}
	if body.TripID != 3 {
		t.Errorf("TripID = %d, want 3", body.TripID)
	}
}
