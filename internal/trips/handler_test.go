package trips

import (
	"encoding/json"
	"testing"
)

// หน้าบ้านส่ง body ตอนสร้างเที่ยวเป็น camelCase ต้อง decode เข้า struct ได้ครบ
func TestCreateTripRequestDecode(t *testing.T) {
	raw := []byte(`{"vehicleId":"กข-1234","customerFactory":"โรงงานรีไซเคิลไทย"}`)

	var body CreateTripRequest
	if err := json.Unmarshal(raw, &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if body.VehicleID != "กข-1234" {
		t.Errorf("VehicleID = %q, want %q", body.VehicleID, "กข-1234")
	}
	if body.CustomerFactory != "โรงงานรีไซเคิลไทย" {
		t.Errorf("CustomerFactory = %q, want %q", body.CustomerFactory, "โรงงานรีไซเคิลไทย")
	}
}
