package trips

import "recycling-backend/internal/models"

// nextTripStatus: สถานะถัดไปตามลำดับ ตอบ false เมื่อเที่ยวเสร็จสิ้นแล้ว
func nextTripStatus(s models.TripStatus) (models.TripStatus, bool) {
	for i, cur := range models.TripStatusSequence {
		if cur == s {
			if i+1 >= len(models.TripStatusSequence) {
				return s, false
			}
			return models.TripStatusSequence[i+1], true
		}
	}
	return s, false
}

func isValidTripStatus(s models.TripStatus) bool {
	for _, cur := range models.TripStatusSequence {
		if cur == s {
			return true
		}
	}
	return false
}
