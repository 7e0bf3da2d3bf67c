package bags

import (
	"fmt"

	"recycling-backend/internal/models"
)

// formatBagCode: รหัสเป้แบบอ่านง่าย เลขมาจากตัวนับกลางของทั้งระบบ
// เลขไม่แยกตามเที่ยว และไม่เอาเลขของเป้ที่ลบไปแล้วกลับมาใช้ใหม่
func formatBagCode(seq int64) string {
	return fmt.Sprintf("BAG%06d", seq)
}

// splitSuffix: ตัวอักษรท้ายรหัสเป้ลูกตามตำแหน่ง (A, B, ..., Z, AA, AB, ...)
func splitSuffix(index int) string {
	s := ""
	n := index
	for {
		s = string(rune('A'+n%26)) + s
		n = n/26 - 1
		if n < 0 {
			break
		}
	}
	return s
}

// nextSortStatus: สถานะคัดแยกขั้นถัดไป ตอบ false เมื่อจำหน่ายแล้ว
func nextSortStatus(s models.BagSortStatus) (models.BagSortStatus, bool) {
	for i, cur := range models.BagSortSequence {
		if cur == s {
			if i+1 >= len(models.BagSortSequence) {
				return s, false
			}
			return models.BagSortSequence[i+1], true
		}
	}
	return s, false
}
