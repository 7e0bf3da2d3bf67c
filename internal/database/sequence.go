package database

import (
	"fmt"

	"recycling-backend/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// NextSequence: ขอเลขลำดับถัดไปจากตัวนับชื่อ name
// ล็อกแถวตัวนับด้วย SELECT ... FOR UPDATE สองคำขอพร้อมกันจะได้เลขไม่ซ้ำกันแน่นอน
// ต้องเรียกภายในทรานแซคชันเดียวกับการสร้างรายการที่ใช้เลขนี้
func NextSequence(tx *gorm.DB, name string) (int64, error) {
	var counter models.Counter
	if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&counter, "name = ?", name).Error; err != nil {
		return 0, fmt.Errorf("อ่านตัวนับ %s ไม่สำเร็จ: %w", name, err)
	}

	counter.Value++
	if err := tx.Save(&counter).Error; err != nil {
		return 0, fmt.Errorf("อัพเดทตัวนับ %s ไม่สำเร็จ: %w", name, err)
	}

	return counter.Value, nil
}
