package history

import (
	"fmt"

	"recycling-backend/internal/models"

	"gorm.io/gorm"
)

type Entry struct {
	BagID    uint
	Action   string
	Details  string
	UserID   uint
	UserName string
}

// Record: เขียนประวัติของเป้หนึ่งรายการ
// รับ tx เข้ามาเพื่อให้ประวัติถูก commit พร้อมกับรายการหลักเสมอ
func Record(tx *gorm.DB, e Entry) error {
	row := models.BagHistory{
		BagID:    e.BagID,
		Action:   e.Action,
		Details:  e.Details,
		UserID:   e.UserID,
		UserName: e.UserName,
	}

	if err := tx.Create(&row).Error; err != nil {
		return fmt.Errorf("บันทึกประวัติเป้ไม่สำเร็จ: %w", err)
	}

	return nil
}
