package models

import "time"

// BagHistory: ประวัติการทำรายการของเป้ (เพิ่มอย่างเดียว ไม่แก้ไขย้อนหลัง)
type BagHistory struct {
	ID        uint `gorm:"primaryKey"`
	BagID     uint `gorm:"index;not null"`
	Action    string `gorm:"size:100;not null"` // เช่น "สร้างเป้", "แบ่งเป้"
	Details   string `gorm:"size:255"`
	UserID    uint
	UserName  string `gorm:"size:100"` // ชื่อผู้ทำรายการ (denormalize)
	CreatedAt time.Time
}
