package models

// Counter: ตัวนับเลขรหัสฝั่งฐานข้อมูล ใช้แทนการนับจำนวนแถวตอนออกรหัส
// การอ่านและบวกค่าทำในทรานแซคชันเดียวกับการสร้างรายการเสมอ รหัสจึงไม่ชนกัน
type Counter struct {
	Name  string `gorm:"primaryKey;size:20"` // "bag", "lot"
	Value int64  `gorm:"not null;default:0"`
}
