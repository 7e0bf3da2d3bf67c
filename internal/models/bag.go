package models

import "time"

type BagSortStatus string

const (
	BagStatusPreparing BagSortStatus = "preparing" // เตรียมคัดแยก
	BagStatusSorting   BagSortStatus = "sorting"   // ระหว่างคัดแยก
	BagStatusReady     BagSortStatus = "ready"     // พร้อมจำหน่าย
	BagStatusSold      BagSortStatus = "sold"      // จำหน่ายแล้ว
)

// BagSortSequence: สถานะการคัดแยก เดินหน้าอย่างเดียว ย้อนกลับไม่ได้
var BagSortSequence = []BagSortStatus{
	BagStatusPreparing,
	BagStatusSorting,
	BagStatusReady,
	BagStatusSold,
}

// Bag: เป้วัสดุรีไซเคิลของเที่ยว
// เป้ลูกที่เกิดจากการแบ่งเป้จะอ้างเป้แม่ผ่าน ParentBagID
type Bag struct {
	ID             uint    `gorm:"primaryKey"`
	BagCode        string  `gorm:"size:20;uniqueIndex;not null"` // เช่น BAG000001, BAG000001-A
	Weight         float64 `gorm:"not null;default:0"`           // น้ำหนักคงเหลือ (กก.)
	OriginalWeight float64 `gorm:"not null;default:0"`           // น้ำหนักแรกรับ
	Material       *string `gorm:"size:100"`
	SortStatus     BagSortStatus `gorm:"size:20;not null;default:'preparing'"`
	TripID         uint          `gorm:"index;not null"`
	Trip           Trip
	ParentBagID    *uint  `gorm:"index"`
	Notes          string `gorm:"size:255"`
	CreatedAt      time.Time
	UpdatedAt      time.Time

	Children []Bag        `gorm:"foreignKey:ParentBagID;constraint:OnDelete:SET NULL"`
	History  []BagHistory `gorm:"foreignKey:BagID;constraint:OnDelete:CASCADE"`
}
