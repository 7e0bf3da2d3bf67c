package models

import "time"

type LotStatus string

const (
	LotStatusPending    LotStatus = "pending"    // รอดำเนินการ
	LotStatusProcessing LotStatus = "processing" // กำลังดำเนินการ
	LotStatusCompleted  LotStatus = "completed"  // เสร็จสิ้น
	LotStatusShipped    LotStatus = "shipped"    // จัดส่งแล้ว
)

type MaterialQuality string

const (
	QualityExcellent MaterialQuality = "excellent"
	QualityGood      MaterialQuality = "good"
	QualityFair      MaterialQuality = "fair"
	QualityPoor      MaterialQuality = "poor"
)

// MaterialLot: ล็อตวัสดุของหนึ่งเที่ยว ใช้ดูที่มาของวัสดุและทำรายงาน
type MaterialLot struct {
	ID              uint   `gorm:"primaryKey"`
	LotNumber       string `gorm:"size:20;uniqueIndex;not null"` // เช่น LOT001-2025
	TripID          uint   `gorm:"index;not null"`
	Trip            Trip
	ClientName      string  `gorm:"size:100;not null"`
	ClientLocation  string  `gorm:"size:255"`
	OriginalWeight  float64 `gorm:"not null;default:0"`
	CurrentWeight   float64 `gorm:"not null;default:0"`
	WeightAtClient  float64 `gorm:"not null;default:0"` // น้ำหนักชั่งที่โรงงานลูกค้า
	WeightAtCompany float64 `gorm:"not null;default:0"` // น้ำหนักชั่งที่บริษัท
	WeightDifference float64 `gorm:"not null;default:0"`
	Status          LotStatus `gorm:"size:20;not null;default:'pending'"`
	Notes           string    `gorm:"size:255"`
	CreatedAt       time.Time
	UpdatedAt       time.Time

	Materials []LotMaterial `gorm:"foreignKey:LotID;constraint:OnDelete:CASCADE"`
	Photos    []LotPhoto    `gorm:"foreignKey:LotID;constraint:OnDelete:CASCADE"`
}

// LotMaterial: สัดส่วนวัสดุแต่ละชนิดในล็อต
type LotMaterial struct {
	ID                  uint `gorm:"primaryKey"`
	LotID               uint `gorm:"index;not null"`
	MaterialType        string  `gorm:"size:100;not null"` // เช่น ทองแดง เหล็ก อลูมิเนียม
	EstimatedPercentage float64 `gorm:"not null;default:0"`
	EstimatedWeight     float64 `gorm:"not null;default:0"`
	ActualWeight        *float64
	Quality             MaterialQuality `gorm:"size:20"`
	Notes               string          `gorm:"size:255"`
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// LotPhoto: รูปถ่ายชั่งน้ำหนัก แยกฝั่งลูกค้า/บริษัท
type LotPhoto struct {
	ID        uint   `gorm:"primaryKey"`
	LotID     uint   `gorm:"index;not null"`
	Side      string `gorm:"size:20;not null"`  // "client" หรือ "company"
	FileName  string `gorm:"size:100;not null"` // ชื่อไฟล์ที่เก็บจริง (uuid)
	CreatedAt time.Time
}
