package models

import "time"

type VehicleStatus string

const (
	VehicleStatusAvailable   VehicleStatus = "available"   // พร้อมใช้งาน
	VehicleStatusInUse       VehicleStatus = "in_use"      // กำลังใช้งาน
	VehicleStatusMaintenance VehicleStatus = "maintenance" // ซ่อมบำรุง
)

type Vehicle struct {
	ID        uint   `gorm:"primaryKey"`
	Plate     string `gorm:"size:20;uniqueIndex;not null"` // ทะเบียนรถ
	Driver    string `gorm:"size:100;not null"`            // ชื่อคนขับ
	Status    VehicleStatus `gorm:"size:20;not null;default:'available'"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
