package models

import "time"

type TripStatus string

const (
	TripStatusPending         TripStatus = "PENDING"          // รอออกรถ
	TripStatusTraveling       TripStatus = "TRAVELING"        // เดินทางไปโรงงาน
	TripStatusArrived         TripStatus = "ARRIVED"          // ถึงโรงงานแล้ว
	TripStatusWeighingInitial TripStatus = "WEIGHING_INITIAL" // ชั่งน้ำหนักเริ่มต้น
	TripStatusWeighingFinal   TripStatus = "WEIGHING_FINAL"   // ชั่งน้ำหนักสุดท้าย
	TripStatusPacking         TripStatus = "PACKING"          // บรรจุใส่เป้
	TripStatusCompleted       TripStatus = "COMPLETED"        // เสร็จสิ้น
)

// TripStatusSequence: ลำดับสถานะของเที่ยว เดินหน้าทีละขั้นตามหน้าจอ wizard
var TripStatusSequence = []TripStatus{
	TripStatusPending,
	TripStatusTraveling,
	TripStatusArrived,
	TripStatusWeighingInitial,
	TripStatusWeighingFinal,
	TripStatusPacking,
	TripStatusCompleted,
}

// Trip: เที่ยววิ่งรถไปรับของที่โรงงานลูกค้า
type Trip struct {
	ID              uint   `gorm:"primaryKey"`
	VehicleID       string `gorm:"size:50;not null"`  // ทะเบียนรถ
	CustomerFactory string `gorm:"size:100;not null"` // ชื่อโรงงานลูกค้า
	DepartureTime   time.Time
	ArrivalTime     *time.Time
	ReturnTime      *time.Time
	InitialWeight   float64    `gorm:"not null;default:0"` // น้ำหนักชั่งครั้งแรก (กก.)
	FinalWeight     float64    `gorm:"not null;default:0"` // น้ำหนักชั่งครั้งสุดท้าย (กก.)
	WeightDifference float64   `gorm:"not null;default:0"` // final - initial
	Status          TripStatus `gorm:"size:20;not null;default:'PENDING'"`
	CreatedAt       time.Time
	UpdatedAt       time.Time

	Bags []Bag `gorm:"foreignKey:TripID"`
}
