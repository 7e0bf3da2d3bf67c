package database

import (
	"log"

	"recycling-backend/internal/config"
	"recycling-backend/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func Init(cfg *config.Config) {
	var err error

	DB, err = gorm.Open(postgres.Open(cfg.DatabaseDSN), &gorm.Config{})
	if err != nil {
		log.Fatalf("เชื่อมต่อฐานข้อมูลไม่สำเร็จ: %v", err)
	}

	err = DB.AutoMigrate(
		&models.User{},
		&models.Vehicle{},
		&models.Trip{},
		&models.Bag{},
		&models.BagHistory{},
		&models.MaterialLot{},
		&models.LotMaterial{},
		&models.LotPhoto{},
		&models.Counter{},
	)
	if err != nil {
		log.Fatalf("AutoMigrate ไม่สำเร็จ: %v", err)
	}

	// เตรียมแถวตัวนับรหัส ถ้ามีอยู่แล้วค่าเดิมคงไว้
	for _, name := range []string{"bag", "lot"} {
		if err := DB.FirstOrCreate(&models.Counter{}, models.Counter{Name: name}).Error; err != nil {
			log.Fatalf("เตรียมตัวนับ %s ไม่สำเร็จ: %v", name, err)
		}
	}

	log.Println("เชื่อมต่อฐานข้อมูลสำเร็จ Migration เรียบร้อย")
}
