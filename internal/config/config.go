package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTPPort     string
	DatabaseDSN  string
	JWTSecret    string
	CORSOrigins  string
	LotPhotoPath string // โฟลเดอร์เก็บรูปถ่ายชั่งน้ำหนักของล็อต
}

func Load() *Config {
	// .env ใช้ตอน dev เท่านั้น ถ้าไม่มีไฟล์ก็ข้ามไป
	_ = godotenv.Load()

	cfg := &Config{
		HTTPPort:     getEnv("HTTP_PORT", "8080"),
		DatabaseDSN:  getEnv("DATABASE_DSN", "host=localhost user=postgres password=postgres dbname=recycling port=5432 sslmode=disable"),
		JWTSecret:    getEnv("JWT_SECRET", ""),
		CORSOrigins:  getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:3000"),
		LotPhotoPath: getEnv("LOT_PHOTO_PATH", "./lot-photos"),
	}

	if cfg.JWTSecret == "" {
		log.Fatal("[FATAL] ยังไม่ได้กำหนด JWT_SECRET")
	}
	if len(cfg.JWTSecret) < 32 {
		log.Fatal("[FATAL] JWT_SECRET ต้องยาวอย่างน้อย 32 ตัวอักษร")
	}
	if cfg.DatabaseDSN == "host=localhost user=postgres password=postgres dbname=recycling port=5432 sslmode=disable" {
		log.Println("[WARN] DATABASE_DSN ใช้ค่า default อยู่ อย่าลืมตั้งค่าจริงตอนขึ้น production")
	}

	return cfg
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
