package database

import (
	"errors"
	"fmt"
	"testing"

	"gorm.io/gorm"
)

func TestIsNotFound(t *testing.T) {
	if !IsNotFound(gorm.ErrRecordNotFound) {
		t.Error("ErrRecordNotFound ต้องเป็น not found")
	}
	if !IsNotFound(fmt.Errorf("lookup trip: %w", gorm.ErrRecordNotFound)) {
		t.Error("error ที่ห่อ ErrRecordNotFound ไว้ต้องเป็น not found")
	}
	if IsNotFound(errors.New("connection refused")) {
		t.Error("error ฐานข้อมูลอื่นต้องไม่ถูกนับเป็น not found")
	}
	if IsNotFound(nil) {
		t.Error("nil ต้องไม่เป็น not found")
	}
}
