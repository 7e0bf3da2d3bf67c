package database

import (
	"errors"

	"gorm.io/gorm"
)

// IsNotFound แยกกรณีหาแถวไม่เจอออกจาก error อื่นของฐานข้อมูล
func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
