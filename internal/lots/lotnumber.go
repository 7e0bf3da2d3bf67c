package lots

import "fmt"

// formatLotNumber: เลขล็อตแบบอ่านง่าย เช่น LOT001-2025
// เลขรันจากตัวนับกลางเหมือนรหัสเป้ ปีท้ายเอาไว้ดูด้วยตาเฉย ๆ
func formatLotNumber(seq int64, year int) string {
	return fmt.Sprintf("LOT%03d-%d", seq, year)
}
