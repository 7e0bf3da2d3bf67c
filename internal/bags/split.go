package bags

import (
	"errors"
	"fmt"

	"recycling-backend/internal/models"
)

type SplitEntry struct {
	Material string  `json:"material"`
	Weight   float64 `json:"weight"`
	Notes    string  `json:"notes"`
}

// buildSplitChildren: เตรียมเป้ลูกจากรายการวัสดุที่คัดแยกออกจากเป้แม่
// น้ำหนักทุกรายการต้องเป็นบวก และรวมกันต้องไม่เกินน้ำหนักคงเหลือของเป้แม่
// ตอบเป้ลูกกับน้ำหนักรวมที่ต้องหักออกจากเป้แม่ ยังไม่แตะฐานข้อมูล
func buildSplitChildren(parent *models.Bag, entries []SplitEntry) ([]models.Bag, float64, error) {
	if len(entries) == 0 {
		return nil, 0, errors.New("ต้องมีรายการวัสดุอย่างน้อยหนึ่งรายการ")
	}

	var total float64
	for _, e := range entries {
		if e.Material == "" {
			return nil, 0, errors.New("กรุณาระบุชนิดวัสดุทุกรายการ")
		}
		if e.Weight <= 0 {
			return nil, 0, errors.New("น้ำหนักแต่ละรายการต้องมากกว่าศูนย์")
		}
		total += e.Weight
	}

	if total > parent.Weight {
		return nil, 0, fmt.Errorf("น้ำหนักรวม %.2f กก. เกินน้ำหนักคงเหลือของเป้ (%.2f กก.)", total, parent.Weight)
	}

	children := make([]models.Bag, 0, len(entries))
	for i, e := range entries {
		material := e.Material
		children = append(children, models.Bag{
			BagCode:        parent.BagCode + "-" + splitSuffix(i),
			Weight:         e.Weight,
			OriginalWeight: e.Weight,
			Material:       &material, // วัสดุเดียว 100%
			SortStatus:     models.BagStatusReady,
			TripID:         parent.TripID,
			ParentBagID:    &parent.ID,
			Notes:          e.Notes,
		})
	}

	return children, total, nil
}
