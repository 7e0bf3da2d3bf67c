package reports

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"
)

var thaiMonths = []string{
	"มกราคม", "กุมภาพันธ์", "มีนาคม", "เมษายน", "พฤษภาคม", "มิถุนายน",
	"กรกฎาคม", "สิงหาคม", "กันยายน", "ตุลาคม", "พฤศจิกายน", "ธันวาคม",
}

// GET /api/reports/monthly/export?year=2025
// ดาวน์โหลดรายงานรายเดือนเป็นไฟล์ xlsx
func ExportMonthlyReportHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		year, err := yearParam(c)
		if err != nil {
			return err
		}

		rows, err := monthlyRows(year)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "ไม่สามารถสร้างรายงานได้")
		}

		f := excelize.NewFile()
		defer f.Close()

		sheet := f.GetSheetName(0)
		f.SetCellValue(sheet, "A1", fmt.Sprintf("รายงานเที่ยวรายเดือน ปี %d", year))
		f.SetCellValue(sheet, "A2", "เดือน")
		f.SetCellValue(sheet, "B2", "จำนวนเที่ยว")
		f.SetCellValue(sheet, "C2", "น้ำหนักรวม (กก.)")

		var totalTrips int64
		var totalWeight float64
		for i, row := range rows {
			r := i + 3
			f.SetCellValue(sheet, fmt.Sprintf("A%d", r), thaiMonths[i])
			f.SetCellValue(sheet, fmt.Sprintf("B%d", r), row.Trips)
			f.SetCellValue(sheet, fmt.Sprintf("C%d", r), row.Weight)
			totalTrips += row.Trips
			totalWeight += row.Weight
		}

		f.SetCellValue(sheet, "A15", "รวมทั้งปี")
		f.SetCellValue(sheet, "B15", totalTrips)
		f.SetCellValue(sheet, "C15", totalWeight)

		buf, err := f.WriteToBuffer()
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "ไม่สามารถสร้างไฟล์รายงานได้")
		}

		c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="trip-report-%d.xlsx"`, year))
		return c.Send(buf.Bytes())
	}
}
