package reports

import (
	"strconv"
	"time"

	"recycling-backend/internal/database"
	"recycling-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

type SummaryResponse struct {
	TotalTrips     int64   `json:"total_trips"`
	CompletedTrips int64   `json:"completed_trips"`
	TotalWeight    float64 `json:"total_weight"`
	TotalBags      int64   `json:"total_bags"`
}

type MonthlyRow struct {
	Month  int     `json:"month"`
	Trips  int64   `json:"trips"`
	Weight float64 `json:"weight"`
}

// GET /api/reports/summary
// ตัวเลขรวมหน้า dashboard: จำนวนเที่ยว เที่ยวที่จบแล้ว น้ำหนักรวม จำนวนเป้
func SummaryHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var resp SummaryResponse

		if err := database.DB.Model(&models.Trip{}).Count(&resp.TotalTrips).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "ไม่สามารถสร้างรายงานได้")
		}
		if err := database.DB.Model(&models.Trip{}).
			Where("status = ?", models.TripStatusCompleted).
			Count(&resp.CompletedTrips).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "ไม่สามารถสร้างรายงานได้")
		}

		// น้ำหนักรวมนับเฉพาะเที่ยวที่เสร็จสิ้นแล้ว
		var trips []models.Trip
		if err := database.DB.
			Select("weight_difference").
			Where("status = ?", models.TripStatusCompleted).
			Find(&trips).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "ไม่สามารถสร้างรายงานได้")
		}
		for _, t := range trips {
			resp.TotalWeight += t.WeightDifference
		}

		if err := database.DB.Model(&models.Bag{}).Count(&resp.TotalBags).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "ไม่สามารถสร้างรายงานได้")
		}

		return c.JSON(resp)
	}
}

// monthlyRows: รวมจำนวนเที่ยวและน้ำหนักรายเดือนของปีที่ระบุ
// นับเฉพาะเที่ยวที่เสร็จสิ้นแล้ว เดือนที่ไม่มีเที่ยวก็ใส่ศูนย์ไว้ให้ครบ 12 เดือน
func monthlyRows(year int) ([]MonthlyRow, error) {
	start := time.Date(year, 1, 1, 0, 0, 0, 0, time.Local)
	end := start.AddDate(1, 0, 0)

	var trips []models.Trip
	if err := database.DB.
		Select("created_at", "weight_difference").
		Where("status = ? AND created_at >= ? AND created_at < ?", models.TripStatusCompleted, start, end).
		Find(&trips).Error; err != nil {
		return nil, err
	}

	rows := make([]MonthlyRow, 12)
	for i := range rows {
		rows[i].Month = i + 1
	}
	for _, t := range trips {
		m := int(t.CreatedAt.Month()) - 1
		rows[m].Trips++
		rows[m].Weight += t.WeightDifference
	}

	return rows, nil
}

func yearParam(c *fiber.Ctx) (int, error) {
	yearStr := c.Query("year")
	if yearStr == "" {
		return time.Now().Year(), nil
	}
	year, err := strconv.Atoi(yearStr)
	if err != nil || year < 2000 || year > 3000 {
		return 0, fiber.NewError(fiber.StatusBadRequest, "ปีไม่ถูกต้อง")
	}
	return year, nil
}

// GET /api/reports/monthly?year=2025
func MonthlyReportHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		year, err := yearParam(c)
		if err != nil {
			return err
		}

		rows, err := monthlyRows(year)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "ไม่สามารถสร้างรายงานได้")
		}

		return c.JSON(fiber.Map{
			"year":   year,
			"months": rows,
		})
	}
}
