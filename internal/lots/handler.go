package lots

import (
	"strings"
	"time"

	"recycling-backend/internal/database"
	"recycling-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type LotMaterialRequest struct {
	MaterialType        string   `json:"material_type"`
	EstimatedPercentage float64  `json:"estimated_percentage"`
	EstimatedWeight     float64  `json:"estimated_weight"`
	ActualWeight        *float64 `json:"actual_weight"`
	Quality             models.MaterialQuality `json:"quality"`
	Notes               string                 `json:"notes"`
}

type CreateLotRequest struct {
	TripID         uint                 `json:"trip_id"`
	ClientLocation string               `json:"client_location"`
	Notes          string               `json:"notes"`
	Materials      []LotMaterialRequest `json:"materials"`
}

type UpdateLotRequest struct {
	WeightAtClient  *float64          `json:"weight_at_client"`
	WeightAtCompany *float64          `json:"weight_at_company"`
	Status          *models.LotStatus `json:"status"`
	Notes           *string           `json:"notes"`
}

type LotMaterialResponse struct {
	ID                  uint     `json:"id"`
	MaterialType        string   `json:"material_type"`
	EstimatedPercentage float64  `json:"estimated_percentage"`
	EstimatedWeight     float64  `json:"estimated_weight"`
	ActualWeight        *float64 `json:"actual_weight"`
	Quality             models.MaterialQuality `json:"quality"`
	Notes               string                 `json:"notes"`
}

type LotPhotoResponse struct {
	ID        uint   `json:"id"`
	Side      string `json:"side"`
	FileName  string `json:"file_name"`
	CreatedAt string `json:"created_at"`
}

type LotResponse struct {
	ID               uint    `json:"id"`
	LotNumber        string  `json:"lot_number"`
	TripID           uint    `json:"trip_id"`
	ClientName       string  `json:"client_name"`
	ClientLocation   string  `json:"client_location"`
	OriginalWeight   float64 `json:"original_weight"`
	CurrentWeight    float64 `json:"current_weight"`
	WeightAtClient   float64 `json:"weight_at_client"`
	WeightAtCompany  float64 `json:"weight_at_company"`
	WeightDifference float64 `json:"weight_difference"`
	Status           models.LotStatus      `json:"status"`
	Notes            string                `json:"notes"`
	Materials        []LotMaterialResponse `json:"materials"`
	Photos           []LotPhotoResponse    `json:"photos"`
	CreatedAt        string                `json:"created_at"`
	UpdatedAt        string                `json:"updated_at"`
}

func toLotResponse(l *models.MaterialLot) LotResponse {
	materials := make([]LotMaterialResponse, 0, len(l.Materials))
	for _, m := range l.Materials {
		materials = append(materials, LotMaterialResponse{
			ID:                  m.ID,
			MaterialType:        m.MaterialType,
			EstimatedPercentage: m.EstimatedPercentage,
			EstimatedWeight:     m.EstimatedWeight,
			ActualWeight:        m.ActualWeight,
			Quality:             m.Quality,
			Notes:               m.Notes,
		})
	}
	photos := make([]LotPhotoResponse, 0, len(l.Photos))
	for _, p := range l.Photos {
		photos = append(photos, LotPhotoResponse{
			ID:        p.ID,
			Side:      p.Side,
			FileName:  p.FileName,
			CreatedAt: p.CreatedAt.Format("2006-01-02 15:04:05"),
		})
	}

	return LotResponse{
		ID:               l.ID,
		LotNumber:        l.LotNumber,
		TripID:           l.TripID,
		ClientName:       l.ClientName,
		ClientLocation:   l.ClientLocation,
		OriginalWeight:   l.OriginalWeight,
		CurrentWeight:    l.CurrentWeight,
		WeightAtClient:   l.WeightAtClient,
		WeightAtCompany:  l.WeightAtCompany,
		WeightDifference: l.WeightDifference,
		Status:           l.Status,
		Notes:            l.Notes,
		Materials:        materials,
		Photos:           photos,
		CreatedAt:        l.CreatedAt.Format("2006-01-02 15:04:05"),
		UpdatedAt:        l.UpdatedAt.Format("2006-01-02 15:04:05"),
	}
}

func isValidLotStatus(s models.LotStatus) bool {
	switch s {
	case models.LotStatusPending, models.LotStatusProcessing, models.LotStatusCompleted, models.LotStatusShipped:
		return true
	}
	return false
}

func isValidQuality(q models.MaterialQuality) bool {
	switch q {
	case models.QualityExcellent, models.QualityGood, models.QualityFair, models.QualityPoor, "":
		return true
	}
	return false
}

// POST /api/lots
// เปิดล็อตจากเที่ยวหนึ่งเที่ยว ดึงชื่อลูกค้ากับน้ำหนักชั่งมาจากเที่ยวเลย
func CreateLotHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateLotRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "ข้อมูลที่ส่งมาไม่ถูกต้อง")
		}

		var trip models.Trip
		if err := database.DB.First(&trip, "id = ?", body.TripID).Error; err != nil {
			if database.IsNotFound(err) {
				return fiber.NewError(fiber.StatusNotFound, "ไม่พบข้อมูลเที่ยว")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "ไม่สามารถดึงข้อมูลเที่ยวได้")
		}

		materials := make([]models.LotMaterial, 0, len(body.Materials))
		for _, m := range body.Materials {
			if strings.TrimSpace(m.MaterialType) == "" {
				return fiber.NewError(fiber.StatusBadRequest, "กรุณาระบุชนิดวัสดุทุกรายการ")
			}
			if !isValidQuality(m.Quality) {
				return fiber.NewError(fiber.StatusBadRequest, "ระดับคุณภาพวัสดุไม่ถูกต้อง")
			}
			materials = append(materials, models.LotMaterial{
				MaterialType:        strings.TrimSpace(m.MaterialType),
				EstimatedPercentage: m.EstimatedPercentage,
				EstimatedWeight:     m.EstimatedWeight,
				ActualWeight:        m.ActualWeight,
				Quality:             m.Quality,
				Notes:               m.Notes,
			})
		}

		var lot models.MaterialLot
		err := database.DB.Transaction(func(tx *gorm.DB) error {
			seq, err := database.NextSequence(tx, "lot")
			if err != nil {
				return err
			}

			lot = models.MaterialLot{
				LotNumber:        formatLotNumber(seq, time.Now().Year()),
				TripID:           trip.ID,
				ClientName:       trip.CustomerFactory,
				ClientLocation:   strings.TrimSpace(body.ClientLocation),
				OriginalWeight:   trip.InitialWeight,
				CurrentWeight:    trip.FinalWeight,
				WeightAtClient:   trip.InitialWeight,
				WeightAtCompany:  trip.FinalWeight,
				WeightDifference: trip.WeightDifference,
				Status:           models.LotStatusPending,
				Notes:            body.Notes,
				Materials:        materials,
			}

			return tx.Create(&lot).Error
		})
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "ไม่สามารถเปิดล็อตได้")
		}

		return c.Status(fiber.StatusCreated).JSON(toLotResponse(&lot))
	}
}

// GET /api/lots
func ListLotsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var lotList []models.MaterialLot
		if err := database.DB.
			Preload("Materials").
			Order("created_at DESC").
			Find(&lotList).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "ไม่สามารถดึงข้อมูลล็อตได้")
		}

		resp := make([]LotResponse, 0, len(lotList))
		for i := range lotList {
			resp = append(resp, toLotResponse(&lotList[i]))
		}

		return c.JSON(resp)
	}
}

// GET /api/lots/:id
func GetLotHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var lot models.MaterialLot
		if err := database.DB.
			Preload("Materials").
			Preload("Photos").
			First(&lot, "id = ?", id).Error; err != nil {
			if database.IsNotFound(err) {
				return fiber.NewError(fiber.StatusNotFound, "ไม่พบข้อมูลล็อต")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "ไม่สามารถดึงข้อมูลล็อตได้")
		}

		return c.JSON(toLotResponse(&lot))
	}
}

// PATCH /api/lots/:id
// น้ำหนักชั่งสองฝั่งแก้ได้ทีละค่า ส่วนต่างคำนวณใหม่แบบเดียวกับเที่ยว
func UpdateLotHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var lot models.MaterialLot
		if err := database.DB.Preload("Materials").First(&lot, "id = ?", id).Error; err != nil {
			if database.IsNotFound(err) {
				return fiber.NewError(fiber.StatusNotFound, "ไม่พบข้อมูลล็อต")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "ไม่สามารถดึงข้อมูลล็อตได้")
		}

		var body UpdateLotRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "ข้อมูลที่ส่งมาไม่ถูกต้อง")
		}

		if body.WeightAtClient != nil {
			if *body.WeightAtClient < 0 {
				return fiber.NewError(fiber.StatusBadRequest, "น้ำหนักต้องไม่ติดลบ")
			}
			lot.WeightAtClient = *body.WeightAtClient
		}
		if body.WeightAtCompany != nil {
			if *body.WeightAtCompany < 0 {
				return fiber.NewError(fiber.StatusBadRequest, "น้ำหนักต้องไม่ติดลบ")
			}
			lot.WeightAtCompany = *body.WeightAtCompany
			lot.CurrentWeight = *body.WeightAtCompany
		}
		if body.WeightAtClient != nil || body.WeightAtCompany != nil {
			lot.WeightDifference = lot.WeightAtCompany - lot.WeightAtClient
		}
		if body.Status != nil {
			if !isValidLotStatus(*body.Status) {
				return fiber.NewError(fiber.StatusBadRequest, "สถานะไม่ถูกต้อง")
			}
			lot.Status = *body.Status
		}
		if body.Notes != nil {
			lot.Notes = *body.Notes
		}

		if err := database.DB.Save(&lot).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "ไม่สามารถอัพเดทข้อมูลล็อตได้")
		}

		return c.JSON(toLotResponse(&lot))
	}
}
