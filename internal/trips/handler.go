package trips

import (
	"strings"
	"time"

	"recycling-backend/internal/database"
	"recycling-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

// body ตอนสร้างใช้ key แบบ camelCase ตามที่หน้าบ้านส่งมา ส่วน response เป็น snake_case
type CreateTripRequest struct {
	VehicleID       string `json:"vehicleId"`
	CustomerFactory string `json:"customerFactory"`
}

type UpdateTripRequest struct {
	VehicleID       *string            `json:"vehicle_id"`
	CustomerFactory *string            `json:"customer_factory"`
	DepartureTime   *time.Time         `json:"departure_time"`
	ArrivalTime     *time.Time         `json:"arrival_time"`
	ReturnTime      *time.Time         `json:"return_time"`
	InitialWeight   *float64           `json:"initial_weight"`
	FinalWeight     *float64           `json:"final_weight"`
	Status          *models.TripStatus `json:"status"`
}

type TripBagResponse struct {
	ID         uint    `json:"id"`
	BagCode    string  `json:"bag_code"`
	Weight     float64 `json:"weight"`
	Material   *string `json:"material"`
	SortStatus string  `json:"sort_status"`
	CreatedAt  string  `json:"created_at"`
}

type TripResponse struct {
	ID               uint              `json:"id"`
	VehicleID        string            `json:"vehicle_id"`
	CustomerFactory  string            `json:"customer_factory"`
	DepartureTime    string            `json:"departure_time"`
	ArrivalTime      *string           `json:"arrival_time"`
	ReturnTime       *string           `json:"return_time"`
	InitialWeight    float64           `json:"initial_weight"`
	FinalWeight      float64           `json:"final_weight"`
	WeightDifference float64           `json:"weight_difference"`
	Status           models.TripStatus `json:"status"`
	Bags             []TripBagResponse `json:"bags"`
	CreatedAt        string            `json:"created_at"`
	UpdatedAt        string            `json:"updated_at"`
}

func toTripResponse(t *models.Trip) TripResponse {
	bags := make([]TripBagResponse, 0, len(t.Bags))
	for _, b := range t.Bags {
		bags = append(bags, TripBagResponse{
			ID:         b.ID,
			BagCode:    b.BagCode,
			Weight:     b.Weight,
			Material:   b.Material,
			SortStatus: string(b.SortStatus),
			CreatedAt:  b.CreatedAt.Format("2006-01-02 15:04:05"),
		})
	}

	resp := TripResponse{
		ID:               t.ID,
		VehicleID:        t.VehicleID,
		CustomerFactory:  t.CustomerFactory,
		DepartureTime:    t.DepartureTime.Format("2006-01-02 15:04:05"),
		InitialWeight:    t.InitialWeight,
		FinalWeight:      t.FinalWeight,
		WeightDifference: t.WeightDifference,
		Status:           t.Status,
		Bags:             bags,
		CreatedAt:        t.CreatedAt.Format("2006-01-02 15:04:05"),
		UpdatedAt:        t.UpdatedAt.Format("2006-01-02 15:04:05"),
	}
	if t.ArrivalTime != nil {
		s := t.ArrivalTime.Format("2006-01-02 15:04:05")
		resp.ArrivalTime = &s
	}
	if t.ReturnTime != nil {
		s := t.ReturnTime.Format("2006-01-02 15:04:05")
		resp.ReturnTime = &s
	}
	return resp
}

// POST /api/trips
// สร้างเที่ยวใหม่ เริ่มที่ PENDING น้ำหนักทุกค่าเป็นศูนย์
func CreateTripHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateTripRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "ข้อมูลที่ส่งมาไม่ถูกต้อง")
		}

		body.VehicleID = strings.TrimSpace(body.VehicleID)
		body.CustomerFactory = strings.TrimSpace(body.CustomerFactory)

		if body.VehicleID == "" || body.CustomerFactory == "" {
			return fiber.NewError(fiber.StatusBadRequest, "กรุณาเลือกรถและกรอกชื่อโรงงานลูกค้า")
		}

		trip := models.Trip{
			VehicleID:       body.VehicleID,
			CustomerFactory: body.CustomerFactory,
			DepartureTime:   time.Now(),
			Status:          models.TripStatusPending,
		}

		if err := database.DB.Create(&trip).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "ไม่สามารถสร้างเที่ยวได้")
		}

		// จองรถคันที่เลือกไว้ ถ้าทะเบียนไม่อยู่ในทะเบียนรถก็ข้ามไป
		_ = database.DB.Model(&models.Vehicle{}).
			Where("plate = ?", trip.VehicleID).
			Update("status", models.VehicleStatusInUse).Error

		return c.Status(fiber.StatusCreated).JSON(toTripResponse(&trip))
	}
}

// GET /api/trips
// เที่ยวทั้งหมดพร้อมเป้ เรียงจากที่สร้างล่าสุด
func ListTripsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var tripList []models.Trip
		if err := database.DB.
			Preload("Bags").
			Order("created_at DESC").
			Find(&tripList).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "ไม่สามารถดึงข้อมูลเที่ยวได้")
		}

		resp := make([]TripResponse, 0, len(tripList))
		for i := range tripList {
			resp = append(resp, toTripResponse(&tripList[i]))
		}

		return c.JSON(resp)
	}
}

// GET /api/trips/:id
func GetTripHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var trip models.Trip
		if err := database.DB.Preload("Bags").First(&trip, "id = ?", id).Error; err != nil {
			if database.IsNotFound(err) {
				return fiber.NewError(fiber.StatusNotFound, "ไม่พบข้อมูลเที่ยว")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "ไม่สามารถดึงข้อมูลเที่ยวได้")
		}

		return c.JSON(toTripResponse(&trip))
	}
}

// PATCH /api/trips/:id
// อัพเดทข้อมูลเที่ยวแบบ partial ส่งมาเฉพาะ field ที่แก้
// สถานะที่ส่งมาตรง ๆ จะถูกบันทึกตามนั้น ไม่บังคับว่าต้องเดินทีละขั้น
// (หน้าจอเป็นคนคุมลำดับอยู่แล้ว ถ้าจะเดินทีละขั้นให้ใช้ /advance)
func UpdateTripHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var trip models.Trip
		if err := database.DB.First(&trip, "id = ?", id).Error; err != nil {
			if database.IsNotFound(err) {
				return fiber.NewError(fiber.StatusNotFound, "ไม่พบข้อมูลเที่ยว")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "ไม่สามารถดึงข้อมูลเที่ยวได้")
		}

		var body UpdateTripRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "ข้อมูลที่ส่งมาไม่ถูกต้อง")
		}

		if body.InitialWeight != nil && *body.InitialWeight < 0 {
			return fiber.NewError(fiber.StatusBadRequest, "น้ำหนักต้องไม่ติดลบ")
		}
		if body.FinalWeight != nil && *body.FinalWeight < 0 {
			return fiber.NewError(fiber.StatusBadRequest, "น้ำหนักต้องไม่ติดลบ")
		}
		if body.Status != nil && !isValidTripStatus(*body.Status) {
			return fiber.NewError(fiber.StatusBadRequest, "สถานะไม่ถูกต้อง")
		}

		// คำนวณส่วนต่างน้ำหนักก่อน แล้วค่อย merge field อื่น
		diff := resolveWeightDifference(body.InitialWeight, body.FinalWeight, trip.InitialWeight, trip.FinalWeight)

		if body.VehicleID != nil {
			v := strings.TrimSpace(*body.VehicleID)
			if v == "" {
				return fiber.NewError(fiber.StatusBadRequest, "ทะเบียนรถต้องไม่ว่าง")
			}
			trip.VehicleID = v
		}
		if body.CustomerFactory != nil {
			trip.CustomerFactory = strings.TrimSpace(*body.CustomerFactory)
		}
		if body.DepartureTime != nil {
			trip.DepartureTime = *body.DepartureTime
		}
		if body.ArrivalTime != nil {
			trip.ArrivalTime = body.ArrivalTime
		}
		if body.ReturnTime != nil {
			trip.ReturnTime = body.ReturnTime
		}
		if body.InitialWeight != nil {
			trip.InitialWeight = *body.InitialWeight
		}
		if body.FinalWeight != nil {
			trip.FinalWeight = *body.FinalWeight
		}
		if diff != nil {
			trip.WeightDifference = *diff
		}
		if body.Status != nil {
			trip.Status = *body.Status
		}

		if err := database.DB.Save(&trip).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "ไม่สามารถอัพเดทข้อมูลเที่ยวได้")
		}

		if trip.Status == models.TripStatusCompleted {
			releaseVehicle(trip.VehicleID)
		}

		return c.JSON(toTripResponse(&trip))
	}
}

// POST /api/trips/:id/advance
// เดินสถานะไปขั้นถัดไปหนึ่งขั้น ปุ่ม "ถัดไป" ของ wizard เรียกตัวนี้
func AdvanceTripHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var trip models.Trip
		if err := database.DB.First(&trip, "id = ?", id).Error; err != nil {
			if database.IsNotFound(err) {
				return fiber.NewError(fiber.StatusNotFound, "ไม่พบข้อมูลเที่ยว")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "ไม่สามารถดึงข้อมูลเที่ยวได้")
		}

		next, ok := nextTripStatus(trip.Status)
		if !ok {
			return fiber.NewError(fiber.StatusBadRequest, "เที่ยวนี้เสร็จสิ้นแล้ว")
		}

		now := time.Now()
		trip.Status = next

		// บันทึกเวลาตามขั้นที่ไปถึง
		switch next {
		case models.TripStatusTraveling:
			trip.DepartureTime = now
		case models.TripStatusArrived:
			trip.ArrivalTime = &now
		case models.TripStatusCompleted:
			trip.ReturnTime = &now
		}

		if err := database.DB.Save(&trip).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "ไม่สามารถอัพเดทข้อมูลเที่ยวได้")
		}

		if trip.Status == models.TripStatusCompleted {
			releaseVehicle(trip.VehicleID)
		}

		return c.JSON(toTripResponse(&trip))
	}
}

// คืนสถานะรถเป็นพร้อมใช้งานเมื่อเที่ยวจบ
func releaseVehicle(plate string) {
	_ = database.DB.Model(&models.Vehicle{}).
		Where("plate = ? AND status = ?", plate, models.VehicleStatusInUse).
		Update("status", models.VehicleStatusAvailable).Error
}
