package vehicles

import (
	"strings"

	"recycling-backend/internal/database"
	"recycling-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

type VehicleResponse struct {
	ID        uint   `json:"id"`
	Plate     string `json:"plate"`
	Driver    string `json:"driver"`
	Status    models.VehicleStatus `json:"status"`
	CreatedAt string               `json:"created_at"`
}

type CreateVehicleRequest struct {
	Plate  string `json:"plate"`
	Driver string `json:"driver"`
}

type UpdateVehicleRequest struct {
	Plate  *string               `json:"plate"`
	Driver *string               `json:"driver"`
	Status *models.VehicleStatus `json:"status"`
}

func toVehicleResponse(v *models.Vehicle) VehicleResponse {
	return VehicleResponse{
		ID:        v.ID,
		Plate:     v.Plate,
		Driver:    v.Driver,
		Status:    v.Status,
		CreatedAt: v.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}

func isValidVehicleStatus(s models.VehicleStatus) bool {
	switch s {
	case models.VehicleStatusAvailable, models.VehicleStatusInUse, models.VehicleStatusMaintenance:
		return true
	}
	return false
}

// POST /api/vehicles
func CreateVehicleHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateVehicleRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "ข้อมูลที่ส่งมาไม่ถูกต้อง")
		}

		body.Plate = strings.TrimSpace(body.Plate)
		body.Driver = strings.TrimSpace(body.Driver)

		if body.Plate == "" || body.Driver == "" {
			return fiber.NewError(fiber.StatusBadRequest, "กรุณากรอกทะเบียนรถและชื่อคนขับ")
		}

		// ทะเบียนซ้ำไม่ได้
		var exist models.Vehicle
		if err := database.DB.Where("plate = ?", body.Plate).First(&exist).Error; err == nil {
			return fiber.NewError(fiber.StatusBadRequest, "ทะเบียนรถนี้มีอยู่แล้ว")
		}

		vehicle := models.Vehicle{
			Plate:  body.Plate,
			Driver: body.Driver,
			Status: models.VehicleStatusAvailable,
		}

		if err := database.DB.Create(&vehicle).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "ไม่สามารถเพิ่มรถได้")
		}

		return c.Status(fiber.StatusCreated).JSON(toVehicleResponse(&vehicle))
	}
}

// GET /api/vehicles
func ListVehiclesHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var vehicleList []models.Vehicle
		if err := database.DB.Order("plate ASC").Find(&vehicleList).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "ไม่สามารถดึงข้อมูลรถได้")
		}

		resp := make([]VehicleResponse, 0, len(vehicleList))
		for i := range vehicleList {
			resp = append(resp, toVehicleResponse(&vehicleList[i]))
		}

		return c.JSON(resp)
	}
}

// PATCH /api/vehicles/:id
func UpdateVehicleHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var vehicle models.Vehicle
		if err := database.DB.First(&vehicle, "id = ?", id).Error; err != nil {
			if database.IsNotFound(err) {
				return fiber.NewError(fiber.StatusNotFound, "ไม่พบข้อมูลรถ")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "ไม่สามารถดึงข้อมูลรถได้")
		}

		var body UpdateVehicleRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "ข้อมูลที่ส่งมาไม่ถูกต้อง")
		}

		if body.Plate != nil {
			plate := strings.TrimSpace(*body.Plate)
			if plate == "" {
				return fiber.NewError(fiber.StatusBadRequest, "ทะเบียนรถต้องไม่ว่าง")
			}
			var exist models.Vehicle
			if err := database.DB.Where("plate = ? AND id <> ?", plate, vehicle.ID).First(&exist).Error; err == nil {
				return fiber.NewError(fiber.StatusBadRequest, "ทะเบียนรถนี้มีอยู่แล้ว")
			}
			vehicle.Plate = plate
		}
		if body.Driver != nil {
			vehicle.Driver = strings.TrimSpace(*body.Driver)
		}
		if body.Status != nil {
			if !isValidVehicleStatus(*body.Status) {
				return fiber.NewError(fiber.StatusBadRequest, "สถานะไม่ถูกต้อง")
			}
			vehicle.Status = *body.Status
		}

		if err := database.DB.Save(&vehicle).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "ไม่สามารถอัพเดทข้อมูลรถได้")
		}

		return c.JSON(toVehicleResponse(&vehicle))
	}
}

// DELETE /api/vehicles/:id
func DeleteVehicleHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var vehicle models.Vehicle
		if err := database.DB.First(&vehicle, "id = ?", id).Error; err != nil {
			if database.IsNotFound(err) {
				return fiber.NewError(fiber.StatusNotFound, "ไม่พบข้อมูลรถ")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "ไม่สามารถดึงข้อมูลรถได้")
		}

		// รถที่กำลังวิ่งเที่ยวอยู่ลบไม่ได้
		if vehicle.Status == models.VehicleStatusInUse {
			return fiber.NewError(fiber.StatusBadRequest, "รถคันนี้กำลังใช้งานอยู่ ไม่สามารถลบได้")
		}

		if err := database.DB.Delete(&vehicle).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "ไม่สามารถลบรถได้")
		}

		return c.SendStatus(fiber.StatusNoContent)
	}
}
