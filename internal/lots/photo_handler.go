package lots

import (
	"os"
	"path/filepath"
	"strings"

	"recycling-backend/internal/config"
	"recycling-backend/internal/database"
	"recycling-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// POST /api/lots/:id/photos
// อัพโหลดรูปถ่ายชั่งน้ำหนัก form field: photo (ไฟล์), side ("client" หรือ "company")
// ไฟล์เก็บในเครื่องด้วยชื่อ uuid กันชื่อไฟล์จากผู้ใช้ชนกันเอง
func UploadLotPhotoHandler(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var lot models.MaterialLot
		if err := database.DB.First(&lot, "id = ?", id).Error; err != nil {
			if database.IsNotFound(err) {
				return fiber.NewError(fiber.StatusNotFound, "ไม่พบข้อมูลล็อต")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "ไม่สามารถดึงข้อมูลล็อตได้")
		}

		side := c.FormValue("side")
		if side != "client" && side != "company" {
			return fiber.NewError(fiber.StatusBadRequest, "side ต้องเป็น client หรือ company")
		}

		file, err := c.FormFile("photo")
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "กรุณาแนบไฟล์รูปถ่าย")
		}

		ext := strings.ToLower(filepath.Ext(file.Filename))
		switch ext {
		case ".jpg", ".jpeg", ".png", ".webp":
		default:
			return fiber.NewError(fiber.StatusBadRequest, "รองรับเฉพาะไฟล์ jpg, png, webp")
		}

		if err := os.MkdirAll(cfg.LotPhotoPath, 0o755); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "ไม่สามารถบันทึกรูปถ่ายได้")
		}

		fileName := uuid.NewString() + ext
		if err := c.SaveFile(file, filepath.Join(cfg.LotPhotoPath, fileName)); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "ไม่สามารถบันทึกรูปถ่ายได้")
		}

		photo := models.LotPhoto{
			LotID:    lot.ID,
			Side:     side,
			FileName: fileName,
		}
		if err := database.DB.Create(&photo).Error; err != nil {
			// แถวในฐานข้อมูลไม่เกิด ลบไฟล์ทิ้งไม่ให้ค้าง
			_ = os.Remove(filepath.Join(cfg.LotPhotoPath, fileName))
			return fiber.NewError(fiber.StatusInternalServerError, "ไม่สามารถบันทึกรูปถ่ายได้")
		}

		return c.Status(fiber.StatusCreated).JSON(LotPhotoResponse{
			ID:        photo.ID,
			Side:      photo.Side,
			FileName:  photo.FileName,
			CreatedAt: photo.CreatedAt.Format("2006-01-02 15:04:05"),
		})
	}
}
