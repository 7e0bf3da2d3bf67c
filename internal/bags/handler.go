package bags

import (
	"fmt"

	"recycling-backend/internal/auth"
	"recycling-backend/internal/database"
	"recycling-backend/internal/history"
	"recycling-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// body ตอนสร้างใช้ key แบบ camelCase ตามที่หน้าบ้านส่งมา
type CreateBagRequest struct {
	Weight   float64 `json:"weight"`
	Material *string `json:"material"`
	TripID   uint    `json:"tripId"`
}

type UpdateBagRequest struct {
	Weight   *float64 `json:"weight"`
	Material *string  `json:"material"`
	Notes    *string  `json:"notes"`
}

type SplitBagRequest struct {
	Entries []SplitEntry `json:"entries"`
}

type BagHistoryResponse struct {
	ID        uint   `json:"id"`
	Action    string `json:"action"`
	Details   string `json:"details"`
	UserName  string `json:"user_name"`
	CreatedAt string `json:"created_at"`
}

type BagResponse struct {
	ID             uint    `json:"id"`
	BagCode        string  `json:"bag_code"`
	Weight         float64 `json:"weight"`
	OriginalWeight float64 `json:"original_weight"`
	Material       *string `json:"material"`
	SortStatus     models.BagSortStatus `json:"sort_status"`
	TripID         uint                 `json:"trip_id"`
	ParentBagID    *uint                `json:"parent_bag_id"`
	Notes          string               `json:"notes"`
	Children       []BagResponse        `json:"children,omitempty"`
	History        []BagHistoryResponse `json:"history,omitempty"`
	CreatedAt      string               `json:"created_at"`
	UpdatedAt      string               `json:"updated_at"`
}

func toBagResponse(b *models.Bag) BagResponse {
	resp := BagResponse{
		ID:             b.ID,
		BagCode:        b.BagCode,
		Weight:         b.Weight,
		OriginalWeight: b.OriginalWeight,
		Material:       b.Material,
		SortStatus:     b.SortStatus,
		TripID:         b.TripID,
		ParentBagID:    b.ParentBagID,
		Notes:          b.Notes,
		CreatedAt:      b.CreatedAt.Format("2006-01-02 15:04:05"),
		UpdatedAt:      b.UpdatedAt.Format("2006-01-02 15:04:05"),
	}
	for i := range b.Children {
		resp.Children = append(resp.Children, toBagResponse(&b.Children[i]))
	}
	for _, h := range b.History {
		resp.History = append(resp.History, BagHistoryResponse{
			ID:        h.ID,
			Action:    h.Action,
			Details:   h.Details,
			UserName:  h.UserName,
			CreatedAt: h.CreatedAt.Format("2006-01-02 15:04:05"),
		})
	}
	return resp
}

// POST /api/bags
// เพิ่มเป้เข้าเที่ยว รหัสเป้ออกจากตัวนับกลางภายในทรานแซคชันเดียวกัน
func CreateBagHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateBagRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "ข้อมูลที่ส่งมาไม่ถูกต้อง")
		}

		if body.Weight < 0 {
			return fiber.NewError(fiber.StatusBadRequest, "น้ำหนักต้องไม่ติดลบ")
		}

		var trip models.Trip
		if err := database.DB.First(&trip, "id = ?", body.TripID).Error; err != nil {
			if database.IsNotFound(err) {
				return fiber.NewError(fiber.StatusNotFound, "ไม่พบข้อมูลเที่ยว")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "ไม่สามารถดึงข้อมูลเที่ยวได้")
		}

		userID, userName := auth.CurrentUser(c)

		var bag models.Bag
		err := database.DB.Transaction(func(tx *gorm.DB) error {
			seq, err := database.NextSequence(tx, "bag")
			if err != nil {
				return err
			}

			bag = models.Bag{
				BagCode:        formatBagCode(seq),
				Weight:         body.Weight,
				OriginalWeight: body.Weight,
				Material:       body.Material,
				SortStatus:     models.BagStatusPreparing,
				TripID:         trip.ID,
			}
			if err := tx.Create(&bag).Error; err != nil {
				return err
			}

			return history.Record(tx, history.Entry{
				BagID:    bag.ID,
				Action:   "สร้างเป้",
				Details:  fmt.Sprintf("สร้างเป้จากเที่ยวที่ %d", trip.ID),
				UserID:   userID,
				UserName: userName,
			})
		})
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "ไม่สามารถสร้างเป้ได้")
		}

		return c.Status(fiber.StatusCreated).JSON(toBagResponse(&bag))
	}
}

// GET /api/bags
func ListBagsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var bagList []models.Bag
		if err := database.DB.Order("created_at DESC").Find(&bagList).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "ไม่สามารถดึงข้อมูลเป้ได้")
		}

		resp := make([]BagResponse, 0, len(bagList))
		for i := range bagList {
			resp = append(resp, toBagResponse(&bagList[i]))
		}

		return c.JSON(resp)
	}
}

// GET /api/bags/:id
// รายละเอียดเป้พร้อมเป้ลูกและประวัติ
func GetBagHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var bag models.Bag
		if err := database.DB.
			Preload("Children").
			Preload("History", func(db *gorm.DB) *gorm.DB {
				return db.Order("created_at ASC")
			}).
			First(&bag, "id = ?", id).Error; err != nil {
			if database.IsNotFound(err) {
				return fiber.NewError(fiber.StatusNotFound, "ไม่พบข้อมูลเป้")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "ไม่สามารถดึงข้อมูลเป้ได้")
		}

		return c.JSON(toBagResponse(&bag))
	}
}

// PATCH /api/bags/:id
func UpdateBagHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var bag models.Bag
		if err := database.DB.First(&bag, "id = ?", id).Error; err != nil {
			if database.IsNotFound(err) {
				return fiber.NewError(fiber.StatusNotFound, "ไม่พบข้อมูลเป้")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "ไม่สามารถดึงข้อมูลเป้ได้")
		}

		var body UpdateBagRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "ข้อมูลที่ส่งมาไม่ถูกต้อง")
		}

		if body.Weight != nil {
			if *body.Weight < 0 {
				return fiber.NewError(fiber.StatusBadRequest, "น้ำหนักต้องไม่ติดลบ")
			}
			bag.Weight = *body.Weight
		}
		if body.Material != nil {
			bag.Material = body.Material
		}
		if body.Notes != nil {
			bag.Notes = *body.Notes
		}

		userID, userName := auth.CurrentUser(c)

		err := database.DB.Transaction(func(tx *gorm.DB) error {
			if err := tx.Save(&bag).Error; err != nil {
				return err
			}
			return history.Record(tx, history.Entry{
				BagID:    bag.ID,
				Action:   "แก้ไขข้อมูลเป้",
				Details:  fmt.Sprintf("น้ำหนักปัจจุบัน %.2f กก.", bag.Weight),
				UserID:   userID,
				UserName: userName,
			})
		})
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "ไม่สามารถอัพเดทข้อมูลเป้ได้")
		}

		return c.JSON(toBagResponse(&bag))
	}
}

// DELETE /api/bags/:id
// ลบเฉพาะเป้ ไม่กระทบข้อมูลเที่ยว ประวัติของเป้ถูกลบตามด้วย FK
func DeleteBagHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var bag models.Bag
		if err := database.DB.First(&bag, "id = ?", id).Error; err != nil {
			if database.IsNotFound(err) {
				return fiber.NewError(fiber.StatusNotFound, "ไม่พบข้อมูลเป้")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "ไม่สามารถดึงข้อมูลเป้ได้")
		}

		if err := database.DB.Delete(&bag).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "ไม่สามารถลบเป้ได้")
		}

		return c.JSON(fiber.Map{
			"message": "ลบเป้เรียบร้อยแล้ว",
		})
	}
}

// POST /api/bags/:id/advance
// เดินสถานะคัดแยกไปขั้นถัดไป ย้อนกลับไม่ได้
func AdvanceBagHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var bag models.Bag
		if err := database.DB.First(&bag, "id = ?", id).Error; err != nil {
			if database.IsNotFound(err) {
				return fiber.NewError(fiber.StatusNotFound, "ไม่พบข้อมูลเป้")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "ไม่สามารถดึงข้อมูลเป้ได้")
		}

		next, ok := nextSortStatus(bag.SortStatus)
		if !ok {
			return fiber.NewError(fiber.StatusBadRequest, "เป้นี้จำหน่ายแล้ว")
		}

		var action string
		switch next {
		case models.BagStatusSorting:
			action = "เริ่มคัดแยก"
		case models.BagStatusReady:
			action = "พร้อมจำหน่าย"
		case models.BagStatusSold:
			action = "จำหน่ายแล้ว"
		}

		bag.SortStatus = next
		userID, userName := auth.CurrentUser(c)

		err := database.DB.Transaction(func(tx *gorm.DB) error {
			if err := tx.Save(&bag).Error; err != nil {
				return err
			}
			return history.Record(tx, history.Entry{
				BagID:    bag.ID,
				Action:   action,
				UserID:   userID,
				UserName: userName,
			})
		})
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "ไม่สามารถอัพเดทข้อมูลเป้ได้")
		}

		return c.JSON(toBagResponse(&bag))
	}
}

// POST /api/bags/:id/split
// แบ่งเป้แม่ออกเป็นเป้ลูกตามวัสดุที่คัดแยกได้
// ทั้งการสร้างเป้ลูก การหักน้ำหนัก และประวัติ commit พร้อมกันหรือไม่เกิดเลย
func SplitBagHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var body SplitBagRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "ข้อมูลที่ส่งมาไม่ถูกต้อง")
		}

		userID, userName := auth.CurrentUser(c)

		var parent models.Bag
		err := database.DB.Transaction(func(tx *gorm.DB) error {
			// ล็อกเป้แม่กันสองคำขอแบ่งพร้อมกันผ่านเช็คน้ำหนักทั้งคู่
			if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
				First(&parent, "id = ?", id).Error; err != nil {
				if database.IsNotFound(err) {
					return fiber.NewError(fiber.StatusNotFound, "ไม่พบข้อมูลเป้")
				}
				return err
			}

			if parent.SortStatus != models.BagStatusSorting {
				return fiber.NewError(fiber.StatusBadRequest, "แบ่งได้เฉพาะเป้ที่อยู่ระหว่างคัดแยก")
			}

			children, total, err := buildSplitChildren(&parent, body.Entries)
			if err != nil {
				return fiber.NewError(fiber.StatusBadRequest, err.Error())
			}

			for i := range children {
				if err := tx.Create(&children[i]).Error; err != nil {
					return err
				}
				if err := history.Record(tx, history.Entry{
					BagID:    children[i].ID,
					Action:   "คัดแยกจากเป้ " + parent.BagCode,
					Details:  fmt.Sprintf("%s %.2f กก.", *children[i].Material, children[i].Weight),
					UserID:   userID,
					UserName: userName,
				}); err != nil {
					return err
				}
			}

			parent.Weight -= total
			parent.SortStatus = models.BagStatusReady
			if err := tx.Save(&parent).Error; err != nil {
				return err
			}

			return history.Record(tx, history.Entry{
				BagID:    parent.ID,
				Action:   "แบ่งเป้",
				Details:  fmt.Sprintf("แบ่งออกเป็น %d เป้ลูก รวม %.2f กก.", len(children), total),
				UserID:   userID,
				UserName: userName,
			})
		})
		if err != nil {
			if e, ok := err.(*fiber.Error); ok {
				return e
			}
			return fiber.NewError(fiber.StatusInternalServerError, "ไม่สามารถแบ่งเป้ได้")
		}

		// โหลดเป้แม่กลับมาพร้อมเป้ลูกที่เพิ่งสร้าง
		if err := database.DB.Preload("Children").First(&parent, parent.ID).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "ไม่สามารถดึงข้อมูลเป้ได้")
		}

		return c.JSON(toBagResponse(&parent))
	}
}

// GET /api/bags/:id/history
func ListBagHistoryHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var bag models.Bag
		if err := database.DB.First(&bag, "id = ?", id).Error; err != nil {
			if database.IsNotFound(err) {
				return fiber.NewError(fiber.StatusNotFound, "ไม่พบข้อมูลเป้")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "ไม่สามารถดึงข้อมูลเป้ได้")
		}

		var rows []models.BagHistory
		if err := database.DB.
			Where("bag_id = ?", bag.ID).
			Order("created_at ASC").
			Find(&rows).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "ไม่สามารถดึงประวัติเป้ได้")
		}

		resp := make([]BagHistoryResponse, 0, len(rows))
		for _, h := range rows {
			resp = append(resp, BagHistoryResponse{
				ID:        h.ID,
				Action:    h.Action,
				Details:   h.Details,
				UserName:  h.UserName,
				CreatedAt: h.CreatedAt.Format("2006-01-02 15:04:05"),
			})
		}

		return c.JSON(resp)
	}
}
