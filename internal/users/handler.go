package users

import (
	"strings"

	"recycling-backend/internal/database"
	"recycling-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
)

type UserResponse struct {
	ID        uint   `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Role      models.UserRole `json:"role"`
	Active    bool            `json:"active"`
	CreatedAt string          `json:"created_at"`
}

type CreateUserRequest struct {
	Name     string          `json:"name"`
	Email    string          `json:"email"`
	Password string          `json:"password"`
	Role     models.UserRole `json:"role"`
}

type UpdateUserRequest struct {
	Name     *string          `json:"name"`
	Email    *string          `json:"email"`
	Password *string          `json:"password"`
	Role     *models.UserRole `json:"role"`
	Active   *bool            `json:"active"`
}

func toUserResponse(u *models.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role,
		Active:    u.Active,
		CreatedAt: u.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}

func isValidRole(r models.UserRole) bool {
	switch r {
	case models.RoleAdmin, models.RoleManager, models.RoleOperator:
		return true
	}
	return false
}

// POST /api/users (admin เท่านั้น)
func CreateUserHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateUserRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "ข้อมูลที่ส่งมาไม่ถูกต้อง")
		}

		body.Name = strings.TrimSpace(body.Name)
		body.Email = strings.TrimSpace(strings.ToLower(body.Email))

		if body.Name == "" || body.Email == "" || body.Password == "" {
			return fiber.NewError(fiber.StatusBadRequest, "กรุณากรอกชื่อ อีเมล และรหัสผ่าน")
		}
		if !isValidRole(body.Role) {
			return fiber.NewError(fiber.StatusBadRequest, "สิทธิ์ผู้ใช้ไม่ถูกต้อง")
		}

		var exist models.User
		if err := database.DB.Where("email = ?", body.Email).First(&exist).Error; err == nil {
			return fiber.NewError(fiber.StatusBadRequest, "อีเมลนี้ถูกใช้งานแล้ว")
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(body.Password), bcrypt.DefaultCost)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "เข้ารหัสรหัสผ่านไม่สำเร็จ")
		}

		user := models.User{
			Name:         body.Name,
			Email:        body.Email,
			PasswordHash: string(hash),
			Role:         body.Role,
			Active:       true,
		}

		if err := database.DB.Create(&user).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "ไม่สามารถสร้างผู้ใช้ได้")
		}

		return c.Status(fiber.StatusCreated).JSON(toUserResponse(&user))
	}
}

// GET /api/users (admin เท่านั้น)
func ListUsersHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var userList []models.User
		if err := database.DB.Order("created_at DESC").Find(&userList).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "ไม่สามารถดึงข้อมูลผู้ใช้ได้")
		}

		resp := make([]UserResponse, 0, len(userList))
		for i := range userList {
			resp = append(resp, toUserResponse(&userList[i]))
		}

		return c.JSON(resp)
	}
}

// PATCH /api/users/:id (admin เท่านั้น)
func UpdateUserHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var user models.User
		if err := database.DB.First(&user, "id = ?", id).Error; err != nil {
			if database.IsNotFound(err) {
				return fiber.NewError(fiber.StatusNotFound, "ไม่พบข้อมูลผู้ใช้")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "ไม่สามารถดึงข้อมูลผู้ใช้ได้")
		}

		var body UpdateUserRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "ข้อมูลที่ส่งมาไม่ถูกต้อง")
		}

		if body.Name != nil {
			name := strings.TrimSpace(*body.Name)
			if name == "" {
				return fiber.NewError(fiber.StatusBadRequest, "ชื่อต้องไม่ว่าง")
			}
			user.Name = name
		}
		if body.Email != nil {
			email := strings.TrimSpace(strings.ToLower(*body.Email))
			if email == "" {
				return fiber.NewError(fiber.StatusBadRequest, "อีเมลต้องไม่ว่าง")
			}
			var exist models.User
			if err := database.DB.Where("email = ? AND id <> ?", email, user.ID).First(&exist).Error; err == nil {
				return fiber.NewError(fiber.StatusBadRequest, "อีเมลนี้ถูกใช้งานแล้ว")
			}
			user.Email = email
		}
		if body.Password != nil && *body.Password != "" {
			hash, err := bcrypt.GenerateFromPassword([]byte(*body.Password), bcrypt.DefaultCost)
			if err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "เข้ารหัสรหัสผ่านไม่สำเร็จ")
			}
			user.PasswordHash = string(hash)
		}
		if body.Role != nil {
			if !isValidRole(*body.Role) {
				return fiber.NewError(fiber.StatusBadRequest, "สิทธิ์ผู้ใช้ไม่ถูกต้อง")
			}
			user.Role = *body.Role
		}
		if body.Active != nil {
			user.Active = *body.Active
		}

		if err := database.DB.Save(&user).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "ไม่สามารถอัพเดทข้อมูลผู้ใช้ได้")
		}

		return c.JSON(toUserResponse(&user))
	}
}

// DELETE /api/users/:id (admin เท่านั้น)
// ไม่ลบจริง แค่ระงับบัญชี ประวัติการทำรายการจะได้อ้างถึงชื่อได้อยู่
func DeactivateUserHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var user models.User
		if err := database.DB.First(&user, "id = ?", id).Error; err != nil {
			if database.IsNotFound(err) {
				return fiber.NewError(fiber.StatusNotFound, "ไม่พบข้อมูลผู้ใช้")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "ไม่สามารถดึงข้อมูลผู้ใช้ได้")
		}

		user.Active = false
		if err := database.DB.Save(&user).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "ไม่สามารถระงับบัญชีได้")
		}

		return c.JSON(fiber.Map{
			"message": "ระงับบัญชีเรียบร้อยแล้ว",
		})
	}
}
