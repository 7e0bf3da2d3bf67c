package main

import (
	"log"
	"strings"

	"recycling-backend/internal/auth"
	"recycling-backend/internal/bags"
	"recycling-backend/internal/config"
	"recycling-backend/internal/database"
	"recycling-backend/internal/lots"
	"recycling-backend/internal/models"
	"recycling-backend/internal/reports"
	"recycling-backend/internal/trips"
	"recycling-backend/internal/users"
	"recycling-backend/internal/vehicles"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

func main() {
	cfg := config.Load()
	database.Init(cfg)

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			if e, ok := err.(*fiber.Error); ok {
				return c.Status(e.Code).JSON(fiber.Map{
					"error": e.Message,
				})
			}
			log.Println("Unexpected error:", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "เกิดข้อผิดพลาดในระบบ กรุณาลองใหม่อีกครั้ง",
			})
		},
	})

	corsOrigins := strings.Split(cfg.CORSOrigins, ",")
	for i := range corsOrigins {
		corsOrigins[i] = strings.TrimSpace(corsOrigins[i])
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: strings.Join(corsOrigins, ","),
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET,POST,PATCH,DELETE,OPTIONS",
	}))

	api := app.Group("/api")

	// Public auth
	api.Post("/auth/register-admin", auth.RegisterAdminHandler(cfg))
	api.Post("/auth/login", auth.LoginHandler(cfg))

	// Protected
	protected := api.Group("")
	protected.Use(auth.JWTMiddleware(cfg))

	protected.Get("/auth/me", auth.MeHandler())

	// เที่ยว
	protected.Get("/trips", trips.ListTripsHandler())
	protected.Post("/trips", trips.CreateTripHandler())
	protected.Get("/trips/:id", trips.GetTripHandler())
	protected.Patch("/trips/:id", trips.UpdateTripHandler())
	protected.Post("/trips/:id/advance", trips.AdvanceTripHandler())

	// เป้
	protected.Get("/bags", bags.ListBagsHandler())
	protected.Post("/bags", bags.CreateBagHandler())
	protected.Get("/bags/:id", bags.GetBagHandler())
	protected.Patch("/bags/:id", bags.UpdateBagHandler())
	protected.Delete("/bags/:id", bags.DeleteBagHandler())
	protected.Post("/bags/:id/advance", bags.AdvanceBagHandler())
	protected.Post("/bags/:id/split", bags.SplitBagHandler())
	protected.Get("/bags/:id/history", bags.ListBagHistoryHandler())

	// ล็อตวัสดุ
	protected.Get("/lots", lots.ListLotsHandler())
	protected.Post("/lots", lots.CreateLotHandler())
	protected.Get("/lots/:id", lots.GetLotHandler())
	protected.Patch("/lots/:id", lots.UpdateLotHandler())
	protected.Post("/lots/:id/photos", lots.UploadLotPhotoHandler(cfg))

	// ทะเบียนรถ
	protected.Get("/vehicles", vehicles.ListVehiclesHandler())
	protected.Post("/vehicles", vehicles.CreateVehicleHandler())
	protected.Patch("/vehicles/:id", vehicles.UpdateVehicleHandler())
	protected.Delete("/vehicles/:id", vehicles.DeleteVehicleHandler())

	// รายงาน
	protected.Get("/reports/summary", reports.SummaryHandler())
	protected.Get("/reports/monthly", reports.MonthlyReportHandler())
	protected.Get("/reports/monthly/export", reports.ExportMonthlyReportHandler())

	// จัดการผู้ใช้ (admin เท่านั้น)
	adminRoutes := protected.Group("/users")
	adminRoutes.Use(auth.RequireRole(models.RoleAdmin))
	adminRoutes.Get("/", users.ListUsersHandler())
	adminRoutes.Post("/", users.CreateUserHandler())
	adminRoutes.Patch("/:id", users.UpdateUserHandler())
	adminRoutes.Delete("/:id", users.DeactivateUserHandler())

	log.Println("Server กำลังทำงานที่ port:", cfg.HTTPPort)
	if err := app.Listen(":" + cfg.HTTPPort); err != nil {
		log.Fatal(err)
	}
}
