// Package httpapi 以 fiber 提供點數、商店與優惠券的 JSON API
package httpapi

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"

	couponapp "github.com/jackyeh168/classpoints/src/internal/application/coupon"
	pointsapp "github.com/jackyeh168/classpoints/src/internal/application/points"
	shopapp "github.com/jackyeh168/classpoints/src/internal/application/shop"
	studentapp "github.com/jackyeh168/classpoints/src/internal/application/student"
)

// UseCases HTTP 層依賴的所有 Use Case
type UseCases struct {
	RegisterStudent *studentapp.RegisterStudentUseCase
	ListStudents    *studentapp.ListStudentsUseCase

	AdjustPoints *pointsapp.AdjustPointsUseCase
	AwardPoints  *pointsapp.AwardPointsUseCase
	GetBalance   *pointsapp.GetBalanceUseCase
	ListHistory  *pointsapp.ListHistoryUseCase
	VerifyLedger *pointsapp.VerifyLedgerUseCase
	ClassSummary *pointsapp.ClassSummaryUseCase

	Catalog  *shopapp.CatalogUseCase
	Purchase *shopapp.PurchaseUseCase

	RequestUse         *couponapp.RequestUseUseCase
	Approve            *couponapp.ApproveUseCase
	ListCoupons        *couponapp.ListCouponsUseCase
	ListStudentCoupons *couponapp.ListStudentCouponsUseCase
}

// NewApp 建立 fiber app 並註冊所有路由
func NewApp(uc UseCases, logger *slog.Logger) *fiber.App {
	logger = logger.With("component", "http")

	app := fiber.New(fiber.Config{
		AppName:               "classpoints",
		DisableStartupMessage: true,
		ErrorHandler:          newErrorHandler(logger),
	})

	app.Use(requestid.New(requestid.Config{
		Generator:  uuid.NewString,
		ContextKey: requestIDKey,
	}))
	app.Use(requestLogger(logger))
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})

	h := &handlers{uc: uc}
	api := app.Group("/api")

	students := api.Group("/students")
	students.Post("/", h.registerStudent)
	students.Get("/", h.listStudents)
	students.Get("/:id/balance", h.getBalance)
	students.Get("/:id/history", h.listHistory)
	students.Get("/:id/ledger-audit", h.verifyLedger)
	students.Get("/:id/coupons", h.listStudentCoupons)
	students.Post("/:id/points/adjust", h.adjustPoints)
	students.Post("/:id/points/award", h.awardPoints)

	api.Get("/summary", h.classSummary)

	items := api.Group("/items")
	items.Post("/", h.createItem)
	items.Get("/", h.listItems)
	items.Put("/:id", h.updateItem)
	items.Put("/:id/active", h.setItemActive)

	api.Post("/purchases", h.purchase)

	coupons := api.Group("/coupons")
	coupons.Get("/", h.listCoupons)
	coupons.Post("/:id/request-use", h.requestUse)
	coupons.Post("/:id/approve", h.approve)

	return app
}
