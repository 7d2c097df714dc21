package httpapi

import (
	"github.com/gofiber/fiber/v2"

	couponapp "github.com/jackyeh168/classpoints/src/internal/application/coupon"
	pointsapp "github.com/jackyeh168/classpoints/src/internal/application/points"
	shopapp "github.com/jackyeh168/classpoints/src/internal/application/shop"
	studentapp "github.com/jackyeh168/classpoints/src/internal/application/student"
	"github.com/jackyeh168/classpoints/src/internal/domain/shared"
)

type handlers struct {
	uc UseCases
}

// parseBody 解析 JSON body；格式錯誤為 InvalidArgument
func parseBody(c *fiber.Ctx, out interface{}) error {
	if len(c.Body()) == 0 {
		return nil
	}
	if err := c.BodyParser(out); err != nil {
		return shared.ErrInvalidArgument.WithContext("reason", "malformed request body")
	}
	return nil
}

func ok(c *fiber.Ctx, status int, data interface{}) error {
	return c.Status(status).JSON(fiber.Map{
		"success": true,
		"data":    data,
	})
}

// ===========================
// Students
// ===========================

func (h *handlers) registerStudent(c *fiber.Ctx) error {
	var cmd studentapp.RegisterStudentCommand
	if err := parseBody(c, &cmd); err != nil {
		return err
	}
	result, err := h.uc.RegisterStudent.Execute(cmd)
	if err != nil {
		return err
	}
	return ok(c, fiber.StatusCreated, result)
}

func (h *handlers) listStudents(c *fiber.Ctx) error {
	result, err := h.uc.ListStudents.Execute()
	if err != nil {
		return err
	}
	return ok(c, fiber.StatusOK, result)
}

// ===========================
// Points
// ===========================

func (h *handlers) getBalance(c *fiber.Ctx) error {
	result, err := h.uc.GetBalance.Execute(pointsapp.GetBalanceQuery{StudentID: c.Params("id")})
	if err != nil {
		return err
	}
	return ok(c, fiber.StatusOK, result)
}

func (h *handlers) listHistory(c *fiber.Ctx) error {
	result, err := h.uc.ListHistory.Execute(pointsapp.ListHistoryQuery{StudentID: c.Params("id")})
	if err != nil {
		return err
	}
	return ok(c, fiber.StatusOK, result)
}

func (h *handlers) verifyLedger(c *fiber.Ctx) error {
	result, err := h.uc.VerifyLedger.Execute(pointsapp.VerifyLedgerQuery{StudentID: c.Params("id")})
	if err != nil {
		return err
	}
	return ok(c, fiber.StatusOK, result)
}

func (h *handlers) adjustPoints(c *fiber.Ctx) error {
	var cmd pointsapp.AdjustPointsCommand
	if err := parseBody(c, &cmd); err != nil {
		return err
	}
	cmd.StudentID = c.Params("id")
	result, err := h.uc.AdjustPoints.Execute(cmd)
	if err != nil {
		return err
	}
	return ok(c, fiber.StatusCreated, result)
}

func (h *handlers) awardPoints(c *fiber.Ctx) error {
	var cmd pointsapp.AwardPointsCommand
	if err := parseBody(c, &cmd); err != nil {
		return err
	}
	cmd.StudentID = c.Params("id")
	result, err := h.uc.AwardPoints.Execute(cmd)
	if err != nil {
		return err
	}
	return ok(c, fiber.StatusCreated, result)
}

func (h *handlers) classSummary(c *fiber.Ctx) error {
	result, err := h.uc.ClassSummary.Execute()
	if err != nil {
		return err
	}
	return ok(c, fiber.StatusOK, result)
}

// ===========================
// Shop
// ===========================

func (h *handlers) createItem(c *fiber.Ctx) error {
	var cmd shopapp.ItemCommand
	if err := parseBody(c, &cmd); err != nil {
		return err
	}
	result, err := h.uc.Catalog.CreateItem(cmd)
	if err != nil {
		return err
	}
	return ok(c, fiber.StatusCreated, result)
}

func (h *handlers) listItems(c *fiber.Ctx) error {
	result, err := h.uc.Catalog.ListItems(c.QueryBool("active", false))
	if err != nil {
		return err
	}
	return ok(c, fiber.StatusOK, result)
}

func (h *handlers) updateItem(c *fiber.Ctx) error {
	var cmd shopapp.UpdateItemCommand
	if err := parseBody(c, &cmd.ItemCommand); err != nil {
		return err
	}
	cmd.ItemID = c.Params("id")
	result, err := h.uc.Catalog.UpdateItem(cmd)
	if err != nil {
		return err
	}
	return ok(c, fiber.StatusOK, result)
}

func (h *handlers) setItemActive(c *fiber.Ctx) error {
	var cmd shopapp.SetItemActiveCommand
	if err := parseBody(c, &cmd); err != nil {
		return err
	}
	cmd.ItemID = c.Params("id")
	result, err := h.uc.Catalog.SetItemActive(cmd)
	if err != nil {
		return err
	}
	return ok(c, fiber.StatusOK, result)
}

func (h *handlers) purchase(c *fiber.Ctx) error {
	var cmd shopapp.PurchaseCommand
	if err := parseBody(c, &cmd); err != nil {
		return err
	}
	result, err := h.uc.Purchase.Execute(cmd)
	if err != nil {
		return err
	}
	return ok(c, fiber.StatusCreated, result)
}

// ===========================
// Coupons
// ===========================

func (h *handlers) listCoupons(c *fiber.Ctx) error {
	result, err := h.uc.ListCoupons.Execute(couponapp.ListCouponsQuery{Status: c.Query("status")})
	if err != nil {
		return err
	}
	return ok(c, fiber.StatusOK, result)
}

func (h *handlers) listStudentCoupons(c *fiber.Ctx) error {
	result, err := h.uc.ListStudentCoupons.Execute(couponapp.ListStudentCouponsQuery{StudentID: c.Params("id")})
	if err != nil {
		return err
	}
	return ok(c, fiber.StatusOK, result)
}

func (h *handlers) requestUse(c *fiber.Ctx) error {
	var cmd couponapp.RequestUseCommand
	if err := parseBody(c, &cmd); err != nil {
		return err
	}
	cmd.CouponID = c.Params("id")
	result, err := h.uc.RequestUse.Execute(cmd)
	if err != nil {
		return err
	}
	return ok(c, fiber.StatusOK, result)
}

func (h *handlers) approve(c *fiber.Ctx) error {
	result, err := h.uc.Approve.Execute(couponapp.ApproveCommand{CouponID: c.Params("id")})
	if err != nil {
		return err
	}
	return ok(c, fiber.StatusOK, result)
}
