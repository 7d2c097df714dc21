package httpapi

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"github.com/jackyeh168/classpoints/src/internal/domain/shared"
)

// statusByKind 錯誤分類 → HTTP 狀態碼
var statusByKind = map[shared.ErrorKind]int{
	shared.KindNotFound:            fiber.StatusNotFound,
	shared.KindInvalidArgument:     fiber.StatusBadRequest,
	shared.KindInsufficientBalance: fiber.StatusConflict,
	shared.KindItemInactive:        fiber.StatusConflict,
	shared.KindInvalidTransition:   fiber.StatusConflict,
	shared.KindInternal:            fiber.StatusInternalServerError,
}

type errorBody struct {
	Code    string                 `json:"code"`
	Kind    string                 `json:"kind"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// newErrorHandler 將 DomainError 依 Kind 轉為 JSON 回應
//
// Internal 錯誤只回傳通用訊息，完整錯誤寫入日誌。
func newErrorHandler(logger *slog.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return c.Status(fe.Code).JSON(fiber.Map{
				"success": false,
				"error":   errorBody{Code: "HTTP_ERROR", Kind: "HTTP", Message: fe.Message},
			})
		}

		kind := shared.KindOf(err)
		status, ok := statusByKind[kind]
		if !ok {
			status = fiber.StatusInternalServerError
		}

		body := errorBody{Kind: string(kind)}
		var domainErr *shared.DomainError
		if kind != shared.KindInternal && errors.As(err, &domainErr) {
			body.Code = string(domainErr.Code)
			body.Message = domainErr.Message
			body.Details = domainErr.Context
		} else {
			logger.Error("request failed",
				"method", c.Method(),
				"path", c.Path(),
				"request_id", requestID(c),
				"error", err,
			)
			body.Code = "INTERNAL"
			body.Message = "internal server error"
		}

		return c.Status(status).JSON(fiber.Map{
			"success": false,
			"error":   body,
		})
	}
}
