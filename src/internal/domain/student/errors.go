package student

import "github.com/jackyeh168/classpoints/src/internal/domain/shared"

// ===========================
// Student Domain 錯誤定義
// ===========================

const (
	ErrCodeStudentNotFound      shared.ErrorCode = "STUDENT_NOT_FOUND"
	ErrCodeInvalidStudentID     shared.ErrorCode = "INVALID_STUDENT_ID"
	ErrCodeInvalidStudentName   shared.ErrorCode = "INVALID_STUDENT_NAME"
	ErrCodeInvalidSeat          shared.ErrorCode = "INVALID_SEAT"
	ErrCodeSeatAlreadyTaken     shared.ErrorCode = "SEAT_ALREADY_TAKEN"
	ErrCodeNegativeBalanceState shared.ErrorCode = "NEGATIVE_BALANCE_STATE"
)

var (
	// ErrStudentNotFound 學生不存在
	ErrStudentNotFound = shared.NewDomainError(ErrCodeStudentNotFound, shared.KindNotFound, "學生不存在")

	// ErrInvalidStudentID 學生 ID 格式無效
	ErrInvalidStudentID = shared.NewDomainError(ErrCodeInvalidStudentID, shared.KindInvalidArgument, "學生 ID 格式無效")

	// ErrInvalidStudentName 姓名為空或過長
	ErrInvalidStudentName = shared.NewDomainError(ErrCodeInvalidStudentName, shared.KindInvalidArgument, "學生姓名無效（1~50 字）")

	// ErrInvalidSeat 年級/班級/座號超出範圍
	ErrInvalidSeat = shared.NewDomainError(ErrCodeInvalidSeat, shared.KindInvalidArgument, "座位資訊無效")

	// ErrSeatAlreadyTaken 同一座位已有學生
	ErrSeatAlreadyTaken = shared.NewDomainError(ErrCodeSeatAlreadyTaken, shared.KindInvalidArgument, "該座位已有學生")

	// ErrNegativeBalanceState 從資料庫載入的餘額為負（資料損毀）
	ErrNegativeBalanceState = shared.NewDomainError(ErrCodeNegativeBalanceState, shared.KindInternal, "學生餘額不可為負數")
)
