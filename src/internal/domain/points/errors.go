package points

import "github.com/jackyeh168/classpoints/src/internal/domain/shared"

// ===========================
// 錯誤代碼定義
// ===========================

const (
	// 點數數量相關
	ErrCodeInvalidPointsAmount shared.ErrorCode = "POINTS_INVALID"
	ErrCodeInsufficientBalance shared.ErrorCode = "POINTS_INSUFFICIENT"
	ErrCodeInvalidSource       shared.ErrorCode = "POINTS_SOURCE_INVALID"
	ErrCodeSourceNotAllowed    shared.ErrorCode = "POINTS_SOURCE_NOT_ALLOWED"
	ErrCodeInvalidDescription  shared.ErrorCode = "POINTS_DESCRIPTION_INVALID"
	ErrCodeInvalidEntryType    shared.ErrorCode = "POINTS_ENTRY_TYPE_INVALID"
	ErrCodeCorruptedEntry      shared.ErrorCode = "POINTS_ENTRY_CORRUPTED"
)

// ===========================
// 預定義錯誤
// ===========================

var (
	// ErrInvalidPointsAmount 點數必須為 1 ~ MaxPointsAmount 的整數
	ErrInvalidPointsAmount = shared.NewDomainError(ErrCodeInvalidPointsAmount, shared.KindInvalidArgument, "無效的點數數量")

	// ErrInsufficientBalance 餘額不足（扣點後餘額會小於 0）
	ErrInsufficientBalance = shared.NewDomainError(ErrCodeInsufficientBalance, shared.KindInsufficientBalance, "點數餘額不足")

	// ErrInvalidSource 未知的點數來源
	ErrInvalidSource = shared.NewDomainError(ErrCodeInvalidSource, shared.KindInvalidArgument, "無效的點數來源")

	// ErrSourceNotAllowed 來源與紀錄類型不符（例如 shop 來源的獲得紀錄）
	ErrSourceNotAllowed = shared.NewDomainError(ErrCodeSourceNotAllowed, shared.KindInvalidArgument, "此來源不允許此類型的點數異動")

	// ErrInvalidDescription 描述為空或過長
	ErrInvalidDescription = shared.NewDomainError(ErrCodeInvalidDescription, shared.KindInvalidArgument, "點數異動說明不可為空")

	// ErrInvalidEntryType 未知的紀錄類型
	ErrInvalidEntryType = shared.NewDomainError(ErrCodeInvalidEntryType, shared.KindInvalidArgument, "無效的紀錄類型")

	// ErrCorruptedEntry 資料庫中的紀錄違反符號規則（earn 必須為正、spend 必須為負）
	ErrCorruptedEntry = shared.NewDomainError(ErrCodeCorruptedEntry, shared.KindInternal, "點數紀錄資料損毀")
)
