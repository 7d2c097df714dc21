package shared

import (
	"errors"
	"fmt"
)

// ===========================
// 錯誤分類（Error Taxonomy）
// ===========================

// ErrorKind 錯誤分類，對應呼叫端應採取的處理方式
//
// 所有分類都直接回報給呼叫端，不做重試。
type ErrorKind string

const (
	KindNotFound            ErrorKind = "NOT_FOUND"
	KindInsufficientBalance ErrorKind = "INSUFFICIENT_BALANCE"
	KindItemInactive        ErrorKind = "ITEM_INACTIVE"
	KindInvalidTransition   ErrorKind = "INVALID_TRANSITION"
	KindInvalidArgument     ErrorKind = "INVALID_ARGUMENT"
	KindInternal            ErrorKind = "INTERNAL"
)

// ErrorCode 具體錯誤代碼（由各 bounded context 定義）
type ErrorCode string

// ===========================
// DomainError 結構
// ===========================

// DomainError 領域錯誤
//
// Code 用於 errors.Is 比對；Kind 用於分類（HTTP 狀態碼映射）；
// Context 保存除錯用的鍵值資訊。建立後不可修改。
type DomainError struct {
	Code    ErrorCode
	Kind    ErrorKind
	Message string
	Context map[string]interface{}
}

// NewDomainError 建立預定義錯誤
func NewDomainError(code ErrorCode, kind ErrorKind, message string) *DomainError {
	return &DomainError{Code: code, Kind: kind, Message: message}
}

// Error 實現 error 接口
func (e *DomainError) Error() string {
	if len(e.Context) == 0 {
		return fmt.Sprintf("[%s] %s", e.Code, e.Message)
	}
	return fmt.Sprintf("[%s] %s (context: %+v)", e.Code, e.Message, e.Context)
}

// WithContext 添加上下文信息（返回新的錯誤實例，保持不可變性）
func (e *DomainError) WithContext(keyValues ...interface{}) error {
	if len(keyValues)%2 != 0 {
		panic("WithContext requires even number of arguments (key-value pairs)")
	}

	ctx := make(map[string]interface{}, len(e.Context)+len(keyValues)/2)
	for k, v := range e.Context {
		ctx[k] = v
	}
	for i := 0; i < len(keyValues); i += 2 {
		key, ok := keyValues[i].(string)
		if !ok {
			panic(fmt.Sprintf("context key must be string, got %T", keyValues[i]))
		}
		ctx[key] = keyValues[i+1]
	}

	return &DomainError{
		Code:    e.Code,
		Kind:    e.Kind,
		Message: e.Message,
		Context: ctx,
	}
}

// Is 實現 errors.Is 接口（以 Code 判斷）
func (e *DomainError) Is(target error) bool {
	t, ok := target.(*DomainError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// KindOf 取得錯誤分類（穿透 %w 包裝）
//
// 非 DomainError 一律視為 KindInternal。
func KindOf(err error) ErrorKind {
	if err == nil {
		return ""
	}
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Kind
	}
	return KindInternal
}

// IsKind 判斷錯誤是否屬於指定分類
func IsKind(err error, kind ErrorKind) bool {
	return err != nil && KindOf(err) == kind
}

// ===========================
// 共用錯誤
// ===========================

const (
	ErrCodeInvalidArgument ErrorCode = "INVALID_ARGUMENT"
	ErrCodeRepositoryError ErrorCode = "REPOSITORY_ERROR"
)

var (
	// ErrInvalidArgument 輸入格式錯誤（由 validator 或值對象建構失敗產生）
	ErrInvalidArgument = NewDomainError(ErrCodeInvalidArgument, KindInvalidArgument, "無效的輸入參數")

	// ErrRepositoryError 倉儲操作失敗（資料庫錯誤）
	ErrRepositoryError = NewDomainError(ErrCodeRepositoryError, KindInternal, "倉儲操作失敗")
)
