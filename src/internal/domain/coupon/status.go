package coupon

import "time"

// Status 優惠券狀態
type Status string

const (
	StatusUnused   Status = "unused"
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusExpired  Status = "expired"
)

// ParseStatus 從字串解析狀態
func ParseStatus(s string) (Status, error) {
	switch st := Status(s); st {
	case StatusUnused, StatusPending, StatusApproved, StatusExpired:
		return st, nil
	}
	return "", ErrInvalidStatus.WithContext("status", s)
}

// IsTerminal approved 與 expired 為終態
func (s Status) IsTerminal() bool {
	return s == StatusApproved || s == StatusExpired
}

// Sweepable 是否可能被到期掃描改為 expired
func (s Status) Sweepable() bool {
	return s == StatusUnused || s == StatusPending
}

// Sweep 到期判斷（純函數）
//
// unused / pending 且 expiresAt < now → expired；其餘狀態原樣返回。
// approved 不受影響。對同一 now 重複套用結果相同。
func Sweep(status Status, expiresAt, now time.Time) Status {
	if status.Sweepable() && expiresAt.Before(now) {
		return StatusExpired
	}
	return status
}

// ExpiresAt 由購買時間計算到期時間（日曆月）
//
// 使用 time.AddDate：1/31 + 1 個月 = 3/3（2 月沒有 31 日時向後正規化）。
func ExpiresAt(purchasedAt time.Time, validityMonths int) time.Time {
	return purchasedAt.AddDate(0, validityMonths, 0)
}
