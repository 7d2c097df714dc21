package shared

import "time"

// Clock 時間來源
//
// 優惠券到期判斷與歷史紀錄時間都從 Clock 取得，測試可注入固定時間。
type Clock interface {
	Now() time.Time
}

// SystemClock 系統時鐘，回傳指定時區的當前時間
//
// 時區決定「一個日曆月」的計算基準（例如 Asia/Seoul 的 1/31 → 3/3）。
type SystemClock struct {
	Location *time.Location
}

// Now 實作 Clock
func (c SystemClock) Now() time.Time {
	if c.Location == nil {
		return time.Now()
	}
	return time.Now().In(c.Location)
}

// FixedClock 固定時鐘（測試與重放用）
type FixedClock struct {
	T time.Time
}

// Now 實作 Clock
func (c *FixedClock) Now() time.Time {
	return c.T
}

// Advance 推進固定時鐘
func (c *FixedClock) Advance(d time.Duration) {
	c.T = c.T.Add(d)
}
