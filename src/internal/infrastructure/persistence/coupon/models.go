package coupon

import (
	"time"

	"github.com/jackyeh168/classpoints/src/internal/domain/catalog"
	"github.com/jackyeh168/classpoints/src/internal/domain/coupon"
	"github.com/jackyeh168/classpoints/src/internal/domain/student"
)

// CouponGORM 優惠券資料表模型
//
// item_* 欄位為購買時的商品快照，不參照 shop_items。
// 時間一律以 UTC 保存。
type CouponGORM struct {
	ID           string     `gorm:"column:id;type:varchar(36);primaryKey"`
	StudentID    string     `gorm:"column:student_id;type:varchar(36);index;not null"`
	ItemID       string     `gorm:"column:item_id;type:varchar(36);not null"`
	ItemTitle    string     `gorm:"column:item_title;not null"`
	ItemCategory string     `gorm:"column:item_category;not null"`
	ItemPrice    int        `gorm:"column:item_price;not null"`
	PurchasedAt  time.Time  `gorm:"column:purchased_at;not null"`
	ExpiresAt    time.Time  `gorm:"column:expires_at;not null"`
	Status       string     `gorm:"column:status;index;not null"`
	UsedAt       *time.Time `gorm:"column:used_at"`
}

// TableName 指定資料表名稱
func (CouponGORM) TableName() string {
	return "coupons"
}

func (m *CouponGORM) toDomain() (*coupon.Coupon, error) {
	couponID, err := coupon.CouponIDFromString(m.ID)
	if err != nil {
		return nil, err
	}
	studentID, err := student.StudentIDFromString(m.StudentID)
	if err != nil {
		return nil, err
	}
	itemID, err := catalog.ItemIDFromString(m.ItemID)
	if err != nil {
		return nil, err
	}
	category, err := catalog.ParseCategory(m.ItemCategory)
	if err != nil {
		return nil, err
	}
	status, err := coupon.ParseStatus(m.Status)
	if err != nil {
		return nil, err
	}

	return coupon.ReconstructCoupon(
		couponID,
		studentID,
		catalog.NewItemSnapshot(itemID, m.ItemTitle, category, m.ItemPrice),
		m.PurchasedAt,
		m.ExpiresAt,
		status,
		m.UsedAt,
	), nil
}

func toGORM(c *coupon.Coupon) *CouponGORM {
	item := c.Item()
	return &CouponGORM{
		ID:           c.CouponID().String(),
		StudentID:    c.StudentID().String(),
		ItemID:       item.ItemID().String(),
		ItemTitle:    item.Title(),
		ItemCategory: string(item.Category()),
		ItemPrice:    item.Price(),
		PurchasedAt:  c.PurchasedAt().UTC(),
		ExpiresAt:    c.ExpiresAt().UTC(),
		Status:       string(c.Status()),
		UsedAt:       utcPtr(c.UsedAt()),
	}
}

func utcPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()
	return &u
}
