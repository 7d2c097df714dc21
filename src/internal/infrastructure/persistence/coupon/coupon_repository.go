package coupon

import (
	"errors"

	"github.com/jackyeh168/classpoints/src/internal/domain/coupon"
	"github.com/jackyeh168/classpoints/src/internal/domain/shared"
	"github.com/jackyeh168/classpoints/src/internal/domain/student"
	"github.com/jackyeh168/classpoints/src/internal/infrastructure/persistence"
	"gorm.io/gorm"
)

// CouponRepositoryImpl 優惠券倉儲實現（GORM）
type CouponRepositoryImpl struct {
	db *gorm.DB
}

// NewCouponRepository 創建優惠券倉儲
func NewCouponRepository(db *gorm.DB) coupon.CouponRepository {
	return &CouponRepositoryImpl{db: db}
}

// Create 新增優惠券
func (r *CouponRepositoryImpl) Create(ctx shared.TransactionContext, c *coupon.Coupon) error {
	db := persistence.DB(ctx, r.db)

	if err := db.Create(toGORM(c)).Error; err != nil {
		return persistence.WrapRepositoryError("create coupon", err)
	}
	return nil
}

// FindByID 根據優惠券 ID 查找
func (r *CouponRepositoryImpl) FindByID(ctx shared.TransactionContext, id coupon.CouponID) (*coupon.Coupon, error) {
	db := persistence.DB(ctx, r.db)

	var model CouponGORM
	result := db.Where("id = ?", id.String()).First(&model)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, coupon.ErrCouponNotFound.WithContext("coupon_id", id.String())
		}
		return nil, persistence.WrapRepositoryError("find coupon", result.Error)
	}

	return model.toDomain()
}

// Find 依條件查詢，購買時間由新到舊
func (r *CouponRepositoryImpl) Find(ctx shared.TransactionContext, filter coupon.Filter) ([]*coupon.Coupon, error) {
	query := persistence.DB(ctx, r.db).Order("purchased_at DESC, id")
	if filter.Status != nil {
		query = query.Where("status = ?", string(*filter.Status))
	}
	if filter.StudentID != nil {
		query = query.Where("student_id = ?", filter.StudentID.String())
	}
	return r.find(query, "list coupons")
}

// FindSweepable 返回 unused / pending 的優惠券
func (r *CouponRepositoryImpl) FindSweepable(ctx shared.TransactionContext, studentID *student.StudentID) ([]*coupon.Coupon, error) {
	query := persistence.DB(ctx, r.db).
		Where("status IN ?", []string{string(coupon.StatusUnused), string(coupon.StatusPending)})
	if studentID != nil {
		query = query.Where("student_id = ?", studentID.String())
	}
	return r.find(query, "list sweepable coupons")
}

func (r *CouponRepositoryImpl) find(query *gorm.DB, op string) ([]*coupon.Coupon, error) {
	var models []CouponGORM
	if err := query.Find(&models).Error; err != nil {
		return nil, persistence.WrapRepositoryError(op, err)
	}

	coupons := make([]*coupon.Coupon, 0, len(models))
	for i := range models {
		c, err := models[i].toDomain()
		if err != nil {
			return nil, err
		}
		coupons = append(coupons, c)
	}
	return coupons, nil
}

// UpdateStatus compare-and-swap 狀態更新
//
//	UPDATE coupons SET status = ?, used_at = ? WHERE id = ? AND status = expected
//
// 影響 0 列：優惠券不存在 → ErrCouponNotFound；狀態已被改變 → ErrStatusConflict。
func (r *CouponRepositoryImpl) UpdateStatus(ctx shared.TransactionContext, c *coupon.Coupon, expected coupon.Status) error {
	db := persistence.DB(ctx, r.db)
	id := c.CouponID().String()

	result := db.Model(&CouponGORM{}).
		Where("id = ? AND status = ?", id, string(expected)).
		Updates(map[string]interface{}{
			"status":  string(c.Status()),
			"used_at": utcPtr(c.UsedAt()),
		})
	if result.Error != nil {
		return persistence.WrapRepositoryError("update coupon status", result.Error)
	}
	if result.RowsAffected > 0 {
		return nil
	}

	var count int64
	if err := db.Model(&CouponGORM{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return persistence.WrapRepositoryError("count coupon", err)
	}
	if count == 0 {
		return coupon.ErrCouponNotFound.WithContext("coupon_id", id)
	}
	return coupon.ErrStatusConflict.WithContext(
		"coupon_id", id,
		"expected", string(expected),
	)
}
