package student

import (
	"errors"

	"github.com/jackyeh168/classpoints/src/internal/domain/shared"
	"github.com/jackyeh168/classpoints/src/internal/domain/student"
	"github.com/jackyeh168/classpoints/src/internal/infrastructure/persistence"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ===========================
// StudentRepositoryImpl
// ===========================

// StudentRepositoryImpl 學生倉儲實現（GORM）
type StudentRepositoryImpl struct {
	db *gorm.DB
}

// NewStudentRepository 創建新的學生倉儲實例
func NewStudentRepository(db *gorm.DB) student.StudentRepository {
	return &StudentRepositoryImpl{db: db}
}

// Create 新增學生
//
// 錯誤處理：
// - UNIQUE (grade, class_no, seat_no) 違反 → ErrSeatAlreadyTaken
// - 其他資料庫錯誤 → ErrRepositoryError
func (r *StudentRepositoryImpl) Create(ctx shared.TransactionContext, s *student.Student) error {
	db := persistence.DB(ctx, r.db)

	if err := db.Create(toGORM(s)).Error; err != nil {
		if persistence.IsUniqueConstraintError(err) {
			return student.ErrSeatAlreadyTaken.WithContext(
				"seat", s.Seat().String(),
			)
		}
		return persistence.WrapRepositoryError("create student", err)
	}
	return nil
}

// FindByID 根據學生 ID 查找
func (r *StudentRepositoryImpl) FindByID(ctx shared.TransactionContext, id student.StudentID) (*student.Student, error) {
	return r.findByID(persistence.DB(ctx, r.db), id)
}

// FindByIDForUpdate 查找並鎖定學生列
//
// PostgreSQL 產生 SELECT ... FOR UPDATE；SQLite 驅動忽略鎖定子句
// （SQLite 以單一連線序列化所有寫入）。
func (r *StudentRepositoryImpl) FindByIDForUpdate(ctx shared.TransactionContext, id student.StudentID) (*student.Student, error) {
	db := persistence.DB(ctx, r.db).Clauses(clause.Locking{Strength: "UPDATE"})
	return r.findByID(db, id)
}

func (r *StudentRepositoryImpl) findByID(db *gorm.DB, id student.StudentID) (*student.Student, error) {
	var model StudentGORM

	result := db.Where("id = ?", id.String()).First(&model)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, student.ErrStudentNotFound.WithContext(
				"student_id", id.String(),
			)
		}
		return nil, persistence.WrapRepositoryError("find student", result.Error)
	}

	return model.toDomain()
}

// FindAll 依座位排序返回所有學生
func (r *StudentRepositoryImpl) FindAll(ctx shared.TransactionContext) ([]*student.Student, error) {
	db := persistence.DB(ctx, r.db)

	var models []StudentGORM
	if err := db.Order("grade, class_no, seat_no").Find(&models).Error; err != nil {
		return nil, persistence.WrapRepositoryError("list students", err)
	}

	students := make([]*student.Student, 0, len(models))
	for i := range models {
		s, err := models[i].toDomain()
		if err != nil {
			return nil, err
		}
		students = append(students, s)
	}
	return students, nil
}

// ExistsBySeat 檢查座位是否已有學生（COUNT 查詢）
func (r *StudentRepositoryImpl) ExistsBySeat(ctx shared.TransactionContext, seat student.Seat) (bool, error) {
	db := persistence.DB(ctx, r.db)

	var count int64
	err := db.Model(&StudentGORM{}).
		Where("grade = ? AND class_no = ? AND seat_no = ?", seat.Grade(), seat.Class(), seat.Number()).
		Count(&count).Error
	if err != nil {
		return false, persistence.WrapRepositoryError("count seat", err)
	}
	return count > 0, nil
}
