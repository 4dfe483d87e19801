package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/careflow/homecare-api/internal/models"
	"github.com/careflow/homecare-api/internal/query"
)

type ShiftGormRepository struct {
	db *gorm.DB
}

func NewShiftGormRepository(db *gorm.DB) *ShiftGormRepository {
	return &ShiftGormRepository{db: db}
}

// --------------------------------------------------
// Listing
// --------------------------------------------------

func (r *ShiftGormRepository) List(
	ctx context.Context,
	pred *query.Predicate,
) ([]models.Shift, error) {

	q := r.db.WithContext(ctx).Model(&models.Shift{})
	if pred != nil {
		q = q.Where(pred.Expr, pred.Args...)
	}

	var shifts []models.Shift
	if err := q.Order("id ASC").Find(&shifts).Error; err != nil {
		return nil, err
	}
	return shifts, nil
}

// --------------------------------------------------
// Single rows
// --------------------------------------------------

func (r *ShiftGormRepository) Get(
	ctx context.Context,
	id uint,
) (*models.Shift, error) {

	var s models.Shift
	if err := r.db.WithContext(ctx).First(&s, id).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *ShiftGormRepository) Create(
	ctx context.Context,
	s *models.Shift,
) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *ShiftGormRepository) Update(
	ctx context.Context,
	s *models.Shift,
) error {
	return r.db.WithContext(ctx).Save(s).Error
}

func (r *ShiftGormRepository) Delete(
	ctx context.Context,
	id uint,
) (bool, error) {

	res := r.db.WithContext(ctx).Delete(&models.Shift{}, id)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
