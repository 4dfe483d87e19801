package shift

import (
	"context"
	"errors"

	"gorm.io/gorm"

	domain "github.com/careflow/homecare-api/internal/domain/shift"
	"github.com/careflow/homecare-api/internal/httperr"
	"github.com/careflow/homecare-api/internal/models"
)

type GetShift struct {
	repo domain.Repository
}

func NewGetShift(repo domain.Repository) *GetShift {
	return &GetShift{repo: repo}
}

func (uc *GetShift) Execute(
	ctx context.Context,
	id uint,
) (*models.Shift, error) {

	s, err := uc.repo.Get(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, httperr.ErrBusiness("shift_not_found")
	}
	if err != nil {
		return nil, err
	}
	return s, nil
}
