package shift

import (
	"context"

	domain "github.com/careflow/homecare-api/internal/domain/shift"
	"github.com/careflow/homecare-api/internal/models"
	"github.com/careflow/homecare-api/internal/query"
)

type ListShifts struct {
	repo domain.Repository
}

func NewListShifts(repo domain.Repository) *ListShifts {
	return &ListShifts{repo: repo}
}

func (uc *ListShifts) Execute(
	ctx context.Context,
	params query.ShiftFilterParams,
) ([]models.Shift, error) {
	return uc.repo.List(ctx, query.ResolveShiftFilter(params))
}
