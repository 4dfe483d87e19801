package shift

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/careflow/homecare-api/internal/audit"
	domain "github.com/careflow/homecare-api/internal/domain/shift"
	"github.com/careflow/homecare-api/internal/httperr"
	"github.com/careflow/homecare-api/internal/models"
)

type UpdateShift struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewUpdateShift(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *UpdateShift {
	return &UpdateShift{
		repo:  repo,
		audit: audit,
	}
}

// Execute replaces every mutable field of the shift identified by id.
// Partial updates are not supported.
func (uc *UpdateShift) Execute(
	ctx context.Context,
	requestID string,
	id uint,
	in *models.Shift,
) (*models.Shift, error) {

	existing, err := uc.repo.Get(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, httperr.ErrBusiness("shift_not_found")
	}
	if err != nil {
		return nil, err
	}

	existing.ClientID = in.ClientID
	existing.ServiceID = in.ServiceID
	existing.TotalHours = in.TotalHours
	existing.Zipcode = in.Zipcode
	existing.Available = in.Available

	if err := uc.repo.Update(ctx, existing); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		RequestID: requestID,
		Action:    "shift_updated",
		Entity:    "shift",
		EntityID:  &existing.ID,
	})

	return existing, nil
}
