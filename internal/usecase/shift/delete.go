package shift

import (
	"context"

	"github.com/careflow/homecare-api/internal/audit"
	domain "github.com/careflow/homecare-api/internal/domain/shift"
	"github.com/careflow/homecare-api/internal/httperr"
)

type DeleteShift struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewDeleteShift(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *DeleteShift {
	return &DeleteShift{
		repo:  repo,
		audit: audit,
	}
}

func (uc *DeleteShift) Execute(
	ctx context.Context,
	requestID string,
	id uint,
) error {

	deleted, err := uc.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return httperr.ErrBusiness("shift_not_found")
	}

	uc.audit.Dispatch(audit.Event{
		RequestID: requestID,
		Action:    "shift_deleted",
		Entity:    "shift",
		EntityID:  &id,
	})

	return nil
}
