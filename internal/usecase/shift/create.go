package shift

import (
	"context"

	"github.com/careflow/homecare-api/internal/audit"
	domain "github.com/careflow/homecare-api/internal/domain/shift"
	"github.com/careflow/homecare-api/internal/models"
)

type CreateShift struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreateShift(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CreateShift {
	return &CreateShift{
		repo:  repo,
		audit: audit,
	}
}

func (uc *CreateShift) Execute(
	ctx context.Context,
	requestID string,
	s *models.Shift,
) (*models.Shift, error) {

	if err := uc.repo.Create(ctx, s); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		RequestID: requestID,
		Action:    "shift_created",
		Entity:    "shift",
		EntityID:  &s.ID,
		Metadata: map[string]any{
			"client_id":  s.ClientID,
			"service_id": s.ServiceID,
		},
	})

	return s, nil
}
