package shift

import (
	"context"

	"github.com/careflow/homecare-api/internal/models"
	"github.com/careflow/homecare-api/internal/query"
)

type Repository interface {
	// -------- Listing --------
	List(
		ctx context.Context,
		pred *query.Predicate,
	) ([]models.Shift, error)

	// -------- Single rows --------
	Get(
		ctx context.Context,
		id uint,
	) (*models.Shift, error)

	Create(
		ctx context.Context,
		s *models.Shift,
	) error

	Update(
		ctx context.Context,
		s *models.Shift,
	) error

	// Delete reports whether a row was actually removed, so callers can
	// distinguish "already gone" from success.
	Delete(
		ctx context.Context,
		id uint,
	) (bool, error)
}
