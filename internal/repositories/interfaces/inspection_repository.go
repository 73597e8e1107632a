package interfaces

import (
	"context"
	"time"

	"moovsafe/internal/models"
	"moovsafe/internal/utils"

	"github.com/google/uuid"
)

type InspectionRepository interface {
	Create(ctx context.Context, inspection *models.Inspection) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Inspection, error)
	List(ctx context.Context, params *utils.PaginationParams) ([]*models.Inspection, int64, error)
	// ListByDateRange returns inspections whose date falls inside the
	// inclusive [start, end] window.
	ListByDateRange(ctx context.Context, start, end time.Time) ([]*models.Inspection, error)
	Delete(ctx context.Context, id uuid.UUID) (*models.Inspection, error)
}
