package interfaces

import (
	"context"

	"moovsafe/internal/models"
	"moovsafe/internal/utils"

	"github.com/google/uuid"
)

type MaintenanceRepository interface {
	Create(ctx context.Context, record *models.MaintenanceRecord) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.MaintenanceRecord, error)
	List(ctx context.Context, params *utils.PaginationParams) ([]*models.MaintenanceRecord, int64, error)
	ListByVehicleID(ctx context.Context, vehicleID uuid.UUID) ([]*models.MaintenanceRecord, error)
	Update(ctx context.Context, id uuid.UUID, updates map[string]interface{}) (*models.MaintenanceRecord, error)
	Delete(ctx context.Context, id uuid.UUID) (*models.MaintenanceRecord, error)
}
