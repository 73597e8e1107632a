package interfaces

import (
	"context"

	"moovsafe/internal/models"
	"moovsafe/internal/utils"

	"github.com/google/uuid"
)

type VehicleRepository interface {
	// CreateUnique inserts the vehicle after verifying, inside one
	// transaction, that no existing vehicle shares its license plate, VIN or
	// engine number. Collisions surface as a *ConflictError naming every
	// colliding field and nothing is inserted.
	CreateUnique(ctx context.Context, vehicle *models.Vehicle) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Vehicle, error)
	GetByLicensePlate(ctx context.Context, licensePlate string) (*models.Vehicle, error)
	List(ctx context.Context, params *utils.PaginationParams) ([]*models.Vehicle, int64, error)
	// Update applies a partial column update and returns the updated row.
	Update(ctx context.Context, id uuid.UUID, updates map[string]interface{}) (*models.Vehicle, error)
	// Delete removes the vehicle and returns the deleted row.
	Delete(ctx context.Context, id uuid.UUID) (*models.Vehicle, error)
}
