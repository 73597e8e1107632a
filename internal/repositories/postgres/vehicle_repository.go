package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"moovsafe/internal/models"
	"moovsafe/internal/repositories/interfaces"
	"moovsafe/internal/utils"
	"moovsafe/pkg/cache"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

type vehicleRepository struct {
	db    *gorm.DB
	cache *cache.RedisCache
}

// NewVehicleRepository returns a gorm-backed vehicle repository. The cache is
// optional; pass nil to run without Redis.
func NewVehicleRepository(db *gorm.DB, cache *cache.RedisCache) interfaces.VehicleRepository {
	return &vehicleRepository{
		db:    db,
		cache: cache,
	}
}

func (r *vehicleRepository) CreateUnique(ctx context.Context, vehicle *models.Vehicle) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing []models.Vehicle
		if err := tx.
			Where("license_plate = ? OR vin = ? OR engine_number = ?",
				vehicle.LicensePlate, vehicle.VIN, vehicle.EngineNumber).
			Find(&existing).Error; err != nil {
			return fmt.Errorf("failed to check for existing vehicle: %w", err)
		}

		if len(existing) > 0 {
			return &interfaces.ConflictError{Fields: collidingFields(vehicle, existing)}
		}

		if err := tx.Create(vehicle).Error; err != nil {
			// A concurrent insert can slip between the check and the create;
			// the unique indexes then reject it and we still report a conflict.
			if fields, ok := uniqueViolationFields(err); ok {
				return &interfaces.ConflictError{Fields: fields}
			}
			return fmt.Errorf("failed to create vehicle: %w", err)
		}

		return nil
	})
	if err != nil {
		return err
	}

	r.cacheVehicle(ctx, vehicle)

	return nil
}

func (r *vehicleRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Vehicle, error) {
	// Try cache first
	if cached := r.getCachedVehicle(ctx, id); cached != nil {
		return cached, nil
	}

	var vehicle models.Vehicle
	if err := r.db.WithContext(ctx).First(&vehicle, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, interfaces.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get vehicle: %w", err)
	}

	r.cacheVehicle(ctx, &vehicle)

	return &vehicle, nil
}

func (r *vehicleRepository) GetByLicensePlate(ctx context.Context, licensePlate string) (*models.Vehicle, error) {
	// Try cache first
	cacheKey := fmt.Sprintf("vehicle_plate:%s", licensePlate)
	if r.cache != nil {
		var vehicle models.Vehicle
		if err := r.cache.Get(ctx, cacheKey, &vehicle); err == nil {
			return &vehicle, nil
		}
	}

	var vehicle models.Vehicle
	if err := r.db.WithContext(ctx).First(&vehicle, "license_plate = ?", licensePlate).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, interfaces.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get vehicle by license plate: %w", err)
	}

	if r.cache != nil {
		r.cache.Set(ctx, cacheKey, &vehicle, 30*time.Minute)
	}

	return &vehicle, nil
}

func (r *vehicleRepository) List(ctx context.Context, params *utils.PaginationParams) ([]*models.Vehicle, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&models.Vehicle{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count vehicles: %w", err)
	}

	var vehicles []*models.Vehicle
	if err := r.db.WithContext(ctx).Scopes(params.Scope()).Find(&vehicles).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list vehicles: %w", err)
	}

	return vehicles, total, nil
}

func (r *vehicleRepository) Update(ctx context.Context, id uuid.UUID, updates map[string]interface{}) (*models.Vehicle, error) {
	result := r.db.WithContext(ctx).Model(&models.Vehicle{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		if fields, ok := uniqueViolationFields(result.Error); ok {
			return nil, &interfaces.ConflictError{Fields: fields}
		}
		return nil, fmt.Errorf("failed to update vehicle: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, interfaces.ErrNotFound
	}

	// Invalidate cache
	r.invalidateVehicleCache(ctx, id)

	return r.GetByID(ctx, id)
}

func (r *vehicleRepository) Delete(ctx context.Context, id uuid.UUID) (*models.Vehicle, error) {
	var vehicle models.Vehicle

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&vehicle, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return interfaces.ErrNotFound
			}
			return fmt.Errorf("failed to get vehicle: %w", err)
		}

		if err := tx.Delete(&models.Vehicle{}, "id = ?", id).Error; err != nil {
			return fmt.Errorf("failed to delete vehicle: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	// Invalidate cache
	r.invalidateVehicleCache(ctx, id)

	return &vehicle, nil
}

// collidingFields reports which wire-format fields of the candidate collide
// with rows already in the table, in a stable order.
func collidingFields(vehicle *models.Vehicle, existing []models.Vehicle) []string {
	var fields []string

	matched := func(match func(models.Vehicle) bool) bool {
		for _, row := range existing {
			if match(row) {
				return true
			}
		}
		return false
	}

	if matched(func(v models.Vehicle) bool { return v.LicensePlate == vehicle.LicensePlate }) {
		fields = append(fields, "licensePlate")
	}
	if matched(func(v models.Vehicle) bool { return v.VIN == vehicle.VIN }) {
		fields = append(fields, "vin")
	}
	if matched(func(v models.Vehicle) bool { return v.EngineNumber == vehicle.EngineNumber }) {
		fields = append(fields, "engineNumber")
	}

	return fields
}

// uniqueViolationFields maps a Postgres unique violation (SQLSTATE 23505) to
// the wire-format field named by the violated constraint.
func uniqueViolationFields(err error) ([]string, bool) {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != "23505" {
		return nil, false
	}

	switch {
	case strings.Contains(pgErr.ConstraintName, "license_plate"):
		return []string{"licensePlate"}, true
	case strings.Contains(pgErr.ConstraintName, "engine_number"):
		return []string{"engineNumber"}, true
	case strings.Contains(pgErr.ConstraintName, "vin"):
		return []string{"vin"}, true
	default:
		return []string{"licensePlate", "vin", "engineNumber"}, true
	}
}

// Cache helper methods. Cache failures never surface to callers; Postgres
// stays the source of truth.

func (r *vehicleRepository) cacheVehicle(ctx context.Context, vehicle *models.Vehicle) {
	if r.cache != nil {
		cacheKey := fmt.Sprintf("vehicle:%s", vehicle.ID)
		r.cache.Set(ctx, cacheKey, vehicle, 15*time.Minute)

		// Also cache by license plate
		plateKey := fmt.Sprintf("vehicle_plate:%s", vehicle.LicensePlate)
		r.cache.Set(ctx, plateKey, vehicle, 30*time.Minute)
	}
}

func (r *vehicleRepository) getCachedVehicle(ctx context.Context, id uuid.UUID) *models.Vehicle {
	if r.cache == nil {
		return nil
	}

	cacheKey := fmt.Sprintf("vehicle:%s", id)
	var vehicle models.Vehicle
	if err := r.cache.Get(ctx, cacheKey, &vehicle); err != nil {
		return nil
	}

	return &vehicle
}

func (r *vehicleRepository) invalidateVehicleCache(ctx context.Context, id uuid.UUID) {
	if r.cache != nil {
		cacheKey := fmt.Sprintf("vehicle:%s", id)
		r.cache.Delete(ctx, cacheKey)

		// The license plate entry expires on its own; invalidating it would
		// need an extra lookup before the write.
	}
}
