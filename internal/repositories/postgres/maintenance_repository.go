package postgres

import (
	"context"
	"errors"
	"fmt"

	"moovsafe/internal/models"
	"moovsafe/internal/repositories/interfaces"
	"moovsafe/internal/utils"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type maintenanceRepository struct {
	db *gorm.DB
}

func NewMaintenanceRepository(db *gorm.DB) interfaces.MaintenanceRepository {
	return &maintenanceRepository{db: db}
}

func (r *maintenanceRepository) Create(ctx context.Context, record *models.MaintenanceRecord) error {
	if err := r.db.WithContext(ctx).Create(record).Error; err != nil {
		return fmt.Errorf("failed to create maintenance record: %w", err)
	}

	return nil
}

func (r *maintenanceRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.MaintenanceRecord, error) {
	var record models.MaintenanceRecord
	if err := r.db.WithContext(ctx).First(&record, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, interfaces.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get maintenance record: %w", err)
	}

	return &record, nil
}

func (r *maintenanceRepository) List(ctx context.Context, params *utils.PaginationParams) ([]*models.MaintenanceRecord, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&models.MaintenanceRecord{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count maintenance records: %w", err)
	}

	var records []*models.MaintenanceRecord
	if err := r.db.WithContext(ctx).Scopes(params.Scope()).Find(&records).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list maintenance records: %w", err)
	}

	return records, total, nil
}

func (r *maintenanceRepository) ListByVehicleID(ctx context.Context, vehicleID uuid.UUID) ([]*models.MaintenanceRecord, error) {
	var records []*models.MaintenanceRecord
	if err := r.db.WithContext(ctx).
		Where("vehicle_id = ?", vehicleID).
		Order("date desc").
		Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to list maintenance records for vehicle: %w", err)
	}

	return records, nil
}

func (r *maintenanceRepository) Update(ctx context.Context, id uuid.UUID, updates map[string]interface{}) (*models.MaintenanceRecord, error) {
	result := r.db.WithContext(ctx).Model(&models.MaintenanceRecord{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to update maintenance record: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, interfaces.ErrNotFound
	}

	return r.GetByID(ctx, id)
}

func (r *maintenanceRepository) Delete(ctx context.Context, id uuid.UUID) (*models.MaintenanceRecord, error) {
	var record models.MaintenanceRecord

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&record, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return interfaces.ErrNotFound
			}
			return fmt.Errorf("failed to get maintenance record: %w", err)
		}

		if err := tx.Delete(&models.MaintenanceRecord{}, "id = ?", id).Error; err != nil {
			return fmt.Errorf("failed to delete maintenance record: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return &record, nil
}
