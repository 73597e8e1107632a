package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"moovsafe/internal/models"
	"moovsafe/internal/repositories/interfaces"
	"moovsafe/internal/utils"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type inspectionRepository struct {
	db *gorm.DB
}

func NewInspectionRepository(db *gorm.DB) interfaces.InspectionRepository {
	return &inspectionRepository{db: db}
}

func (r *inspectionRepository) Create(ctx context.Context, inspection *models.Inspection) error {
	if err := r.db.WithContext(ctx).Create(inspection).Error; err != nil {
		return fmt.Errorf("failed to create inspection: %w", err)
	}

	return nil
}

func (r *inspectionRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Inspection, error) {
	var inspection models.Inspection
	if err := r.db.WithContext(ctx).First(&inspection, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, interfaces.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get inspection: %w", err)
	}

	return &inspection, nil
}

func (r *inspectionRepository) List(ctx context.Context, params *utils.PaginationParams) ([]*models.Inspection, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&models.Inspection{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count inspections: %w", err)
	}

	var inspections []*models.Inspection
	if err := r.db.WithContext(ctx).Scopes(params.Scope()).Find(&inspections).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list inspections: %w", err)
	}

	return inspections, total, nil
}

func (r *inspectionRepository) ListByDateRange(ctx context.Context, start, end time.Time) ([]*models.Inspection, error) {
	var inspections []*models.Inspection
	if err := r.db.WithContext(ctx).
		Where("date >= ? AND date <= ?", start, end).
		Order("date asc").
		Find(&inspections).Error; err != nil {
		return nil, fmt.Errorf("failed to list inspections by date: %w", err)
	}

	return inspections, nil
}

func (r *inspectionRepository) Delete(ctx context.Context, id uuid.UUID) (*models.Inspection, error) {
	var inspection models.Inspection

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&inspection, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return interfaces.ErrNotFound
			}
			return fmt.Errorf("failed to get inspection: %w", err)
		}

		if err := tx.Delete(&models.Inspection{}, "id = ?", id).Error; err != nil {
			return fmt.Errorf("failed to delete inspection: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return &inspection, nil
}
