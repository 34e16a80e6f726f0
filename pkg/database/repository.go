package database

import (
	"time"

	"gorm.io/gorm"
)

// CellPlanRepository handles cell plan database operations
type CellPlanRepository struct {
	db *gorm.DB
}

// NewCellPlanRepository creates a new cell plan repository
func NewCellPlanRepository(db *gorm.DB) *CellPlanRepository {
	return &CellPlanRepository{db: db}
}

// Create adds a new cell plan record
func (r *CellPlanRepository) Create(plan *CellPlan) error {
	return r.db.Create(plan).Error
}

// GetRecent retrieves the most recent N cell plans
func (r *CellPlanRepository) GetRecent(limit int) ([]CellPlan, error) {
	var plans []CellPlan
	err := r.db.Order("created_at DESC").Limit(limit).Find(&plans).Error
	return plans, err
}

// GetRecentPaginated retrieves cell plans with pagination
func (r *CellPlanRepository) GetRecentPaginated(page, perPage int) ([]CellPlan, int64, error) {
	var plans []CellPlan
	var total int64

	// Count total records
	if err := r.db.Model(&CellPlan{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	// Get paginated results
	offset := (page - 1) * perPage
	err := r.db.Order("created_at DESC").
		Offset(offset).
		Limit(perPage).
		Find(&plans).Error

	return plans, total, err
}

// GetByBand retrieves cell plans for a specific band
func (r *CellPlanRepository) GetByBand(band int, limit int) ([]CellPlan, error) {
	var plans []CellPlan
	err := r.db.Where("band = ?", band).
		Order("created_at DESC").
		Limit(limit).
		Find(&plans).Error
	return plans, err
}

// GetByName retrieves the most recent plans saved under a cell name
func (r *CellPlanRepository) GetByName(name string, limit int) ([]CellPlan, error) {
	var plans []CellPlan
	err := r.db.Where("name = ?", name).
		Order("created_at DESC").
		Limit(limit).
		Find(&plans).Error
	return plans, err
}

// DeleteOlderThan deletes cell plans older than the specified time
func (r *CellPlanRepository) DeleteOlderThan(before time.Time) (int64, error) {
	result := r.db.Where("created_at < ?", before).Delete(&CellPlan{})
	return result.RowsAffected, result.Error
}
