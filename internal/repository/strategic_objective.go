package repository

import (
	"strategic-planning-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var _ StrategicObjectiveRepositoryInterface = (*StrategicObjectiveRepository)(nil)

// StrategicObjectiveRepository handles database operations for strategic objectives
type StrategicObjectiveRepository struct {
	db *gorm.DB
}

// NewStrategicObjectiveRepository creates a new strategic objective repository
func NewStrategicObjectiveRepository(db *gorm.DB) *StrategicObjectiveRepository {
	return &StrategicObjectiveRepository{db: db}
}

// Create creates a new strategic objective
func (r *StrategicObjectiveRepository) Create(objective *models.StrategicObjective) error {
	return r.db.Create(objective).Error
}

// GetByID retrieves a strategic objective by ID
func (r *StrategicObjectiveRepository) GetByID(id uuid.UUID) (*models.StrategicObjective, error) {
	var objective models.StrategicObjective
	if err := r.db.First(&objective, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &objective, nil
}

// GetByIDs retrieves the strategic objectives with the given IDs; missing IDs are skipped
func (r *StrategicObjectiveRepository) GetByIDs(ids []uuid.UUID) ([]models.StrategicObjective, error) {
	objectives := []models.StrategicObjective{}
	if len(ids) == 0 {
		return objectives, nil
	}
	if err := r.db.Where("id IN ?", ids).Order("title").Find(&objectives).Error; err != nil {
		return nil, err
	}
	return objectives, nil
}

// GetAll retrieves strategic objectives with pagination
func (r *StrategicObjectiveRepository) GetAll(limit, offset int) ([]models.StrategicObjective, int64, error) {
	var objectives []models.StrategicObjective
	var total int64

	if err := r.db.Model(&models.StrategicObjective{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Order("created_at DESC").Limit(limit).Offset(offset).Find(&objectives).Error
	if err != nil {
		return nil, 0, err
	}

	return objectives, total, nil
}

// Update updates a strategic objective
func (r *StrategicObjectiveRepository) Update(objective *models.StrategicObjective) error {
	return r.db.Save(objective).Error
}

// Delete deletes a strategic objective
func (r *StrategicObjectiveRepository) Delete(id uuid.UUID) error {
	result := r.db.Delete(&models.StrategicObjective{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

var _ StrategyCatalogRepositoryInterface = (*StrategyCatalogRepository)(nil)

// StrategyCatalogRepository loads initiatives, measures and activities by ID
type StrategyCatalogRepository struct {
	db *gorm.DB
}

// NewStrategyCatalogRepository creates a new strategy catalog repository
func NewStrategyCatalogRepository(db *gorm.DB) *StrategyCatalogRepository {
	return &StrategyCatalogRepository{db: db}
}

func findByIDs[T any](db *gorm.DB, ids []uuid.UUID) ([]T, error) {
	items := []T{}
	if len(ids) == 0 {
		return items, nil
	}
	if err := db.Where("id IN ?", ids).Order("name").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// GetInitiativesByIDs retrieves strategic initiatives by ID
func (r *StrategyCatalogRepository) GetInitiativesByIDs(ids []uuid.UUID) ([]models.StrategicInitiative, error) {
	return findByIDs[models.StrategicInitiative](r.db, ids)
}

// GetPerformanceMeasuresByIDs retrieves performance measures by ID
func (r *StrategyCatalogRepository) GetPerformanceMeasuresByIDs(ids []uuid.UUID) ([]models.PerformanceMeasure, error) {
	return findByIDs[models.PerformanceMeasure](r.db, ids)
}

// GetMainActivitiesByIDs retrieves main activities by ID
func (r *StrategyCatalogRepository) GetMainActivitiesByIDs(ids []uuid.UUID) ([]models.MainActivity, error) {
	return findByIDs[models.MainActivity](r.db, ids)
}

// GetDetailActivitiesByIDs retrieves detail activities by ID
func (r *StrategyCatalogRepository) GetDetailActivitiesByIDs(ids []uuid.UUID) ([]models.DetailActivity, error) {
	return findByIDs[models.DetailActivity](r.db, ids)
}
