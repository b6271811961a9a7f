package repository

import (
	"strategic-planning-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var _ PlanRepositoryInterface = (*PlanRepository)(nil)

// PlanRepository handles database operations for LEO/EO plans
type PlanRepository struct {
	db *gorm.DB
}

// NewPlanRepository creates a new plan repository
func NewPlanRepository(db *gorm.DB) *PlanRepository {
	return &PlanRepository{db: db}
}

// Create creates a new plan
func (r *PlanRepository) Create(plan *models.Plan) error {
	return r.db.Omit(clause.Associations).Create(plan).Error
}

// GetByID retrieves a plan with its organization and selected objectives
func (r *PlanRepository) GetByID(id uuid.UUID) (*models.Plan, error) {
	var plan models.Plan
	err := r.db.
		Preload("Organization").
		Preload("StrategicObjective").
		Preload("SelectedObjectives", func(db *gorm.DB) *gorm.DB {
			return db.Order("strategic_objectives.title")
		}).
		First(&plan, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &plan, nil
}

// GetByOrganizationID retrieves the plans of an organization, newest first
func (r *PlanRepository) GetByOrganizationID(orgID uuid.UUID, limit, offset int) ([]models.Plan, int64, error) {
	var plans []models.Plan
	var total int64

	query := r.db.Model(&models.Plan{}).Where("organization_id = ?", orgID)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Where("organization_id = ?", orgID).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&plans).Error
	if err != nil {
		return nil, 0, err
	}

	return plans, total, nil
}

// Update saves the plan's columns; relations are left untouched
func (r *PlanRepository) Update(plan *models.Plan) error {
	return r.db.Omit(clause.Associations).Save(plan).Error
}

// ReplaceSelectedObjectives saves the plan (including its weight overrides) and
// replaces its selected objectives in one transaction
func (r *PlanRepository) ReplaceSelectedObjectives(plan *models.Plan, objectives []models.StrategicObjective) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Save(plan).Error; err != nil {
			return err
		}
		if err := replaceAssociation(tx, plan, "SelectedObjectives", objectives, len(objectives)); err != nil {
			return err
		}
		plan.SelectedObjectives = objectives
		return nil
	})
}

// replaceAssociation swaps the rows of a many-to-many relation; an empty selection clears it
func replaceAssociation(tx *gorm.DB, owner interface{}, name string, values interface{}, n int) error {
	association := tx.Model(owner).Association(name)
	if n == 0 {
		return association.Clear()
	}
	return association.Replace(values)
}
