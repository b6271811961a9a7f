package repository

import (
	"strategic-planning-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var _ TeamDeskPlanRepositoryInterface = (*TeamDeskPlanRepository)(nil)

// TeamDeskPlanRepository handles database operations for team/desk plans
type TeamDeskPlanRepository struct {
	db *gorm.DB
}

// NewTeamDeskPlanRepository creates a new team/desk plan repository
func NewTeamDeskPlanRepository(db *gorm.DB) *TeamDeskPlanRepository {
	return &TeamDeskPlanRepository{db: db}
}

// Create creates a new team/desk plan
func (r *TeamDeskPlanRepository) Create(plan *models.TeamDeskPlan) error {
	return r.db.Omit(clause.Associations).Create(plan).Error
}

// GetByID retrieves a team/desk plan with its relations, content and reviews
func (r *TeamDeskPlanRepository) GetByID(id uuid.UUID) (*models.TeamDeskPlan, error) {
	var plan models.TeamDeskPlan
	err := r.db.
		Preload("Organization").
		Preload("TeamDesk").
		Preload("LeoEoPlan.Organization").
		Preload("Objectives").
		Preload("Initiatives").
		Preload("PerformanceMeasures").
		Preload("MainActivities").
		Preload("DetailActivities").
		Preload("Reviews", func(db *gorm.DB) *gorm.DB {
			return db.Order("team_desk_plan_reviews.reviewed_at DESC")
		}).
		Preload("Reviews.Reviewer.User").
		First(&plan, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &plan, nil
}

func (r *TeamDeskPlanRepository) filtered(filter TeamDeskPlanFilter) *gorm.DB {
	query := r.db.Model(&models.TeamDeskPlan{})
	if filter.OrganizationID != nil {
		query = query.Where("organization_id = ?", *filter.OrganizationID)
	}
	if filter.TeamDeskID != nil {
		query = query.Where("team_desk_id = ?", *filter.TeamDeskID)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	return query
}

// GetAll retrieves team/desk plans matching filter with pagination, newest first
func (r *TeamDeskPlanRepository) GetAll(filter TeamDeskPlanFilter, limit, offset int) ([]models.TeamDeskPlan, int64, error) {
	var plans []models.TeamDeskPlan
	var total int64

	if err := r.filtered(filter).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.filtered(filter).
		Preload("Organization").
		Preload("TeamDesk").
		Preload("LeoEoPlan.Organization").
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
func (r *TeamDeskPlanRepository) Update(plan *models.TeamDeskPlan) error {
	return r.db.Omit(clause.Associations).Save(plan).Error
}

// ReplaceContent replaces every selection set of the plan in one transaction
func (r *TeamDeskPlanRepository) ReplaceContent(plan *models.TeamDeskPlan, content TeamDeskPlanContent) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Save(plan).Error; err != nil {
			return err
		}
		steps := []struct {
			name   string
			values interface{}
			n      int
		}{
			{"Objectives", content.Objectives, len(content.Objectives)},
			{"Initiatives", content.Initiatives, len(content.Initiatives)},
			{"PerformanceMeasures", content.PerformanceMeasures, len(content.PerformanceMeasures)},
			{"MainActivities", content.MainActivities, len(content.MainActivities)},
			{"DetailActivities", content.DetailActivities, len(content.DetailActivities)},
		}
		for _, step := range steps {
			if err := replaceAssociation(tx, plan, step.name, step.values, step.n); err != nil {
				return err
			}
		}
		plan.Objectives = content.Objectives
		plan.Initiatives = content.Initiatives
		plan.PerformanceMeasures = content.PerformanceMeasures
		plan.MainActivities = content.MainActivities
		plan.DetailActivities = content.DetailActivities
		return nil
	})
}

// AddReview inserts a review and saves the plan's new status in one transaction
func (r *TeamDeskPlanRepository) AddReview(plan *models.TeamDeskPlan, review *models.TeamDeskPlanReview) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		review.PlanID = plan.ID
		if err := tx.Omit(clause.Associations).Create(review).Error; err != nil {
			return err
		}
		return tx.Omit(clause.Associations).Save(plan).Error
	})
}

var _ TeamDeskPlanReviewRepositoryInterface = (*TeamDeskPlanReviewRepository)(nil)

// TeamDeskPlanReviewRepository reads team/desk plan reviews
type TeamDeskPlanReviewRepository struct {
	db *gorm.DB
}

// NewTeamDeskPlanReviewRepository creates a new review repository
func NewTeamDeskPlanReviewRepository(db *gorm.DB) *TeamDeskPlanReviewRepository {
	return &TeamDeskPlanReviewRepository{db: db}
}

// GetByID retrieves a review with its plan and reviewer
func (r *TeamDeskPlanReviewRepository) GetByID(id uuid.UUID) (*models.TeamDeskPlanReview, error) {
	var review models.TeamDeskPlanReview
	err := r.db.
		Preload("Plan.Organization").
		Preload("Plan.TeamDesk").
		Preload("Reviewer.User").
		First(&review, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &review, nil
}

// GetByPlanID retrieves the reviews of a plan, most recent first
func (r *TeamDeskPlanReviewRepository) GetByPlanID(planID uuid.UUID) ([]models.TeamDeskPlanReview, error) {
	reviews := []models.TeamDeskPlanReview{}
	err := r.db.
		Preload("Reviewer.User").
		Where("plan_id = ?", planID).
		Order("reviewed_at DESC").
		Find(&reviews).Error
	if err != nil {
		return nil, err
	}
	return reviews, nil
}
