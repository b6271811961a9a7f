package repository

import (
	"strategic-planning-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var _ UserRepositoryInterface = (*UserRepository)(nil)

// UserRepository handles database operations for users
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create creates a new user
func (r *UserRepository) Create(user *models.User) error {
	return r.db.Create(user).Error
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(id uuid.UUID) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByUsername retrieves a user by username
func (r *UserRepository) GetByUsername(username string) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, "username = ?", username).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

var _ OrganizationUserRepositoryInterface = (*OrganizationUserRepository)(nil)

// OrganizationUserRepository handles database operations for organization memberships
type OrganizationUserRepository struct {
	db *gorm.DB
}

// NewOrganizationUserRepository creates a new organization user repository
func NewOrganizationUserRepository(db *gorm.DB) *OrganizationUserRepository {
	return &OrganizationUserRepository{db: db}
}

// Create creates a new membership
func (r *OrganizationUserRepository) Create(member *models.OrganizationUser) error {
	return r.db.Omit("User", "Organization").Create(member).Error
}

// GetByID retrieves a membership with its user and organization
func (r *OrganizationUserRepository) GetByID(id uuid.UUID) (*models.OrganizationUser, error) {
	var member models.OrganizationUser
	err := r.db.Preload("User").Preload("Organization").First(&member, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &member, nil
}

// GetByOrganizationID retrieves every membership of an organization
func (r *OrganizationUserRepository) GetByOrganizationID(orgID uuid.UUID) ([]models.OrganizationUser, error) {
	var members []models.OrganizationUser
	err := r.db.Preload("User").Where("organization_id = ?", orgID).Order("created_at").Find(&members).Error
	if err != nil {
		return nil, err
	}
	return members, nil
}
