package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"strategic-planning-backend/internal/admin"
	apperrors "strategic-planning-backend/internal/errors"
	"strategic-planning-backend/internal/logger"
	"strategic-planning-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AdminService runs the admin panel views for every entity registered on a site
type AdminService struct {
	site      *admin.Site
	repo      repository.AdminRepositoryInterface
	validator *validator.Validate
}

// NewAdminService creates a new admin service
func NewAdminService(site *admin.Site, repo repository.AdminRepositoryInterface, validator *validator.Validate) *AdminService {
	return &AdminService{
		site:      site,
		repo:      repo,
		validator: validator,
	}
}

// AdminListResponse is one page of an entity's list view
type AdminListResponse struct {
	Entity   string         `json:"entity"`
	Columns  []admin.Column `json:"columns"`
	Rows     []admin.Row    `json:"rows"`
	Total    int64          `json:"total"`
	Page     int            `json:"page"`
	PageSize int            `json:"page_size"`
}

// AdminDetailResponse is an entity's detail view
type AdminDetailResponse struct {
	Entity    string                 `json:"entity"`
	ID        uuid.UUID              `json:"id"`
	Row       admin.Row              `json:"row"`
	Fieldsets []admin.DetailFieldset `json:"fieldsets"`
	Inlines   map[string][]admin.Row `json:"inlines,omitempty"`
}

// Entities returns every registered entity
func (s *AdminService) Entities() []*admin.ModelAdmin {
	return s.site.All()
}

// List returns one page of the entity's list view
func (s *AdminService) List(slug string, params admin.ListParams) (*AdminListResponse, error) {
	m, err := s.entity(slug)
	if err != nil {
		return nil, err
	}
	if err := params.Normalize(); err != nil {
		return nil, err
	}

	list, total, err := s.repo.List(m, params)
	if err != nil {
		if isClientError(err) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to list %s: %w", m.VerboseNamePlural, err)
	}

	return &AdminListResponse{
		Entity:   m.Slug,
		Columns:  m.ListDisplay,
		Rows:     m.Rows(list),
		Total:    total,
		Page:     params.Page,
		PageSize: params.PageSize,
	}, nil
}

// Get returns the detail view of one record
func (s *AdminService) Get(slug string, id uuid.UUID) (*AdminDetailResponse, error) {
	m, err := s.entity(slug)
	if err != nil {
		return nil, err
	}
	return s.detail(m, id)
}

// Create decodes data onto a new record and persists it with its selection sets
func (s *AdminService) Create(ctx context.Context, slug string, data map[string]interface{}) (*AdminDetailResponse, error) {
	m, err := s.entity(slug)
	if err != nil {
		return nil, err
	}

	record := m.NewRecord()
	selections, err := s.bind(m, record, data)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Create(m, record, selections); err != nil {
		return nil, writeError(m, err)
	}

	response, err := s.detail(m, recordID(record))
	if err != nil {
		return nil, err
	}
	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"entity": m.Slug,
		"id":     response.ID,
	}).Info("admin record created")
	return response, nil
}

// Update decodes data onto an existing record. Fields absent from data keep their values
// and selection sets absent from data are left untouched.
func (s *AdminService) Update(ctx context.Context, slug string, id uuid.UUID, data map[string]interface{}) (*AdminDetailResponse, error) {
	m, err := s.entity(slug)
	if err != nil {
		return nil, err
	}

	record, err := s.repo.Get(m, id, false)
	if err != nil {
		return nil, recordError(m, err)
	}
	selections, err := s.bind(m, record, data)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Update(m, record, selections); err != nil {
		return nil, writeError(m, err)
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"entity": m.Slug,
		"id":     id,
	}).Info("admin record updated")
	return s.detail(m, id)
}

// Delete removes a record
func (s *AdminService) Delete(ctx context.Context, slug string, id uuid.UUID) error {
	m, err := s.entity(slug)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(m, id); err != nil {
		return recordError(m, err)
	}
	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"entity": m.Slug,
		"id":     id,
	}).Info("admin record deleted")
	return nil
}

// CreateInline creates a child record of the named inline under parentID.
// The inline foreign key always points at the parent, whatever data says.
func (s *AdminService) CreateInline(ctx context.Context, slug string, parentID uuid.UUID, inline string, data map[string]interface{}) (*AdminDetailResponse, error) {
	m, err := s.entity(slug)
	if err != nil {
		return nil, err
	}
	in, ok := m.Inline(inline)
	if !ok {
		return nil, apperrors.ErrInlineNotFound
	}
	if _, err := s.repo.Get(m, parentID, false); err != nil {
		return nil, recordError(m, err)
	}

	if data == nil {
		data = map[string]interface{}{}
	}
	data[in.ForeignKey] = parentID.String()
	return s.Create(ctx, in.Entity, data)
}

func (s *AdminService) entity(slug string) (*admin.ModelAdmin, error) {
	m, ok := s.site.Get(slug)
	if !ok {
		return nil, apperrors.ErrAdminEntityNotFound
	}
	return m, nil
}

// bind applies a request body to record and loads the selection sets it names
func (s *AdminService) bind(m *admin.ModelAdmin, record interface{}, data map[string]interface{}) (map[string]interface{}, error) {
	if data == nil {
		data = map[string]interface{}{}
	}
	m.StripProtected(data)
	if m.Form != nil {
		if err := m.Form.Clean(data); err != nil {
			return nil, err
		}
	}
	if err := m.CheckChoices(data); err != nil {
		return nil, err
	}
	ids, err := m.SplitManyToMany(data)
	if err != nil {
		return nil, err
	}

	encoded, err := json.Marshal(data)
	if err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}
	if err := json.Unmarshal(encoded, record); err != nil {
		return nil, apperrors.NewValidationError("", fmt.Sprintf("invalid body: %v", err))
	}
	if err := s.validator.Struct(record); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	selections := make(map[string]interface{}, len(ids))
	for field, fieldIDs := range ids {
		mm, _ := m.ManyToManyField(field)
		fieldIDs = uniqueIDs(fieldIDs)
		list, found, err := s.repo.LoadSelection(mm, fieldIDs)
		if err != nil {
			return nil, fmt.Errorf("failed to load %s: %w", field, err)
		}
		if found != int64(len(fieldIDs)) {
			return nil, apperrors.NewValidationError(field, fmt.Sprintf("%d of %d ids do not exist", int64(len(fieldIDs))-found, len(fieldIDs)))
		}
		selections[field] = list
	}
	if m.BeforeSave != nil {
		if err := m.BeforeSave(s.repo, record, selections); err != nil {
			return nil, err
		}
	}
	return selections, nil
}

func (s *AdminService) detail(m *admin.ModelAdmin, id uuid.UUID) (*AdminDetailResponse, error) {
	record, err := s.repo.Get(m, id, true)
	if err != nil {
		return nil, recordError(m, err)
	}
	fieldsets, err := m.Detail(record)
	if err != nil {
		return nil, err
	}

	response := &AdminDetailResponse{
		Entity:    m.Slug,
		ID:        id,
		Row:       m.Row(record),
		Fieldsets: fieldsets,
	}
	if len(m.Inlines) > 0 {
		response.Inlines = make(map[string][]admin.Row, len(m.Inlines))
		for _, in := range m.Inlines {
			child, ok := s.site.Get(in.Entity)
			if !ok {
				return nil, fmt.Errorf("inline %s: %w", in.Name, apperrors.ErrAdminEntityNotFound)
			}
			list, err := s.repo.ListInline(child, in.ForeignKey, id)
			if err != nil {
				return nil, fmt.Errorf("failed to load inline %s: %w", in.Name, err)
			}
			response.Inlines[in.Name] = child.Rows(list)
		}
	}
	return response, nil
}

// recordID reads the id gorm assigned to a freshly created record
func recordID(record interface{}) uuid.UUID {
	if r, ok := record.(interface{ GetID() uuid.UUID }); ok {
		return r.GetID()
	}
	return uuid.Nil
}

func recordError(m *admin.ModelAdmin, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperrors.ErrAdminRecordNotFound
	}
	return fmt.Errorf("failed to load %s: %w", m.VerboseName, err)
}

func writeError(m *admin.ModelAdmin, err error) error {
	switch {
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return apperrors.ErrRecordExists
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return apperrors.NewValidationError("", "referenced record does not exist")
	case isClientError(err):
		return err
	}
	return fmt.Errorf("failed to save %s: %w", m.VerboseName, err)
}

func isClientError(err error) bool {
	return apperrors.IsValidation(err) || errors.Is(err, apperrors.ErrInvalidFilter)
}
