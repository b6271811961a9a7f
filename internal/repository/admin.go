package repository

import (
	"fmt"
	"reflect"
	"strings"

	"strategic-planning-backend/internal/admin"
	apperrors "strategic-planning-backend/internal/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var _ AdminRepositoryInterface = (*AdminRepository)(nil)

// AdminRepository runs the generic queries behind the admin panel
type AdminRepository struct {
	db *gorm.DB
}

// NewAdminRepository creates a new admin repository
func NewAdminRepository(db *gorm.DB) *AdminRepository {
	return &AdminRepository{db: db}
}

// listQuery builds the joined, searched and filtered base query of a list view
func (r *AdminRepository) listQuery(m *admin.ModelAdmin, params admin.ListParams) (*gorm.DB, error) {
	query := r.db.Model(m.NewRecord())
	for _, join := range m.Joins {
		query = query.Joins(join)
	}

	if m.Searchable() {
		for _, term := range admin.SearchTerms(params.Search) {
			pattern := "%" + strings.ToLower(term) + "%"
			group := r.db.Where(fmt.Sprintf("LOWER(%s) LIKE ?", m.SearchFields[0]), pattern)
			for _, field := range m.SearchFields[1:] {
				group = group.Or(fmt.Sprintf("LOWER(%s) LIKE ?", field), pattern)
			}
			query = query.Where(group)
		}
	}

	for param, raw := range params.Filters {
		if raw == "" {
			continue
		}
		f, ok := m.Filter(param)
		if !ok {
			return nil, fmt.Errorf("%w: unknown filter %q", apperrors.ErrInvalidFilter, param)
		}
		value, err := admin.FilterValue(f, raw)
		if err != nil {
			return nil, err
		}
		if f.Kind == admin.FilterDate {
			query = query.Where(fmt.Sprintf("%s >= ?", f.Column), value)
		} else {
			query = query.Where(fmt.Sprintf("%s = ?", f.Column), value)
		}
	}
	return query, nil
}

// List returns one page of records (a pointer to a slice of the entity's model) and the total match count
func (r *AdminRepository) List(m *admin.ModelAdmin, params admin.ListParams) (interface{}, int64, error) {
	if err := params.Normalize(); err != nil {
		return nil, 0, err
	}
	order, err := m.OrderClauses(params.Order)
	if err != nil {
		return nil, 0, err
	}

	var total int64
	countQuery, err := r.listQuery(m, params)
	if err != nil {
		return nil, 0, err
	}
	if err := countQuery.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query, err := r.listQuery(m, params)
	if err != nil {
		return nil, 0, err
	}
	query = query.Select(m.Table + ".*")
	for _, o := range order {
		query = query.Order(o)
	}
	for _, p := range m.Preload {
		query = query.Preload(p)
	}

	list := m.NewList()
	if err := query.Limit(params.PageSize).Offset(params.Offset()).Find(list).Error; err != nil {
		return nil, 0, err
	}
	return list, total, nil
}

// Get retrieves one record; with preload set, its relations and selection sets are loaded too
func (r *AdminRepository) Get(m *admin.ModelAdmin, id uuid.UUID, preload bool) (interface{}, error) {
	query := r.db
	if preload {
		for _, p := range m.Preload {
			query = query.Preload(p)
		}
		for _, mm := range m.FilterHorizontal {
			query = query.Preload(mm.Association)
		}
	}
	record := m.NewRecord()
	if err := query.First(record, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return record, nil
}

// Create inserts record and binds its selection sets in one transaction.
// selections maps a selection field to the rows returned by LoadSelection.
func (r *AdminRepository) Create(m *admin.ModelAdmin, record interface{}, selections map[string]interface{}) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(record).Error; err != nil {
			return err
		}
		return r.replaceSelections(tx, m, record, selections)
	})
}

// Update saves record and replaces the given selection sets in one transaction
func (r *AdminRepository) Update(m *admin.ModelAdmin, record interface{}, selections map[string]interface{}) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Save(record).Error; err != nil {
			return err
		}
		return r.replaceSelections(tx, m, record, selections)
	})
}

func (r *AdminRepository) replaceSelections(tx *gorm.DB, m *admin.ModelAdmin, record interface{}, selections map[string]interface{}) error {
	for field, values := range selections {
		mm, ok := m.ManyToManyField(field)
		if !ok {
			return apperrors.NewValidationError(field, "not a selection field")
		}
		if err := replaceAssociation(tx, record, mm.Association, values, sliceLen(values)); err != nil {
			return fmt.Errorf("replace %s: %w", field, err)
		}
	}
	return nil
}

// Delete deletes a record by ID
func (r *AdminRepository) Delete(m *admin.ModelAdmin, id uuid.UUID) error {
	result := r.db.Delete(m.NewRecord(), "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ListInline returns the child records pointing at parentID through foreignKey
func (r *AdminRepository) ListInline(child *admin.ModelAdmin, foreignKey string, parentID uuid.UUID) (interface{}, error) {
	query := r.db.Where(fmt.Sprintf("%s = ?", foreignKey), parentID)
	for _, p := range child.Preload {
		query = query.Preload(p)
	}
	list := child.NewList()
	if err := query.Order("created_at").Find(list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

// Exists reports whether any row of table matches query
func (r *AdminRepository) Exists(table, query string, args ...interface{}) (bool, error) {
	var count int64
	if err := r.db.Table(table).Where(query, args...).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// LoadSelection fetches the target rows of a selection set and reports how many were found
func (r *AdminRepository) LoadSelection(mm admin.ManyToMany, ids []uuid.UUID) (interface{}, int64, error) {
	list := mm.NewTargetList()
	if len(ids) == 0 {
		return list, 0, nil
	}
	if err := r.db.Where("id IN ?", ids).Find(list).Error; err != nil {
		return nil, 0, err
	}
	return list, int64(sliceLen(list)), nil
}

// sliceLen returns the length of a slice or pointer to slice, 0 for anything else
func sliceLen(v interface{}) int {
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Ptr {
		if rv.IsNil() {
			return 0
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Slice {
		return 0
	}
	return rv.Len()
}
