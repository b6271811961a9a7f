package admin

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	apperrors "strategic-planning-backend/internal/errors"

	"github.com/google/uuid"
)

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// Date range filter values
const (
	RangeToday     = "today"
	RangePast7Days = "past_7_days"
	RangeThisMonth = "this_month"
	RangeThisYear  = "this_year"
)

// protectedFields are never written from a request body
var protectedFields = []string{"id", "created_at", "updated_at"}

// ListParams are the query options of a list view
type ListParams struct {
	Search   string            `json:"search,omitempty"`
	Filters  map[string]string `json:"filters,omitempty"`
	Order    string            `json:"order,omitempty"`
	Page     int               `json:"page"`
	PageSize int               `json:"page_size"`
}

// Normalize applies paging defaults and rejects out of range values
func (p *ListParams) Normalize() error {
	if p.Page == 0 {
		p.Page = 1
	}
	if p.PageSize == 0 {
		p.PageSize = DefaultPageSize
	}
	if p.Page < 1 || p.PageSize < 1 {
		return apperrors.ErrInvalidPaginationParams
	}
	if p.PageSize > MaxPageSize {
		p.PageSize = MaxPageSize
	}
	return nil
}

// Offset returns the number of rows skipped before the current page
func (p *ListParams) Offset() int {
	return (p.Page - 1) * p.PageSize
}

// SearchTerms splits a search string on whitespace
func SearchTerms(search string) []string {
	return strings.Fields(search)
}

// DateRangeStart returns the lower bound of a date range filter relative to now
func DateRangeStart(value string, now time.Time) (time.Time, error) {
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	switch value {
	case RangeToday:
		return startOfDay, nil
	case RangePast7Days:
		return startOfDay.AddDate(0, 0, -7), nil
	case RangeThisMonth:
		return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()), nil
	case RangeThisYear:
		return time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location()), nil
	}
	return time.Time{}, fmt.Errorf("%w: unknown date range %q", apperrors.ErrInvalidFilter, value)
}

// FilterValue converts a raw query value into the argument bound to the filter column
func FilterValue(f Filter, raw string) (interface{}, error) {
	switch f.Kind {
	case FilterBool:
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: %s expects true or false", apperrors.ErrInvalidFilter, f.Param)
		}
		return b, nil
	case FilterRelated:
		id, err := uuid.Parse(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: %s expects an id", apperrors.ErrInvalidFilter, f.Param)
		}
		return id, nil
	case FilterDate:
		return DateRangeStart(raw, time.Now())
	}
	return raw, nil
}

// OrderClauses resolves an order parameter ("column" or "-column") into SQL order
// expressions, falling back to the configured default ordering.
func (m *ModelAdmin) OrderClauses(order string) ([]string, error) {
	if order == "" {
		if len(m.Ordering) == 0 {
			return []string{m.Table + ".created_at DESC"}, nil
		}
		clauses := make([]string, 0, len(m.Ordering))
		for _, field := range m.Ordering {
			clauses = append(clauses, orderExpression(field))
		}
		return clauses, nil
	}

	name := strings.TrimPrefix(order, "-")
	column, ok := m.Column(name)
	if !ok || !column.Sortable() {
		return nil, apperrors.NewValidationError("order", fmt.Sprintf("cannot order by %q", name))
	}
	if strings.HasPrefix(order, "-") {
		return []string{column.OrderField + " DESC"}, nil
	}
	return []string{column.OrderField + " ASC"}, nil
}

func orderExpression(field string) string {
	if strings.HasPrefix(field, "-") {
		return strings.TrimPrefix(field, "-") + " DESC"
	}
	return field + " ASC"
}

// StripProtected removes identity, timestamp and read-only fields from a request body
func (m *ModelAdmin) StripProtected(data map[string]interface{}) {
	for _, field := range protectedFields {
		delete(data, field)
	}
	for _, field := range m.ReadOnlyFields {
		delete(data, field)
	}
}

// CheckChoices rejects values outside the configured choice lists
func (m *ModelAdmin) CheckChoices(data map[string]interface{}) error {
	for field, allowed := range m.Choices {
		raw, present := data[field]
		if !present {
			continue
		}
		value, ok := raw.(string)
		if !ok || !contains(allowed, value) {
			return apperrors.NewValidationError(field, fmt.Sprintf("%v: %v", apperrors.ErrInvalidChoice, raw))
		}
	}
	return nil
}

// SplitManyToMany removes selection set fields from data and returns their ids.
// Only fields present in data are returned.
func (m *ModelAdmin) SplitManyToMany(data map[string]interface{}) (map[string][]uuid.UUID, error) {
	out := map[string][]uuid.UUID{}
	for _, mm := range m.FilterHorizontal {
		raw, present := data[mm.Field]
		if !present {
			continue
		}
		delete(data, mm.Field)

		ids, err := parseIDList(raw)
		if err != nil {
			return nil, apperrors.NewValidationError(mm.Field, err.Error())
		}
		out[mm.Field] = ids
	}
	return out, nil
}

func parseIDList(raw interface{}) ([]uuid.UUID, error) {
	if raw == nil {
		return []uuid.UUID{}, nil
	}
	items, ok := raw.([]interface{})
	if !ok {
		return nil, fmt.Errorf("must be a list of ids")
	}
	ids := make([]uuid.UUID, 0, len(items))
	for _, item := range items {
		s, ok := item.(string)
		if !ok {
			return nil, fmt.Errorf("must be a list of ids")
		}
		id, err := uuid.Parse(s)
		if err != nil {
			return nil, fmt.Errorf("invalid id %q", s)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// DetailField is one field of the detail view
type DetailField struct {
	Name     string      `json:"name"`
	Value    interface{} `json:"value"`
	ReadOnly bool        `json:"readonly,omitempty"`
	RawID    bool        `json:"raw_id,omitempty"`
}

// DetailFieldset is a fieldset with its values filled in
type DetailFieldset struct {
	Name      string        `json:"name,omitempty"`
	Collapsed bool          `json:"collapsed,omitempty"`
	Fields    []DetailField `json:"fields"`
}

// Detail lays a record out by fieldsets. Entities without fieldsets get a single
// fieldset holding every model field. Selection sets are reduced to their ids.
func (m *ModelAdmin) Detail(record interface{}) ([]DetailFieldset, error) {
	encoded, err := json.Marshal(record)
	if err != nil {
		return nil, fmt.Errorf("failed to encode record: %w", err)
	}
	values := map[string]interface{}{}
	if err := json.Unmarshal(encoded, &values); err != nil {
		return nil, fmt.Errorf("failed to decode record: %w", err)
	}
	for _, mm := range m.FilterHorizontal {
		values[mm.Field] = selectionIDs(values[mm.Field])
	}
	if m.Form != nil {
		for field, value := range m.Form.Initial(record) {
			values[field] = value
		}
	}

	fieldsets := m.Fieldsets
	if len(fieldsets) == 0 {
		fieldsets = []Fieldset{{Fields: defaultFields(values)}}
	}

	out := make([]DetailFieldset, 0, len(fieldsets))
	for _, fs := range fieldsets {
		detail := DetailFieldset{Name: fs.Name, Collapsed: fs.Collapsed, Fields: make([]DetailField, 0, len(fs.Fields))}
		for _, name := range fs.Fields {
			detail.Fields = append(detail.Fields, DetailField{
				Name:     name,
				Value:    values[name],
				ReadOnly: m.IsReadOnly(name) || contains(protectedFields, name),
				RawID:    contains(m.RawIDFields, name),
			})
		}
		out = append(out, detail)
	}
	return out, nil
}

func selectionIDs(raw interface{}) []string {
	ids := []string{}
	items, _ := raw.([]interface{})
	for _, item := range items {
		if obj, ok := item.(map[string]interface{}); ok {
			if id, ok := obj["id"].(string); ok {
				ids = append(ids, id)
			}
		}
	}
	return ids
}

// defaultFields returns the scalar fields of an encoded record in a stable order
func defaultFields(values map[string]interface{}) []string {
	fields := []string{}
	for name, value := range values {
		if name == "id" || name == "created_at" || name == "updated_at" {
			continue
		}
		if _, nested := value.(map[string]interface{}); nested {
			continue
		}
		fields = append(fields, name)
	}
	sort.Strings(fields)
	return fields
}

func contains(list []string, value string) bool {
	for _, item := range list {
		if item == value {
			return true
		}
	}
	return false
}
