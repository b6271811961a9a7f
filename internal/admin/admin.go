// Package admin holds the declarative configuration of the administrative panel:
// which columns each entity lists, how it is filtered, searched, ordered and edited.
package admin

import (
	"sort"
)

// FilterKind controls how a list filter value is interpreted
type FilterKind string

const (
	FilterExact   FilterKind = "exact"
	FilterBool    FilterKind = "bool"
	FilterDate    FilterKind = "date"
	FilterRelated FilterKind = "related"
)

// Row is one rendered list row keyed by column name
type Row map[string]interface{}

// Column is a list column. OrderField is the SQL expression used when sorting by it;
// columns without one cannot be sorted.
type Column struct {
	Name       string `json:"name"`
	Label      string `json:"label"`
	OrderField string `json:"-"`
}

// Sortable reports whether the list can be ordered by this column
func (c Column) Sortable() bool {
	return c.OrderField != ""
}

// Filter is a sidebar filter exposed as a query parameter
type Filter struct {
	Param  string     `json:"param"`
	Column string     `json:"-"`
	Kind   FilterKind `json:"kind"`
}

// Fieldset groups fields on the detail view
type Fieldset struct {
	Name      string   `json:"name,omitempty"`
	Fields    []string `json:"fields"`
	Collapsed bool     `json:"collapsed,omitempty"`
}

// Inline is a child entity edited from its parent's detail view
type Inline struct {
	Name       string   `json:"name"`
	Entity     string   `json:"entity"`
	ForeignKey string   `json:"foreign_key"`
	Fields     []string `json:"fields"`
	Extra      int      `json:"extra"`
}

// ManyToMany describes a selection set edited as a list of ids
type ManyToMany struct {
	Field       string `json:"field"`
	Association string `json:"-"`
	Target      string `json:"target"`

	newList func() interface{}
}

// NewTargetList returns a pointer to an empty slice of the selected model
func (mm ManyToMany) NewTargetList() interface{} {
	return mm.newList()
}

// Selection binds a selection set to its target model T
func Selection[T any](field, association, target string) ManyToMany {
	return ManyToMany{
		Field:       field,
		Association: association,
		Target:      target,
		newList:     func() interface{} { return &[]T{} },
	}
}

// Form customizes how the detail view is loaded and how a submitted body is cleaned
type Form interface {
	// Initial returns virtual fields shown when editing record
	Initial(record interface{}) map[string]interface{}
	// Clean rewrites a submitted body in place before it is applied to a record
	Clean(data map[string]interface{}) error
	// VirtualFields lists the fields the form adds on top of the model
	VirtualFields() []string
}

// Lookup answers existence queries against the store while a write is checked
type Lookup interface {
	Exists(table, query string, args ...interface{}) (bool, error)
}

// BeforeSave runs once a body is bound to record and its selection sets are loaded.
// It may adjust record or reject the write.
type BeforeSave func(lookup Lookup, record interface{}, selections map[string]interface{}) error

// ModelAdmin is the admin configuration of one entity
type ModelAdmin struct {
	Slug              string              `json:"slug"`
	VerboseName       string              `json:"verbose_name"`
	VerboseNamePlural string              `json:"verbose_name_plural"`
	Table             string              `json:"table"`
	ListDisplay       []Column            `json:"list_display"`
	ListFilter        []Filter            `json:"list_filter,omitempty"`
	SearchFields      []string            `json:"-"`
	Ordering          []string            `json:"-"`
	Joins             []string            `json:"-"`
	Preload           []string            `json:"-"`
	Fieldsets         []Fieldset          `json:"fieldsets,omitempty"`
	Inlines           []Inline            `json:"inlines,omitempty"`
	ReadOnlyFields    []string            `json:"readonly_fields,omitempty"`
	RawIDFields       []string            `json:"raw_id_fields,omitempty"`
	FilterHorizontal  []ManyToMany        `json:"filter_horizontal,omitempty"`
	Choices           map[string][]string `json:"choices,omitempty"`
	Form              Form                `json:"-"`
	BeforeSave        BeforeSave          `json:"-"`

	newRecord func() interface{}
	newList   func() interface{}
	rows      func(list interface{}) []Row
	row       func(record interface{}) Row
}

// Searchable reports whether the entity has search fields configured
func (m *ModelAdmin) Searchable() bool {
	return len(m.SearchFields) > 0
}

// NewRecord returns a pointer to a zero value of the entity's model
func (m *ModelAdmin) NewRecord() interface{} {
	return m.newRecord()
}

// NewList returns a pointer to an empty slice of the entity's model
func (m *ModelAdmin) NewList() interface{} {
	return m.newList()
}

// Rows renders a list previously obtained from NewList
func (m *ModelAdmin) Rows(list interface{}) []Row {
	return m.rows(list)
}

// Row renders a single record previously obtained from NewRecord
func (m *ModelAdmin) Row(record interface{}) Row {
	return m.row(record)
}

// Column returns the list column with the given name
func (m *ModelAdmin) Column(name string) (Column, bool) {
	for _, c := range m.ListDisplay {
		if c.Name == name {
			return c, true
		}
	}
	return Column{}, false
}

// Filter returns the list filter bound to the given query parameter
func (m *ModelAdmin) Filter(param string) (Filter, bool) {
	for _, f := range m.ListFilter {
		if f.Param == param {
			return f, true
		}
	}
	return Filter{}, false
}

// Inline returns the inline with the given name
func (m *ModelAdmin) Inline(name string) (Inline, bool) {
	for _, in := range m.Inlines {
		if in.Name == name {
			return in, true
		}
	}
	return Inline{}, false
}

// ManyToManyField returns the selection set bound to the given body field
func (m *ModelAdmin) ManyToManyField(field string) (ManyToMany, bool) {
	for _, mm := range m.FilterHorizontal {
		if mm.Field == field {
			return mm, true
		}
	}
	return ManyToMany{}, false
}

// IsReadOnly reports whether field may not be written through the admin
func (m *ModelAdmin) IsReadOnly(field string) bool {
	for _, f := range m.ReadOnlyFields {
		if f == field {
			return true
		}
	}
	return false
}

// Entity binds the typed model T to an admin configuration. row renders one record.
func Entity[T any](m ModelAdmin, row func(*T) Row) *ModelAdmin {
	m.newRecord = func() interface{} { return new(T) }
	m.newList = func() interface{} { return &[]T{} }
	m.row = func(record interface{}) Row { return row(record.(*T)) }
	m.rows = func(list interface{}) []Row {
		items := *list.(*[]T)
		out := make([]Row, 0, len(items))
		for i := range items {
			out = append(out, row(&items[i]))
		}
		return out
	}
	return &m
}

// Site is a registry of admin entities
type Site struct {
	entities map[string]*ModelAdmin
}

// NewSite creates an empty site
func NewSite() *Site {
	return &Site{entities: make(map[string]*ModelAdmin)}
}

// Register adds an entity, replacing any previous one with the same slug
func (s *Site) Register(m *ModelAdmin) {
	s.entities[m.Slug] = m
}

// Get returns the entity registered under slug
func (s *Site) Get(slug string) (*ModelAdmin, bool) {
	m, ok := s.entities[slug]
	return m, ok
}

// All returns every registered entity sorted by slug
func (s *Site) All() []*ModelAdmin {
	out := make([]*ModelAdmin, 0, len(s.entities))
	for _, m := range s.entities {
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Slug < out[j].Slug })
	return out
}
