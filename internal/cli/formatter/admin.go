package formatter

import (
	"fmt"
	"reflect"
	"sort"
	"strconv"
	"strings"
	"time"

	"strategic-planning-backend/internal/admin"
	"strategic-planning-backend/internal/seed"
	"strategic-planning-backend/internal/service"

	"github.com/charmbracelet/lipgloss"
)

const timestampLayout = "2006-01-02 15:04"

// FormatCell renders one admin row value. Absent values render as the N/A sentinel.
func FormatCell(value interface{}) string {
	if value == nil {
		return StyleDim.Render(admin.NotAvailable)
	}
	if rv := reflect.ValueOf(value); rv.Kind() == reflect.Ptr {
		if rv.IsNil() {
			return StyleDim.Render(admin.NotAvailable)
		}
		return FormatCell(rv.Elem().Interface())
	}

	switch v := value.(type) {
	case string:
		if v == admin.NotAvailable {
			return StyleDim.Render(v)
		}
		return v
	case bool:
		if v {
			return "yes"
		}
		return "no"
	case time.Time:
		if v.IsZero() {
			return StyleDim.Render(admin.NotAvailable)
		}
		return v.Format(timestampLayout)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case []interface{}:
		parts := make([]string, len(v))
		for i, item := range v {
			parts[i] = FormatCell(item)
		}
		return strings.Join(parts, ", ")
	case fmt.Stringer:
		return v.String()
	}

	rv := reflect.ValueOf(value)
	if (rv.Kind() == reflect.Slice || rv.Kind() == reflect.Map) && rv.Len() == 0 {
		return ""
	}
	return fmt.Sprint(value)
}

// FormatAdminList renders one page of an admin list view with a paging footer
func FormatAdminList(resp *service.AdminListResponse) string {
	headers := make([]string, len(resp.Columns))
	for i, c := range resp.Columns {
		headers[i] = c.Label
	}

	rows := make([][]string, 0, len(resp.Rows))
	for _, r := range resp.Rows {
		cells := make([]string, len(resp.Columns))
		for i, c := range resp.Columns {
			cell := FormatCell(r[c.Name])
			if c.Name == "status" {
				cell = StatusStyle(cell).Render(cell)
			}
			cells[i] = cell
		}
		rows = append(rows, cells)
	}

	var b strings.Builder
	if len(rows) == 0 {
		b.WriteString(StyleDim.Render(fmt.Sprintf("No %s found.", resp.Entity)))
		b.WriteString("\n")
		return b.String()
	}
	b.WriteString(RenderTable(headers, rows))
	b.WriteString(StyleDim.Render(fmt.Sprintf("Page %d of %d (%d total)", resp.Page, pageCount(resp.Total, resp.PageSize), resp.Total)))
	b.WriteString("\n")
	return b.String()
}

func pageCount(total int64, pageSize int) int64 {
	if pageSize <= 0 || total == 0 {
		return 1
	}
	return (total + int64(pageSize) - 1) / int64(pageSize)
}

// FormatAdminDetail renders a detail view as one block of aligned fields per fieldset
func FormatAdminDetail(resp *service.AdminDetailResponse) string {
	var b strings.Builder
	b.WriteString(StyleBold.Render(resp.Entity))
	b.WriteString(" ")
	b.WriteString(StyleDim.Render(resp.ID.String()))
	b.WriteString("\n")

	for _, fs := range resp.Fieldsets {
		name := fs.Name
		if name == "" {
			name = "General"
		}
		b.WriteString("\n")
		b.WriteString(StyleHeader.Render(name))
		b.WriteString("\n")

		width := 0
		for _, f := range fs.Fields {
			if w := lipgloss.Width(f.Name); w > width {
				width = w
			}
		}
		for _, f := range fs.Fields {
			b.WriteString("  ")
			b.WriteString(StyleDim.Render(f.Name))
			b.WriteString(strings.Repeat(" ", width-lipgloss.Width(f.Name)+colGap))
			b.WriteString(FormatCell(f.Value))
			b.WriteString("\n")
		}
	}

	inlines := make([]string, 0, len(resp.Inlines))
	for name := range resp.Inlines {
		inlines = append(inlines, name)
	}
	sort.Strings(inlines)
	for _, name := range inlines {
		b.WriteString("\n")
		b.WriteString(StyleHeader.Render(name))
		b.WriteString(StyleDim.Render(fmt.Sprintf(" (%d)", len(resp.Inlines[name]))))
		b.WriteString("\n")
	}
	return b.String()
}

// FormatEntities renders the admin index: every entity with its search and filter options
func FormatEntities(entities []*admin.ModelAdmin) string {
	rows := make([][]string, 0, len(entities))
	for _, m := range entities {
		filters := make([]string, 0, len(m.ListFilter))
		for _, f := range m.ListFilter {
			filters = append(filters, f.Param)
		}
		searchable := "no"
		if m.Searchable() {
			searchable = "yes"
		}
		rows = append(rows, []string{
			StyleBold.Render(m.Slug),
			m.VerboseNamePlural,
			searchable,
			strings.Join(filters, ", "),
		})
	}
	return RenderTable([]string{"ENTITY", "NAME", "SEARCH", "FILTERS"}, rows)
}

// FormatSeedReport renders the created and total counts of a seed run
func FormatSeedReport(report *seed.Report) string {
	rows := make([][]string, 0, len(report.Counts))
	for _, c := range report.Counts {
		created := strconv.Itoa(c.Created)
		if c.Created > 0 {
			created = StyleGreen.Render(created)
		}
		rows = append(rows, []string{c.Kind, created, strconv.Itoa(c.Total)})
	}
	if len(rows) == 0 {
		return StyleDim.Render("No reference data found.") + "\n"
	}
	return RenderTable([]string{"KIND", "CREATED", "TOTAL"}, rows)
}
