package admin

import (
	"fmt"
	"strings"

	"strategic-planning-backend/internal/database/models"
	apperrors "strategic-planning-backend/internal/errors"

	"github.com/google/uuid"
)

// CoreValuesField is the virtual text field organizations edit their core values through
const CoreValuesField = "core_values_text"

// CoreValuesToText joins core values one per line
func CoreValuesToText(values []string) string {
	return strings.Join(values, "\n")
}

// TextToCoreValues splits text into trimmed, non-empty lines. Order, duplicates and
// casing are kept. Blank input yields an empty, non-nil slice.
func TextToCoreValues(text string) []string {
	values := []string{}
	for _, line := range strings.Split(text, "\n") {
		if value := strings.TrimSpace(line); value != "" {
			values = append(values, value)
		}
	}
	return values
}

// OrganizationForm edits Organization.CoreValues as multi-line text
type OrganizationForm struct{}

var _ Form = OrganizationForm{}

// Initial fills core_values_text for persisted organizations that have values
func (OrganizationForm) Initial(record interface{}) map[string]interface{} {
	initial := map[string]interface{}{}
	org, ok := record.(*models.Organization)
	if !ok || org == nil {
		return initial
	}
	if org.ID != uuid.Nil && len(org.CoreValues) > 0 {
		initial[CoreValuesField] = CoreValuesToText(org.CoreValues)
	}
	return initial
}

// Clean replaces core_values_text in data with the parsed core_values list.
// A body without core_values_text is left untouched.
func (OrganizationForm) Clean(data map[string]interface{}) error {
	raw, present := data[CoreValuesField]
	if !present {
		return nil
	}
	delete(data, CoreValuesField)

	switch text := raw.(type) {
	case nil:
		data["core_values"] = []string{}
	case string:
		data["core_values"] = TextToCoreValues(text)
	default:
		return apperrors.NewValidationError(CoreValuesField, fmt.Sprintf("must be a string, got %T", raw))
	}
	return nil
}

// VirtualFields lists core_values_text
func (OrganizationForm) VirtualFields() []string {
	return []string{CoreValuesField}
}
