// Package schema derives declarative field descriptions from the model
// registry. The output drives table, form and detail rendering in the
// dashboard without per-entity UI code.
package schema

import (
	"strings"
	"unicode"

	"admin-service/internal/registry"
)

// FieldType is the closed set of semantic types a field can map to. It is
// the UI/validation category, not the storage type; keep the mapping tables
// below exhaustive when extending it.
type FieldType string

const (
	FieldText     FieldType = "text"
	FieldEmail    FieldType = "email"
	FieldURL      FieldType = "url"
	FieldNumber   FieldType = "number"
	FieldBoolean  FieldType = "boolean"
	FieldDate     FieldType = "date"
	FieldSelect   FieldType = "select"
	FieldArray    FieldType = "array"
	FieldObject   FieldType = "object"
	FieldWeekdays FieldType = "weekdays"
)

// FieldTypes lists every semantic type, for exhaustiveness checks in tests.
var FieldTypes = []FieldType{
	FieldText, FieldEmail, FieldURL, FieldNumber, FieldBoolean,
	FieldDate, FieldSelect, FieldArray, FieldObject, FieldWeekdays,
}

// Scalar reports whether the type carries no structural payload (options,
// array element type or nested fields).
func (t FieldType) Scalar() bool {
	switch t {
	case FieldSelect, FieldArray, FieldObject:
		return false
	}
	return true
}

// Option is one selectable value for a select field.
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// FieldDescriptor is the declarative description of one field: its semantic
// type, validation rules and shape metadata. Exactly one of Options,
// ArrayItemType and Nested may be populated, depending on Type.
type FieldDescriptor struct {
	Key           string            `json:"key"`
	Label         string            `json:"label"`
	Type          FieldType         `json:"type"`
	Required      bool              `json:"required"`
	Placeholder   string            `json:"placeholder,omitempty"`
	Description   string            `json:"description,omitempty"`
	Options       []Option          `json:"options,omitempty"`
	Validation    *registry.Rules   `json:"validation,omitempty"`
	DefaultValue  interface{}       `json:"defaultValue,omitempty"`
	Readonly      bool              `json:"readonly,omitempty"`
	Hidden        bool              `json:"hidden,omitempty"`
	ArrayItemType FieldType         `json:"arrayItemType,omitempty"`
	Nested        []FieldDescriptor `json:"nested,omitempty"`
}

// ModelSchema is the introspected description of one collection.
type ModelSchema struct {
	Name        string            `json:"name"`
	DisplayName string            `json:"displayName"`
	PrimaryKey  string            `json:"primaryKey"`
	Timestamps  bool              `json:"timestamps"`
	Fields      []FieldDescriptor `json:"fields"`
}

// ModelInfo is the listing entry for the model-name endpoint.
type ModelInfo struct {
	Name        string `json:"name"`
	DisplayName string `json:"displayName"`
	Collection  string `json:"collection"`
}

// Label turns a camelCase key into a title-case display string: a space is
// inserted before each capital and the first letter is upper-cased.
func Label(key string) string {
	var b strings.Builder
	for i, r := range key {
		if i == 0 {
			b.WriteRune(unicode.ToUpper(r))
			continue
		}
		if unicode.IsUpper(r) {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
	}
	return strings.TrimSpace(b.String())
}

// Placeholder is the single mapping table from semantic type to input hint.
func Placeholder(t FieldType, key, label string) string {
	lowerKey := strings.ToLower(key)
	lowerLabel := strings.ToLower(label)

	switch t {
	case FieldEmail:
		return "example@domain.com"
	case FieldURL:
		return "https://example.com"
	case FieldNumber:
		if strings.Contains(lowerKey, "phone") {
			return "+1234567890"
		}
		if strings.Contains(lowerKey, "amount") || strings.Contains(lowerKey, "fee") {
			return "0.00"
		}
		return "0"
	case FieldSelect:
		return "Select " + lowerLabel
	case FieldArray:
		return "Enter " + lowerLabel + " and press Enter"
	case FieldBoolean, FieldDate, FieldObject, FieldWeekdays, FieldText:
		return "Enter " + lowerLabel
	}
	return "Enter " + lowerLabel
}
