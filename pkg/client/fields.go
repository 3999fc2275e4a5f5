package client

import "strings"

// priorityColumns lead the table view when present, in this order.
var priorityColumns = []string{"name", "title", "email", "status"}

// metadataColumns trail the table view, after every regular field.
var metadataColumns = []string{"createdAt", "updatedAt", "deletedAt", "createdBy", "updatedBy", "deletedBy"}

// tableExcluded keys never show up as table columns.
var tableExcluded = map[string]bool{
	"id":          true,
	"deleted":     true,
	"description": true,
	"content":     true,
	"metadata":    true,
}

// TableFields derives the table columns for a schema: identifying fields
// first, then the regular fields in declaration order, then record metadata.
// Structured fields do not render in a cell and are dropped.
func TableFields(schema ModelSchema) []FieldDescriptor {
	eligible := func(field FieldDescriptor) bool {
		if field.Hidden || tableExcluded[field.Key] {
			return false
		}
		return field.Type != FieldObject && field.Type != FieldArray
	}

	var columns []FieldDescriptor
	// The leading and trailing bands keep their fixed order regardless of
	// where the fields sit in the schema.
	for _, key := range priorityColumns {
		if field, ok := schema.Field(key); ok && eligible(field) {
			columns = append(columns, field)
		}
	}
	for _, field := range schema.Fields {
		if !eligible(field) || contains(priorityColumns, field.Key) || contains(metadataColumns, field.Key) {
			continue
		}
		columns = append(columns, field)
	}
	for _, key := range metadataColumns {
		if field, ok := schema.Field(key); ok && eligible(field) {
			columns = append(columns, field)
		}
	}
	return columns
}

// FormFields derives the editable inputs for a schema. Bookkeeping fields,
// foreign-key style "...Id" fields, readonly and hidden fields are excluded.
func FormFields(schema ModelSchema) []FieldDescriptor {
	var fields []FieldDescriptor
	for _, field := range schema.Fields {
		if field.Readonly || field.Hidden {
			continue
		}
		switch field.Key {
		case "id", "deleted", "createdAt", "updatedAt":
			continue
		}
		if strings.HasSuffix(field.Key, "Id") {
			continue
		}
		fields = append(fields, field)
	}
	return fields
}

// DetailFields derives the read view: everything except hidden fields and
// the raw identity, which the detail page shows in its header.
func DetailFields(schema ModelSchema) []FieldDescriptor {
	var fields []FieldDescriptor
	for _, field := range schema.Fields {
		if field.Hidden || field.Key == "id" || field.Key == "deleted" {
			continue
		}
		fields = append(fields, field)
	}
	return fields
}

// Sortable reports whether the field can back a sort control. Structured
// payloads have no single comparable value.
func Sortable(field FieldDescriptor) bool {
	return field.Type != FieldObject && field.Type != FieldArray
}

// Visible reports whether the field may be rendered at all. Secret-bearing
// keys stay out of every view even when the server marks them visible.
func Visible(field FieldDescriptor) bool {
	if field.Hidden {
		return false
	}
	key := strings.ToLower(field.Key)
	return !strings.Contains(key, "password") && !strings.Contains(key, "token")
}

func contains(values []string, target string) bool {
	for _, v := range values {
		if v == target {
			return true
		}
	}
	return false
}
