package client

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func bankSchema() ModelSchema {
	return ModelSchema{
		Name:        "bank",
		DisplayName: "Bank",
		PrimaryKey:  "id",
		Timestamps:  true,
		Fields: []FieldDescriptor{
			{Key: "code", Type: FieldText},
			{Key: "name", Type: FieldText, Required: true},
			{Key: "description", Type: FieldText},
			{Key: "email", Type: FieldEmail},
			{Key: "location", Type: FieldObject},
			{Key: "tags", Type: FieldArray},
			{Key: "ownerId", Type: FieldText},
			{Key: "secret", Type: FieldText, Hidden: true},
			{Key: "createdAt", Type: FieldDate, Readonly: true},
			{Key: "updatedAt", Type: FieldDate, Readonly: true},
		},
	}
}

func keys(fields []FieldDescriptor) []string {
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		out = append(out, f.Key)
	}
	return out
}

func TestTableFields_OrderingBands(t *testing.T) {
	columns := keys(TableFields(bankSchema()))

	// Identifying columns first, regular ones next, metadata last.
	assert.Equal(t, []string{"name", "email", "code", "ownerId", "createdAt", "updatedAt"}, columns)
}

func TestTableFields_PriorityBandUsesFixedOrder(t *testing.T) {
	schema := ModelSchema{Fields: []FieldDescriptor{
		{Key: "status", Type: FieldText},
		{Key: "title", Type: FieldText},
		{Key: "rating", Type: FieldNumber},
	}}

	assert.Equal(t, []string{"title", "status", "rating"}, keys(TableFields(schema)),
		"declaration order does not reorder the priority band")
}

func TestTableFields_DropsStructuredAndExcludedKeys(t *testing.T) {
	columns := keys(TableFields(bankSchema()))

	assert.NotContains(t, columns, "location")
	assert.NotContains(t, columns, "tags")
	assert.NotContains(t, columns, "description")
	assert.NotContains(t, columns, "secret")
}

func TestFormFields(t *testing.T) {
	fields := keys(FormFields(bankSchema()))

	assert.Equal(t, []string{"code", "name", "description", "email", "location", "tags"}, fields)
}

func TestDetailFields(t *testing.T) {
	fields := keys(DetailFields(bankSchema()))

	assert.Contains(t, fields, "description")
	assert.Contains(t, fields, "createdAt")
	assert.NotContains(t, fields, "secret")
	assert.NotContains(t, fields, "id")
}

func TestSortable(t *testing.T) {
	assert.True(t, Sortable(FieldDescriptor{Type: FieldText}))
	assert.True(t, Sortable(FieldDescriptor{Type: FieldDate}))
	assert.False(t, Sortable(FieldDescriptor{Type: FieldObject}))
	assert.False(t, Sortable(FieldDescriptor{Type: FieldArray}))
}

func TestVisible(t *testing.T) {
	assert.True(t, Visible(FieldDescriptor{Key: "name"}))
	assert.False(t, Visible(FieldDescriptor{Key: "name", Hidden: true}))
	assert.False(t, Visible(FieldDescriptor{Key: "passwordHash"}))
	assert.False(t, Visible(FieldDescriptor{Key: "refreshToken"}))
}
