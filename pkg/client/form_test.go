package client

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultValues_Precedence(t *testing.T) {
	fields := []FieldDescriptor{
		{Key: "name", Type: FieldText},
		{Key: "type", Type: FieldSelect, DefaultValue: "credit"},
		{Key: "isActive", Type: FieldBoolean},
		{Key: "fee", Type: FieldNumber},
		{Key: "tags", Type: FieldArray},
		{Key: "location", Type: FieldObject},
	}

	values := DefaultValues(fields, map[string]interface{}{"name": "Existing"})

	assert.Equal(t, "Existing", values["name"], "record wins")
	assert.Equal(t, "credit", values["type"], "declared default next")
	assert.Equal(t, false, values["isActive"])
	assert.Equal(t, 0, values["fee"])
	assert.Equal(t, []interface{}{}, values["tags"])
	assert.Equal(t, map[string]interface{}{}, values["location"])
}

func TestDefaultValues_RecordBeatsDeclaredDefault(t *testing.T) {
	fields := []FieldDescriptor{{Key: "type", Type: FieldSelect, DefaultValue: "credit"}}

	values := DefaultValues(fields, map[string]interface{}{"type": "debit"})

	assert.Equal(t, "debit", values["type"])
}

func TestAppendArrayItem(t *testing.T) {
	items := AppendArrayItem(nil, "  coffee  ")
	assert.Equal(t, []string{"coffee"}, items)

	items = AppendArrayItem(items, "   ")
	assert.Equal(t, []string{"coffee"}, items, "blank input is ignored")

	items = AppendArrayItem(items, "tea")
	assert.Equal(t, []string{"coffee", "tea"}, items)
}

func TestRemoveArrayItem(t *testing.T) {
	items := []string{"a", "b", "c"}

	assert.Equal(t, []string{"a", "c"}, RemoveArrayItem(items, 1))
	assert.Equal(t, []string{"a", "b", "c"}, RemoveArrayItem(items, -1))
	assert.Equal(t, []string{"a", "b", "c"}, RemoveArrayItem(items, 3))
}

func TestMergeArrayInput(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, MergeArrayInput([]string{"a"}, "b"))
	assert.Equal(t, []string{"a"}, MergeArrayInput([]string{"a"}, ""))
}

func TestParseObjectInput(t *testing.T) {
	parsed := ParseObjectInput(`{"lat": 1, "lng": 2}`)
	assert.Equal(t, map[string]interface{}{"lat": float64(1), "lng": float64(2)}, parsed)

	assert.Equal(t, "{not json", ParseObjectInput("{not json"), "broken input survives as typed")
	assert.Equal(t, "plain text", ParseObjectInput("plain text"))
}

func TestCleanSubmission(t *testing.T) {
	fields := []FieldDescriptor{
		{Key: "name", Required: true},
		{Key: "country"},
		{Key: "website"},
		{Key: "isActive", Type: FieldBoolean},
	}

	cleaned := CleanSubmission(fields, map[string]interface{}{
		"name":     "Kept",
		"country":  "",
		"website":  nil,
		"isActive": false,
		"stray":    "never declared",
	})

	assert.Equal(t, map[string]interface{}{"name": "Kept", "isActive": false}, cleaned)
}

func TestCleanSubmission_KeepsRequiredEmptyString(t *testing.T) {
	fields := []FieldDescriptor{{Key: "name", Required: true}}

	cleaned := CleanSubmission(fields, map[string]interface{}{"name": ""})

	assert.Equal(t, map[string]interface{}{"name": ""}, cleaned,
		"required fields pass through so the server reports the violation")
}

func TestValidateValue_Required(t *testing.T) {
	field := FieldDescriptor{Key: "name", Label: "Name", Type: FieldText, Required: true}

	assert.Equal(t, []string{"Name is required"}, ValidateValue(field, ""))
	assert.Empty(t, ValidateValue(field, "ok"))
}

func TestValidateValue_OptionalBlankPasses(t *testing.T) {
	field := FieldDescriptor{Key: "country", Label: "Country", Type: FieldText}

	assert.Empty(t, ValidateValue(field, ""))
	assert.Empty(t, ValidateValue(field, nil))
}

func TestValidateValue_TextRules(t *testing.T) {
	field := FieldDescriptor{
		Key: "code", Label: "Code", Type: FieldText,
		Validation: &Rules{Min: floatPtr(2), Max: floatPtr(4)},
	}

	assert.Equal(t, []string{"Code must be at least 2 characters"}, ValidateValue(field, "x"))
	assert.Equal(t, []string{"Code must be at most 4 characters"}, ValidateValue(field, "toolong"))
	assert.Empty(t, ValidateValue(field, "okay"))
}

func TestValidateValue_EmailAndURL(t *testing.T) {
	email := FieldDescriptor{Key: "email", Label: "Email", Type: FieldEmail}
	assert.Equal(t, []string{"Email must be a valid email address"}, ValidateValue(email, "nope"))
	assert.Empty(t, ValidateValue(email, "someone@example.com"))

	url := FieldDescriptor{Key: "website", Label: "Website", Type: FieldURL}
	assert.Equal(t, []string{"Website must be a valid URL"}, ValidateValue(url, "example.com"))
	assert.Empty(t, ValidateValue(url, "https://example.com"))
}

func TestValidateValue_Enum(t *testing.T) {
	field := FieldDescriptor{
		Key: "role", Label: "Role", Type: FieldSelect,
		Validation: &Rules{Enum: []string{"admin", "viewer"}},
	}

	assert.Equal(t, []string{"Role must be one of: admin, viewer"}, ValidateValue(field, "editor"))
	assert.Empty(t, ValidateValue(field, "viewer"))
}

func TestValidateValue_NumberBounds(t *testing.T) {
	field := FieldDescriptor{
		Key: "rating", Label: "Rating", Type: FieldNumber,
		Validation: &Rules{Min: floatPtr(1), Max: floatPtr(5)},
	}

	assert.Equal(t, []string{"Rating must be at least 1"}, ValidateValue(field, 0))
	assert.Equal(t, []string{"Rating must be at most 5"}, ValidateValue(field, 6.5))
	assert.Empty(t, ValidateValue(field, 3))
	assert.Equal(t, []string{"Rating must be a number"}, ValidateValue(field, "three"))
}

func TestValidateValue_BooleanDateArray(t *testing.T) {
	boolean := FieldDescriptor{Key: "isActive", Label: "Is Active", Type: FieldBoolean}
	assert.Empty(t, ValidateValue(boolean, true))
	assert.Equal(t, []string{"Is Active must be true or false"}, ValidateValue(boolean, "yes"))

	date := FieldDescriptor{Key: "validFrom", Label: "Valid From", Type: FieldDate}
	assert.Empty(t, ValidateValue(date, "2026-08-28"))
	assert.Empty(t, ValidateValue(date, "2026-08-28T10:30:00Z"))
	assert.Equal(t, []string{"Valid From must be a valid date"}, ValidateValue(date, "28/08/2026"))

	array := FieldDescriptor{Key: "tags", Label: "Tags", Type: FieldArray}
	assert.Empty(t, ValidateValue(array, []string{"a", "b"}))
	assert.Empty(t, ValidateValue(array, []interface{}{"a", "b"}))
	assert.Equal(t, []string{"Tags must be a list of text entries"}, ValidateValue(array, []interface{}{1, 2}))
}

func floatPtr(v float64) *float64 { return &v }
