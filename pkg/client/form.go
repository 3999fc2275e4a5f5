package client

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"
)

// DefaultValues shapes the initial form state for the given fields. An
// existing record wins, then the descriptor's declared default, then a
// type-appropriate zero value so every input is controlled from the start.
func DefaultValues(fields []FieldDescriptor, record map[string]interface{}) map[string]interface{} {
	values := make(map[string]interface{}, len(fields))
	for _, field := range fields {
		if record != nil {
			if v, ok := record[field.Key]; ok && v != nil {
				values[field.Key] = v
				continue
			}
		}
		if field.DefaultValue != nil {
			values[field.Key] = field.DefaultValue
			continue
		}
		values[field.Key] = zeroValue(field)
	}
	return values
}

func zeroValue(field FieldDescriptor) interface{} {
	switch field.Type {
	case FieldBoolean:
		return false
	case FieldNumber:
		return 0
	case FieldArray:
		return []interface{}{}
	case FieldObject, FieldWeekdays:
		return map[string]interface{}{}
	}
	return ""
}

// AppendArrayItem adds one entry to an array editor's items. The input is
// trimmed; empty input leaves the list unchanged.
func AppendArrayItem(items []string, input string) []string {
	input = strings.TrimSpace(input)
	if input == "" {
		return items
	}
	return append(items, input)
}

// RemoveArrayItem drops the entry at index. Out-of-range indexes are a no-op.
func RemoveArrayItem(items []string, index int) []string {
	if index < 0 || index >= len(items) {
		return items
	}
	return append(items[:index:index], items[index+1:]...)
}

// MergeArrayInput folds text still sitting in the array editor's input box
// into the item list, the behavior expected when the form is submitted
// before the user pressed enter.
func MergeArrayInput(items []string, pending string) []string {
	return AppendArrayItem(items, pending)
}

// ParseObjectInput interprets free-text input for an object field. Valid
// JSON objects are structured; anything else is kept as the raw string so
// the user's typing is never destroyed.
func ParseObjectInput(raw string) interface{} {
	trimmed := strings.TrimSpace(raw)
	if strings.HasPrefix(trimmed, "{") {
		var obj map[string]interface{}
		if err := json.Unmarshal([]byte(trimmed), &obj); err == nil {
			return obj
		}
	}
	return raw
}

// CleanSubmission strips the values a server round-trip should not carry:
// optional fields left at an empty string or nil are dropped, so the server
// treats them as absent instead of storing empty markers.
func CleanSubmission(fields []FieldDescriptor, values map[string]interface{}) map[string]interface{} {
	cleaned := make(map[string]interface{}, len(values))
	for _, field := range fields {
		value, ok := values[field.Key]
		if !ok {
			continue
		}
		if !field.Required && isBlank(value) {
			continue
		}
		cleaned[field.Key] = value
	}
	return cleaned
}

func isBlank(value interface{}) bool {
	if value == nil {
		return true
	}
	s, ok := value.(string)
	return ok && strings.TrimSpace(s) == ""
}

// ValidateValue applies the field's published contract to a candidate value
// before submission, mirroring what the server will enforce. It returns one
// message per violated rule.
func ValidateValue(field FieldDescriptor, value interface{}) []string {
	if isBlank(value) {
		if field.Required {
			return []string{field.Label + " is required"}
		}
		return nil
	}

	rules := field.Validation
	if rules == nil {
		rules = &Rules{}
	}

	var errs []string
	switch field.Type {
	case FieldText, FieldEmail, FieldURL, FieldSelect:
		s, ok := value.(string)
		if !ok {
			return []string{field.Label + " must be text"}
		}
		errs = append(errs, validateText(field, s, rules)...)
	case FieldNumber:
		n, ok := toFloat(value)
		if !ok {
			return []string{field.Label + " must be a number"}
		}
		if rules.Min != nil && n < *rules.Min {
			errs = append(errs, fmt.Sprintf("%s must be at least %v", field.Label, *rules.Min))
		}
		if rules.Max != nil && n > *rules.Max {
			errs = append(errs, fmt.Sprintf("%s must be at most %v", field.Label, *rules.Max))
		}
	case FieldBoolean:
		if _, ok := value.(bool); !ok {
			errs = append(errs, field.Label+" must be true or false")
		}
	case FieldDate:
		if !isDateInput(value) {
			errs = append(errs, field.Label+" must be a valid date")
		}
	case FieldArray:
		if !isStringSequence(value) {
			errs = append(errs, field.Label+" must be a list of text entries")
		}
	}
	return errs
}

func isDateInput(value interface{}) bool {
	s, ok := value.(string)
	if !ok {
		return false
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if _, err := time.Parse(layout, s); err == nil {
			return true
		}
	}
	return false
}

func isStringSequence(value interface{}) bool {
	switch items := value.(type) {
	case []string:
		return true
	case []interface{}:
		for _, item := range items {
			if _, ok := item.(string); !ok {
				return false
			}
		}
		return true
	}
	return false
}

var (
	emailInput = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
	urlInput   = regexp.MustCompile(`^https?://\S+$`)
)

func validateText(field FieldDescriptor, s string, rules *Rules) []string {
	var errs []string
	length := utf8.RuneCountInString(s)
	if rules.Min != nil && length < int(*rules.Min) {
		errs = append(errs, fmt.Sprintf("%s must be at least %d characters", field.Label, int(*rules.Min)))
	}
	if rules.Max != nil && length > int(*rules.Max) {
		errs = append(errs, fmt.Sprintf("%s must be at most %d characters", field.Label, int(*rules.Max)))
	}
	if field.Type == FieldEmail && !emailInput.MatchString(s) {
		errs = append(errs, field.Label+" must be a valid email address")
	}
	if field.Type == FieldURL && !urlInput.MatchString(s) {
		errs = append(errs, field.Label+" must be a valid URL")
	}
	if rules.Pattern != "" {
		if re, err := regexp.Compile(rules.Pattern); err == nil && !re.MatchString(s) {
			errs = append(errs, field.Label+" has an invalid format")
		}
	}
	if len(rules.Enum) > 0 && !contains(rules.Enum, s) {
		errs = append(errs, fmt.Sprintf("%s must be one of: %s", field.Label, strings.Join(rules.Enum, ", ")))
	}
	return errs
}

func toFloat(value interface{}) (float64, bool) {
	switch n := value.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	}
	return 0, false
}
