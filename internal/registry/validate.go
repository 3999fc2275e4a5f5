package registry

import (
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"
)

// FieldError is one validation failure on one field. Field carries the dotted
// path for nested structures, e.g. "location.lat".
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e FieldError) Error() string { return e.Message }

// Validate checks a candidate record against the model's field definitions
// without touching storage. It returns one error per failing field.
func (m *ModelDef) Validate(record map[string]interface{}) []FieldError {
	return validateFields(m.Fields, record, "")
}

// ValidatePartial checks only the keys present in the record, the contract
// for updates: absent fields keep their stored values and are not judged.
func (m *ModelDef) ValidatePartial(record map[string]interface{}) []FieldError {
	var errs []FieldError
	for _, field := range m.Fields {
		value, present := record[field.Name]
		if !present {
			continue
		}
		errs = append(errs, validateField(field, field.Name, value, true)...)
	}
	return errs
}

// ApplyDefaults fills declared default values for top-level fields that are
// absent from the record.
func (m *ModelDef) ApplyDefaults(record map[string]interface{}) {
	for _, field := range m.Fields {
		if field.Options.Default == nil {
			continue
		}
		if value, ok := record[field.Name]; !ok || value == nil {
			record[field.Name] = field.Options.Default
		}
	}
}

func validateFields(fields []FieldDef, record map[string]interface{}, prefix string) []FieldError {
	var errs []FieldError
	for _, field := range fields {
		path := field.Name
		if prefix != "" {
			path = prefix + "." + field.Name
		}
		value, present := record[field.Name]
		errs = append(errs, validateField(field, path, value, present)...)
	}
	return errs
}

func validateField(field FieldDef, path string, value interface{}, present bool) []FieldError {
	rules := field.Rules()

	if isEmpty(value, present) {
		if rules.Required {
			return []FieldError{{Field: path, Message: path + " is required"}}
		}
		return nil
	}

	switch field.Kind {
	case KindString, KindRef:
		s, ok := value.(string)
		if !ok {
			return []FieldError{{Field: path, Message: path + " must be a string"}}
		}
		return validateString(path, s, rules)
	case KindNumber:
		n, ok := toFloat(value)
		if !ok {
			return []FieldError{{Field: path, Message: path + " must be a number"}}
		}
		return validateNumber(path, n, rules)
	case KindBool:
		if _, ok := value.(bool); !ok {
			return []FieldError{{Field: path, Message: path + " must be a boolean"}}
		}
	case KindDate:
		if !isDate(value) {
			return []FieldError{{Field: path, Message: path + " must be a date"}}
		}
	case KindArray:
		items, ok := value.([]interface{})
		if !ok {
			return []FieldError{{Field: path, Message: path + " must be an array"}}
		}
		if len(field.Fields) == 0 {
			return nil
		}
		var errs []FieldError
		for i, item := range items {
			sub, ok := item.(map[string]interface{})
			if !ok {
				errs = append(errs, FieldError{Field: path, Message: fmt.Sprintf("%s[%d] must be an object", path, i)})
				continue
			}
			errs = append(errs, validateFields(field.Fields, sub, fmt.Sprintf("%s[%d]", path, i))...)
		}
		return errs
	case KindObject:
		sub, ok := value.(map[string]interface{})
		if !ok {
			return []FieldError{{Field: path, Message: path + " must be an object"}}
		}
		return validateFields(field.Fields, sub, path)
	case KindMixed:
		// Schemaless by definition.
	}
	return nil
}

func validateString(path, s string, rules Rules) []FieldError {
	var errs []FieldError
	length := utf8.RuneCountInString(s)
	if rules.Min != nil && length < int(*rules.Min) {
		errs = append(errs, FieldError{Field: path, Message: fmt.Sprintf("%s must be at least %d characters", path, int(*rules.Min))})
	}
	if rules.Max != nil && length > int(*rules.Max) {
		errs = append(errs, FieldError{Field: path, Message: fmt.Sprintf("%s must be at most %d characters", path, int(*rules.Max))})
	}
	if rules.Pattern != "" {
		re, err := regexp.Compile(rules.Pattern)
		if err == nil && !re.MatchString(s) {
			errs = append(errs, FieldError{Field: path, Message: path + " has an invalid format"})
		}
	}
	if len(rules.Enum) > 0 && !contains(rules.Enum, s) {
		errs = append(errs, FieldError{
			Field:   path,
			Message: fmt.Sprintf("%s must be one of: %s", path, strings.Join(rules.Enum, ", ")),
		})
	}
	return errs
}

func validateNumber(path string, n float64, rules Rules) []FieldError {
	var errs []FieldError
	if rules.Min != nil && n < *rules.Min {
		errs = append(errs, FieldError{Field: path, Message: fmt.Sprintf("%s must be at least %v", path, *rules.Min)})
	}
	if rules.Max != nil && n > *rules.Max {
		errs = append(errs, FieldError{Field: path, Message: fmt.Sprintf("%s must be at most %v", path, *rules.Max)})
	}
	return errs
}

func isEmpty(value interface{}, present bool) bool {
	if !present || value == nil {
		return true
	}
	s, ok := value.(string)
	return ok && s == ""
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
	}
	return 0, false
}

func isDate(value interface{}) bool {
	switch v := value.(type) {
	case time.Time:
		return true
	case string:
		for _, layout := range []string{time.RFC3339, "2006-01-02"} {
			if _, err := time.Parse(layout, v); err == nil {
				return true
			}
		}
	}
	return false
}

func contains(values []string, target string) bool {
	for _, v := range values {
		if v == target {
			return true
		}
	}
	return false
}
