// Package client is the Go consumer of the admin-service schema API. It
// fetches introspected model schemas and derives the concrete field sets a
// dashboard needs: table columns, form inputs and detail rows. The types
// mirror the server's wire format so the package stays importable without
// pulling in the service internals.
package client

// FieldType is the semantic type of one field, as published by the server.
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

// Option is one selectable value for a select field.
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// Rules is the merged validation contract for one field.
type Rules struct {
	Required bool     `json:"required,omitempty"`
	Min      *float64 `json:"min,omitempty"`
	Max      *float64 `json:"max,omitempty"`
	Pattern  string   `json:"pattern,omitempty"`
	Enum     []string `json:"enum,omitempty"`
}

// FieldDescriptor mirrors the server's declarative field description.
type FieldDescriptor struct {
	Key           string            `json:"key"`
	Label         string            `json:"label"`
	Type          FieldType         `json:"type"`
	Required      bool              `json:"required"`
	Placeholder   string            `json:"placeholder,omitempty"`
	Description   string            `json:"description,omitempty"`
	Options       []Option          `json:"options,omitempty"`
	Validation    *Rules            `json:"validation,omitempty"`
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

// Field looks up a descriptor by key.
func (s ModelSchema) Field(key string) (FieldDescriptor, bool) {
	for _, f := range s.Fields {
		if f.Key == key {
			return f, true
		}
	}
	return FieldDescriptor{}, false
}

// ModelInfo is one entry of the model-name listing.
type ModelInfo struct {
	Name        string `json:"name"`
	DisplayName string `json:"displayName"`
	Collection  string `json:"collection"`
}
