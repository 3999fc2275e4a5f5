// Package registry holds the model definitions the rest of the service is
// driven by: the stored-field metadata that schema introspection walks and
// that record validation enforces. Definitions are declared at startup and
// read-only afterwards.
package registry

import (
	"fmt"
	"sort"
	"strings"
)

// Kind is the storage-level type of a field, as distinct from the semantic
// type the UI maps it to.
type Kind string

const (
	KindString Kind = "string"
	KindNumber Kind = "number"
	KindBool   Kind = "boolean"
	KindDate   Kind = "date"
	KindArray  Kind = "array"
	KindRef    Kind = "ref"    // reference to another collection's identity
	KindMixed  Kind = "mixed"  // schemaless payload
	KindObject Kind = "object" // embedded sub-structure with its own fields
)

// ValidatorType tags one entry in a field's validator list.
type ValidatorType string

const (
	ValidatorRequired  ValidatorType = "required"
	ValidatorMinLength ValidatorType = "minlength"
	ValidatorMaxLength ValidatorType = "maxlength"
	ValidatorMin       ValidatorType = "min"
	ValidatorMax       ValidatorType = "max"
	ValidatorRegexp    ValidatorType = "regexp"
	ValidatorEnum      ValidatorType = "enum"
)

// Validator is one rule in a field's validator list, the first of the two
// rule sources merged by Rules.
type Validator struct {
	Type    ValidatorType
	Limit   float64 // min/max/minlength/maxlength
	Pattern string  // regexp source
	Enum    []string
}

// FieldOptions are the schema-level flags, the second rule source. When both
// sources define the same rule, options win.
type FieldOptions struct {
	Required    bool
	Min         *float64
	Max         *float64
	MinLength   *int
	MaxLength   *int
	Enum        []string
	Default     interface{}
	Ref         string // referenced model name for KindRef fields
	Label       string // display label override
	Description string
}

// FieldDef describes one stored field.
type FieldDef struct {
	Name       string
	Kind       Kind
	Validators []Validator
	Options    FieldOptions
	// Fields holds the embedded sub-structure for KindObject fields and for
	// KindArray fields whose elements are structured sub-records.
	Fields []FieldDef
}

// ModelDef describes one collection.
type ModelDef struct {
	Name       string // singular display name, e.g. "Bank"
	Collection string // plural storage name, e.g. "banks"
	Timestamps bool
	Fields     []FieldDef
}

// Field looks up a top-level field by name.
func (m *ModelDef) Field(name string) (FieldDef, bool) {
	for _, f := range m.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return FieldDef{}, false
}

// NotFoundError reports a failed model resolution along with the valid
// identifiers, so API callers can self-correct.
type NotFoundError struct {
	Identifier string
	Available  []string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("model %q not found, available: %s", e.Identifier, strings.Join(e.Available, ", "))
}

// Registry is the set of model definitions known to the process.
type Registry struct {
	models       []ModelDef
	byCollection map[string]*ModelDef
	byName       map[string]*ModelDef
}

// New builds a registry from the given definitions.
func New(models ...ModelDef) *Registry {
	r := &Registry{
		models:       models,
		byCollection: make(map[string]*ModelDef, len(models)),
		byName:       make(map[string]*ModelDef, len(models)),
	}
	for i := range r.models {
		m := &r.models[i]
		r.byCollection[strings.ToLower(m.Collection)] = m
		r.byName[strings.ToLower(m.Name)] = m
	}
	return r
}

// Resolve matches an identifier against the plural storage name first, then
// the exact display name, then the display name case-insensitively.
func (r *Registry) Resolve(identifier string) (*ModelDef, error) {
	if m, ok := r.byCollection[strings.ToLower(identifier)]; ok {
		return m, nil
	}
	for i := range r.models {
		if r.models[i].Name == identifier {
			return &r.models[i], nil
		}
	}
	if m, ok := r.byName[strings.ToLower(identifier)]; ok {
		return m, nil
	}
	return nil, &NotFoundError{Identifier: identifier, Available: r.Identifiers()}
}

// All returns the definitions in registration order.
func (r *Registry) All() []ModelDef {
	return r.models
}

// Identifiers lists "collection (Name)" pairs, sorted, for error messages.
func (r *Registry) Identifiers() []string {
	ids := make([]string, 0, len(r.models))
	for _, m := range r.models {
		ids = append(ids, fmt.Sprintf("%s (%s)", m.Collection, m.Name))
	}
	sort.Strings(ids)
	return ids
}
