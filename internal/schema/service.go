package schema

import (
	"context"
	"fmt"
	"log"
	"strings"

	"admin-service/internal/models"
	"admin-service/internal/registry"
)

// refSampleLimit bounds the records pulled from a referenced collection
// when building select options.
const refSampleLimit = 100

// maxNestingDepth guards the recursion over embedded sub-structures against
// pathological definitions.
const maxNestingDepth = 8

// OptionSource samples active records from a collection so reference fields
// can offer concrete choices.
type OptionSource interface {
	Sample(ctx context.Context, collection string, limit int) ([]models.Record, error)
}

// OptionsResult carries the outcome of reference-option sampling. A failed
// sample degrades the field to an empty option list instead of failing the
// whole schema; the error is kept so callers can log or surface it.
type OptionsResult struct {
	Options []Option
	Err     error
}

// Service is the schema introspection service. It walks the registry's
// field definitions and produces ModelSchema documents.
type Service struct {
	registry *registry.Registry
	options  OptionSource
}

// NewService builds an introspection service over the given registry. The
// option source may be nil, in which case reference fields get no options.
func NewService(reg *registry.Registry, options OptionSource) *Service {
	return &Service{registry: reg, options: options}
}

// DescribeModel resolves the identifier and introspects the matching
// collection. Unknown identifiers return a registry.NotFoundError listing
// the valid ones.
func (s *Service) DescribeModel(ctx context.Context, identifier string) (ModelSchema, error) {
	model, err := s.registry.Resolve(identifier)
	if err != nil {
		return ModelSchema{}, err
	}
	return s.describe(ctx, model), nil
}

// DescribeAll introspects every registered collection, keyed by lowercase
// model name.
func (s *Service) DescribeAll(ctx context.Context) map[string]ModelSchema {
	schemas := make(map[string]ModelSchema)
	for _, model := range s.registry.All() {
		m := model
		schemas[strings.ToLower(m.Name)] = s.describe(ctx, &m)
	}
	return schemas
}

// ModelNames lists the registered collections for navigation.
func (s *Service) ModelNames() []ModelInfo {
	all := s.registry.All()
	infos := make([]ModelInfo, 0, len(all))
	for _, model := range all {
		infos = append(infos, ModelInfo{
			Name:        strings.ToLower(model.Name),
			DisplayName: model.Name,
			Collection:  model.Collection,
		})
	}
	return infos
}

func (s *Service) describe(ctx context.Context, model *registry.ModelDef) ModelSchema {
	fields := make([]FieldDescriptor, 0, len(model.Fields)+2)
	for _, field := range model.Fields {
		fields = append(fields, s.describeField(ctx, model.Name, field, 0))
	}
	if model.Timestamps {
		fields = append(fields, timestampField(models.KeyCreatedAt), timestampField(models.KeyUpdatedAt))
	}
	return ModelSchema{
		Name:        strings.ToLower(model.Name),
		DisplayName: model.Name,
		PrimaryKey:  models.KeyID,
		Timestamps:  model.Timestamps,
		Fields:      fields,
	}
}

// describeField applies the full descriptor pipeline to one field: semantic
// type inference, rule merging, option resolution, array element typing and
// recursion into embedded sub-structures.
func (s *Service) describeField(ctx context.Context, modelName string, field registry.FieldDef, depth int) FieldDescriptor {
	fieldType := inferType(modelName, field)
	rules := field.Rules()

	label := field.Options.Label
	if label == "" {
		label = Label(field.Name)
	}

	desc := FieldDescriptor{
		Key:          field.Name,
		Label:        label,
		Type:         fieldType,
		Required:     rules.Required,
		Placeholder:  Placeholder(fieldType, field.Name, label),
		Description:  field.Options.Description,
		DefaultValue: field.Options.Default,
	}
	if !rules.IsZero() {
		r := rules
		desc.Validation = &r
	}

	if fieldType == FieldSelect && field.Options.Ref != "" {
		result := s.refOptions(ctx, field.Options.Ref)
		if result.Err != nil {
			log.Printf("schema: sampling options for %s.%s from %s failed: %v",
				modelName, field.Name, field.Options.Ref, result.Err)
		}
		desc.Options = result.Options
	}

	// An enumerated constraint wins over reference-derived options.
	if len(rules.Enum) > 0 {
		desc.Options = enumOptions(rules.Enum)
		if fieldType == FieldText {
			desc.Type = FieldSelect
			desc.Placeholder = Placeholder(FieldSelect, field.Name, label)
		}
	}

	if fieldType == FieldArray {
		if len(field.Fields) > 0 {
			desc.ArrayItemType = FieldObject
		} else {
			desc.ArrayItemType = FieldText
		}
	}

	if fieldType == FieldObject && len(field.Fields) > 0 && depth < maxNestingDepth {
		nested := make([]FieldDescriptor, 0, len(field.Fields))
		for _, sub := range field.Fields {
			nested = append(nested, s.describeField(ctx, modelName, sub, depth+1))
		}
		desc.Nested = nested
	}

	return desc
}

// inferType maps a stored-field definition onto its semantic type.
func inferType(modelName string, field registry.FieldDef) FieldType {
	// Embedded sub-structures are objects, except when the field itself is
	// an array (handled below via ArrayItemType).
	if len(field.Fields) > 0 && field.Kind != registry.KindArray {
		return FieldObject
	}

	switch field.Kind {
	case registry.KindMixed:
		// Temporary override: the Offer availability payload renders as a
		// weekday picker. Not a general mixed-type rule.
		if modelName == "Offer" && field.Name == "availability" {
			return FieldWeekdays
		}
		return FieldObject
	case registry.KindString:
		return inferStringType(field)
	case registry.KindNumber:
		return FieldNumber
	case registry.KindBool:
		return FieldBoolean
	case registry.KindDate:
		return FieldDate
	case registry.KindArray:
		return FieldArray
	case registry.KindRef:
		return FieldSelect
	case registry.KindObject:
		return FieldObject
	}
	return FieldText
}

// inferStringType applies the string sub-heuristics: pattern-validator
// sources first, then field-name substrings.
func inferStringType(field registry.FieldDef) FieldType {
	for _, v := range field.Validators {
		if v.Type != registry.ValidatorRegexp || v.Pattern == "" {
			continue
		}
		if strings.Contains(v.Pattern, "email") || strings.Contains(v.Pattern, "@") {
			return FieldEmail
		}
		if strings.Contains(v.Pattern, "http") || strings.Contains(v.Pattern, "url") {
			return FieldURL
		}
	}

	name := strings.ToLower(field.Name)
	switch {
	case strings.Contains(name, "email"):
		return FieldEmail
	case strings.Contains(name, "url"),
		strings.Contains(name, "website"),
		strings.Contains(name, "link"),
		strings.Contains(name, "logo"):
		return FieldURL
	case strings.Contains(name, "color"), strings.Contains(name, "colour"):
		// Could become a color picker; plain text for now.
		return FieldText
	}
	return FieldText
}

// refOptions samples up to refSampleLimit active records from the
// referenced collection and projects them to {value, label} pairs.
func (s *Service) refOptions(ctx context.Context, ref string) OptionsResult {
	if s.options == nil {
		return OptionsResult{}
	}
	target, err := s.registry.Resolve(ref)
	if err != nil {
		return OptionsResult{Err: err}
	}
	records, err := s.options.Sample(ctx, target.Collection, refSampleLimit)
	if err != nil {
		return OptionsResult{Err: fmt.Errorf("sample %s: %w", target.Collection, err)}
	}
	options := make([]Option, 0, len(records))
	for _, record := range records {
		id, _ := record[models.KeyID].(string)
		options = append(options, Option{Value: id, Label: recordLabel(record, id)})
	}
	return OptionsResult{Options: options}
}

// recordLabel prefers a record's name, then title, then its identity.
func recordLabel(record models.Record, id string) string {
	if name, ok := record["name"].(string); ok && name != "" {
		return name
	}
	if title, ok := record["title"].(string); ok && title != "" {
		return title
	}
	return id
}

func enumOptions(values []string) []Option {
	options := make([]Option, 0, len(values))
	for _, value := range values {
		options = append(options, Option{Value: value, Label: capitalize(value)})
	}
	return options
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func timestampField(key string) FieldDescriptor {
	label := Label(key)
	return FieldDescriptor{
		Key:         key,
		Label:       label,
		Type:        FieldDate,
		Placeholder: Placeholder(FieldDate, key, label),
		Readonly:    true,
	}
}
