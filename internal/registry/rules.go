package registry

// Rules is the effective constraint set for one field after merging its two
// rule sources. Numeric min/max carry value bounds for number fields and
// length bounds for string fields, matching how the rules are consumed.
type Rules struct {
	Required bool     `json:"required,omitempty"`
	Min      *float64 `json:"min,omitempty"`
	Max      *float64 `json:"max,omitempty"`
	Pattern  string   `json:"pattern,omitempty"`
	Enum     []string `json:"enum,omitempty"`
}

// IsZero reports whether no rule is set.
func (r Rules) IsZero() bool {
	return !r.Required && r.Min == nil && r.Max == nil && r.Pattern == "" && len(r.Enum) == 0
}

// Rules merges the validator list with the schema-level options. Merge
// policy: the validator list is applied first, schema options second, and
// schema options win ties for the same rule name.
func (f *FieldDef) Rules() Rules {
	var rules Rules

	for _, v := range f.Validators {
		switch v.Type {
		case ValidatorRequired:
			rules.Required = true
		case ValidatorMin, ValidatorMinLength:
			limit := v.Limit
			rules.Min = &limit
		case ValidatorMax, ValidatorMaxLength:
			limit := v.Limit
			rules.Max = &limit
		case ValidatorRegexp:
			rules.Pattern = v.Pattern
		case ValidatorEnum:
			rules.Enum = v.Enum
		}
	}

	opts := f.Options
	if opts.Required {
		rules.Required = true
	}
	if opts.Min != nil {
		rules.Min = opts.Min
	}
	if opts.Max != nil {
		rules.Max = opts.Max
	}
	if opts.MinLength != nil {
		min := float64(*opts.MinLength)
		rules.Min = &min
	}
	if opts.MaxLength != nil {
		max := float64(*opts.MaxLength)
		rules.Max = &max
	}
	if len(opts.Enum) > 0 {
		rules.Enum = opts.Enum
	}

	return rules
}

// Float returns a *float64, for concise option literals.
func Float(v float64) *float64 { return &v }

// Int returns an *int, for concise option literals.
func Int(v int) *int { return &v }
