package config

import (
	"sort"
	"strings"
)

// Feature names one gated operation on a collection.
type Feature string

const (
	FeatureCreate         Feature = "create"
	FeatureRead           Feature = "read"
	FeatureUpdate         Feature = "update"
	FeatureDelete         Feature = "delete"
	FeatureRestore        Feature = "restore"
	FeatureExport         Feature = "export"
	FeatureImport         Feature = "import"
	FeatureBulkOperations Feature = "bulkOperations"
	FeatureSearch         Feature = "search"
	FeatureFilters        Feature = "filters"
	FeatureSort           Feature = "sort"
	FeatureViewTrash      Feature = "viewTrash"
)

// Features maps operation name to its enabled flag for one collection.
type Features map[Feature]bool

// UIConfig carries presentation hints the dashboard uses for navigation.
type UIConfig struct {
	Icon        string `json:"icon"`
	Color       string `json:"color,omitempty"`
	Group       string `json:"group,omitempty"`
	Description string `json:"description,omitempty"`
}

// ModelConfig is the static, per-collection configuration. It is built once
// at startup and read-only thereafter.
type ModelConfig struct {
	Name         string   `json:"name"` // lowercase singular identifier, e.g. "bank"
	DisplayName  string   `json:"displayName"`
	PluralName   string   `json:"pluralName"`
	SearchFields []string `json:"searchFields"`
	Features     Features `json:"features"`
	UI           UIConfig `json:"ui"`
	Priority     int      `json:"priority"`
	Hidden       bool     `json:"hidden"`
	AdminOnly    bool     `json:"adminOnly"`
}

// Models is the process-wide model configuration registry. Construct it once
// in main and inject it; nothing here mutates after construction.
type Models struct {
	configs map[string]ModelConfig
	order   []string
}

// NewModels builds a registry from the given configs, filling derived
// defaults (plural name, default search fields, default feature set).
func NewModels(configs ...ModelConfig) *Models {
	m := &Models{configs: make(map[string]ModelConfig, len(configs))}
	for _, mc := range configs {
		if mc.DisplayName == "" {
			mc.DisplayName = capitalize(mc.Name)
		}
		if mc.PluralName == "" {
			mc.PluralName = Pluralize(mc.DisplayName)
		}
		if mc.Features == nil {
			mc.Features = DefaultFeatures()
		}
		if len(mc.SearchFields) == 0 {
			mc.SearchFields = []string{"name"}
		}
		if mc.UI.Icon == "" {
			mc.UI.Icon = "Circle"
		}
		if mc.UI.Group == "" {
			mc.UI.Group = "Other"
		}
		if mc.Priority == 0 {
			mc.Priority = 999
		}
		key := strings.ToLower(mc.Name)
		if _, exists := m.configs[key]; !exists {
			m.order = append(m.order, key)
		}
		m.configs[key] = mc
	}
	return m
}

// DefaultFeatures returns a feature map with every operation enabled.
func DefaultFeatures() Features {
	return Features{
		FeatureCreate:         true,
		FeatureRead:           true,
		FeatureUpdate:         true,
		FeatureDelete:         true,
		FeatureRestore:        true,
		FeatureExport:         true,
		FeatureImport:         true,
		FeatureBulkOperations: true,
		FeatureSearch:         true,
		FeatureFilters:        true,
		FeatureSort:           true,
		FeatureViewTrash:      true,
	}
}

// FeaturesWithout returns the default feature set with the given operations
// switched off.
func FeaturesWithout(disabled ...Feature) Features {
	features := DefaultFeatures()
	for _, f := range disabled {
		features[f] = false
	}
	return features
}

// Get resolves a config by its lowercase collection name.
func (m *Models) Get(name string) (ModelConfig, bool) {
	mc, ok := m.configs[strings.ToLower(name)]
	return mc, ok
}

// IsFeatureEnabled reports whether the operation is enabled for the
// collection. Unknown collections have nothing enabled.
func (m *Models) IsFeatureEnabled(name string, feature Feature) bool {
	mc, ok := m.Get(name)
	if !ok {
		return false
	}
	return mc.Features[feature]
}

// Names lists the registered collection names in registration order.
func (m *Models) Names() []string {
	names := make([]string, len(m.order))
	copy(names, m.order)
	return names
}

// Visible returns the non-hidden configs sorted by navigation priority.
func (m *Models) Visible() []ModelConfig {
	visible := make([]ModelConfig, 0, len(m.configs))
	for _, name := range m.order {
		mc := m.configs[name]
		if !mc.Hidden {
			visible = append(visible, mc)
		}
	}
	sort.SliceStable(visible, func(i, j int) bool {
		return visible[i].Priority < visible[j].Priority
	})
	return visible
}

// ByGroup buckets the visible configs by their UI group, each group sorted
// by priority.
func (m *Models) ByGroup() map[string][]ModelConfig {
	grouped := make(map[string][]ModelConfig)
	for _, mc := range m.Visible() {
		grouped[mc.UI.Group] = append(grouped[mc.UI.Group], mc)
	}
	return grouped
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// Pluralize applies the same naive English pluralization the dashboard
// navigation expects: Category -> Categories, Bus -> Buses, Bank -> Banks.
func Pluralize(name string) string {
	switch {
	case strings.HasSuffix(name, "y"):
		return name[:len(name)-1] + "ies"
	case strings.HasSuffix(name, "s"):
		return name + "es"
	default:
		return name + "s"
	}
}
