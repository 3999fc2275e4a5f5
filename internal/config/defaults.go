package config

// DefaultModelConfigs mirrors the dashboard's shipped collection set. Names
// match the registry's lowercase singular identifiers.
func DefaultModelConfigs() *Models {
	return NewModels(
		ModelConfig{
			Name:         "user",
			SearchFields: []string{"name", "email", "phone"},
			UI:           UIConfig{Icon: "Users", Color: "blue", Group: "Core", Description: "Manage application users"},
			Priority:     1,
		},
		ModelConfig{
			Name:         "bank",
			SearchFields: []string{"name", "logo"},
			UI:           UIConfig{Icon: "Building2", Color: "green", Group: "Financial", Description: "Manage partner banks and financial institutions"},
			Priority:     2,
		},
		ModelConfig{
			Name:         "category",
			PluralName:   "Categories",
			SearchFields: []string{"name", "description"},
			UI:           UIConfig{Icon: "Tags", Color: "purple", Group: "Core", Description: "Manage offer categories"},
			Priority:     3,
		},
		ModelConfig{
			Name:         "brand",
			SearchFields: []string{"name", "logo"},
			UI:           UIConfig{Icon: "Award", Color: "orange", Group: "Financial", Description: "Manage card brands"},
			Priority:     4,
		},
		ModelConfig{
			Name:         "card",
			SearchFields: []string{"name", "brand", "bank"},
			UI:           UIConfig{Icon: "CreditCard", Color: "indigo", Group: "Financial", Description: "Manage credit and debit cards"},
			Priority:     5,
		},
		ModelConfig{
			Name:         "store",
			SearchFields: []string{"name", "address", "phone", "url"},
			UI:           UIConfig{Icon: "Store", Color: "teal", Group: "Business", Description: "Manage partner stores"},
			Priority:     6,
		},
		ModelConfig{
			Name:         "offer",
			SearchFields: []string{"title", "description", "store", "category"},
			UI:           UIConfig{Icon: "Gift", Color: "red", Group: "Business", Description: "Manage offers and promotions"},
			Priority:     7,
		},
		ModelConfig{
			Name:         "comment",
			Features:     FeaturesWithout(FeatureImport, FeatureBulkOperations),
			SearchFields: []string{"content", "author"},
			UI:           UIConfig{Icon: "MessageCircle", Color: "gray", Group: "Content", Description: "Manage user comments and reviews"},
			Priority:     8,
		},
		ModelConfig{
			Name:         "tracking",
			Features:     FeaturesWithout(FeatureCreate, FeatureUpdate, FeatureImport, FeatureBulkOperations),
			SearchFields: []string{"action", "userId", "resource"},
			UI:           UIConfig{Icon: "Activity", Color: "cyan", Group: "Analytics", Description: "View user activity tracking"},
			Priority:     9,
			AdminOnly:    true,
		},
		ModelConfig{
			Name:         "poi",
			SearchFields: []string{"name", "address", "description", "category"},
			UI:           UIConfig{Icon: "MapPin", Color: "emerald", Group: "Location", Description: "Manage points of interest"},
			Priority:     10,
		},
	)
}
