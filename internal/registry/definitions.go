package registry

// Patterns used by string fields. Type inference also inspects these
// sources, so the email pattern deliberately contains "@" and the URL
// pattern "http".
const (
	emailPattern = `^[^@\s]+@[^@\s]+\.[^@\s]+$`
	urlPattern   = `^https?://\S+$`
	phonePattern = `^\+?[0-9 ]{7,20}$`
)

// DefaultModels returns the registry with every collection the dashboard
// manages.
func DefaultModels() *Registry {
	return New(
		userModel(),
		trackingModel(),
		poiModel(),
		categoryModel(),
		storeModel(),
		offerModel(),
		commentModel(),
		cardModel(),
		brandModel(),
		bankModel(),
	)
}

func bankModel() ModelDef {
	return ModelDef{
		Name:       "Bank",
		Collection: "banks",
		Timestamps: true,
		Fields: []FieldDef{
			{
				Name: "name",
				Kind: KindString,
				Validators: []Validator{
					{Type: ValidatorRequired},
					{Type: ValidatorMaxLength, Limit: 100},
				},
			},
			{
				Name: "code",
				Kind: KindString,
				// Validator list sets the lower bound, schema options the
				// upper one; Rules merges both.
				Validators: []Validator{{Type: ValidatorMinLength, Limit: 2}},
				Options:    FieldOptions{Required: true, MaxLength: Int(10)},
			},
			{Name: "country", Kind: KindString},
			{
				Name:       "email",
				Kind:       KindString,
				Validators: []Validator{{Type: ValidatorRegexp, Pattern: emailPattern}},
			},
			{
				Name:       "phone",
				Kind:       KindString,
				Validators: []Validator{{Type: ValidatorRegexp, Pattern: phonePattern}},
			},
			{Name: "website", Kind: KindString},
			{Name: "logo", Kind: KindString},
			{Name: "isActive", Kind: KindBool, Options: FieldOptions{Default: true}},
		},
	}
}

func brandModel() ModelDef {
	return ModelDef{
		Name:       "Brand",
		Collection: "brands",
		Timestamps: true,
		Fields: []FieldDef{
			{Name: "name", Kind: KindString, Options: FieldOptions{Required: true, MaxLength: Int(100)}},
			{Name: "logo", Kind: KindString},
		},
	}
}

func categoryModel() ModelDef {
	return ModelDef{
		Name:       "Category",
		Collection: "categories",
		Timestamps: true,
		Fields: []FieldDef{
			{Name: "name", Kind: KindString, Options: FieldOptions{Required: true, MaxLength: Int(100)}},
			{Name: "description", Kind: KindString, Options: FieldOptions{MaxLength: Int(500)}},
			{
				Name:    "type",
				Kind:    KindString,
				Options: FieldOptions{Enum: []string{"shopping", "transport", "entertainment", "travel", "technology"}},
			},
			{Name: "icon", Kind: KindString},
			{Name: "color", Kind: KindString},
		},
	}
}

func cardModel() ModelDef {
	return ModelDef{
		Name:       "Card",
		Collection: "cards",
		Timestamps: true,
		Fields: []FieldDef{
			{Name: "name", Kind: KindString, Options: FieldOptions{Required: true, MaxLength: Int(100)}},
			{
				Name:       "cardNumber",
				Kind:       KindString,
				Validators: []Validator{{Type: ValidatorRegexp, Pattern: `^[0-9]{16}$`}},
			},
			{Name: "bank", Kind: KindRef, Options: FieldOptions{Required: true, Ref: "Bank"}},
			{Name: "category", Kind: KindRef, Options: FieldOptions{Ref: "Category"}},
			{Name: "brand", Kind: KindRef, Options: FieldOptions{Ref: "Brand"}},
			{
				Name:    "type",
				Kind:    KindString,
				Options: FieldOptions{Enum: []string{"credit", "debit"}, Default: "credit"},
			},
			{Name: "creditLimit", Kind: KindNumber, Options: FieldOptions{Min: Float(0)}},
			{Name: "annualFee", Kind: KindNumber, Options: FieldOptions{Min: Float(0)}},
			{Name: "interestRate", Kind: KindNumber, Options: FieldOptions{Min: Float(0), Max: Float(100)}},
			{Name: "rewards", Kind: KindString},
			{Name: "benefits", Kind: KindArray},
			{Name: "isActive", Kind: KindBool, Options: FieldOptions{Default: true}},
		},
	}
}

func userModel() ModelDef {
	return ModelDef{
		Name:       "User",
		Collection: "users",
		Timestamps: true,
		Fields: []FieldDef{
			{Name: "name", Kind: KindString, Options: FieldOptions{Required: true, MaxLength: Int(100)}},
			{
				Name:       "email",
				Kind:       KindString,
				Validators: []Validator{{Type: ValidatorRequired}, {Type: ValidatorRegexp, Pattern: emailPattern}},
			},
			{
				Name:       "phone",
				Kind:       KindString,
				Validators: []Validator{{Type: ValidatorRegexp, Pattern: phonePattern}},
			},
			{
				Name:    "role",
				Kind:    KindString,
				Options: FieldOptions{Enum: []string{"admin", "editor", "viewer"}, Default: "viewer"},
			},
			{
				Name: "preferences",
				Kind: KindObject,
				Fields: []FieldDef{
					{Name: "language", Kind: KindString, Options: FieldOptions{Enum: []string{"en", "es"}, Default: "en"}},
					{
						Name: "notifications",
						Kind: KindObject,
						Fields: []FieldDef{
							{Name: "email", Kind: KindBool, Options: FieldOptions{Default: true}},
							{Name: "push", Kind: KindBool, Options: FieldOptions{Default: false}},
						},
					},
				},
			},
		},
	}
}

func storeModel() ModelDef {
	return ModelDef{
		Name:       "Store",
		Collection: "stores",
		Timestamps: true,
		Fields: []FieldDef{
			{Name: "name", Kind: KindString, Options: FieldOptions{Required: true, MaxLength: Int(150)}},
			{Name: "address", Kind: KindString},
			{
				Name:       "phone",
				Kind:       KindString,
				Validators: []Validator{{Type: ValidatorRegexp, Pattern: phonePattern}},
			},
			{
				Name:       "url",
				Kind:       KindString,
				Validators: []Validator{{Type: ValidatorRegexp, Pattern: urlPattern}},
			},
			{
				Name: "location",
				Kind: KindObject,
				Fields: []FieldDef{
					{Name: "lat", Kind: KindNumber, Options: FieldOptions{Required: true, Min: Float(-90), Max: Float(90)}},
					{Name: "lng", Kind: KindNumber, Options: FieldOptions{Required: true, Min: Float(-180), Max: Float(180)}},
				},
			},
		},
	}
}

func offerModel() ModelDef {
	return ModelDef{
		Name:       "Offer",
		Collection: "offers",
		Timestamps: true,
		Fields: []FieldDef{
			{Name: "title", Kind: KindString, Options: FieldOptions{Required: true, MaxLength: Int(150)}},
			{Name: "description", Kind: KindString, Options: FieldOptions{MaxLength: Int(1000)}},
			{Name: "store", Kind: KindRef, Options: FieldOptions{Required: true, Ref: "Store"}},
			{Name: "category", Kind: KindRef, Options: FieldOptions{Ref: "Category"}},
			{
				Name: "discount",
				Kind: KindNumber,
				// Options win the tie on max: the effective bound is 100.
				Validators: []Validator{{Type: ValidatorMax, Limit: 50}},
				Options:    FieldOptions{Min: Float(0), Max: Float(100)},
			},
			{Name: "availability", Kind: KindMixed},
			{Name: "validFrom", Kind: KindDate},
			{Name: "validUntil", Kind: KindDate},
			{Name: "tags", Kind: KindArray},
			{Name: "isActive", Kind: KindBool, Options: FieldOptions{Default: true}},
		},
	}
}

func commentModel() ModelDef {
	return ModelDef{
		Name:       "Comment",
		Collection: "comments",
		Timestamps: true,
		Fields: []FieldDef{
			{Name: "content", Kind: KindString, Options: FieldOptions{Required: true, MaxLength: Int(1000)}},
			{Name: "author", Kind: KindString, Options: FieldOptions{Required: true}},
			{Name: "offer", Kind: KindRef, Options: FieldOptions{Ref: "Offer"}},
			{Name: "rating", Kind: KindNumber, Options: FieldOptions{Min: Float(1), Max: Float(5)}},
		},
	}
}

func trackingModel() ModelDef {
	return ModelDef{
		Name:       "Tracking",
		Collection: "trackings",
		Timestamps: true,
		Fields: []FieldDef{
			{Name: "action", Kind: KindString, Options: FieldOptions{Required: true}},
			{Name: "userId", Kind: KindString},
			{Name: "resource", Kind: KindString},
			{Name: "metadata", Kind: KindMixed},
		},
	}
}

func poiModel() ModelDef {
	return ModelDef{
		Name:       "Poi",
		Collection: "pois",
		Timestamps: true,
		Fields: []FieldDef{
			{Name: "name", Kind: KindString, Options: FieldOptions{Required: true, MaxLength: Int(150)}},
			{Name: "address", Kind: KindString},
			{Name: "description", Kind: KindString, Options: FieldOptions{MaxLength: Int(500)}},
			{Name: "category", Kind: KindRef, Options: FieldOptions{Ref: "Category"}},
			{
				Name: "location",
				Kind: KindObject,
				Fields: []FieldDef{
					{Name: "lat", Kind: KindNumber, Options: FieldOptions{Required: true, Min: Float(-90), Max: Float(90)}},
					{Name: "lng", Kind: KindNumber, Options: FieldOptions{Required: true, Min: Float(-180), Max: Float(180)}},
				},
			},
			{Name: "openingHours", Kind: KindArray},
		},
	}
}
