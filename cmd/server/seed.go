package main

import (
	"context"
	"fmt"
	"log"

	"admin-service/internal/models"
	"admin-service/internal/registry"
	"admin-service/internal/store"
)

// seedData inserts starter records so a fresh install has something to show.
// Collections that already hold records are left alone.
func seedData(reg *registry.Registry, st *store.Store) error {
	ctx := context.Background()

	categories := []models.Record{
		{"name": "Cashback", "description": "Flat or tiered cashback offers", "color": "#22c55e"},
		{"name": "Travel", "description": "Miles, lounges and travel perks", "color": "#3b82f6"},
		{"name": "Dining", "description": "Restaurant and delivery discounts", "color": "#f97316"},
		{"name": "Shopping", "description": "Retail and online store offers", "color": "#a855f7"},
	}
	categoryIDs, err := seedCollection(ctx, reg, st, "Category", categories)
	if err != nil {
		return err
	}

	banks := []models.Record{
		{"name": "First National", "code": "FN", "website": "https://firstnational.example.com"},
		{"name": "Meridian Trust", "code": "MT", "website": "https://meridian.example.com"},
	}
	bankIDs, err := seedCollection(ctx, reg, st, "Bank", banks)
	if err != nil {
		return err
	}

	if len(bankIDs) < 2 || len(categoryIDs) < 2 {
		return nil
	}
	cards := []models.Record{
		{"name": "Everyday Rewards", "bank": bankIDs[0], "category": categoryIDs[0], "annualFee": 0, "isActive": true},
		{"name": "Voyager Platinum", "bank": bankIDs[1], "category": categoryIDs[1], "annualFee": 199, "isActive": true},
	}
	if _, err := seedCollection(ctx, reg, st, "Card", cards); err != nil {
		return err
	}
	return nil
}

// seedCollection inserts the records when the collection is empty and returns
// the record ids, whether freshly created or pre-existing.
func seedCollection(ctx context.Context, reg *registry.Registry, st *store.Store, model string, records []models.Record) ([]string, error) {
	def, err := reg.Resolve(model)
	if err != nil {
		return nil, err
	}

	active, _, err := st.Counts(ctx, def.Collection)
	if err != nil {
		return nil, fmt.Errorf("count %s: %w", def.Collection, err)
	}
	if active > 0 {
		existing, err := st.Sample(ctx, def.Collection, len(records))
		if err != nil {
			return nil, err
		}
		return recordIDs(existing), nil
	}

	for _, record := range records {
		def.ApplyDefaults(record)
		if errs := def.Validate(record); len(errs) > 0 {
			return nil, fmt.Errorf("seed %s: %v", def.Collection, errs[0])
		}
	}
	created, err := st.BulkCreate(ctx, def.Collection, records)
	if err != nil {
		return nil, fmt.Errorf("seed %s: %w", def.Collection, err)
	}
	log.Printf("Seeded %d %s", len(created), def.Collection)
	return recordIDs(created), nil
}

func recordIDs(records []models.Record) []string {
	ids := make([]string, 0, len(records))
	for _, record := range records {
		if id, ok := record[models.KeyID].(string); ok {
			ids = append(ids, id)
		}
	}
	return ids
}
