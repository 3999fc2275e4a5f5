// Package store executes collection-scoped document operations over gorm.
// All records live in one documents table with their attributes in a JSON
// payload; the query builder in query.go reaches into that payload for
// filtering, searching and sorting.
package store

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"admin-service/internal/models"
)

// ErrNotFound is returned when no document matches the requested identity
// and deletion state.
var ErrNotFound = errors.New("document not found")

// Store is the generic document store shared by every collection.
type Store struct {
	db *gorm.DB
}

// New wraps a connected gorm handle.
func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// ListResult is one page of records plus the unpaged total.
type ListResult struct {
	Records []models.Record
	Total   int64
}

// List returns a page of documents matching the params. The page fetch and
// the total count run concurrently; both must succeed.
func (s *Store) List(ctx context.Context, collection string, params ListParams) (ListResult, error) {
	db := s.db.WithContext(ctx)

	findQuery := s.buildListQuery(db.Session(&gorm.Session{}), collection, params)
	countQuery := s.buildListQuery(db.Session(&gorm.Session{}), collection, params)

	var docs []models.Document
	var total int64

	errc := make(chan error, 2)
	go func() {
		errc <- findQuery.
			Order(orderClause(s.db.Dialector.Name(), params)).
			Offset((params.Page - 1) * params.Limit).
			Limit(params.Limit).
			Find(&docs).Error
	}()
	go func() {
		errc <- countQuery.Count(&total).Error
	}()
	for i := 0; i < 2; i++ {
		if err := <-errc; err != nil {
			return ListResult{}, err
		}
	}

	records, err := toRecords(docs)
	if err != nil {
		return ListResult{}, err
	}
	return ListResult{Records: records, Total: total}, nil
}

// Get fetches a single active document by identity.
func (s *Store) Get(ctx context.Context, collection string, id uuid.UUID) (models.Record, error) {
	var doc models.Document
	err := s.db.WithContext(ctx).
		Where("collection = ? AND id = ?", collection, id).
		Where("deleted IS NULL OR deleted = ?", false).
		First(&doc).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return doc.Record()
}

// Create persists a new document and returns it in record form.
func (s *Store) Create(ctx context.Context, collection string, record models.Record) (models.Record, error) {
	doc, err := models.NewDocument(collection, record)
	if err != nil {
		return nil, err
	}
	if err := s.db.WithContext(ctx).Create(&doc).Error; err != nil {
		return nil, err
	}
	return doc.Record()
}

// Update applies the given fields over an active document's payload and
// refreshes the update timestamp. Keys absent from updates are preserved.
func (s *Store) Update(ctx context.Context, collection string, id uuid.UUID, updates models.Record) (models.Record, error) {
	var doc models.Document
	err := s.db.WithContext(ctx).
		Where("collection = ? AND id = ?", collection, id).
		Where("deleted IS NULL OR deleted = ?", false).
		First(&doc).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	fields, err := doc.Fields()
	if err != nil {
		return nil, err
	}
	for key, value := range updates {
		switch key {
		case models.KeyID, models.KeyDeleted, models.KeyCreatedAt, models.KeyUpdatedAt:
			continue
		}
		fields[key] = value
	}
	if err := doc.SetData(fields); err != nil {
		return nil, err
	}
	if err := s.db.WithContext(ctx).Save(&doc).Error; err != nil {
		return nil, err
	}
	return doc.Record()
}

// SoftDelete flags an active document as deleted. Data stays in place.
func (s *Store) SoftDelete(ctx context.Context, collection string, id uuid.UUID) error {
	res := s.db.WithContext(ctx).
		Model(&models.Document{}).
		Where("collection = ? AND id = ?", collection, id).
		Where("deleted IS NULL OR deleted = ?", false).
		Update("deleted", true)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Restore clears the deleted flag on a trashed document. The flag goes back
// to NULL, not false: absence is the canonical active state.
func (s *Store) Restore(ctx context.Context, collection string, id uuid.UUID) (models.Record, error) {
	res := s.db.WithContext(ctx).
		Model(&models.Document{}).
		Where("collection = ? AND id = ? AND deleted = ?", collection, id, true).
		Update("deleted", nil)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return s.Get(ctx, collection, id)
}

// BulkCreate inserts records with unordered semantics: a failing record is
// skipped and does not abort the batch. The successfully created records
// are returned.
func (s *Store) BulkCreate(ctx context.Context, collection string, records []models.Record) ([]models.Record, error) {
	created := make([]models.Record, 0, len(records))
	for _, record := range records {
		saved, err := s.Create(ctx, collection, record)
		if err != nil {
			continue
		}
		created = append(created, saved)
	}
	return created, nil
}

// FindAll returns every matching record without pagination, for export.
func (s *Store) FindAll(ctx context.Context, collection string, params ListParams) ([]models.Record, error) {
	query := s.buildListQuery(s.db.WithContext(ctx).Session(&gorm.Session{}), collection, params)
	var docs []models.Document
	if err := query.Order("created_at ASC").Find(&docs).Error; err != nil {
		return nil, err
	}
	return toRecords(docs)
}

// Sample returns up to limit active records, used when resolving
// reference-backed select options.
func (s *Store) Sample(ctx context.Context, collection string, limit int) ([]models.Record, error) {
	var docs []models.Document
	err := s.db.WithContext(ctx).
		Where("collection = ?", collection).
		Where("deleted IS NULL OR deleted = ?", false).
		Order("created_at ASC").
		Limit(limit).
		Find(&docs).Error
	if err != nil {
		return nil, err
	}
	return toRecords(docs)
}

// Counts reports the active and trashed document totals for a collection.
func (s *Store) Counts(ctx context.Context, collection string) (active int64, deleted int64, err error) {
	db := s.db.WithContext(ctx).Model(&models.Document{})
	if err = db.Session(&gorm.Session{}).
		Where("collection = ?", collection).
		Where("deleted IS NULL OR deleted = ?", false).
		Count(&active).Error; err != nil {
		return 0, 0, err
	}
	if err = db.Session(&gorm.Session{}).
		Where("collection = ? AND deleted = ?", collection, true).
		Count(&deleted).Error; err != nil {
		return 0, 0, err
	}
	return active, deleted, nil
}

func toRecords(docs []models.Document) ([]models.Record, error) {
	records := make([]models.Record, 0, len(docs))
	for i := range docs {
		record, err := docs[i].Record()
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, nil
}
