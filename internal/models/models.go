package models

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Record is an untyped document belonging to a collection. Its shape is
// described by the model registry, not by a Go struct.
type Record = map[string]interface{}

// Reserved record keys managed by the store rather than by callers.
const (
	KeyID        = "id"
	KeyDeleted   = "deleted"
	KeyCreatedAt = "createdAt"
	KeyUpdatedAt = "updatedAt"
)

// Document is the persisted form of a record. The attribute payload is kept
// as a JSON blob so every collection shares one table; bookkeeping columns
// (id, collection, deleted, timestamps) are lifted out so queries can reach
// them without parsing the blob.
//
// Soft deletion: Deleted is nil for active documents. Restore sets it back
// to nil, never to false — "absent" is the canonical active state.
type Document struct {
	ID         uuid.UUID `json:"id" gorm:"type:uuid;primary_key"`
	Collection string    `json:"-" gorm:"type:varchar(64);not null;index:idx_documents_collection"`
	Data       string    `json:"-" gorm:"type:text;not null"`
	Deleted    *bool     `json:"deleted,omitempty" gorm:"index:idx_documents_deleted"`
	CreatedAt  time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt  time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// NewDocument wraps a record payload for the given collection. Bookkeeping
// keys present in the payload are stripped before encoding.
func NewDocument(collection string, record Record) (Document, error) {
	data, err := encodeRecord(record)
	if err != nil {
		return Document{}, err
	}
	return Document{
		ID:         uuid.New(),
		Collection: collection,
		Data:       data,
	}, nil
}

// SetData replaces the document's attribute payload.
func (d *Document) SetData(record Record) error {
	data, err := encodeRecord(record)
	if err != nil {
		return err
	}
	d.Data = data
	return nil
}

// Record decodes the document back into its flat record form, merging the
// bookkeeping columns in. The deleted key is only present on trashed
// documents.
func (d *Document) Record() (Record, error) {
	record := Record{}
	if d.Data != "" {
		if err := json.Unmarshal([]byte(d.Data), &record); err != nil {
			return nil, fmt.Errorf("document %s holds invalid payload: %w", d.ID, err)
		}
	}
	record[KeyID] = d.ID.String()
	record[KeyCreatedAt] = d.CreatedAt.UTC().Format(time.RFC3339)
	record[KeyUpdatedAt] = d.UpdatedAt.UTC().Format(time.RFC3339)
	if d.Deleted != nil && *d.Deleted {
		record[KeyDeleted] = true
	}
	return record, nil
}

// Fields decodes only the attribute payload, without bookkeeping keys.
func (d *Document) Fields() (Record, error) {
	record := Record{}
	if d.Data == "" {
		return record, nil
	}
	if err := json.Unmarshal([]byte(d.Data), &record); err != nil {
		return nil, fmt.Errorf("document %s holds invalid payload: %w", d.ID, err)
	}
	return record, nil
}

func encodeRecord(record Record) (string, error) {
	clean := Record{}
	for key, value := range record {
		switch key {
		case KeyID, KeyDeleted, KeyCreatedAt, KeyUpdatedAt:
			continue
		}
		clean[key] = value
	}
	data, err := json.Marshal(clean)
	if err != nil {
		return "", fmt.Errorf("encode record: %w", err)
	}
	return string(data), nil
}

// Pagination describes one page of a list response.
type Pagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
	HasNext    bool  `json:"hasNext"`
	HasPrev    bool  `json:"hasPrev"`
}

// NewPagination derives the page metadata from a total count.
func NewPagination(page, limit int, total int64) Pagination {
	totalPages := 0
	if limit > 0 {
		totalPages = int((total + int64(limit) - 1) / int64(limit))
	}
	return Pagination{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: totalPages,
		HasNext:    page < totalPages,
		HasPrev:    page > 1,
	}
}

// Response is the envelope returned by every endpoint. Error detail is only
// populated outside production.
type Response struct {
	Success    bool        `json:"success"`
	Data       interface{} `json:"data,omitempty"`
	Message    string      `json:"message,omitempty"`
	Error      string      `json:"error,omitempty"`
	Pagination *Pagination `json:"pagination,omitempty"`
}

// BulkRequest carries a batch of candidate records for bulk create and
// bulk validate.
type BulkRequest struct {
	Records []Record `json:"records" binding:"required,min=1"`
}

// BulkValidation is the dry-run validation result for a batch.
type BulkValidation struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors"`
}
