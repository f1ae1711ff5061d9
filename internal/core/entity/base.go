package entity

import (
	"context"
	"time"

	"gestobra/internal/core/id"
)

// Validatable is implemented by entities that check their own invariants.
// Validation never touches the database.
type Validatable interface {
	Validate(ctx context.Context) error
}

// BaseEntity contains the fields every stored record carries.
type BaseEntity struct {
	// ID is the primary key (UUIDv7)
	ID id.ID `db:"id" json:"id"`

	// DeletionMark indicates soft-deleted entity
	DeletionMark bool `db:"deletion_mark" json:"deletionMark"`

	// Version for optimistic locking (incremented on each update)
	Version int `db:"version" json:"version"`

	CreatedAt time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time `db:"updated_at" json:"updatedAt"`
}

// NewBaseEntity creates a new BaseEntity with generated ID and timestamps.
func NewBaseEntity() BaseEntity {
	now := time.Now().UTC()
	return BaseEntity{
		ID:        id.New(),
		Version:   1,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// GetID returns the record identifier.
func (b *BaseEntity) GetID() id.ID {
	return b.ID
}

// Touch bumps UpdatedAt.
func (b *BaseEntity) Touch(at time.Time) {
	b.UpdatedAt = at
}

// MarkDeleted sets the deletion mark.
func (b *BaseEntity) MarkDeleted() {
	b.DeletionMark = true
}

// SetVersion updates the version number (used by repository after sync).
func (b *BaseEntity) SetVersion(v int) {
	b.Version = v
}

// GetVersion returns the optimistic lock version.
func (b *BaseEntity) GetVersion() int {
	return b.Version
}

// CreatedOn is a date accessor for filters.
func (b *BaseEntity) CreatedOn() *time.Time {
	if b.CreatedAt.IsZero() {
		return nil
	}
	return &b.CreatedAt
}

// UpdatedOn is a date accessor for filters.
func (b *BaseEntity) UpdatedOn() *time.Time {
	if b.UpdatedAt.IsZero() {
		return nil
	}
	return &b.UpdatedAt
}
