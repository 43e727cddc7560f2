package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DefaultModel is the base model for all ledger records.
//
// IDs are opaque strings. They are generated as UUIDv7 so that they sort
// by creation time, but records pulled from a remote store keep whatever
// string the remote assigned (legacy stores used numeric ids).
type DefaultModel struct {
	ID string `json:"id" gorm:"primaryKey" example:"018e5f55-dcbd-7c5c-8a3e-ae7cbbf3de66"` // ID of the resource
	Timestamps
}

// Timestamps contains the timestamps that gorm sets automatically.
type Timestamps struct {
	CreatedAt time.Time `json:"timestamp" example:"2024-04-02T19:28:44.491514Z"` // Time the resource was created
	UpdatedAt time.Time `json:"-"`
}

// BeforeCreate generates an ID for the resource if it does not have one yet.
// Records synced in from a remote store already carry their ID.
func (m *DefaultModel) BeforeCreate(_ *gorm.DB) error {
	if m.ID == "" {
		id, err := uuid.NewV7()
		if err != nil {
			return err
		}
		m.ID = id.String()
	}

	return nil
}

// AfterFind updates the timestamps to use UTC as
// timezone, not +0000. Yes, this is different.
func (m *DefaultModel) AfterFind(_ *gorm.DB) error {
	m.CreatedAt = m.CreatedAt.In(time.UTC)
	m.UpdatedAt = m.UpdatedAt.In(time.UTC)
	return nil
}
