// Package model contains the GORM persistence models mirroring database tables.
package model

import (
	"encoding/json"
	"time"

	"atlas/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// PreferenceModel mirrors the 'preference_documents' table. Each user owns at
// most one row; user_id is the conflict target for upserts. The nested
// sections are stored as JSONB so the row shape matches the wire shape of the
// document.
type PreferenceModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID      uuid.UUID       `gorm:"type:uuid;uniqueIndex;not null"`
	Theme       json.RawMessage `gorm:"type:jsonb;not null"`
	Layout      json.RawMessage `gorm:"type:jsonb;not null"`
	Preferences json.RawMessage `gorm:"type:jsonb;not null"`
	Dashboard   json.RawMessage `gorm:"type:jsonb;not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (PreferenceModel) TableName() string {
	return "preference_documents"
}

// FromPreferenceDomain maps a pure domain document to a persistence model.
func FromPreferenceDomain(doc *entity.PreferenceDocument) (*PreferenceModel, error) {
	theme, err := json.Marshal(doc.Theme)
	if err != nil {
		return nil, errors.Wrap(err, "marshal theme")
	}
	layout, err := json.Marshal(doc.Layout)
	if err != nil {
		return nil, errors.Wrap(err, "marshal layout")
	}
	prefs, err := json.Marshal(doc.Preferences)
	if err != nil {
		return nil, errors.Wrap(err, "marshal preferences")
	}
	dashboard, err := json.Marshal(doc.Dashboard)
	if err != nil {
		return nil, errors.Wrap(err, "marshal dashboard")
	}

	return &PreferenceModel{
		ID:          doc.ID,
		UserID:      doc.UserID,
		Theme:       theme,
		Layout:      layout,
		Preferences: prefs,
		Dashboard:   dashboard,
		CreatedAt:   doc.CreatedAt,
		UpdatedAt:   doc.UpdatedAt,
	}, nil
}

// ToPreferenceDomain maps a persistence model back to a pure domain document.
func ToPreferenceDomain(m *PreferenceModel) (*entity.PreferenceDocument, error) {
	doc := &entity.PreferenceDocument{
		ID:        m.ID,
		UserID:    m.UserID,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}

	if err := json.Unmarshal(m.Theme, &doc.Theme); err != nil {
		return nil, errors.Wrap(err, "unmarshal theme")
	}
	if err := json.Unmarshal(m.Layout, &doc.Layout); err != nil {
		return nil, errors.Wrap(err, "unmarshal layout")
	}
	if err := json.Unmarshal(m.Preferences, &doc.Preferences); err != nil {
		return nil, errors.Wrap(err, "unmarshal preferences")
	}
	if err := json.Unmarshal(m.Dashboard, &doc.Dashboard); err != nil {
		return nil, errors.Wrap(err, "unmarshal dashboard")
	}

	return doc, nil
}
