// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"atlas/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrPreferenceNotFound is returned when no document exists for the user.
// Absence is an expected outcome, not a failure; the loader falls through to
// the next resolution tier silently.
var ErrPreferenceNotFound = errors.New("preference document not found")

// ErrStoreUnavailable is returned when the remote store could not be reached
// at all (timeout, connectivity, DNS/TLS). It is deliberately distinct from
// ErrPreferenceNotFound so callers never have to match error strings to tell
// "no row" apart from "no network".
var ErrStoreUnavailable = errors.New("preference store unavailable")

// PreferenceRepository defines the remote-store operations for preference
// documents: a point read and an insert-or-replace upsert keyed by user ID,
// last writer wins.
type PreferenceRepository interface {
	// FindByUserID retrieves the single document owned by the user.
	// Returns ErrPreferenceNotFound when no row exists and
	// ErrStoreUnavailable when the store could not be reached.
	FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.PreferenceDocument, error)

	// Upsert inserts the document or replaces the existing row with the same
	// user ID. Returns ErrStoreUnavailable for network-class failures; any
	// other error is a store rejection.
	Upsert(ctx context.Context, doc *entity.PreferenceDocument) error
}
