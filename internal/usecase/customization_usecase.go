// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"atlas/internal/domain/entity"

	"github.com/google/uuid"
)

// User-facing notes attached to load and save results. The two failure notes
// are deliberately distinct: one means the store could not be reached, the
// other means the store refused the write. Either way the local cache holds
// the changes.
const (
	NoteOfflineMode = "offline mode: changes saved locally only"
	NoteSyncFailed  = "sync failed: changes saved locally"
)

// CustomizationUsecase is the customization store exposed to UI collaborators.
// It owns one in-memory session per user: the current preference document and
// the shadow snapshot used for dirty tracking.
type CustomizationUsecase interface {
	// Load resolves the authoritative document for the user (remote store,
	// then local cache, then a generated default), applies it to the
	// environment and seeds the dirty-tracking snapshot.
	Load(ctx context.Context, userID uuid.UUID) (*LoadOutput, error)

	// Current returns the in-memory session state, loading first when no
	// session exists yet.
	Current(ctx context.Context, userID uuid.UUID) (*SessionView, error)

	// SetField applies a single dot-path update to the in-memory document.
	// An unknown path or ill-typed value is a caller bug reported loudly.
	SetField(ctx context.Context, userID uuid.UUID, input *SetFieldInput) (*SessionView, error)

	// SetThemeColors updates the paired primary and accent colors as one
	// mutation, so dirty tracking sees a single transition.
	SetThemeColors(ctx context.Context, userID uuid.UUID, input *SetThemeColorsInput) (*SessionView, error)

	// Save persists the in-memory document: unconditionally to the local
	// cache, best effort to the remote store. The dirty flag clears either
	// way; the result reports which tiers were written.
	Save(ctx context.Context, userID uuid.UUID) (*SaveOutput, error)

	// Reset replaces the in-memory document with a fresh default, applies
	// it, and leaves it as an unsaved change. Stores are not touched until
	// the next Save.
	Reset(ctx context.Context, userID uuid.UUID) (*SessionView, error)

	// Discard drops the in-memory session, e.g. on logout.
	Discard(userID uuid.UUID)
}

// --- Input DTOs ---

// SetFieldInput defines a single field-path update.
type SetFieldInput struct {
	Path  string `json:"path" validate:"required"`
	Value any    `json:"value"`
	// Preview applies the visual effect immediately. Defaults to true.
	Preview *bool `json:"preview,omitempty"`
}

// SetThemeColorsInput defines a paired primary/accent color update.
type SetThemeColorsInput struct {
	Primary string `json:"primary" validate:"required,hexcolor"`
	Accent  string `json:"accent" validate:"required,hexcolor"`
	Preview *bool  `json:"preview,omitempty"`
}

// PreviewEnabled resolves the optional preview flag.
func (i *SetFieldInput) PreviewEnabled() bool {
	return i.Preview == nil || *i.Preview
}

// PreviewEnabled resolves the optional preview flag.
func (i *SetThemeColorsInput) PreviewEnabled() bool {
	return i.Preview == nil || *i.Preview
}

// --- Output DTOs ---

// LoadOutput is the result of resolving a document. SourceNote is empty for a
// clean load and carries the offline message when the remote store was
// unreachable and the local cache (or a default) served instead.
type LoadOutput struct {
	Document   *entity.PreferenceDocument `json:"document"`
	SourceNote string                     `json:"sourceNote,omitempty"`
}

// SessionView is the in-memory state returned after mutations and reads.
type SessionView struct {
	Document   *entity.PreferenceDocument `json:"document"`
	Dirty      bool                       `json:"dirty"`
	SourceNote string                     `json:"sourceNote,omitempty"`
}

// SaveOutput reports which persistence tiers captured the document. Note is
// empty on full success, NoteOfflineMode when the remote store was
// unreachable, NoteSyncFailed when it rejected the write.
type SaveOutput struct {
	Document          *entity.PreferenceDocument `json:"document"`
	PersistedLocally  bool                       `json:"persistedLocally"`
	PersistedRemotely bool                       `json:"persistedRemotely"`
	Note              string                     `json:"note,omitempty"`
}
