package repository

import (
	"context"
	"errors"

	"atlas/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrCacheMiss is returned when no cached document exists for the user.
var ErrCacheMiss = errors.New("customization cache miss")

// ErrCacheCorrupt is returned when a cached entry exists but its JSON cannot
// be decoded. The loader treats this as a miss; the entry is overwritten by
// the next save.
var ErrCacheCorrupt = errors.New("customization cache entry corrupt")

// PreferenceCache is the local persistence tier beneath the remote store. It
// is a synchronous string-keyed document store (keys are namespaced per user,
// values the JSON-serialized document) and is always authoritative for the
// current session when the remote store is unreachable.
type PreferenceCache interface {
	// Get returns the cached document for the user, ErrCacheMiss when none
	// exists, or ErrCacheCorrupt when the stored JSON cannot be parsed.
	Get(ctx context.Context, userID uuid.UUID) (*entity.PreferenceDocument, error)

	// Put stores the document under the user's namespaced key, replacing any
	// previous entry. A failure here is fatal for a save; there is no lower
	// fallback tier.
	Put(ctx context.Context, doc *entity.PreferenceDocument) error
}
