// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"atlas/internal/domain/entity"
	domainerrors "atlas/internal/domain/errors"
	"atlas/internal/domain/repository"
	"atlas/internal/domain/service"
	"atlas/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// session is the per-user in-memory state: the working document and the
// shadow snapshot it is compared against for dirty tracking. The snapshot is
// replaced only on load and on successful local persistence, never on
// mutation.
type session struct {
	mu       sync.Mutex
	doc      *entity.PreferenceDocument
	snapshot *entity.PreferenceDocument
	note     string
}

// customizationService implements the CustomizationUsecase interface.
type customizationService struct {
	fx.In

	repo      repository.PreferenceRepository
	cache     repository.PreferenceCache
	env       service.Environment
	publisher service.EventPublisher
	logger    *slog.Logger

	mu       sync.Mutex
	sessions map[uuid.UUID]*session
}

// NewCustomizationService is the constructor for customizationService.
func NewCustomizationService(
	repo repository.PreferenceRepository,
	cache repository.PreferenceCache,
	env service.Environment,
	publisher service.EventPublisher,
	logger *slog.Logger,
) usecase.CustomizationUsecase {
	return &customizationService{
		repo:      repo,
		cache:     cache,
		env:       env,
		publisher: publisher,
		logger:    logger,
		sessions:  make(map[uuid.UUID]*session),
	}
}

// sessionFor returns the session for the user, creating an empty one when
// none exists. The returned session is locked by the caller.
func (srv *customizationService) sessionFor(userID uuid.UUID) *session {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	sess, ok := srv.sessions[userID]
	if !ok {
		sess = &session{}
		srv.sessions[userID] = sess
	}

	return sess
}

// Load resolves the user's document through the remote store, the local
// cache, and finally a generated default, then applies it and seeds the
// snapshot.
func (srv *customizationService) Load(ctx context.Context, userID uuid.UUID) (*usecase.LoadOutput, error) {
	srv.logger.Debug("Loading customization", "userID", userID)

	sess := srv.sessionFor(userID)
	sess.mu.Lock()
	defer sess.mu.Unlock()

	srv.loadLocked(ctx, sess, userID)

	return &usecase.LoadOutput{
		Document:   sess.doc,
		SourceNote: sess.note,
	}, nil
}

// loadLocked performs the layered resolution. It never fails: every tier has
// a fallback and the final tier is a generated default. The caller holds the
// session lock.
func (srv *customizationService) loadLocked(ctx context.Context, sess *session, userID uuid.UUID) {
	doc, note := srv.resolve(ctx, userID)

	applyDocument(srv.env, doc)

	sess.doc = doc
	sess.snapshot = doc.Clone()
	sess.note = note
}

// resolve picks the document source. The offline note is attached only when
// the remote store was unreachable, not when it is reachable but holds no
// row for the user.
func (srv *customizationService) resolve(ctx context.Context, userID uuid.UUID) (*entity.PreferenceDocument, string) {
	doc, err := srv.repo.FindByUserID(ctx, userID)
	if err == nil {
		return doc, ""
	}

	offline := false

	switch {
	case errors.Is(err, repository.ErrPreferenceNotFound):
		srv.logger.Debug("No remote preference document", "userID", userID)
	case errors.Is(err, repository.ErrStoreUnavailable):
		offline = true
		srv.logger.Warn("Remote store unreachable, falling back to cache", "userID", userID, "error", err)
	default:
		srv.logger.Error("Unexpected remote store failure, falling back to cache", "userID", userID, "error", err)
	}

	note := ""
	if offline {
		note = usecase.NoteOfflineMode
	}

	cached, cerr := srv.cache.Get(ctx, userID)
	if cerr == nil {
		return cached, note
	}

	switch {
	case errors.Is(cerr, repository.ErrCacheMiss):
		srv.logger.Debug("No cached preference document", "userID", userID)
	case errors.Is(cerr, repository.ErrCacheCorrupt):
		srv.logger.Warn("Cached preference document corrupt, using defaults", "userID", userID, "error", cerr)
	default:
		srv.logger.Warn("Cache read failed, using defaults", "userID", userID, "error", cerr)
	}

	return entity.BuildDefault(userID), note
}

// Current returns the in-memory state, loading when no session exists yet.
func (srv *customizationService) Current(ctx context.Context, userID uuid.UUID) (*usecase.SessionView, error) {
	sess := srv.sessionFor(userID)
	sess.mu.Lock()
	defer sess.mu.Unlock()

	if sess.doc == nil {
		srv.loadLocked(ctx, sess, userID)
	}

	return srv.viewLocked(sess), nil
}

// SetField applies a single dot-path mutation. The working document is
// replaced wholesale with a mutated clone so previously returned documents
// stay stable and the snapshot is never touched.
func (srv *customizationService) SetField(ctx context.Context, userID uuid.UUID, input *usecase.SetFieldInput) (*usecase.SessionView, error) {
	srv.logger.Debug("Setting preference field", "userID", userID, "path", input.Path)

	sess := srv.sessionFor(userID)
	sess.mu.Lock()
	defer sess.mu.Unlock()

	if sess.doc == nil {
		srv.loadLocked(ctx, sess, userID)
	}

	next := sess.doc.Clone()
	if err := next.SetField(input.Path, input.Value); err != nil {
		switch {
		case errors.Is(err, entity.ErrInvalidFieldPath):
			return nil, domainerrors.ErrInvalidFieldPath.WrapMessage(err.Error())
		case errors.Is(err, entity.ErrInvalidFieldValue):
			return nil, domainerrors.ErrInvalidFieldValue.WrapMessage(err.Error())
		default:
			return nil, errors.Wrap(err, "failed to set preference field")
		}
	}

	sess.doc = next
	if input.PreviewEnabled() {
		applyDocument(srv.env, next)
	}

	return srv.viewLocked(sess), nil
}

// SetThemeColors updates primary and accent as one transition.
func (srv *customizationService) SetThemeColors(ctx context.Context, userID uuid.UUID, input *usecase.SetThemeColorsInput) (*usecase.SessionView, error) {
	srv.logger.Debug("Setting theme colors", "userID", userID)

	sess := srv.sessionFor(userID)
	sess.mu.Lock()
	defer sess.mu.Unlock()

	if sess.doc == nil {
		srv.loadLocked(ctx, sess, userID)
	}

	next := sess.doc.Clone()
	next.Theme.PrimaryColor = input.Primary
	next.Theme.AccentColor = input.Accent

	sess.doc = next
	if input.PreviewEnabled() {
		applyDocument(srv.env, next)
	}

	return srv.viewLocked(sess), nil
}

// Save persists the working document. The local cache write is mandatory and
// its failure aborts the save; the remote upsert is best effort and its
// failure only attaches a note. The dirty flag clears whenever the local
// tier succeeded.
func (srv *customizationService) Save(ctx context.Context, userID uuid.UUID) (*usecase.SaveOutput, error) {
	srv.logger.Debug("Saving customization", "userID", userID)

	sess := srv.sessionFor(userID)
	sess.mu.Lock()
	defer sess.mu.Unlock()

	if sess.doc == nil {
		srv.loadLocked(ctx, sess, userID)
	}

	next := sess.doc.Clone()
	next.UserID = userID
	next.UpdatedAt = time.Now().UTC()

	if err := srv.cache.Put(ctx, next); err != nil {
		srv.logger.Error("Local cache write failed, aborting save", "userID", userID, "error", err)

		return nil, domainerrors.ErrCacheWriteFailed.WrapMessage(err.Error())
	}

	out := &usecase.SaveOutput{
		Document:         next,
		PersistedLocally: true,
	}

	if err := srv.repo.Upsert(ctx, next); err != nil {
		if errors.Is(err, repository.ErrStoreUnavailable) {
			out.Note = usecase.NoteOfflineMode
			srv.logger.Warn("Remote store unreachable, saved locally only", "userID", userID, "error", err)
		} else {
			out.Note = usecase.NoteSyncFailed
			srv.logger.Warn("Remote upsert rejected, saved locally only", "userID", userID, "error", err)
		}
	} else {
		out.PersistedRemotely = true
	}

	applyDocument(srv.env, next)

	sess.doc = next
	sess.snapshot = next.Clone()
	sess.note = out.Note

	srv.publishSaved(ctx, next, out.PersistedRemotely, out.Note)

	return out, nil
}

// Reset replaces the working document with a fresh default and applies it.
// The snapshot stays as it was, so the reset shows up as an unsaved change.
func (srv *customizationService) Reset(ctx context.Context, userID uuid.UUID) (*usecase.SessionView, error) {
	srv.logger.Debug("Resetting customization to defaults", "userID", userID)

	sess := srv.sessionFor(userID)
	sess.mu.Lock()
	defer sess.mu.Unlock()

	doc := entity.BuildDefault(userID)
	applyDocument(srv.env, doc)
	sess.doc = doc

	return srv.viewLocked(sess), nil
}

// Discard drops the in-memory session. Unsaved changes are lost.
func (srv *customizationService) Discard(userID uuid.UUID) {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	delete(srv.sessions, userID)
}

// viewLocked builds the session view. Dirty means the working document
// differs from the snapshot; a session that was reset before ever loading
// has no snapshot and counts as dirty.
func (srv *customizationService) viewLocked(sess *session) *usecase.SessionView {
	dirty := sess.snapshot == nil || !sess.doc.Equal(sess.snapshot)

	return &usecase.SessionView{
		Document:   sess.doc,
		Dirty:      dirty,
		SourceNote: sess.note,
	}
}

// publishSaved emits a preference-saved event. Publishing is best effort and
// never affects the save result.
func (srv *customizationService) publishSaved(ctx context.Context, doc *entity.PreferenceDocument, synced bool, note string) {
	if srv.publisher == nil {
		return
	}

	event := &service.PreferenceEvent{
		RequestID:  uuid.NewString(),
		UserID:     doc.UserID.String(),
		DocumentID: doc.ID.String(),
		UpdatedAt:  doc.UpdatedAt,
		Synced:     synced,
		Note:       note,
	}

	if err := srv.publisher.PublishPreferenceEvent(ctx, event); err != nil {
		srv.logger.Error("Failed to publish preference event", "userID", doc.UserID, "error", err)
	}
}
