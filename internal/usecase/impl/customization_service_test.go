package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"atlas/internal/domain/entity"
	domainerrors "atlas/internal/domain/errors"
	"atlas/internal/domain/repository"
	"atlas/internal/domain/service"
	"atlas/internal/infra/environment"
	mockRepo "atlas/internal/mocks/repository"
	mockService "atlas/internal/mocks/service"
	"atlas/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// customizationFixtures holds all test dependencies for customization service tests.
type customizationFixtures struct {
	service   usecase.CustomizationUsecase
	repo      *mockRepo.MockPreferenceRepository
	cache     *mockRepo.MockPreferenceCache
	publisher *mockService.MockEventPublisher
	env       *environment.State
}

func createTestCustomizationService(t *testing.T) customizationFixtures {
	repo := mockRepo.NewMockPreferenceRepository(t)
	cache := mockRepo.NewMockPreferenceCache(t)
	publisher := mockService.NewMockEventPublisher(t)
	env := environment.NewWithSignal(func() bool { return false })
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	svc := NewCustomizationService(repo, cache, env, publisher, logger)

	return customizationFixtures{
		service:   svc,
		repo:      repo,
		cache:     cache,
		publisher: publisher,
		env:       env,
	}
}

func storedDocument(userID uuid.UUID) *entity.PreferenceDocument {
	doc := entity.BuildDefault(userID)
	doc.Theme.PrimaryColor = "#112233"
	doc.Layout.CompactMode = true

	return doc
}

func TestCustomizationService_Load_RemoteHit(t *testing.T) {
	fx := createTestCustomizationService(t)
	ctx := context.Background()
	userID := uuid.New()
	stored := storedDocument(userID)

	fx.repo.EXPECT().FindByUserID(ctx, userID).Return(stored, nil)

	output, err := fx.service.Load(ctx, userID)

	require.NoError(t, err)
	assert.True(t, stored.Equal(output.Document))
	assert.Empty(t, output.SourceNote)

	// The document was applied to the environment.
	snap := fx.env.Snapshot()
	assert.Equal(t, "#112233", snap.Variables["--color-primary"])
	assert.True(t, snap.Flags["compact"])

	view, err := fx.service.Current(ctx, userID)
	require.NoError(t, err)
	assert.False(t, view.Dirty)
}

func TestCustomizationService_Load_RemoteMissing_CacheHit(t *testing.T) {
	fx := createTestCustomizationService(t)
	ctx := context.Background()
	userID := uuid.New()
	cached := storedDocument(userID)

	fx.repo.EXPECT().FindByUserID(ctx, userID).Return(nil, repository.ErrPreferenceNotFound)
	fx.cache.EXPECT().Get(ctx, userID).Return(cached, nil)

	output, err := fx.service.Load(ctx, userID)

	require.NoError(t, err)
	assert.True(t, cached.Equal(output.Document))
	assert.Empty(t, output.SourceNote)
}

func TestCustomizationService_Load_RemoteUnavailable_CacheHit(t *testing.T) {
	fx := createTestCustomizationService(t)
	ctx := context.Background()
	userID := uuid.New()
	cached := storedDocument(userID)

	fx.repo.EXPECT().
		FindByUserID(ctx, userID).
		Return(nil, errors.Wrap(repository.ErrStoreUnavailable, "dial tcp: connection refused"))
	fx.cache.EXPECT().Get(ctx, userID).Return(cached, nil)

	output, err := fx.service.Load(ctx, userID)

	require.NoError(t, err)
	assert.True(t, cached.Equal(output.Document))
	assert.Equal(t, usecase.NoteOfflineMode, output.SourceNote)
}

func TestCustomizationService_Load_RemoteUnavailable_NoCache(t *testing.T) {
	fx := createTestCustomizationService(t)
	ctx := context.Background()
	userID := uuid.New()

	fx.repo.EXPECT().FindByUserID(ctx, userID).Return(nil, repository.ErrStoreUnavailable)
	fx.cache.EXPECT().Get(ctx, userID).Return(nil, repository.ErrCacheMiss)

	output, err := fx.service.Load(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, userID, output.Document.UserID)
	assert.Equal(t, entity.DefaultPrimaryColor, output.Document.Theme.PrimaryColor)
	assert.Equal(t, usecase.NoteOfflineMode, output.SourceNote)
}

func TestCustomizationService_Load_NothingStored(t *testing.T) {
	fx := createTestCustomizationService(t)
	ctx := context.Background()
	userID := uuid.New()

	fx.repo.EXPECT().FindByUserID(ctx, userID).Return(nil, repository.ErrPreferenceNotFound)
	fx.cache.EXPECT().Get(ctx, userID).Return(nil, repository.ErrCacheMiss)

	output, err := fx.service.Load(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, userID, output.Document.UserID)
	assert.Equal(t, entity.DefaultPrimaryColor, output.Document.Theme.PrimaryColor)
	// A reachable but empty store is not offline.
	assert.Empty(t, output.SourceNote)

	view, err := fx.service.Current(ctx, userID)
	require.NoError(t, err)
	assert.False(t, view.Dirty)
}

func TestCustomizationService_Load_CacheCorrupt(t *testing.T) {
	fx := createTestCustomizationService(t)
	ctx := context.Background()
	userID := uuid.New()

	fx.repo.EXPECT().FindByUserID(ctx, userID).Return(nil, repository.ErrPreferenceNotFound)
	fx.cache.EXPECT().
		Get(ctx, userID).
		Return(nil, errors.Wrap(repository.ErrCacheCorrupt, "unexpected end of JSON input"))

	output, err := fx.service.Load(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, entity.DefaultPrimaryColor, output.Document.Theme.PrimaryColor)
	assert.Empty(t, output.SourceNote)
}

func TestCustomizationService_SetField_MarksDirtyAndApplies(t *testing.T) {
	fx := createTestCustomizationService(t)
	ctx := context.Background()
	userID := uuid.New()
	stored := storedDocument(userID)

	fx.repo.EXPECT().FindByUserID(ctx, userID).Return(stored, nil)

	loaded, err := fx.service.Load(ctx, userID)
	require.NoError(t, err)

	view, err := fx.service.SetField(ctx, userID, &usecase.SetFieldInput{
		Path:  "theme.primaryColor",
		Value: "#FF0000",
	})

	require.NoError(t, err)
	assert.True(t, view.Dirty)
	assert.Equal(t, "#FF0000", view.Document.Theme.PrimaryColor)

	// Preview applied the change to the environment.
	assert.Equal(t, "#FF0000", fx.env.Snapshot().Variables["--color-primary"])

	// The previously returned document is untouched; mutations produce a
	// fresh copy.
	assert.Equal(t, "#112233", loaded.Document.Theme.PrimaryColor)
}

func TestCustomizationService_SetField_WithoutPreview(t *testing.T) {
	fx := createTestCustomizationService(t)
	ctx := context.Background()
	userID := uuid.New()

	fx.repo.EXPECT().FindByUserID(ctx, userID).Return(storedDocument(userID), nil)

	_, err := fx.service.Load(ctx, userID)
	require.NoError(t, err)

	preview := false
	view, err := fx.service.SetField(ctx, userID, &usecase.SetFieldInput{
		Path:    "theme.primaryColor",
		Value:   "#FF0000",
		Preview: &preview,
	})

	require.NoError(t, err)
	assert.True(t, view.Dirty)
	assert.Equal(t, "#FF0000", view.Document.Theme.PrimaryColor)
	// The environment still shows the loaded value.
	assert.Equal(t, "#112233", fx.env.Snapshot().Variables["--color-primary"])
}

func TestCustomizationService_SetField_AutoLoadsSession(t *testing.T) {
	fx := createTestCustomizationService(t)
	ctx := context.Background()
	userID := uuid.New()

	fx.repo.EXPECT().FindByUserID(ctx, userID).Return(storedDocument(userID), nil)

	view, err := fx.service.SetField(ctx, userID, &usecase.SetFieldInput{
		Path:  "layout.compactMode",
		Value: false,
	})

	require.NoError(t, err)
	assert.True(t, view.Dirty)
	assert.False(t, view.Document.Layout.CompactMode)
}

func TestCustomizationService_SetField_InvalidPath(t *testing.T) {
	fx := createTestCustomizationService(t)
	ctx := context.Background()
	userID := uuid.New()

	fx.repo.EXPECT().FindByUserID(ctx, userID).Return(storedDocument(userID), nil)

	_, err := fx.service.Load(ctx, userID)
	require.NoError(t, err)

	_, err = fx.service.SetField(ctx, userID, &usecase.SetFieldInput{
		Path:  "theme.unknown",
		Value: "x",
	})

	require.Error(t, err)
	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "INVALID_FIELD_PATH", appErr.ErrorCode())

	// The session document is unchanged and still clean.
	view, err := fx.service.Current(ctx, userID)
	require.NoError(t, err)
	assert.False(t, view.Dirty)
}

func TestCustomizationService_SetField_InvalidValue(t *testing.T) {
	fx := createTestCustomizationService(t)
	ctx := context.Background()
	userID := uuid.New()

	fx.repo.EXPECT().FindByUserID(ctx, userID).Return(storedDocument(userID), nil)

	_, err := fx.service.SetField(ctx, userID, &usecase.SetFieldInput{
		Path:  "theme.fontSize",
		Value: "huge",
	})

	require.Error(t, err)
	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "INVALID_FIELD_VALUE", appErr.ErrorCode())
}

func TestCustomizationService_SetThemeColors(t *testing.T) {
	fx := createTestCustomizationService(t)
	ctx := context.Background()
	userID := uuid.New()

	fx.repo.EXPECT().FindByUserID(ctx, userID).Return(storedDocument(userID), nil)

	view, err := fx.service.SetThemeColors(ctx, userID, &usecase.SetThemeColorsInput{
		Primary: "#FF0000",
		Accent:  "#00FF00",
	})

	require.NoError(t, err)
	assert.True(t, view.Dirty)
	assert.Equal(t, "#FF0000", view.Document.Theme.PrimaryColor)
	assert.Equal(t, "#00FF00", view.Document.Theme.AccentColor)

	snap := fx.env.Snapshot()
	assert.Equal(t, "#FF0000", snap.Variables["--color-primary"])
	assert.Equal(t, "#00FF00", snap.Variables["--color-accent"])
}

func TestCustomizationService_Save_Success(t *testing.T) {
	fx := createTestCustomizationService(t)
	ctx := context.Background()
	userID := uuid.New()
	stored := storedDocument(userID)

	fx.repo.EXPECT().FindByUserID(ctx, userID).Return(stored, nil)

	_, err := fx.service.SetField(ctx, userID, &usecase.SetFieldInput{
		Path:  "theme.fontSize",
		Value: float64(18),
	})
	require.NoError(t, err)

	before := time.Now().UTC()

	var persisted *entity.PreferenceDocument
	fx.cache.EXPECT().
		Put(ctx, mock.AnythingOfType("*entity.PreferenceDocument")).
		Run(func(_ context.Context, doc *entity.PreferenceDocument) {
			persisted = doc
		}).
		Return(nil)
	fx.repo.EXPECT().
		Upsert(ctx, mock.AnythingOfType("*entity.PreferenceDocument")).
		Return(nil)

	var published *service.PreferenceEvent
	fx.publisher.EXPECT().
		PublishPreferenceEvent(ctx, mock.AnythingOfType("*service.PreferenceEvent")).
		Run(func(_ context.Context, event *service.PreferenceEvent) {
			published = event
		}).
		Return(nil)

	output, err := fx.service.Save(ctx, userID)

	require.NoError(t, err)
	assert.True(t, output.PersistedLocally)
	assert.True(t, output.PersistedRemotely)
	assert.Empty(t, output.Note)

	require.NotNil(t, persisted)
	assert.Equal(t, userID, persisted.UserID)
	assert.Equal(t, 18, persisted.Theme.FontSize)
	assert.False(t, persisted.UpdatedAt.Before(before))

	require.NotNil(t, published)
	assert.Equal(t, userID.String(), published.UserID)
	assert.True(t, published.Synced)

	view, err := fx.service.Current(ctx, userID)
	require.NoError(t, err)
	assert.False(t, view.Dirty)
}

func TestCustomizationService_Save_RemoteUnavailable(t *testing.T) {
	fx := createTestCustomizationService(t)
	ctx := context.Background()
	userID := uuid.New()

	fx.repo.EXPECT().FindByUserID(ctx, userID).Return(storedDocument(userID), nil)

	_, err := fx.service.SetField(ctx, userID, &usecase.SetFieldInput{
		Path:  "preferences.soundEffects",
		Value: false,
	})
	require.NoError(t, err)

	fx.cache.EXPECT().Put(ctx, mock.AnythingOfType("*entity.PreferenceDocument")).Return(nil)
	fx.repo.EXPECT().
		Upsert(ctx, mock.AnythingOfType("*entity.PreferenceDocument")).
		Return(errors.Wrap(repository.ErrStoreUnavailable, "i/o timeout"))

	var published *service.PreferenceEvent
	fx.publisher.EXPECT().
		PublishPreferenceEvent(ctx, mock.AnythingOfType("*service.PreferenceEvent")).
		Run(func(_ context.Context, event *service.PreferenceEvent) {
			published = event
		}).
		Return(nil)

	output, err := fx.service.Save(ctx, userID)

	require.NoError(t, err)
	assert.True(t, output.PersistedLocally)
	assert.False(t, output.PersistedRemotely)
	assert.Equal(t, usecase.NoteOfflineMode, output.Note)

	require.NotNil(t, published)
	assert.False(t, published.Synced)

	// A locally captured save still clears the dirty flag.
	view, err := fx.service.Current(ctx, userID)
	require.NoError(t, err)
	assert.False(t, view.Dirty)
	assert.Equal(t, usecase.NoteOfflineMode, view.SourceNote)
}

func TestCustomizationService_Save_RemoteRejected(t *testing.T) {
	fx := createTestCustomizationService(t)
	ctx := context.Background()
	userID := uuid.New()

	fx.repo.EXPECT().FindByUserID(ctx, userID).Return(storedDocument(userID), nil)

	_, err := fx.service.SetField(ctx, userID, &usecase.SetFieldInput{
		Path:  "preferences.autoSave",
		Value: false,
	})
	require.NoError(t, err)

	fx.cache.EXPECT().Put(ctx, mock.AnythingOfType("*entity.PreferenceDocument")).Return(nil)
	fx.repo.EXPECT().
		Upsert(ctx, mock.AnythingOfType("*entity.PreferenceDocument")).
		Return(errors.New("permission denied for table preference_documents"))
	fx.publisher.EXPECT().
		PublishPreferenceEvent(ctx, mock.AnythingOfType("*service.PreferenceEvent")).
		Return(nil)

	output, err := fx.service.Save(ctx, userID)

	require.NoError(t, err)
	assert.True(t, output.PersistedLocally)
	assert.False(t, output.PersistedRemotely)
	assert.Equal(t, usecase.NoteSyncFailed, output.Note)
}

func TestCustomizationService_Save_CacheWriteFails(t *testing.T) {
	fx := createTestCustomizationService(t)
	ctx := context.Background()
	userID := uuid.New()

	fx.repo.EXPECT().FindByUserID(ctx, userID).Return(storedDocument(userID), nil)

	_, err := fx.service.SetField(ctx, userID, &usecase.SetFieldInput{
		Path:  "theme.borderRadius",
		Value: float64(12),
	})
	require.NoError(t, err)

	fx.cache.EXPECT().
		Put(ctx, mock.AnythingOfType("*entity.PreferenceDocument")).
		Return(errors.New("database is locked"))

	_, err = fx.service.Save(ctx, userID)

	require.Error(t, err)
	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "CACHE_WRITE_FAILED", appErr.ErrorCode())

	// Nothing reached the remote store and the change is still pending.
	view, verr := fx.service.Current(ctx, userID)
	require.NoError(t, verr)
	assert.True(t, view.Dirty)
}

func TestCustomizationService_Save_PublishFailureIgnored(t *testing.T) {
	fx := createTestCustomizationService(t)
	ctx := context.Background()
	userID := uuid.New()

	fx.repo.EXPECT().FindByUserID(ctx, userID).Return(storedDocument(userID), nil)
	fx.cache.EXPECT().Put(ctx, mock.AnythingOfType("*entity.PreferenceDocument")).Return(nil)
	fx.repo.EXPECT().Upsert(ctx, mock.AnythingOfType("*entity.PreferenceDocument")).Return(nil)
	fx.publisher.EXPECT().
		PublishPreferenceEvent(ctx, mock.AnythingOfType("*service.PreferenceEvent")).
		Return(errors.New("topic does not exist"))

	output, err := fx.service.Save(ctx, userID)

	require.NoError(t, err)
	assert.True(t, output.PersistedRemotely)
}

func TestCustomizationService_Reset(t *testing.T) {
	fx := createTestCustomizationService(t)
	ctx := context.Background()
	userID := uuid.New()

	fx.repo.EXPECT().FindByUserID(ctx, userID).Return(storedDocument(userID), nil)

	_, err := fx.service.Load(ctx, userID)
	require.NoError(t, err)

	view, err := fx.service.Reset(ctx, userID)

	require.NoError(t, err)
	assert.True(t, view.Dirty)
	assert.Equal(t, entity.DefaultPrimaryColor, view.Document.Theme.PrimaryColor)
	assert.Equal(t, userID, view.Document.UserID)

	// The defaults were applied immediately.
	snap := fx.env.Snapshot()
	assert.Equal(t, entity.DefaultPrimaryColor, snap.Variables["--color-primary"])
	assert.False(t, snap.Flags["compact"])
}

func TestCustomizationService_Reset_ThenSave(t *testing.T) {
	fx := createTestCustomizationService(t)
	ctx := context.Background()
	userID := uuid.New()

	_, err := fx.service.Reset(ctx, userID)
	require.NoError(t, err)

	var persisted *entity.PreferenceDocument
	fx.cache.EXPECT().
		Put(ctx, mock.AnythingOfType("*entity.PreferenceDocument")).
		Run(func(_ context.Context, doc *entity.PreferenceDocument) {
			persisted = doc
		}).
		Return(nil)
	fx.repo.EXPECT().Upsert(ctx, mock.AnythingOfType("*entity.PreferenceDocument")).Return(nil)
	fx.publisher.EXPECT().
		PublishPreferenceEvent(ctx, mock.AnythingOfType("*service.PreferenceEvent")).
		Return(nil)

	output, err := fx.service.Save(ctx, userID)

	require.NoError(t, err)
	assert.True(t, output.PersistedRemotely)
	require.NotNil(t, persisted)
	assert.Equal(t, entity.DefaultPrimaryColor, persisted.Theme.PrimaryColor)

	view, err := fx.service.Current(ctx, userID)
	require.NoError(t, err)
	assert.False(t, view.Dirty)

	// Reset seeds the session from the default builder, so nothing in the
	// flow ever reads from the repository.
	fx.repo.AssertNotCalled(t, "FindByUserID", ctx, userID)
}

func TestCustomizationService_MutateAndRevert_NotDirty(t *testing.T) {
	fx := createTestCustomizationService(t)
	ctx := context.Background()
	userID := uuid.New()

	fx.repo.EXPECT().FindByUserID(ctx, userID).Return(storedDocument(userID), nil)

	_, err := fx.service.Load(ctx, userID)
	require.NoError(t, err)

	view, err := fx.service.SetField(ctx, userID, &usecase.SetFieldInput{
		Path:  "layout.compactMode",
		Value: false,
	})
	require.NoError(t, err)
	assert.True(t, view.Dirty)

	// Reverting to the loaded value restores deep equality with the
	// snapshot, so the session reads as clean again.
	view, err = fx.service.SetField(ctx, userID, &usecase.SetFieldInput{
		Path:  "layout.compactMode",
		Value: true,
	})
	require.NoError(t, err)
	assert.False(t, view.Dirty)
}

func TestCustomizationService_Discard(t *testing.T) {
	fx := createTestCustomizationService(t)
	ctx := context.Background()
	userID := uuid.New()

	fx.repo.EXPECT().FindByUserID(ctx, userID).Return(storedDocument(userID), nil).Twice()

	_, err := fx.service.SetField(ctx, userID, &usecase.SetFieldInput{
		Path:  "theme.primaryColor",
		Value: "#FF0000",
	})
	require.NoError(t, err)

	fx.service.Discard(userID)

	// A fresh session resolves from the stores again; the unsaved change
	// is gone.
	view, err := fx.service.Current(ctx, userID)
	require.NoError(t, err)
	assert.False(t, view.Dirty)
	assert.Equal(t, "#112233", view.Document.Theme.PrimaryColor)
}
