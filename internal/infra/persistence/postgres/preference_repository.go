package postgres

import (
	"context"

	"atlas/internal/domain/entity"
	"atlas/internal/domain/repository"
	"atlas/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/plugin/dbresolver"
)

// preferenceRepository implements repository.PreferenceRepository using GORM.
type preferenceRepository struct {
	db *gorm.DB
}

// NewPreferenceRepository is the constructor for preferenceRepository.
func NewPreferenceRepository(db *gorm.DB) repository.PreferenceRepository {
	return &preferenceRepository{
		db: db,
	}
}

// FindByUserID retrieves the single preference document owned by the user.
// A missing row maps to repository.ErrPreferenceNotFound; unreachable-store
// failures map to repository.ErrStoreUnavailable so the loader can fall back
// to the local cache with an offline note.
func (repo *preferenceRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.PreferenceDocument, error) {
	var prefM model.PreferenceModel

	if err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Read).
		Where("user_id = ?", userID).
		First(&prefM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPreferenceNotFound
		}

		return nil, classifyStoreError(err, "find preference document by user id")
	}

	doc, err := model.ToPreferenceDomain(&prefM)
	if err != nil {
		return nil, errors.Wrap(err, "map preference row to domain")
	}

	return doc, nil
}

// Upsert inserts the document or replaces the row with the same user_id.
// Last writer wins; no conflict detection beyond the unique key.
func (repo *preferenceRepository) Upsert(ctx context.Context, doc *entity.PreferenceDocument) error {
	prefM, err := model.FromPreferenceDomain(doc)
	if err != nil {
		return errors.Wrap(err, "map preference document to row")
	}

	if err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write, clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			UpdateAll: true,
		}).
		Create(prefM).Error; err != nil {
		return classifyStoreError(err, "upsert preference document")
	}

	return nil
}
