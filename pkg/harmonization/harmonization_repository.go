package harmonization

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"gcs-food-backend/domain"
	"gcs-food-backend/entities"
	"gcs-food-backend/internal/utils"
)

type (
	HarmonizationRepository interface {
		FindMany(ctx context.Context, where domain.HarmonizationWhere, include domain.HarmonizationInclude) ([]*entities.Harmonization, error)
		FindUnique(ctx context.Context, id string, include domain.HarmonizationInclude) (*entities.Harmonization, error)
		Create(ctx context.Context, harmonization *entities.Harmonization) error
	}

	harmonizationRepository struct {
		db *gorm.DB
	}
)

func NewHarmonizationRepository(db *gorm.DB) HarmonizationRepository {
	return &harmonizationRepository{db: db}
}

func (r *harmonizationRepository) FindMany(ctx context.Context, where domain.HarmonizationWhere, include domain.HarmonizationInclude) ([]*entities.Harmonization, error) {
	q := r.db.WithContext(ctx).Model(&entities.Harmonization{})
	if where.UserID != "" {
		q = q.Where("user_id = ?", where.UserID)
	}
	if where.Search != "" {
		like := utils.LikePattern(where.Search)
		q = q.Where(
			"title ILIKE ? OR description ILIKE ? OR item1_name ILIKE ? OR item2_name ILIKE ?",
			like, like, like, like,
		)
	}
	if include.User {
		q = q.Preload("User")
	}

	harmonizations := make([]*entities.Harmonization, 0)
	if err := q.Order("created_at asc").Find(&harmonizations).Error; err != nil {
		return nil, err
	}
	return harmonizations, nil
}

func (r *harmonizationRepository) FindUnique(ctx context.Context, id string, include domain.HarmonizationInclude) (*entities.Harmonization, error) {
	q := r.db.WithContext(ctx)
	if include.User {
		q = q.Preload("User")
	}

	var harmonization entities.Harmonization
	err := q.Where("id = ?", id).First(&harmonization).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &harmonization, nil
}

func (r *harmonizationRepository) Create(ctx context.Context, harmonization *entities.Harmonization) error {
	if harmonization.ID == "" {
		harmonization.ID = uuid.NewString()
	}
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(harmonization).Error
}
