package catalog

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"gcs-food-backend/domain"
	"gcs-food-backend/entities"
)

type (
	NationalityRepository interface {
		FindMany(ctx context.Context) ([]*entities.Nationality, error)
		FindUnique(ctx context.Context, id string) (*entities.Nationality, error)
		Create(ctx context.Context, nationality *entities.Nationality) error
	}

	CategoryRepository interface {
		FindMany(ctx context.Context) ([]*entities.Category, error)
		FindUnique(ctx context.Context, id string) (*entities.Category, error)
		Create(ctx context.Context, category *entities.Category) error
	}

	nationalityRepository struct {
		db *gorm.DB
	}

	categoryRepository struct {
		db *gorm.DB
	}
)

func NewNationalityRepository(db *gorm.DB) NationalityRepository {
	return &nationalityRepository{db: db}
}

func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &categoryRepository{db: db}
}

func (r *nationalityRepository) FindMany(ctx context.Context) ([]*entities.Nationality, error) {
	nationalities := make([]*entities.Nationality, 0)
	if err := r.db.WithContext(ctx).Order("name asc").Find(&nationalities).Error; err != nil {
		return nil, err
	}
	return nationalities, nil
}

func (r *nationalityRepository) FindUnique(ctx context.Context, id string) (*entities.Nationality, error) {
	var nationality entities.Nationality
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&nationality).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &nationality, nil
}

func (r *nationalityRepository) Create(ctx context.Context, nationality *entities.Nationality) error {
	err := r.db.WithContext(ctx).Create(nationality).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return domain.ErrNationalityExists
	}
	return err
}

func (r *categoryRepository) FindMany(ctx context.Context) ([]*entities.Category, error) {
	categories := make([]*entities.Category, 0)
	if err := r.db.WithContext(ctx).Order("name asc").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *categoryRepository) FindUnique(ctx context.Context, id string) (*entities.Category, error) {
	var category entities.Category
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&category).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *categoryRepository) Create(ctx context.Context, category *entities.Category) error {
	err := r.db.WithContext(ctx).Create(category).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return domain.ErrCategoryExists
	}
	return err
}
