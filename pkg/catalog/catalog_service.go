package catalog

import (
	"context"

	"gcs-food-backend/domain"
	"gcs-food-backend/entities"
)

type (
	CatalogService interface {
		ListNationalities(ctx context.Context) ([]*entities.Nationality, error)
		CreateNationality(ctx context.Context, req domain.CreateNationalityRequest) (*entities.Nationality, error)
		ListCategories(ctx context.Context) ([]*entities.Category, error)
		CreateCategory(ctx context.Context, req domain.CreateCategoryRequest) (*entities.Category, error)
	}

	catalogService struct {
		nationalityRepository NationalityRepository
		categoryRepository    CategoryRepository
	}
)

func NewCatalogService(nationalityRepository NationalityRepository, categoryRepository CategoryRepository) CatalogService {
	return &catalogService{
		nationalityRepository: nationalityRepository,
		categoryRepository:    categoryRepository,
	}
}

func (s *catalogService) ListNationalities(ctx context.Context) ([]*entities.Nationality, error) {
	nationalities, err := s.nationalityRepository.FindMany(ctx)
	if err != nil {
		return nil, err
	}
	if nationalities == nil {
		nationalities = []*entities.Nationality{}
	}
	return nationalities, nil
}

func (s *catalogService) CreateNationality(ctx context.Context, req domain.CreateNationalityRequest) (*entities.Nationality, error) {
	req.Normalize()
	nationality := &entities.Nationality{
		ID:        req.ID,
		Name:      req.Name,
		FlagEmoji: req.FlagEmoji,
	}
	if nationality.Name == "" {
		return nil, domain.ErrBlankName
	}
	if nationality.ID == "" {
		nationality.ID = Slug(nationality.Name)
	}
	if nationality.FlagEmoji == "" {
		nationality.FlagEmoji = domain.DefaultGlyph
	}

	if err := s.nationalityRepository.Create(ctx, nationality); err != nil {
		return nil, err
	}
	return nationality, nil
}

func (s *catalogService) ListCategories(ctx context.Context) ([]*entities.Category, error) {
	categories, err := s.categoryRepository.FindMany(ctx)
	if err != nil {
		return nil, err
	}
	if categories == nil {
		categories = []*entities.Category{}
	}
	return categories, nil
}

func (s *catalogService) CreateCategory(ctx context.Context, req domain.CreateCategoryRequest) (*entities.Category, error) {
	req.Normalize()
	category := &entities.Category{
		ID:    req.ID,
		Name:  req.Name,
		Emoji: req.Emoji,
	}
	if category.Name == "" {
		return nil, domain.ErrBlankName
	}
	if category.ID == "" {
		category.ID = Slug(category.Name)
	}
	if category.Emoji == "" {
		category.Emoji = domain.DefaultGlyph
	}

	if err := s.categoryRepository.Create(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}
