package harmonization

import (
	"context"
	"fmt"

	"gcs-food-backend/domain"
	"gcs-food-backend/entities"
	"gcs-food-backend/internal/utils/storage"
)

const imageFolder = "harmonizations"

var withUser = domain.HarmonizationInclude{User: true}

type (
	HarmonizationService interface {
		ListHarmonizations(ctx context.Context, filter domain.HarmonizationFilter) ([]*entities.Harmonization, error)
		GetHarmonization(ctx context.Context, id string) (*entities.Harmonization, error)
		CreateHarmonization(ctx context.Context, req domain.CreateHarmonizationRequest) (*entities.Harmonization, error)
	}

	OwnerChecker interface {
		UserExists(ctx context.Context, id string) (bool, error)
	}

	harmonizationService struct {
		harmonizationRepository HarmonizationRepository
		owners                  OwnerChecker
		images                  storage.ImageStore
	}
)

// NewHarmonizationService builds the service. A nil owners accepts any user
// id; a nil images stores data URLs as submitted.
func NewHarmonizationService(harmonizationRepository HarmonizationRepository, owners OwnerChecker, images storage.ImageStore) HarmonizationService {
	return &harmonizationService{
		harmonizationRepository: harmonizationRepository,
		owners:                  owners,
		images:                  images,
	}
}

func (s *harmonizationService) ListHarmonizations(ctx context.Context, filter domain.HarmonizationFilter) ([]*entities.Harmonization, error) {
	harmonizations, err := s.harmonizationRepository.FindMany(ctx, filter.Where(), withUser)
	if err != nil {
		return nil, err
	}
	if harmonizations == nil {
		harmonizations = []*entities.Harmonization{}
	}
	return harmonizations, nil
}

func (s *harmonizationService) GetHarmonization(ctx context.Context, id string) (*entities.Harmonization, error) {
	harmonization, err := s.harmonizationRepository.FindUnique(ctx, id, withUser)
	if err != nil {
		return nil, err
	}
	if harmonization == nil {
		return nil, domain.ErrHarmonizationNotFound
	}
	return harmonization, nil
}

func (s *harmonizationService) CreateHarmonization(ctx context.Context, req domain.CreateHarmonizationRequest) (*entities.Harmonization, error) {
	if s.owners != nil {
		ok, err := s.owners.UserExists(ctx, req.UserID)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, domain.ErrUnknownUser
		}
	}

	imageURL := req.ImageURL
	if s.images != nil && storage.IsDataURL(imageURL) {
		img, err := storage.ParseDataURL(imageURL, storage.AllowImage...)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrInvalidImage, err)
		}
		if imageURL, err = s.images.UploadImage(ctx, img, imageFolder); err != nil {
			return nil, err
		}
	}

	harmonization := &entities.Harmonization{
		Title:       req.Title,
		Description: req.Description,
		Item1Name:   req.Item1Name,
		Item2Name:   req.Item2Name,
		ImageURL:    imageURL,
		Item1Color:  req.Item1Color,
		UserID:      req.UserID,
	}
	if err := s.harmonizationRepository.Create(ctx, harmonization); err != nil {
		return nil, err
	}
	return harmonization, nil
}
