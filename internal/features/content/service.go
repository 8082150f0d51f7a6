package content

import (
	"errors"
	"fmt"

	users_models "promoforge-backend/internal/features/users/models"

	"github.com/google/uuid"
)

type ContentService struct {
	socialContentRepository  *SocialContentRepository
	generatedImageRepository *GeneratedImageRepository
}

func (s *ContentService) SaveSocialContent(
	user *users_models.User,
	item *SocialContent,
) error {
	if item.Platform == "" {
		return errors.New("platform is required")
	}

	if item.Content == "" {
		return errors.New("content is required")
	}

	item.UserID = user.ID

	return s.socialContentRepository.Save(item)
}

func (s *ContentService) SaveGeneratedImage(
	user *users_models.User,
	item *GeneratedImage,
) error {
	if item.Platform == "" {
		return errors.New("platform is required")
	}

	if item.ImageURL == "" {
		return errors.New("image URL is required")
	}

	item.UserID = user.ID

	return s.generatedImageRepository.Save(item)
}

func (s *ContentService) GetUserSocialContent(
	user *users_models.User,
) ([]*SocialContent, error) {
	return s.socialContentRepository.FindByUserID(user.ID)
}

func (s *ContentService) GetUserGeneratedImages(
	user *users_models.User,
) ([]*GeneratedImage, error) {
	return s.generatedImageRepository.FindByUserID(user.ID)
}

func (s *ContentService) GetSocialContentByIDs(ids []uuid.UUID) ([]*SocialContent, error) {
	return s.socialContentRepository.FindByIDs(ids)
}

func (s *ContentService) GetGeneratedImagesByIDs(ids []uuid.UUID) ([]*GeneratedImage, error) {
	return s.generatedImageRepository.FindByIDs(ids)
}

func (s *ContentService) DeleteSocialContent(user *users_models.User, id uuid.UUID) error {
	item, err := s.socialContentRepository.FindByID(id)
	if err != nil {
		return fmt.Errorf("failed to get social content: %w", err)
	}

	if item.UserID != user.ID {
		return errors.New("insufficient permissions to delete this content")
	}

	return s.socialContentRepository.Delete(id)
}

func (s *ContentService) DeleteGeneratedImage(user *users_models.User, id uuid.UUID) error {
	item, err := s.generatedImageRepository.FindByID(id)
	if err != nil {
		return fmt.Errorf("failed to get generated image: %w", err)
	}

	if item.UserID != user.ID {
		return errors.New("insufficient permissions to delete this image")
	}

	return s.generatedImageRepository.Delete(id)
}
