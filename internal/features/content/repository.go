package content

import (
	"time"

	"promoforge-backend/internal/storage"

	"github.com/google/uuid"
)

// The two content stores are disjoint: social posts and generated images
// live in separate tables and are always looked up by the content item's
// own id, never by product id.

type SocialContentRepository struct{}

func (r *SocialContentRepository) Save(item *SocialContent) error {
	if item.ID == uuid.Nil {
		item.ID = uuid.New()
	}

	if item.CreatedAt.IsZero() {
		item.CreatedAt = time.Now().UTC()
	}

	return storage.GetDb().Save(item).Error
}

func (r *SocialContentRepository) FindByID(id uuid.UUID) (*SocialContent, error) {
	var item SocialContent

	if err := storage.GetDb().Where("id = ?", id).First(&item).Error; err != nil {
		return nil, err
	}

	return &item, nil
}

func (r *SocialContentRepository) FindByIDs(ids []uuid.UUID) ([]*SocialContent, error) {
	var items []*SocialContent

	if len(ids) == 0 {
		return items, nil
	}

	err := storage.GetDb().Where("id IN ?", ids).Find(&items).Error

	return items, err
}

func (r *SocialContentRepository) FindByUserID(userID uuid.UUID) ([]*SocialContent, error) {
	var items []*SocialContent

	err := storage.GetDb().
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&items).Error

	return items, err
}

func (r *SocialContentRepository) Delete(id uuid.UUID) error {
	return storage.GetDb().Delete(&SocialContent{}, id).Error
}

type GeneratedImageRepository struct{}

func (r *GeneratedImageRepository) Save(item *GeneratedImage) error {
	if item.ID == uuid.Nil {
		item.ID = uuid.New()
	}

	if item.CreatedAt.IsZero() {
		item.CreatedAt = time.Now().UTC()
	}

	return storage.GetDb().Save(item).Error
}

func (r *GeneratedImageRepository) FindByID(id uuid.UUID) (*GeneratedImage, error) {
	var item GeneratedImage

	if err := storage.GetDb().Where("id = ?", id).First(&item).Error; err != nil {
		return nil, err
	}

	return &item, nil
}

func (r *GeneratedImageRepository) FindByIDs(ids []uuid.UUID) ([]*GeneratedImage, error) {
	var items []*GeneratedImage

	if len(ids) == 0 {
		return items, nil
	}

	err := storage.GetDb().Where("id IN ?", ids).Find(&items).Error

	return items, err
}

func (r *GeneratedImageRepository) FindByUserID(userID uuid.UUID) ([]*GeneratedImage, error) {
	var items []*GeneratedImage

	err := storage.GetDb().
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&items).Error

	return items, err
}

func (r *GeneratedImageRepository) Delete(id uuid.UUID) error {
	return storage.GetDb().Delete(&GeneratedImage{}, id).Error
}
