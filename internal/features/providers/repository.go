package providers

import (
	"promoforge-backend/internal/storage"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProviderRepository struct{}

func (r *ProviderRepository) Save(provider *Provider) (*Provider, error) {
	db := storage.GetDb()

	err := db.Transaction(func(tx *gorm.DB) error {
		if provider.ID == uuid.Nil {
			if err := tx.
				Omit("BasicAuth", "HeaderAuth", "JWTAuth").
				Create(provider).Error; err != nil {
				return err
			}
		} else {
			if err := tx.
				Omit("BasicAuth", "HeaderAuth", "JWTAuth").
				Save(provider).Error; err != nil {
				return err
			}
		}

		switch provider.AuthMethod {
		case AuthMethodBasic:
			if provider.BasicAuth != nil {
				provider.BasicAuth.ProviderID = provider.ID
				if err := tx.Save(provider.BasicAuth).Error; err != nil {
					return err
				}
			}
		case AuthMethodHeader:
			if provider.HeaderAuth != nil {
				provider.HeaderAuth.ProviderID = provider.ID
				if err := tx.Save(provider.HeaderAuth).Error; err != nil {
					return err
				}
			}
		case AuthMethodJWT:
			if provider.JWTAuth != nil {
				provider.JWTAuth.ProviderID = provider.ID
				if err := tx.Save(provider.JWTAuth).Error; err != nil {
					return err
				}
			}
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	return provider, nil
}

func (r *ProviderRepository) FindByID(id uuid.UUID) (*Provider, error) {
	var provider Provider

	if err := storage.
		GetDb().
		Preload("BasicAuth").
		Preload("HeaderAuth").
		Preload("JWTAuth").
		Where("id = ?", id).
		First(&provider).Error; err != nil {
		return nil, err
	}

	return &provider, nil
}

func (r *ProviderRepository) FindByUserID(userID uuid.UUID) ([]*Provider, error) {
	var providers []*Provider

	if err := storage.
		GetDb().
		Preload("BasicAuth").
		Preload("HeaderAuth").
		Preload("JWTAuth").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&providers).Error; err != nil {
		return nil, err
	}

	return providers, nil
}

func (r *ProviderRepository) FindActiveByUserID(userID uuid.UUID) ([]*Provider, error) {
	var providers []*Provider

	if err := storage.
		GetDb().
		Preload("BasicAuth").
		Preload("HeaderAuth").
		Preload("JWTAuth").
		Where("user_id = ? AND is_active = ?", userID, true).
		Order("created_at ASC").
		Find(&providers).Error; err != nil {
		return nil, err
	}

	return providers, nil
}

func (r *ProviderRepository) UpdateLastDispatchError(
	providerID uuid.UUID,
	lastError *string,
) error {
	return storage.GetDb().
		Model(&Provider{}).
		Where("id = ?", providerID).
		Update("last_dispatch_error", lastError).Error
}

func (r *ProviderRepository) Delete(provider *Provider) error {
	return storage.GetDb().Transaction(func(tx *gorm.DB) error {
		if provider.BasicAuth != nil {
			if err := tx.Delete(provider.BasicAuth).Error; err != nil {
				return err
			}
		}

		if provider.HeaderAuth != nil {
			if err := tx.Delete(provider.HeaderAuth).Error; err != nil {
				return err
			}
		}

		if provider.JWTAuth != nil {
			if err := tx.Delete(provider.JWTAuth).Error; err != nil {
				return err
			}
		}

		return tx.Delete(provider).Error
	})
}
