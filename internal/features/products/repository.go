package products

import (
	"time"

	"promoforge-backend/internal/storage"

	"github.com/google/uuid"
)

type ProductRepository struct{}

func (r *ProductRepository) Save(product *Product) error {
	if product.ID == uuid.Nil {
		product.ID = uuid.New()
	}

	if product.CreatedAt.IsZero() {
		product.CreatedAt = time.Now().UTC()
	}

	return storage.GetDb().Save(product).Error
}

func (r *ProductRepository) FindByID(id uuid.UUID) (*Product, error) {
	var product Product

	if err := storage.GetDb().Where("id = ?", id).First(&product).Error; err != nil {
		return nil, err
	}

	return &product, nil
}

func (r *ProductRepository) FindByIDs(ids []uuid.UUID) ([]*Product, error) {
	var products []*Product

	if len(ids) == 0 {
		return products, nil
	}

	err := storage.GetDb().Where("id IN ?", ids).Find(&products).Error

	return products, err
}

func (r *ProductRepository) FindByUserID(userID uuid.UUID) ([]*Product, error) {
	var products []*Product

	err := storage.GetDb().
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&products).Error

	return products, err
}

func (r *ProductRepository) Delete(id uuid.UUID) error {
	return storage.GetDb().Delete(&Product{}, id).Error
}
