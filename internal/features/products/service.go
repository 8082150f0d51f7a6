package products

import (
	"errors"
	"fmt"

	users_models "promoforge-backend/internal/features/users/models"

	"github.com/google/uuid"
)

type ProductService struct {
	productRepository *ProductRepository
}

func (s *ProductService) SaveProduct(user *users_models.User, product *Product) error {
	if product.Name == "" {
		return errors.New("product name is required")
	}

	if product.Price < 0 {
		return errors.New("product price cannot be negative")
	}

	if product.ID != uuid.Nil {
		existing, err := s.productRepository.FindByID(product.ID)
		if err != nil {
			return fmt.Errorf("failed to get product: %w", err)
		}

		if existing.UserID != user.ID {
			return errors.New("insufficient permissions to manage this product")
		}
	}

	product.UserID = user.ID

	return s.productRepository.Save(product)
}

func (s *ProductService) GetProduct(user *users_models.User, id uuid.UUID) (*Product, error) {
	product, err := s.productRepository.FindByID(id)
	if err != nil {
		return nil, err
	}

	if product.UserID != user.ID {
		return nil, errors.New("insufficient permissions to view this product")
	}

	return product, nil
}

func (s *ProductService) GetUserProducts(user *users_models.User) ([]*Product, error) {
	return s.productRepository.FindByUserID(user.ID)
}

// GetProductsByIDs resolves an id-set without ownership filtering; it is
// used by the campaign aggregator which already operates on a
// user-owned workspace.
func (s *ProductService) GetProductsByIDs(ids []uuid.UUID) ([]*Product, error) {
	return s.productRepository.FindByIDs(ids)
}

func (s *ProductService) DeleteProduct(user *users_models.User, id uuid.UUID) error {
	product, err := s.productRepository.FindByID(id)
	if err != nil {
		return fmt.Errorf("failed to get product: %w", err)
	}

	if product.UserID != user.ID {
		return errors.New("insufficient permissions to delete this product")
	}

	return s.productRepository.Delete(id)
}
