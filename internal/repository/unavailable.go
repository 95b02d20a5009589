package repository

import (
	"context"
	"errors"

	"github.com/Aishwarya-Deepak/FSD/internal/domain"
)

var ErrStoreUnavailable = errors.New("document store unavailable")

// unavailableRepository stands in when the startup connection to the store
// failed. The process keeps serving; store-backed routes fail per request.
type unavailableRepository struct{}

func NewUnavailableContactRepository() ContactRepository {
	return unavailableRepository{}
}

func NewUnavailableProductRepository() ProductRepository {
	return unavailableRepository{}
}

func (unavailableRepository) SaveContact(context.Context, *domain.ContactSubmission) error {
	return ErrStoreUnavailable
}

func (unavailableRepository) GetAllProducts(context.Context) ([]*domain.Product, error) {
	return nil, ErrStoreUnavailable
}

func (unavailableRepository) GetProduct(context.Context, string) (*domain.Product, error) {
	return nil, ErrStoreUnavailable
}
