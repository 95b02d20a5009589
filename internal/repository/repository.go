package repository

import (
	"context"
	"errors"

	"github.com/Aishwarya-Deepak/FSD/internal/domain"
)

var ErrProductNotFound = errors.New("product not found")

// ContactRepository persists contact-form submissions. Consumers define the
// interface, not the MongoDB implementation.
type ContactRepository interface {
	SaveContact(ctx context.Context, submission *domain.ContactSubmission) error
}

type ProductRepository interface {
	GetAllProducts(ctx context.Context) ([]*domain.Product, error)
	GetProduct(ctx context.Context, id string) (*domain.Product, error)
}
