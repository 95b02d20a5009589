package cache

import (
	"context"
	"errors"

	"github.com/Aishwarya-Deepak/FSD/internal/domain"
)

type ProductCache interface {
	GetAll(ctx context.Context) ([]*domain.Product, error)
	SetAll(ctx context.Context, products []*domain.Product) error
}

var ErrCacheMiss = errors.New("cache miss")
