package cache

import (
	"context"

	"github.com/Aishwarya-Deepak/FSD/internal/domain"
)

// NopCache is used when redis is unreachable at startup; every read is a
// miss and writes are discarded.
type NopCache struct{}

func (NopCache) GetAll(context.Context) ([]*domain.Product, error) {
	return nil, ErrCacheMiss
}

func (NopCache) SetAll(context.Context, []*domain.Product) error {
	return nil
}
