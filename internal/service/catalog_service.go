package service

import (
	"context"
	"errors"
	"log"

	"github.com/Aishwarya-Deepak/FSD/internal/cache"
	"github.com/Aishwarya-Deepak/FSD/internal/domain"
	"github.com/Aishwarya-Deepak/FSD/internal/repository"
	"golang.org/x/sync/singleflight"
)

// CatalogService serves product reads through a cache-aside layer. Cache
// failures are logged and fall through to the repository; they never surface
// to callers.
type CatalogService struct {
	repo  repository.ProductRepository
	cache cache.ProductCache
	sfg   singleflight.Group // Prevents cache stampede on the product list
}

func NewCatalogService(repo repository.ProductRepository, cache cache.ProductCache) *CatalogService {
	return &CatalogService{
		repo:  repo,
		cache: cache,
	}
}

func (s *CatalogService) GetAllProducts(ctx context.Context) ([]*domain.Product, error) {
	v, err, _ := s.sfg.Do("products:list", func() (interface{}, error) {
		products, err := s.cache.GetAll(ctx)
		if err == nil {
			return products, nil
		}

		if !errors.Is(err, cache.ErrCacheMiss) {
			log.Printf("product cache get error: %v", err)
		}

		products, err = s.repo.GetAllProducts(ctx)
		if err != nil {
			return nil, err
		}

		go func() {
			if err := s.cache.SetAll(context.Background(), products); err != nil {
				log.Printf("product cache set error: %v", err)
			}
		}()

		return products, nil
	})
	if err != nil {
		return nil, err
	}

	return v.([]*domain.Product), nil
}

// GetProduct reads through to the repository directly; single-product lookups
// are cheap enough that only the full list is cached.
func (s *CatalogService) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	return s.repo.GetProduct(ctx, id)
}
