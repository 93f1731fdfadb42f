package service

import (
	"go-depo-catalog/internal/apperr"
	"go-depo-catalog/internal/repository"
)

// SlugRegistry answers global product slug availability. Slugs are not
// vendor-scoped: storefront URLs are global. The check here rejects
// duplicates early; the store's unique index remains the source of truth for
// race losers.
type SlugRegistry struct {
	productRepo repository.ProductRepository
}

func NewSlugRegistry(pRepo repository.ProductRepository) *SlugRegistry {
	return &SlugRegistry{productRepo: pRepo}
}

// IsAvailable reports whether slug is unused across all vendors.
func (r *SlugRegistry) IsAvailable(slug string) (bool, error) {
	exists, err := r.productRepo.SlugExists(slug)
	if err != nil {
		return false, apperr.Wrap(apperr.CodeInternal, err, "slug lookup failed")
	}
	return !exists, nil
}
