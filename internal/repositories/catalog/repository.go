// Package catalog provides the repository that caches parsed catalogs by
// source fingerprint, so a spreadsheet is only parsed once.
package catalog

import (
	"context"
	"time"

	"github.com/KirkDiggler/build-roller/internal/entities/armory"
	"github.com/KirkDiggler/build-roller/internal/errors"
)

//go:generate mockgen -destination=mock/mock_repository.go -package=catalogmock github.com/KirkDiggler/build-roller/internal/repositories/catalog Repository

// Repository stores catalogs keyed by source fingerprint
type Repository interface {
	// Get returns the catalog stored under key
	// Returns errors.NotFound when nothing is stored or the entry expired
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Put stores the catalog under key, replacing any previous entry
	Put(ctx context.Context, input PutInput) (*PutOutput, error)
}

// GetInput contains parameters for retrieving a catalog
type GetInput struct {
	Key string
}

// GetOutput contains the stored catalog
type GetOutput struct {
	Catalog *armory.Catalog
}

// PutInput contains parameters for storing a catalog
type PutInput struct {
	Key     string
	Catalog *armory.Catalog
	// TTL of zero keeps the entry until the process (or Redis) drops it
	TTL time.Duration
}

// PutOutput is empty for now
type PutOutput struct{}

const (
	errKeyEmpty   = "catalog key cannot be empty"
	errCatalogNil = "catalog cannot be nil"
)

func validatePut(input PutInput) error {
	if input.Key == "" {
		return errors.InvalidArgument(errKeyEmpty)
	}
	if input.Catalog == nil {
		return errors.InvalidArgument(errCatalogNil)
	}
	if input.TTL < 0 {
		return errors.InvalidArgument("ttl cannot be negative")
	}
	return nil
}
