// Package catalog loads a source file into a validated catalog at most once
// per file version, consulting the catalog repository before parsing.
package catalog

//go:generate mockgen -destination=mock/mock_service.go -package=catalogmock github.com/KirkDiggler/build-roller/internal/services/catalog Service

import (
	"context"
	"time"

	"github.com/KirkDiggler/build-roller/internal/entities/armory"
)

// Service defines the interface for catalog loading
type Service interface {
	// Load returns the catalog for the file at Path
	// Returns errors.NotFound when the file does not exist
	// Returns errors.FailedPrecondition when the file lacks weapons or armor sets
	Load(ctx context.Context, input *LoadInput) (*LoadOutput, error)
}

// LoadInput defines the request for loading a catalog
type LoadInput struct {
	Path string
}

// LoadOutput defines the response for loading a catalog
type LoadOutput struct {
	Catalog *armory.Catalog
	// Cached is true when the catalog came from the repository
	Cached bool
	// Key is the fingerprint the catalog is stored under
	Key string
}

// Config holds the dependencies for the catalog service
type Config struct {
	Loader     Loader
	Repository Repository
	// CacheTTL of zero keeps entries without expiry
	CacheTTL time.Duration
}
