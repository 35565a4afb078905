package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/cespare/xxhash/v2"

	"github.com/KirkDiggler/build-roller/internal/entities/armory"
	"github.com/KirkDiggler/build-roller/internal/errors"
	catalogrepo "github.com/KirkDiggler/build-roller/internal/repositories/catalog"
)

// Loader parses a source file. Satisfied by loader.Interface.
type Loader interface {
	Load(ctx context.Context, path string) (*armory.Catalog, error)
}

// Repository caches catalogs. Satisfied by the catalog repositories.
type Repository = catalogrepo.Repository

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config is required")
	}

	vb := errors.NewValidationBuilder()
	if c.Loader == nil {
		vb.RequiredField("Loader")
	}
	if c.Repository == nil {
		vb.RequiredField("Repository")
	}
	if c.CacheTTL < 0 {
		vb.Field("CacheTTL", "cannot be negative")
	}
	return vb.Build()
}

type service struct {
	loader   Loader
	repo     Repository
	cacheTTL time.Duration
}

// New creates a catalog service
func New(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &service{
		loader:   cfg.Loader,
		repo:     cfg.Repository,
		cacheTTL: cfg.CacheTTL,
	}, nil
}

// Load fingerprints the file, then serves from the repository or parses it
func (s *service) Load(ctx context.Context, input *LoadInput) (*LoadOutput, error) {
	if input == nil || input.Path == "" {
		return nil, errors.InvalidArgument("path is required")
	}

	key, err := Fingerprint(input.Path)
	if err != nil {
		return nil, err
	}

	got, err := s.repo.Get(ctx, catalogrepo.GetInput{Key: key})
	switch {
	case err == nil:
		if verr := got.Catalog.Validate(); verr != nil {
			// reparse and overwrite the entry below
			slog.Warn("Cached catalog invalid, reparsing", "key", key, "error", verr)
			break
		}
		slog.Debug("Catalog served from cache", "path", input.Path, "key", key)
		return &LoadOutput{Catalog: got.Catalog, Cached: true, Key: key}, nil
	case !errors.IsNotFound(err):
		// a broken cache should not stop a local run
		slog.Warn("Catalog cache lookup failed", "key", key, "error", err)
	}

	c, err := s.loader.Load(ctx, input.Path)
	if err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.repo.Put(ctx, catalogrepo.PutInput{Key: key, Catalog: c, TTL: s.cacheTTL}); err != nil {
		slog.Warn("Failed to cache catalog", "key", key, "error", err)
	}

	slog.Info("Catalog source parsed",
		"path", input.Path,
		"weapons", len(c.Weapons),
		"spells", len(c.Spells),
		"armor_sets", len(c.ArmorSets),
	)

	return &LoadOutput{Catalog: c, Key: key}, nil
}

// Fingerprint identifies one version of a file by absolute path, size and
// modification time
func Fingerprint(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", errors.Wrapf(err, "failed to resolve %s", path)
	}

	info, err := os.Stat(abs)
	if err != nil {
		if os.IsNotExist(err) {
			return "", errors.NotFoundf("catalog source %s does not exist", abs).WithMeta("path", abs)
		}
		return "", errors.Wrapf(err, "failed to stat %s", abs)
	}
	if info.IsDir() {
		return "", errors.NotFoundf("catalog source %s is a directory", abs).WithMeta("path", abs)
	}

	sum := xxhash.Sum64String(fmt.Sprintf("%s|%d|%d", abs, info.Size(), info.ModTime().UnixNano()))
	return fmt.Sprintf("%016x", sum), nil
}
