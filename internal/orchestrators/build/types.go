package build

import "github.com/KirkDiggler/build-roller/internal/entities/armory"

// GenerateInput defines the request for rolling a build
type GenerateInput struct {
	Catalog *armory.Catalog
}

// GenerateOutput defines the response for rolling a build
type GenerateOutput struct {
	Build *armory.Build
}
