package ports

import "go.trai.ch/steady/internal/core/domain"

// ConfigLoader defines the interface for loading the runtime configuration.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the configuration at path. An empty path looks for steady.yaml
	// in the working directory; a missing file yields the defaults.
	Load(path string) (domain.Config, error)
}
