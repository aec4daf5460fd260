package transfer

import (
	"context"
	"fmt"
)

// TransportConstructor is a function that creates a transport instance
type TransportConstructor func(ctx context.Context, cfg Config) (Transport, error)

var transportRegistry = make(map[string]TransportConstructor)

// RegisterTransport registers a transport constructor
func RegisterTransport(transportType string, constructor TransportConstructor) {
	transportRegistry[transportType] = constructor
}

// Factory creates transports from configuration
type Factory struct{}

// NewFactory creates a new factory instance
func NewFactory() *Factory {
	return &Factory{}
}

// Create instantiates a transport from config
func (f *Factory) Create(ctx context.Context, cfg Config) (Transport, error) {
	constructor, ok := transportRegistry[cfg.Type]
	if !ok {
		return nil, fmt.Errorf("unknown transport type %q for device %s: %w", cfg.Type, cfg.Name, ErrInvalidConfig)
	}

	return constructor(ctx, cfg)
}

// CreateAll creates transports for all given device configs.
// On any constructor failure the already created transports are closed:
// a device that cannot be reached fails the whole run before any file moves.
func (f *Factory) CreateAll(ctx context.Context, configs []Config) ([]Transport, error) {
	transports := make([]Transport, 0, len(configs))

	for _, cfg := range configs {
		transport, err := f.Create(ctx, cfg)
		if err != nil {
			for _, t := range transports {
				t.Close()
			}
			return nil, fmt.Errorf("failed to create transport for device %s: %w", cfg.Name, err)
		}

		transports = append(transports, transport)
	}

	return transports, nil
}
