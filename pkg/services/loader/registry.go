package loader

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/de-tools/story-atlas/pkg/models/domain"
)

// Factory builds a Source able to read the dataset described by profile.
type Factory func(ctx context.Context, profile domain.SourceProfile) (Source, error)

// Registry manages source factories keyed by driver name
type Registry interface {
	// Register adds a new driver factory
	Register(driver string, factory Factory) error
	// Create instantiates a source for the profile's driver
	Create(ctx context.Context, profile domain.SourceProfile) (Source, error)
	// ListDrivers returns the registered drivers in name order
	ListDrivers() []string
}

type registry struct {
	mu        sync.RWMutex
	factories map[string]Factory
}

func NewRegistry() Registry {
	return &registry{
		factories: make(map[string]Factory),
	}
}

func (r *registry) Register(driver string, factory Factory) error {
	if driver == "" {
		return fmt.Errorf("driver name cannot be empty")
	}
	if factory == nil {
		return fmt.Errorf("factory cannot be nil")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.factories[driver]; exists {
		return fmt.Errorf("driver %q is already registered", driver)
	}

	r.factories[driver] = factory
	return nil
}

func (r *registry) Create(ctx context.Context, profile domain.SourceProfile) (Source, error) {
	r.mu.RLock()
	factory, exists := r.factories[profile.Driver]
	r.mu.RUnlock()

	if !exists {
		return nil, fmt.Errorf("driver %q is not registered", profile.Driver)
	}

	return factory(ctx, profile)
}

func (r *registry) ListDrivers() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	drivers := make([]string, 0, len(r.factories))
	for driver := range r.factories {
		drivers = append(drivers, driver)
	}
	sort.Strings(drivers)
	return drivers
}
