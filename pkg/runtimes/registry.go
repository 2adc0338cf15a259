package runtimes

import (
	"sync"
)

// Registry manages available target-runtime conventions
type Registry struct {
	mu       sync.RWMutex
	runtimes map[string]*Spec
}

// NewRegistry creates a new runtime registry
func NewRegistry() *Registry {
	return &Registry{
		runtimes: make(map[string]*Spec),
	}
}

// Register adds a runtime to the registry
func (r *Registry) Register(spec *Spec) error {
	if err := spec.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.runtimes[spec.ID]; exists {
		return ErrRuntimeAlreadyExists
	}

	r.runtimes[spec.ID] = spec
	return nil
}

// Get retrieves a runtime by ID
func (r *Registry) Get(id string) (*Spec, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	spec, exists := r.runtimes[id]
	if !exists {
		return nil, ErrRuntimeNotFound
	}

	return spec, nil
}

// GetEnabled retrieves a runtime by ID, failing if it is disabled
func (r *Registry) GetEnabled(id string) (*Spec, error) {
	spec, err := r.Get(id)
	if err != nil {
		return nil, err
	}
	if !spec.Enabled {
		return nil, ErrRuntimeDisabled
	}
	return spec, nil
}

// List returns all registered runtimes
func (r *Registry) List() []*Spec {
	r.mu.RLock()
	defer r.mu.RUnlock()

	specs := make([]*Spec, 0, len(r.runtimes))
	for _, spec := range r.runtimes {
		specs = append(specs, spec)
	}

	return specs
}

// ListEnabled returns all enabled runtimes
func (r *Registry) ListEnabled() []*Spec {
	r.mu.RLock()
	defer r.mu.RUnlock()

	specs := make([]*Spec, 0, len(r.runtimes))
	for _, spec := range r.runtimes {
		if spec.Enabled {
			specs = append(specs, spec)
		}
	}

	return specs
}

// Update updates an existing runtime configuration
func (r *Registry) Update(spec *Spec) error {
	if err := spec.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.runtimes[spec.ID]; !exists {
		return ErrRuntimeNotFound
	}

	r.runtimes[spec.ID] = spec
	return nil
}

// Delete removes a runtime from the registry
func (r *Registry) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.runtimes[id]; !exists {
		return ErrRuntimeNotFound
	}

	delete(r.runtimes, id)
	return nil
}

// IsEnabled checks if a runtime is enabled
func (r *Registry) IsEnabled(id string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	spec, exists := r.runtimes[id]
	if !exists {
		return false
	}

	return spec.Enabled
}

// Count returns the number of registered runtimes
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.runtimes)
}

// Enable enables a runtime by ID
func (r *Registry) Enable(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	spec, exists := r.runtimes[id]
	if !exists {
		return ErrRuntimeNotFound
	}

	spec.Enabled = true
	return nil
}

// Disable disables a runtime by ID
func (r *Registry) Disable(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	spec, exists := r.runtimes[id]
	if !exists {
		return ErrRuntimeNotFound
	}

	spec.Enabled = false
	return nil
}
