package multiply

import (
	"fmt"
	"sort"
	"sync"
)

// Factory hands out multipliers by registry key.
type Factory interface {
	// Get returns a cached Multiplier for name.
	Get(name string) (Multiplier, error)
	// Create returns a fresh, uncached Multiplier for name.
	Create(name string) (Multiplier, error)
	// Algorithm returns the bare algorithm for name, without
	// instrumentation. The benchmark harness times these directly.
	Algorithm(name string) (Algorithm, error)
	// List returns the registered keys in sorted order.
	List() []string
	// Register adds or replaces an algorithm under name.
	Register(name string, creator func() Algorithm) error
	// GetAll returns every registered multiplier keyed by name.
	GetAll() map[string]Multiplier
}

// DefaultFactory is a thread-safe Factory with lazy construction and
// instance caching.
type DefaultFactory struct {
	mu          sync.RWMutex
	creators    map[string]func() Algorithm
	multipliers map[string]Multiplier
}

// NewDefaultFactory returns a factory with the built-in algorithms:
//   - "naive": Direct, Θ(n²)
//   - "karatsuba": Karatsuba, Θ(n^1.585)
func NewDefaultFactory() *DefaultFactory {
	f := &DefaultFactory{
		creators:    make(map[string]func() Algorithm),
		multipliers: make(map[string]Multiplier),
	}
	_ = f.Register("naive", func() Algorithm { return directAlgorithm{} })
	_ = f.Register("karatsuba", func() Algorithm { return karatsubaAlgorithm{} })
	return f
}

// Register adds a new algorithm. Registering an existing name replaces it
// and drops the cached instance.
func (f *DefaultFactory) Register(name string, creator func() Algorithm) error {
	if name == "" {
		return fmt.Errorf("multiply: algorithm name cannot be empty")
	}
	if creator == nil {
		return fmt.Errorf("multiply: nil creator for %q", name)
	}
	f.mu.Lock()
	defer f.mu.Unlock()

	f.creators[name] = creator
	delete(f.multipliers, name)
	return nil
}

// Algorithm returns a freshly created, uninstrumented algorithm.
func (f *DefaultFactory) Algorithm(name string) (Algorithm, error) {
	f.mu.RLock()
	creator, ok := f.creators[name]
	f.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("unknown algorithm: %s", name)
	}
	return creator(), nil
}

// Create always builds a new instance.
func (f *DefaultFactory) Create(name string) (Multiplier, error) {
	algo, err := f.Algorithm(name)
	if err != nil {
		return nil, err
	}
	return NewMultiplier(algo), nil
}

// Get returns the cached instance for name, creating it on first use.
func (f *DefaultFactory) Get(name string) (Multiplier, error) {
	f.mu.RLock()
	if m, ok := f.multipliers[name]; ok {
		f.mu.RUnlock()
		return m, nil
	}
	f.mu.RUnlock()

	f.mu.Lock()
	defer f.mu.Unlock()

	if m, ok := f.multipliers[name]; ok {
		return m, nil
	}
	creator, ok := f.creators[name]
	if !ok {
		return nil, fmt.Errorf("unknown algorithm: %s", name)
	}
	m := NewMultiplier(creator())
	f.multipliers[name] = m
	return m, nil
}

// List returns the registered names, sorted.
func (f *DefaultFactory) List() []string {
	f.mu.RLock()
	defer f.mu.RUnlock()

	names := make([]string, 0, len(f.creators))
	for name := range f.creators {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// GetAll returns every registered multiplier.
func (f *DefaultFactory) GetAll() map[string]Multiplier {
	all := make(map[string]Multiplier)
	for _, name := range f.List() {
		if m, err := f.Get(name); err == nil {
			all[name] = m
		}
	}
	return all
}

var (
	globalFactory     *DefaultFactory
	globalFactoryOnce sync.Once
)

// GlobalFactory returns the process-wide default factory.
func GlobalFactory() *DefaultFactory {
	globalFactoryOnce.Do(func() {
		globalFactory = NewDefaultFactory()
	})
	return globalFactory
}
