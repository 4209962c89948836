package sheetops

import (
	"fmt"
	"sort"

	"github.com/dmarkov/sheetops/pkg/sheetops/ops"
)

// Factory builds an operation from its string arguments.
type Factory func(args map[string]string) (ops.Op, error)

// Registry maps operation names to factories.
type Registry struct {
	factories map[string]Factory
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{factories: make(map[string]Factory)}
}

// Register binds name to factory, replacing any previous binding.
func (r *Registry) Register(name string, factory Factory) {
	r.factories[name] = factory
}

// Build constructs the operation bound to name.
func (r *Registry) Build(name string, args map[string]string) (ops.Op, error) {
	factory, ok := r.factories[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownOp, name)
	}
	return factory(args)
}

// Names returns the registered operation names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
