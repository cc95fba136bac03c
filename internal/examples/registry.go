// Package examples holds the runnable OpenGL examples and the registry that
// orders them.
package examples

import (
	"fmt"
	"slices"

	"github.com/Faultbox/learn-gl/internal/app/states"
)

// Info describes one registered example.
type Info struct {
	Name    string // used by -example and the registry
	Title   string // shown in the window title
	Chapter string
	New     func() states.State
}

// Registry keeps examples in registration order.
type Registry struct {
	infos []Info
	index map[string]int
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{index: make(map[string]int)}
}

// Register adds an example. Names must be unique and non-empty.
func (r *Registry) Register(info Info) error {
	if info.Name == "" {
		return fmt.Errorf("example has no name")
	}
	if info.New == nil {
		return fmt.Errorf("example %q has no constructor", info.Name)
	}
	if _, dup := r.index[info.Name]; dup {
		return fmt.Errorf("example %q registered twice", info.Name)
	}
	r.index[info.Name] = len(r.infos)
	r.infos = append(r.infos, info)
	return nil
}

// All returns every example in display order.
func (r *Registry) All() []Info {
	return slices.Clone(r.infos)
}

// Names returns example names in display order.
func (r *Registry) Names() []string {
	names := make([]string, len(r.infos))
	for i, info := range r.infos {
		names[i] = info.Name
	}
	return names
}

// Len returns the number of examples.
func (r *Registry) Len() int {
	return len(r.infos)
}

// Lookup finds an example by name.
func (r *Registry) Lookup(name string) (Info, bool) {
	i, ok := r.index[name]
	if !ok {
		return Info{}, false
	}
	return r.infos[i], true
}

// Next returns the example after name, wrapping to the first.
// An unknown name yields the first example.
func (r *Registry) Next(name string) (Info, bool) {
	return r.step(name, 1)
}

// Prev returns the example before name, wrapping to the last.
// An unknown name yields the last example.
func (r *Registry) Prev(name string) (Info, bool) {
	return r.step(name, -1)
}

func (r *Registry) step(name string, delta int) (Info, bool) {
	n := len(r.infos)
	if n == 0 {
		return Info{}, false
	}
	i, ok := r.index[name]
	if !ok {
		if delta > 0 {
			return r.infos[0], true
		}
		return r.infos[n-1], true
	}
	return r.infos[((i+delta)%n+n)%n], true
}

var defaultRegistry = NewRegistry()

// Register adds an example to the default registry. It panics on a bad or
// duplicate entry, since registration happens at init time.
func Register(info Info) {
	if err := defaultRegistry.Register(info); err != nil {
		panic(err)
	}
}

// Default returns the registry holding the built-in examples.
func Default() *Registry {
	return defaultRegistry
}

// All returns the built-in examples in display order.
func All() []Info { return defaultRegistry.All() }

// Names returns the built-in example names in display order.
func Names() []string { return defaultRegistry.Names() }

// Lookup finds a built-in example by name.
func Lookup(name string) (Info, bool) { return defaultRegistry.Lookup(name) }

// Next returns the built-in example after name.
func Next(name string) (Info, bool) { return defaultRegistry.Next(name) }

// Prev returns the built-in example before name.
func Prev(name string) (Info, bool) { return defaultRegistry.Prev(name) }
