package scene

import "fmt"

// Registry is a name -> *Scene store, the supplemental feature named in
// SPEC_FULL.md after the original source's scene/stored.rs: a way to
// assemble named sub-scenes (e.g. an imported glTF mesh grouped under a
// name) without resorting to package-level globals. It holds no behaviour
// beyond lookup/insert; nothing in package render or package worker
// depends on it existing.
type Registry struct {
	scenes map[string]*Scene
}

// NewRegistry builds an empty registry.
func NewRegistry() *Registry { return &Registry{scenes: make(map[string]*Scene)} }

// Put stores s under name, overwriting any previous entry.
func (r *Registry) Put(name string, s *Scene) { r.scenes[name] = s }

// Get returns the scene stored under name, or an error if none exists.
func (r *Registry) Get(name string) (*Scene, error) {
	s, ok := r.scenes[name]
	if !ok {
		return nil, fmt.Errorf("scene: no registry entry named %q", name)
	}
	return s, nil
}

// Names returns every registered name, in no particular order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.scenes))
	for name := range r.scenes {
		names = append(names, name)
	}
	return names
}
