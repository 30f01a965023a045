// Package assets is the boundary between meshy and the host engine's asset
// system: the host implements Sink, meshy pushes finished meshes into it.
// Registry is a ready-made in-memory implementation for hosts (and tests)
// that do not bring their own.
package assets

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/gucio321/meshy/pkg/tess"
)

// ErrNilMesh is returned when a nil mesh is registered.
var ErrNilMesh = errors.New("nil mesh")

// Sink receives finished meshes from the tessellation pipeline.
type Sink interface {
	Register(id string, mesh *tess.Mesh) error
}

// Registry is a concurrency-safe in-memory Sink with lookup and disposal.
type Registry struct {
	mu     sync.RWMutex
	meshes map[string]*tess.Mesh
}

func NewRegistry() *Registry {
	return &Registry{meshes: make(map[string]*tess.Mesh)}
}

// Register stores mesh under id, replacing any previous mesh for that id.
func (r *Registry) Register(id string, mesh *tess.Mesh) error {
	if mesh == nil {
		return fmt.Errorf("%w: id %q", ErrNilMesh, id)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.meshes[id] = mesh

	return nil
}

// Lookup returns the mesh registered under id, if any.
func (r *Registry) Lookup(id string) (*tess.Mesh, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	mesh, ok := r.meshes[id]

	return mesh, ok
}

// Remove disposes of the mesh registered under id.
func (r *Registry) Remove(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.meshes, id)
}

// IDs returns the registered ids, sorted.
func (r *Registry) IDs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]string, 0, len(r.meshes))
	for id := range r.meshes {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

var _ Sink = (*Registry)(nil)
