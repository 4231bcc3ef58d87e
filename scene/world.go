// Package scene is an in-memory collision service for shapes. Bodies live on
// one of 32 layers, and queries filter by layer mask.
package scene

import (
	"sync"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/osuushi/hedra/shapes"
)

type body struct {
	shape shapes.Polygon
	layer int
}

// A World is safe for concurrent use. The shapes registered with it are not:
// callers must not mutate a registered shape while another goroutine queries
// the world.
type World struct {
	mu     sync.RWMutex
	bodies map[shapes.Handle]body
	// Insertion order, so query results are deterministic
	order []shapes.Handle
}

var (
	_ shapes.CollisionQuery = (*World)(nil)
	_ shapes.HandleResolver = (*World)(nil)
)

func NewWorld() *World {
	return &World{bodies: make(map[shapes.Handle]body)}
}

func (w *World) Add(shape shapes.Polygon, layer int) (shapes.Handle, error) {
	if shape == nil {
		return shapes.Handle{}, errors.New("cannot add nil shape")
	}
	if layer < 0 || layer >= 32 {
		return shapes.Handle{}, errors.Errorf("layer %d out of range", layer)
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	handle := uuid.New()
	w.bodies[handle] = body{shape: shape, layer: layer}
	w.order = append(w.order, handle)
	return handle, nil
}

// Reports whether the handle was registered.
func (w *World) Remove(handle shapes.Handle) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	if _, ok := w.bodies[handle]; !ok {
		return false
	}
	delete(w.bodies, handle)
	for i, h := range w.order {
		if h == handle {
			w.order = append(w.order[:i], w.order[i+1:]...)
			break
		}
	}
	return true
}

func (w *World) Shape(handle shapes.Handle) (shapes.Polygon, bool) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	b, ok := w.bodies[handle]
	return b.shape, ok
}

func (w *World) Layer(handle shapes.Handle) (int, bool) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	b, ok := w.bodies[handle]
	return b.layer, ok
}

func (w *World) Len() int {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return len(w.order)
}

// Handles in insertion order.
func (w *World) Handles() []shapes.Handle {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return append([]shapes.Handle(nil), w.order...)
}

func (w *World) QueryOverlaps(shape shapes.Polygon, mask shapes.LayerMask) []shapes.Handle {
	w.mu.RLock()
	defer w.mu.RUnlock()
	var result []shapes.Handle
	for _, h := range w.order {
		b := w.bodies[h]
		if b.shape == shape || !mask.Contains(b.layer) {
			continue
		}
		if shapes.Overlaps(shape, b.shape) {
			result = append(result, h)
		}
	}
	return result
}

func (w *World) HandleOf(shape shapes.Polygon) (shapes.Handle, bool) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	for _, h := range w.order {
		if w.bodies[h].shape == shape {
			return h, true
		}
	}
	return shapes.Handle{}, false
}

// A pair of registered bodies whose shapes overlap.
type Contact struct {
	A, B shapes.Handle
	// Moves A out of B
	Offset shapes.Point
}

// Every overlapping pair of bodies whose layers are both in mask, each pair
// reported once with A registered before B.
func (w *World) Contacts(mask shapes.LayerMask) []Contact {
	w.mu.RLock()
	defer w.mu.RUnlock()
	var contacts []Contact
	for i, ha := range w.order {
		a := w.bodies[ha]
		if !mask.Contains(a.layer) {
			continue
		}
		for _, hb := range w.order[i+1:] {
			b := w.bodies[hb]
			if !mask.Contains(b.layer) {
				continue
			}
			if offset, ok := shapes.MinimumTranslation(a.shape, b.shape); ok {
				contacts = append(contacts, Contact{A: ha, B: hb, Offset: offset})
			}
		}
	}
	return contacts
}
