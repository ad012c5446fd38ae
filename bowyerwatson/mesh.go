package bowyerwatson

import (
	"iter"
	"slices"
)

// Identity of a triangle within one mesh. Handles are never reused, so a stale
// handle can't accidentally remove a newer triangle.
type Handle uint64

type meshEntry struct {
	handle   Handle
	triangle Triangle
}

// The mesh is an insertion-ordered list of triangles. Removal keeps the
// relative order of what is left, so ordinal positions are stable between
// removals.
type Mesh struct {
	entries []meshEntry
	next    Handle
}

func NewMesh() *Mesh {
	return &Mesh{}
}

// Append a triangle. Duplicates are not checked.
func (m *Mesh) Insert(t Triangle) Handle {
	m.next++
	m.entries = append(m.entries, meshEntry{m.next, t})
	return m.next
}

// Remove a triangle by identity. Removing a handle that isn't in the mesh is
// an internal-consistency failure.
func (m *Mesh) Remove(h Handle) {
	i := slices.IndexFunc(m.entries, func(e meshEntry) bool { return e.handle == h })
	if i < 0 {
		fatalf("mesh has no triangle with handle %d", h)
	}
	m.entries = slices.Delete(m.entries, i, i+1)
}

// Remove the first triangle whose vertices equal t in the same order.
func (m *Mesh) RemoveExact(t Triangle) {
	i := slices.IndexFunc(m.entries, func(e meshEntry) bool { return e.triangle == t })
	if i < 0 {
		fatalf("mesh has no triangle %v", t)
	}
	m.entries = slices.Delete(m.entries, i, i+1)
}

func (m *Mesh) Contains(h Handle) bool {
	return slices.ContainsFunc(m.entries, func(e meshEntry) bool { return e.handle == h })
}

func (m *Mesh) Len() int {
	return len(m.entries)
}

// The triangle at ordinal position i.
func (m *Mesh) At(i int) (Handle, Triangle) {
	e := m.entries[i]
	return e.handle, e.triangle
}

// Iterate over handles and triangles in storage order. The sequence can be
// ranged over any number of times. Behavior is undefined if the mesh is
// modified during iteration.
func (m *Mesh) All() iter.Seq2[Handle, Triangle] {
	return func(yield func(Handle, Triangle) bool) {
		for _, e := range m.entries {
			if !yield(e.handle, e.triangle) {
				return
			}
		}
	}
}

func (m *Mesh) Triangles() iter.Seq[Triangle] {
	return func(yield func(Triangle) bool) {
		for _, e := range m.entries {
			if !yield(e.triangle) {
				return
			}
		}
	}
}

// A copy of the current triangles, safe to keep across steps.
func (m *Mesh) Snapshot() []Triangle {
	result := make([]Triangle, len(m.entries))
	for i, e := range m.entries {
		result[i] = e.triangle
	}
	return result
}

func (m *Mesh) Reset() {
	m.entries = nil
}
