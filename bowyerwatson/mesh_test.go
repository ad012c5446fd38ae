package bowyerwatson

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	meshT1 = Triangle{Point{0, 0}, Point{1, 0}, Point{0, 1}}
	meshT2 = Triangle{Point{1, 0}, Point{1, 1}, Point{0, 1}}
	meshT3 = Triangle{Point{1, 0}, Point{2, 0}, Point{1, 1}}
)

func TestMesh(t *testing.T) {
	t.Run("insert keeps order", func(t *testing.T) {
		m := NewMesh()
		h1 := m.Insert(meshT1)
		h2 := m.Insert(meshT2)
		h3 := m.Insert(meshT3)
		assert.Equal(t, 3, m.Len())
		assert.Equal(t, []Triangle{meshT1, meshT2, meshT3}, m.Snapshot())
		assert.NotEqual(t, h1, h2)
		assert.NotEqual(t, h2, h3)

		h, tri := m.At(1)
		assert.Equal(t, h2, h)
		assert.Equal(t, meshT2, tri)
	})

	t.Run("remove by handle", func(t *testing.T) {
		m := NewMesh()
		h1 := m.Insert(meshT1)
		h2 := m.Insert(meshT2)
		h3 := m.Insert(meshT3)
		m.Remove(h2)
		assert.Equal(t, []Triangle{meshT1, meshT3}, m.Snapshot())
		assert.False(t, m.Contains(h2))
		assert.True(t, m.Contains(h1))
		assert.True(t, m.Contains(h3))
	})

	t.Run("handles aren't reused", func(t *testing.T) {
		m := NewMesh()
		h1 := m.Insert(meshT1)
		m.Remove(h1)
		h2 := m.Insert(meshT1)
		assert.NotEqual(t, h1, h2)
		assert.PanicsWithError(t, "mesh has no triangle with handle 1", func() {
			m.Remove(h1)
		})
		m.Reset()
		h3 := m.Insert(meshT1)
		assert.NotEqual(t, h2, h3)
	})

	t.Run("remove exact", func(t *testing.T) {
		m := NewMesh()
		m.Insert(meshT1)
		m.Insert(meshT2)
		m.RemoveExact(meshT1)
		assert.Equal(t, []Triangle{meshT2}, m.Snapshot())

		// A rotation of a stored triangle is a different triangle
		assert.Panics(t, func() {
			m.RemoveExact(Triangle{meshT2.B, meshT2.C, meshT2.A})
		})
		assert.Equal(t, 1, m.Len())
	})

	t.Run("missing triangle is reported", func(t *testing.T) {
		m := NewMesh()
		err := func() (err error) {
			defer func() {
				err = HandleEnginePanicRecover(recover())
			}()
			m.RemoveExact(meshT1)
			return nil
		}()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "mesh has no triangle")
	})

	t.Run("iteration is restartable", func(t *testing.T) {
		m := NewMesh()
		m.Insert(meshT1)
		m.Insert(meshT2)
		m.Insert(meshT3)

		for pass := 0; pass < 2; pass++ {
			var seen []Triangle
			for tri := range m.Triangles() {
				seen = append(seen, tri)
			}
			assert.Equal(t, []Triangle{meshT1, meshT2, meshT3}, seen)
		}

		// Stopping early is fine
		count := 0
		for range m.All() {
			count++
			break
		}
		assert.Equal(t, 1, count)
	})

	t.Run("snapshot is a copy", func(t *testing.T) {
		m := NewMesh()
		m.Insert(meshT1)
		snapshot := m.Snapshot()
		m.Insert(meshT2)
		snapshot[0] = meshT3
		assert.Equal(t, []Triangle{meshT1, meshT2}, m.Snapshot())
	})
}
