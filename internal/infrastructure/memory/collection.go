// Package memory implementa los repositorios sobre colecciones en memoria del proceso.
//
// Cada colección mantiene sus registros en un btree ordenado por secuencia de
// inserción (el orden en que el usuario los creó) más un índice id -> secuencia.
// Las lecturas devuelven copias: quien llama nunca comparte memoria con el almacén.
package memory

import (
	"sync"

	"github.com/google/btree"

	"github.com/Bilal2025D/Fatora/internal/domain"
)

const btreeDegree = 16

type record[T any] struct {
	seq uint64
	id  string
	val *T
}

type collection[T any] struct {
	mu    sync.RWMutex
	tree  *btree.BTreeG[record[T]]
	index map[string]uint64
	next  uint64
	clone func(*T) *T
}

func newCollection[T any](clone func(*T) *T) *collection[T] {
	return &collection[T]{
		tree:  btree.NewG(btreeDegree, func(a, b record[T]) bool { return a.seq < b.seq }),
		index: make(map[string]uint64),
		clone: clone,
	}
}

func shallowClone[T any](v *T) *T {
	out := *v
	return &out
}

// insert agrega v al final. Devuelve domain.ErrDuplicate si el id ya existe.
func (c *collection[T]) insert(id string, v *T) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.index[id]; ok {
		return domain.ErrDuplicate
	}
	c.next++
	c.tree.ReplaceOrInsert(record[T]{seq: c.next, id: id, val: c.clone(v)})
	c.index[id] = c.next
	return nil
}

func (c *collection[T]) get(id string) *T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	seq, ok := c.index[id]
	if !ok {
		return nil
	}
	rec, found := c.tree.Get(record[T]{seq: seq})
	if !found {
		return nil
	}
	return c.clone(rec.val)
}

// replace sustituye el registro conservando su posición.
func (c *collection[T]) replace(id string, v *T) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	seq, ok := c.index[id]
	if !ok {
		return domain.ErrNotFound
	}
	c.tree.ReplaceOrInsert(record[T]{seq: seq, id: id, val: c.clone(v)})
	return nil
}

func (c *collection[T]) remove(id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	seq, ok := c.index[id]
	if !ok {
		return domain.ErrNotFound
	}
	c.tree.Delete(record[T]{seq: seq})
	delete(c.index, id)
	return nil
}

// list devuelve copias de los registros que cumplen keep (todos si keep es nil), en orden de inserción.
func (c *collection[T]) list(keep func(*T) bool) []*T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]*T, 0, c.tree.Len())
	c.tree.Ascend(func(r record[T]) bool {
		if keep == nil || keep(r.val) {
			out = append(out, c.clone(r.val))
		}
		return true
	})
	return out
}

// find devuelve una copia del primer registro que cumple match, o nil.
func (c *collection[T]) find(match func(*T) bool) *T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	var hit *T
	c.tree.Ascend(func(r record[T]) bool {
		if match(r.val) {
			hit = c.clone(r.val)
			return false
		}
		return true
	})
	return hit
}

func (c *collection[T]) len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.tree.Len()
}
