// Package memory implementa os repositórios em memória, usados com DATABASE_DRIVER=memory e nos testes
package memory

import (
	"sort"
	"sync"

	"github.com/vfg2006/consultorpro-api/infrastructure/repository"
)

// table guarda cópias dos registros, protegidas por mutex
type table[T any] struct {
	mu    sync.RWMutex
	rows  map[string]T
	order []string
}

func newTable[T any]() *table[T] {
	return &table[T]{rows: make(map[string]T)}
}

func (t *table[T]) put(id string, row T) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, exists := t.rows[id]; !exists {
		t.order = append(t.order, id)
	}
	t.rows[id] = row
}

// update aplica fn ao registro sob o lock de escrita; fn pode recusar a alteração devolvendo erro
func (t *table[T]) update(id string, fn func(row *T) error) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	row, exists := t.rows[id]
	if !exists {
		return repository.ErrNotFound
	}
	if err := fn(&row); err != nil {
		return err
	}
	t.rows[id] = row
	return nil
}

func (t *table[T]) get(id string) (T, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	row, ok := t.rows[id]
	return row, ok
}

func (t *table[T]) remove(id string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, exists := t.rows[id]; !exists {
		return
	}
	delete(t.rows, id)
	for i, existing := range t.order {
		if existing == id {
			t.order = append(t.order[:i], t.order[i+1:]...)
			break
		}
	}
}

// filter retorna os registros na ordem de inserção
func (t *table[T]) filter(keep func(T) bool) []T {
	t.mu.RLock()
	defer t.mu.RUnlock()

	result := make([]T, 0)
	for _, id := range t.order {
		row := t.rows[id]
		if keep(row) {
			result = append(result, row)
		}
	}
	return result
}

func all[T any](T) bool { return true }

func sortBy[T any](items []T, less func(a, b T) bool) {
	sort.SliceStable(items, func(i, j int) bool { return less(items[i], items[j]) })
}
