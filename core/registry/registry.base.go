// Package registry fornece uma implementação thread-safe do registry pattern
// com generics, usada para gerenciar singletons da aplicação (ex: collections
// do MongoDB registradas na inicialização e consultadas pelos services).
package registry

import (
	"fmt"
	"sync"
)

// Registry é um registry genérico thread-safe.
// O type parameter T permite gerenciar qualquer tipo de objeto.
type Registry[T any] struct {
	items map[string]T // Itens registrados por chave
	mu    sync.RWMutex // Mutex para garantir thread-safety
}

// NewRegistry cria e retorna um registry novo, já inicializado.
func NewRegistry[T any]() *Registry[T] {
	return &Registry[T]{
		items: make(map[string]T),
	}
}

// Register registra um item no registry. Se já existir um item com o mesmo
// nome, ele é sobrescrito.
//
// Retorna:
//   - isNew: true se o item é novo, false se sobrescreveu um existente
//   - err: erro se o nome for vazio
func (r *Registry[T]) Register(name string, item T) (isNew bool, err error) {
	if name == "" {
		return false, fmt.Errorf("nome do item não pode ser vazio")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	_, exists := r.items[name]
	r.items[name] = item
	return !exists, nil
}

// Get retorna o item pelo nome e um boolean indicando se existe.
func (r *Registry[T]) Get(name string) (item T, exists bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	item, exists = r.items[name]
	return item, exists
}

// GetOrCreate retorna o item pelo nome; se não existir, cria via creator.
func (r *Registry[T]) GetOrCreate(name string, creator func() (T, error)) (item T, err error) {
	if name == "" {
		return item, fmt.Errorf("nome do item não pode ser vazio")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, exists := r.items[name]; exists {
		return existing, nil
	}

	created, err := creator()
	if err != nil {
		return item, fmt.Errorf("falha ao criar item %s: %w", name, err)
	}

	r.items[name] = created
	return created, nil
}

// Clear remove um item do registry. Se cleanup for fornecido, é chamado antes
// da remoção para liberar recursos.
func (r *Registry[T]) Clear(name string, cleanup func(T) error) (deleted bool, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, exists := r.items[name]
	if !exists {
		return false, nil
	}

	if cleanup != nil {
		if err := cleanup(item); err != nil {
			return false, fmt.Errorf("falha ao liberar item %s: %w", name, err)
		}
	}

	delete(r.items, name)
	return true, nil
}
