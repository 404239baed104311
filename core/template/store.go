package template

import (
	"context"
	"fmt"
	"sync"

	"zap_engage/core/common"
)

// PersonaTemplateStore é o contrato de lookup somente-leitura de templates.
// GetRegion retorna o bundle da (persona, região) ou um erro que satisfaz
// errors.Is(err, common.ErrNotFound) quando o par é desconhecido. O motor não
// exige cache nem semântica de mutação do store.
type PersonaTemplateStore interface {
	GetRegion(ctx context.Context, personaID string, region Region) (*PersonaRegionTemplate, error)
}

// MemoryStore é um PersonaTemplateStore em memória, usado nos testes e no
// modo de desenvolvimento (INITMODE) sem MongoDB.
type MemoryStore struct {
	mu      sync.RWMutex
	bundles map[string]*PersonaRegionTemplate
}

// NewMemoryStore cria um MemoryStore vazio
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{bundles: make(map[string]*PersonaRegionTemplate)}
}

// memoryKey monta a chave composta (persona, região)
func memoryKey(personaID string, region Region) string {
	return fmt.Sprintf("%s|%s", personaID, region)
}

// Put registra o bundle de uma (persona, região), sobrescrevendo se existir
func (s *MemoryStore) Put(bundle *PersonaRegionTemplate) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bundles[memoryKey(bundle.PersonaID, bundle.Region)] = bundle
}

// GetRegion implementa PersonaTemplateStore
func (s *MemoryStore) GetRegion(_ context.Context, personaID string, region Region) (*PersonaRegionTemplate, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	bundle, ok := s.bundles[memoryKey(personaID, region)]
	if !ok {
		return nil, common.ErrNotFound
	}
	return bundle, nil
}
