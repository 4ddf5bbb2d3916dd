package memory

import (
	"context"
	"sync"
)

// DictionaryRepository holds the single serialized player dictionary.
type DictionaryRepository struct {
	mu         sync.RWMutex
	serialized string
	saved      bool
}

func NewDictionaryRepository() *DictionaryRepository {
	return &DictionaryRepository{}
}

func (r *DictionaryRepository) Load(_ context.Context) (string, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.serialized, r.saved, nil
}

func (r *DictionaryRepository) Save(_ context.Context, serialized string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.serialized = serialized
	r.saved = true
	return nil
}
