package queue

import "sync"

// APIKeyStash holds caller-supplied provider API keys in memory, keyed by
// deliberation id. Keys are never persisted: a pod restart loses them, in
// which case execution falls back to the configured provider key.
type APIKeyStash struct {
	mu   sync.Mutex
	keys map[string]string
}

// NewAPIKeyStash creates an empty stash.
func NewAPIKeyStash() *APIKeyStash {
	return &APIKeyStash{keys: make(map[string]string)}
}

// Put stores a key for a deliberation. Empty keys are ignored.
func (s *APIKeyStash) Put(deliberationID, apiKey string) {
	if apiKey == "" {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.keys[deliberationID] = apiKey
}

// Get returns the stashed key for a deliberation, if any.
func (s *APIKeyStash) Get(deliberationID string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	key, ok := s.keys[deliberationID]
	return key, ok
}

// Remove drops the key for a deliberation. Called when the run reaches a
// terminal state so keys do not outlive the work they were supplied for.
func (s *APIKeyStash) Remove(deliberationID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.keys, deliberationID)
}

// Len reports the number of stashed keys.
func (s *APIKeyStash) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.keys)
}
