// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import (
	"context"
	"sync"
	"time"
)

// MemoryFlagRepository implements [FlagRepository] in process memory.
//
// Expired flags are dropped lazily on lookup.
type MemoryFlagRepository struct {
	mu      sync.Mutex
	expires map[string]time.Time
	now     func() time.Time
}

// NewMemoryFlagRepository creates an empty in-memory FlagRepository.
func NewMemoryFlagRepository() *MemoryFlagRepository {
	return &MemoryFlagRepository{
		expires: make(map[string]time.Time),
		now:     time.Now,
	}
}

// Set stores the flag until now+ttl.
func (repository *MemoryFlagRepository) Set(_ context.Context, sessionID string, ttl time.Duration) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	repository.expires[sessionID] = repository.now().Add(ttl)
	return nil
}

// Exists reports whether the flag is present and unexpired.
func (repository *MemoryFlagRepository) Exists(_ context.Context, sessionID string) (bool, error) {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	expiresAt, ok := repository.expires[sessionID]
	if !ok {
		return false, nil
	}
	if !repository.now().Before(expiresAt) {
		delete(repository.expires, sessionID)
		return false, nil
	}
	return true, nil
}

// Delete removes the flag.
func (repository *MemoryFlagRepository) Delete(_ context.Context, sessionID string) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	delete(repository.expires, sessionID)
	return nil
}
