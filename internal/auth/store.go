// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import (
	"context"
	"time"
)

// FlagRepository stores the per-session admin flag.
//
// # Implementations
//
//   - [RedisFlagRepository] when a Redis URL is configured.
//   - [MemoryFlagRepository] otherwise; flags are lost on restart.
type FlagRepository interface {
	// Set marks sessionID as admin for ttl.
	Set(ctx context.Context, sessionID string, ttl time.Duration) error

	// Exists reports whether sessionID still carries the flag.
	Exists(ctx context.Context, sessionID string) (bool, error)

	// Delete removes the flag. Deleting a missing flag is not an error.
	Delete(ctx context.Context, sessionID string) error
}
