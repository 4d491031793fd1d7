// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/taibuivan/folio/internal/platform/constants"
)

// RedisFlagRepository implements [FlagRepository] using Redis keys with a TTL.
type RedisFlagRepository struct {
	client redis.UniversalClient
}

// NewRedisFlagRepository creates a new Redis-backed FlagRepository.
func NewRedisFlagRepository(client redis.UniversalClient) *RedisFlagRepository {
	return &RedisFlagRepository{client: client}
}

func flagKey(sessionID string) string {
	return constants.RedisPrefixSession + sessionID
}

/*
Set stores the admin flag for a session.

Parameters:
  - context: context.Context
  - sessionID: string
  - ttl: time.Duration

Returns:
  - error: Connectivity errors
*/
func (repository *RedisFlagRepository) Set(context context.Context, sessionID string, ttl time.Duration) error {
	if err := repository.client.Set(context, flagKey(sessionID), "1", ttl).Err(); err != nil {
		return fmt.Errorf("redis_session_flag_set_failed: %w", err)
	}
	return nil
}

/*
Exists reports whether the flag is still present.

Description: An expired key is indistinguishable from a deleted one; both
read as false.
*/
func (repository *RedisFlagRepository) Exists(context context.Context, sessionID string) (bool, error) {
	count, err := repository.client.Exists(context, flagKey(sessionID)).Result()
	if err != nil {
		return false, fmt.Errorf("redis_session_flag_exists_failed: %w", err)
	}
	return count == 1, nil
}

// Delete removes the flag from Redis.
func (repository *RedisFlagRepository) Delete(context context.Context, sessionID string) error {
	if err := repository.client.Del(context, flagKey(sessionID)).Err(); err != nil {
		return fmt.Errorf("redis_session_flag_delete_failed: %w", err)
	}
	return nil
}
