// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

/*
TestMemoryFlagRepository_Expiry drops a flag once its TTL has passed.
*/
func TestMemoryFlagRepository_Expiry(t *testing.T) {
	ctx := context.Background()
	current := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	repository := NewMemoryFlagRepository()
	repository.now = func() time.Time { return current }

	require.NoError(t, repository.Set(ctx, "s1", time.Minute))

	exists, err := repository.Exists(ctx, "s1")
	require.NoError(t, err)
	assert.True(t, exists)

	current = current.Add(time.Minute)
	exists, err = repository.Exists(ctx, "s1")
	require.NoError(t, err)
	assert.False(t, exists)
	assert.Empty(t, repository.expires)

	require.NoError(t, repository.Delete(ctx, "missing"))
}
