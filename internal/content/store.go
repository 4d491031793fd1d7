// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package content

import "context"

// Repository is the durable key-value slot the document is written to.
//
// Implementations return [dberr.ErrNotFound] for a missing key.
type Repository interface {
	Get(context context.Context, key string) ([]byte, error)
	Put(context context.Context, key string, body []byte) error
	Ping(context context.Context) error
}
