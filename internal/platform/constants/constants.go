// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package constants provides centralized, immutable values for the entire platform.

Categories:

  - Server Timing: Read/Write/Idle timeouts for the HTTP server.
  - Rate Limiting: Burst capacities and IP tracking TTLs.
  - Sessions: Token issuer, cookie and key naming.
  - Content: Persisted document key and upload limits.
*/
package constants

import "time"

// # Metadata

const (
	AppName    = "folio-api"
	AppVersion = "0.3.0"
)

// # Server Timing

const (
	// DefaultReadTimeout is the maximum duration for reading the entire request.
	// Uploads carry embedded images, so this is more generous than a JSON-only API.
	DefaultReadTimeout = 30 * time.Second

	// DefaultWriteTimeout is the maximum duration before timing out writes of the response.
	DefaultWriteTimeout = 30 * time.Second

	// DefaultIdleTimeout is the maximum amount of time to wait for the next request.
	DefaultIdleTimeout = 120 * time.Second

	// DefaultReadHeaderTimeout is the amount of time allowed to read request headers.
	DefaultReadHeaderTimeout = 2 * time.Second

	// GlobalRequestTimeout is the deadline for the entire request lifecycle.
	GlobalRequestTimeout = 30 * time.Second

	// ShutdownTimeout is how long we wait for in-flight requests to complete during shutdown.
	ShutdownTimeout = 15 * time.Second
)

// # Rate Limiting

const (
	// DefaultRateLimitRPS is the requests per second allowed per IP.
	DefaultRateLimitRPS = 20.0

	// DefaultRateLimitBurst is the maximum burst allowed for the rate limiter.
	DefaultRateLimitBurst = 40

	// RateLimitCleanupInterval is how often old IP entries are removed from memory.
	RateLimitCleanupInterval = 1 * time.Minute

	// RateLimitClientTTL is how long a client must be idle before its entry is deleted.
	RateLimitClientTTL = 3 * time.Minute
)

// # Sessions

const (
	// AuthIssuer is the standard 'iss' claim in session tokens.
	AuthIssuer = "folio"

	// SessionCookieName is the browser-session cookie carrying the session token.
	// It is issued without Expires so it disappears with the browser session.
	SessionCookieName = "folio_session"

	// SessionCookiePath scopes the cookie to the API.
	SessionCookiePath = "/"

	// RedisPrefixSession namespaces admin flags in Redis.
	RedisPrefixSession = "folio:session:"
)

// # Content

const (
	// ContentStorageKey is the versioned key of the persisted content document.
	// Bump the suffix whenever the document shape changes; older entries are
	// then ignored and the built-in default is used instead.
	ContentStorageKey = "portfolio-content-v3"

	// BoltBucketContent is the bbolt bucket holding content documents.
	BoltBucketContent = "content"

	// DefaultStorageQuotaBytes mirrors the typical browser local storage quota.
	DefaultStorageQuotaBytes = 5 * 1024 * 1024

	// MaxUploadFiles caps the number of files in one multipart upload.
	MaxUploadFiles = 12
)

// # HTTP Headers

const (
	HeaderXRequestID     = "X-Request-ID"
	HeaderXRealIP        = "X-Real-IP"
	HeaderXForwardedFor  = "X-Forwarded-For"
	HeaderOrigin         = "Origin"
	HeaderAcceptLanguage = "Accept-Language"
)

// # JSON Field Identifiers

const (
	FieldError  = "error"
	FieldCode   = "code"
	FieldStatus = "status"
	FieldChecks = "checks"
)
