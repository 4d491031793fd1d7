// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package auth implements the session gate in front of the editor.

There is exactly one admin, whose username and bcrypt password hash come from
configuration. A successful login creates a session id, stores an admin flag
for it with a TTL and hands back a signed token naming the session. The flag,
not the token, is the source of truth: logout deletes it, so a token that is
still cryptographically valid stops granting admin rights at once.

Logging in never opens a draft. Logging out discards any open draft.
*/
package auth

import "time"

// Credentials are the fixed admin login values.
type Credentials struct {
	Username     string
	PasswordHash string
}

// LoginInput is an authentication attempt.
type LoginInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginSession is an established admin session.
type LoginSession struct {
	SessionID string    `json:"sessionId"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// SessionStatus is what the front end needs to render the admin controls.
type SessionStatus struct {
	Authenticated bool `json:"authenticated"`
	IsAdmin       bool `json:"isAdmin"`
}
