// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"crypto/hmac"
	"errors"
)

var (
	ErrUnauthorized          = errors.New("unauthorized")
	ErrAdminKeyNotConfigured = errors.New("admin API key not configured")
)

// BearerPrefix is prepended to the admin key in the Authorization header
const BearerPrefix = "Bearer "

// ValidateAdminBearer checks that the Authorization header is exactly
// "Bearer <adminKey>". The comparison runs in constant time.
func ValidateAdminBearer(authHeader, adminKey string) error {
	if adminKey == "" {
		return ErrAdminKeyNotConfigured
	}
	if authHeader == "" {
		return ErrUnauthorized
	}
	expected := BearerPrefix + adminKey
	if !hmac.Equal([]byte(authHeader), []byte(expected)) {
		return ErrUnauthorized
	}
	return nil
}
