// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth guards the admin endpoint.

# Admin Bearer

The admin listing accepts exactly one credential, the configured admin key
sent as a bearer token:

	Authorization: Bearer <ADMIN_API_KEY>

	if err := auth.ValidateAdminBearer(r.Header.Get("Authorization"), cfg.AdminAPIKey); err != nil {
		// ErrUnauthorized → 401, ErrAdminKeyNotConfigured → 500
	}

The header must match byte for byte; the scheme is case sensitive and no
whitespace is trimmed. Comparison uses hmac.Equal to avoid timing leaks.

An empty admin key never authenticates anything, including an empty token.
*/
package auth
