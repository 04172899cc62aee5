// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package auth

import (
	"net/http"
)

// AuthError adds a behavioural hint to an Error.
type AuthError interface {
	error

	// SuggestedResponseCode gives a HTTP status code.
	SuggestedResponseCode() int
}

// Denial reasons. Every failed check maps to exactly one of these;
// nothing below this package panics or falls through to an allow.
const (
	ErrMissingHeaders       forbiddenError  = "data or sign header is missing"
	ErrMalformedPayload     badRequestError = "auth data not formatted correctly"
	ErrUnsupportedVersion   forbiddenError  = "auth data version not supported"
	ErrTimestampOutOfWindow forbiddenError  = "auth time outside the accepted window"
	ErrUnknownToken         forbiddenError  = "auth token not known here"
	ErrSignatureMismatch    forbiddenError  = "signature mismatch"
)

// badRequestError is returned on formal errors.
type badRequestError string

// Error implements the error interface.
func (e badRequestError) Error() string { return string(e) }

// SuggestedResponseCode implements the AuthError interface.
func (e badRequestError) SuggestedResponseCode() int { return http.StatusBadRequest }

// forbiddenError is returned when a well-formed request fails a check
// against the configured secrets or freshness policy.
//
// The client should not try again.
type forbiddenError string

// Error implements the error interface.
func (e forbiddenError) Error() string { return string(e) }

// SuggestedResponseCode implements the AuthError interface.
func (e forbiddenError) SuggestedResponseCode() int { return http.StatusForbidden }
