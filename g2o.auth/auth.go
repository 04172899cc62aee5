// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package auth // import "blitznote.com/src/caddy.g2o/g2o.auth"

import (
	"crypto/hmac"
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"encoding/base64"
	"hash"
	"net/http"
	"strings"
)

// Canonical G2O header names, used wherever a Validator leaves its own unset.
const (
	DefaultDataHeader = "X-Akamai-G2O-Auth-Data"
	DefaultSignHeader = "X-Akamai-G2O-Auth-Sign"
)

// Applied to a Validator's zero values.
const (
	DefaultVersion    = 3
	DefaultTimeWindow = 30 // seconds, inclusive on both ends
)

// Secrets maps tokens to shared secrets.
type Secrets map[string][]byte

// Insert decodes the key/value pairs
// and adds/updates them into the existing shared secret collection.
//
// The format of each pair is:
//  token=base64(secret)
//
// For example:
//  token=YV9wYXNzd29yZA==
//
// The first tuple that cannot be decoded is returned as error string.
func (m Secrets) Insert(tuples []string) error {
	for idx := range tuples {
		p := strings.SplitN(tuples[idx], "=", 2)
		if len(p) != 2 {
			return badRequestError(tuples[idx])
		}
		binary, err := base64.StdEncoding.DecodeString(p[1])
		if err != nil {
			return badRequestError(tuples[idx])
		}
		m[p[0]] = binary
	}

	return nil
}

// HashByName resolves a digest name from the configuration surface.
// The reference edge implementation signs with MD5.
func HashByName(name string) (func() hash.Hash, bool) {
	switch name {
	case "md5":
		return md5.New, true
	case "sha1":
		return sha1.New, true
	case "sha256":
		return sha256.New, true
	}
	return nil, false
}

// Validator decides whether a request carries a valid edge signature.
//
// A zero value is usable: header names, version, window, and digest all
// fall back to their canonical defaults. Validators are read-only once
// configured and safe for concurrent use; the sole shared state is the
// Secrets table, which Authenticate never writes.
type Validator struct {
	DataHeader string // name of the header carrying the payload
	SignHeader string // name of the header carrying the signature

	// Multiple tokens can be valid at the same time,
	// each selecting its own shared secret.
	Secrets Secrets

	Version    uint64 // expected payload version; 0 means DefaultVersion
	TimeWindow uint64 // max |now − payload time| in seconds; 0 means DefaultTimeWindow

	// Digest the edge signs with; nil means MD5.
	Hash func() hash.Hash
}

// Authenticate decides one request.
//
// 'timestampRecv' is the Unix timestamp at the time when the request has
// been received; it is a parameter so that callers control the clock.
//
// A nil return admits the request. Every other outcome is one of the
// exported Err… reasons — malformed or adversarial input turns into a
// denial, never into a fault.
func (v Validator) Authenticate(headers http.Header, requestPath string, timestampRecv int64) AuthError {
	dataName, signName := v.DataHeader, v.SignHeader
	if dataName == "" {
		dataName = DefaultDataHeader
	}
	if signName == "" {
		signName = DefaultSignHeader
	}

	data := headers.Get(dataName)
	sign := headers.Get(signName)
	if data == "" || sign == "" {
		return ErrMissingHeaders
	}

	payload, err := ParsePayload(data)
	if err != nil {
		return err
	}

	version := v.Version
	if version == 0 {
		version = DefaultVersion
	}
	if payload.Version != version {
		return ErrUnsupportedVersion
	}

	window := v.TimeWindow
	if window == 0 {
		window = DefaultTimeWindow
	}
	if abs64(timestampRecv-payload.Timestamp) > window {
		return ErrTimestampOutOfWindow
	}

	secret, secretFound := v.Secrets[payload.Token]
	if !secretFound {
		return ErrUnknownToken
	}

	digest := v.Hash
	if digest == nil {
		digest = md5.New
	}

	// The MAC covers the data header verbatim, plus the request path.
	// Re-serializing the payload would break signatures the edge computed.
	mac := hmac.New(digest, secret)
	mac.Write([]byte(data))
	mac.Write([]byte(requestPath))
	expected := base64.StdEncoding.EncodeToString(mac.Sum(nil))

	// The reference signer pipes through 'openssl enc -base64',
	// which appends a line terminator.
	sign = strings.TrimRight(sign, " \t\r\n")

	if !signaturesMatch(expected, sign) {
		return ErrSignatureMismatch
	}
	return nil
}

// signaturesMatch compares an encoded signature in time that depends on
// the length of 'expected' only.
//
// Deliberately not hmac.Equal or ==: those bail out on the first
// difference or on unequal lengths, and a length mismatch must cost the
// same as a late byte mismatch. All differences are folded into one
// accumulator over the full expected length.
func signaturesMatch(expected, given string) bool {
	diff := len(expected) ^ len(given)
	for i := 0; i < len(expected); i++ {
		var g byte
		if i < len(given) {
			g = given[i]
		}
		diff |= int(expected[i] ^ g)
	}
	return diff == 0
}
