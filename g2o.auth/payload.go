// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package auth

import (
	"strconv"
	"strings"
)

// The data header splits into exactly this many fields.
const payloadFieldNum = 6

// Payload is the deserialized content of the data header.
type Payload struct {
	Version  uint64
	EdgeIP   string // opaque, not validated
	ClientIP string // opaque, not validated

	// Unix timestamp at which the edge signed the request.
	Timestamp int64

	// A legacy field between timestamp and token, carried verbatim.
	// Its purpose has never surfaced in observed traffic; don't guess.
	Extra string

	// Selects the shared secret.
	Token string
}

// ParsePayload deserializes the raw value of the data header.
//
// The wire format is ", "-separated:
//  version, edge_ip, client_ip, timestamp, extra, token
//
// Accepts any input without panicking. Whatever does not split into
// exactly six fields, with version and timestamp being base-10 numbers,
// is rejected; the remaining fields are consumed verbatim.
func ParsePayload(raw string) (Payload, AuthError) {
	var p Payload

	fields := strings.Split(raw, ", ")
	if len(fields) != payloadFieldNum {
		return p, ErrMalformedPayload
	}

	version, err := strconv.ParseUint(fields[0], 10, 64)
	if err != nil {
		return p, ErrMalformedPayload
	}
	timestamp, err := strconv.ParseInt(fields[3], 10, 64)
	if err != nil {
		return p, ErrMalformedPayload
	}

	p.Version = version
	p.EdgeIP = fields[1]
	p.ClientIP = fields[2]
	p.Timestamp = timestamp
	p.Extra = fields[4]
	p.Token = fields[5]
	return p, nil
}
