// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package auth validates Akamai G2O ("ghost to origin") request headers,
// by which an edge server proves to the origin that it relayed a request.
//
// The edge attaches two headers. One carries a small data payload:
//
//  X-Akamai-G2O-Auth-Data: 3, 69.31.17.132, 80.169.32.154, 1599924223, 13459971.1599924223, token
//
// … being version, edge IP, client IP, Unix timestamp, a legacy field,
// and the name of the shared secret. The other carries a MAC over that
// payload and the request URI:
//
//  X-Akamai-G2O-Auth-Sign: 7hu2nfmgkNiVt9IGzf6asI8xZUc=
//
// This is how you generate aforementioned signature on the Linux shell:
//  secret="a_password"
//  data="3, 69.31.17.132, 80.169.32.154, $(date --utc +%s), 13459971.1599924223, token"
//
//  printf "${data}/download/stuff.html" \
//  | openssl dgst -md5 -hmac "${secret}" -binary \
//  | openssl enc -base64
//
// Validation is a pure function of the two header values, the request
// URI, the shared-secret table, and a caller-supplied timestamp. It
// holds no state between requests.
package auth // import "blitznote.com/src/caddy.g2o/g2o.auth"
