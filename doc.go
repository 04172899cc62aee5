// Package g2o contains a HTTP middleware for the Caddy webserver,
// which admits only requests that a trusted edge server has relayed
// and signed using Akamai's G2O scheme.
//
// The edge attaches a data header and a sign header; the latter is a
// base64-encoded HMAC over the former plus the request URI, keyed with
// a shared secret that a token in the data header selects. Anything
// that does not carry a fresh, correctly signed pair is turned away
// before it reaches the next handler.
//
// Caddyfile example:
//
//  g2o /download {
//      keys_in token=YV9wYXNzd29yZA==
//  }
//
// All knobs, with their defaults:
//
//  g2o /download {
//      mode on
//      keys_in token=YV9wYXNzd29yZA== token2=c2VjcmV0IEI=
//      data_header X-Akamai-G2O-Auth-Data
//      sign_header X-Akamai-G2O-Auth-Sign
//      time_window 30
//      version 3
//      hash md5
//  }
//
// 'mode passive' validates and logs would-be denials without failing
// any request, which is how you dry-run a new secret table. Secrets are
// given base64-encoded. See package …/g2o.auth for the wire format and
// for generating signatures on the shell.
package g2o // import "blitznote.com/src/caddy.g2o"
