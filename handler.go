// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package g2o // import "blitznote.com/src/caddy.g2o"

import (
	"log"
	"net/http"
	"time"

	"github.com/caddyserver/caddy/caddyhttp/httpserver"
)

// Results in a syscall issued by 'runtime'.
func getTimestampUsingTime() int64 {
	return time.Now().Unix()
}

// Seconds since 1970-01-01 00:00:00Z.
//
// Swapped for a canned clock in tests.
var getTimestamp func() int64 = getTimestampUsingTime

// Handler represents a configured instance of this plugin.
type Handler struct {
	Next   httpserver.Handler
	Config HandlerConfiguration
}

// ServeHTTP validates any request below a configured scope,
// else defers to the next handler untouched.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) (int, error) {
	// iterate over the scopes in the order they have been defined
	for _, scope := range h.Config.PathScopes {
		if httpserver.Path(r.URL.Path).Matches(scope) {
			config := h.Config.Scope[scope]
			return serveValidated(w, r, config, h.Next.ServeHTTP)
		}
	}
	return h.Next.ServeHTTP(w, r)
}

// serveValidated decides one request per the scope's mode, and on allow
// hands over to 'next'. Every deny is terminal; there are no retries.
func serveValidated(w http.ResponseWriter, r *http.Request,
	config *ScopeConfiguration,
	next func(http.ResponseWriter, *http.Request) (int, error),
) (int, error) {
	switch config.Mode {
	case ModePassive:
		if denied := config.Validator.Authenticate(r.Header, r.RequestURI, getTimestamp()); denied != nil {
			log.Printf("[INFO] g2o: would deny %s %s: %v", r.Method, r.RequestURI, denied)
		}
	case ModeOn:
		if denied := config.Validator.Authenticate(r.Header, r.RequestURI, getTimestamp()); denied != nil {
			if config.SilenceAuthErrors {
				return http.StatusForbidden, nil
			}
			return denied.SuggestedResponseCode(), denied
		}
	}

	return next(w, r)
}
