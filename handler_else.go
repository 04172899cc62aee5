// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package g2o // import "blitznote.com/src/caddy.g2o"

import (
	"net/http"
)

// NewHandler creates an instance of this plugin's validator,
// meant to be used in Go's own http server.
//
// 'next' is optional.
func NewHandler(config *ScopeConfiguration, next http.Handler) (*StandaloneHandler, error) {
	h := StandaloneHandler{
		config: config,
		next:   next,
	}

	if next == nil {
		h.next = http.NotFoundHandler()
	}

	return &h, nil
}

// StandaloneHandler implements http.Handler.
type StandaloneHandler struct {
	config *ScopeConfiguration
	next   http.Handler
}

// ServeHTTP validates the request, else defers it to the next handler.
func (h StandaloneHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var callNext bool

	httpCode, err := serveValidated(w, r,
		h.config,
		func(w http.ResponseWriter, r *http.Request) (int, error) {
			callNext = true
			return 0, nil
		},
	)

	if callNext {
		h.next.ServeHTTP(w, r)
		return
	}
	if httpCode >= 400 {
		if err != nil {
			http.Error(w, err.Error(), httpCode)
		} else {
			http.Error(w, http.StatusText(httpCode), httpCode)
		}
	}
}
