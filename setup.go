// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package g2o // import "blitznote.com/src/caddy.g2o"

import (
	"strconv"

	"github.com/caddyserver/caddy"
	"github.com/caddyserver/caddy/caddyhttp/httpserver"
	"github.com/pkg/errors"

	auth "blitznote.com/src/caddy.g2o/g2o.auth"
)

func init() {
	caddy.RegisterPlugin("g2o", caddy.Plugin{
		ServerType: "http",
		Action:     Setup,
	})
}

// Setup configures a G2O validation instance.
//
// This is called by Caddy as consequence of invoking `caddy.RegisterPlugin` in init.
func Setup(c *caddy.Controller) error {
	config, err := parseCaddyConfig(c)
	if err != nil {
		return err
	}

	site := httpserver.GetConfig(c)
	site.AddMiddleware(func(next httpserver.Handler) httpserver.Handler {
		return &Handler{
			Next:   next,
			Config: *config,
		}
	})

	return nil
}

// Mode selects what a failed validation results in.
type Mode uint8

// Validation can be skipped, observed, or enforced per scope.
const (
	ModeOff     Mode = iota // no validation
	ModePassive             // validate and log, but don't fail any requests
	ModeOn                  // validate and fail the request if invalid
)

// ScopeConfiguration represents the settings for a scope (path).
type ScopeConfiguration struct {
	Mode Mode

	// Decides single requests; shared read-only between
	// all in-flight requests of the scope.
	Validator auth.Validator

	// A skilled attacker will monitor traffic, and timings.
	// Enabling this merely withholds the denial reason from responses.
	SilenceAuthErrors bool
}

// NewDefaultConfiguration returns a configuration with every knob at its
// canonical value: validation enforced, MD5, version 3, a 30-second
// window, the X-Akamai-G2O-Auth-* header pair, an empty secret table.
func NewDefaultConfiguration() *ScopeConfiguration {
	return &ScopeConfiguration{
		Mode: ModeOn,
		Validator: auth.Validator{
			DataHeader: auth.DefaultDataHeader,
			SignHeader: auth.DefaultSignHeader,
			Secrets:    make(auth.Secrets),
			Version:    auth.DefaultVersion,
			TimeWindow: auth.DefaultTimeWindow,
		},
	}
}

// HandlerConfiguration is the result of directives found in a 'Caddyfile'.
//
// The same instance can be used to serve multiple paths, therefore we go
// through this struct to figure out the applicable configuration.
type HandlerConfiguration struct {
	// Prefixes on which Caddy activates this plugin (read-only).
	//
	// Order matters because scopes can overlap.
	PathScopes []string

	// Maps scopes (paths) to their own and potentially differing configurations.
	Scope map[string]*ScopeConfiguration
}

func parseCaddyConfig(c *caddy.Controller) (*HandlerConfiguration, error) {
	siteConfig := &HandlerConfiguration{
		PathScopes: make([]string, 0, 1),
		Scope:      make(map[string]*ScopeConfiguration),
	}

	for c.Next() {
		config := NewDefaultConfiguration()

		scopes := c.RemainingArgs() // most likely only one path; but could be more
		if len(scopes) == 0 {
			return siteConfig, c.ArgErr()
		}
		siteConfig.PathScopes = append(siteConfig.PathScopes, scopes...)

		for c.NextBlock() {
			key := c.Val()
			switch key {
			case "mode":
				if !c.NextArg() {
					return siteConfig, c.ArgErr()
				}
				switch c.Val() {
				case "off":
					config.Mode = ModeOff
				case "passive":
					config.Mode = ModePassive
				case "on":
					config.Mode = ModeOn
				default:
					return siteConfig, c.Errf("mode must be one of 'off', 'passive', 'on': %q", c.Val())
				}
			case "keys_in":
				keys := c.RemainingArgs()
				if len(keys) == 0 {
					return siteConfig, c.ArgErr()
				}
				if err := config.Validator.Secrets.Insert(keys); err != nil {
					return siteConfig, c.Err(errors.Wrap(err, "undecipherable key tuple").Error())
				}
			case "data_header":
				if !c.NextArg() {
					return siteConfig, c.ArgErr()
				}
				config.Validator.DataHeader = c.Val()
			case "sign_header":
				if !c.NextArg() {
					return siteConfig, c.ArgErr()
				}
				config.Validator.SignHeader = c.Val()
			case "time_window":
				if !c.NextArg() {
					return siteConfig, c.ArgErr()
				}
				s, err := strconv.ParseUint(c.Val(), 10, 32)
				if err != nil {
					return siteConfig, c.Err(err.Error())
				}
				if s > 86400 { // a full day of clock skew is a broken clock, not skew
					return siteConfig, c.Err("must be ≤ 86400")
				}
				config.Validator.TimeWindow = s
			case "version":
				if !c.NextArg() {
					return siteConfig, c.ArgErr()
				}
				s, err := strconv.ParseUint(c.Val(), 10, 8)
				if err != nil {
					return siteConfig, c.Err(err.Error())
				}
				if s == 0 {
					return siteConfig, c.Err("version 0 does not exist")
				}
				config.Validator.Version = s
			case "hash":
				if !c.NextArg() {
					return siteConfig, c.ArgErr()
				}
				h, known := auth.HashByName(c.Val())
				if !known {
					return siteConfig, c.Errf("hash must be one of 'md5', 'sha1', 'sha256': %q", c.Val())
				}
				config.Validator.Hash = h
			case "silent_errors":
				config.SilenceAuthErrors = true
			default:
				return siteConfig, c.ArgErr()
			}
		}

		if config.Mode != ModeOff && len(config.Validator.Secrets) == 0 {
			return siteConfig, c.Errf("no shared secrets: 'keys_in' is missing")
		}

		for idx := range scopes {
			siteConfig.Scope[scopes[idx]] = config
		}
	}

	return siteConfig, nil
}
