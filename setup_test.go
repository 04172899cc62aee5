// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package g2o

import (
	"errors"
	"testing"

	auth "blitznote.com/src/caddy.g2o/g2o.auth"
	"github.com/caddyserver/caddy"
	"github.com/caddyserver/caddy/caddyhttp/httpserver"
	. "github.com/smartystreets/goconvey/convey"
)

func TestSetupParse(t *testing.T) {
	tests := []struct {
		config       string
		expectedErr  error
		expectedConf HandlerConfiguration
	}{
		{
			`g2o / { keys_in token=YV9wYXNzd29yZA== }`,
			nil,
			HandlerConfiguration{
				PathScopes: []string{"/"},
				Scope: map[string]*ScopeConfiguration{
					"/": {
						Mode: ModeOn,
						Validator: auth.Validator{
							DataHeader: auth.DefaultDataHeader,
							SignHeader: auth.DefaultSignHeader,
							Secrets:    auth.Secrets{"token": []byte("a_password")},
							Version:    3,
							TimeWindow: 30,
						},
					},
				},
			},
		},
		{
			`g2o /`,
			errors.New("Testfile:1 - Error during parsing: no shared secrets: 'keys_in' is missing"),
			HandlerConfiguration{},
		},
		{
			`g2o / { mode off }`,
			nil,
			HandlerConfiguration{
				PathScopes: []string{"/"},
				Scope: map[string]*ScopeConfiguration{
					"/": {
						Mode: ModeOff,
						Validator: auth.Validator{
							DataHeader: auth.DefaultDataHeader,
							SignHeader: auth.DefaultSignHeader,
							Secrets:    make(auth.Secrets),
							Version:    3,
							TimeWindow: 30,
						},
					},
				},
			},
		},
		{
			`g2o / {
				mode passive
				keys_in token=YV9wYXNzd29yZA== token2=c2VjcmV0IEI=
				silent_errors
			}`,
			nil,
			HandlerConfiguration{
				PathScopes: []string{"/"},
				Scope: map[string]*ScopeConfiguration{
					"/": {
						Mode: ModePassive,
						Validator: auth.Validator{
							DataHeader: auth.DefaultDataHeader,
							SignHeader: auth.DefaultSignHeader,
							Secrets: auth.Secrets{
								"token":  []byte("a_password"),
								"token2": []byte("secret B"),
							},
							Version:    3,
							TimeWindow: 30,
						},
						SilenceAuthErrors: true,
					},
				},
			},
		},
		{
			`g2o / {
				keys_in token=YV9wYXNzd29yZA==
				data_header X-Edge-Data
				sign_header X-Edge-Sign
				time_window 90
				version 2
			}`,
			nil,
			HandlerConfiguration{
				PathScopes: []string{"/"},
				Scope: map[string]*ScopeConfiguration{
					"/": {
						Mode: ModeOn,
						Validator: auth.Validator{
							DataHeader: "X-Edge-Data",
							SignHeader: "X-Edge-Sign",
							Secrets:    auth.Secrets{"token": []byte("a_password")},
							Version:    2,
							TimeWindow: 90,
						},
					},
				},
			},
		},
		{
			`g2o / {
				keys_in token=YV9wYXNzd29yZA==
				time_window 86401
			}`,
			errors.New("Testfile:3 - Error during parsing: must be ≤ 86400"),
			HandlerConfiguration{},
		},
		{
			`g2o / {
				keys_in token
			}`,
			errors.New("Testfile:2 - Error during parsing: undecipherable key tuple: token"),
			HandlerConfiguration{},
		},
		{
			`g2o /download-a { keys_in a=YV9wYXNzd29yZA== }
			g2o /download-b { keys_in b=c2VjcmV0IEI= }`,
			nil,
			HandlerConfiguration{
				PathScopes: []string{"/download-a", "/download-b"},
				Scope: map[string]*ScopeConfiguration{
					"/download-a": {
						Mode: ModeOn,
						Validator: auth.Validator{
							DataHeader: auth.DefaultDataHeader,
							SignHeader: auth.DefaultSignHeader,
							Secrets:    auth.Secrets{"a": []byte("a_password")},
							Version:    3,
							TimeWindow: 30,
						},
					},
					"/download-b": {
						Mode: ModeOn,
						Validator: auth.Validator{
							DataHeader: auth.DefaultDataHeader,
							SignHeader: auth.DefaultSignHeader,
							Secrets:    auth.Secrets{"b": []byte("secret B")},
							Version:    3,
							TimeWindow: 30,
						},
					},
				},
			},
		},
	}

	Convey("Setup of the controller", t, func() {
		for idx := range tests {
			test := tests[idx]
			c := caddy.NewTestController("http", test.config)
			err := Setup(c)
			if test.expectedErr != nil {
				So(err, ShouldResemble, test.expectedErr)
				continue
			}
			So(err, ShouldBeNil)

			mids := httpserver.GetConfig(c).Middleware()
			So(len(mids), ShouldEqual, 1)

			i := mids[0](httpserver.EmptyNext)
			myHandler, ok := i.(*Handler)
			So(ok, ShouldBeTrue)

			// strip functors (cannot compare them)
			for _, scopeConf := range myHandler.Config.Scope {
				scopeConf.Validator.Hash = nil
			}

			So(myHandler.Config, ShouldResemble, test.expectedConf)
		}
	})

	Convey("Misconfigurations are rejected", t, func() {
		keys := "keys_in token=YV9wYXNzd29yZA=="
		for _, config := range []string{
			`g2o`,
			`g2o / { mode maybe }`,
			`g2o / { mode }`,
			`g2o / { keys_in }`,
			"g2o / {\n" + keys + "\ntime_window soon\n}",
			"g2o / {\n" + keys + "\ntime_window\n}",
			"g2o / {\n" + keys + "\nversion 0\n}",
			"g2o / {\n" + keys + "\nversion three\n}",
			"g2o / {\n" + keys + "\nhash crc32\n}",
			"g2o / {\n" + keys + "\nunknown_directive\n}",
		} {
			c := caddy.NewTestController("http", config)
			So(Setup(c), ShouldNotBeNil)
		}
	})

	Convey("The 'hash' directive selects a digest", t, func() {
		c := caddy.NewTestController("http", `g2o / {
			keys_in token=YV9wYXNzd29yZA==
			hash sha256
		}`)
		So(Setup(c), ShouldBeNil)

		mids := httpserver.GetConfig(c).Middleware()
		So(len(mids), ShouldEqual, 1)
		myHandler := mids[0](httpserver.EmptyNext).(*Handler)
		So(myHandler.Config.Scope["/"].Validator.Hash, ShouldNotBeNil)
	})
}
