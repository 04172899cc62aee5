// This file is released into the public domain.

// +build ignore

// Package main implements a minimal http server whose contents are
// reachable only through a signing edge.
//
// For example, after starting it ('go run "this file"') request a file
// with headers generated like the package documentation shows:
//  curl -H 'X-Akamai-G2O-Auth-Data: …' -H 'X-Akamai-G2O-Auth-Sign: …' \
//    http://127.0.0.1:9000/os-release
package main

import (
	"net/http"
	"os"

	g2o "blitznote.com/src/caddy.g2o"
)

func main() {
	directory := os.TempDir()
	if otherTempDir, present := os.LookupEnv("TMPDIR"); present {
		directory = otherTempDir
	}
	next := http.FileServer(http.Dir(directory))

	cfg := g2o.NewDefaultConfiguration()
	cfg.Validator.Secrets.Insert([]string{"token=YV9wYXNzd29yZA=="}) // token=a_password

	handler, _ := g2o.NewHandler(cfg, next)

	http.Handle("/", handler)
	http.ListenAndServe(":9000", nil)
}
