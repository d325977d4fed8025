// Package web holds the browser front end served at "/".
package web

import _ "embed"

// IndexHTML is the single-page front end that posts to /analyze.
//
//go:embed index.html
var IndexHTML []byte
