// Package data bundles a small starter data set so klefki runs without a data dir.
package data

import "embed"

//go:embed *.json scripts/*.lua
var Files embed.FS
