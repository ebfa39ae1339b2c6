// Package file provides the TOML-backed configuration store.
//
// Settings are kept in memory as flat dot-notation keys and written back
// as nested TOML tables:
//
//	[archive]
//	root = "/data/akashic-archives-demo"
//	backend = "file"
package file
