// Package file provides TOML file-backed configuration storage.
// Settings live in ~/.gitscout/config.toml by default; a missing file
// means defaults, not an error.
package file
