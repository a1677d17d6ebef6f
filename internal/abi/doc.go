// Package abi provides internal utilities for moving native integers in and
// out of the single 64-bit integer slot a Variant exposes.
//
// # Contents
//
//   - coerce.go: Width casts between Go integer kinds and the Int slot
//   - helpers.go: Foreign length guards and small shared helpers
//
// This package is internal to the variant module.
package abi
