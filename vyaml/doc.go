// Package vyaml converts between YAML documents and Variants.
//
// Untagged YAML maps onto the dynamic kinds: null, bool, int, float and
// string scalars, sequences as Array and mappings as Dictionary. Mapping
// keys may be any scalar or collection and keep their document order.
//
// The remaining kinds use local tags named after the Variant tag, matched
// without regard to case:
//
//	origin: !Vector2 [0, 1.5]
//	tint: !Color [1, 0.5, 0, 1]
//	target: !NodePath ../Player
//	ids: !Int32Array [1, 2, 3]
//	blob: !!binary aGVsbG8=
//
// Geometry tags take a flat sequence of their float components in field
// order. Objects have no YAML form and fail to encode.
package vyaml
