package variant

import "github.com/wippyai/variant/internal/types"

// Tag identifies the kind of value a Variant holds.
type Tag = types.Tag

const (
	TagNil          = types.TagNil
	TagBool         = types.TagBool
	TagInt          = types.TagInt
	TagFloat        = types.TagFloat
	TagString       = types.TagString
	TagVector2      = types.TagVector2
	TagRect2        = types.TagRect2
	TagVector3      = types.TagVector3
	TagTransform2D  = types.TagTransform2D
	TagPlane        = types.TagPlane
	TagQuat         = types.TagQuat
	TagAabb         = types.TagAabb
	TagBasis        = types.TagBasis
	TagTransform    = types.TagTransform
	TagColor        = types.TagColor
	TagNodePath     = types.TagNodePath
	TagRid          = types.TagRid
	TagObject       = types.TagObject
	TagDictionary   = types.TagDictionary
	TagArray        = types.TagArray
	TagByteArray    = types.TagByteArray
	TagInt32Array   = types.TagInt32Array
	TagFloat32Array = types.TagFloat32Array
	TagStringArray  = types.TagStringArray
	TagVector2Array = types.TagVector2Array
	TagVector3Array = types.TagVector3Array
	TagColorArray   = types.TagColorArray
)

// TagFromSys maps a type code reported by the foreign runtime to a Tag.
// Unknown codes return an error.
func TagFromSys(code uint32) (Tag, error) {
	return types.FromSys(code)
}

// ParseTag resolves a tag by its name, ignoring case.
func ParseTag(name string) (Tag, error) {
	return types.Parse(name)
}
