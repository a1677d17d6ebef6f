package types

import (
	"fmt"
	"strings"
)

// Tag is the discriminant of a Variant.
type Tag uint8

const (
	TagNil Tag = iota
	TagBool
	TagInt
	TagFloat
	TagString
	TagVector2
	TagRect2
	TagVector3
	TagTransform2D
	TagPlane
	TagQuat
	TagAabb
	TagBasis
	TagTransform
	TagColor
	TagNodePath
	TagRid
	TagObject
	TagDictionary
	TagArray
	TagByteArray
	TagInt32Array
	TagFloat32Array
	TagStringArray
	TagVector2Array
	TagVector3Array
	TagColorArray

	tagCount
)

var tagNames = [...]string{
	TagNil:          "Nil",
	TagBool:         "Bool",
	TagInt:          "Int",
	TagFloat:        "Float",
	TagString:       "String",
	TagVector2:      "Vector2",
	TagRect2:        "Rect2",
	TagVector3:      "Vector3",
	TagTransform2D:  "Transform2D",
	TagPlane:        "Plane",
	TagQuat:         "Quat",
	TagAabb:         "Aabb",
	TagBasis:        "Basis",
	TagTransform:    "Transform",
	TagColor:        "Color",
	TagNodePath:     "NodePath",
	TagRid:          "Rid",
	TagObject:       "Object",
	TagDictionary:   "Dictionary",
	TagArray:        "Array",
	TagByteArray:    "ByteArray",
	TagInt32Array:   "Int32Array",
	TagFloat32Array: "Float32Array",
	TagStringArray:  "StringArray",
	TagVector2Array: "Vector2Array",
	TagVector3Array: "Vector3Array",
	TagColorArray:   "ColorArray",
}

func (t Tag) String() string {
	if int(t) < len(tagNames) {
		return tagNames[t]
	}
	return "unknown"
}

// Valid reports whether t is one of the known tags.
func (t Tag) Valid() bool {
	return t < tagCount
}

// IsInline reports whether values of this tag are stored by value.
func (t Tag) IsInline() bool {
	switch t {
	case TagNil, TagBool, TagInt, TagFloat, TagRid,
		TagVector2, TagRect2, TagVector3, TagTransform2D, TagPlane,
		TagQuat, TagAabb, TagBasis, TagTransform, TagColor:
		return true
	default:
		return false
	}
}

// IsTypedArray reports whether t is one of the homogeneous array kinds.
func (t Tag) IsTypedArray() bool {
	return t >= TagByteArray && t <= TagColorArray
}

// Foreign runtime type codes. These are the values the engine reports and
// must never be cast to Tag directly.
const (
	SysNil          uint32 = 0
	SysBool         uint32 = 1
	SysInt          uint32 = 2
	SysReal         uint32 = 3
	SysString       uint32 = 4
	SysVector2      uint32 = 5
	SysRect2        uint32 = 6
	SysVector3      uint32 = 7
	SysTransform2D  uint32 = 8
	SysPlane        uint32 = 9
	SysQuat         uint32 = 10
	SysAabb         uint32 = 11
	SysBasis        uint32 = 12
	SysTransform    uint32 = 13
	SysColor        uint32 = 14
	SysNodePath     uint32 = 15
	SysRid          uint32 = 16
	SysObject       uint32 = 17
	SysDictionary   uint32 = 18
	SysArray        uint32 = 19
	SysPoolBytes    uint32 = 20
	SysPoolInts     uint32 = 21
	SysPoolReals    uint32 = 22
	SysPoolStrings  uint32 = 23
	SysPoolVector2s uint32 = 24
	SysPoolVector3s uint32 = 25
	SysPoolColors   uint32 = 26
)

// FromSys maps a foreign type code to a Tag.
func FromSys(code uint32) (Tag, error) {
	switch code {
	case SysNil:
		return TagNil, nil
	case SysBool:
		return TagBool, nil
	case SysInt:
		return TagInt, nil
	case SysReal:
		return TagFloat, nil
	case SysString:
		return TagString, nil
	case SysVector2:
		return TagVector2, nil
	case SysRect2:
		return TagRect2, nil
	case SysVector3:
		return TagVector3, nil
	case SysTransform2D:
		return TagTransform2D, nil
	case SysPlane:
		return TagPlane, nil
	case SysQuat:
		return TagQuat, nil
	case SysAabb:
		return TagAabb, nil
	case SysBasis:
		return TagBasis, nil
	case SysTransform:
		return TagTransform, nil
	case SysColor:
		return TagColor, nil
	case SysNodePath:
		return TagNodePath, nil
	case SysRid:
		return TagRid, nil
	case SysObject:
		return TagObject, nil
	case SysDictionary:
		return TagDictionary, nil
	case SysArray:
		return TagArray, nil
	case SysPoolBytes:
		return TagByteArray, nil
	case SysPoolInts:
		return TagInt32Array, nil
	case SysPoolReals:
		return TagFloat32Array, nil
	case SysPoolStrings:
		return TagStringArray, nil
	case SysPoolVector2s:
		return TagVector2Array, nil
	case SysPoolVector3s:
		return TagVector3Array, nil
	case SysPoolColors:
		return TagColorArray, nil
	}
	return TagNil, fmt.Errorf("unknown foreign type code %d", code)
}

var sysCodes = [...]uint32{
	TagNil:          SysNil,
	TagBool:         SysBool,
	TagInt:          SysInt,
	TagFloat:        SysReal,
	TagString:       SysString,
	TagVector2:      SysVector2,
	TagRect2:        SysRect2,
	TagVector3:      SysVector3,
	TagTransform2D:  SysTransform2D,
	TagPlane:        SysPlane,
	TagQuat:         SysQuat,
	TagAabb:         SysAabb,
	TagBasis:        SysBasis,
	TagTransform:    SysTransform,
	TagColor:        SysColor,
	TagNodePath:     SysNodePath,
	TagRid:          SysRid,
	TagObject:       SysObject,
	TagDictionary:   SysDictionary,
	TagArray:        SysArray,
	TagByteArray:    SysPoolBytes,
	TagInt32Array:   SysPoolInts,
	TagFloat32Array: SysPoolReals,
	TagStringArray:  SysPoolStrings,
	TagVector2Array: SysPoolVector2s,
	TagVector3Array: SysPoolVector3s,
	TagColorArray:   SysPoolColors,
}

// Sys returns the foreign type code for t.
func (t Tag) Sys() uint32 {
	if int(t) < len(sysCodes) {
		return sysCodes[t]
	}
	panic(fmt.Sprintf("types: tag %d has no foreign code", t))
}

// Parse resolves a tag by name, case-insensitively.
func Parse(name string) (Tag, error) {
	for i, n := range tagNames {
		if strings.EqualFold(n, name) {
			return Tag(i), nil
		}
	}
	return TagNil, fmt.Errorf("unknown tag %q", name)
}

// All returns every tag in declaration order.
func All() []Tag {
	out := make([]Tag, tagCount)
	for i := range out {
		out[i] = Tag(i)
	}
	return out
}
