package variant

import (
	"math"
	"slices"

	"go.uber.org/zap"

	"github.com/wippyai/variant/errors"
	"github.com/wippyai/variant/internal/abi"
)

// mismatch is called by the lossy accessors before they fall back to a
// default value.
func (v Variant) mismatch(want Tag) {
	if ce := Logger().Check(zap.DebugLevel, "lossy variant coercion"); ce != nil {
		ce.Write(zap.Stringer("want", want), zap.Stringer("got", v.tag))
	}
}

func (v Variant) check(want Tag) *errors.Error {
	if v.tag != want {
		return errors.InvalidTag(want, v.tag)
	}
	return nil
}

func (v Variant) ToBool() bool {
	if v.tag != TagBool {
		v.mismatch(TagBool)
		return false
	}
	return v.word != 0
}

func (v Variant) AsBool() (bool, error) {
	if err := v.check(TagBool); err != nil {
		return false, err
	}
	return v.word != 0, nil
}

func (v Variant) ToInt64() int64 {
	if v.tag != TagInt {
		v.mismatch(TagInt)
		return 0
	}
	return int64(v.word)
}

func (v Variant) AsInt64() (int64, error) {
	if err := v.check(TagInt); err != nil {
		return 0, err
	}
	return int64(v.word), nil
}

func (v Variant) ToUint64() uint64 {
	if v.tag != TagInt {
		v.mismatch(TagInt)
		return 0
	}
	return abi.UintFromSlot(int64(v.word))
}

func (v Variant) AsUint64() (uint64, error) {
	if err := v.check(TagInt); err != nil {
		return 0, err
	}
	return abi.UintFromSlot(int64(v.word)), nil
}

func (v Variant) ToFloat64() float64 {
	if v.tag != TagFloat {
		v.mismatch(TagFloat)
		return 0
	}
	return math.Float64frombits(v.word)
}

func (v Variant) AsFloat64() (float64, error) {
	if err := v.check(TagFloat); err != nil {
		return 0, err
	}
	return math.Float64frombits(v.word), nil
}

// ToString returns the string payload, or "" for any other kind. Use
// String to render a value of any kind.
func (v Variant) ToString() string {
	if v.tag != TagString {
		v.mismatch(TagString)
		return ""
	}
	return v.box.data.(string)
}

func (v Variant) AsString() (string, error) {
	if err := v.check(TagString); err != nil {
		return "", err
	}
	return v.box.data.(string), nil
}

func (v Variant) ToNodePath() NodePath {
	if v.tag != TagNodePath {
		v.mismatch(TagNodePath)
		return ""
	}
	return v.box.data.(NodePath)
}

func (v Variant) AsNodePath() (NodePath, error) {
	if err := v.check(TagNodePath); err != nil {
		return "", err
	}
	return v.box.data.(NodePath), nil
}

func (v Variant) ToRid() Rid {
	if v.tag != TagRid {
		v.mismatch(TagRid)
		return 0
	}
	return Rid(v.word)
}

func (v Variant) AsRid() (Rid, error) {
	if err := v.check(TagRid); err != nil {
		return 0, err
	}
	return Rid(v.word), nil
}

func (v Variant) ToObject() Object {
	if v.tag != TagObject {
		v.mismatch(TagObject)
		return nil
	}
	return v.box.data.(Object)
}

func (v Variant) AsObject() (Object, error) {
	if err := v.check(TagObject); err != nil {
		return nil, err
	}
	return v.box.data.(Object), nil
}

// ToArray returns the shared array, or a new empty one on mismatch.
func (v Variant) ToArray() *Array {
	if v.tag != TagArray {
		v.mismatch(TagArray)
		return NewArray()
	}
	return v.box.data.(*Array)
}

func (v Variant) AsArray() (*Array, error) {
	if err := v.check(TagArray); err != nil {
		return nil, err
	}
	return v.box.data.(*Array), nil
}

// ToDictionary returns the shared dictionary, or a new empty one on
// mismatch.
func (v Variant) ToDictionary() *Dictionary {
	if v.tag != TagDictionary {
		v.mismatch(TagDictionary)
		return NewDictionary()
	}
	return v.box.data.(*Dictionary)
}

func (v Variant) AsDictionary() (*Dictionary, error) {
	if err := v.check(TagDictionary); err != nil {
		return nil, err
	}
	return v.box.data.(*Dictionary), nil
}

// Geometry

func (v Variant) ToVector2() Vector2 {
	if v.tag != TagVector2 {
		v.mismatch(TagVector2)
		return Vector2{}
	}
	return loadVector2(v.geo[:])
}

func (v Variant) AsVector2() (Vector2, error) {
	if err := v.check(TagVector2); err != nil {
		return Vector2{}, err
	}
	return loadVector2(v.geo[:]), nil
}

func (v Variant) ToRect2() Rect2 {
	if v.tag != TagRect2 {
		v.mismatch(TagRect2)
		return Rect2{}
	}
	return loadRect2(v.geo[:])
}

func (v Variant) AsRect2() (Rect2, error) {
	if err := v.check(TagRect2); err != nil {
		return Rect2{}, err
	}
	return loadRect2(v.geo[:]), nil
}

func (v Variant) ToVector3() Vector3 {
	if v.tag != TagVector3 {
		v.mismatch(TagVector3)
		return Vector3{}
	}
	return loadVector3(v.geo[:])
}

func (v Variant) AsVector3() (Vector3, error) {
	if err := v.check(TagVector3); err != nil {
		return Vector3{}, err
	}
	return loadVector3(v.geo[:]), nil
}

func (v Variant) ToTransform2D() Transform2D {
	if v.tag != TagTransform2D {
		v.mismatch(TagTransform2D)
		return IdentityTransform2D
	}
	return loadTransform2D(v.geo[:])
}

func (v Variant) AsTransform2D() (Transform2D, error) {
	if err := v.check(TagTransform2D); err != nil {
		return Transform2D{}, err
	}
	return loadTransform2D(v.geo[:]), nil
}

func (v Variant) ToPlane() Plane {
	if v.tag != TagPlane {
		v.mismatch(TagPlane)
		return Plane{}
	}
	return loadPlane(v.geo[:])
}

func (v Variant) AsPlane() (Plane, error) {
	if err := v.check(TagPlane); err != nil {
		return Plane{}, err
	}
	return loadPlane(v.geo[:]), nil
}

func (v Variant) ToQuat() Quat {
	if v.tag != TagQuat {
		v.mismatch(TagQuat)
		return IdentityQuat
	}
	return loadQuat(v.geo[:])
}

func (v Variant) AsQuat() (Quat, error) {
	if err := v.check(TagQuat); err != nil {
		return Quat{}, err
	}
	return loadQuat(v.geo[:]), nil
}

func (v Variant) ToAabb() Aabb {
	if v.tag != TagAabb {
		v.mismatch(TagAabb)
		return Aabb{}
	}
	return loadAabb(v.geo[:])
}

func (v Variant) AsAabb() (Aabb, error) {
	if err := v.check(TagAabb); err != nil {
		return Aabb{}, err
	}
	return loadAabb(v.geo[:]), nil
}

func (v Variant) ToBasis() Basis {
	if v.tag != TagBasis {
		v.mismatch(TagBasis)
		return IdentityBasis
	}
	return loadBasis(v.geo[:])
}

func (v Variant) AsBasis() (Basis, error) {
	if err := v.check(TagBasis); err != nil {
		return Basis{}, err
	}
	return loadBasis(v.geo[:]), nil
}

func (v Variant) ToTransform() Transform {
	if v.tag != TagTransform {
		v.mismatch(TagTransform)
		return IdentityTransform
	}
	return loadTransform(v.geo[:])
}

func (v Variant) AsTransform() (Transform, error) {
	if err := v.check(TagTransform); err != nil {
		return Transform{}, err
	}
	return loadTransform(v.geo[:]), nil
}

func (v Variant) ToColor() Color {
	if v.tag != TagColor {
		v.mismatch(TagColor)
		return Color{}
	}
	return loadColor(v.geo[:])
}

func (v Variant) AsColor() (Color, error) {
	if err := v.check(TagColor); err != nil {
		return Color{}, err
	}
	return loadColor(v.geo[:]), nil
}

// Typed arrays. Both forms return a copy.

func (v Variant) ToByteArray() ByteArray {
	if v.tag != TagByteArray {
		v.mismatch(TagByteArray)
		return nil
	}
	return slices.Clone(v.box.data.(ByteArray))
}

func (v Variant) AsByteArray() (ByteArray, error) {
	if err := v.check(TagByteArray); err != nil {
		return nil, err
	}
	return slices.Clone(v.box.data.(ByteArray)), nil
}

func (v Variant) ToInt32Array() Int32Array {
	if v.tag != TagInt32Array {
		v.mismatch(TagInt32Array)
		return nil
	}
	return slices.Clone(v.box.data.(Int32Array))
}

func (v Variant) AsInt32Array() (Int32Array, error) {
	if err := v.check(TagInt32Array); err != nil {
		return nil, err
	}
	return slices.Clone(v.box.data.(Int32Array)), nil
}

func (v Variant) ToFloat32Array() Float32Array {
	if v.tag != TagFloat32Array {
		v.mismatch(TagFloat32Array)
		return nil
	}
	return slices.Clone(v.box.data.(Float32Array))
}

func (v Variant) AsFloat32Array() (Float32Array, error) {
	if err := v.check(TagFloat32Array); err != nil {
		return nil, err
	}
	return slices.Clone(v.box.data.(Float32Array)), nil
}

func (v Variant) ToStringArray() StringArray {
	if v.tag != TagStringArray {
		v.mismatch(TagStringArray)
		return nil
	}
	return slices.Clone(v.box.data.(StringArray))
}

func (v Variant) AsStringArray() (StringArray, error) {
	if err := v.check(TagStringArray); err != nil {
		return nil, err
	}
	return slices.Clone(v.box.data.(StringArray)), nil
}

func (v Variant) ToVector2Array() Vector2Array {
	if v.tag != TagVector2Array {
		v.mismatch(TagVector2Array)
		return nil
	}
	return slices.Clone(v.box.data.(Vector2Array))
}

func (v Variant) AsVector2Array() (Vector2Array, error) {
	if err := v.check(TagVector2Array); err != nil {
		return nil, err
	}
	return slices.Clone(v.box.data.(Vector2Array)), nil
}

func (v Variant) ToVector3Array() Vector3Array {
	if v.tag != TagVector3Array {
		v.mismatch(TagVector3Array)
		return nil
	}
	return slices.Clone(v.box.data.(Vector3Array))
}

func (v Variant) AsVector3Array() (Vector3Array, error) {
	if err := v.check(TagVector3Array); err != nil {
		return nil, err
	}
	return slices.Clone(v.box.data.(Vector3Array)), nil
}

func (v Variant) ToColorArray() ColorArray {
	if v.tag != TagColorArray {
		v.mismatch(TagColorArray)
		return nil
	}
	return slices.Clone(v.box.data.(ColorArray))
}

func (v Variant) AsColorArray() (ColorArray, error) {
	if err := v.check(TagColorArray); err != nil {
		return nil, err
	}
	return slices.Clone(v.box.data.(ColorArray)), nil
}
