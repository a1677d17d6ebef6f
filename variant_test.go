package variant

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wippyai/variant/errors"
)

type testObject struct {
	id    uint64
	unref int
}

func (o *testObject) InstanceID() uint64 { return o.id }
func (o *testObject) Unreference()       { o.unref++ }

func TestZeroIsNil(t *testing.T) {
	var v Variant
	assert.True(t, v.IsNil())
	assert.Equal(t, TagNil, v.Type())
	assert.Equal(t, Nil(), v)
	assert.Equal(t, "Null", v.String())
}

func TestConstructorsSetTag(t *testing.T) {
	tests := []struct {
		v   Variant
		tag Tag
	}{
		{FromBool(true), TagBool},
		{FromInt64(-3), TagInt},
		{FromUint64(3), TagInt},
		{FromFloat64(1.5), TagFloat},
		{FromString("s"), TagString},
		{FromVector2(Vector2{1, 2}), TagVector2},
		{FromRect2(Rect2{}), TagRect2},
		{FromVector3(Vector3{}), TagVector3},
		{FromTransform2D(IdentityTransform2D), TagTransform2D},
		{FromPlane(Plane{}), TagPlane},
		{FromQuat(IdentityQuat), TagQuat},
		{FromAabb(Aabb{}), TagAabb},
		{FromBasis(IdentityBasis), TagBasis},
		{FromTransform(IdentityTransform), TagTransform},
		{FromColor(Color{}), TagColor},
		{FromNodePath("a/b"), TagNodePath},
		{FromRid(9), TagRid},
		{FromObject(&testObject{id: 1}), TagObject},
		{FromDictionary(nil), TagDictionary},
		{FromArray(nil), TagArray},
		{FromByteArray([]byte{1}), TagByteArray},
		{FromInt32Array(Int32Array{1}), TagInt32Array},
		{FromFloat32Array(Float32Array{1}), TagFloat32Array},
		{FromStringArray(StringArray{"a"}), TagStringArray},
		{FromVector2Array(Vector2Array{{}}), TagVector2Array},
		{FromVector3Array(Vector3Array{{}}), TagVector3Array},
		{FromColorArray(ColorArray{{}}), TagColorArray},
	}

	for _, tt := range tests {
		t.Run(tt.tag.String(), func(t *testing.T) {
			assert.Equal(t, tt.tag, tt.v.Type())
			assert.Equal(t, tt.tag.IsInline(), tt.v.box == nil)
		})
	}
}

func TestFromObjectNil(t *testing.T) {
	assert.True(t, FromObject(nil).IsNil())
}

func TestGeometryRoundTrip(t *testing.T) {
	tr := Transform{
		Basis:  Basis{Elements: [3]Vector3{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}}},
		Origin: Vector3{10, 11, 12},
	}
	got, err := FromTransform(tr).AsTransform()
	require.NoError(t, err)
	assert.Equal(t, tr, got)

	t2 := Transform2D{X: Vector2{1, 2}, Y: Vector2{3, 4}, Origin: Vector2{5, 6}}
	assert.Equal(t, t2, FromTransform2D(t2).ToTransform2D())

	p := Plane{Normal: Vector3{0, 1, 0}, D: 2}
	assert.Equal(t, p, FromPlane(p).ToPlane())

	box := Aabb{Position: Vector3{1, 2, 3}, Size: Vector3{4, 5, 6}}
	assert.Equal(t, box, FromAabb(box).ToAabb())

	r := Rect2{Position: Vector2{1, 2}, Size: Vector2{3, 4}}
	assert.Equal(t, r, FromRect2(r).ToRect2())

	c := Color{0.5, 0.25, 1, 1}
	assert.Equal(t, c, FromColor(c).ToColor())
}

func TestLossyDefaults(t *testing.T) {
	v := FromString("not a number")

	assert.False(t, v.ToBool())
	assert.Zero(t, v.ToInt64())
	assert.Zero(t, v.ToFloat64())
	assert.Equal(t, Vector2{}, v.ToVector2())
	assert.Equal(t, IdentityBasis, v.ToBasis())
	assert.Equal(t, IdentityTransform, v.ToTransform())
	assert.Equal(t, IdentityTransform2D, v.ToTransform2D())
	assert.Equal(t, IdentityQuat, v.ToQuat())
	assert.Nil(t, v.ToObject())
	assert.Equal(t, 0, v.ToArray().Len())
	assert.Equal(t, 0, v.ToDictionary().Len())
	assert.Nil(t, v.ToByteArray())
	assert.Equal(t, "", FromInt64(1).ToString())
}

func TestStrictMismatch(t *testing.T) {
	_, err := Nil().AsInt64()
	require.Error(t, err)
	assert.Equal(t, "invalid variant type: expected Int, got Nil", err.Error())

	var e *errors.Error
	require.ErrorAs(t, err, &e)
	assert.Equal(t, errors.KindInvalidTag, e.Kind)
	assert.Equal(t, TagInt, e.WantTag)
	assert.Equal(t, TagNil, e.GotTag)

	_, err = FromInt64(1).AsColorArray()
	assert.EqualError(t, err, "invalid variant type: expected ColorArray, got Int")
}

func TestUint64Wraparound(t *testing.T) {
	v := FromUint64(math.MaxUint64)
	assert.Equal(t, int64(-1), v.ToInt64())

	got, err := v.AsUint64()
	require.NoError(t, err)
	assert.Equal(t, uint64(math.MaxUint64), got)
}

func TestTypedArraysAreCopied(t *testing.T) {
	src := []byte{1, 2, 3}
	v := FromByteArray(src)
	src[0] = 9

	out := v.ToByteArray()
	assert.Equal(t, ByteArray{1, 2, 3}, out)
	out[1] = 9
	assert.Equal(t, ByteArray{1, 2, 3}, v.ToByteArray())
}

func TestCloneRelease(t *testing.T) {
	v := FromString("shared")
	assert.Equal(t, 1, v.RefCount())

	c := v.Clone()
	assert.Equal(t, 2, v.RefCount())

	c.Release()
	assert.True(t, c.IsNil())
	assert.Equal(t, 1, v.RefCount())
	assert.Equal(t, "shared", v.ToString())

	inline := FromInt64(5)
	assert.Equal(t, 1, inline.Clone().RefCount())
}

func TestReleaseUnreferencesObject(t *testing.T) {
	obj := &testObject{id: 7}
	v := FromObject(obj)
	c := v.Clone()

	v.Release()
	assert.Equal(t, 0, obj.unref)
	c.Release()
	assert.Equal(t, 1, obj.unref)
}

func TestReleaseFreesContainerElements(t *testing.T) {
	obj := &testObject{id: 7}
	arr := NewArray(FromObject(obj), FromInt64(1))
	d := NewDictionary()
	d.SetString("inner", FromArray(arr))

	v := FromDictionary(d)
	v.Release()

	assert.Equal(t, 1, obj.unref)
	assert.Equal(t, 0, arr.Len())
	assert.Equal(t, 0, d.Len())
}

func TestDoubleReleasePanics(t *testing.T) {
	v := FromString("x")
	alias := v
	v.Release()
	assert.Panics(t, func() { alias.Release() })
}

func TestEqual(t *testing.T) {
	assert.True(t, FromInt64(1).Equal(FromInt64(1)))
	assert.False(t, FromInt64(1).Equal(FromFloat64(1)))
	assert.True(t, FromString("a").Equal(FromString("a")))
	assert.True(t, FromVector3(Vector3{1, 2, 3}).Equal(FromVector3(Vector3{1, 2, 3})))

	a := FromArray(NewArray(FromInt64(1), FromString("x")))
	b := FromArray(NewArray(FromInt64(1), FromString("x")))
	assert.True(t, a.Equal(b))

	d1, d2 := NewDictionary(), NewDictionary()
	d1.SetString("k", FromInt64(1))
	d2.SetString("k", FromInt64(2))
	assert.False(t, FromDictionary(d1).Equal(FromDictionary(d2)))

	assert.True(t, FromObject(&testObject{id: 3}).Equal(FromObject(&testObject{id: 3})))
	assert.True(t, FromStringArray(StringArray{"a"}).Equal(FromStringArray(StringArray{"a"})))
}

func TestDefaultRuntimeRejectsCalls(t *testing.T) {
	v := FromString("x")
	assert.False(t, v.HasMethod("length"))

	_, err := v.Call("length")
	require.Error(t, err)

	var cerr *CallError
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, CallInvalidMethod, cerr.Kind)
	assert.Equal(t, "length", cerr.Method)
}

func TestString(t *testing.T) {
	d := NewDictionary()
	d.SetString("a", FromArray(NewArray(FromInt64(1), FromFloat64(2.5), FromBool(true))))
	d.SetString("b", Nil())

	assert.Equal(t, "{a: [1, 2.5, true], b: Null}", FromDictionary(d).String())
	assert.Equal(t, "(1, 2)", FromVector2(Vector2{1, 2}).String())
	assert.Equal(t, "RID(4)", FromRid(4).String())
}

func TestInterface(t *testing.T) {
	d := NewDictionary()
	d.SetString("n", FromInt64(1))
	d.SetString("list", FromArray(NewArray(FromString("x"), Nil())))

	got := FromDictionary(d).Interface()
	assert.Equal(t, map[string]any{
		"n":    int64(1),
		"list": []any{"x", nil},
	}, got)

	assert.Nil(t, Nil().Interface())
	assert.Equal(t, Vector2{1, 2}, FromVector2(Vector2{1, 2}).Interface())
}

func TestLookup(t *testing.T) {
	inner := NewDictionary()
	inner.SetString("b", FromArray(NewArray(FromInt64(10), FromInt64(20), FromInt64(30))))
	root := NewDictionary()
	root.SetString("a", FromDictionary(inner))
	v := FromDictionary(root)

	got, err := v.Lookup("a.b[2]")
	require.NoError(t, err)
	assert.Equal(t, int64(30), got.ToInt64())

	got, err = v.Lookup("")
	require.NoError(t, err)
	assert.Equal(t, TagDictionary, got.Type())

	_, err = v.Lookup("a.b[2].c")
	require.Error(t, err)
	assert.Equal(t, "invalid value for field a.b[2].c: invalid variant type: expected Dictionary, got Int", err.Error())

	var e *errors.Error
	require.ErrorAs(t, err, &e)
	assert.Equal(t, "a.b[2].c", e.Path())

	_, err = v.Lookup("a.b[5]")
	assert.EqualError(t, err, "invalid value for field a.b[5]: expected collection of length 6, got 3")

	_, err = v.Lookup("a[")
	assert.Error(t, err)
}

func TestTagFromSys(t *testing.T) {
	tag, err := TagFromSys(22)
	require.NoError(t, err)
	assert.Equal(t, TagFloat32Array, tag)

	_, err = TagFromSys(99)
	assert.Error(t, err)

	tag, err = ParseTag("dictionary")
	require.NoError(t, err)
	assert.Equal(t, TagDictionary, tag)
}

func TestArrayOperations(t *testing.T) {
	arr := NewArray(FromInt64(1), FromString("two"))
	v := FromArray(arr)
	defer v.Release()

	arr.Push(FromBool(true))
	assert.Equal(t, 3, arr.Len())
	assert.Equal(t, "two", arr.Get(1).ToString())

	arr.Set(0, FromFloat64(0.5))
	assert.Equal(t, 0.5, arr.Get(0).ToFloat64())

	arr.Resize(5)
	assert.Equal(t, 5, arr.Len())
	assert.True(t, arr.Get(4).IsNil())

	arr.Resize(1)
	assert.Equal(t, "[0.5]", v.String())
	assert.Panics(t, func() { arr.Resize(-1) })

	var nilArr *Array
	assert.Equal(t, 0, nilArr.Len())
	assert.Empty(t, nilArr.Slice())
}

func TestDictionaryOperations(t *testing.T) {
	d := NewDictionary()
	v := FromDictionary(d)
	defer v.Release()

	d.SetString("b", FromInt64(1))
	d.SetString("a", FromInt64(2))
	d.Set(FromInt64(3), FromString("int key"))
	d.Set(FromVector2(Vector2{X: 1}), FromString("vector key"))

	// Overwriting keeps the original position.
	d.SetString("b", FromInt64(10))
	assert.Equal(t, "{b: 10, a: 2, 3: int key, (1, 0): vector key}", v.String())

	assert.True(t, d.Has(FromInt64(3)))
	assert.False(t, d.Has(FromFloat64(3)))
	got, ok := d.Get(FromVector2(Vector2{X: 1}))
	require.True(t, ok)
	assert.Equal(t, "vector key", got.ToString())

	assert.True(t, d.Erase(FromString("a")))
	assert.False(t, d.Erase(FromString("a")))
	assert.Equal(t, 3, d.Len())

	keys := d.Keys()
	require.Len(t, keys, 3)
	assert.Equal(t, "b", keys[0].ToString())
	assert.Len(t, d.Values(), 3)
}

func TestDictionaryTypedArrayKeys(t *testing.T) {
	d := NewDictionary()
	v := FromDictionary(d)
	defer v.Release()

	d.Set(FromStringArray(StringArray{"a b"}), FromInt64(1))
	d.Set(FromStringArray(StringArray{"a", "b"}), FromInt64(2))
	d.Set(FromByteArray([]byte{1, 2}), FromInt64(3))
	require.Equal(t, 3, d.Len())

	got, ok := d.Get(FromStringArray(StringArray{"a b"}))
	require.True(t, ok)
	assert.Equal(t, int64(1), got.ToInt64())

	got, ok = d.Get(FromStringArray(StringArray{"a", "b"}))
	require.True(t, ok)
	assert.Equal(t, int64(2), got.ToInt64())

	// Equal contents address the same entry.
	d.Set(FromByteArray([]byte{1, 2}), FromInt64(4))
	assert.Equal(t, 3, d.Len())
	got, _ = d.Get(FromByteArray([]byte{1, 2}))
	assert.Equal(t, int64(4), got.ToInt64())
}
