package variant

import (
	"math"
	"slices"

	"go.uber.org/atomic"

	"github.com/wippyai/variant/internal/abi"
)

// Variant is a dynamically typed value. The zero Variant is Nil.
//
// Inline kinds are copied by assignment. Shared kinds (String, NodePath,
// Object, Array, Dictionary and the typed arrays) point at a reference
// counted box; plain assignment aliases the box without counting, so every
// extra owner should come from Clone and give it back with Release.
type Variant struct {
	tag  Tag
	word uint64
	geo  [12]float32
	box  *box
}

type box struct {
	refs atomic.Int32
	data any
}

func shared(tag Tag, data any) Variant {
	b := &box{data: data}
	b.refs.Store(1)
	return Variant{tag: tag, box: b}
}

func (b *box) free() {
	switch d := b.data.(type) {
	case *Array:
		d.releaseAll()
	case *Dictionary:
		d.releaseAll()
	case Unreferencer:
		d.Unreference()
	}
}

// Typed arrays. Constructors and accessors copy the backing slice so a
// Variant never aliases caller memory.
type (
	ByteArray    []byte
	Int32Array   []int32
	Float32Array []float32
	StringArray  []string
	Vector2Array []Vector2
	Vector3Array []Vector3
	ColorArray   []Color
)

// Nil returns the nil Variant.
func Nil() Variant { return Variant{} }

func FromBool(b bool) Variant {
	v := Variant{tag: TagBool}
	if b {
		v.word = 1
	}
	return v
}

func FromInt64(i int64) Variant { return Variant{tag: TagInt, word: uint64(i)} }

// FromUint64 stores u in the Int slot by reinterpreting its bits. Values
// above math.MaxInt64 read back negative through AsInt64 and unchanged
// through AsUint64.
func FromUint64(u uint64) Variant { return FromInt64(abi.SlotFromUint(u)) }

func FromFloat64(f float64) Variant { return Variant{tag: TagFloat, word: math.Float64bits(f)} }

func FromString(s string) Variant { return shared(TagString, s) }

func FromNodePath(p NodePath) Variant { return shared(TagNodePath, p) }

func FromRid(r Rid) Variant { return Variant{tag: TagRid, word: uint64(r)} }

// FromObject wraps an object reference. A nil object yields Nil.
func FromObject(o Object) Variant {
	if o == nil {
		return Nil()
	}
	return shared(TagObject, o)
}

// FromArray takes ownership of a. A nil array is treated as empty.
func FromArray(a *Array) Variant {
	if a == nil {
		a = NewArray()
	}
	return shared(TagArray, a)
}

// FromDictionary takes ownership of d. A nil dictionary is treated as empty.
func FromDictionary(d *Dictionary) Variant {
	if d == nil {
		d = NewDictionary()
	}
	return shared(TagDictionary, d)
}

func FromVector2(x Vector2) Variant         { return inline(TagVector2, x) }
func FromRect2(x Rect2) Variant             { return inline(TagRect2, x) }
func FromVector3(x Vector3) Variant         { return inline(TagVector3, x) }
func FromTransform2D(x Transform2D) Variant { return inline(TagTransform2D, x) }
func FromPlane(x Plane) Variant             { return inline(TagPlane, x) }
func FromQuat(x Quat) Variant               { return inline(TagQuat, x) }
func FromAabb(x Aabb) Variant               { return inline(TagAabb, x) }
func FromBasis(x Basis) Variant             { return inline(TagBasis, x) }
func FromTransform(x Transform) Variant     { return inline(TagTransform, x) }
func FromColor(x Color) Variant             { return inline(TagColor, x) }

func inline(tag Tag, x interface{ store([]float32) }) Variant {
	v := Variant{tag: tag}
	x.store(v.geo[:])
	return v
}

func FromByteArray(a ByteArray) Variant       { return shared(TagByteArray, slices.Clone(a)) }
func FromInt32Array(a Int32Array) Variant     { return shared(TagInt32Array, slices.Clone(a)) }
func FromFloat32Array(a Float32Array) Variant { return shared(TagFloat32Array, slices.Clone(a)) }
func FromStringArray(a StringArray) Variant   { return shared(TagStringArray, slices.Clone(a)) }
func FromVector2Array(a Vector2Array) Variant { return shared(TagVector2Array, slices.Clone(a)) }
func FromVector3Array(a Vector3Array) Variant { return shared(TagVector3Array, slices.Clone(a)) }
func FromColorArray(a ColorArray) Variant     { return shared(TagColorArray, slices.Clone(a)) }

// Type returns the active tag.
func (v Variant) Type() Tag { return v.tag }

// IsNil reports whether v holds Nil.
func (v Variant) IsNil() bool { return v.tag == TagNil }

// Clone returns a new owner of the same value.
func (v Variant) Clone() Variant {
	if v.box != nil {
		v.box.refs.Inc()
	}
	return v
}

// Release gives up this owner and resets v to Nil. The shared payload is
// freed when its last owner is released: container elements are released
// and objects implementing Unreferencer are told to drop their reference.
func (v *Variant) Release() {
	b := v.box
	*v = Variant{}
	if b == nil {
		return
	}
	switch n := b.refs.Dec(); {
	case n > 0:
		return
	case n < 0:
		panic("variant: release of an already freed value")
	}
	b.free()
}

// RefCount reports the number of owners of the shared payload. Inline
// values always report 1.
func (v Variant) RefCount() int {
	if v.box == nil {
		return 1
	}
	return int(v.box.refs.Load())
}

// Equal reports whether v and other hold equal values. Mismatched tags are
// never equal; matching tags are compared by the installed Runtime.
func (v Variant) Equal(other Variant) bool {
	if v.tag != other.tag {
		return false
	}
	return currentRuntime().Equal(v, other)
}

// HasMethod asks the installed Runtime whether method can be called on v.
func (v Variant) HasMethod(method string) bool {
	return currentRuntime().HasMethod(v, method)
}

// Call invokes method on v through the installed Runtime. The receiver is
// passed by pointer since builtin methods may update it in place.
func (v *Variant) Call(method string, args ...Variant) (Variant, error) {
	ret, status := currentRuntime().Call(v, method, args)
	if cerr := CallErrorFromSys(status); cerr != nil {
		cerr.Method = method
		return Nil(), cerr
	}
	return ret, nil
}
