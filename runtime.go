package variant

import (
	"sync"

	"github.com/wippyai/variant/internal/abi"
)

// Runtime is the foreign side of a Variant: comparison, dynamic invocation
// and class lookup. Adapters install one with SetRuntime.
type Runtime interface {
	// Equal compares two values that share a tag.
	Equal(a, b Variant) bool
	HasMethod(receiver Variant, method string) bool
	// Call invokes method on receiver. The returned status uses the
	// foreign call error codes; see CallErrorFromSys.
	Call(receiver *Variant, method string, args []Variant) (Variant, CallStatus)
	ClassName(obj Object) string
}

var (
	runtimeMu sync.RWMutex
	active    Runtime = defaultRuntime{}
)

// SetRuntime installs r for all Variants. A nil r restores the default
// runtime, which compares structurally and rejects every call.
func SetRuntime(r Runtime) {
	if r == nil {
		r = defaultRuntime{}
	}
	runtimeMu.Lock()
	active = r
	runtimeMu.Unlock()
}

func currentRuntime() Runtime {
	runtimeMu.RLock()
	defer runtimeMu.RUnlock()
	return active
}

type defaultRuntime struct{}

func (defaultRuntime) Equal(a, b Variant) bool { return StructuralEqual(a, b) }

func (defaultRuntime) HasMethod(Variant, string) bool { return false }

func (defaultRuntime) Call(*Variant, string, []Variant) (Variant, CallStatus) {
	return Nil(), CallStatus{Code: SysCallInvalidMethod}
}

func (defaultRuntime) ClassName(obj Object) string { return abi.TypeName(obj) }

// StructuralEqual compares a and b by tag and content. Objects compare by
// instance id, arrays and dictionaries element by element.
func StructuralEqual(a, b Variant) bool {
	if a.tag != b.tag {
		return false
	}
	switch a.tag {
	case TagNil:
		return true
	case TagBool, TagInt, TagRid:
		return a.word == b.word
	case TagFloat:
		return a.ToFloat64() == b.ToFloat64()
	case TagString:
		return a.box.data.(string) == b.box.data.(string)
	case TagNodePath:
		return a.box.data.(NodePath) == b.box.data.(NodePath)
	case TagObject:
		return a.box.data.(Object).InstanceID() == b.box.data.(Object).InstanceID()
	case TagArray:
		x, y := a.box.data.(*Array), b.box.data.(*Array)
		if x.Len() != y.Len() {
			return false
		}
		for i, v := range x.items {
			if !StructuralEqual(v, y.items[i]) {
				return false
			}
		}
		return true
	case TagDictionary:
		x, y := a.box.data.(*Dictionary), b.box.data.(*Dictionary)
		if x.Len() != y.Len() {
			return false
		}
		for k, v := range x.Iter() {
			w, ok := y.Get(k)
			if !ok || !StructuralEqual(v, w) {
				return false
			}
		}
		return true
	case TagByteArray:
		return equalSlices(a.box.data.(ByteArray), b.box.data.(ByteArray))
	case TagInt32Array:
		return equalSlices(a.box.data.(Int32Array), b.box.data.(Int32Array))
	case TagFloat32Array:
		return equalSlices(a.box.data.(Float32Array), b.box.data.(Float32Array))
	case TagStringArray:
		return equalSlices(a.box.data.(StringArray), b.box.data.(StringArray))
	case TagVector2Array:
		return equalSlices(a.box.data.(Vector2Array), b.box.data.(Vector2Array))
	case TagVector3Array:
		return equalSlices(a.box.data.(Vector3Array), b.box.data.(Vector3Array))
	case TagColorArray:
		return equalSlices(a.box.data.(ColorArray), b.box.data.(ColorArray))
	}
	return a.geo == b.geo
}

func equalSlices[S ~[]E, E comparable](a, b S) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
