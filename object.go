package variant

import (
	"reflect"

	"github.com/wippyai/variant/errors"
	"github.com/wippyai/variant/internal/abi"
)

// Object is a reference to an instance owned by the foreign runtime.
type Object interface {
	InstanceID() uint64
}

// Unreferencer is implemented by reference-counted objects. It is called
// when the last Variant holding the object is released.
type Unreferencer interface {
	Unreference()
}

// ScriptHolder is implemented by objects that carry a script instance.
type ScriptHolder interface {
	ScriptInstance() any
}

// Downcast returns the object held by v as T. It fails with an invalid tag
// error when v is not an object and with a cannot-cast error naming the
// object's class when the object is not a T.
func Downcast[T any](v Variant) (T, error) {
	var zero T
	obj, err := v.AsObject()
	if err != nil {
		return zero, err
	}
	if t, ok := obj.(T); ok {
		return t, nil
	}
	return zero, errors.CannotCast(currentRuntime().ClassName(obj), abi.TypeNameOf(reflect.TypeFor[T]()))
}

// DecodeInstance returns the script instance attached to the object held by
// v.
func DecodeInstance[T any](v Variant) (T, error) {
	var zero T
	obj, err := v.AsObject()
	if err != nil {
		return zero, err
	}
	expected := abi.TypeNameOf(reflect.TypeFor[T]())
	holder, ok := obj.(ScriptHolder)
	if !ok {
		return zero, errors.InvalidInstance(expected)
	}
	inst, ok := holder.ScriptInstance().(T)
	if !ok {
		return zero, errors.InvalidInstance(expected)
	}
	return inst, nil
}
