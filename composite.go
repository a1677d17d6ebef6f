package variant

import (
	"reflect"

	"github.com/wippyai/variant/errors"
)

// shaper is implemented by the generic composites in this package. They
// compile their own plans since their element types are only known to the
// instantiation.
type shaper interface {
	variantShape(b *builder) (encodeFunc, decodeFunc)
}

// Option is an optional value. None encodes as Nil.
type Option[T any] struct {
	value T
	some  bool
}

func Some[T any](v T) Option[T] { return Option[T]{value: v, some: true} }

func None[T any]() Option[T] { return Option[T]{} }

// Get returns the value and whether it is present.
func (o Option[T]) Get() (T, bool) { return o.value, o.some }

func (o Option[T]) IsSome() bool { return o.some }

// OrElse returns the value, or fallback for None.
func (o Option[T]) OrElse(fallback T) T {
	if o.some {
		return o.value
	}
	return fallback
}

// Decoding tries T first. Only when that fails and the input is Nil does it
// yield None, so a non-nil mismatch is still reported.
func (Option[T]) variantShape(b *builder) (encodeFunc, decodeFunc) {
	elem := b.build(reflect.TypeFor[T]())
	encode := func(rv reflect.Value) Variant {
		o := rv.Interface().(Option[T])
		if !o.some {
			return Nil()
		}
		return elem.encode(reflect.ValueOf(&o.value).Elem())
	}
	decode := func(v Variant, dst reflect.Value) *errors.Error {
		var o Option[T]
		if err := elem.decode(v, reflect.ValueOf(&o.value).Elem()); err != nil {
			if v.IsNil() {
				dst.SetZero()
				return nil
			}
			return err
		}
		o.some = true
		dst.Set(reflect.ValueOf(o))
		return nil
	}
	return encode, decode
}

var resultNames = []string{"Ok", "Err"}

// Result holds either a success value T or an error value E. It encodes as
// {"Ok": t} or {"Err": e}.
type Result[T, E any] struct {
	ok    T
	err   E
	isErr bool
}

func Ok[T, E any](v T) Result[T, E] { return Result[T, E]{ok: v} }

func Err[T, E any](e E) Result[T, E] { return Result[T, E]{err: e, isErr: true} }

func (r Result[T, E]) IsOk() bool { return !r.isErr }

// Ok returns the success value and whether r holds one.
func (r Result[T, E]) Ok() (T, bool) { return r.ok, !r.isErr }

// Err returns the error value and whether r holds one.
func (r Result[T, E]) Err() (E, bool) { return r.err, r.isErr }

func (Result[T, E]) variantShape(b *builder) (encodeFunc, decodeFunc) {
	okPlan := b.build(reflect.TypeFor[T]())
	errPlan := b.build(reflect.TypeFor[E]())
	encode := func(rv reflect.Value) Variant {
		r := rv.Interface().(Result[T, E])
		d := NewDictionary()
		if r.isErr {
			d.SetString("Err", errPlan.encode(reflect.ValueOf(&r.err).Elem()))
		} else {
			d.SetString("Ok", okPlan.encode(reflect.ValueOf(&r.ok).Elem()))
		}
		return FromDictionary(d)
	}
	decode := func(v Variant, dst reflect.Value) *errors.Error {
		var r Result[T, E]
		err := decodeExternal(v, resultNames, func(i int, payload Variant) *errors.Error {
			if i == 0 {
				return okPlan.decode(payload, reflect.ValueOf(&r.ok).Elem())
			}
			r.isErr = true
			return errPlan.decode(payload, reflect.ValueOf(&r.err).Elem())
		})
		if err != nil {
			return err
		}
		dst.Set(reflect.ValueOf(r))
		return nil
	}
	return encode, decode
}

// MaybeNot decodes as T when it can and otherwise keeps the original
// Variant. Decoding never fails, which lets a []MaybeNot[T] accept a
// heterogeneous array.
type MaybeNot[T any] struct {
	value T
	orig  Variant
	ok    bool
}

// Ok returns the decoded value, if decoding succeeded.
func (m MaybeNot[T]) Ok() (T, bool) { return m.value, m.ok }

// Err returns the original value, if decoding failed.
func (m MaybeNot[T]) Err() (Variant, bool) { return m.orig, !m.ok }

// Result converts m to a Result holding the decoded value or the original.
func (m MaybeNot[T]) Result() Result[T, Variant] {
	if m.ok {
		return Ok[T, Variant](m.value)
	}
	return Err[T](m.orig)
}

func (MaybeNot[T]) variantShape(b *builder) (encodeFunc, decodeFunc) {
	elem := b.build(reflect.TypeFor[T]())
	encode := func(rv reflect.Value) Variant {
		m := rv.Interface().(MaybeNot[T])
		if !m.ok {
			return m.orig.Clone()
		}
		return elem.encode(reflect.ValueOf(&m.value).Elem())
	}
	decode := func(v Variant, dst reflect.Value) *errors.Error {
		var m MaybeNot[T]
		if err := elem.decode(v, reflect.ValueOf(&m.value).Elem()); err != nil {
			m = MaybeNot[T]{orig: v.Clone()}
		} else {
			m.ok = true
		}
		dst.Set(reflect.ValueOf(m))
		return nil
	}
	return encode, decode
}

// Unit is the empty value. It encodes as Nil and only decodes from Nil.
type Unit struct{}

func (Unit) variantShape(*builder) (encodeFunc, decodeFunc) { return nilShape() }

// Phantom carries a type parameter and no data. It converts like Unit.
type Phantom[T any] struct{}

func (Phantom[T]) variantShape(*builder) (encodeFunc, decodeFunc) { return nilShape() }

func nilShape() (encodeFunc, decodeFunc) {
	encode := func(reflect.Value) Variant { return Nil() }
	decode := func(v Variant, _ reflect.Value) *errors.Error {
		if err := v.check(TagNil); err != nil {
			return err
		}
		return nil
	}
	return encode, decode
}
