package variant

import (
	"reflect"

	"github.com/wippyai/variant/errors"
	"github.com/wippyai/variant/internal/abi"
)

// ToVariant is implemented by types that encode themselves.
type ToVariant interface {
	ToVariant() Variant
}

// FromVariant is implemented by pointer types that decode themselves.
type FromVariant interface {
	FromVariant(v Variant) error
}

// Encode converts value using the default compiler. It panics if T has no
// conversion. Nil maps and nil slices other than []byte encode as empty
// containers, so they decode back as empty non-nil values.
func Encode[T any](value T) Variant {
	return EncodeWith(defaultCompiler, value)
}

// Decode converts v to T using the default compiler.
func Decode[T any](v Variant) (T, error) {
	return DecodeWith[T](defaultCompiler, v)
}

func EncodeWith[T any](c *Compiler, value T) Variant {
	return c.plan(reflect.TypeFor[T]()).encode(reflect.ValueOf(&value).Elem())
}

func DecodeWith[T any](c *Compiler, v Variant) (T, error) {
	var out T
	if err := c.plan(reflect.TypeFor[T]()).decode(v, reflect.ValueOf(&out).Elem()); err != nil {
		var zero T
		return zero, err
	}
	return out, nil
}

// Marshal converts value using the default compiler. A nil value yields Nil.
func Marshal(value any) Variant {
	return defaultCompiler.Marshal(value)
}

// Unmarshal decodes v into the value dst points to.
func Unmarshal(v Variant, dst any) error {
	return defaultCompiler.Unmarshal(v, dst)
}

func (c *Compiler) Marshal(value any) Variant {
	if value == nil {
		return Nil()
	}
	rv := reflect.ValueOf(value)
	return c.plan(rv.Type()).encode(rv)
}

func (c *Compiler) Unmarshal(v Variant, dst any) error {
	rv := reflect.ValueOf(dst)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return errors.Custom("unmarshal target must be a non-nil pointer, got %s", abi.TypeName(dst))
	}
	elem := rv.Elem()
	if err := c.plan(elem.Type()).decode(v, elem); err != nil {
		return err
	}
	return nil
}

// RegisterCodec overrides the conversion of T on c, or on the default
// compiler when c is nil. Plans compiled before the call are dropped.
func RegisterCodec[T any](c *Compiler, encode func(T) Variant, decode func(Variant) (T, error)) {
	if c == nil {
		c = defaultCompiler
	}
	t := reflect.TypeFor[T]()
	p := &plan{
		typ:   t,
		shape: "codec",
		encode: func(rv reflect.Value) Variant {
			x, _ := rv.Interface().(T)
			return encode(x)
		},
		decode: func(v Variant, dst reflect.Value) *errors.Error {
			x, err := decode(v)
			if err != nil {
				return errors.From(err)
			}
			dst.Set(reflect.ValueOf(&x).Elem())
			return nil
		},
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.codecs[t] = p
	c.cache.Clear()
}
