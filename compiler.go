package variant

import (
	"fmt"
	"reflect"
	"sync"

	"go.uber.org/zap"

	"github.com/wippyai/variant/errors"
	"github.com/wippyai/variant/internal/abi"
)

type encodeFunc func(rv reflect.Value) Variant

// decodeFunc writes into dst, which is always addressable.
type decodeFunc func(v Variant, dst reflect.Value) *errors.Error

// plan is the compiled conversion for one Go type.
type plan struct {
	typ    reflect.Type
	shape  string
	encode encodeFunc
	decode decodeFunc
}

// Compiler builds one conversion plan per Go type and caches it. It is safe
// for concurrent use.
type Compiler struct {
	cache  sync.Map // reflect.Type -> *plan
	mu     sync.Mutex
	codecs map[reflect.Type]*plan
	namer  func(reflect.StructField) string
	logger *zap.Logger
}

// CompilerOption configures a Compiler.
type CompilerOption func(*Compiler)

// WithFieldNamer sets the function that names struct fields without a
// variant tag. The default uses the Go field name.
func WithFieldNamer(namer func(reflect.StructField) string) CompilerOption {
	return func(c *Compiler) {
		c.namer = namer
	}
}

// WithLogger sets the logger used for plan compilation. The package logger
// is used otherwise.
func WithLogger(l *zap.Logger) CompilerOption {
	return func(c *Compiler) {
		c.logger = l
	}
}

func NewCompiler(opts ...CompilerOption) *Compiler {
	c := &Compiler{codecs: make(map[reflect.Type]*plan)}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

var defaultCompiler = NewCompiler()

// DefaultCompiler returns the compiler behind Encode, Decode, Marshal and
// Unmarshal.
func DefaultCompiler() *Compiler {
	return defaultCompiler
}

func (c *Compiler) log() *zap.Logger {
	if c.logger != nil {
		return c.logger
	}
	return Logger()
}

func (c *Compiler) plan(t reflect.Type) *plan {
	if cached, ok := c.cache.Load(t); ok {
		return cached.(*plan)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	b := &builder{c: c, building: make(map[reflect.Type]*plan)}
	p := b.build(t)

	// Plans only become visible once the whole graph is filled in, so a
	// recursive type is never observed half built.
	for typ, bp := range b.building {
		c.cache.Store(typ, bp)
	}
	return p
}

// Prepare compiles the plan for t ahead of use. It panics if t cannot be
// converted.
func (c *Compiler) Prepare(t reflect.Type) {
	c.plan(t)
}

func (c *Compiler) fieldName(f reflect.StructField) string {
	if tag, ok := f.Tag.Lookup("variant"); ok && tag != "" {
		return tag
	}
	if c.namer != nil {
		return c.namer(f)
	}
	return f.Name
}

type builder struct {
	c        *Compiler
	building map[reflect.Type]*plan
}

func (b *builder) build(t reflect.Type) *plan {
	if cached, ok := b.c.cache.Load(t); ok {
		return cached.(*plan)
	}
	if p, ok := b.building[t]; ok {
		return p
	}

	p := &plan{typ: t}
	b.building[t] = p
	b.fill(p, t)

	b.c.log().Debug("compiled variant plan",
		zap.Stringer("type", t),
		zap.String("shape", p.shape))
	return p
}

var (
	variantType     = reflect.TypeFor[Variant]()
	shaperType      = reflect.TypeFor[shaper]()
	toVariantType   = reflect.TypeFor[ToVariant]()
	fromVariantType = reflect.TypeFor[FromVariant]()
	objectType      = reflect.TypeFor[Object]()
)

func (b *builder) fill(p *plan, t reflect.Type) {
	if codec, ok := b.c.codecs[t]; ok {
		p.shape, p.encode, p.decode = codec.shape, codec.encode, codec.decode
		return
	}

	switch {
	case t == variantType:
		p.shape = "variant"
		p.encode = func(rv reflect.Value) Variant {
			return rv.Interface().(Variant).Clone()
		}
		p.decode = func(v Variant, dst reflect.Value) *errors.Error {
			dst.Set(reflect.ValueOf(v.Clone()))
			return nil
		}
		return
	case t.Kind() != reflect.Interface && t.Implements(shaperType):
		p.shape = "composite"
		p.encode, p.decode = reflect.Zero(t).Interface().(shaper).variantShape(b)
		return
	case b.custom(p, t):
		return
	}

	if builtin, ok := builtins[t]; ok {
		p.shape, p.encode, p.decode = builtin.shape, builtin.encode, builtin.decode
		return
	}

	if t.Kind() != reflect.Interface && t.Implements(objectType) {
		b.object(p, t)
		return
	}

	if tag, ok := primitiveTags[t.Kind()]; ok {
		b.primitive(p, t, tag)
		return
	}

	switch t.Kind() {
	case reflect.Ptr:
		b.pointer(p, t)
	case reflect.Slice:
		if t.Elem().Kind() == reflect.Uint8 {
			b.bytes(p)
		} else {
			b.sequence(p, t)
		}
	case reflect.Array:
		b.array(p, t)
	case reflect.Map:
		b.mapping(p, t)
	case reflect.Struct:
		b.structure(p, t)
	case reflect.Interface:
		b.dynamic(p, t)
	default:
		panic(fmt.Sprintf("variant: unsupported type %s", t))
	}
}

// custom wires types that implement ToVariant or FromVariant themselves.
func (b *builder) custom(p *plan, t reflect.Type) bool {
	if t.Kind() == reflect.Interface || t.Kind() == reflect.Ptr {
		return false
	}
	ptr := reflect.PointerTo(t)
	enc := t.Implements(toVariantType)
	encPtr := ptr.Implements(toVariantType)
	dec := ptr.Implements(fromVariantType)
	if !enc && !encPtr && !dec {
		return false
	}

	p.shape = "custom"
	p.encode = func(rv reflect.Value) Variant {
		switch {
		case enc:
			return rv.Interface().(ToVariant).ToVariant()
		case encPtr:
			tmp := reflect.New(t)
			tmp.Elem().Set(rv)
			return tmp.Interface().(ToVariant).ToVariant()
		}
		panic(fmt.Sprintf("variant: %s implements FromVariant but not ToVariant", t))
	}
	p.decode = func(v Variant, dst reflect.Value) *errors.Error {
		if !dec {
			panic(fmt.Sprintf("variant: %s implements ToVariant but not FromVariant", t))
		}
		return errors.From(dst.Addr().Interface().(FromVariant).FromVariant(v))
	}
	return true
}

var primitiveTags = map[reflect.Kind]Tag{
	reflect.Bool:    TagBool,
	reflect.Int:     TagInt,
	reflect.Int8:    TagInt,
	reflect.Int16:   TagInt,
	reflect.Int32:   TagInt,
	reflect.Int64:   TagInt,
	reflect.Uint:    TagInt,
	reflect.Uint8:   TagInt,
	reflect.Uint16:  TagInt,
	reflect.Uint32:  TagInt,
	reflect.Uint64:  TagInt,
	reflect.Uintptr: TagInt,
	reflect.Float32: TagFloat,
	reflect.Float64: TagFloat,
	reflect.String:  TagString,
}

// PrimitiveTag reports the tag a Go primitive kind converts to. Every
// integer width, signed or not, shares the Int tag.
func PrimitiveTag(k reflect.Kind) (Tag, bool) {
	tag, ok := primitiveTags[k]
	return tag, ok
}

func (b *builder) primitive(p *plan, t reflect.Type, tag Tag) {
	p.shape = "primitive"
	switch tag {
	case TagBool:
		p.encode = func(rv reflect.Value) Variant { return FromBool(rv.Bool()) }
		p.decode = func(v Variant, dst reflect.Value) *errors.Error {
			if err := v.check(TagBool); err != nil {
				return err
			}
			dst.SetBool(v.word != 0)
			return nil
		}
	case TagInt:
		p.encode = func(rv reflect.Value) Variant {
			slot, _ := abi.SlotOf(rv)
			return FromInt64(slot)
		}
		p.decode = func(v Variant, dst reflect.Value) *errors.Error {
			if err := v.check(TagInt); err != nil {
				return err
			}
			abi.SetIntKind(dst, int64(v.word))
			return nil
		}
	case TagFloat:
		p.encode = func(rv reflect.Value) Variant { return FromFloat64(rv.Float()) }
		p.decode = func(v Variant, dst reflect.Value) *errors.Error {
			if err := v.check(TagFloat); err != nil {
				return err
			}
			dst.SetFloat(v.ToFloat64())
			return nil
		}
	case TagString:
		p.encode = func(rv reflect.Value) Variant { return FromString(rv.String()) }
		p.decode = func(v Variant, dst reflect.Value) *errors.Error {
			if err := v.check(TagString); err != nil {
				return err
			}
			dst.SetString(v.box.data.(string))
			return nil
		}
	default:
		panic(fmt.Sprintf("variant: no primitive conversion for %s", t))
	}
}

// builtins covers the named kinds whose Go type alone selects the tag.
var builtins = map[reflect.Type]*plan{}

func init() {
	for _, p := range []*plan{
		builtin(FromVector2, Variant.AsVector2),
		builtin(FromRect2, Variant.AsRect2),
		builtin(FromVector3, Variant.AsVector3),
		builtin(FromTransform2D, Variant.AsTransform2D),
		builtin(FromPlane, Variant.AsPlane),
		builtin(FromQuat, Variant.AsQuat),
		builtin(FromAabb, Variant.AsAabb),
		builtin(FromBasis, Variant.AsBasis),
		builtin(FromTransform, Variant.AsTransform),
		builtin(FromColor, Variant.AsColor),
		builtin(FromNodePath, Variant.AsNodePath),
		builtin(FromRid, Variant.AsRid),
		builtin(FromArray, Variant.AsArray),
		builtin(FromDictionary, Variant.AsDictionary),
		builtin(FromInt32Array, Variant.AsInt32Array),
		builtin(FromFloat32Array, Variant.AsFloat32Array),
		builtin(FromStringArray, Variant.AsStringArray),
		builtin(FromVector2Array, Variant.AsVector2Array),
		builtin(FromVector3Array, Variant.AsVector3Array),
		builtin(FromColorArray, Variant.AsColorArray),
	} {
		builtins[p.typ] = p
	}
}

func builtin[T any](from func(T) Variant, as func(Variant) (T, error)) *plan {
	return &plan{
		typ:   reflect.TypeFor[T](),
		shape: "builtin",
		encode: func(rv reflect.Value) Variant {
			return from(rv.Interface().(T))
		},
		decode: func(v Variant, dst reflect.Value) *errors.Error {
			x, err := as(v)
			if err != nil {
				return errors.From(err)
			}
			dst.Set(reflect.ValueOf(x))
			return nil
		},
	}
}

// object handles concrete types that implement Object. They are not
// nullable: Nil fails with an invalid-nil error.
func (b *builder) object(p *plan, t reflect.Type) {
	p.shape = "object"
	p.encode = func(rv reflect.Value) Variant {
		if nilable(rv) && rv.IsNil() {
			return Nil()
		}
		return FromObject(rv.Interface().(Object))
	}
	p.decode = func(v Variant, dst reflect.Value) *errors.Error {
		return decodeObject(v, dst, t)
	}
}

func decodeObject(v Variant, dst reflect.Value, t reflect.Type) *errors.Error {
	if v.IsNil() {
		return errors.InvalidNil()
	}
	if err := v.check(TagObject); err != nil {
		return err
	}
	obj := v.box.data.(Object)
	rv := reflect.ValueOf(obj)
	if !rv.Type().AssignableTo(t) {
		return errors.CannotCast(currentRuntime().ClassName(obj), abi.TypeNameOf(t))
	}
	dst.Set(rv)
	return nil
}

func nilable(rv reflect.Value) bool {
	switch rv.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func, reflect.Chan:
		return true
	}
	return false
}
